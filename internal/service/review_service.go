package service

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

type ReviewService struct {
	ReviewRepo     *repository.ReviewRepository
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
}

func NewReviewService(reviewRepo *repository.ReviewRepository, enrollmentRepo *repository.EnrollmentRepository, courseRepo *repository.CourseRepository) *ReviewService {
	return &ReviewService{
		ReviewRepo:     reviewRepo,
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
	}
}

// ListByCourse serves the public review feed. Courses restricted to
// signed-in users surface as missing to anonymous callers.
func (s *ReviewService) ListByCourse(courseID uint, signedIn bool, limit, offset int) ([]model.Review, int64, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err == gorm.ErrRecordNotFound {
		return nil, 0, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, 0, err
	}
	if course.Status != model.CoursePublished {
		return nil, 0, util.ErrCourseNotFound
	}
	if course.Visibility == model.VisibilitySignedIn && !signedIn {
		return nil, 0, util.ErrCourseNotFound
	}

	return s.ReviewRepo.ListByCourse(courseID, limit, offset)
}

type SubmitReviewInput struct {
	Rating  int
	Comment string
}

// Submit upserts the learner's review: the first submission creates the
// row, any later submission updates it in place. The returned bool is
// true on first creation so the controller can answer 201 vs 200.
func (s *ReviewService) Submit(courseID, userID uint, in SubmitReviewInput) (*model.Review, bool, error) {
	if _, err := s.EnrollmentRepo.FindByCourseAndUser(courseID, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, util.ErrNotEnrolled
		}
		return nil, false, err
	}

	review := &model.Review{
		CourseID: courseID,
		UserID:   userID,
		Rating:   in.Rating,
		Comment:  in.Comment,
	}

	created, err := s.ReviewRepo.Upsert(review, s.CourseRepo.RefreshRating)
	if err != nil {
		return nil, false, err
	}
	return review, created, nil
}
