package service

import (
	"math"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
	LessonRepo     *repository.LessonRepository
	DB             *gorm.DB
}

func NewEnrollmentService(enrollmentRepo *repository.EnrollmentRepository, courseRepo *repository.CourseRepository, lessonRepo *repository.LessonRepository, db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
		LessonRepo:     lessonRepo,
		DB:             db,
	}
}

func (s *EnrollmentService) Enroll(courseID, userID uint) (*model.Enrollment, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	if course.Status != model.CoursePublished {
		return nil, util.ErrCourseNotFound
	}

	if _, err := s.EnrollmentRepo.FindByCourseAndUser(courseID, userID); err == nil {
		return nil, util.ErrAlreadyEnrolled
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	enrollment := &model.Enrollment{
		CourseID: courseID,
		UserID:   userID,
		Status:   model.EnrollmentActive,
	}
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		return nil, err
	}

	if err := s.CourseRepo.IncrementEnrollment(courseID, 1); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) ListByUser(userID uint) ([]model.Enrollment, error) {
	return s.EnrollmentRepo.ListByUser(userID)
}

type ProgressInput struct {
	LessonID         uint
	Completed        bool
	TimeSpentSeconds int
}

// ProgressResult is what the learner sees after an upsert: the progress
// row plus the recomputed enrollment state.
type ProgressResult struct {
	Progress             model.LessonProgress   `json:"progress"`
	CompletionPercentage int                    `json:"completionPercentage"`
	Status               model.EnrollmentStatus `json:"status"`
	CompletedAt          *time.Time             `json:"completedAt"`
}

// UpsertProgress records lesson progress and recomputes the enrollment
// percentage in one transaction. The enrollment flips to completed, with
// a completion timestamp, exactly when the percentage reaches 100.
func (s *EnrollmentService) UpsertProgress(courseID, userID uint, in ProgressInput) (*ProgressResult, error) {
	enrollment, err := s.EnrollmentRepo.FindByCourseAndUser(courseID, userID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrNotEnrolled
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.LessonRepo.FindInCourse(in.LessonID, courseID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	var result ProgressResult
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		progress := &model.LessonProgress{
			EnrollmentID:     enrollment.ID,
			LessonID:         in.LessonID,
			Completed:        in.Completed,
			TimeSpentSeconds: in.TimeSpentSeconds,
		}
		if err := s.EnrollmentRepo.UpsertProgress(tx, progress); err != nil {
			return err
		}

		totalLessons, err := s.LessonRepo.CountByCourse(courseID)
		if err != nil {
			return err
		}
		completedLessons, err := s.EnrollmentRepo.CountCompletedLessons(tx, enrollment.ID)
		if err != nil {
			return err
		}

		percentage := 0
		if totalLessons > 0 {
			percentage = int(math.Round(100 * float64(completedLessons) / float64(totalLessons)))
		}

		updates := map[string]interface{}{
			"progress_percentage": percentage,
		}

		status := enrollment.Status
		completedAt := enrollment.CompletedAt
		if percentage == 100 && status != model.EnrollmentCompleted {
			now := time.Now()
			status = model.EnrollmentCompleted
			completedAt = &now
			updates["status"] = status
			updates["completed_at"] = now
		}

		if err := tx.Model(&model.Enrollment{}).
			Where("id = ?", enrollment.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		result = ProgressResult{
			Progress:             *progress,
			CompletionPercentage: percentage,
			Status:               status,
			CompletedAt:          completedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
