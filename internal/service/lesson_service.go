package service

import (
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

type LessonService struct {
	LessonRepo *repository.LessonRepository
	CourseRepo *repository.CourseRepository
}

func NewLessonService(lessonRepo *repository.LessonRepository, courseRepo *repository.CourseRepository) *LessonService {
	return &LessonService{
		LessonRepo: lessonRepo,
		CourseRepo: courseRepo,
	}
}

// requireOwnedCourse gates every lesson operation on course ownership.
// Missing and unowned courses look identical to the caller.
func (s *LessonService) requireOwnedCourse(courseID, instructorID uint) error {
	_, err := s.CourseRepo.FindOwned(courseID, instructorID)
	if err == gorm.ErrRecordNotFound {
		return util.ErrCourseNotFound
	}
	return err
}

type CreateLessonInput struct {
	Title           string
	LessonType      string
	Content         string
	VideoURL        string
	DurationSeconds int
}

func (s *LessonService) CreateLesson(courseID, instructorID uint, in CreateLessonInput) (*model.Lesson, error) {
	if err := s.requireOwnedCourse(courseID, instructorID); err != nil {
		return nil, err
	}

	orderIndex, err := s.LessonRepo.NextOrderIndex(courseID)
	if err != nil {
		return nil, err
	}

	lessonType := model.LessonText
	if in.LessonType != "" {
		lessonType = model.LessonType(in.LessonType)
	}

	lesson := &model.Lesson{
		CourseID:        courseID,
		Title:           in.Title,
		Slug:            util.UniqueSlug(in.Title, time.Now()),
		LessonType:      lessonType,
		Content:         in.Content,
		VideoURL:        in.VideoURL,
		DurationSeconds: in.DurationSeconds,
		OrderIndex:      orderIndex,
	}

	if err := s.LessonRepo.Create(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) ListLessons(courseID, instructorID uint) ([]model.Lesson, error) {
	if err := s.requireOwnedCourse(courseID, instructorID); err != nil {
		return nil, err
	}
	return s.LessonRepo.ListByCourse(courseID)
}

type UpdateLessonInput struct {
	Title           *string
	LessonType      *string
	Content         *string
	VideoURL        *string
	DurationSeconds *int
}

func (s *LessonService) UpdateLesson(lessonID, courseID, instructorID uint, in UpdateLessonInput) (*model.Lesson, error) {
	if err := s.requireOwnedCourse(courseID, instructorID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.LessonType != nil {
		updates["lesson_type"] = *in.LessonType
	}
	if in.Content != nil {
		updates["content"] = *in.Content
	}
	if in.VideoURL != nil {
		updates["video_url"] = *in.VideoURL
	}
	if in.DurationSeconds != nil {
		updates["duration_seconds"] = *in.DurationSeconds
	}

	affected, err := s.LessonRepo.UpdateInCourse(lessonID, courseID, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, util.ErrLessonNotFound
	}

	return s.LessonRepo.FindInCourse(lessonID, courseID)
}

func (s *LessonService) DeleteLesson(lessonID, courseID, instructorID uint) error {
	if err := s.requireOwnedCourse(courseID, instructorID); err != nil {
		return err
	}

	affected, err := s.LessonRepo.DeleteInCourse(lessonID, courseID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return util.ErrLessonNotFound
	}
	return nil
}
