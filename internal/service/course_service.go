package service

import (
	"context"
	"encoding/json"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	catalogCacheKey = "catalog:courses"
	catalogCacheTTL = 5 * time.Minute
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
	Rdb        *redis.Client
}

func NewCourseService(courseRepo *repository.CourseRepository, rdb *redis.Client) *CourseService {
	return &CourseService{
		CourseRepo: courseRepo,
		Rdb:        rdb,
	}
}

type CreateCourseInput struct {
	Title       string
	Description string
	Visibility  string
}

func (s *CourseService) CreateCourse(instructorID uint, in CreateCourseInput) (*model.Course, error) {
	visibility := model.VisibilityEveryone
	if in.Visibility != "" {
		visibility = model.CourseVisibility(in.Visibility)
	}

	course := &model.Course{
		InstructorID: instructorID,
		Title:        in.Title,
		Slug:         util.UniqueSlug(in.Title, time.Now()),
		Description:  in.Description,
		Status:       model.CourseDraft,
		Visibility:   visibility,
	}

	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	s.invalidateCatalog()
	return course, nil
}

func (s *CourseService) GetOwnedCourse(id, instructorID uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindOwned(id, instructorID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}

func (s *CourseService) ListCourses(filter repository.CourseFilter, limit, offset int) ([]model.Course, int64, error) {
	return s.CourseRepo.List(filter, limit, offset)
}

// UpdateCourseInput is the fixed set of mutable course fields; anything
// else in the request body never reaches the store.
type UpdateCourseInput struct {
	Title       *string
	Description *string
	Status      *string
	Visibility  *string
}

func (s *CourseService) UpdateCourse(id, instructorID uint, in UpdateCourseInput) (*model.Course, error) {
	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.Visibility != nil {
		updates["visibility"] = *in.Visibility
	}

	affected, err := s.CourseRepo.UpdateOwned(id, instructorID, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, util.ErrCourseNotFound
	}

	// published_at is stamped exactly once, guarded in the statement
	// itself so a repeated publish cannot move it.
	if in.Status != nil && model.CourseStatus(*in.Status) == model.CoursePublished {
		err = s.CourseRepo.DB.Model(&model.Course{}).
			Where("id = ? AND instructor_id = ? AND published_at IS NULL", id, instructorID).
			Update("published_at", time.Now()).Error
		if err != nil {
			return nil, err
		}
	}

	s.invalidateCatalog()
	return s.CourseRepo.FindOwned(id, instructorID)
}

// PublishCourse flips an owned course to published. The publish
// timestamp is stamped at most once; republishing an already published
// course leaves it untouched.
func (s *CourseService) PublishCourse(id, instructorID uint) (*model.Course, error) {
	status := string(model.CoursePublished)
	return s.UpdateCourse(id, instructorID, UpdateCourseInput{Status: &status})
}

func (s *CourseService) DeleteCourse(id, instructorID uint) error {
	affected, err := s.CourseRepo.DeleteOwned(id, instructorID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return util.ErrCourseNotFound
	}
	s.invalidateCatalog()
	return nil
}

type catalogPage struct {
	Courses []model.Course `json:"courses"`
	Total   int64          `json:"total"`
}

// PublicCatalog returns published, everyone-visible courses. The first
// page is cached in redis and invalidated on every course mutation.
func (s *CourseService) PublicCatalog(ctx context.Context, limit, offset int) ([]model.Course, int64, error) {
	cacheable := s.Rdb != nil && limit == util.DefaultPageLimit && offset == 0

	if cacheable {
		if raw, err := s.Rdb.Get(ctx, catalogCacheKey).Bytes(); err == nil {
			var page catalogPage
			if json.Unmarshal(raw, &page) == nil {
				return page.Courses, page.Total, nil
			}
		}
	}

	courses, total, err := s.CourseRepo.ListPublic(limit, offset)
	if err != nil {
		return nil, 0, err
	}

	if cacheable {
		if raw, err := json.Marshal(catalogPage{Courses: courses, Total: total}); err == nil {
			if err := s.Rdb.Set(ctx, catalogCacheKey, raw, catalogCacheTTL).Err(); err != nil {
				logger.Log.Warn("Failed to cache course catalog", zap.Error(err))
			}
		}
	}

	return courses, total, nil
}

func (s *CourseService) invalidateCatalog() {
	if s.Rdb == nil {
		return
	}
	if err := s.Rdb.Del(context.Background(), catalogCacheKey).Err(); err != nil {
		logger.Log.Warn("Failed to invalidate course catalog cache", zap.Error(err))
	}
}
