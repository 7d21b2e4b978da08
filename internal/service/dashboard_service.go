package service

import (
	"context"

	"learnhub_backend/internal/model"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// InstructorStats is the instructor's overview panel.
type InstructorStats struct {
	CourseCount      int64   `json:"courseCount"`
	PublishedCount   int64   `json:"publishedCount"`
	TotalEnrollments int64   `json:"totalEnrollments"`
	TotalReviews     int64   `json:"totalReviews"`
	AverageRating    float64 `json:"averageRating"`
}

// GetInstructorStats issues the independent counting queries in parallel
// and joins the results; no query depends on another.
func (s *DashboardService) GetInstructorStats(ctx context.Context, instructorID uint) (*InstructorStats, error) {
	var stats InstructorStats

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.DB.WithContext(gctx).Model(&model.Course{}).
			Where("instructor_id = ?", instructorID).
			Count(&stats.CourseCount).Error
	})

	g.Go(func() error {
		return s.DB.WithContext(gctx).Model(&model.Course{}).
			Where("instructor_id = ? AND status = ?", instructorID, model.CoursePublished).
			Count(&stats.PublishedCount).Error
	})

	g.Go(func() error {
		return s.DB.WithContext(gctx).Model(&model.Enrollment{}).
			Joins("JOIN courses ON courses.id = enrollments.course_id").
			Where("courses.instructor_id = ?", instructorID).
			Count(&stats.TotalEnrollments).Error
	})

	g.Go(func() error {
		return s.DB.WithContext(gctx).Model(&model.Review{}).
			Joins("JOIN courses ON courses.id = reviews.course_id").
			Where("courses.instructor_id = ?", instructorID).
			Count(&stats.TotalReviews).Error
	})

	g.Go(func() error {
		return s.DB.WithContext(gctx).Model(&model.Review{}).
			Joins("JOIN courses ON courses.id = reviews.course_id").
			Where("courses.instructor_id = ?", instructorID).
			Select("COALESCE(AVG(reviews.rating), 0)").
			Scan(&stats.AverageRating).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
