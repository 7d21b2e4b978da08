package repository

import (
	"time"

	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	return &course, err
}

// FindOwned loads a course only when it belongs to the given instructor.
// Unowned courses are indistinguishable from missing ones.
func (r *CourseRepository) FindOwned(id, instructorID uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Where("id = ? AND instructor_id = ?", id, instructorID).First(&course).Error
	return &course, err
}

type CourseFilter struct {
	InstructorID uint
	Status       string
	Search       string
}

func (r *CourseRepository) List(filter CourseFilter, limit, offset int) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64

	query := r.DB.Model(&model.Course{})

	if filter.InstructorID != 0 {
		query = query.Where("instructor_id = ?", filter.InstructorID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?)", term)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&courses).Error
	return courses, total, err
}

func (r *CourseRepository) ListPublic(limit, offset int) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64

	query := r.DB.Model(&model.Course{}).
		Where("status = ? AND visibility = ?", model.CoursePublished, model.VisibilityEveryone)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Offset(offset).Limit(limit).Order("published_at DESC").Find(&courses).Error
	return courses, total, err
}

// UpdateOwned applies the updates with the ownership predicate folded
// into the same statement, so there is no window between check and act.
// Returns the number of rows touched; 0 means missing or not owned.
func (r *CourseRepository) UpdateOwned(id, instructorID uint, updates map[string]interface{}) (int64, error) {
	updates["updated_at"] = time.Now()
	res := r.DB.Model(&model.Course{}).
		Where("id = ? AND instructor_id = ?", id, instructorID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// DeleteOwned deletes with the ownership predicate in the delete itself.
func (r *CourseRepository) DeleteOwned(id, instructorID uint) (int64, error) {
	res := r.DB.Where("id = ? AND instructor_id = ?", id, instructorID).Delete(&model.Course{})
	return res.RowsAffected, res.Error
}

func (r *CourseRepository) IncrementEnrollment(courseID uint, delta int) error {
	return r.DB.Model(&model.Course{}).
		Where("id = ?", courseID).
		Update("enrollment_count", gorm.Expr("enrollment_count + ?", delta)).
		Error
}

// RefreshRating recomputes the denormalized review counters from the
// reviews table.
func (r *CourseRepository) RefreshRating(tx *gorm.DB, courseID uint) error {
	var stats struct {
		Count int64
		Avg   float64
	}
	err := tx.Model(&model.Review{}).
		Where("course_id = ?", courseID).
		Select("COUNT(*) as count, COALESCE(AVG(rating), 0) as avg").
		Scan(&stats).Error
	if err != nil {
		return err
	}

	return tx.Model(&model.Course{}).
		Where("id = ?", courseID).
		Updates(map[string]interface{}{
			"total_reviews":  stats.Count,
			"average_rating": stats.Avg,
		}).Error
}
