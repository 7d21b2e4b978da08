package repository

import (
	"time"

	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, id).Error
	return &lesson, err
}

func (r *LessonRepository) FindInCourse(id, courseID uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.Where("id = ? AND course_id = ?", id, courseID).First(&lesson).Error
	return &lesson, err
}

func (r *LessonRepository) ListByCourse(courseID uint) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Where("course_id = ?", courseID).Order("order_index ASC").Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) CountByCourse(courseID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Lesson{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}

// NextOrderIndex returns max(order_index)+1 within the course; the first
// lesson of a course gets 0.
func (r *LessonRepository) NextOrderIndex(courseID uint) (int, error) {
	var max *int
	err := r.DB.Model(&model.Lesson{}).
		Where("course_id = ?", courseID).
		Select("MAX(order_index)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max + 1, nil
}

// UpdateInCourse scopes the update to the parent course so a lesson id
// from another course cannot be touched. Slug is immutable and never
// part of updates.
func (r *LessonRepository) UpdateInCourse(id, courseID uint, updates map[string]interface{}) (int64, error) {
	updates["updated_at"] = time.Now()
	res := r.DB.Model(&model.Lesson{}).
		Where("id = ? AND course_id = ?", id, courseID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *LessonRepository) DeleteInCourse(id, courseID uint) (int64, error) {
	res := r.DB.Where("id = ? AND course_id = ?", id, courseID).Delete(&model.Lesson{})
	return res.RowsAffected, res.Error
}
