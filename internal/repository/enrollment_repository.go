package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.DB.Create(enrollment).Error
}

func (r *EnrollmentRepository) FindByID(id uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.DB.First(&enrollment, id).Error
	return &enrollment, err
}

// FindByCourseAndUser is the enrollment gate: every learner write to
// progress or reviews starts here.
func (r *EnrollmentRepository) FindByCourseAndUser(courseID, userID uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.DB.Where("course_id = ? AND user_id = ?", courseID, userID).First(&enrollment).Error
	return &enrollment, err
}

func (r *EnrollmentRepository) ListByUser(userID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) CountCompletedByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).
		Where("user_id = ? AND status = ?", userID, model.EnrollmentCompleted).
		Count(&count).Error
	return count, err
}

// UpsertProgress inserts or updates the (enrollment, lesson) row inside
// the caller's transaction. Time spent accumulates onto the prior value
// instead of replacing it, and a lesson once completed stays completed.
func (r *EnrollmentRepository) UpsertProgress(tx *gorm.DB, progress *model.LessonProgress) error {
	var existing model.LessonProgress
	err := tx.Where("enrollment_id = ? AND lesson_id = ?", progress.EnrollmentID, progress.LessonID).
		First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return tx.Create(progress).Error
	}
	if err != nil {
		return err
	}

	res := tx.Model(&model.LessonProgress{}).
		Where("id = ?", existing.ID).
		Updates(map[string]interface{}{
			"completed":          existing.Completed || progress.Completed,
			"time_spent_seconds": gorm.Expr("time_spent_seconds + ?", progress.TimeSpentSeconds),
		})
	if res.Error != nil {
		return res.Error
	}
	// Return what the row now holds, not the request's delta.
	return tx.First(progress, existing.ID).Error
}

func (r *EnrollmentRepository) ListProgress(enrollmentID uint) ([]model.LessonProgress, error) {
	var rows []model.LessonProgress
	err := r.DB.Where("enrollment_id = ?", enrollmentID).Find(&rows).Error
	return rows, err
}

func (r *EnrollmentRepository) CountCompletedLessons(tx *gorm.DB, enrollmentID uint) (int64, error) {
	var count int64
	err := tx.Model(&model.LessonProgress{}).
		Where("enrollment_id = ? AND completed = ?", enrollmentID, true).
		Count(&count).Error
	return count, err
}

func (r *EnrollmentRepository) CountCompletedLessonsByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LessonProgress{}).
		Joins("JOIN enrollments ON enrollments.id = lesson_progress.enrollment_id").
		Where("enrollments.user_id = ? AND lesson_progress.completed = ?", userID, true).
		Count(&count).Error
	return count, err
}
