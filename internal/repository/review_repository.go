package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) FindByCourseAndUser(courseID, userID uint) (*model.Review, error) {
	var review model.Review
	err := r.DB.Where("course_id = ? AND user_id = ?", courseID, userID).First(&review).Error
	return &review, err
}

func (r *ReviewRepository) ListByCourse(courseID uint, limit, offset int) ([]model.Review, int64, error) {
	var reviews []model.Review
	var total int64

	query := r.DB.Model(&model.Review{}).Where("course_id = ?", courseID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Review{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// Upsert writes the learner's review for a course: the first submission
// inserts, any later one updates the same row. Returns whether a new row
// was created, and refreshes the course's denormalized rating counters in
// the same transaction.
func (r *ReviewRepository) Upsert(review *model.Review, refreshRating func(tx *gorm.DB, courseID uint) error) (bool, error) {
	created := false
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.Review
		err := tx.Where("course_id = ? AND user_id = ?", review.CourseID, review.UserID).
			First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			created = true
			if err := tx.Create(review).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			res := tx.Model(&model.Review{}).
				Where("id = ?", existing.ID).
				Updates(map[string]interface{}{
					"rating":  review.Rating,
					"comment": review.Comment,
				})
			if res.Error != nil {
				return res.Error
			}
			review.ID = existing.ID
			review.CreatedAt = existing.CreatedAt
		}

		return refreshRating(tx, review.CourseID)
	})
	return created, err
}
