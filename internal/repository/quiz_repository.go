package repository

import (
	"time"

	"learnhub_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindInCourse(id, courseID uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Where("id = ? AND course_id = ?", id, courseID).First(&quiz).Error
	return &quiz, err
}

func (r *QuizRepository) ListByCourse(courseID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("course_id = ?", courseID).Order("created_at ASC").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) UpdateInCourse(id, courseID uint, updates map[string]interface{}) (int64, error) {
	updates["updated_at"] = time.Now()
	res := r.DB.Model(&model.Quiz{}).
		Where("id = ? AND course_id = ?", id, courseID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// DeleteInCourse removes the quiz together with its questions and
// rewards in one transaction.
func (r *QuizRepository) DeleteInCourse(id, courseID uint) (int64, error) {
	var affected int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND course_id = ?", id, courseID).Delete(&model.Quiz{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 {
			return nil
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&model.QuizQuestion{}).Error; err != nil {
			return err
		}
		return tx.Where("quiz_id = ?", id).Delete(&model.QuizReward{}).Error
	})
	return affected, err
}

func (r *QuizRepository) CreateQuestion(q *model.QuizQuestion) error {
	return r.DB.Create(q).Error
}

func (r *QuizRepository) ListQuestions(quizID uint) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.DB.Where("quiz_id = ?", quizID).Order("order_index ASC").Find(&questions).Error
	return questions, err
}

func (r *QuizRepository) NextQuestionOrderIndex(quizID uint) (int, error) {
	var max *int
	err := r.DB.Model(&model.QuizQuestion{}).
		Where("quiz_id = ?", quizID).
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

func (r *QuizRepository) UpdateQuestion(id, quizID uint, updates map[string]interface{}) (int64, error) {
	updates["updated_at"] = time.Now()
	res := r.DB.Model(&model.QuizQuestion{}).
		Where("id = ? AND quiz_id = ?", id, quizID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *QuizRepository) DeleteQuestion(id, quizID uint) (int64, error) {
	res := r.DB.Where("id = ? AND quiz_id = ?", id, quizID).Delete(&model.QuizQuestion{})
	return res.RowsAffected, res.Error
}

func (r *QuizRepository) ListRewards(quizID uint) ([]model.QuizReward, error) {
	var rewards []model.QuizReward
	err := r.DB.Where("quiz_id = ?", quizID).Order("attempt_number ASC").Find(&rewards).Error
	return rewards, err
}

// ReplaceRewards swaps the full reward set atomically: the delete and the
// bulk insert either both land or neither does.
func (r *QuizRepository) ReplaceRewards(quizID uint, rewards []model.QuizReward) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", quizID).Delete(&model.QuizReward{}).Error; err != nil {
			return err
		}
		if len(rewards) == 0 {
			return nil
		}
		for i := range rewards {
			rewards[i].QuizID = quizID
		}
		return tx.Create(&rewards).Error
	})
}
