package service

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo   *repository.QuizRepository
	CourseRepo *repository.CourseRepository
	LessonRepo *repository.LessonRepository
}

func NewQuizService(quizRepo *repository.QuizRepository, courseRepo *repository.CourseRepository, lessonRepo *repository.LessonRepository) *QuizService {
	return &QuizService{
		QuizRepo:   quizRepo,
		CourseRepo: courseRepo,
		LessonRepo: lessonRepo,
	}
}

func (s *QuizService) requireOwnedCourse(courseID, instructorID uint) error {
	_, err := s.CourseRepo.FindOwned(courseID, instructorID)
	if err == gorm.ErrRecordNotFound {
		return util.ErrCourseNotFound
	}
	return err
}

type CreateQuizInput struct {
	Title       string
	Description string
	LessonID    *uint
}

func (s *QuizService) CreateQuiz(courseID, instructorID uint, in CreateQuizInput) (*model.Quiz, error) {
	if err := s.requireOwnedCourse(courseID, instructorID); err != nil {
		return nil, err
	}

	// An attached lesson must belong to the same course.
	if in.LessonID != nil {
		if _, err := s.LessonRepo.FindInCourse(*in.LessonID, courseID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, util.ErrLessonNotFound
			}
			return nil, err
		}
	}

	quiz := &model.Quiz{
		CourseID:    &courseID,
		LessonID:    in.LessonID,
		Title:       in.Title,
		Description: in.Description,
	}

	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) ListQuizzes(courseID, instructorID uint) ([]model.Quiz, error) {
	if err := s.requireOwnedCourse(courseID, instructorID); err != nil {
		return nil, err
	}
	return s.QuizRepo.ListByCourse(courseID)
}

// QuizDetail bundles a quiz with its ordered questions and reward table.
type QuizDetail struct {
	Quiz      model.Quiz           `json:"quiz"`
	Questions []model.QuizQuestion `json:"questions"`
	Rewards   []model.QuizReward   `json:"rewards"`
}

func (s *QuizService) GetQuizDetail(quizID, courseID, instructorID uint) (*QuizDetail, error) {
	if err := s.requireOwnedCourse(courseID, instructorID); err != nil {
		return nil, err
	}

	quiz, err := s.QuizRepo.FindInCourse(quizID, courseID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}

	questions, err := s.QuizRepo.ListQuestions(quizID)
	if err != nil {
		return nil, err
	}
	rewards, err := s.QuizRepo.ListRewards(quizID)
	if err != nil {
		return nil, err
	}

	return &QuizDetail{Quiz: *quiz, Questions: questions, Rewards: rewards}, nil
}

type UpdateQuizInput struct {
	Title       *string
	Description *string
}

func (s *QuizService) UpdateQuiz(quizID, courseID, instructorID uint, in UpdateQuizInput) (*model.Quiz, error) {
	if err := s.requireOwnedCourse(courseID, instructorID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}

	affected, err := s.QuizRepo.UpdateInCourse(quizID, courseID, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, util.ErrQuizNotFound
	}

	quiz, err := s.QuizRepo.FindInCourse(quizID, courseID)
	if err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) DeleteQuiz(quizID, courseID, instructorID uint) error {
	if err := s.requireOwnedCourse(courseID, instructorID); err != nil {
		return err
	}

	affected, err := s.QuizRepo.DeleteInCourse(quizID, courseID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return util.ErrQuizNotFound
	}
	return nil
}

type CreateQuestionInput struct {
	QuestionType string
	Prompt       string
	Options      string
	Answer       string
	Points       int
}

func (s *QuizService) CreateQuestion(quizID, courseID, instructorID uint, in CreateQuestionInput) (*model.QuizQuestion, error) {
	if err := s.requireOwnedCourse(courseID, instructorID); err != nil {
		return nil, err
	}
	if _, err := s.QuizRepo.FindInCourse(quizID, courseID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	orderIndex, err := s.QuizRepo.NextQuestionOrderIndex(quizID)
	if err != nil {
		return nil, err
	}

	points := in.Points
	if points == 0 {
		points = 1
	}

	question := &model.QuizQuestion{
		QuizID:       quizID,
		QuestionType: model.QuestionType(in.QuestionType),
		Prompt:       in.Prompt,
		Options:      in.Options,
		Answer:       in.Answer,
		Points:       points,
		OrderIndex:   orderIndex,
	}

	if err := s.QuizRepo.CreateQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

type UpdateQuestionInput struct {
	QuestionType *string
	Prompt       *string
	Options      *string
	Answer       *string
	Points       *int
}

func (s *QuizService) UpdateQuestion(questionID, quizID, courseID, instructorID uint, in UpdateQuestionInput) (*model.QuizQuestion, error) {
	if err := s.requireOwnedCourse(courseID, instructorID); err != nil {
		return nil, err
	}
	if _, err := s.QuizRepo.FindInCourse(quizID, courseID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.QuestionType != nil {
		updates["question_type"] = *in.QuestionType
	}
	if in.Prompt != nil {
		updates["prompt"] = *in.Prompt
	}
	if in.Options != nil {
		updates["options"] = *in.Options
	}
	if in.Answer != nil {
		updates["answer"] = *in.Answer
	}
	if in.Points != nil {
		updates["points"] = *in.Points
	}

	affected, err := s.QuizRepo.UpdateQuestion(questionID, quizID, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, util.ErrQuestionNotFound
	}

	var question model.QuizQuestion
	if err := s.QuizRepo.DB.First(&question, questionID).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *QuizService) DeleteQuestion(questionID, quizID, courseID, instructorID uint) error {
	if err := s.requireOwnedCourse(courseID, instructorID); err != nil {
		return err
	}
	if _, err := s.QuizRepo.FindInCourse(quizID, courseID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrQuizNotFound
		}
		return err
	}

	affected, err := s.QuizRepo.DeleteQuestion(questionID, quizID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return util.ErrQuestionNotFound
	}
	return nil
}

type RewardInput struct {
	AttemptNumber int
	PointsAwarded int
}

// ReplaceRewards swaps the quiz's whole reward table for the provided
// set. An empty set leaves the quiz with zero rewards.
func (s *QuizService) ReplaceRewards(quizID, courseID, instructorID uint, inputs []RewardInput) ([]model.QuizReward, error) {
	if err := s.requireOwnedCourse(courseID, instructorID); err != nil {
		return nil, err
	}
	if _, err := s.QuizRepo.FindInCourse(quizID, courseID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	rewards := make([]model.QuizReward, 0, len(inputs))
	for _, in := range inputs {
		rewards = append(rewards, model.QuizReward{
			QuizID:        quizID,
			AttemptNumber: in.AttemptNumber,
			PointsAwarded: in.PointsAwarded,
		})
	}

	if err := s.QuizRepo.ReplaceRewards(quizID, rewards); err != nil {
		return nil, err
	}
	return s.QuizRepo.ListRewards(quizID)
}
