package model

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	ShortAnswer    QuestionType = "short_answer"
)

func IsValidQuestionType(s string) bool {
	switch QuestionType(s) {
	case MultipleChoice, TrueFalse, ShortAnswer:
		return true
	}
	return false
}

// swagger:model Quiz
type Quiz struct {
	BaseModel
	CourseID    *uint  `gorm:"index" json:"courseId"`
	LessonID    *uint  `gorm:"index" json:"lessonId"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// swagger:model QuizQuestion
type QuizQuestion struct {
	BaseModel
	QuizID       uint         `gorm:"index;not null" json:"quizId"`
	QuestionType QuestionType `gorm:"size:20;default:'multiple_choice'" json:"questionType"`
	Prompt       string       `gorm:"type:text;not null" json:"prompt"`
	// Options holds the serialized choice list for multiple_choice questions.
	Options    string `gorm:"type:text" json:"options"`
	Answer     string `gorm:"type:text" json:"answer"`
	Points     int    `gorm:"default:1" json:"points"`
	OrderIndex int    `gorm:"not null;default:0" json:"orderIndex"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// QuizReward maps an attempt number to the points it awards. The full set
// for a quiz is replaced as a unit, never patched row by row.
// swagger:model QuizReward
type QuizReward struct {
	BaseModel
	QuizID        uint `gorm:"not null;uniqueIndex:idx_reward_quiz_attempt" json:"quizId"`
	AttemptNumber int  `gorm:"not null;uniqueIndex:idx_reward_quiz_attempt" json:"attemptNumber"`
	PointsAwarded int  `gorm:"not null" json:"pointsAwarded"`
}

func (QuizReward) TableName() string {
	return "quiz_rewards"
}
