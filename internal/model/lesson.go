package model

type LessonType string

const (
	LessonVideo      LessonType = "video"
	LessonText       LessonType = "text"
	LessonQuiz       LessonType = "quiz"
	LessonAssignment LessonType = "assignment"
)

func IsValidLessonType(s string) bool {
	switch LessonType(s) {
	case LessonVideo, LessonText, LessonQuiz, LessonAssignment:
		return true
	}
	return false
}

// swagger:model Lesson
type Lesson struct {
	BaseModel
	CourseID uint       `gorm:"index;not null" json:"courseId"`
	Title    string     `gorm:"size:255;not null" json:"title"`
	// Slug is derived from the title at creation time and never changes.
	Slug            string     `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	LessonType      LessonType `gorm:"size:20;default:'text'" json:"lessonType"`
	Content         string     `gorm:"type:text" json:"content"`
	VideoURL        string     `gorm:"size:512" json:"videoUrl"`
	DurationSeconds int        `gorm:"default:0" json:"durationSeconds"`
	OrderIndex      int        `gorm:"not null;default:0" json:"orderIndex"`
}

func (Lesson) TableName() string {
	return "lessons"
}
