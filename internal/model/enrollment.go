package model

import (
	"time"
)

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentDropped   EnrollmentStatus = "dropped"
)

// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	CourseID uint             `gorm:"not null;uniqueIndex:idx_enrollment_course_user" json:"courseId"`
	UserID   uint             `gorm:"not null;uniqueIndex:idx_enrollment_course_user" json:"userId"`
	Status   EnrollmentStatus `gorm:"size:20;default:'active'" json:"status"`
	// ProgressPercentage is recomputed from lesson progress after every upsert;
	// the enrollment flips to completed exactly when it reaches 100.
	ProgressPercentage int        `gorm:"default:0" json:"progressPercentage"`
	CompletedAt        *time.Time `json:"completedAt"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// LessonProgress is one row per (enrollment, lesson) pair, upserted by
// that composite key. Time spent accumulates across upserts.
// swagger:model LessonProgress
type LessonProgress struct {
	BaseModel
	EnrollmentID     uint `gorm:"not null;uniqueIndex:idx_progress_enrollment_lesson" json:"enrollmentId"`
	LessonID         uint `gorm:"not null;uniqueIndex:idx_progress_enrollment_lesson" json:"lessonId"`
	Completed        bool `gorm:"default:false" json:"completed"`
	TimeSpentSeconds int  `gorm:"default:0" json:"timeSpentSeconds"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}
