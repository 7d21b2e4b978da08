package model

import (
	"time"
)

type CourseStatus string

const (
	CourseDraft     CourseStatus = "draft"
	CoursePublished CourseStatus = "published"
	CourseArchived  CourseStatus = "archived"
)

func IsValidCourseStatus(s string) bool {
	switch CourseStatus(s) {
	case CourseDraft, CoursePublished, CourseArchived:
		return true
	}
	return false
}

type CourseVisibility string

const (
	VisibilityEveryone CourseVisibility = "everyone"
	VisibilitySignedIn CourseVisibility = "signed_in"
)

func IsValidCourseVisibility(s string) bool {
	return CourseVisibility(s) == VisibilityEveryone || CourseVisibility(s) == VisibilitySignedIn
}

// swagger:model Course
type Course struct {
	BaseModel
	InstructorID uint             `gorm:"index;not null" json:"instructorId"`
	Title        string           `gorm:"size:255;not null" json:"title"`
	Slug         string           `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description  string           `gorm:"type:text" json:"description"`
	Status       CourseStatus     `gorm:"size:20;default:'draft'" json:"status"`
	Visibility   CourseVisibility `gorm:"size:20;default:'everyone'" json:"visibility"`
	PublishedAt  *time.Time       `json:"publishedAt"`

	// Denormalized counters, maintained by the enrollment and review services.
	EnrollmentCount int     `gorm:"default:0" json:"enrollmentCount"`
	AverageRating   float64 `gorm:"default:0" json:"averageRating"`
	TotalReviews    int     `gorm:"default:0" json:"totalReviews"`
}

func (Course) TableName() string {
	return "courses"
}
