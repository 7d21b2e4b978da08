package model

// Review is at most one row per (course, learner); a second submission
// updates the existing row instead of inserting a new one.
// swagger:model Review
type Review struct {
	BaseModel
	CourseID uint   `gorm:"not null;uniqueIndex:idx_review_course_user" json:"courseId"`
	UserID   uint   `gorm:"not null;uniqueIndex:idx_review_course_user" json:"userId"`
	Rating   int    `gorm:"not null" json:"rating"`
	Comment  string `gorm:"type:text" json:"comment"`
}

func (Review) TableName() string {
	return "reviews"
}
