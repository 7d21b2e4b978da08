package model

// BadgeKind names the counter a badge rule is compared against.
type BadgeKind string

const (
	BadgeCoursesCompleted BadgeKind = "courses_completed"
	BadgeLessonsCompleted BadgeKind = "lessons_completed"
	BadgeReviewsWritten   BadgeKind = "reviews_written"
)

// BadgeRule is a static threshold: a learner earns the badge once the
// counter for Kind reaches Threshold. Rules are seeded at migration time.
// swagger:model BadgeRule
type BadgeRule struct {
	BaseModel
	Code        string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Label       string    `gorm:"size:100;not null" json:"label"`
	Description string    `gorm:"size:255" json:"description"`
	Kind        BadgeKind `gorm:"size:30;not null" json:"kind"`
	Threshold   int       `gorm:"not null" json:"threshold"`
	Enabled     bool      `gorm:"default:true" json:"enabled"`
}

func (BadgeRule) TableName() string {
	return "badge_rules"
}
