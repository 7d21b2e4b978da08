package model

import (
	"time"
)

// InvitationTTL is the fixed lifetime of a course invitation.
const InvitationTTL = 7 * 24 * time.Hour

// swagger:model CourseInvitation
type CourseInvitation struct {
	UUIDBase
	CourseID   uint       `gorm:"index;not null" json:"courseId"`
	Email      string     `gorm:"size:191;not null" json:"email"`
	Token      string     `gorm:"size:64;uniqueIndex;not null" json:"token"`
	ExpiresAt  time.Time  `gorm:"not null" json:"expiresAt"`
	AcceptedAt *time.Time `json:"acceptedAt"`
}

func (CourseInvitation) TableName() string {
	return "course_invitations"
}
