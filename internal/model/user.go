package model

import (
	"time"
)

// swagger:model User
type User struct {
	BaseModel
	ExternalID string    `gorm:"size:191;uniqueIndex;not null" json:"externalId"`
	Email      string    `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Name       string    `gorm:"size:100" json:"name"`
	Avatar     string    `gorm:"size:255" json:"avatar"`
	Role       UserRole  `gorm:"size:20;default:'learner'" json:"role"`
	Disabled   bool      `gorm:"default:false" json:"disabled"`
	LastSeen   time.Time `json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}

// InstructorProfile is the role-specific row mirrored by the identity
// sync webhook when a user carries the instructor role.
type InstructorProfile struct {
	BaseModel
	UserID   uint   `gorm:"uniqueIndex;not null" json:"userId"`
	Headline string `gorm:"size:255" json:"headline"`
	Bio      string `gorm:"type:text" json:"bio"`
}

// LearnerProfile is the role-specific row mirrored for learners.
type LearnerProfile struct {
	BaseModel
	UserID    uint   `gorm:"uniqueIndex;not null" json:"userId"`
	Interests string `gorm:"size:255" json:"interests"`
}
