package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole("admin"))
	assert.True(t, IsValidRole("instructor"))
	assert.True(t, IsValidRole("learner"))

	assert.False(t, IsValidRole(""))
	assert.False(t, IsValidRole("superuser"))
	assert.False(t, IsValidRole("Admin"))
}

func TestRolePriorityOrdering(t *testing.T) {
	assert.Greater(t, RolePriority(Admin), RolePriority(Instructor))
	assert.Greater(t, RolePriority(Instructor), RolePriority(Learner))
	assert.Greater(t, RolePriority(Learner), RolePriority(UserRole("bogus")))
	assert.Equal(t, 0, RolePriority(UserRole("bogus")))
}

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		name     string
		have     UserRole
		required UserRole
		want     bool
	}{
		{"admin passes admin guard", Admin, Admin, true},
		{"admin passes instructor guard", Admin, Instructor, true},
		{"admin passes learner guard", Admin, Learner, true},
		{"instructor passes instructor guard", Instructor, Instructor, true},
		{"instructor passes learner guard", Instructor, Learner, true},
		{"instructor fails admin guard", Instructor, Admin, false},
		{"learner passes learner guard", Learner, Learner, true},
		{"learner fails instructor guard", Learner, Instructor, false},
		{"learner fails admin guard", Learner, Admin, false},
		{"unknown role fails every guard", UserRole("bogus"), Learner, false},
		{"unknown requirement never passes", Admin, UserRole("bogus"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoleAtLeast(tt.have, tt.required))
		})
	}
}

func TestRoleLabelFallback(t *testing.T) {
	assert.Equal(t, "Administrator", RoleLabel(Admin))
	assert.Equal(t, "Unknown Role", RoleLabel(UserRole("bogus")))
}
