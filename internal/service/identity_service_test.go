package service

import (
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestRoleFromClaims(t *testing.T) {
	svc := NewIdentityService(testConfig())

	tests := []struct {
		name  string
		claim string
		want  model.UserRole
	}{
		{"admin claim", "admin", model.Admin},
		{"instructor claim", "instructor", model.Instructor},
		{"learner claim", "learner", model.Learner},
		{"unknown claim degrades", "superuser", model.Learner},
		{"empty claim degrades", "", model.Learner},
		{"case-sensitive", "Admin", model.Learner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.RoleFromClaims(&util.Claims{Role: tt.claim}))
		})
	}
}

func TestRoleFromClaimsNilClaims(t *testing.T) {
	svc := NewIdentityService(testConfig())
	assert.Equal(t, model.Learner, svc.RoleFromClaims(nil))
}
