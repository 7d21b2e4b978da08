package service

import (
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(repository.NewUserRepository(db), testConfig())
}

func TestGetUserByIDMissing(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	_, err := svc.GetUserByID(42)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestUpdateUserAppliesPartialFields(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	user := createUser(t, db, "ext-1", "user@example.com", model.Learner)

	disabled := true
	updated, err := svc.UpdateUser(user.ID, UpdateUserInput{Disabled: &disabled})
	require.NoError(t, err)

	assert.True(t, updated.Disabled)
	assert.Equal(t, user.Name, updated.Name)
}

func TestChangeRoleRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	user := createUser(t, db, "ext-1", "user@example.com", model.Learner)

	_, err := svc.ChangeRole(user.ID, "superuser", "")
	assert.ErrorIs(t, err, util.ErrInvalidRole)
}

func TestChangeRoleToAdminNeedsEnrollCode(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	user := createUser(t, db, "ext-1", "user@example.com", model.Instructor)

	_, err := svc.ChangeRole(user.ID, string(model.Admin), "wrong-code")
	assert.ErrorIs(t, err, util.ErrInvalidEnrollCode)

	updated, err := svc.ChangeRole(user.ID, string(model.Admin), "enroll-code-42")
	require.NoError(t, err)
	assert.Equal(t, model.Admin, updated.Role)
}

func TestChangeRoleCreatesMatchingProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	user := createUser(t, db, "ext-1", "user@example.com", model.Learner)

	_, err := svc.ChangeRole(user.ID, string(model.Instructor), "")
	require.NoError(t, err)

	var profiles int64
	require.NoError(t, db.Model(&model.InstructorProfile{}).Where("user_id = ?", user.ID).Count(&profiles).Error)
	assert.Equal(t, int64(1), profiles)
}

func TestDeleteUserCascades(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	instructor := createUser(t, db, "ext-1", "teach@example.com", model.Instructor)
	learner := createUser(t, db, "ext-2", "learn@example.com", model.Learner)
	course := createCourse(t, db, instructor.ID, model.CoursePublished)
	enrollLearner(t, db, course.ID, learner.ID)

	require.NoError(t, svc.DeleteUser(learner.ID))
	assert.ErrorIs(t, svc.DeleteUser(learner.ID), util.ErrUserNotFound)

	var enrollments int64
	require.NoError(t, db.Model(&model.Enrollment{}).Where("user_id = ?", learner.ID).Count(&enrollments).Error)
	assert.Equal(t, int64(0), enrollments)
}
