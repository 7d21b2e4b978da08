package service

import (
	"testing"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newInvitationService(db *gorm.DB) *InvitationService {
	return NewInvitationService(repository.NewInvitationRepository(db), repository.NewCourseRepository(db))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestIssueInvitationsNormalizesAndSkipsBlanks(t *testing.T) {
	db := newTestDB(t)
	svc := newInvitationService(db)
	instructor := createUser(t, db, "ext-1", "teach@example.com", model.Instructor)
	course := createCourse(t, db, instructor.ID, model.CoursePublished)

	invitations, err := svc.Issue(course.ID, instructor.ID, []string{
		"  Alice@Example.com ",
		"",
		"   ",
		"bob@example.com",
	})
	require.NoError(t, err)
	require.Len(t, invitations, 2)

	assert.Equal(t, "alice@example.com", invitations[0].Email)
	assert.Equal(t, "bob@example.com", invitations[1].Email)
	assert.NotEqual(t, invitations[0].Token, invitations[1].Token)
	assert.Len(t, invitations[0].Token, 48)
}

func TestIssueInvitationExpiryIsSevenDays(t *testing.T) {
	db := newTestDB(t)
	svc := newInvitationService(db)
	instructor := createUser(t, db, "ext-1", "teach@example.com", model.Instructor)
	course := createCourse(t, db, instructor.ID, model.CoursePublished)

	before := time.Now()
	invitations, err := svc.Issue(course.ID, instructor.ID, []string{"alice@example.com"})
	require.NoError(t, err)
	require.Len(t, invitations, 1)

	expected := before.Add(model.InvitationTTL)
	assert.WithinDuration(t, expected, invitations[0].ExpiresAt, 5*time.Second)
}

func TestIssueInvitationsRequiresOwnedCourse(t *testing.T) {
	db := newTestDB(t)
	svc := newInvitationService(db)
	owner := createUser(t, db, "ext-1", "owner@example.com", model.Instructor)
	other := createUser(t, db, "ext-2", "other@example.com", model.Instructor)
	course := createCourse(t, db, owner.ID, model.CoursePublished)

	_, err := svc.Issue(course.ID, other.ID, []string{"alice@example.com"})
	assert.ErrorIs(t, err, util.ErrCourseNotFound)

	_, err = svc.ListByCourse(course.ID, other.ID)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestListInvitationsReturnsIssuedRows(t *testing.T) {
	db := newTestDB(t)
	svc := newInvitationService(db)
	instructor := createUser(t, db, "ext-1", "teach@example.com", model.Instructor)
	course := createCourse(t, db, instructor.ID, model.CoursePublished)

	_, err := svc.Issue(course.ID, instructor.ID, []string{"alice@example.com", "bob@example.com"})
	require.NoError(t, err)

	listed, err := svc.ListByCourse(course.ID, instructor.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}
