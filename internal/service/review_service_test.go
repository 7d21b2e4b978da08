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

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(
		repository.NewReviewRepository(db),
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
	)
}

func enrollLearner(t *testing.T, db *gorm.DB, courseID, userID uint) {
	t.Helper()
	_, err := newEnrollmentService(db).Enroll(courseID, userID)
	require.NoError(t, err)
}

func TestSubmitReviewRequiresEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	instructor := createUser(t, db, "ext-1", "teach@example.com", model.Instructor)
	learner := createUser(t, db, "ext-2", "learn@example.com", model.Learner)
	course := createCourse(t, db, instructor.ID, model.CoursePublished)

	_, _, err := svc.Submit(course.ID, learner.ID, SubmitReviewInput{Rating: 5})
	assert.ErrorIs(t, err, util.ErrNotEnrolled)
}

func TestSubmitReviewCreatesThenUpdatesInPlace(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	instructor := createUser(t, db, "ext-1", "teach@example.com", model.Instructor)
	learner := createUser(t, db, "ext-2", "learn@example.com", model.Learner)
	course := createCourse(t, db, instructor.ID, model.CoursePublished)
	enrollLearner(t, db, course.ID, learner.ID)

	first, created, err := svc.Submit(course.ID, learner.ID, SubmitReviewInput{Rating: 3, Comment: "Okay"})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := svc.Submit(course.ID, learner.ID, SubmitReviewInput{Rating: 5, Comment: "Great after all"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&model.Review{}).Where("course_id = ?", course.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSubmitReviewRefreshesCourseRating(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	instructor := createUser(t, db, "ext-1", "teach@example.com", model.Instructor)
	alice := createUser(t, db, "ext-2", "alice@example.com", model.Learner)
	bob := createUser(t, db, "ext-3", "bob@example.com", model.Learner)
	course := createCourse(t, db, instructor.ID, model.CoursePublished)
	enrollLearner(t, db, course.ID, alice.ID)
	enrollLearner(t, db, course.ID, bob.ID)

	_, _, err := svc.Submit(course.ID, alice.ID, SubmitReviewInput{Rating: 4})
	require.NoError(t, err)
	_, _, err = svc.Submit(course.ID, bob.ID, SubmitReviewInput{Rating: 2})
	require.NoError(t, err)

	var reloaded model.Course
	require.NoError(t, db.First(&reloaded, course.ID).Error)
	assert.Equal(t, 2, reloaded.TotalReviews)
	assert.InDelta(t, 3.0, reloaded.AverageRating, 0.001)
}

func TestListReviewsHonorsCourseVisibility(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	instructor := createUser(t, db, "ext-1", "teach@example.com", model.Instructor)
	course := createCourse(t, db, instructor.ID, model.CoursePublished)
	require.NoError(t, db.Model(&model.Course{}).
		Where("id = ?", course.ID).
		Update("visibility", model.VisibilitySignedIn).Error)

	_, _, err := svc.ListByCourse(course.ID, false, util.DefaultPageLimit, 0)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)

	_, total, err := svc.ListByCourse(course.ID, true, util.DefaultPageLimit, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestListReviewsHidesUnpublishedCourses(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	instructor := createUser(t, db, "ext-1", "teach@example.com", model.Instructor)
	draft := createCourse(t, db, instructor.ID, model.CourseDraft)

	_, _, err := svc.ListByCourse(draft.ID, true, util.DefaultPageLimit, 0)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}
