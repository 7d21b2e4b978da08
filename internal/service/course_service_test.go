package service

import (
	"context"
	"strings"
	"testing"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCourseStartsAsDraft(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)
	instructor := createUser(t, db, "ext-1", "teach@example.com", model.Instructor)

	course, err := svc.CreateCourse(instructor.ID, CreateCourseInput{
		Title:       "Intro to Go!",
		Description: "A first course",
	})
	require.NoError(t, err)

	assert.Equal(t, model.CourseDraft, course.Status)
	assert.Equal(t, model.VisibilityEveryone, course.Visibility)
	assert.Nil(t, course.PublishedAt)
	assert.True(t, strings.HasPrefix(course.Slug, "intro-to-go-"))
}

func TestCreateCourseSlugsDoNotCollide(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)
	instructor := createUser(t, db, "ext-1", "teach@example.com", model.Instructor)

	a, err := svc.CreateCourse(instructor.ID, CreateCourseInput{Title: "Same Title"})
	require.NoError(t, err)
	b, err := svc.CreateCourse(instructor.ID, CreateCourseInput{Title: "Same Title"})
	require.NoError(t, err)

	assert.NotEqual(t, a.Slug, b.Slug)
}

func TestUpdateCourseByNonOwnerIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)
	owner := createUser(t, db, "ext-1", "owner@example.com", model.Instructor)
	other := createUser(t, db, "ext-2", "other@example.com", model.Instructor)
	course := createCourse(t, db, owner.ID, model.CourseDraft)

	title := "Hijacked"
	_, err := svc.UpdateCourse(course.ID, other.ID, UpdateCourseInput{Title: &title})
	assert.ErrorIs(t, err, util.ErrCourseNotFound)

	var reloaded model.Course
	require.NoError(t, db.First(&reloaded, course.ID).Error)
	assert.Equal(t, "Test Course", reloaded.Title)
}

func TestUpdateCourseAppliesOnlyProvidedFields(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)
	instructor := createUser(t, db, "ext-1", "teach@example.com", model.Instructor)
	course := createCourse(t, db, instructor.ID, model.CourseDraft)

	desc := "New description"
	updated, err := svc.UpdateCourse(course.ID, instructor.ID, UpdateCourseInput{Description: &desc})
	require.NoError(t, err)

	assert.Equal(t, "Test Course", updated.Title)
	assert.Equal(t, "New description", updated.Description)
	assert.Equal(t, model.CourseDraft, updated.Status)
}

func TestPublishCourseStampsTimestampOnce(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)
	instructor := createUser(t, db, "ext-1", "teach@example.com", model.Instructor)
	course := createCourse(t, db, instructor.ID, model.CourseDraft)

	published, err := svc.PublishCourse(course.ID, instructor.ID)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	first := *published.PublishedAt

	// Archive then republish; the original timestamp must survive.
	archived := string(model.CourseArchived)
	_, err = svc.UpdateCourse(course.ID, instructor.ID, UpdateCourseInput{Status: &archived})
	require.NoError(t, err)

	republished, err := svc.PublishCourse(course.ID, instructor.ID)
	require.NoError(t, err)
	require.NotNil(t, republished.PublishedAt)
	assert.Equal(t, first.Unix(), republished.PublishedAt.Unix())
}

func TestDeleteCourseByNonOwnerIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)
	owner := createUser(t, db, "ext-1", "owner@example.com", model.Instructor)
	other := createUser(t, db, "ext-2", "other@example.com", model.Instructor)
	course := createCourse(t, db, owner.ID, model.CourseDraft)

	assert.ErrorIs(t, svc.DeleteCourse(course.ID, other.ID), util.ErrCourseNotFound)
	require.NoError(t, svc.DeleteCourse(course.ID, owner.ID))
	assert.ErrorIs(t, svc.DeleteCourse(course.ID, owner.ID), util.ErrCourseNotFound)
}

func TestPublicCatalogFiltersUnlistedCourses(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)
	instructor := createUser(t, db, "ext-1", "teach@example.com", model.Instructor)

	visible := createCourse(t, db, instructor.ID, model.CoursePublished)
	createCourse(t, db, instructor.ID, model.CourseDraft)

	restricted := createCourse(t, db, instructor.ID, model.CoursePublished)
	require.NoError(t, db.Model(&model.Course{}).
		Where("id = ?", restricted.ID).
		Update("visibility", model.VisibilitySignedIn).Error)

	courses, total, err := svc.PublicCatalog(context.Background(), util.DefaultPageLimit, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, courses, 1)
	assert.Equal(t, visible.ID, courses[0].ID)
}

func TestListCoursesFiltersByStatusAndSearch(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)
	instructor := createUser(t, db, "ext-1", "teach@example.com", model.Instructor)

	createCourse(t, db, instructor.ID, model.CourseDraft)
	published := createCourse(t, db, instructor.ID, model.CoursePublished)
	require.NoError(t, db.Model(&model.Course{}).
		Where("id = ?", published.ID).
		Update("title", "Advanced Networking").Error)

	courses, total, err := svc.ListCourses(repository.CourseFilter{
		InstructorID: instructor.ID,
		Status:       string(model.CoursePublished),
		Search:       "network",
	}, util.DefaultPageLimit, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, courses, 1)
	assert.Equal(t, published.ID, courses[0].ID)
}
