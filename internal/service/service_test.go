package service

import (
	"fmt"
	"os"
	"testing"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/pkg/database"
	"learnhub_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// newTestDB opens a private in-memory database and runs the full
// migration against it. Each test gets its own schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			ExpireTime: time.Hour,
		},
		Identity: config.IdentityConfig{
			APIBaseURL:      "http://identity.test",
			APITimeout:      time.Second,
			WebhookSecret:   "test-webhook-secret",
			AdminEnrollCode: "enroll-code-42",
		},
	}
}

func createUser(t *testing.T, db *gorm.DB, externalID, email string, role model.UserRole) *model.User {
	t.Helper()
	user := &model.User{
		ExternalID: externalID,
		Email:      email,
		Name:       email,
		Role:       role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createCourse(t *testing.T, db *gorm.DB, instructorID uint, status model.CourseStatus) *model.Course {
	t.Helper()
	course := &model.Course{
		InstructorID: instructorID,
		Title:        "Test Course",
		Slug:         fmt.Sprintf("test-course-%d", time.Now().UnixNano()),
		Status:       status,
		Visibility:   model.VisibilityEveryone,
	}
	if status == model.CoursePublished {
		now := time.Now()
		course.PublishedAt = &now
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

func createLesson(t *testing.T, db *gorm.DB, courseID uint, orderIndex int) *model.Lesson {
	t.Helper()
	lesson := &model.Lesson{
		CourseID:   courseID,
		Title:      fmt.Sprintf("Lesson %d", orderIndex),
		Slug:       fmt.Sprintf("lesson-%d-%d", orderIndex, time.Now().UnixNano()),
		LessonType: model.LessonText,
		OrderIndex: orderIndex,
	}
	require.NoError(t, db.Create(lesson).Error)
	return lesson
}

func newCourseService(db *gorm.DB) *CourseService {
	return NewCourseService(repository.NewCourseRepository(db), nil)
}

func newEnrollmentService(db *gorm.DB) *EnrollmentService {
	return NewEnrollmentService(
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
		repository.NewLessonRepository(db),
		db,
	)
}
