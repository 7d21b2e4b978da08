package app

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/pkg/database"
	"learnhub_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

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

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db := newTestDB(t)
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			ExpireTime: time.Hour,
		},
		Identity: config.IdentityConfig{
			APIBaseURL: "http://identity.test",
			APITimeout: time.Second,
		},
	}

	a := &App{Config: cfg, DB: db}
	repos := a.initRepositories(db)
	svcs := a.initServices(repos, cfg, db, nil)
	ctrls := a.initControllers(svcs, db)

	router := gin.New()
	a.registerRoutes(router, ctrls, repos, svcs, cfg)
	return router
}

func TestRouteSurface(t *testing.T) {
	router := testRouter(t)

	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	expected := []string{
		"GET /api/health",
		"POST /api/webhooks/identity",
		"GET /api/courses/catalog",
		"GET /api/courses/:id/reviews",

		"POST /api/learner/courses/:id/enroll",
		"GET /api/learner/enrollments",
		"POST /api/learner/courses/:id/progress",
		"POST /api/learner/courses/:id/reviews",
		"GET /api/learner/badges",

		"POST /api/courses",
		"GET /api/courses",
		"GET /api/courses/:id",
		"PATCH /api/courses/:id",
		"DELETE /api/courses/:id",
		"POST /api/courses/:id/publish",
		"POST /api/courses/:id/lessons",
		"GET /api/courses/:id/lessons",
		"PATCH /api/courses/:id/lessons/:lessonId",
		"DELETE /api/courses/:id/lessons/:lessonId",
		"POST /api/courses/:id/quizzes",
		"GET /api/courses/:id/quizzes",
		"GET /api/courses/:id/quizzes/:quizId",
		"PATCH /api/courses/:id/quizzes/:quizId",
		"DELETE /api/courses/:id/quizzes/:quizId",
		"POST /api/courses/:id/quizzes/:quizId/questions",
		"PATCH /api/courses/:id/quizzes/:quizId/questions/:questionId",
		"DELETE /api/courses/:id/quizzes/:quizId/questions/:questionId",
		"PUT /api/courses/:id/quizzes/:quizId/rewards",
		"POST /api/courses/:id/invitations",
		"GET /api/courses/:id/invitations",
		"POST /api/uploads/lesson-media",
		"GET /api/instructor/dashboard",

		"GET /api/admin/users",
		"GET /api/admin/users/:id",
		"PUT /api/admin/users/:id",
		"PUT /api/admin/users/:id/role",
		"DELETE /api/admin/users/:id",

		"GET /metrics",
	}
	for _, want := range expected {
		assert.True(t, registered[want], "missing route %s", want)
	}

	retired := []string{
		"POST /api/courses/:id/enroll",
		"POST /api/courses/:id/progress",
		"POST /api/courses/:id/reviews",
		"GET /api/enrollments",
		"GET /api/badges",
		"GET /api/catalog/courses",
		"GET /api/catalog/courses/:id/reviews",
		"GET /api/dashboard/instructor",
		"POST /api/courses/:id/media",
		"PATCH /api/admin/users/:id",
	}
	for _, gone := range retired {
		assert.False(t, registered[gone], "unexpected route %s", gone)
	}
}

func TestLearnerRoutesResolveUnderPrefix(t *testing.T) {
	router := testRouter(t)

	// The prefixed path reaches the auth layer.
	req := httptest.NewRequest(http.MethodPost, "/api/learner/courses/1/enroll", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The unprefixed shape does not exist.
	req = httptest.NewRequest(http.MethodPost, "/api/courses/1/enroll", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
