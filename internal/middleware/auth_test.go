package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"
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

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			ExpireTime: time.Hour,
		},
	}
}

func seedUser(t *testing.T, db *gorm.DB, externalID string, role model.UserRole, disabled bool) *model.User {
	t.Helper()
	user := &model.User{
		ExternalID: externalID,
		Email:      externalID + "@example.com",
		Role:       role,
		Disabled:   disabled,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func sessionToken(t *testing.T, cfg *config.Config, externalID string, role model.UserRole) string {
	t.Helper()
	token, err := util.GenerateJWT(externalID, externalID+"@example.com", string(role), cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)
	return token
}

func authedRouter(cfg *config.Config, db *gorm.DB, required model.UserRole) *gin.Engine {
	users := repository.NewUserRepository(db)
	router := gin.New()
	group := router.Group("/")
	group.Use(AuthMiddleware(cfg, users, service.NewIdentityService(cfg)))
	if required != "" {
		group.Use(RequireRole(required))
	}
	group.GET("/probe", func(c *gin.Context) {
		p := util.GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"userId": p.UserID, "role": p.Role})
	})
	return router
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	cfg := testConfig()
	router := authedRouter(cfg, newTestDB(t), "")

	w := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	cfg := testConfig()
	router := authedRouter(cfg, newTestDB(t), "")

	w := doRequest(router, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareUnmappedUserIsNotFound(t *testing.T) {
	cfg := testConfig()
	db := newTestDB(t)
	router := authedRouter(cfg, db, "")

	// Valid session but the webhook mirror has no row for this id yet.
	w := doRequest(router, sessionToken(t, cfg, "ghost", model.Learner))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthMiddlewareBlocksDisabledUser(t *testing.T) {
	cfg := testConfig()
	db := newTestDB(t)
	seedUser(t, db, "banned", model.Learner, true)
	router := authedRouter(cfg, db, "")

	w := doRequest(router, sessionToken(t, cfg, "banned", model.Learner))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddlewareInjectsPrincipal(t *testing.T) {
	cfg := testConfig()
	db := newTestDB(t)
	user := seedUser(t, db, "alice", model.Instructor, false)
	router := authedRouter(cfg, db, "")

	w := doRequest(router, sessionToken(t, cfg, "alice", model.Instructor))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), fmt.Sprintf(`"userId":%d`, user.ID))
	assert.Contains(t, w.Body.String(), `"role":"instructor"`)
}

func TestRequireRoleHierarchy(t *testing.T) {
	tests := []struct {
		name     string
		session  model.UserRole
		required model.UserRole
		want     int
	}{
		{"admin on admin guard", model.Admin, model.Admin, http.StatusOK},
		{"admin on learner guard", model.Admin, model.Learner, http.StatusOK},
		{"instructor on learner guard", model.Instructor, model.Learner, http.StatusOK},
		{"instructor on admin guard", model.Instructor, model.Admin, http.StatusForbidden},
		{"learner on instructor guard", model.Learner, model.Instructor, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			db := newTestDB(t)
			seedUser(t, db, "subject", tt.session, false)
			router := authedRouter(cfg, db, tt.required)

			w := doRequest(router, sessionToken(t, cfg, "subject", tt.session))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestSessionRoleDegradesInvalidClaim(t *testing.T) {
	cfg := testConfig()
	db := newTestDB(t)
	seedUser(t, db, "odd", model.Learner, false)
	router := authedRouter(cfg, db, "")

	w := doRequest(router, sessionToken(t, cfg, "odd", model.UserRole("superuser")))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"learner"`)
}

func TestTryAuthMiddlewareNeverBlocks(t *testing.T) {
	cfg := testConfig()
	db := newTestDB(t)
	users := repository.NewUserRepository(db)

	router := gin.New()
	router.GET("/probe", TryAuthMiddleware(cfg, users, service.NewIdentityService(cfg)), func(c *gin.Context) {
		signedIn := util.GetPrincipal(c) != nil
		c.JSON(http.StatusOK, gin.H{"signedIn": signedIn})
	})

	w := doRequest(router, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"signedIn":false`)

	seedUser(t, db, "alice", model.Learner, false)
	w = doRequest(router, sessionToken(t, cfg, "alice", model.Learner))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"signedIn":true`)
}

func TestActivityMiddlewareRecordsLastSeen(t *testing.T) {
	cfg := testConfig()
	db := newTestDB(t)
	user := seedUser(t, db, "alice", model.Learner, false)
	users := repository.NewUserRepository(db)

	router := gin.New()
	router.GET("/probe",
		AuthMiddleware(cfg, users, service.NewIdentityService(cfg)),
		ActivityMiddleware(users),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	start := time.Now().Add(-time.Second)

	w := doRequest(router, sessionToken(t, cfg, "alice", model.Learner))
	require.Equal(t, http.StatusOK, w.Code)

	// The write happens off the request path.
	require.Eventually(t, func() bool {
		var u model.User
		if err := db.First(&u, user.ID).Error; err != nil {
			return false
		}
		return u.LastSeen.After(start)
	}, 2*time.Second, 10*time.Millisecond)
}

type failingActivityRepo struct {
	called chan struct{}
}

func (f *failingActivityRepo) UpdateLastSeen(userID uint) error {
	f.called <- struct{}{}
	return errors.New("write failed")
}

func TestActivityMiddlewareToleratesWriteFailure(t *testing.T) {
	repo := &failingActivityRepo{called: make(chan struct{}, 1)}

	router := gin.New()
	router.GET("/probe", func(c *gin.Context) {
		util.SetPrincipal(c, &util.Principal{UserID: 7, Role: model.Learner})
	}, ActivityMiddleware(repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := doRequest(router, "")
	assert.Equal(t, http.StatusOK, w.Code)

	select {
	case <-repo.called:
	case <-time.After(2 * time.Second):
		t.Fatal("activity write was never attempted")
	}
}
