package middleware

import (
	"strings"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"learnhub_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RoleResolver maps session claims to an effective role. The identity
// adapter owns every role decision; the middleware only consumes it.
type RoleResolver interface {
	RoleFromClaims(claims *util.Claims) model.UserRole
}

// AuthMiddleware validates the bearer session token, maps the provider's
// user id to the internal users row and injects a Principal into the
// context. Handlers never re-resolve identity after this point.
//
// A missing internal mapping is a 404, not an authorization failure: the
// session is valid but the webhook mirror has not created the row yet.
func AuthMiddleware(cfg *config.Config, users *repository.UserRepository, roles RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		user, err := users.FindByExternalID(claims.Subject)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				util.NotFound(c)
			} else {
				util.LogInternalError(c, err)
			}
			c.Abort()
			return
		}

		if user.Disabled {
			util.Forbidden(c)
			c.Abort()
			return
		}

		util.SetPrincipal(c, &util.Principal{
			UserID:     user.ID,
			ExternalID: user.ExternalID,
			Email:      user.Email,
			Role:       roles.RoleFromClaims(claims),
		})
		c.Next()
	}
}

// TryAuthMiddleware injects a principal when a valid token is present and
// lets the request through either way. Used on public reads that behave
// differently for signed-in callers.
func TryAuthMiddleware(cfg *config.Config, users *repository.UserRepository, roles RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.FindByExternalID(claims.Subject)
		if err != nil || user.Disabled {
			c.Next()
			return
		}

		util.SetPrincipal(c, &util.Principal{
			UserID:     user.ID,
			ExternalID: user.ExternalID,
			Email:      user.Email,
			Role:       roles.RoleFromClaims(claims),
		})
		c.Next()
	}
}

// RequireRole is the hierarchical capability check: admin passes every
// guard, instructor passes instructor and learner guards, learner passes
// only learner guards.
func RequireRole(required model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := util.GetPrincipal(c)
		if p == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if !model.RoleAtLeast(p.Role, required) {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

type UserActivityRepo interface {
	UpdateLastSeen(userID uint) error
}

// ActivityMiddleware records last-seen asynchronously so it never blocks
// the request.
func ActivityMiddleware(repo UserActivityRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p := util.GetPrincipal(c); p != nil {
			go func(userID uint) {
				if err := repo.UpdateLastSeen(userID); err != nil {
					logger.Log.Warn("Failed to record user activity",
						zap.Uint("userId", userID), zap.Error(err))
				}
			}(p.UserID)
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Query("token")
}
