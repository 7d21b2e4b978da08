package util

import (
	"learnhub_backend/internal/model"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// Principal is the authenticated caller, resolved once at the request
// boundary: the internal user id, the identity-provider id, and the
// validated role. Handlers read it from the context instead of
// re-resolving identity inline.
type Principal struct {
	UserID     uint
	ExternalID string
	Email      string
	Role       model.UserRole
}

func SetPrincipal(c *gin.Context, p *Principal) {
	c.Set(principalKey, p)
}

func GetPrincipal(c *gin.Context) *Principal {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil
	}
	p, ok := v.(*Principal)
	if !ok {
		return nil
	}
	return p
}
