package service

import (
	"context"
	"fmt"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"

	"github.com/go-resty/resty/v2"
)

// IdentityService adapts the hosted identity provider. It offers two role
// lookups: the session-claim path (fast, possibly stale) and the
// live-fetch path against the provider's user API (authoritative, one
// network round trip). Destructive and role-changing endpoints use the
// live path.
type IdentityService struct {
	cfg    *config.IdentityConfig
	client *resty.Client
}

func NewIdentityService(cfg *config.Config) *IdentityService {
	client := resty.New().
		SetBaseURL(cfg.Identity.APIBaseURL).
		SetTimeout(cfg.Identity.APITimeout).
		SetAuthToken(cfg.Identity.APIKey)

	return &IdentityService{
		cfg:    &cfg.Identity,
		client: client,
	}
}

// RoleFromClaims returns the session's role claim iff it is one of the
// three known roles; anything else degrades to learner. Never fails.
func (s *IdentityService) RoleFromClaims(claims *util.Claims) model.UserRole {
	if claims != nil && model.IsValidRole(claims.Role) {
		return model.UserRole(claims.Role)
	}
	return model.DefaultRole
}

// providerUser mirrors the identity provider's user record shape.
type providerUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Metadata struct {
		Role string `json:"role"`
	} `json:"metadata"`
}

// FetchLiveRole round-trips to the provider's live user record instead of
// trusting the cached session claim. An unknown role in the live record
// degrades to learner the same way the claim path does.
func (s *IdentityService) FetchLiveRole(ctx context.Context, externalID string) (model.UserRole, error) {
	var pu providerUser
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&pu).
		Get("/users/" + externalID)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("identity provider returned %s for user %s", resp.Status(), externalID)
	}

	if model.IsValidRole(pu.Metadata.Role) {
		return model.UserRole(pu.Metadata.Role), nil
	}
	return model.DefaultRole, nil
}
