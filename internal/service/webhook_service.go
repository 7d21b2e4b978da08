package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// WebhookEvent is an identity-provider lifecycle event. The provider is
// the source of truth for users; this service mirrors its records into
// the local store.
type WebhookEvent struct {
	Type string      `json:"type"`
	Data WebhookUser `json:"data"`
}

type WebhookUser struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
}

type WebhookService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewWebhookService(userRepo *repository.UserRepository, cfg *config.Config) *WebhookService {
	return &WebhookService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// VerifySignature checks the hex HMAC-SHA256 of "id.timestamp.body"
// against the shared webhook secret, in constant time.
func (s *WebhookService) VerifySignature(id, timestamp, signature string, body []byte) bool {
	if id == "" || timestamp == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(s.Cfg.Identity.WebhookSecret))
	mac.Write([]byte(id))
	mac.Write([]byte("."))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

func (s *WebhookService) ParseEvent(body []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// HandleEvent mirrors the event into the users table. Unknown event
// kinds are logged and acknowledged, not errors.
func (s *WebhookService) HandleEvent(event *WebhookEvent) error {
	switch event.Type {
	case EventUserCreated:
		return s.handleCreated(&event.Data)
	case EventUserUpdated:
		return s.handleUpdated(&event.Data)
	case EventUserDeleted:
		return s.handleDeleted(&event.Data)
	default:
		logger.Log.Info("Ignoring unrecognized identity webhook event",
			zap.String("type", event.Type))
		return nil
	}
}

// New users always start as learners; role upgrades arrive as
// user.updated events once the provider-side metadata changes.
func (s *WebhookService) handleCreated(data *WebhookUser) error {
	user := &model.User{
		ExternalID: data.ID,
		Email:      data.Email,
		Name:       data.Name,
		Avatar:     data.Avatar,
		Role:       model.Learner,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return err
	}
	return s.UserRepo.EnsureProfile(user.ID, model.Learner)
}

func (s *WebhookService) handleUpdated(data *WebhookUser) error {
	role := model.DefaultRole
	existing, err := s.UserRepo.FindByExternalID(data.ID)
	if err == nil {
		role = existing.Role
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	// A role claim on the event wins over the mirrored value, but only
	// when it is one of the known roles.
	if model.IsValidRole(data.Role) {
		role = model.UserRole(data.Role)
	}

	user := &model.User{
		ExternalID: data.ID,
		Email:      data.Email,
		Name:       data.Name,
		Avatar:     data.Avatar,
		Role:       role,
	}
	if err := s.UserRepo.UpsertByExternalID(user); err != nil {
		return err
	}

	upserted, err := s.UserRepo.FindByExternalID(data.ID)
	if err != nil {
		return err
	}
	return s.UserRepo.EnsureProfile(upserted.ID, role)
}

func (s *WebhookService) handleDeleted(data *WebhookUser) error {
	user, err := s.UserRepo.FindByExternalID(data.ID)
	if err == gorm.ErrRecordNotFound {
		// Already gone; deletion is idempotent.
		return nil
	}
	if err != nil {
		return err
	}
	return s.UserRepo.DeleteCascade(user)
}
