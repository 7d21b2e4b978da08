package service

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

type InvitationService struct {
	InvitationRepo *repository.InvitationRepository
	CourseRepo     *repository.CourseRepository
}

func NewInvitationService(invitationRepo *repository.InvitationRepository, courseRepo *repository.CourseRepository) *InvitationService {
	return &InvitationService{
		InvitationRepo: invitationRepo,
		CourseRepo:     courseRepo,
	}
}

func (s *InvitationService) requireOwnedCourse(courseID, instructorID uint) error {
	_, err := s.CourseRepo.FindOwned(courseID, instructorID)
	if err == gorm.ErrRecordNotFound {
		return util.ErrCourseNotFound
	}
	return err
}

// NormalizeEmail trims whitespace and lowercases, so the same address
// never produces two invitation rows differing only in case.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func newInvitationToken() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Issue creates one invitation per address, each with its own random
// token and a fixed 7-day expiry. Blank addresses are skipped. A token
// collision resolves idempotently through the upsert.
func (s *InvitationService) Issue(courseID, instructorID uint, emails []string) ([]model.CourseInvitation, error) {
	if err := s.requireOwnedCourse(courseID, instructorID); err != nil {
		return nil, err
	}

	now := time.Now()
	invitations := make([]model.CourseInvitation, 0, len(emails))
	for _, raw := range emails {
		email := NormalizeEmail(raw)
		if email == "" {
			continue
		}

		token, err := newInvitationToken()
		if err != nil {
			return nil, err
		}

		inv := model.CourseInvitation{
			CourseID:  courseID,
			Email:     email,
			Token:     token,
			ExpiresAt: now.Add(model.InvitationTTL),
		}
		if err := s.InvitationRepo.UpsertByToken(&inv); err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}

	return invitations, nil
}

func (s *InvitationService) ListByCourse(courseID, instructorID uint) ([]model.CourseInvitation, error) {
	if err := s.requireOwnedCourse(courseID, instructorID); err != nil {
		return nil, err
	}
	return s.InvitationRepo.ListByCourse(courseID)
}
