package service

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
)

type BadgeService struct {
	BadgeRepo      *repository.BadgeRepository
	EnrollmentRepo *repository.EnrollmentRepository
	ReviewRepo     *repository.ReviewRepository
}

func NewBadgeService(badgeRepo *repository.BadgeRepository, enrollmentRepo *repository.EnrollmentRepository, reviewRepo *repository.ReviewRepository) *BadgeService {
	return &BadgeService{
		BadgeRepo:      badgeRepo,
		EnrollmentRepo: enrollmentRepo,
		ReviewRepo:     reviewRepo,
	}
}

// EarnedBadge pairs a rule with the learner's current counter.
type EarnedBadge struct {
	Code        string          `json:"code"`
	Label       string          `json:"label"`
	Description string          `json:"description"`
	Kind        model.BadgeKind `json:"kind"`
	Threshold   int             `json:"threshold"`
	Progress    int64           `json:"progress"`
	Earned      bool            `json:"earned"`
}

// EarnedBadges compares each static rule's threshold against the
// learner's counters. Badges are derived, never stored.
func (s *BadgeService) EarnedBadges(userID uint) ([]EarnedBadge, error) {
	rules, err := s.BadgeRepo.ListEnabled()
	if err != nil {
		return nil, err
	}

	coursesCompleted, err := s.EnrollmentRepo.CountCompletedByUser(userID)
	if err != nil {
		return nil, err
	}
	lessonsCompleted, err := s.EnrollmentRepo.CountCompletedLessonsByUser(userID)
	if err != nil {
		return nil, err
	}
	reviewsWritten, err := s.ReviewRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	counters := map[model.BadgeKind]int64{
		model.BadgeCoursesCompleted: coursesCompleted,
		model.BadgeLessonsCompleted: lessonsCompleted,
		model.BadgeReviewsWritten:   reviewsWritten,
	}

	badges := make([]EarnedBadge, 0, len(rules))
	for _, rule := range rules {
		progress := counters[rule.Kind]
		badges = append(badges, EarnedBadge{
			Code:        rule.Code,
			Label:       rule.Label,
			Description: rule.Description,
			Kind:        rule.Kind,
			Threshold:   rule.Threshold,
			Progress:    progress,
			Earned:      progress >= int64(rule.Threshold),
		})
	}
	return badges, nil
}
