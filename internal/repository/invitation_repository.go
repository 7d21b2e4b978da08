package repository

import (
	"learnhub_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvitationRepository struct {
	DB *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{DB: db}
}

// UpsertByToken inserts the invitation, idempotently succeeding on the
// astronomically unlikely token collision.
func (r *InvitationRepository) UpsertByToken(inv *model.CourseInvitation) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"course_id", "email", "expires_at", "updated_at",
		}),
	}).Create(inv).Error
}

func (r *InvitationRepository) FindByToken(token string) (*model.CourseInvitation, error) {
	var inv model.CourseInvitation
	err := r.DB.Where("token = ?", token).First(&inv).Error
	return &inv, err
}

func (r *InvitationRepository) ListByCourse(courseID uint) ([]model.CourseInvitation, error) {
	var invitations []model.CourseInvitation
	err := r.DB.Where("course_id = ?", courseID).Order("created_at DESC").Find(&invitations).Error
	return invitations, err
}

func (r *InvitationRepository) DeleteByUser(tx *gorm.DB, email string) error {
	return tx.Where("email = ?", email).Delete(&model.CourseInvitation{}).Error
}
