package repository

import (
	"time"

	"learnhub_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByExternalID(externalID string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("external_id = ?", externalID).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateRole(userID uint, role model.UserRole) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{"role": role, "updated_at": time.Now()}).
		Error
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", time.Now()).
		Error
}

// UpsertByExternalID mirrors an identity-provider record into the users
// table, keyed by the provider-side id.
func (r *UserRepository) UpsertByExternalID(user *model.User) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "name", "avatar", "role", "updated_at",
		}),
	}).Create(user).Error
}

type UserFilter struct {
	Role   string
	Search string
}

func (r *UserRepository) List(filter UserFilter, limit, offset int) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	query := r.DB.Model(&model.User{})

	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", term, term)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&users).Error
	return users, total, err
}

// DeleteCascade hard-deletes the user and every dependent row in one
// transaction. The relational store is not trusted to cascade under
// AutoMigrate, so the dependents are removed explicitly.
func (r *UserRepository) DeleteCascade(user *model.User) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var enrollmentIDs []uint
		if err := tx.Model(&model.Enrollment{}).
			Where("user_id = ?", user.ID).
			Pluck("id", &enrollmentIDs).Error; err != nil {
			return err
		}

		if len(enrollmentIDs) > 0 {
			if err := tx.Where("enrollment_id IN ?", enrollmentIDs).
				Delete(&model.LessonProgress{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&model.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("email = ?", user.Email).Delete(&model.CourseInvitation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&model.InstructorProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&model.LearnerProfile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, user.ID).Error
	})
}

func (r *UserRepository) EnsureProfile(userID uint, role model.UserRole) error {
	switch role {
	case model.Instructor:
		return r.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(&model.InstructorProfile{UserID: userID}).Error
	default:
		return r.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(&model.LearnerProfile{UserID: userID}).Error
	}
}
