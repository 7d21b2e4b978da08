package service

import (
	"time"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewUserService(userRepo *repository.UserRepository, cfg *config.Config) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

func (s *UserService) ListUsers(filter repository.UserFilter, limit, offset int) ([]model.User, int64, error) {
	return s.UserRepo.List(filter, limit, offset)
}

func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

type UpdateUserInput struct {
	Name     *string
	Avatar   *string
	Disabled *bool
}

func (s *UserService) UpdateUser(id uint, in UpdateUserInput) (*model.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Avatar != nil {
		user.Avatar = *in.Avatar
	}
	if in.Disabled != nil {
		user.Disabled = *in.Disabled
	}
	user.UpdatedAt = time.Now()

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangeRole moves a user to a new role. Self-assigning admin requires
// the enrollment code from the environment, compared verbatim.
func (s *UserService) ChangeRole(id uint, role, enrollCode string) (*model.User, error) {
	if !model.IsValidRole(role) {
		return nil, util.ErrInvalidRole
	}

	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	newRole := model.UserRole(role)
	if newRole == model.Admin && enrollCode != s.Cfg.Identity.AdminEnrollCode {
		return nil, util.ErrInvalidEnrollCode
	}

	if err := s.UserRepo.UpdateRole(user.ID, newRole); err != nil {
		return nil, err
	}
	if err := s.UserRepo.EnsureProfile(user.ID, newRole); err != nil {
		return nil, err
	}

	user.Role = newRole
	return user, nil
}

func (s *UserService) DeleteUser(id uint) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	return s.UserRepo.DeleteCascade(user)
}
