package services

import (
	"tripplanner_backend/internal/apperrors"
	"tripplanner_backend/internal/auth"
	"tripplanner_backend/internal/models"
	"tripplanner_backend/internal/repositories"
	"tripplanner_backend/internal/services/dto"
)

type UserService interface {
	GetUser(id uint) (*models.User, error)
	UpdateUser(id uint, req *dto.UpdateUserRequest) (*models.User, error)
	UpdateRoles(id uint, roles []string) (*models.User, error)
	GetUserPlans(userID uint) ([]models.Plan, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	planRepo repositories.PlanRepository
}

func NewUserService(userRepo repositories.UserRepository, planRepo repositories.PlanRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo, planRepo: planRepo}
}

func (s *UserServiceImpl) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.PersistenceError("failed to load user", err)
	}
	return user, nil
}

// UpdateUser changes profile fields. A password change requires the current
// password.
func (s *UserServiceImpl) UpdateUser(id uint, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.PersistenceError("failed to load user", err)
	}

	if req.Password != "" {
		if !auth.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
			return nil, apperrors.NewBadRequestError("Invalid old password")
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = hash
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Surname != "" {
		user.Surname = req.Surname
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.PersistenceError("failed to update user", err)
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateRoles(id uint, roles []string) (*models.User, error) {
	normalized := models.NormalizeRoles(roles)
	if err := s.userRepo.UpdateRoles(id, normalized); err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.PersistenceError("failed to update roles", err)
	}
	return s.GetUser(id)
}

// GetUserPlans lists a user's plans, newest first. A user with no plans is
// reported as not found, matching the historical behavior of this API.
func (s *UserServiceImpl) GetUserPlans(userID uint) ([]models.Plan, error) {
	plans, err := s.planRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.PersistenceError("failed to load plans", err)
	}
	if len(plans) == 0 {
		return nil, apperrors.NewNotFoundError("No plans found for this user")
	}
	return plans, nil
}
