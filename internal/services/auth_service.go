package services

import (
	"time"

	"tripplanner_backend/internal/apperrors"
	"tripplanner_backend/internal/auth"
	"tripplanner_backend/internal/logger"
	"tripplanner_backend/internal/models"
	"tripplanner_backend/internal/pkg/email"
	"tripplanner_backend/internal/repositories"
	"tripplanner_backend/internal/services/dto"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	confirmationTokenTTL = 24 * time.Hour
	resetTokenTTL        = time.Hour

	// Grace period before a redeemed confirmation token is wiped. Lets the
	// frontend finish its redirect without racing a second confirm call.
	confirmCleanupDelay = time.Second
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	ConfirmEmail(token string) (*models.User, error)
	RequestPasswordReset(email string) error
	ResetPassword(token, password string) error
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	mailer   email.Sender
}

func NewAuthService(userRepo repositories.UserRepository, mailer email.Sender) AuthService {
	return &AuthServiceImpl{userRepo: userRepo, mailer: mailer}
}

// Register creates an unconfirmed account and fires the confirmation email
// in the background. Email failures are logged, never surfaced.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	token := uuid.NewString()
	tokenExp := time.Now().Add(confirmationTokenTTL)
	user := &models.User{
		Email:                req.Email,
		PasswordHash:         hash,
		Name:                 req.Name,
		Surname:              req.Surname,
		CIN:                  req.CIN,
		Phone:                req.Phone,
		Roles:                pq.StringArray(models.NormalizeRoles(req.Roles)),
		EmailConfirmed:       false,
		ConfirmationToken:    token,
		ConfirmationTokenExp: &tokenExp,
	}

	if err := s.userRepo.Create(user); err != nil {
		if err == repositories.ErrUserAlreadyExists {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.PersistenceError("failed to create user", err)
	}

	go func(toEmail, token string) {
		if err := s.mailer.SendConfirmation(toEmail, token); err != nil {
			logger.Error("failed to send confirmation email", "email", toEmail, "error", err.Error())
		}
	}(user.Email, token)

	logger.Info("user registered", "userId", user.ID, "roles", user.Roles)
	return user, nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.PersistenceError("failed to look up user", err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.EmailConfirmed {
		return nil, apperrors.ErrEmailNotConfirmed
	}

	token, err := auth.GenerateToken(user.ID, user.Roles)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{Token: token, User: user}, nil
}

// ConfirmEmail marks the account confirmed. The token itself is cleared
// shortly afterwards, not in the same write.
func (s *AuthServiceImpl) ConfirmEmail(token string) (*models.User, error) {
	user, err := s.userRepo.FindByConfirmationToken(token)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.PersistenceError("failed to look up token", err)
	}

	if err := s.userRepo.ConfirmEmail(user.ID); err != nil {
		return nil, apperrors.PersistenceError("failed to confirm email", err)
	}
	user.EmailConfirmed = true

	time.AfterFunc(confirmCleanupDelay, func() {
		if err := s.userRepo.ClearConfirmationToken(user.ID); err != nil {
			logger.Error("failed to clear confirmation token", "userId", user.ID, "error", err.Error())
		}
	})

	return user, nil
}

// RequestPasswordReset issues a reset token for a known email. An unknown
// email is reported to the caller as not found.
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return apperrors.ErrUserNotFound
		}
		return apperrors.PersistenceError("failed to look up user", err)
	}

	token := uuid.NewString()
	if err := s.userRepo.SetResetToken(user.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		return apperrors.PersistenceError("failed to store reset token", err)
	}

	go func(toEmail, token string) {
		if err := s.mailer.SendPasswordReset(toEmail, token); err != nil {
			logger.Error("failed to send reset email", "email", toEmail, "error", err.Error())
		}
	}(user.Email, token)

	return nil
}

// ResetPassword redeems an unexpired reset token. Redemption clears the
// token, so a second attempt with the same token fails.
func (s *AuthServiceImpl) ResetPassword(token, password string) error {
	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return apperrors.ErrInvalidToken
		}
		return apperrors.PersistenceError("failed to look up token", err)
	}

	if err := auth.ValidatePassword(password); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.ResetPassword(user.ID, hash); err != nil {
		return apperrors.PersistenceError("failed to reset password", err)
	}

	logger.Info("password reset", "userId", user.ID)
	return nil
}
