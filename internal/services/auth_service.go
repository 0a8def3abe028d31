package services

import (
	"fmt"
	"strings"

	"workzo_backend/internal/auth"
	"workzo_backend/internal/config"
	"workzo_backend/internal/email"
	"workzo_backend/internal/logger"
	"workzo_backend/internal/models"
	"workzo_backend/internal/repositories"
	"workzo_backend/internal/services/dto"
	"workzo_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) error
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	VerifyEmail(db *gorm.DB, token string) error
	ResendVerification(db *gorm.DB, emailAddr string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, emailProvider email.Provider) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

// Register creates an unverified user and dispatches the verification mail.
// Mail delivery is best-effort: a failure is logged and never fails the
// registration.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}
	if !models.ValidRole(req.Role) {
		return apperrors.ErrInvalidUserRole
	}

	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return apperrors.ErrEmailAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.InternalError(err)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user := &models.User{
		Name:          req.Name,
		Email:         strings.ToLower(req.Email),
		PasswordHash:  hashedPassword,
		Role:          req.Role,
		EmailVerified: false,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	s.sendVerificationEmail(user)
	return nil
}

// Login authenticates and issues a session token. Unverified users are
// refused with a 403 before the password is even checked against policy.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !user.EmailVerified {
		return nil, apperrors.ErrUserNotVerified
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.LoginUserInfo{
			ID:   user.ID,
			Name: user.Name,
			Role: user.Role,
		},
	}, nil
}

// VerifyEmail flips emailVerified exactly once. Verifying an already
// verified account is a no-op rather than an error: the flag never goes
// back.
func (s *AuthServiceImpl) VerifyEmail(db *gorm.DB, token string) error {
	claims, err := auth.ParseVerificationToken(token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	if _, err := s.userRepo.FindByID(db, claims.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.MarkEmailVerified(db, claims.UserID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) ResendVerification(db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if user.EmailVerified {
		return apperrors.ErrAlreadyVerified
	}

	token, err := auth.GenerateVerificationToken(user.ID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	verifyURL := s.verifyURL(token)
	if err := s.emailProvider.SendVerification(user.Email, verifyURL); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) sendVerificationEmail(user *models.User) {
	token, err := auth.GenerateVerificationToken(user.ID)
	if err != nil {
		logger.Warn("failed to generate verification token", "user_id", user.ID, "error", err)
		return
	}

	if err := s.emailProvider.SendVerification(user.Email, s.verifyURL(token)); err != nil {
		logger.Warn("verification email send failed", "email", user.Email, "error", err)
	}
}

func (s *AuthServiceImpl) verifyURL(token string) string {
	return fmt.Sprintf("%s/api/auth/verify-email/%s", config.GetConfig().App.BaseURL, token)
}
