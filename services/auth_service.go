package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"skizen/config"
	"skizen/models"
	"skizen/repositories"
	"skizen/utils"

	"gorm.io/gorm"
)

type LoginInput struct {
	Email    string
	Password string
}

type AuthUser struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

type LoginOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      AuthUser  `json:"user"`
}

type AuthService interface {
	Login(ctx context.Context, in LoginInput) (LoginOutput, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, userID uint) (AuthUser, error)
	EnsureAdmin(ctx context.Context) error
}

type authService struct {
	users repositories.UserRepository
}

func NewAuthService(users repositories.UserRepository) AuthService {
	return &authService{users: users}
}

// Login deliberately returns the same message for unknown email and wrong
// password so the response never reveals whether an account exists.
func (s *authService) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	if in.Email == "" || in.Password == "" {
		return LoginOutput{}, newAppError(KindValidation, http.StatusBadRequest, "email and password are required", nil)
	}

	user, err := s.users.GetByEmail(ctx, nil, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginOutput{}, newAppError(KindAuth, http.StatusUnauthorized, "invalid login credentials", nil)
		}
		return LoginOutput{}, newAppError(KindPersistence, http.StatusInternalServerError, "failed to query user", err)
	}

	if !utils.CheckPassword(in.Password, user.Password) {
		return LoginOutput{}, newAppError(KindAuth, http.StatusUnauthorized, "invalid login credentials", nil)
	}

	token, expiresAt, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		return LoginOutput{}, newAppError(KindAuth, http.StatusInternalServerError, "failed to generate token", err)
	}

	return LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      AuthUser{ID: user.ID, Email: user.Email, Nickname: user.Nickname},
	}, nil
}

// Logout revokes the presented token until its natural expiration.
func (s *authService) Logout(_ context.Context, token string) error {
	claims, err := utils.ParseToken(token)
	if err != nil {
		return newAppError(KindAuth, http.StatusUnauthorized, "invalid token", err)
	}
	utils.BlacklistToken(token, claims.ExpiresAt.Time)
	return nil
}

func (s *authService) Profile(ctx context.Context, userID uint) (AuthUser, error) {
	user, err := s.users.GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthUser{}, newAppError(KindAuth, http.StatusNotFound, "user not found", nil)
		}
		return AuthUser{}, newAppError(KindPersistence, http.StatusInternalServerError, "failed to query user", err)
	}
	return AuthUser{ID: user.ID, Email: user.Email, Nickname: user.Nickname}, nil
}

// EnsureAdmin seeds the configured admin account on first start. The site
// has exactly one admin actor; there is no open registration.
func (s *authService) EnsureAdmin(ctx context.Context) error {
	cfg := config.AppConfig
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		utils.Sugar.Warn("admin credentials not configured, admin login disabled")
		return nil
	}

	count, err := s.users.CountByEmail(ctx, cfg.Admin.Email)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}
	user := models.User{Email: cfg.Admin.Email, Password: hashed, Nickname: cfg.Admin.Nickname}
	if err := s.users.Create(ctx, nil, &user); err != nil {
		return err
	}
	utils.Sugar.Infof("seeded admin account %s", cfg.Admin.Email)
	return nil
}
