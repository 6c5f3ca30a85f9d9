package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"tradux-portal/internal/dto"
	"tradux-portal/pkg/config"
	apperrors "tradux-portal/pkg/errors"
	"tradux-portal/pkg/service"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, req dto.LoginDTO) (*dto.TokenPairDTO, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error)
}

// authService authenticates the single operator account configured in the
// environment; passwords are only ever stored as bcrypt hashes.
type authService struct {
	admin  config.AdminConfig
	jwtSvc service.JWTService
	logger *zap.Logger
}

func NewAuthService(admin config.AdminConfig, jwtSvc service.JWTService, logger *zap.Logger) AuthServiceInterface {
	return &authService{admin: admin, jwtSvc: jwtSvc, logger: logger}
}

func (s *authService) Login(ctx context.Context, req dto.LoginDTO) (*dto.TokenPairDTO, error) {
	if s.admin.PasswordHash == "" {
		s.logger.Error("admin login attempted but ADMIN_PASSWORD_HASH is not configured")
		return nil, apperrors.ErrInvalidCredentials
	}
	if !strings.EqualFold(req.Email, s.admin.Email) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("admin login rejected", zap.String("email", req.Email))
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.tokenPair(s.admin.Email)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtSvc.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}
	return s.tokenPair(claims.Email)
}

func (s *authService) tokenPair(email string) (*dto.TokenPairDTO, error) {
	access, refresh, err := s.jwtSvc.GenerateTokens(email)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.jwtSvc.GetAccessTokenTTL().Seconds()),
	}, nil
}
