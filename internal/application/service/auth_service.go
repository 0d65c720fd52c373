package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/chococroco/orders-api/pkg/apperror"
	"github.com/chococroco/orders-api/pkg/utils"
)

// AuthService authenticates the single configured back-office operator.
type AuthService struct {
	jwtManager   *utils.JWTManager
	adminEmail   string
	passwordHash []byte
}

// NewAuthService creates a new auth service. passwordHash is the bcrypt hash of
// the configured admin password, computed once at startup.
func NewAuthService(jwtManager *utils.JWTManager, adminEmail string, passwordHash []byte) *AuthService {
	return &AuthService{
		jwtManager:   jwtManager,
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
	}
}

// TokenPair holds the issued access and refresh tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Login checks the operator credential and issues a token pair.
func (s *AuthService) Login(email, password string) (*TokenPair, error) {
	if email != s.adminEmail {
		return nil, apperror.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	access, err := s.jwtManager.GenerateAccessToken(email)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(email)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	email, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil || email != s.adminEmail {
		return nil, apperror.ErrInvalidToken
	}

	access, err := s.jwtManager.GenerateAccessToken(email)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(email)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
