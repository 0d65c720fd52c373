package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/chococroco/orders-api/internal/application/service"
	"github.com/chococroco/orders-api/pkg/apperror"
	"github.com/chococroco/orders-api/pkg/utils"
)

func newAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("sweet-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	jwtManager := utils.NewJWTManager("test-signing-key", time.Hour, 24*time.Hour)
	return service.NewAuthService(jwtManager, "admin@chococroco.local", hash)
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc := newAuthService(t)

	tokens, err := svc.Login("admin@chococroco.local", "sweet-secret")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login("admin@chococroco.local", "wrong")
	require.Error(t, err)
	assert.Equal(t, 401, apperror.GetAppError(err).Code)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login("someone@else.local", "sweet-secret")
	require.Error(t, err)
	assert.Equal(t, 401, apperror.GetAppError(err).Code)
}

func TestRefreshIssuesNewPair(t *testing.T) {
	svc := newAuthService(t)

	tokens, err := svc.Login("admin@chococroco.local", "sweet-secret")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Refresh("not-a-token")
	require.Error(t, err)
	assert.Equal(t, 401, apperror.GetAppError(err).Code)
}
