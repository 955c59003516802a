package service

import (
	"context"
	"testing"

	"github.com/martijn/feedbackd/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSessionService(t *testing.T, ttlMinutes int) (*SessionService, *testRepos) {
	t.Helper()
	repos := setupRepos(t)

	authService := NewAuthService(repos.userRepo, zap.NewNop())
	_, err := authService.Register(context.Background(), "alice", "pw", nil, nil, nil)
	require.NoError(t, err)

	return NewSessionService(repos.sessionRepo, "test-secret", "HS256", ttlMinutes, zap.NewNop()), repos
}

func TestLoginThenCurrentUser(t *testing.T) {
	svc, _ := newTestSessionService(t, 60)
	ctx := context.Background()

	token, err := svc.Login(ctx, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := svc.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestCurrentUserRejectsBadTokens(t *testing.T) {
	svc, _ := newTestSessionService(t, 60)
	ctx := context.Background()

	token, err := svc.Login(ctx, "alice")
	require.NoError(t, err)

	// Empty value
	_, err = svc.CurrentUser(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Garbage
	_, err = svc.CurrentUser(ctx, "not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Tampered signature
	_, err = svc.CurrentUser(ctx, token+"x")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Signed with a different key
	otherRepos := setupRepos(t)
	otherAuth := NewAuthService(otherRepos.userRepo, zap.NewNop())
	_, err = otherAuth.Register(ctx, "alice", "pw", nil, nil, nil)
	require.NoError(t, err)
	other := NewSessionService(otherRepos.sessionRepo, "other-secret", "HS256", 60, zap.NewNop())
	foreign, err := other.Login(ctx, "alice")
	require.NoError(t, err)
	_, err = svc.CurrentUser(ctx, foreign)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCurrentUserRejectsExpiredSession(t *testing.T) {
	svc, _ := newTestSessionService(t, -1)
	ctx := context.Background()

	token, err := svc.Login(ctx, "alice")
	require.NoError(t, err)

	_, err = svc.CurrentUser(ctx, token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCurrentUserRejectsRevokedSession(t *testing.T) {
	svc, _ := newTestSessionService(t, 60)
	ctx := context.Background()

	token, err := svc.Login(ctx, "alice")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))

	// The token still has a valid signature but the row is gone
	_, err = svc.CurrentUser(ctx, token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, _ := newTestSessionService(t, 60)
	ctx := context.Background()

	token, err := svc.Login(ctx, "alice")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))
	require.NoError(t, svc.Logout(ctx, token))
	require.NoError(t, svc.Logout(ctx, ""))
	require.NoError(t, svc.Logout(ctx, "not-a-token"))
}

func TestOneIdentityPerSession(t *testing.T) {
	svc, repos := newTestSessionService(t, 60)
	ctx := context.Background()

	authService := NewAuthService(repos.userRepo, zap.NewNop())
	_, err := authService.Register(ctx, "bob", "pw", nil, nil, nil)
	require.NoError(t, err)

	aliceToken, err := svc.Login(ctx, "alice")
	require.NoError(t, err)
	bobToken, err := svc.Login(ctx, "bob")
	require.NoError(t, err)

	aliceUser, err := svc.CurrentUser(ctx, aliceToken)
	require.NoError(t, err)
	bobUser, err := svc.CurrentUser(ctx, bobToken)
	require.NoError(t, err)

	assert.Equal(t, "alice", aliceUser)
	assert.Equal(t, "bob", bobUser)
}
