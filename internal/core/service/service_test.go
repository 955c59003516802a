package service

import (
	"testing"

	"github.com/martijn/feedbackd/internal/core/repository"
	"github.com/martijn/feedbackd/internal/infrastructure/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testRepos struct {
	db           *sqlite.DB
	userRepo     repository.UserRepository
	feedbackRepo repository.FeedbackRepository
	sessionRepo  repository.SessionRepository
}

func setupRepos(t *testing.T) *testRepos {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	// A second pool connection would see its own empty in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	return &testRepos{
		db:           db,
		userRepo:     sqlite.NewUserRepository(db),
		feedbackRepo: sqlite.NewFeedbackRepository(db),
		sessionRepo:  sqlite.NewSessionRepository(db),
	}
}

func newTestAuthService(t *testing.T) (*AuthService, *testRepos) {
	t.Helper()
	repos := setupRepos(t)
	return NewAuthService(repos.userRepo, zap.NewNop()), repos
}

func strPtr(s string) *string {
	return &s
}
