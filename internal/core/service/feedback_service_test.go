package service

import (
	"context"
	"testing"

	"github.com/martijn/feedbackd/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFeedbackService(t *testing.T) (*FeedbackService, *testRepos) {
	t.Helper()
	repos := setupRepos(t)

	authService := NewAuthService(repos.userRepo, zap.NewNop())
	ctx := context.Background()
	for _, username := range []string{"alice", "bob"} {
		_, err := authService.Register(ctx, username, "pw", nil, nil, nil)
		require.NoError(t, err)
	}

	return NewFeedbackService(repos.feedbackRepo, zap.NewNop()), repos
}

func TestCreateFeedback(t *testing.T) {
	svc, _ := newTestFeedbackService(t)
	ctx := context.Background()

	feedback, err := svc.Create(ctx, "alice", "alice", "t", "c")
	require.NoError(t, err)
	assert.NotZero(t, feedback.ID)
	assert.Equal(t, "alice", feedback.Username)

	// Only the owner may create under their name
	_, err = svc.Create(ctx, "bob", "alice", "t", "c")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.Create(ctx, "", "alice", "t", "c")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCreateFeedbackValidation(t *testing.T) {
	svc, _ := newTestFeedbackService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "alice", "alice", "", "")
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Fields["title"])
	assert.NotEmpty(t, ve.Fields["content"])
}

func TestGetFeedback(t *testing.T) {
	svc, _ := newTestFeedbackService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "alice", "alice", "t", "c")
	require.NoError(t, err)

	feedback, err := svc.Get(ctx, "alice", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", feedback.Title)

	_, err = svc.Get(ctx, "bob", created.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.Get(ctx, "alice", 99999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateFeedback(t *testing.T) {
	svc, _ := newTestFeedbackService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "alice", "alice", "t", "c")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "alice", created.ID, "t2", "c2")
	require.NoError(t, err)
	assert.Equal(t, "t2", updated.Title)
	assert.Equal(t, "c2", updated.Content)
	assert.Equal(t, "alice", updated.Username, "ownership never changes")

	// A non-owner fails and leaves the row untouched
	_, err = svc.Update(ctx, "bob", created.ID, "hijacked", "hijacked")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	feedback, err := svc.Get(ctx, "alice", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "t2", feedback.Title)
	assert.Equal(t, "c2", feedback.Content)

	// An absent row is reported before any ownership verdict
	_, err = svc.Update(ctx, "alice", 99999, "t", "c")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteFeedback(t *testing.T) {
	svc, _ := newTestFeedbackService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "alice", "alice", "t", "c")
	require.NoError(t, err)

	_, err = svc.Delete(ctx, "bob", created.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	owner, err := svc.Delete(ctx, "alice", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", owner)

	_, err = svc.Delete(ctx, "alice", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListForUser(t *testing.T) {
	svc, _ := newTestFeedbackService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "alice", "alice", "t1", "c1")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "alice", "alice", "t2", "c2")
	require.NoError(t, err)

	list, err := svc.ListForUser(ctx, "alice", "alice")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = svc.ListForUser(ctx, "bob", "alice")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
