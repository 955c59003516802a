package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side identity claim. The cookie handed to the
// browser carries a signed token wrapping the ID; deleting the row
// revokes the session regardless of what the client still holds.
type Session struct {
	ID        string    `db:"id"` // UUID
	Username  string    `db:"username"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

func NewSession(username string, ttlMinutes int) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New().String(),
		Username:  username,
		ExpiresAt: now.Add(time.Duration(ttlMinutes) * time.Minute),
		CreatedAt: now,
	}
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
