package domain

import "time"

type Feedback struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Username  string    `db:"username"` // owner; never changes after creation
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func NewFeedback(title, content, username string) *Feedback {
	now := time.Now()
	return &Feedback{
		Title:     title,
		Content:   content,
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
