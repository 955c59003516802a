package dto

import "time"

// FeedbackRequest is the body for feedback create and update
type FeedbackRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// FeedbackResponse represents a feedback entry
type FeedbackResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
