package dto

import "time"

// UserResponse represents a user and their feedback entries. The
// password hash is never serialized.
type UserResponse struct {
	Username  string             `json:"username"`
	Email     *string            `json:"email,omitempty"`
	FirstName *string            `json:"first_name,omitempty"`
	LastName  *string            `json:"last_name,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	Feedback  []FeedbackResponse `json:"feedback"`
}
