package dto

// RegisterRequest represents the registration form submission. Required
// fields are enforced by the validation layer so missing values come
// back as field errors rather than a bind failure.
type RegisterRequest struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// LoginRequest represents the login form submission
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
