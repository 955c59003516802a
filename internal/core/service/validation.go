package service

import (
	"net/mail"

	"github.com/martijn/feedbackd/internal/core/domain"
)

// Column limits match the relational schema.
const (
	MaxUsernameLength  = 20
	MaxEmailLength     = 50
	MaxFirstNameLength = 30
	MaxLastNameLength  = 30
	MaxTitleLength     = 100
)

// ValidateRegistration checks registration input and returns a
// *domain.ValidationError listing every failing field, or nil.
func ValidateRegistration(username, password string, firstName, lastName, email *string) error {
	ve := domain.NewValidationError()

	if username == "" {
		ve.Fields.Add("username", "username is required")
	} else if len(username) > MaxUsernameLength {
		ve.Fields.Add("username", "username must be at most 20 characters")
	}

	if password == "" {
		ve.Fields.Add("password", "password is required")
	}

	if email != nil && *email != "" {
		if len(*email) > MaxEmailLength {
			ve.Fields.Add("email", "email must be at most 50 characters")
		}
		if _, err := mail.ParseAddress(*email); err != nil {
			ve.Fields.Add("email", "email is not a valid address")
		}
	}

	if firstName != nil && len(*firstName) > MaxFirstNameLength {
		ve.Fields.Add("first_name", "first name must be at most 30 characters")
	}
	if lastName != nil && len(*lastName) > MaxLastNameLength {
		ve.Fields.Add("last_name", "last name must be at most 30 characters")
	}

	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}

// ValidateFeedback checks feedback input the same way.
func ValidateFeedback(title, content string) error {
	ve := domain.NewValidationError()

	if title == "" {
		ve.Fields.Add("title", "title is required")
	} else if len(title) > MaxTitleLength {
		ve.Fields.Add("title", "title must be at most 100 characters")
	}

	if content == "" {
		ve.Fields.Add("content", "content is required")
	}

	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}
