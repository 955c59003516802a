package service

import "github.com/martijn/feedbackd/internal/core/domain"

// RequireOwner fails unless the session identity is present and equals
// the resource owner. The comparison is case-sensitive.
func RequireOwner(sessionUser, owner string) error {
	if sessionUser == "" || sessionUser != owner {
		return domain.ErrUnauthorized
	}
	return nil
}
