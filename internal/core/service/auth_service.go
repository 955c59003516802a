package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/martijn/feedbackd/internal/core/domain"
	"github.com/martijn/feedbackd/internal/core/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const BcryptCost = 10

type AuthService struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a hash
func (s *AuthService) VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Register validates the input, hashes the password and persists the
// user. The username primary key resolves concurrent registrations of
// the same name: the loser gets domain.ErrDuplicateUsername.
func (s *AuthService) Register(ctx context.Context, username, password string, firstName, lastName, email *string) (*domain.User, error) {
	if err := ValidateRegistration(username, password, firstName, lastName, email); err != nil {
		return nil, err
	}

	hashed, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(username, hashed, firstName, lastName, email)
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", zap.String("username", username))
	return user, nil
}

// Authenticate looks up the user and checks the password. Unknown
// username and wrong password both come back as
// domain.ErrInvalidCredentials so the response cannot be used to
// enumerate usernames.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.VerifyPassword(password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// GetUser returns a user record, restricted to the owner.
func (s *AuthService) GetUser(ctx context.Context, actor, username string) (*domain.User, error) {
	if err := RequireOwner(actor, username); err != nil {
		return nil, err
	}
	return s.userRepo.FindByUsername(ctx, username)
}

// DeleteUser removes the user. Feedback and session rows cascade at the
// storage layer: orphaned feedback referencing a deleted owner is
// meaningless, and a deleted account must not keep a live session.
func (s *AuthService) DeleteUser(ctx context.Context, actor, username string) error {
	if err := RequireOwner(actor, username); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, username); err != nil {
		return err
	}

	s.logger.Info("user deleted", zap.String("username", username))
	return nil
}
