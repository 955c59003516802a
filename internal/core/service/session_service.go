package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/martijn/feedbackd/internal/core/domain"
	"github.com/martijn/feedbackd/internal/core/repository"
	"go.uber.org/zap"
)

// SessionService maps an opaque cookie value to a single identity
// claim. The cookie carries a signed JWT wrapping the session id, so
// the value is tamper-evident while the server-side row keeps the
// session revocable on logout or account deletion.
type SessionService struct {
	sessionRepo repository.SessionRepository
	secret      string
	algorithm   string
	ttlMinutes  int
	logger      *zap.Logger
}

func NewSessionService(
	sessionRepo repository.SessionRepository,
	secret string,
	algorithm string,
	ttlMinutes int,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		secret:      secret,
		algorithm:   algorithm,
		ttlMinutes:  ttlMinutes,
		logger:      logger,
	}
}

// SessionClaims are the JWT claims carried by the session cookie.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Login creates a session bound to username and returns the signed
// cookie value. An existing binding on the same cookie is replaced by
// the caller handing out the new value.
func (s *SessionService) Login(ctx context.Context, username string) (string, error) {
	session := domain.NewSession(username, s.ttlMinutes)

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	// Opportunistic cleanup, same cadence as session creation.
	_ = s.sessionRepo.DeleteExpired(ctx)

	token, err := s.signToken(session)
	if err != nil {
		_ = s.sessionRepo.Delete(ctx, session.ID)
		return "", err
	}

	s.logger.Info("session created", zap.String("username", username))
	return token, nil
}

// CurrentUser resolves a cookie value to the bound username. A missing,
// malformed, expired or revoked session yields domain.ErrUnauthorized.
func (s *SessionService) CurrentUser(ctx context.Context, cookieValue string) (string, error) {
	if cookieValue == "" {
		return "", domain.ErrUnauthorized
	}

	claims, err := s.parseToken(cookieValue)
	if err != nil {
		return "", domain.ErrUnauthorized
	}

	session, err := s.sessionRepo.FindByID(ctx, claims.SessionID)
	if err != nil {
		return "", domain.ErrUnauthorized
	}

	if session.IsExpired() {
		_ = s.sessionRepo.Delete(ctx, session.ID)
		return "", domain.ErrUnauthorized
	}

	return session.Username, nil
}

// Logout destroys the session behind the cookie value. It is
// idempotent: an absent or invalid session is not an error.
func (s *SessionService) Logout(ctx context.Context, cookieValue string) error {
	if cookieValue == "" {
		return nil
	}

	claims, err := s.parseToken(cookieValue)
	if err != nil {
		return nil
	}

	if err := s.sessionRepo.Delete(ctx, claims.SessionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (s *SessionService) signToken(session *domain.Session) (string, error) {
	claims := SessionClaims{
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.Username,
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			NotBefore: jwt.NewNumericDate(session.CreatedAt),
			Issuer:    "feedbackd",
		},
	}

	var signingMethod jwt.SigningMethod
	switch s.algorithm {
	case "HS256":
		signingMethod = jwt.SigningMethodHS256
	case "HS384":
		signingMethod = jwt.SigningMethodHS384
	case "HS512":
		signingMethod = jwt.SigningMethodHS512
	default:
		signingMethod = jwt.SigningMethodHS256
	}

	token := jwt.NewWithClaims(signingMethod, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

func (s *SessionService) parseToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != s.algorithm {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, fmt.Errorf("invalid session claims")
	}

	return claims, nil
}
