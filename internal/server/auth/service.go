package auth

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/cryptox"
	"github.com/dmitrijs2005/landkeeper/internal/logging"
	"github.com/google/uuid"
)

// Session is a successful sign-in.
type Session struct {
	Token     string
	ID        string
	Email     string
	ExpiresAt time.Time
}

// Service signs the single configured admin in and verifies their tokens.
type Service struct {
	adminEmail   string
	passwordHash string
	jwtSecret    []byte
	tokenTTL     time.Duration
	log          logging.Logger

	now          func() time.Time
	newSessionID func() string
}

func NewService(adminEmail, passwordHash string, jwtSecret []byte, tokenTTL time.Duration, log logging.Logger) *Service {
	return &Service{
		adminEmail:   normalizeEmail(adminEmail),
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
		log:          log,
		now:          time.Now,
		newSessionID: uuid.NewString,
	}
}

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// SignIn checks email against the configured admin and password against its
// argon2id hash. Both failures look the same to the caller.
func (s *Service) SignIn(ctx context.Context, email, password string) (*Session, error) {
	if s.adminEmail == "" || normalizeEmail(email) != s.adminEmail {
		s.log.Warn(ctx, "sign-in rejected", "reason", "email")
		return nil, common.ErrorUnauthorized
	}

	ok, err := cryptox.VerifyPassword(s.passwordHash, password)
	if err != nil {
		s.log.Error(ctx, "admin password hash is unusable", "error", err)
		return nil, common.ErrorInternal
	}
	if !ok {
		s.log.Warn(ctx, "sign-in rejected", "reason", "password")
		return nil, common.ErrorUnauthorized
	}

	now := s.now()
	sess := &Session{ID: s.newSessionID(), Email: s.adminEmail, ExpiresAt: now.Add(s.tokenTTL)}
	sess.Token, err = GenerateToken(sess.Email, sess.ID, s.jwtSecret, now, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "admin signed in", "session", sess.ID)
	return sess, nil
}

// Verify parses token and returns its claims.
func (s *Service) Verify(token string) (*Claims, error) {
	claims, err := ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	if normalizeEmail(claims.Email) != s.adminEmail {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}
