package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aurakai/gatenav/internal/carousel"
	"github.com/aurakai/gatenav/internal/database/repository"
)

// Session holds the token of the person using this terminal and answers
// authentication queries for the navigator. It implements
// carousel.AuthProvider. Login runs off the UI goroutine while the view keeps
// asking AuthContext, so the token is guarded by mu.
type Session struct {
	// ctx scopes the session-table lookups made by AuthContext, whose
	// signature is fixed by carousel.AuthProvider.
	ctx      context.Context
	users    *repository.UserRepo
	sessions *repository.SessionRepo
	tokens   *Tokens
	logger   *slog.Logger

	mu    sync.Mutex
	token string
}

func NewSession(ctx context.Context, users *repository.UserRepo, sessions *repository.SessionRepo, tokens *Tokens, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{ctx: ctx, users: users, sessions: sessions, tokens: tokens, logger: logger}
}

// Register creates a user or resets the password of an existing one.
func (s *Session) Register(ctx context.Context, username, password string) (repository.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return repository.User{}, errors.New("auth: username required")
	}
	hash, err := HashPassword(password)
	if err != nil {
		return repository.User{}, err
	}
	now := s.tokens.now().UTC().Truncate(time.Second)
	u := repository.User{ID: uuid.NewString(), Username: username, PasswordHash: hash, CreatedAt: now, UpdatedAt: now}
	if err := s.users.Upsert(ctx, u); err != nil {
		return repository.User{}, fmt.Errorf("save user: %w", err)
	}
	saved, err := s.users.ByUsername(ctx, username)
	if err != nil {
		return repository.User{}, fmt.Errorf("load user: %w", err)
	}
	return *saved, nil
}

// Login checks credentials and records a new session token.
func (s *Session) Login(ctx context.Context, username, password string) (Claims, error) {
	u, err := s.users.ByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return Claims{}, fmt.Errorf("load user: %w", err)
	}
	if u == nil {
		return Claims{}, ErrInvalidCredentials
	}
	if err := CheckPassword(u.PasswordHash, password); err != nil {
		s.logger.Info("login rejected", "username", u.Username)
		return Claims{}, err
	}
	token, claims, err := s.tokens.Issue(u.ID, u.Username)
	if err != nil {
		return Claims{}, err
	}
	err = s.sessions.Create(ctx, repository.Session{
		ID:        claims.ID,
		UserID:    u.ID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	})
	if err != nil {
		return Claims{}, fmt.Errorf("record session: %w", err)
	}
	s.setToken(token)
	s.logger.Info("login accepted", "username", u.Username, "session", claims.ID)
	return claims, nil
}

// Logout revokes the current session. Logging out twice is a no-op.
func (s *Session) Logout(ctx context.Context) error {
	token := s.setToken("")
	if token == "" {
		return nil
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil
	}
	if err := s.sessions.Revoke(ctx, claims.ID, s.tokens.now().UTC()); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	s.logger.Info("logged out", "session", claims.ID)
	return nil
}

// Current validates the held token against its signature, expiry and the
// session table.
func (s *Session) Current(ctx context.Context) (Claims, error) {
	token := s.heldToken()
	if token == "" {
		return Claims{}, ErrNoSession
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return Claims{}, err
	}
	rec, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		return Claims{}, fmt.Errorf("load session: %w", err)
	}
	if rec == nil || !rec.Active(s.tokens.now().UTC()) {
		return Claims{}, ErrSessionRevoked
	}
	return claims, nil
}

// AuthContext answers the navigator. Any failure counts as unauthenticated.
func (s *Session) AuthContext() carousel.AuthContext {
	claims, err := s.Current(s.ctx)
	if err != nil {
		if !errors.Is(err, ErrNoSession) {
			s.logger.Debug("session not valid", "error", err)
		}
		return carousel.AuthContext{}
	}
	return carousel.AuthContext{Authenticated: true, Subject: claims.Username}
}

// setToken replaces the held token and returns the previous one.
func (s *Session) setToken(token string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.token
	s.token = token
	return prev
}

func (s *Session) heldToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}
