package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aurakai/gatenav/internal/database"
	"github.com/aurakai/gatenav/internal/database/repository"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestSession(t *testing.T) (*Session, *fakeClock) {
	t.Helper()
	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	tokens, err := NewTokens("test-secret", "gatenav", time.Hour)
	require.NoError(t, err)
	tokens.now = clock.Now

	s := NewSession(context.Background(), repository.NewUserRepo(db), repository.NewSessionRepo(db), tokens, nil)
	return s, clock
}

func TestPasswordHashing(t *testing.T) {
	_, err := HashPassword("short")
	require.ErrorIs(t, err, ErrWeakPassword)

	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	require.NoError(t, CheckPassword(hash, "correct horse"))
	require.ErrorIs(t, CheckPassword(hash, "wrong horse"), ErrInvalidCredentials)
}

func TestTokensRoundTrip(t *testing.T) {
	tokens, err := NewTokens("", "gatenav", time.Hour)
	require.NoError(t, err)
	signed, claims, err := tokens.Issue("user-1", "aura")
	require.NoError(t, err)

	got, err := tokens.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, claims.ID, got.ID)
	require.Equal(t, "aura", got.Username)
	require.Equal(t, "user-1", got.Subject)

	other, err := NewTokens("", "gatenav", time.Hour)
	require.NoError(t, err)
	_, err = other.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)

	wrongIssuer, err := NewTokens(string(tokens.secret), "someone-else", time.Hour)
	require.NoError(t, err)
	_, err = wrongIssuer.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokensExpire(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	tokens, err := NewTokens("s", "gatenav", time.Minute)
	require.NoError(t, err)
	tokens.now = clock.Now
	signed, _, err := tokens.Issue("u", "kai")
	require.NoError(t, err)

	clock.t = clock.t.Add(2 * time.Minute)
	_, err = tokens.Verify(signed)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestSessionLoginLogout(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t)
	require.False(t, s.AuthContext().Authenticated)

	_, err := s.Register(ctx, "aura", "spelhouse!")
	require.NoError(t, err)

	_, err = s.Login(ctx, "aura", "nope-nope")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Login(ctx, "ghost", "spelhouse!")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.False(t, s.AuthContext().Authenticated)

	claims, err := s.Login(ctx, " aura ", "spelhouse!")
	require.NoError(t, err)
	require.NotEmpty(t, claims.ID)
	ac := s.AuthContext()
	require.True(t, ac.Authenticated)
	require.Equal(t, "aura", ac.Subject)

	require.NoError(t, s.Logout(ctx))
	require.NoError(t, s.Logout(ctx))
	require.False(t, s.AuthContext().Authenticated)
	_, err = s.Current(ctx)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestSessionRevokedElsewhere(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestSession(t)
	_, err := s.Register(ctx, "kai", "fortress-key")
	require.NoError(t, err)
	claims, err := s.Login(ctx, "kai", "fortress-key")
	require.NoError(t, err)

	require.NoError(t, s.sessions.Revoke(ctx, claims.ID, clock.t))
	_, err = s.Current(ctx)
	require.ErrorIs(t, err, ErrSessionRevoked)
	require.False(t, s.AuthContext().Authenticated)
}

func TestSessionExpires(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestSession(t)
	_, err := s.Register(ctx, "genesis", "oracle-drive")
	require.NoError(t, err)
	_, err = s.Login(ctx, "genesis", "oracle-drive")
	require.NoError(t, err)

	clock.t = clock.t.Add(2 * time.Hour)
	_, err = s.Current(ctx)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestRegisterResetsPassword(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t)
	first, err := s.Register(ctx, "aura", "first-password")
	require.NoError(t, err)
	second, err := s.Register(ctx, "aura", "second-password")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	_, err = s.Login(ctx, "aura", "first-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Login(ctx, "aura", "second-password")
	require.NoError(t, err)

	_, err = s.Register(ctx, "  ", "whatever-long")
	require.Error(t, err)
}

func TestSessionLoginWhileQueried(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t)
	_, err := s.Register(ctx, "aura", "spelhouse!")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := s.Login(ctx, "aura", "spelhouse!")
		done <- err
	}()
	for waiting := true; waiting; {
		select {
		case err := <-done:
			require.NoError(t, err)
			waiting = false
		default:
			_ = s.AuthContext()
		}
	}
	require.True(t, s.AuthContext().Authenticated)

	go func() { done <- s.Logout(ctx) }()
	_ = s.AuthContext()
	require.NoError(t, <-done)
	require.False(t, s.AuthContext().Authenticated)
}
