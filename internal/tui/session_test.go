package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/aurakai/gatenav/internal/auth"
	"github.com/aurakai/gatenav/internal/catalog"
	"github.com/aurakai/gatenav/internal/database"
	"github.com/aurakai/gatenav/internal/database/repository"
)

func newSessionApp(t *testing.T) (*App, *auth.Session) {
	t.Helper()
	ctx := context.Background()
	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "tui.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	tokens, err := auth.NewTokens("tui-secret", "gatenav", time.Hour)
	require.NoError(t, err)
	session := auth.NewSession(ctx, repository.NewUserRepo(db), repository.NewSessionRepo(db), tokens, nil)
	_, err = session.Register(ctx, "aura", "spelhouse!")
	require.NoError(t, err)

	a, err := New(ctx, catalog.Defaults(), session, Options{})
	require.NoError(t, err)
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return a, session
}

func TestLoginDetourWithStoredSession(t *testing.T) {
	a, session := newSessionApp(t)
	a.Navigator().Jump(indexOf(t, a, "oracle_drive"))
	press(a, runes("o"))
	require.Equal(t, screenLogin, a.screen)

	typeText(a, "aura")
	press(a, keyTab)
	typeText(a, "spelhouse!")
	cmd := press(a, keyEnter)
	require.NotNil(t, cmd)

	// The runtime runs commands on their own goroutine while it keeps
	// rendering.
	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- cmd() }()
	var msg tea.Msg
	for msg == nil {
		select {
		case msg = <-msgs:
		default:
			_ = a.View()
		}
	}

	a.Update(msg)
	require.True(t, session.AuthContext().Authenticated)
	require.Equal(t, screenModule, a.screen)
	require.Equal(t, "oracle_drive", a.module.Route)
	require.Contains(t, a.View(), "signed in as aura")

	press(a, tea.KeyMsg{Type: tea.KeyCtrlO})
	require.False(t, session.AuthContext().Authenticated)
	require.Equal(t, screenCarousel, a.screen)
}

func TestLoginDetourRejectsBadPassword(t *testing.T) {
	a, session := newSessionApp(t)
	a.Navigator().Jump(indexOf(t, a, "rom_tools"))
	press(a, runes("o"))

	typeText(a, "aura")
	press(a, keyTab)
	typeText(a, "not-the-password")
	cmd := press(a, keyEnter)
	require.NotNil(t, cmd)
	a.Update(cmd())

	require.False(t, session.AuthContext().Authenticated)
	require.Equal(t, screenLogin, a.screen)
	require.Equal(t, "invalid username or password", a.login.err)
}
