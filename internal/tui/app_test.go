package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/aurakai/gatenav/internal/auth"
	"github.com/aurakai/gatenav/internal/carousel"
	"github.com/aurakai/gatenav/internal/catalog"
)

type fakeAuth struct {
	user     string
	password string
	signedIn bool
	logins   int
}

func (f *fakeAuth) AuthContext() carousel.AuthContext {
	if !f.signedIn {
		return carousel.AuthContext{}
	}
	return carousel.AuthContext{Authenticated: true, Subject: f.user}
}

func (f *fakeAuth) Login(_ context.Context, username, password string) (auth.Claims, error) {
	f.logins++
	if username != f.user || password != f.password {
		return auth.Claims{}, auth.ErrInvalidCredentials
	}
	f.signedIn = true
	return auth.Claims{Username: username}, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.signedIn = false
	return nil
}

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }
func (c *testClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestApp(t *testing.T) (*App, *fakeAuth, *testClock) {
	t.Helper()
	fa := &fakeAuth{user: "aura", password: "spelhouse!"}
	clock := &testClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	a, err := New(context.Background(), catalog.Defaults(), fa, Options{ShowRegions: true, Now: clock.now})
	require.NoError(t, err)
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return a, fa, clock
}

func press(a *App, keys ...tea.KeyMsg) tea.Cmd {
	var last tea.Cmd
	for _, k := range keys {
		_, last = a.Update(k)
	}
	return last
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

func doubleEnter(a *App, clock *testClock) tea.Cmd {
	press(a, keyEnter)
	clock.advance(120 * time.Millisecond)
	return press(a, keyEnter)
}

func typeText(a *App, s string) {
	for _, r := range s {
		a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewRequiresAuthenticator(t *testing.T) {
	_, err := New(context.Background(), catalog.Defaults(), nil, Options{})
	require.Error(t, err)
	_, err = New(context.Background(), carousel.GateList{}, &fakeAuth{}, Options{})
	require.ErrorIs(t, err, carousel.ErrEmptyCatalog)
}

func TestSwipeKeysMoveCarousel(t *testing.T) {
	a, _, _ := newTestApp(t)
	press(a, keyRight, keyRight)
	require.Equal(t, 2, a.Navigator().Index())
	press(a, keyLeft, keyLeft, keyLeft)
	require.Equal(t, a.Navigator().Len()-1, a.Navigator().Index())
	press(a, runes("l"))
	require.Equal(t, 0, a.Navigator().Index())
}

func TestDoubleEnterOpensOpenGate(t *testing.T) {
	a, _, clock := newTestApp(t)
	press(a, keyEnter)
	require.Equal(t, screenCarousel, a.screen)
	require.Contains(t, a.status, "tap again")

	clock.advance(120 * time.Millisecond)
	press(a, keyEnter)
	require.Equal(t, screenModule, a.screen)
	require.Equal(t, "auras_lab", a.module.Route)
	require.Contains(t, a.View(), "route: auras_lab")

	press(a, keyEsc)
	require.Equal(t, screenCarousel, a.screen)
}

func TestSlowTapsDoNotEnter(t *testing.T) {
	a, _, clock := newTestApp(t)
	press(a, keyEnter)
	clock.advance(300 * time.Millisecond)
	press(a, keyEnter)
	require.Equal(t, screenCarousel, a.screen)
}

func TestProtectedGateDetoursAndResumes(t *testing.T) {
	a, fa, clock := newTestApp(t)
	idx := indexOf(t, a, "oracle_drive")
	a.Navigator().Jump(idx)

	doubleEnter(a, clock)
	require.Equal(t, screenLogin, a.screen)
	require.Equal(t, "oracle_drive", a.login.returnTo)
	require.Contains(t, a.View(), "Oracle Drive is protected")

	typeText(a, "aura")
	press(a, keyTab)
	typeText(a, "wrong-pass")
	cmd := press(a, keyEnter)
	require.NotNil(t, cmd)
	press(a, tea.KeyMsg{Type: tea.KeyEnter})
	a.Update(cmd())
	require.Equal(t, screenLogin, a.screen)
	require.Equal(t, "invalid username or password", a.login.err)
	require.Empty(t, a.login.inputs[1].Value())

	typeText(a, "spelhouse!")
	cmd = press(a, keyEnter)
	require.NotNil(t, cmd)
	a.Update(cmd())
	require.True(t, fa.signedIn)
	require.Equal(t, 2, fa.logins)
	require.Equal(t, screenModule, a.screen)
	require.Equal(t, "oracle_drive", a.module.Route)
	require.Equal(t, idx, a.Navigator().Index())
}

func TestLoginCancelReturnsToCarousel(t *testing.T) {
	a, _, clock := newTestApp(t)
	a.Navigator().Jump(indexOf(t, a, "rom_tools"))
	doubleEnter(a, clock)
	require.Equal(t, screenLogin, a.screen)
	press(a, keyEsc)
	require.Equal(t, screenCarousel, a.screen)
}

func TestComingSoonShowsStatus(t *testing.T) {
	a, _, clock := newTestApp(t)
	a.Navigator().Jump(indexOf(t, a, "sphere_grid"))
	doubleEnter(a, clock)
	require.Equal(t, screenCarousel, a.screen)
	require.Equal(t, statusWarn, a.statusKind)
	require.Equal(t, "Sphere Grid is coming soon", a.status)
}

func TestOpenKeyEntersWithoutGesture(t *testing.T) {
	a, fa, _ := newTestApp(t)
	fa.signedIn = true
	a.Navigator().Jump(indexOf(t, a, "xposed_panel"))
	press(a, runes("o"))
	require.Equal(t, screenModule, a.screen)
	require.Equal(t, "xposed_panel", a.module.Route)

	press(a, tea.KeyMsg{Type: tea.KeyCtrlO})
	require.False(t, fa.signedIn)
	require.Equal(t, screenCarousel, a.screen, "protected module closes on logout")
}

func TestMouseTapsOnlyCountOnActiveCard(t *testing.T) {
	a, _, clock := newTestApp(t)
	l := a.layout()
	click := func(x int) {
		a.Update(tea.MouseMsg{X: x, Y: l.top + 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	}
	prevX := l.left + 1
	activeX := l.left + l.sideW + l.gap + 1

	click(prevX)
	clock.advance(50 * time.Millisecond)
	click(prevX)
	require.Equal(t, screenCarousel, a.screen)

	click(activeX)
	clock.advance(50 * time.Millisecond)
	click(activeX)
	require.Equal(t, screenModule, a.screen)
	require.Equal(t, "auras_lab", a.module.Route)
}

func TestMouseWheelSwipes(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	require.Equal(t, 1, a.Navigator().Index())
	a.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp})
	require.Equal(t, 0, a.Navigator().Index())
}

func TestJumpPicker(t *testing.T) {
	a, _, _ := newTestApp(t)
	press(a, runes("/"))
	require.Equal(t, screenJump, a.screen)
	typeText(a, "sentinel")
	require.Equal(t, "sentinels_fortress", a.jump.matches[0].gate.Route)
	press(a, keyEnter)
	require.Equal(t, screenCarousel, a.screen)
	require.Equal(t, indexOf(t, a, "sentinels_fortress"), a.Navigator().Index())
}

func TestRankGatesFuzzy(t *testing.T) {
	gates := catalog.Defaults().Gates()
	require.Equal(t, "terminal", rankGates("termnal", gates)[0].gate.Route)
	require.Equal(t, "rom_tools", rankGates("rom", gates)[0].gate.Route)
	require.Len(t, rankGates("", gates), maxJumpMatches)
}

func TestQuitKeys(t *testing.T) {
	a, _, _ := newTestApp(t)
	cmd := press(a, runes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
}

func TestSinkRejectsUnknownLoginRoute(t *testing.T) {
	a, _, _ := newTestApp(t)
	err := a.route(carousel.Command{Kind: carousel.ViaLogin, LoginRoute: "elsewhere", ReturnTo: "rom_tools"})
	require.True(t, errors.Is(err, errNoScreen))
	require.Empty(t, a.outbox)
}

func TestViewRendersThreeCards(t *testing.T) {
	a, _, _ := newTestApp(t)
	view := a.View()
	prev, cur, next := a.Navigator().VisiblePages()
	for _, g := range []carousel.Gate{prev, cur, next} {
		require.True(t, strings.Contains(view, g.Title) || strings.Contains(view, g.Title[:5]), "missing %s", g.Title)
	}
	require.Contains(t, view, "1/16")
	require.Contains(t, view, "guest")
}

func indexOf(t *testing.T, a *App, route string) int {
	t.Helper()
	for i, g := range a.Navigator().Gates() {
		if g.Route == route {
			return i
		}
	}
	t.Fatalf("route %s not in catalog", route)
	return -1
}

func TestRegionToggleIsSaved(t *testing.T) {
	fa := &fakeAuth{}
	var saved []bool
	a, err := New(context.Background(), catalog.Defaults(), fa, Options{
		ShowRegions: true,
		SaveRegions: func(show bool) error {
			saved = append(saved, show)
			return nil
		},
	})
	require.NoError(t, err)
	require.Contains(t, a.View(), catalog.RegionAuraLab)

	press(a, runes("r"))
	require.False(t, a.showRegions)
	require.Equal(t, "regions hidden", a.status)
	require.NotContains(t, a.View(), catalog.RegionAuraLab)

	press(a, runes("r"))
	require.True(t, a.showRegions)
	require.Equal(t, []bool{false, true}, saved)
}

func TestRegionToggleSaveFailure(t *testing.T) {
	a, err := New(context.Background(), catalog.Defaults(), &fakeAuth{}, Options{
		SaveRegions: func(bool) error { return errors.New("read-only config") },
	})
	require.NoError(t, err)
	press(a, runes("r"))
	require.True(t, a.showRegions, "toggle still applies for this run")
	require.Equal(t, statusError, a.statusKind)
}
