package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aurakai/gatenav/internal/auth"
	"github.com/aurakai/gatenav/internal/carousel"
)

var errNoScreen = errors.New("no screen for route")

// Authenticator is the login side of the auth provider.
type Authenticator interface {
	carousel.AuthProvider
	Login(ctx context.Context, username, password string) (auth.Claims, error)
	Logout(ctx context.Context) error
}

// Options tunes the App. Zero values fall back to defaults.
type Options struct {
	TapWindow   time.Duration
	LoginRoute  string
	ShowRegions bool
	Logger      *slog.Logger
	Now         func() time.Time
	// SaveRegions persists the region toggle. Nil keeps it in memory.
	SaveRegions func(show bool) error
}

type screen int

const (
	screenCarousel screen = iota
	screenJump
	screenLogin
	screenModule
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusWarn
	statusError
)

// StatusMsg sets the footer status line.
type StatusMsg struct {
	Text string
	Kind statusKind
}

type loginResultMsg struct {
	returnTo string
	username string
	err      error
}

// App is the bubbletea model hosting the gate carousel.
type App struct {
	ctx         context.Context
	nav         *carousel.Navigator
	auth        Authenticator
	keys        KeyMap
	help        help.Model
	logger      *slog.Logger
	now         func() time.Time
	loginRoute  string
	showRegions bool
	saveRegions func(bool) error

	screen     screen
	width      int
	height     int
	status     string
	statusKind statusKind
	outbox     []carousel.Command

	module carousel.Gate
	login  loginForm
	jump   jumpPicker
}

// New builds the App and its navigator over gates.
func New(ctx context.Context, gates carousel.Catalog, authn Authenticator, opts Options) (*App, error) {
	if authn == nil {
		return nil, errors.New("tui: authenticator is required")
	}
	if opts.LoginRoute == "" {
		opts.LoginRoute = carousel.DefaultLoginRoute
	}
	if opts.TapWindow <= 0 {
		opts.TapWindow = carousel.DefaultTapWindow
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	a := &App{
		ctx:         ctx,
		auth:        authn,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		logger:      opts.Logger,
		now:         opts.Now,
		loginRoute:  opts.LoginRoute,
		showRegions: opts.ShowRegions,
		saveRegions: opts.SaveRegions,
	}
	nav, err := carousel.New(gates, authn, carousel.SinkFunc(a.route),
		carousel.WithTapWindow(opts.TapWindow),
		carousel.WithLoginRoute(opts.LoginRoute),
		carousel.WithLogger(opts.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("build navigator: %w", err)
	}
	a.nav = nav
	return a, nil
}

func (a *App) Init() tea.Cmd { return nil }

// route is the navigation sink: it accepts a command for dispatch once the
// navigator returns.
func (a *App) route(cmd carousel.Command) error {
	switch cmd.Kind {
	case carousel.Direct:
		if _, ok := a.nav.GateByRoute(cmd.Route); !ok {
			return fmt.Errorf("%w: %s", errNoScreen, cmd.Route)
		}
	case carousel.ViaLogin:
		if cmd.LoginRoute != a.loginRoute {
			return fmt.Errorf("%w: %s", errNoScreen, cmd.LoginRoute)
		}
	}
	a.outbox = append(a.outbox, cmd)
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		return a, nil
	case StatusMsg:
		a.setStatus(m.Kind, m.Text)
		return a, nil
	case loginResultMsg:
		return a, a.handleLoginResult(m)
	case tea.MouseMsg:
		if a.screen == screenCarousel {
			return a, a.handleMouse(m)
		}
		return a, nil
	case tea.KeyMsg:
		if m.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.screen {
		case screenJump:
			return a, a.handleJumpKey(m)
		case screenLogin:
			return a, a.handleLoginKey(m)
		case screenModule:
			return a, a.handleModuleKey(m)
		default:
			return a, a.handleCarouselKey(m)
		}
	}
	return a, nil
}

func (a *App) handleCarouselKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(m, a.keys.Quit):
		return tea.Quit
	case key.Matches(m, a.keys.Prev):
		a.nav.OnSwipe(carousel.Prev)
	case key.Matches(m, a.keys.Next):
		a.nav.OnSwipe(carousel.Next)
	case key.Matches(m, a.keys.Tap):
		return a.handleOutcome(a.nav.OnTap(a.now().UnixMilli()))
	case key.Matches(m, a.keys.Open):
		return a.handleOutcome(a.nav.Enter())
	case key.Matches(m, a.keys.Jump):
		a.jump = newJumpPicker(a.nav.Gates())
		a.screen = screenJump
		return a.jump.input.Focus()
	case key.Matches(m, a.keys.Logout):
		a.logout()
	case key.Matches(m, a.keys.Regions):
		a.toggleRegions()
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
	return nil
}

func (a *App) handleModuleKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(m, a.keys.Quit):
		return tea.Quit
	case key.Matches(m, a.keys.Back):
		a.screen = screenCarousel
		a.setStatus(statusInfo, "left "+a.module.Title)
		a.module = carousel.Gate{}
	case key.Matches(m, a.keys.Logout):
		a.logout()
		if a.module.Protected {
			a.screen = screenCarousel
			a.module = carousel.Gate{}
		}
	}
	return nil
}

func (a *App) handleMouse(m tea.MouseMsg) tea.Cmd {
	switch {
	case m.Button == tea.MouseButtonWheelUp || m.Button == tea.MouseButtonWheelLeft:
		a.nav.OnSwipe(carousel.Prev)
	case m.Button == tea.MouseButtonWheelDown || m.Button == tea.MouseButtonWheelRight:
		a.nav.OnSwipe(carousel.Next)
	case m.Button == tea.MouseButtonLeft && m.Action == tea.MouseActionPress:
		page, ok := a.layout().pageAt(m.X, m.Y)
		if !ok {
			return nil
		}
		return a.handleOutcome(a.nav.OnCardTap(page, a.now().UnixMilli()))
	}
	return nil
}

func (a *App) handleOutcome(out carousel.Outcome) tea.Cmd {
	switch out.Result {
	case carousel.Armed:
		a.setStatus(statusInfo, "tap again to enter "+a.nav.Current().Title)
	case carousel.Failed:
		a.setStatus(statusError, "could not open "+a.nav.Current().Title)
	}
	return a.dispatch()
}

// dispatch applies the commands the navigator emitted.
func (a *App) dispatch() tea.Cmd {
	pending := a.outbox
	a.outbox = nil
	var cmds []tea.Cmd
	for _, c := range pending {
		switch c.Kind {
		case carousel.Direct:
			g, _ := a.nav.GateByRoute(c.Route)
			a.module = g
			a.screen = screenModule
			a.setStatus(statusSuccess, "entered "+g.Title)
		case carousel.ViaLogin:
			a.login = newLoginForm(c.ReturnTo)
			a.screen = screenLogin
			a.setStatus(statusWarn, "sign in to continue")
			cmds = append(cmds, a.login.focus())
		case carousel.Blocked:
			title := c.GateID
			if cur := a.nav.Current(); cur.ID == c.GateID {
				title = cur.Title
			}
			a.setStatus(statusWarn, title+" is coming soon")
		}
	}
	return tea.Batch(cmds...)
}

func (a *App) logout() {
	if !a.auth.AuthContext().Authenticated {
		a.setStatus(statusInfo, "not signed in")
		return
	}
	if err := a.auth.Logout(a.ctx); err != nil {
		a.logger.Warn("logout failed", "error", err)
		a.setStatus(statusError, "logout failed")
		return
	}
	a.setStatus(statusSuccess, "signed out")
}

func (a *App) toggleRegions() {
	a.showRegions = !a.showRegions
	state := "hidden"
	if a.showRegions {
		state = "shown"
	}
	if a.saveRegions != nil {
		if err := a.saveRegions(a.showRegions); err != nil {
			a.logger.Warn("save settings", "error", err)
			a.setStatus(statusError, "regions "+state+", but settings were not saved")
			return
		}
	}
	a.setStatus(statusInfo, "regions "+state)
}

func (a *App) setStatus(kind statusKind, text string) {
	a.status = text
	a.statusKind = kind
}

// Navigator exposes the carousel state for the entrypoint and tests.
func (a *App) Navigator() *carousel.Navigator { return a.nav }
