package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aurakai/gatenav/internal/auth"
)

type loginForm struct {
	returnTo string
	inputs   [2]textinput.Model
	focused  int
	busy     bool
	err      string
}

func newLoginForm(returnTo string) loginForm {
	user := textinput.New()
	user.Placeholder = "username"
	user.Prompt = "user  "
	user.CharLimit = 64

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.Prompt = "pass  "
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'
	pass.CharLimit = 128

	return loginForm{returnTo: returnTo, inputs: [2]textinput.Model{user, pass}}
}

func (f *loginForm) focus() tea.Cmd {
	for i := range f.inputs {
		if i == f.focused {
			continue
		}
		f.inputs[i].Blur()
	}
	return f.inputs[f.focused].Focus()
}

func (f *loginForm) cycle(step int) tea.Cmd {
	f.focused = (f.focused + step + len(f.inputs)) % len(f.inputs)
	return f.focus()
}

func (a *App) handleLoginKey(m tea.KeyMsg) tea.Cmd {
	f := &a.login
	if f.busy {
		return nil
	}
	switch {
	case key.Matches(m, a.keys.Back):
		a.screen = screenCarousel
		a.setStatus(statusInfo, "sign-in cancelled")
		return nil
	case m.String() == "tab" || m.String() == "down":
		return f.cycle(1)
	case m.String() == "shift+tab" || m.String() == "up":
		return f.cycle(-1)
	case m.String() == "enter":
		if f.focused == 0 {
			return f.cycle(1)
		}
		username := strings.TrimSpace(f.inputs[0].Value())
		password := f.inputs[1].Value()
		if username == "" || password == "" {
			f.err = "username and password are required"
			return nil
		}
		f.busy = true
		f.err = ""
		return a.loginCmd(username, password, f.returnTo)
	}
	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(m)
	return cmd
}

func (a *App) loginCmd(username, password, returnTo string) tea.Cmd {
	return func() tea.Msg {
		_, err := a.auth.Login(a.ctx, username, password)
		return loginResultMsg{returnTo: returnTo, username: username, err: err}
	}
}

// handleLoginResult resumes the detour at the requested gate after a
// successful sign-in.
func (a *App) handleLoginResult(m loginResultMsg) tea.Cmd {
	a.login.busy = false
	if m.err != nil {
		if errors.Is(m.err, auth.ErrInvalidCredentials) {
			a.login.err = "invalid username or password"
		} else {
			a.logger.Error("login failed", "error", m.err)
			a.login.err = "sign-in failed: " + m.err.Error()
		}
		a.login.inputs[1].SetValue("")
		return nil
	}
	a.logger.Info("signed in", "username", m.username, "return_to", m.returnTo)
	a.screen = screenCarousel
	out, err := a.nav.Resume(m.returnTo)
	if err != nil {
		a.logger.Warn("resume failed", "return_to", m.returnTo, "error", err)
		a.setStatus(statusError, "signed in, but "+m.returnTo+" is gone")
		return nil
	}
	return a.handleOutcome(out)
}
