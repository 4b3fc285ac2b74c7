package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aurakai/gatenav/internal/carousel"
)

const maxJumpMatches = 8

type jumpMatch struct {
	index int
	gate  carousel.Gate
	score int
}

type jumpPicker struct {
	input   textinput.Model
	gates   []carousel.Gate
	matches []jumpMatch
	cursor  int
}

func newJumpPicker(gates []carousel.Gate) jumpPicker {
	in := textinput.New()
	in.Placeholder = "gate name or route"
	in.Prompt = "/ "
	in.CharLimit = 48
	p := jumpPicker{input: in, gates: gates}
	p.matches = rankGates("", gates)
	return p
}

// rankGates orders gates by closeness to query: prefix hits on the title,
// a title word or the route first, then other substring hits, then the rest
// by edit distance. Ties keep catalog order.
func rankGates(query string, gates []carousel.Gate) []jumpMatch {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]jumpMatch, 0, len(gates))
	for i, g := range gates {
		out = append(out, jumpMatch{index: i, gate: g, score: gateScore(q, g)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].score < out[j].score })
	if len(out) > maxJumpMatches {
		out = out[:maxJumpMatches]
	}
	return out
}

func gateScore(q string, g carousel.Gate) int {
	if q == "" {
		return 0
	}
	title := strings.ToLower(g.Title)
	route := strings.ToLower(g.Route)
	if strings.HasPrefix(title, q) || strings.HasPrefix(route, q) {
		return 0
	}
	words := strings.Fields(title)
	for _, w := range words {
		if strings.HasPrefix(w, q) {
			return 0
		}
	}
	if strings.Contains(title, q) || strings.Contains(route, q) {
		return 1
	}
	best := min(levenshtein.ComputeDistance(q, title), levenshtein.ComputeDistance(q, route))
	for _, w := range words {
		best = min(best, levenshtein.ComputeDistance(q, w))
	}
	return best + 2
}

func (a *App) handleJumpKey(m tea.KeyMsg) tea.Cmd {
	p := &a.jump
	switch {
	case key.Matches(m, a.keys.Back):
		a.screen = screenCarousel
		return nil
	case m.String() == "up" || m.String() == "ctrl+p":
		if p.cursor > 0 {
			p.cursor--
		}
		return nil
	case m.String() == "down" || m.String() == "ctrl+n":
		if p.cursor < len(p.matches)-1 {
			p.cursor++
		}
		return nil
	case m.String() == "enter":
		a.screen = screenCarousel
		if len(p.matches) == 0 {
			return nil
		}
		target := p.matches[p.cursor]
		a.nav.Jump(target.index)
		a.setStatus(statusInfo, "jumped to "+target.gate.Title)
		return nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(m)
	p.matches = rankGates(p.input.Value(), p.gates)
	p.cursor = 0
	return cmd
}
