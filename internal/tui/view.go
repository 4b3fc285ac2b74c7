package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/aurakai/gatenav/internal/carousel"
)

const (
	defaultWidth = 100
	headerHeight = 2
	cardHeight   = 12
	cardGap      = 2
)

// cardLayout places the three visible cards; rendering and mouse hit
// testing share it.
type cardLayout struct {
	left    int
	sideW   int
	centerW int
	gap     int
	top     int
	height  int
}

func (a *App) layout() cardLayout {
	w := a.width
	if w <= 0 {
		w = defaultWidth
	}
	centerW := clamp(w/2, 24, 48)
	sideW := clamp((w-centerW)/4, 12, 24)
	total := 2*sideW + centerW + 2*cardGap
	return cardLayout{
		left:    max(0, (w-total)/2),
		sideW:   sideW,
		centerW: centerW,
		gap:     cardGap,
		top:     headerHeight,
		height:  cardHeight,
	}
}

// pageAt maps a terminal cell to the card under it.
func (l cardLayout) pageAt(x, y int) (carousel.Page, bool) {
	if y < l.top || y >= l.top+l.height {
		return 0, false
	}
	prevStart := l.left
	activeStart := prevStart + l.sideW + l.gap
	nextStart := activeStart + l.centerW + l.gap
	switch {
	case x >= prevStart && x < prevStart+l.sideW:
		return carousel.PrevPage, true
	case x >= activeStart && x < activeStart+l.centerW:
		return carousel.ActivePage, true
	case x >= nextStart && x < nextStart+l.sideW:
		return carousel.NextPage, true
	}
	return 0, false
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.headerView())
	b.WriteString("\n\n")
	switch a.screen {
	case screenModule:
		b.WriteString(a.moduleView())
	case screenLogin:
		b.WriteString(a.loginView())
	case screenJump:
		b.WriteString(a.jumpView())
	default:
		b.WriteString(a.carouselView())
	}
	b.WriteString("\n")
	b.WriteString(a.statusView())
	b.WriteString("\n")
	b.WriteString(a.help.View(a.keys))
	return b.String()
}

func (a *App) headerView() string {
	who := subtleStyle.Render("guest")
	if ac := a.auth.AuthContext(); ac.Authenticated {
		who = successStyle.Render("signed in as " + ac.Subject)
	}
	return titleStyle.Render("GATES") + "  " + who
}

func (a *App) carouselView() string {
	l := a.layout()
	prev, cur, next := a.nav.VisiblePages()
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCard(prev, l.sideW, l.height, false, a.showRegions),
		strings.Repeat(" ", l.gap),
		renderCard(cur, l.centerW, l.height, true, a.showRegions),
		strings.Repeat(" ", l.gap),
		renderCard(next, l.sideW, l.height, false, a.showRegions),
	)
	row = lipgloss.NewStyle().PaddingLeft(l.left).Render(row)
	return row + "\n" + a.indicatorView(l)
}

func renderCard(g carousel.Gate, width, height int, active, showRegion bool) string {
	accent := accentColor(g.Accent)
	inner := max(1, width-4)

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSurface1).
		Width(width-2).
		Height(height-2).
		MaxHeight(height).
		Padding(0, 1)
	if active {
		style = style.Border(lipgloss.ThickBorder()).BorderForeground(accent)
	}

	heading := lipgloss.NewStyle().Foreground(accent).Bold(active)
	if !active {
		heading = heading.Faint(true)
	}
	lines := []string{heading.Render(ansi.Truncate(g.Title, inner, "…"))}
	if showRegion && g.Region != "" {
		lines = append(lines, subtleStyle.Render(ansi.Truncate(g.Region, inner, "…")))
	}
	if badge := badges(g); badge != "" {
		lines = append(lines, badge)
	}
	lines = append(lines, "")
	if active {
		lines = append(lines, textStyle.Width(inner).Render(g.Description))
	} else {
		lines = append(lines, subtleStyle.Render(ansi.Truncate(g.Description, inner, "…")))
	}
	return style.Render(strings.Join(lines, "\n"))
}

func badges(g carousel.Gate) string {
	var parts []string
	if g.Protected {
		parts = append(parts, lockedStyle.Render("[locked]"))
	}
	if g.ComingSoon {
		parts = append(parts, warningStyle.Render("[soon]"))
	}
	return strings.Join(parts, " ")
}

func (a *App) indicatorView(l cardLayout) string {
	idx := a.nav.Index()
	var dots strings.Builder
	for i := 0; i < a.nav.Len(); i++ {
		if i == idx {
			dots.WriteString(titleStyle.Render("●"))
		} else {
			dots.WriteString(subtleStyle.Render("·"))
		}
	}
	cur := a.nav.Current()
	label := fmt.Sprintf("%s  %d/%d", cur.Title, idx+1, a.nav.Len())
	line := dots.String() + "  " + textStyle.Render(label)
	return lipgloss.NewStyle().PaddingLeft(l.left).Render(line)
}

func (a *App) moduleView() string {
	g := a.module
	lines := []string{
		lipgloss.NewStyle().Foreground(accentColor(g.Accent)).Bold(true).Render(g.Title),
		subtleStyle.Render("route: " + g.Route),
	}
	if g.Region != "" {
		lines = append(lines, subtleStyle.Render("region: "+g.Region))
	}
	lines = append(lines, "", textStyle.Width(60).Render(g.Description), "", subtleStyle.Render("esc to return to the gates"))
	return panelStyle.BorderForeground(accentColor(g.Accent)).Render(strings.Join(lines, "\n"))
}

func (a *App) loginView() string {
	f := a.login
	target := f.returnTo
	if g, ok := a.nav.GateByRoute(f.returnTo); ok {
		target = g.Title
	}
	lines := []string{
		titleStyle.Render("Sign in"),
		subtleStyle.Render(target + " is protected"),
		"",
		f.inputs[0].View(),
		f.inputs[1].View(),
		"",
	}
	switch {
	case f.busy:
		lines = append(lines, infoStyle.Render("checking…"))
	case f.err != "":
		lines = append(lines, errorStyle.Render(f.err))
	default:
		lines = append(lines, subtleStyle.Render("tab to switch · enter to sign in · esc to cancel"))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (a *App) jumpView() string {
	p := a.jump
	lines := []string{p.input.View(), ""}
	for i, m := range p.matches {
		label := fmt.Sprintf("%-22s %s", m.gate.Title, m.gate.Route)
		if i == p.cursor {
			lines = append(lines, selectedStyle.Render("> "+label))
		} else {
			lines = append(lines, textStyle.Render("  "+label))
		}
	}
	if len(p.matches) == 0 {
		lines = append(lines, subtleStyle.Render("no gates"))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (a *App) statusView() string {
	if a.status == "" {
		return ""
	}
	switch a.statusKind {
	case statusSuccess:
		return successStyle.Render(a.status)
	case statusWarn:
		return warningStyle.Render(a.status)
	case statusError:
		return errorStyle.Render(a.status)
	default:
		return infoStyle.Render(a.status)
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
