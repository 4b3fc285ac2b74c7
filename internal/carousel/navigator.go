package carousel

import (
	"fmt"
	"log/slog"
	"time"
)

// State is the navigator's position in the entry state machine.
type State int

const (
	Idle State = iota
	AwaitingDecision
)

func (s State) String() string {
	if s == AwaitingDecision {
		return "awaiting-decision"
	}
	return "idle"
}

// Page identifies one of the three visible cards.
type Page int

const (
	PrevPage Page = iota - 1
	ActivePage
	NextPage
)

// Result says what happened to an input event.
type Result int

const (
	// Ignored: the tap landed on a card that is not active.
	Ignored Result = iota
	// Armed: a first tap was recorded and may become a double tap.
	Armed
	// Dropped: an entry was requested while another was in flight.
	Dropped
	// Emitted: a command was handed to the sink.
	Emitted
	// Failed: the sink rejected the command; the navigator is idle again.
	Failed
)

func (r Result) String() string {
	switch r {
	case Armed:
		return "armed"
	case Dropped:
		return "dropped"
	case Emitted:
		return "emitted"
	case Failed:
		return "failed"
	default:
		return "ignored"
	}
}

// Outcome reports the handling of one event. Command is set for Emitted and
// Failed.
type Outcome struct {
	Result  Result
	Command Command
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithTapWindow overrides DefaultTapWindow.
func WithTapWindow(d time.Duration) Option {
	return func(n *Navigator) { n.taps = NewTapClassifier(d) }
}

// WithLoginRoute overrides DefaultLoginRoute.
func WithLoginRoute(route string) Option {
	return func(n *Navigator) { n.access.LoginRoute = route }
}

// WithLogger sets the logger. Logging is discarded by default.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithStartIndex positions the cursor before the first event.
func WithStartIndex(i int) Option {
	return func(n *Navigator) { n.start = i }
}

// Navigator drives the gate carousel: it moves the cursor on swipes, turns
// double taps on the active card into entry attempts and emits at most one
// command per attempt. It is not safe for concurrent use; call it from the
// host's event loop.
type Navigator struct {
	gates  []Gate
	cursor *Cursor
	taps   *TapClassifier
	guard  TransitionGuard
	access AccessGate
	auth   AuthProvider
	sink   Sink
	state  State
	start  int
	logger *slog.Logger
}

// New snapshots the catalog and returns an idle navigator. A nil auth
// provider treats every decision as unauthenticated.
func New(catalog Catalog, auth AuthProvider, sink Sink, opts ...Option) (*Navigator, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	var gates []Gate
	if catalog != nil {
		gates = append(gates, catalog.Gates()...)
	}
	if len(gates) == 0 {
		return nil, ErrEmptyCatalog
	}
	if auth == nil {
		auth = AuthFunc(func() AuthContext { return AuthContext{} })
	}
	n := &Navigator{
		gates:  gates,
		cursor: NewCursor(len(gates)),
		taps:   NewTapClassifier(DefaultTapWindow),
		access: AccessGate{LoginRoute: DefaultLoginRoute},
		auth:   auth,
		sink:   sink,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.cursor.SetIndex(n.start)
	return n, nil
}

func (n *Navigator) State() State { return n.state }
func (n *Navigator) Index() int   { return n.cursor.Index() }
func (n *Navigator) Len() int     { return len(n.gates) }
func (n *Navigator) Current() Gate {
	return n.gates[n.cursor.Index()]
}

// Gates returns a copy of the session's gate list.
func (n *Navigator) Gates() []Gate {
	return append([]Gate(nil), n.gates...)
}

// VisiblePages returns the gates rendered left, centre and right.
func (n *Navigator) VisiblePages() (prev, current, next Gate) {
	p, c, x := n.cursor.Neighbors()
	return n.gates[p], n.gates[c], n.gates[x]
}

// OnSwipe moves one page. Swiping never touches the transition guard; it
// does forget a half-finished double tap since the active card changed.
func (n *Navigator) OnSwipe(d Direction) int {
	n.taps.Reset()
	return n.cursor.Advance(d)
}

// Jump makes gate i active, wrapping out-of-range values.
func (n *Navigator) Jump(i int) int {
	n.taps.Reset()
	return n.cursor.SetIndex(i)
}

// OnTap handles a tap on the active card at nowMs.
func (n *Navigator) OnTap(nowMs int64) Outcome {
	return n.OnCardTap(ActivePage, nowMs)
}

// OnCardTap handles a tap on one of the visible cards. Only the active card
// takes part in double-tap detection.
func (n *Navigator) OnCardTap(p Page, nowMs int64) Outcome {
	if p != ActivePage {
		return Outcome{Result: Ignored}
	}
	if n.taps.OnTap(nowMs) == Single {
		return Outcome{Result: Armed}
	}
	return n.enter()
}

// Enter attempts to open the active gate without a gesture.
func (n *Navigator) Enter() Outcome {
	n.taps.Reset()
	return n.enter()
}

// Resume makes the gate serving route active and enters it again, typically
// after a login detour.
func (n *Navigator) Resume(route string) (Outcome, error) {
	idx := n.indexOfRoute(route)
	if idx < 0 {
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}
	n.Jump(idx)
	return n.enter(), nil
}

// GateByRoute looks up a gate in the session snapshot.
func (n *Navigator) GateByRoute(route string) (Gate, bool) {
	if idx := n.indexOfRoute(route); idx >= 0 {
		return n.gates[idx], true
	}
	return Gate{}, false
}

func (n *Navigator) indexOfRoute(route string) int {
	for i, g := range n.gates {
		if g.Route == route {
			return i
		}
	}
	return -1
}

func (n *Navigator) enter() Outcome {
	target := n.gates[n.cursor.Index()]
	var cmd Command
	ran, err := n.guard.Do(func() error {
		n.state = AwaitingDecision
		defer func() { n.state = Idle }()
		cmd = n.access.Decide(target, n.auth.AuthContext())
		return n.sink.Navigate(cmd)
	})
	if !ran {
		n.logger.Debug("entry dropped, transition in flight", "gate", target.ID)
		return Outcome{Result: Dropped}
	}
	if err != nil {
		n.logger.Warn("navigation failed", "gate", target.ID, "command", cmd.String(), "error", err)
		return Outcome{Result: Failed, Command: cmd}
	}
	n.logger.Info("navigation emitted", "gate", target.ID, "command", cmd.String())
	return Outcome{Result: Emitted, Command: cmd}
}
