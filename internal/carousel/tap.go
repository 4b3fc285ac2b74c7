package carousel

import "time"

// DefaultTapWindow is the longest gap between two taps that still counts as
// a double tap.
const DefaultTapWindow = 300 * time.Millisecond

// TapKind is the classification of one raw tap.
type TapKind int

const (
	Single TapKind = iota + 1
	Double
)

func (k TapKind) String() string {
	if k == Double {
		return "double"
	}
	return "single"
}

// TapClassifier turns raw tap timestamps into single and double taps. It
// never samples the clock; callers pass timestamps in.
type TapClassifier struct {
	windowMs int64
	lastMs   int64
	pending  bool
}

// NewTapClassifier returns a classifier using window, or DefaultTapWindow
// when window is not positive.
func NewTapClassifier(window time.Duration) *TapClassifier {
	if window <= 0 {
		window = DefaultTapWindow
	}
	return &TapClassifier{windowMs: window.Milliseconds()}
}

// OnTap classifies a tap at nowMs. A double tap consumes both taps, so a
// third rapid tap starts a new pair.
func (t *TapClassifier) OnTap(nowMs int64) TapKind {
	if t.pending && nowMs-t.lastMs < t.windowMs {
		t.pending = false
		t.lastMs = 0
		return Double
	}
	t.pending = true
	t.lastMs = nowMs
	return Single
}

// Reset forgets any pending first tap.
func (t *TapClassifier) Reset() {
	t.pending = false
	t.lastMs = 0
}
