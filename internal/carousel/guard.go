package carousel

import "fmt"

// TransitionGuard allows one entry transition at a time. The navigator runs
// on a single event loop, so a plain flag is enough; it must not be shared
// between goroutines.
type TransitionGuard struct {
	inFlight bool
}

// TryAcquire takes the guard if it is free.
func (g *TransitionGuard) TryAcquire() bool {
	if g.inFlight {
		return false
	}
	g.inFlight = true
	return true
}

// Release frees the guard. Releasing a free guard is a no-op.
func (g *TransitionGuard) Release() { g.inFlight = false }

// InFlight reports whether a transition currently holds the guard.
func (g *TransitionGuard) InFlight() bool { return g.inFlight }

// Do runs fn while holding the guard and reports whether it ran. The guard
// is released on every exit path; a panic in fn is returned as an error.
func (g *TransitionGuard) Do(fn func() error) (ran bool, err error) {
	if !g.TryAcquire() {
		return false, nil
	}
	defer g.Release()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTransitionPanic, r)
		}
	}()
	return true, fn()
}
