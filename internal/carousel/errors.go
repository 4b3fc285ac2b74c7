package carousel

import "errors"

var (
	ErrEmptyCatalog    = errors.New("carousel: catalog has no gates")
	ErrNilSink         = errors.New("carousel: navigation sink is required")
	ErrUnknownRoute    = errors.New("carousel: no gate for route")
	ErrTransitionPanic = errors.New("carousel: navigation sink panicked")
)
