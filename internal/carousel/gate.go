package carousel

// Gate describes one module reachable from the carousel. The navigator only
// reads gates; catalogs own them.
type Gate struct {
	ID          string
	Route       string
	Title       string
	Description string
	Region      string
	Accent      string
	ComingSoon  bool
	Protected   bool
}

// Catalog supplies the ordered gate list for one navigation session.
type Catalog interface {
	Gates() []Gate
}

// GateList is a Catalog backed by a plain slice.
type GateList []Gate

func (l GateList) Gates() []Gate { return l }

// AuthContext is the authentication state at decision time.
type AuthContext struct {
	Authenticated bool
	Subject       string
}

// AuthProvider is queried synchronously whenever an entry is decided.
type AuthProvider interface {
	AuthContext() AuthContext
}

// AuthFunc adapts a function to AuthProvider.
type AuthFunc func() AuthContext

func (f AuthFunc) AuthContext() AuthContext { return f() }

// Sink hands decided commands to the host's router. Navigation is
// fire-and-forget: Navigate should return once the request is queued.
type Sink interface {
	Navigate(Command) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Command) error

func (f SinkFunc) Navigate(c Command) error { return f(c) }
