package carousel

import "fmt"

// CommandKind distinguishes the outcomes of an entry decision.
type CommandKind int

const (
	// Direct opens the gate route.
	Direct CommandKind = iota + 1
	// ViaLogin detours through the login route and resumes at ReturnTo.
	ViaLogin
	// Blocked means the gate is not available yet; no navigation happens.
	Blocked
)

func (k CommandKind) String() string {
	switch k {
	case Direct:
		return "direct"
	case ViaLogin:
		return "via-login"
	case Blocked:
		return "blocked"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Command is a single navigation request. It is emitted once and discarded.
type Command struct {
	Kind       CommandKind
	GateID     string
	Route      string
	LoginRoute string
	ReturnTo   string
}

// Destination is the route the host should open, empty for Blocked.
func (c Command) Destination() string {
	switch c.Kind {
	case Direct:
		return c.Route
	case ViaLogin:
		return c.LoginRoute
	default:
		return ""
	}
}

func (c Command) String() string {
	switch c.Kind {
	case Direct:
		return "direct:" + c.Route
	case ViaLogin:
		return fmt.Sprintf("login:%s?returnTo=%s", c.LoginRoute, c.ReturnTo)
	case Blocked:
		return "blocked:" + c.GateID
	default:
		return c.Kind.String()
	}
}
