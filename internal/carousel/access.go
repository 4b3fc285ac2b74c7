package carousel

// DefaultLoginRoute is where protected gates detour when unauthenticated.
const DefaultLoginRoute = "login"

// AccessGate decides where an entry attempt really goes.
type AccessGate struct {
	LoginRoute string
}

// Decide is a pure function of target and auth.
func (a AccessGate) Decide(target Gate, auth AuthContext) Command {
	switch {
	case target.ComingSoon:
		return Command{Kind: Blocked, GateID: target.ID}
	case target.Protected && !auth.Authenticated:
		login := a.LoginRoute
		if login == "" {
			login = DefaultLoginRoute
		}
		return Command{Kind: ViaLogin, GateID: target.ID, LoginRoute: login, ReturnTo: target.Route}
	default:
		return Command{Kind: Direct, GateID: target.ID, Route: target.Route}
	}
}
