package router

import "strconv"

// Kind identifies which destination a Route points at.
type Kind int

const (
	KindRoot     Kind = iota // The root screen; never on the stack
	KindProfile              // A user profile, carries a user id
	KindSettings             // Application settings, no payload
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindProfile:
		return "profile"
	case KindSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Route is a navigable destination and the data it needs.
//
// Route is an immutable value. The fields are unexported so the only
// way to build one is through the constructors below, which keeps the
// set of destinations closed. Two routes are equal when their kind and
// payload are equal, so Route works with == and as a map key.
//
// The zero value is Root.
type Route struct {
	kind   Kind
	userID int
}

// Root is the route reported for an empty stack. It is not a
// destination: Router.Push ignores it.
var Root = Route{}

// Profile returns the route to the profile screen for userID.
// Any integer is accepted; whether the user exists is up to the screen.
func Profile(userID int) Route {
	return Route{kind: KindProfile, userID: userID}
}

// Settings returns the route to the settings screen.
func Settings() Route {
	return Route{kind: KindSettings}
}

// Kind returns the destination kind.
func (r Route) Kind() Kind {
	return r.kind
}

// UserID returns the user id of a Profile route.
// The second return value is false for every other kind.
func (r Route) UserID() (int, bool) {
	if r.kind != KindProfile {
		return 0, false
	}
	return r.userID, true
}

// IsRoot reports whether r is the root marker.
func (r Route) IsRoot() bool {
	return r.kind == KindRoot
}

func (r Route) String() string {
	if r.kind == KindProfile {
		return "profile(" + strconv.Itoa(r.userID) + ")"
	}
	return r.kind.String()
}
