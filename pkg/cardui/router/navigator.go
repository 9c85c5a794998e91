package router

import (
	"context"
	"errors"
	"fmt"
)

// ErrExit is returned by a ScreenFunc to stop Navigator.Run.
var ErrExit = errors.New("router: exit requested")

// ScreenFunc runs a screen for route.
// It blocks while the screen is visible and returns once the user has
// done something, usually after calling one of r's mutating methods.
// Returning ErrExit ends the navigation loop.
type ScreenFunc func(ctx context.Context, route Route, r *Router) error

// Navigator is the rendering side of the router. It maps the route on
// top of the stack to a registered screen, runs it, and repeats until a
// screen asks to exit.
type Navigator struct {
	router  *Router
	screens map[Kind]ScreenFunc
}

// NewNavigator creates a Navigator that renders r.
func NewNavigator(r *Router) *Navigator {
	return &Navigator{
		router:  r,
		screens: make(map[Kind]ScreenFunc),
	}
}

// Register adds the screen shown for routes of the given kind.
func (n *Navigator) Register(kind Kind, fn ScreenFunc) *Navigator {
	n.screens[kind] = fn
	return n
}

// RegisterRoot adds the screen shown when the stack is empty.
func (n *Navigator) RegisterRoot(fn ScreenFunc) *Navigator {
	return n.Register(KindRoot, fn)
}

// Router returns the router this navigator renders.
func (n *Navigator) Router() *Router {
	return n.router
}

// Run shows the screen for the current route until a screen returns
// ErrExit or ctx is done. The visible screen is looked up again from the
// top of the stack after every screen returns.
func (n *Navigator) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		route, _ := n.router.Current()

		fn, ok := n.screens[route.Kind()]
		if !ok {
			return fmt.Errorf("router: screen %s not registered", route.Kind())
		}

		if err := fn(ctx, route, n.router); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			return fmt.Errorf("router: screen %s error: %w", route, err)
		}
	}
}
