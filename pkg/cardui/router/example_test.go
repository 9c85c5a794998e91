package router_test

import (
	"context"
	"fmt"

	"github.com/kaushalbhalara/routerdemo/pkg/cardui/router"
)

// Example walks the same path a user takes through the demo:
// home -> profile -> settings -> back -> home.
func Example() {
	r := router.New()

	r.Push(router.Profile(101))
	r.Push(router.Settings())
	fmt.Println(r.Path())

	r.Pop()
	current, _ := r.Current()
	fmt.Println(current)

	r.PopToRoot()
	current, ok := r.Current()
	fmt.Println(current, ok, r.Depth())

	// Output:
	// [profile(101) settings]
	// profile(101)
	// root false 0
}

// Example_popOnEmpty shows that popping past the root screen is ignored.
func Example_popOnEmpty() {
	r := router.New()

	r.Pop()
	r.Pop()

	fmt.Println(r.Depth(), r.Version())

	// Output:
	// 0 0
}

// Example_subscribe derives the visible screen from each snapshot.
func Example_subscribe() {
	r := router.New()

	cancel := r.Subscribe(func(s router.Snapshot) {
		fmt.Printf("v%d showing %s (depth %d)\n", s.Version, s.Current, s.Depth)
	})
	defer cancel()

	r.Push(router.Settings())
	r.Push(router.Profile(7))
	r.PopToRoot()

	// Output:
	// v1 showing settings (depth 1)
	// v2 showing profile(7) (depth 2)
	// v3 showing root (depth 0)
}

// Example_navigator runs a scripted flow through registered screens.
func Example_navigator() {
	r := router.New()
	nav := router.NewNavigator(r)

	homeVisits := 0

	nav.RegisterRoot(func(_ context.Context, _ router.Route, r *router.Router) error {
		homeVisits++
		if homeVisits == 1 {
			fmt.Println("Home: opening profile")
			r.Push(router.Profile(101))
			return nil
		}
		fmt.Println("Home: exiting")
		return router.ErrExit
	})

	nav.Register(router.KindProfile, func(_ context.Context, route router.Route, r *router.Router) error {
		id, _ := route.UserID()
		fmt.Printf("Profile %d: opening settings\n", id)
		r.Push(router.Settings())
		return nil
	})

	nav.Register(router.KindSettings, func(_ context.Context, _ router.Route, r *router.Router) error {
		fmt.Println("Settings: going home")
		r.PopToRoot()
		return nil
	})

	_ = nav.Run(context.Background())

	// Output:
	// Home: opening profile
	// Profile 101: opening settings
	// Settings: going home
	// Home: exiting
}
