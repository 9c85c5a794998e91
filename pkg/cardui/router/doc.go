// Package router provides stack based screen navigation with typed routes.
//
// A Route names a destination and carries the data that destination
// needs. The set of destinations is closed: routes are built only with
// the constructors in this package, and they compare by value.
//
// The Router owns the stack. Screens get the Router passed to them and
// call Push, Pop and PopToRoot when the user does something. None of
// these can fail; popping past the root screen is simply ignored. The
// root screen itself is never on the stack, so pushing Root does nothing.
//
// # Basic Usage
//
//	r := router.New()
//
//	nav := router.NewNavigator(r)
//
//	nav.RegisterRoot(func(ctx context.Context, _ router.Route, r *router.Router) error {
//	    choice, err := homeScreen(ctx)
//	    if err != nil {
//	        return router.ErrExit
//	    }
//	    switch choice {
//	    case ChoiceProfile:
//	        r.Push(router.Profile(101))
//	    case ChoiceSettings:
//	        r.Push(router.Settings())
//	    }
//	    return nil
//	})
//
//	nav.Register(router.KindProfile, func(ctx context.Context, route router.Route, r *router.Router) error {
//	    id, _ := route.UserID()
//	    if back := profileScreen(ctx, id); back {
//	        r.Pop()
//	    }
//	    return nil
//	})
//
//	nav.Run(ctx)
//
// # Observing Changes
//
// Subscribe registers an Observer that receives a Snapshot after every
// change. Observers run synchronously, so the visible screen can always
// be derived from the Snapshot's Current route.
//
// # Resume State
//
// Screens can store state such as the focused row with SaveResume before
// pushing another screen. When the pushed screen is popped, Resume hands
// the state back so the screen can restore its position.
package router
