package router

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRoutes() []Route {
	return []Route{Profile(101), Settings(), Profile(-4), Profile(0), Settings(), Profile(101)}
}

func TestRouteEquality(t *testing.T) {
	assert.Equal(t, Profile(1), Profile(1))
	assert.True(t, Profile(1) == Profile(1))
	assert.False(t, Profile(1) == Profile(2))
	assert.True(t, Settings() == Settings())
	assert.False(t, Settings() == Profile(0))
	assert.True(t, Route{} == Root)

	seen := map[Route]int{}
	for _, r := range sampleRoutes() {
		seen[r]++
	}
	assert.Equal(t, 2, seen[Profile(101)])
	assert.Equal(t, 2, seen[Settings()])
	assert.Equal(t, 1, seen[Profile(-4)])
}

func TestRouteAccessors(t *testing.T) {
	id, ok := Profile(-12).UserID()
	assert.True(t, ok)
	assert.Equal(t, -12, id)

	_, ok = Settings().UserID()
	assert.False(t, ok)

	assert.Equal(t, KindProfile, Profile(3).Kind())
	assert.Equal(t, KindSettings, Settings().Kind())
	assert.True(t, Root.IsRoot())
	assert.False(t, Settings().IsRoot())

	assert.Equal(t, "profile(101)", Profile(101).String())
	assert.Equal(t, "settings", Settings().String())
	assert.Equal(t, "root", Root.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestPushPreservesOrder(t *testing.T) {
	routes := sampleRoutes()
	for n := 0; n <= len(routes); n++ {
		r := New()
		for _, route := range routes[:n] {
			r.Push(route)
		}

		assert.Equal(t, routes[:n], r.Path())
		assert.Equal(t, n, r.Depth())

		current, ok := r.Current()
		if n == 0 {
			assert.False(t, ok)
			assert.Equal(t, Root, current)
			continue
		}
		assert.True(t, ok)
		assert.Equal(t, routes[n-1], current)
	}
}

func TestPopOnEmptyIsNoOp(t *testing.T) {
	r := New()
	for k := 0; k < 5; k++ {
		r.Pop()
		assert.Empty(t, r.Path())
		assert.Equal(t, 0, r.Depth())
	}
	assert.Zero(t, r.Version())
}

func TestPushRootIsIgnored(t *testing.T) {
	r := New()
	var notified int
	r.Subscribe(func(Snapshot) { notified++ })

	var zero Route
	r.Push(zero)
	r.Push(Root)

	current, ok := r.Current()
	assert.False(t, ok)
	assert.Equal(t, Root, current)
	assert.Zero(t, r.Depth())
	assert.Zero(t, r.Version())
	assert.Zero(t, notified)

	r.Push(Profile(101))
	r.Push(Root)
	assert.Equal(t, []Route{Profile(101)}, r.Path())
	assert.Equal(t, uint64(1), r.Version())
	assert.Equal(t, 1, notified)
}

func TestPushThenPopRestoresStack(t *testing.T) {
	routes := sampleRoutes()
	for n := 0; n <= len(routes); n++ {
		r := New()
		for _, route := range routes[:n] {
			r.Push(route)
		}
		before := r.Path()

		for _, extra := range []Route{Profile(9), Settings(), Root} {
			r.Push(extra)
			r.Pop()
			assert.Equal(t, before, r.Path())
		}
	}
}

func TestPopToRootIsAbsorbing(t *testing.T) {
	r := New()
	for _, route := range sampleRoutes() {
		r.Push(route)
	}

	r.PopToRoot()
	assert.Empty(t, r.Path())
	v := r.Version()

	r.PopToRoot()
	assert.Empty(t, r.Path())
	assert.Equal(t, v, r.Version(), "popping an empty stack to root is not a change")

	r.Pop()
	assert.Empty(t, r.Path())
}

func TestDuplicatesArePoppedByPosition(t *testing.T) {
	r := New()
	r.Push(Profile(1))
	r.Push(Profile(1))
	require.Equal(t, 2, r.Depth())
	assert.Equal(t, []Route{Profile(1), Profile(1)}, r.Path())

	r.Pop()
	assert.Equal(t, []Route{Profile(1)}, r.Path())
}

func TestScenarios(t *testing.T) {
	r := New()

	r.Push(Profile(101))
	r.Push(Settings())
	assert.Equal(t, []Route{Profile(101), Settings()}, r.Path())
	current, _ := r.Current()
	assert.Equal(t, Settings(), current)

	r.Pop()
	assert.Equal(t, []Route{Profile(101)}, r.Path())
	current, _ = r.Current()
	assert.Equal(t, Profile(101), current)

	r.PopToRoot()
	assert.Empty(t, r.Path())
	current, ok := r.Current()
	assert.False(t, ok)
	assert.True(t, current.IsRoot())

	r.Pop()
	assert.Empty(t, r.Path())
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	r := New()

	var got []Snapshot
	cancel := r.Subscribe(func(s Snapshot) {
		got = append(got, s)
	})

	r.Push(Profile(101))
	r.Push(Settings())
	r.Pop()
	r.Pop()
	r.Pop()
	r.PopToRoot()
	r.Push(Settings())
	r.PopToRoot()

	require.Len(t, got, 6)
	assert.Equal(t, Snapshot{Path: []Route{Profile(101)}, Current: Profile(101), Depth: 1, Version: 1}, got[0])
	assert.Equal(t, Snapshot{Path: []Route{Profile(101), Settings()}, Current: Settings(), Depth: 2, Version: 2}, got[1])
	assert.Equal(t, Profile(101), got[2].Current)
	assert.Equal(t, Root, got[3].Current)
	assert.Equal(t, 0, got[3].Depth)
	assert.Equal(t, Settings(), got[4].Current)
	assert.Equal(t, uint64(6), got[5].Version)

	cancel()
	cancel()
	r.Push(Settings())
	assert.Len(t, got, 6)
}

func TestSubscribeNilObserver(t *testing.T) {
	r := New()
	cancel := r.Subscribe(nil)
	require.NotNil(t, cancel)

	assert.NotPanics(t, func() {
		r.Push(Settings())
		r.Pop()
	})
	cancel()
	assert.Equal(t, uint64(2), r.Version())
}

func TestSubscribeOrderAndIsolation(t *testing.T) {
	r := New()

	var order []string
	cancelA := r.Subscribe(func(s Snapshot) {
		order = append(order, "a")
		s.Path[0] = Profile(999)
	})
	r.Subscribe(func(s Snapshot) {
		order = append(order, "b")
		assert.Equal(t, Settings(), s.Path[0])
	})

	r.Push(Settings())
	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, []Route{Settings()}, r.Path())

	cancelA()
	r.Pop()
	assert.Equal(t, []string{"a", "b", "b"}, order)
}

func TestObserverMayCallRouter(t *testing.T) {
	r := New()

	r.Subscribe(func(s Snapshot) {
		assert.Equal(t, s.Depth, r.Depth())
		if s.Current == Settings() {
			// Redirect settings to a profile from inside the observer.
			r.Pop()
			r.Push(Profile(5))
		}
	})

	r.Push(Settings())
	assert.Equal(t, []Route{Profile(5)}, r.Path())
}

func TestResumeFollowsFrames(t *testing.T) {
	r := New()

	assert.Nil(t, r.Resume())
	r.SaveResume(1)
	assert.Equal(t, 1, r.Resume())

	r.Push(Profile(101))
	assert.Nil(t, r.Resume())
	r.SaveResume(2)

	r.Push(Settings())
	assert.Nil(t, r.Resume())

	r.Pop()
	assert.Equal(t, 2, r.Resume())

	r.PopToRoot()
	assert.Equal(t, 1, r.Resume())
}

func TestConcurrentMutations(t *testing.T) {
	r := New()

	var notified sync.Map
	r.Subscribe(func(s Snapshot) {
		notified.Store(s.Version, s.Depth)
	})

	const workers = 8
	const pushes = 200

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < pushes; i++ {
				r.Push(Profile(id))
				_ = r.Path()
				_, _ = r.Current()
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers*pushes, r.Depth())
	assert.Equal(t, uint64(workers*pushes), r.Version())

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < pushes+50; i++ {
				r.Pop()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, r.Depth())
	assert.Equal(t, uint64(2*workers*pushes), r.Version())
}

func TestNavigatorUnregisteredKind(t *testing.T) {
	r := New()
	r.Push(Settings())

	err := NewNavigator(r).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "screen settings not registered")
}

func TestNavigatorScreenError(t *testing.T) {
	boom := errors.New("boom")

	nav := NewNavigator(New())
	nav.RegisterRoot(func(context.Context, Route, *Router) error {
		return boom
	})

	err := nav.Run(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestNavigatorStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	nav := NewNavigator(New())
	nav.RegisterRoot(func(context.Context, Route, *Router) error {
		calls++
		cancel()
		return nil
	})

	err := nav.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestNavigatorPassesRoute(t *testing.T) {
	r := New()
	r.Push(Profile(42))

	var seen []Route
	nav := NewNavigator(r)
	nav.Register(KindProfile, func(_ context.Context, route Route, r *Router) error {
		seen = append(seen, route)
		r.Pop()
		return nil
	})
	nav.RegisterRoot(func(_ context.Context, route Route, _ *Router) error {
		seen = append(seen, route)
		return ErrExit
	})

	require.NoError(t, nav.Run(context.Background()))
	assert.Equal(t, []Route{Profile(42), Root}, seen)
	assert.Same(t, r, nav.Router())
}
