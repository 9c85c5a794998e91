package router

import (
	"log/slog"
	"sync"

	"go.uber.org/atomic"
)

// Snapshot is a copy of the router state taken right after a mutation.
type Snapshot struct {
	Path    []Route // Bottom first; empty when the root screen is visible
	Current Route   // Top of Path, or Root when Path is empty
	Depth   int     // len(Path)
	Version uint64  // Mutation counter at the time of the snapshot
}

// Observer is notified after every change to the stack.
type Observer func(Snapshot)

type subscription struct {
	id uint64
	fn Observer
}

// Router owns the navigation stack and is the only thing allowed to
// change it. Screens receive the Router explicitly and call Push, Pop
// and PopToRoot in response to user input; the rendering layer reads
// Current to decide what to draw.
//
// None of the mutating methods can fail. Popping an empty stack is a
// no-op. All methods are safe for concurrent use.
type Router struct {
	mu         sync.RWMutex
	stack      *Stack
	rootResume any
	observers  []subscription
	nextID     uint64
	version    atomic.Uint64
	logger     *slog.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used for debug output on every mutation.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Router with an empty stack.
func New(opts ...Option) *Router {
	r := &Router{
		stack:  NewStack(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Push appends route to the stack, making it the visible screen.
// Root is not a destination and is ignored; use PopToRoot to return to
// the root screen.
func (r *Router) Push(route Route) {
	if route.IsRoot() {
		r.logger.Debug("router push of root ignored")
		return
	}

	r.mu.Lock()
	r.stack.Push(route)
	snap := r.snapshotLocked(true)
	observers := r.observersLocked()
	r.mu.Unlock()

	r.logger.Debug("router push", "route", route.String(), "depth", snap.Depth)
	notify(observers, snap)
}

// Pop removes the visible screen. It does nothing when the stack is empty.
func (r *Router) Pop() {
	r.mu.Lock()
	frame := r.stack.Pop()
	if frame == nil {
		r.mu.Unlock()
		r.logger.Debug("router pop on empty stack ignored")
		return
	}
	snap := r.snapshotLocked(true)
	observers := r.observersLocked()
	r.mu.Unlock()

	r.logger.Debug("router pop", "route", frame.Route.String(), "depth", snap.Depth)
	notify(observers, snap)
}

// PopToRoot empties the stack in one step, whatever its depth.
// Observers are only notified if the stack was not already empty.
func (r *Router) PopToRoot() {
	r.mu.Lock()
	popped := r.stack.Len()
	r.stack.Clear()
	if popped == 0 {
		r.mu.Unlock()
		return
	}
	snap := r.snapshotLocked(true)
	observers := r.observersLocked()
	r.mu.Unlock()

	r.logger.Debug("router pop to root", "popped", popped)
	notify(observers, snap)
}

// Path returns a copy of the stack, bottom first.
func (r *Router) Path() []Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stack.Routes()
}

// Current returns the visible route.
// When the stack is empty it returns Root and false.
func (r *Router) Current() (Route, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if frame := r.stack.Peek(); frame != nil {
		return frame.Route, true
	}
	return Root, false
}

// Depth returns the number of routes on the stack.
func (r *Router) Depth() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stack.Len()
}

// Version returns the number of mutations applied so far.
// No-op pops do not count.
func (r *Router) Version() uint64 {
	return r.version.Load()
}

// Snapshot returns the current state without changing it.
func (r *Router) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked(false)
}

// SaveResume stores screen state on the visible frame, or on the root
// screen when the stack is empty. It is handed back by Resume when the
// frame becomes visible again.
func (r *Router) SaveResume(state any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if frame := r.stack.Peek(); frame != nil {
		frame.Resume = state
		return
	}
	r.rootResume = state
}

// Resume returns the state saved for the visible frame, or nil.
func (r *Router) Resume() any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if frame := r.stack.Peek(); frame != nil {
		return frame.Resume
	}
	return r.rootResume
}

// Subscribe registers fn to be called after every change to the stack.
// Observers run synchronously on the goroutine that made the change, in
// the order they subscribed, after the router lock has been released.
// The returned function removes the observer; calling it more than once
// is harmless.
// A nil observer is not registered.
func (r *Router) Subscribe(fn Observer) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.observers = append(r.observers, subscription{id: id, fn: fn})
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			for i, s := range r.observers {
				if s.id == id {
					r.observers = append(r.observers[:i:i], r.observers[i+1:]...)
					return
				}
			}
		})
	}
}

func (r *Router) snapshotLocked(mutated bool) Snapshot {
	var version uint64
	if mutated {
		version = r.version.Inc()
	} else {
		version = r.version.Load()
	}

	path := r.stack.Routes()
	current := Root
	if len(path) > 0 {
		current = path[len(path)-1]
	}

	return Snapshot{
		Path:    path,
		Current: current,
		Depth:   len(path),
		Version: version,
	}
}

func (r *Router) observersLocked() []Observer {
	if len(r.observers) == 0 {
		return nil
	}
	fns := make([]Observer, len(r.observers))
	for i, s := range r.observers {
		fns[i] = s.fn
	}
	return fns
}

func notify(observers []Observer, snap Snapshot) {
	for _, fn := range observers {
		// Each observer gets its own copy of the path.
		own := snap
		own.Path = append(make([]Route, 0, len(snap.Path)), snap.Path...)
		fn(own)
	}
}
