package router

// Frame is a single entry in the navigation stack.
// It stores the route being shown and any resume state the screen
// saved before another screen was pushed over it.
type Frame struct {
	Route  Route
	Resume any
}

// Stack is the ordered path from the root screen to the visible screen.
// The last frame is the one on screen. Stack is not safe for concurrent
// use on its own; Router serializes access to it.
type Stack struct {
	frames []Frame
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		frames: make([]Frame, 0),
	}
}

// Push appends a frame for route.
func (s *Stack) Push(route Route) {
	s.frames = append(s.frames, Frame{Route: route})
}

// Pop removes and returns the top frame.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	frame := s.frames[len(s.frames)-1]
	s.frames[len(s.frames)-1] = Frame{}
	s.frames = s.frames[:len(s.frames)-1]
	return &frame
}

// Peek returns the top frame without removing it.
// Returns nil if the stack is empty. The returned frame may be modified
// in place to update its resume state.
func (s *Stack) Peek() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	return &s.frames[len(s.frames)-1]
}

// IsEmpty returns true if the stack has no frames.
func (s *Stack) IsEmpty() bool {
	return len(s.frames) == 0
}

// Len returns the number of frames in the stack.
func (s *Stack) Len() int {
	return len(s.frames)
}

// Routes returns a copy of the routes, bottom first.
func (s *Stack) Routes() []Route {
	routes := make([]Route, len(s.frames))
	for i, f := range s.frames {
		routes[i] = f.Route
	}
	return routes
}

// Clear replaces the frames with an empty slice.
// A fresh slice is used so resume state held by the old frames is released.
func (s *Stack) Clear() {
	s.frames = make([]Frame, 0)
}
