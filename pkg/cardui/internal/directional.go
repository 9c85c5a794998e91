package internal

import (
	"time"

	"github.com/kaushalbhalara/routerdemo/pkg/cardui/constants"
)

// Direction is a focus movement through a vertical card list.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

// Delta returns -1 for up, 1 for down and 0 otherwise.
func (d Direction) Delta() int {
	switch d {
	case DirectionUp:
		return -1
	case DirectionDown:
		return 1
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return ""
	}
}

// DirectionalInput tracks a held up or down button and produces repeat
// moves while it stays held.
type DirectionalInput struct {
	held           Direction
	heldSince      time.Time
	lastRepeat     time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
}

// NewDirectionalInput creates a DirectionalInput with default timing:
// 300ms before the first repeat, then one every 80ms.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 80*time.Millisecond)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
	}
}

// SetHeld records a press or release of button at now.
// It reports whether the button was up or down.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool, now time.Time) bool {
	var dir Direction
	switch button {
	case constants.VirtualButtonUp:
		dir = DirectionUp
	case constants.VirtualButtonDown:
		dir = DirectionDown
	default:
		return false
	}

	if held {
		d.held = dir
		d.heldSince = now
		d.lastRepeat = now
	} else if d.held == dir {
		d.held = DirectionNone
	}
	return true
}

// Update returns the direction to move at now, or DirectionNone.
// Call it once per frame.
func (d *DirectionalInput) Update(now time.Time) Direction {
	if d.held == DirectionNone {
		return DirectionNone
	}
	if now.Sub(d.heldSince) < d.repeatDelay {
		return DirectionNone
	}
	if now.Sub(d.lastRepeat) < d.repeatInterval && d.lastRepeat != d.heldSince {
		return DirectionNone
	}
	d.lastRepeat = now
	return d.held
}

// Reset forgets any held direction.
func (d *DirectionalInput) Reset() {
	d.held = DirectionNone
}
