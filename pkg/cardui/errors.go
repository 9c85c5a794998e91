package cardui

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled is returned when a screen is abandoned because its
	// context ended (shutdown signal, caller gave up). This is a normal
	// flow control error, not an infrastructure failure.
	ErrCancelled = errors.New("operation cancelled")

	// ErrNotInitialized is returned when a screen is shown before Init.
	ErrNotInitialized = errors.New("cardui not initialized")
)

// InfrastructureError represents a framework-level failure (SDL could not
// start, a font is missing, a texture could not be created). These are
// usually fatal for the application.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "card_screen")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cardui: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("cardui: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
