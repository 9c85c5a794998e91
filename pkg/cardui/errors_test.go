package cardui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfrastructureError(t *testing.T) {
	cause := errors.New("font missing")
	err := fmt.Errorf("startup: %w", NewInfrastructureError("init", cause))

	assert.True(t, IsInfrastructureError(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "startup: cardui: init: font missing", err.Error())
	assert.Equal(t, "cardui: render", NewInfrastructureError("render", nil).Error())
	assert.False(t, IsInfrastructureError(cause))
}

func TestIsCancelled(t *testing.T) {
	assert.True(t, IsCancelled(fmt.Errorf("screen: %w", ErrCancelled)))
	assert.False(t, IsCancelled(ErrNotInitialized))
}
