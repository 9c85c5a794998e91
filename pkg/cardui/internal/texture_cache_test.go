package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Nil textures let the LRU bookkeeping be tested without a renderer.
func TestTextureCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewTextureCacheWithSize(2)

	c.Set("a", nil)
	c.Set("b", nil)
	c.Get("a")
	c.Set("c", nil)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"a", "c"}, c.order)

	c.Set("a", nil)
	assert.Equal(t, []string{"c", "a"}, c.order)

	c.Destroy()
	assert.Zero(t, c.Len())
}

func TestTextureCacheMinimumSize(t *testing.T) {
	c := NewTextureCacheWithSize(0)
	c.Set("x", nil)
	c.Set("y", nil)
	assert.Equal(t, []string{"y"}, c.order)
}
