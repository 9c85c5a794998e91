package cardui

import (
	"context"
	"testing"

	"github.com/kaushalbhalara/routerdemo/pkg/cardui/constants"
	"github.com/kaushalbhalara/routerdemo/pkg/cardui/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

var testMetrics = metrics{scale: 1, large: 34, medium: 24, small: 18, tiny: 14}

func TestLayoutStacksSectionsTopToBottom(t *testing.T) {
	screen := view.Screen{
		Header: view.Header{Avatar: constants.IconPerson, Title: "User Profile", Subtitle: "User ID: 101"},
		Groups: []view.Group{
			{Style: view.GroupInfo, Items: []view.Item{{Title: "Account Type"}, {Title: "Status"}}},
		},
		Buttons: []view.Button{{ID: "settings"}, {ID: "back"}, {ID: "home"}},
	}

	l := layoutScreen(screen, 640, testMetrics)

	assert.Equal(t, sdl.Rect{X: 272, Y: 20, W: 96, H: 96}, l.avatar)
	assert.Equal(t, int32(128), l.titleY)
	assert.Greater(t, l.subtitleY, l.titleY)

	require.Len(t, l.groups, 1)
	info := l.groups[0]
	assert.Equal(t, info.items[0].Y, info.card.Y)
	assert.Equal(t, info.items[1].Y+info.items[1].H, info.card.Y+info.card.H)
	assert.Equal(t, int32(600), info.card.W)

	require.Len(t, l.buttons, 3)
	assert.Greater(t, l.buttons[0].Y, info.card.Y+info.card.H)
	for i := 1; i < len(l.buttons); i++ {
		assert.Equal(t, l.buttons[i-1].Y+l.buttons[i-1].H+16, l.buttons[i].Y)
	}
	assert.Greater(t, l.height, l.buttons[2].Y+l.buttons[2].H)
}

func TestLayoutSelectableRects(t *testing.T) {
	screen := view.Screen{
		Groups: []view.Group{
			{Style: view.GroupNavigation, Items: []view.Item{{ID: "profile"}, {ID: "settings"}}},
		},
		Buttons: []view.Button{{ID: "quit"}},
	}
	l := layoutScreen(screen, 400, testMetrics)
	sel := screen.Selectables()

	first := l.selectableRect(sel[0])
	second := l.selectableRect(sel[1])
	button := l.selectableRect(sel[2])

	assert.Equal(t, first.Y+first.H+16, second.Y)
	assert.Greater(t, button.Y, second.Y)
	assert.Equal(t, int32(360), button.W)
}

func TestScrollToShow(t *testing.T) {
	// Already visible: no movement.
	assert.Equal(t, int32(0), scrollToShow(0, sdl.Rect{Y: 50, H: 40}, 300, 1000, 10))
	// Below the viewport: scroll just enough.
	assert.Equal(t, int32(160), scrollToShow(0, sdl.Rect{Y: 400, H: 50}, 300, 1000, 10))
	// Above the viewport: scroll back up.
	assert.Equal(t, int32(90), scrollToShow(500, sdl.Rect{Y: 100, H: 50}, 300, 1000, 10))
	// Never past the end of the content.
	assert.Equal(t, int32(700), scrollToShow(0, sdl.Rect{Y: 990, H: 50}, 300, 1000, 10))
	// Short content never scrolls.
	assert.Equal(t, int32(0), scrollToShow(0, sdl.Rect{Y: 150, H: 50}, 300, 200, 10))
}

func TestMoveFocus(t *testing.T) {
	assert.Equal(t, 1, moveFocus(0, 1, 3))
	assert.Equal(t, 2, moveFocus(2, 1, 3))
	assert.Equal(t, 0, moveFocus(0, -1, 3))
	assert.Equal(t, -1, moveFocus(0, 1, 0))
}

func TestShowCardScreenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := ShowCardScreen(ctx, view.Screen{NavTitle: "Home"})
	assert.Nil(t, res)
	assert.True(t, IsCancelled(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsInfrastructureError(err))

	_, err = NewPresenter().Show(ctx, view.Screen{})
	assert.True(t, IsCancelled(err))
}

func TestShowCardScreenBeforeInit(t *testing.T) {
	_, err := ShowCardScreen(context.Background(), view.Screen{})
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.False(t, IsCancelled(err))
}
