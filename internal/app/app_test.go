package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/kaushalbhalara/routerdemo/internal/locale"
	"github.com/kaushalbhalara/routerdemo/pkg/cardui/router"
	"github.com/kaushalbhalara/routerdemo/pkg/cardui/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPresenter returns canned results in order and records every
// screen it was asked to show.
type scriptedPresenter struct {
	results []view.Result
	shown   []view.Screen
	app     *App
	crumbs  []string
}

func (p *scriptedPresenter) Show(_ context.Context, screen view.Screen) (view.Result, error) {
	p.shown = append(p.shown, screen)
	if p.app != nil {
		p.crumbs = append(p.crumbs, p.app.Breadcrumb())
	}
	if len(p.results) == 0 {
		return view.Result{Action: view.ActionQuit}, nil
	}
	res := p.results[0]
	p.results = p.results[1:]
	return res, nil
}

func activate(id string, focus int) view.Result {
	return view.Result{Action: view.ActionActivated, ID: id, Focus: focus}
}

func newTestApp(t *testing.T, results ...view.Result) (*App, *scriptedPresenter) {
	t.Helper()
	text, err := locale.New("en", nil)
	require.NoError(t, err)

	p := &scriptedPresenter{results: results}
	a := New(p, text, Options{ProfileUserID: 101})
	p.app = a
	t.Cleanup(a.Close)
	return a, p
}

func navTitles(screens []view.Screen) []string {
	out := make([]string, len(screens))
	for i, s := range screens {
		out[i] = s.NavTitle
	}
	return out
}

func TestHomeToProfileToSettingsAndHome(t *testing.T) {
	a, p := newTestApp(t,
		activate(IDProfile, 0),
		activate(IDOpenSettings, 2),
		activate(IDHome, 3),
		view.Result{Action: view.ActionBack},
	)

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, []string{"Home", "Profile", "Settings", "Home"}, navTitles(p.shown))
	assert.Equal(t, []string{
		"Home",
		"Home › Profile",
		"Home › Profile › Settings",
		"Home",
	}, p.crumbs)
	assert.Equal(t, "User ID: 101", p.shown[1].Header.Subtitle)
	assert.True(t, a.ExitRequested())
	assert.Zero(t, a.Router().Depth())
	assert.Equal(t, uint64(3), a.Router().Version())
}

func TestBackPopsOneScreen(t *testing.T) {
	a, p := newTestApp(t,
		activate(IDSettings, 1),
		view.Result{Action: view.ActionBack},
		activate(IDProfile, 0),
		activate(IDBack, 1),
	)

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, []string{"Home", "Settings", "Home", "Profile", "Home"}, navTitles(p.shown))
	// Home focus is restored from the last time it was left.
	assert.Equal(t, 1, p.shown[2].Focus)
	assert.Equal(t, 0, p.shown[4].Focus)
}

func TestFocusIsRestoredPerFrame(t *testing.T) {
	a, p := newTestApp(t,
		activate(IDProfile, 0),
		activate(IDOpenSettings, 0),
		view.Result{Action: view.ActionBack, Focus: 4},
	)

	require.NoError(t, a.Run(context.Background()))

	// Profile was left with focus 0 on Open Settings and comes back to it.
	require.Len(t, p.shown, 4)
	assert.Equal(t, "Profile", p.shown[3].NavTitle)
	assert.Equal(t, 0, p.shown[3].Focus)
}

func TestHomeShortcutFromDeepStack(t *testing.T) {
	a, p := newTestApp(t,
		activate(IDProfile, 0),
		activate(IDOpenSettings, 0),
		view.Result{Action: view.ActionHome},
	)

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, []string{"Home", "Profile", "Settings", "Home"}, navTitles(p.shown))
	assert.Equal(t, "Home", a.Breadcrumb())
}

func TestHomeShortcutOnHomeStays(t *testing.T) {
	a, p := newTestApp(t, view.Result{Action: view.ActionHome})

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, []string{"Home", "Home"}, navTitles(p.shown))
	assert.Equal(t, uint64(0), a.Router().Version())
}

func TestSettingsRowsDoNotNavigate(t *testing.T) {
	a, p := newTestApp(t,
		activate(IDSettings, 1),
		activate(IDPrivacy, 1),
		activate(IDRate, 3),
	)

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, []string{"Home", "Settings", "Settings", "Settings"}, navTitles(p.shown))
	assert.Equal(t, 3, p.shown[3].Focus)
	assert.Equal(t, 1, a.Router().Depth())
}

func TestQuitFromAnyScreen(t *testing.T) {
	a, _ := newTestApp(t, activate(IDProfile, 0), view.Result{Action: view.ActionQuit})

	require.NoError(t, a.Run(context.Background()))
	assert.True(t, a.ExitRequested())
	assert.Equal(t, []router.Route{router.Profile(101)}, a.Router().Path())
}

func TestProfileUserIDFromOptions(t *testing.T) {
	text, err := locale.New("es", nil)
	require.NoError(t, err)
	p := &scriptedPresenter{results: []view.Result{activate(IDProfile, 0)}}
	a := New(p, text, Options{ProfileUserID: -7})
	defer a.Close()

	require.NoError(t, a.Run(context.Background()))

	require.Len(t, p.shown, 2)
	assert.Equal(t, "ID de usuario: -7", p.shown[1].Header.Subtitle)
	assert.Equal(t, []router.Route{router.Profile(-7)}, a.Router().Path())
}

type failingPresenter struct{ err error }

func (f failingPresenter) Show(context.Context, view.Screen) (view.Result, error) {
	return view.Result{}, f.err
}

func TestPresenterErrorStopsRun(t *testing.T) {
	text, err := locale.New("en", nil)
	require.NoError(t, err)
	boom := errors.New("renderer lost")
	a := New(failingPresenter{err: boom}, text, Options{})
	defer a.Close()

	err = a.Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.False(t, a.ExitRequested())
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	a, p := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, p.shown)
}

func TestScreensDescribeTheirContent(t *testing.T) {
	a, _ := newTestApp(t)

	home := a.homeView()
	require.Len(t, home.Selectables(), 2)
	assert.Equal(t, IDProfile, home.Selectables()[0].ID)

	profile := a.profileView(101)
	assert.Equal(t, "Premium", profile.Groups[0].Items[0].Value)
	assert.Equal(t, "Active", profile.Groups[0].Items[1].Value)
	ids := []string{}
	for _, s := range profile.Selectables() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{IDOpenSettings, IDBack, IDHome}, ids)

	assert.Equal(t, uint32(colorOrange), profile.Buttons[0].Color)

	settings := a.settingsView()
	assert.Len(t, settings.Selectables(), 6)
	var rowColors []uint32
	for _, g := range settings.Groups {
		for _, item := range g.Items {
			rowColors = append(rowColors, item.Color)
		}
	}
	assert.Equal(t, []uint32{colorBlue, colorPurple, colorGreen, colorYellow}, rowColors)
	assert.Equal(t, "Quit", home.Footer[1].HelpText)
	assert.Equal(t, "Back", settings.Footer[1].HelpText)
}

func TestBreadcrumbIgnoresStaleSnapshots(t *testing.T) {
	a, _ := newTestApp(t)

	a.onNavigate(router.Snapshot{
		Path:    []router.Route{router.Profile(101), router.Settings()},
		Current: router.Settings(),
		Depth:   2,
		Version: 2,
	})
	a.onNavigate(router.Snapshot{
		Path:    []router.Route{router.Profile(101)},
		Current: router.Profile(101),
		Depth:   1,
		Version: 1,
	})

	assert.Equal(t, "Home › Profile › Settings", a.Breadcrumb())
}

func TestBreadcrumbFollowsConcurrentNavigation(t *testing.T) {
	a, _ := newTestApp(t)
	r := a.Router()

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				r.Push(router.Settings())
				r.Pop()
			}
		}()
	}
	wg.Wait()

	require.Zero(t, r.Depth())
	assert.Equal(t, "Home", a.Breadcrumb())
}
