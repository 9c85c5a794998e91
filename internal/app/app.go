// Package app wires the demo screens to the router. Screen logic only
// talks to a Presenter, so it runs the same against the SDL window and
// against a scripted presenter in tests.
package app

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/kaushalbhalara/routerdemo/pkg/cardui/router"
	"github.com/kaushalbhalara/routerdemo/pkg/cardui/view"
	"go.uber.org/atomic"
)

// Presenter shows a screen and blocks until the user leaves it.
type Presenter interface {
	Show(ctx context.Context, screen view.Screen) (view.Result, error)
}

// Translator resolves screen strings.
type Translator interface {
	T(id string) string
	TData(id string, data map[string]any) string
}

// Options configures an App.
type Options struct {
	ProfileUserID int // User shown when the Profile card is chosen
	Logger        *slog.Logger
}

// App owns the router and the screens that drive it.
type App struct {
	router    *router.Router
	navigator *router.Navigator
	presenter Presenter
	text      Translator
	userID    int
	logger    *slog.Logger

	breadcrumb    atomic.String
	crumbMu       sync.Mutex
	crumbVersion  uint64
	exitRequested atomic.Bool
	unsubscribe   func()
}

// New builds the router, registers the Home, Profile and Settings
// screens and starts tracking the breadcrumb.
func New(presenter Presenter, text Translator, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	a := &App{
		router:    router.New(router.WithLogger(logger)),
		presenter: presenter,
		text:      text,
		userID:    opts.ProfileUserID,
		logger:    logger,
	}

	a.navigator = router.NewNavigator(a.router).
		RegisterRoot(a.homeScreen).
		Register(router.KindProfile, a.profileScreen).
		Register(router.KindSettings, a.settingsScreen)

	a.breadcrumb.Store(a.breadcrumbFor(nil))
	a.unsubscribe = a.router.Subscribe(a.onNavigate)
	return a
}

// Router returns the navigation stack.
func (a *App) Router() *router.Router {
	return a.router
}

// Breadcrumb is the path of screen titles, for example
// "Home › Profile › Settings".
func (a *App) Breadcrumb() string {
	return a.breadcrumb.Load()
}

// ExitRequested reports whether the user asked to leave the app, as
// opposed to Run stopping because its context ended.
func (a *App) ExitRequested() bool {
	return a.exitRequested.Load()
}

// Run shows screens until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("Starting navigation", "breadcrumb", a.Breadcrumb())
	return a.navigator.Run(ctx)
}

// Close stops tracking navigation.
func (a *App) Close() {
	a.unsubscribe()
}

// onNavigate keeps the breadcrumb of the newest snapshot. Snapshots from
// concurrent mutations can arrive out of version order.
func (a *App) onNavigate(snap router.Snapshot) {
	crumb := a.breadcrumbFor(snap.Path)

	a.crumbMu.Lock()
	if snap.Version <= a.crumbVersion {
		a.crumbMu.Unlock()
		return
	}
	a.crumbVersion = snap.Version
	a.breadcrumb.Store(crumb)
	a.crumbMu.Unlock()

	a.logger.Info("Navigated",
		"current", snap.Current.String(),
		"depth", snap.Depth,
		"version", snap.Version,
		"breadcrumb", crumb,
	)
}

func (a *App) breadcrumbFor(path []router.Route) string {
	parts := make([]string, 0, len(path)+1)
	parts = append(parts, a.text.T("HomeNavTitle"))
	for _, route := range path {
		parts = append(parts, a.navTitle(route))
	}
	return strings.Join(parts, " › ")
}

func (a *App) navTitle(route router.Route) string {
	switch route.Kind() {
	case router.KindProfile:
		return a.text.T("ProfileNavTitle")
	case router.KindSettings:
		return a.text.T("SettingsNavTitle")
	default:
		return a.text.T("HomeNavTitle")
	}
}

// show restores the saved focus, presents screen and saves the focus
// again before the caller changes the stack.
func (a *App) show(ctx context.Context, r *router.Router, screen view.Screen) (view.Result, error) {
	if focus, ok := r.Resume().(int); ok {
		screen.Focus = focus
	}
	screen.Breadcrumb = a.Breadcrumb()

	res, err := a.presenter.Show(ctx, screen)
	if err != nil {
		return view.Result{}, err
	}
	r.SaveResume(res.Focus)

	if res.Action == view.ActionQuit {
		a.exitRequested.Store(true)
		return res, router.ErrExit
	}
	return res, nil
}

func (a *App) footer(backID string) []view.FooterHelpItem {
	return []view.FooterHelpItem{
		{ButtonName: "Menu", HelpText: a.text.T("FooterHome")},
		{ButtonName: "B", HelpText: a.text.T(backID)},
		{ButtonName: "A", HelpText: a.text.T("FooterSelect")},
	}
}
