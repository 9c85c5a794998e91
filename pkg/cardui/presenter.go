package cardui

import (
	"context"

	"github.com/kaushalbhalara/routerdemo/pkg/cardui/view"
)

// Presenter shows card screens in the SDL window. It satisfies any
// interface with a Show(ctx, view.Screen) (view.Result, error) method.
type Presenter struct{}

// NewPresenter returns a Presenter. Init must have been called.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Show draws screen and blocks until the user leaves it.
func (p *Presenter) Show(ctx context.Context, screen view.Screen) (view.Result, error) {
	res, err := ShowCardScreen(ctx, screen)
	if err != nil {
		return view.Result{}, err
	}
	return *res, nil
}
