package app

import (
	"context"

	"github.com/kaushalbhalara/routerdemo/pkg/cardui/constants"
	"github.com/kaushalbhalara/routerdemo/pkg/cardui/router"
	"github.com/kaushalbhalara/routerdemo/pkg/cardui/view"
)

// Element IDs returned by the presenter.
const (
	IDProfile       = "profile"
	IDSettings      = "settings"
	IDOpenSettings  = "open_settings"
	IDBack          = "back"
	IDHome          = "home"
	IDNotifications = "notifications"
	IDPrivacy       = "privacy"
	IDAbout         = "about"
	IDRate          = "rate"
)

const (
	colorBlue   = 0x007AFF
	colorOrange = 0xFF9500
	colorGreen  = 0x34C759
	colorPurple = 0xAF52DE
	colorYellow = 0xFFCC00
)

func (a *App) homeView() view.Screen {
	return view.Screen{
		NavTitle: a.text.T("HomeNavTitle"),
		Header: view.Header{
			Title:    a.text.T("HomeTitle"),
			Subtitle: a.text.T("HomeSubtitle"),
		},
		Groups: []view.Group{{
			Style: view.GroupNavigation,
			Items: []view.Item{
				{ID: IDProfile, Icon: constants.IconPerson, Color: colorBlue, Title: a.text.T("HomeProfileTitle"), Subtitle: a.text.T("HomeProfileSubtitle"), Chevron: true},
				{ID: IDSettings, Icon: constants.IconGear, Color: colorOrange, Title: a.text.T("HomeSettingsTitle"), Subtitle: a.text.T("HomeSettingsSubtitle"), Chevron: true},
			},
		}},
		Footer: a.footer("FooterQuit"),
	}
}

func (a *App) homeScreen(ctx context.Context, _ router.Route, r *router.Router) error {
	res, err := a.show(ctx, r, a.homeView())
	if err != nil {
		return err
	}

	switch res.Action {
	case view.ActionBack:
		a.exitRequested.Store(true)
		return router.ErrExit
	case view.ActionActivated:
		switch res.ID {
		case IDProfile:
			r.Push(router.Profile(a.userID))
		case IDSettings:
			r.Push(router.Settings())
		}
	}
	return nil
}

func (a *App) profileView(userID int) view.Screen {
	return view.Screen{
		NavTitle: a.text.T("ProfileNavTitle"),
		Header: view.Header{
			Avatar:   constants.IconPerson,
			Title:    a.text.T("ProfileTitle"),
			Subtitle: a.text.TData("ProfileUserID", map[string]any{"UserID": userID}),
			Centered: true,
		},
		Groups: []view.Group{{
			Style: view.GroupInfo,
			Items: []view.Item{
				{Title: a.text.T("ProfileAccountType"), Value: a.text.T("ProfileAccountTypeValue")},
				{Title: a.text.T("ProfileStatus"), Value: a.text.T("ProfileStatusValue")},
			},
		}},
		Buttons: []view.Button{
			{ID: IDOpenSettings, Title: a.text.T("ProfileOpenSettings"), Icon: constants.IconGear, Style: view.ButtonPrimary, Color: colorOrange},
			{ID: IDBack, Title: a.text.T("ProfileGoBack"), Icon: constants.IconChevronLeft, Style: view.ButtonSecondary},
			{ID: IDHome, Title: a.text.T("GoHome"), Icon: constants.IconHouse, Style: view.ButtonDestructive},
		},
		Footer: a.footer("FooterBack"),
	}
}

func (a *App) profileScreen(ctx context.Context, route router.Route, r *router.Router) error {
	userID, _ := route.UserID()
	res, err := a.show(ctx, r, a.profileView(userID))
	if err != nil {
		return err
	}

	switch res.Action {
	case view.ActionBack:
		r.Pop()
	case view.ActionHome:
		r.PopToRoot()
	case view.ActionActivated:
		switch res.ID {
		case IDOpenSettings:
			r.Push(router.Settings())
		case IDBack:
			r.Pop()
		case IDHome:
			r.PopToRoot()
		}
	}
	return nil
}

func (a *App) settingsView() view.Screen {
	return view.Screen{
		NavTitle: a.text.T("SettingsNavTitle"),
		Header: view.Header{
			Title:    a.text.T("SettingsTitle"),
			Subtitle: a.text.T("SettingsSubtitle"),
		},
		Groups: []view.Group{
			{Style: view.GroupRows, Items: []view.Item{
				{ID: IDNotifications, Icon: constants.IconBell, Color: colorBlue, Title: a.text.T("SettingsNotifications"), Subtitle: a.text.T("SettingsNotificationsSubtitle"), Chevron: true},
				{ID: IDPrivacy, Icon: constants.IconLock, Color: colorPurple, Title: a.text.T("SettingsPrivacy"), Subtitle: a.text.T("SettingsPrivacySubtitle"), Chevron: true},
			}},
			{Style: view.GroupRows, Items: []view.Item{
				{ID: IDAbout, Icon: constants.IconInfo, Color: colorGreen, Title: a.text.T("SettingsAbout"), Subtitle: a.text.T("SettingsAboutSubtitle"), Chevron: true},
				{ID: IDRate, Icon: constants.IconStar, Color: colorYellow, Title: a.text.T("SettingsRate"), Subtitle: a.text.T("SettingsRateSubtitle"), Chevron: true},
			}},
		},
		Buttons: []view.Button{
			{ID: IDBack, Title: a.text.T("SettingsBack"), Icon: constants.IconChevronLeft, Style: view.ButtonSecondary},
			{ID: IDHome, Title: a.text.T("GoHome"), Icon: constants.IconHouse, Style: view.ButtonDestructive},
		},
		Footer: a.footer("FooterBack"),
	}
}

func (a *App) settingsScreen(ctx context.Context, _ router.Route, r *router.Router) error {
	res, err := a.show(ctx, r, a.settingsView())
	if err != nil {
		return err
	}

	switch res.Action {
	case view.ActionBack:
		r.Pop()
	case view.ActionHome:
		r.PopToRoot()
	case view.ActionActivated:
		switch res.ID {
		case IDBack:
			r.Pop()
		case IDHome:
			r.PopToRoot()
		default:
			// Rows are informational.
			a.logger.Debug("Settings row selected", "id", res.ID)
		}
	}
	return nil
}
