package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophaccount/internal/client/flows"
	"github.com/dmitrijs2005/gophaccount/internal/common"
)

// Show prints the settings screen.
func (a *App) Show(ctx context.Context) error {
	v := a.settings.View()

	printlnFn(fmt.Sprintf("Username: %s (read-only)", v.Username))
	printlnFn(fmt.Sprintf("Password: %s", strings.Repeat("*", len(v.Password))))
	printlnFn(fmt.Sprintf("Dark mode: %t (theme %s)", v.DarkMode, v.Theme.Name))
	if !v.Loaded {
		printlnFn("User record: not loaded")
	}
	if v.Notification.Visible() {
		printlnFn(fmt.Sprintf("[%s] %s", v.Notification, v.Banner))
	}
	return nil
}

// Password replaces the password field. Nothing is sent until Save.
func (a *App) Password(ctx context.Context) error {
	pw, err := getPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	a.settings.EditPassword(string(pw))
	return nil
}

// Save sends the settings form and prints the resulting banner.
func (a *App) Save(ctx context.Context) error {
	err := a.settings.Save(ctx)
	if errors.Is(err, flows.ErrSuperseded) || errors.Is(err, flows.ErrNotMounted) {
		return err
	}
	if err != nil {
		a.logger.Debug(ctx, "save failed", "error", err)
	}

	v := a.settings.View()
	if v.Notification.Visible() {
		printlnFn(fmt.Sprintf("[%s] %s", v.Notification, v.Banner))
	}
	return nil
}

// DarkMode toggles the theme.
func (a *App) DarkMode(ctx context.Context) error {
	on := a.settings.ToggleDarkMode()
	state := "off"
	if on {
		state = "on"
	}
	printlnFn("Dark mode", state)
	return nil
}
