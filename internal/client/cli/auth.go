package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophaccount/internal/client/client"
	"github.com/dmitrijs2005/gophaccount/internal/client/flows"
	"github.com/dmitrijs2005/gophaccount/internal/client/models"
	"github.com/dmitrijs2005/gophaccount/internal/client/navigation"
	"github.com/dmitrijs2005/gophaccount/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register opens the registration screen (if not already there), asks for
// a username, a password and its confirmation, and submits them. On
// success the flow navigates back to the login screen.
func (a *App) Register(ctx context.Context) error {
	if a.screen() != navigation.ScreenRegister {
		a.nav.Push(navigation.ScreenRegister)
	}

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	err = a.registration.Submit(ctx, models.UserDraft{
		Username:        username,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	})
	switch {
	case err == nil:
		printlnFn("Registered. You can log in now.")
		return nil
	case errors.Is(err, flows.ErrPasswordMismatch):
		printlnFn(models.ValidationMismatch.Message())
		return nil
	case errors.Is(err, client.ErrUsernameTaken):
		printlnFn("Username is already taken")
		return nil
	}
	return err
}

// Back leaves the registration screen.
func (a *App) Back(ctx context.Context) error {
	a.nav.GoBack()
	return nil
}

// Login records the user in the app context and opens the settings screen,
// which loads the user record. There is no authentication round trip.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.appCtx.SetUser(models.User{Username: username, Password: string(password)})
	a.nav.Push(navigation.ScreenSettings)

	if err := a.settings.Mount(ctx); err != nil {
		if errors.Is(err, client.ErrNotFound) {
			printlnFn("User not found; saving will fail until it exists")
			return nil
		}
		return err
	}
	printlnFn("Logged in as", username)
	return nil
}

// Logout returns to the login screen and forgets the current user.
func (a *App) Logout(ctx context.Context) error {
	a.settings.Logout()
	a.settings.Unmount()
	a.appCtx.ClearUser()
	return nil
}
