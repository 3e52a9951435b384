package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/classroom/internal/client/client"
	"github.com/dmitrijs2005/classroom/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// authFailure turns an auth error into a line for the user.
func authFailure(action string, err error) string {
	if msg := client.ServerMessage(err); msg != "" {
		return action + " failed: " + msg
	}
	switch {
	case errors.Is(err, common.ErrValidation):
		return action + " failed: username and password are required"
	case errors.Is(err, client.ErrUnavailable):
		return action + " failed: server unavailable"
	default:
		return action + " failed"
	}
}

// Register prompts for a username and password and creates the account.
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, password); err != nil {
		a.log.Warn(ctx, "register failed", "username", userName, "error", err)
		a.println(authFailure("Registration", err))
		return err
	}

	a.println("Registration successful. You can now log in.")
	return nil
}

// Login prompts for credentials and, on success, stores the issued token in
// the session.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, userName, password); err != nil {
		a.log.Warn(ctx, "login failed", "username", userName, "error", err)
		a.println(authFailure("Login", err))
		return err
	}

	a.log.Info(ctx, "logged in", "username", userName)
	a.println("Login successful")
	return nil
}

// Logout forgets the stored token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.println("Logged out")
	return nil
}

func (a *App) loginView(ctx context.Context) string {
	return runLoginREPL(ctx, a, a.reader, a.out)
}

func (a *App) registerView(ctx context.Context) string {
	_ = a.Register(ctx)
	return PathLogin
}
