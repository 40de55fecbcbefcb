package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/dmitrijs2005/herbalist/internal/client/models"
	"github.com/dmitrijs2005/herbalist/internal/common"
	"github.com/dmitrijs2005/herbalist/internal/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// errSubmitLocked is returned when a form is submitted again within the
// submit lock window.
var errSubmitLocked = errors.New("request already in progress")

func userLabel(u *models.AuthUser) string {
	if u.IsAnonymous {
		return "guest"
	}
	return u.Email
}

// alreadySignedIn reports the current user and returns true when a session
// exists, so auth commands do not replace it silently.
func (a *App) alreadySignedIn(ctx context.Context) bool {
	u := a.authService.CurrentUser(ctx)
	if u == nil {
		return false
	}
	printlnFn("Already signed in as", userLabel(u)+". Use 'logout' first.")
	return true
}

// readCredentials prompts for an email and a password and checks the form.
// The caller must wipe the returned password.
func (a *App) readCredentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return "", nil, err
	}
	email = strings.TrimSpace(email)

	password, err := getPassword(a.reader, os.Stdout)
	if err != nil {
		return "", nil, err
	}

	if err := validation.Credentials(email, string(password)); err != nil {
		common.WipeByteArray(password)
		printlnFn("Error:", err)
		return "", nil, err
	}
	return email, password, nil
}

func (a *App) acquireSubmit() error {
	if a.submitLock != nil && !a.submitLock.TryAcquire() {
		printlnFn("Please wait, the previous request is still being handled.")
		return errSubmitLocked
	}
	return nil
}

// Login prompts for credentials and signs in with email and password.
func (a *App) Login(ctx context.Context) error {
	if a.alreadySignedIn(ctx) {
		return nil
	}

	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.acquireSubmit(); err != nil {
		return err
	}

	user, err := a.authService.LoginWithEmailPassword(ctx, email, string(password))
	if err != nil {
		printlnFn("Login failed:", err)
		return err
	}
	printlnFn("Signed in as", user.Email)
	return nil
}

// SignUp prompts for credentials, creates the account and signs in.
func (a *App) SignUp(ctx context.Context) error {
	if a.alreadySignedIn(ctx) {
		return nil
	}

	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.acquireSubmit(); err != nil {
		return err
	}

	user, err := a.authService.SignUpWithEmailPassword(ctx, email, string(password))
	if err != nil {
		printlnFn("Sign-up failed:", err)
		return err
	}
	printlnFn("Account created. Signed in as", user.Email)
	return nil
}

// Guest enters the app anonymously.
func (a *App) Guest(ctx context.Context) error {
	if a.alreadySignedIn(ctx) {
		return nil
	}
	if err := a.acquireSubmit(); err != nil {
		return err
	}

	if _, err := a.authService.LoginAnonymously(ctx); err != nil {
		printlnFn("Error:", err)
		return err
	}
	printlnFn("Browsing as guest")
	return nil
}

// Logout ends the current session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.SignOut(ctx); err != nil {
		printlnFn("Error:", err)
		return err
	}
	printlnFn("Signed out")
	return nil
}

// WhoAmI prints the signed-in identity.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.authService.CurrentUser(ctx)
	if u == nil {
		printlnFn("Not signed in")
		return nil
	}
	printlnFn("User:", userLabel(u), "id:", u.ID)
	return nil
}
