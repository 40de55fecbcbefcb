package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/herbalist/internal/client/models"
	"github.com/dmitrijs2005/herbalist/internal/common"
)

type fakeAuth struct {
	user *models.AuthUser

	calls []string
	email string
	pass  string

	loginErr   error
	signUpErr  error
	guestErr   error
	signOutErr error
}

func (f *fakeAuth) LoginWithEmailPassword(_ context.Context, email, password string) (*models.AuthUser, error) {
	f.calls = append(f.calls, "login")
	f.email, f.pass = email, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.user = &models.AuthUser{ID: "u1", Email: email, Token: "a.b.c"}
	return f.user, nil
}

func (f *fakeAuth) SignUpWithEmailPassword(_ context.Context, email, password string) (*models.AuthUser, error) {
	f.calls = append(f.calls, "signup")
	f.email, f.pass = email, password
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	f.user = &models.AuthUser{ID: "u2", Email: email, Token: "a.b.c"}
	return f.user, nil
}

func (f *fakeAuth) LoginAnonymously(context.Context) (*models.AuthUser, error) {
	f.calls = append(f.calls, "guest")
	if f.guestErr != nil {
		return nil, f.guestErr
	}
	f.user = &models.AuthUser{ID: "anon", IsAnonymous: true, Token: "a.b.c"}
	return f.user, nil
}

func (f *fakeAuth) SignOut(context.Context) error {
	f.calls = append(f.calls, "signout")
	if f.signOutErr != nil {
		return f.signOutErr
	}
	f.user = nil
	return nil
}

func (f *fakeAuth) CurrentUser(context.Context) *models.AuthUser {
	return f.user
}

func signedIn() *models.AuthUser {
	return &models.AuthUser{ID: "u1", Email: common.DemoEmail, Token: "a.b.c"}
}

// stubInputs replaces the interactive prompts. The password slice is handed
// out as is, so tests can check it was wiped.
func stubInputs(t *testing.T, email string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return email, nil }
	getPassword = func(_ *bufio.Reader, _ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type output struct {
	mu    sync.Mutex
	lines []string
}

func (o *output) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return strings.Join(o.lines, "")
}

// captureOutput records everything printed through printlnFn.
func captureOutput(t *testing.T) *output {
	t.Helper()
	out := &output{}
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		s := fmt.Sprintln(a...)
		out.mu.Lock()
		out.lines = append(out.lines, s)
		out.mu.Unlock()
		return len(s), nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return out
}
