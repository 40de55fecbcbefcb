// Package services contains application services for the herbalist client.
// This file defines the mock authentication service: email/password login and
// sign-up against the local credential repository, anonymous entry, sign-out,
// and the current-user lookup that route guards rely on.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/herbalist/internal/client/auth"
	"github.com/dmitrijs2005/herbalist/internal/client/models"
	"github.com/dmitrijs2005/herbalist/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/herbalist/internal/client/repositories/session"
	"github.com/dmitrijs2005/herbalist/internal/common"
	"github.com/dmitrijs2005/herbalist/internal/logging"
)

// Simulated network latency of each operation.
const (
	LoginDelay     = 500 * time.Millisecond
	SignUpDelay    = 500 * time.Millisecond
	AnonymousDelay = 250 * time.Millisecond
	SignOutDelay   = 150 * time.Millisecond
)

// AuthService defines the authentication operations used by the UI layer.
//
// Contract:
//   - LoginWithEmailPassword: common.ErrInvalidCredentials for an unknown
//     email or a wrong password, the same error in both cases.
//   - SignUpWithEmailPassword: common.ErrEmailAlreadyInUse when the email
//     (case-insensitive) is taken.
//   - LoginAnonymously: always succeeds.
//   - SignOut: idempotent.
//   - CurrentUser: nil when signed out.
//
// Every successful sign-in replaces the device session. The simulated delay
// is not interrupted by ctx.
type AuthService interface {
	LoginWithEmailPassword(ctx context.Context, email, password string) (*models.AuthUser, error)
	SignUpWithEmailPassword(ctx context.Context, email, password string) (*models.AuthUser, error)
	LoginAnonymously(ctx context.Context) (*models.AuthUser, error)
	SignOut(ctx context.Context) error
	CurrentUser(ctx context.Context) *models.AuthUser
}

// sleep is a test seam for the simulated latency.
var sleep = time.Sleep

type authService struct {
	users    *credentials.Repository
	sessions *session.Store
	logger   logging.Logger
}

// NewAuthService constructs an AuthService over the given repositories.
func NewAuthService(users *credentials.Repository, sessions *session.Store, logger logging.Logger) AuthService {
	return &authService{users: users, sessions: sessions, logger: logger.With("component", "auth")}
}

func (a *authService) LoginWithEmailPassword(ctx context.Context, email, password string) (*models.AuthUser, error) {
	sleep(LoginDelay)

	rec, ok := a.users.Load(ctx)[credentials.Key(email)]
	if !ok || rec.Password != password {
		a.logger.Info(ctx, "login rejected")
		return nil, common.ErrInvalidCredentials
	}
	return a.startSession(ctx, rec.ID, rec.Email, false)
}

// SignUpWithEmailPassword stores the email as given and keys it lowercased.
// Two concurrent sign-ups for one email may both pass the existence check;
// the later save wins.
func (a *authService) SignUpWithEmailPassword(ctx context.Context, email, password string) (*models.AuthUser, error) {
	sleep(SignUpDelay)

	users := a.users.Load(ctx)
	key := credentials.Key(email)
	if _, taken := users[key]; taken {
		return nil, common.ErrEmailAlreadyInUse
	}

	rec := models.UserRecord{ID: credentials.NewUserID(), Email: email, Password: password}
	users[key] = rec
	a.users.Save(ctx, users)
	a.logger.Info(ctx, "account created", "user_id", rec.ID)

	return a.startSession(ctx, rec.ID, rec.Email, false)
}

func (a *authService) LoginAnonymously(ctx context.Context) (*models.AuthUser, error) {
	sleep(AnonymousDelay)
	return a.startSession(ctx, credentials.NewUserID(), "", true)
}

func (a *authService) SignOut(ctx context.Context) error {
	sleep(SignOutDelay)
	a.sessions.Clear(ctx)
	a.logger.Info(ctx, "signed out")
	return nil
}

func (a *authService) CurrentUser(ctx context.Context) *models.AuthUser {
	return a.sessions.Load(ctx).User
}

func (a *authService) startSession(ctx context.Context, id, email string, anonymous bool) (*models.AuthUser, error) {
	token, err := auth.NewToken(id, anonymous)
	if err != nil {
		return nil, fmt.Errorf("mint token: %w", err)
	}
	user := &models.AuthUser{ID: id, Email: email, IsAnonymous: anonymous, Token: token}
	a.sessions.Save(ctx, models.Session{User: user})
	a.logger.Info(ctx, "signed in", "user_id", id, "anonymous", anonymous)
	return user, nil
}
