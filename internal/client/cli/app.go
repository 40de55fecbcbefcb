package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/herbalist/internal/client/catalog"
	"github.com/dmitrijs2005/herbalist/internal/client/config"
	"github.com/dmitrijs2005/herbalist/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/herbalist/internal/client/repositories/session"
	"github.com/dmitrijs2005/herbalist/internal/client/securestore"
	"github.com/dmitrijs2005/herbalist/internal/client/services"
	"github.com/dmitrijs2005/herbalist/internal/client/storage"
	"github.com/dmitrijs2005/herbalist/internal/logging"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	submitLock  *services.SubmitLock
	index       catalog.Index
	sessions    *session.Store
	db          *sql.DB
	reader      *bufio.Reader
	logger      logging.Logger
}

// NewApp opens the device storage described by c, restores a mirrored
// session if the primary store lost it, and seeds the demo account when
// asked to. A secure store that cannot be prepared only disables mirroring.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	kv, db, err := openStorage(ctx, c.DatabaseDSN, logger)
	if err != nil {
		return nil, err
	}

	secure := openSecureStore(ctx, c, logger)

	users := credentials.NewRepository(kv, logger)
	sessions := session.NewStore(kv, secure, logger)
	sessions.Hydrate(ctx)
	if c.SeedDemoUser {
		users.EnsureSeedUsers(ctx)
	}

	return &App{
		config:      c,
		authService: services.NewAuthService(users, sessions, logger),
		submitLock:  services.NewSubmitLock(c.SubmitLockDuration),
		index:       catalog.Default(),
		sessions:    sessions,
		db:          db,
		reader:      bufio.NewReader(os.Stdin),
		logger:      logger,
	}, nil
}

func openStorage(ctx context.Context, dsn string, logger logging.Logger) (*storage.Storage, *sql.DB, error) {
	if dsn == "" {
		logger.Info(ctx, "no database configured, keeping state in memory")
		return storage.NewInMemory(logger), nil, nil
	}
	store, db, err := storage.OpenSQLite(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing database: %w", err)
	}
	return storage.New(store, logger), db, nil
}

func openSecureStore(ctx context.Context, c *config.Config, logger logging.Logger) securestore.Store {
	if c.SecureStoreDir == "" {
		return securestore.Nop{}
	}
	fs, err := securestore.NewFileStore(c.SecureStoreDir, []byte(c.SecureStorePassphrase))
	if err != nil {
		logger.Warn(ctx, "secure store unavailable", "error", err)
		return securestore.Nop{}
	}
	return fs
}

// Run starts the REPL and releases storage once the user leaves.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)
	a.Root(ctx)
}

// Close waits for pending session mirror writes and closes the database.
func (a *App) Close(ctx context.Context) {
	if a.sessions != nil {
		a.sessions.Wait()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(ctx, "close database", "error", err)
		}
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.authService.CurrentUser(ctx) != nil
}

func (a *App) getStatus(ctx context.Context) string {
	u := a.authService.CurrentUser(ctx)
	switch {
	case u == nil:
		return ""
	case u.IsAnonymous:
		return "(guest)"
	default:
		return fmt.Sprintf("(%s)", u.Email)
	}
}

// Root greets the user and runs the REPL on stdin.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to herbalist (type 'help' for commands)")
	if u := a.authService.CurrentUser(ctx); u != nil {
		printlnFn("Welcome back,", userLabel(u))
	} else {
		printlnFn("Sign in with 'login', create an account with 'signup' or browse with 'guest'.")
	}

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}
