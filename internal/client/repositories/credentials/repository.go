// Package credentials is the mock credential repository: every known account
// kept as one JSON object under common.UsersKey, keyed by lowercased email.
package credentials

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/dmitrijs2005/herbalist/internal/client/models"
	"github.com/dmitrijs2005/herbalist/internal/client/storage"
	"github.com/dmitrijs2005/herbalist/internal/common"
	"github.com/dmitrijs2005/herbalist/internal/logging"
	"github.com/dmitrijs2005/herbalist/internal/validation"
	"github.com/google/uuid"
)

// Repository loads and saves the whole credential map at once. There is no
// per-record API: callers Load, change the map, and Save it back.
type Repository struct {
	store  *storage.Storage
	logger logging.Logger
}

func NewRepository(store *storage.Storage, logger logging.Logger) *Repository {
	return &Repository{store: store, logger: logger.With("component", "credentials")}
}

// Key returns the map key for email.
func Key(email string) string {
	return strings.ToLower(email)
}

// Load returns the stored credentials. A missing or unreadable blob yields an
// empty map; records that fail validation are dropped.
func (r *Repository) Load(ctx context.Context) models.Users {
	users := make(models.Users)

	raw, ok := r.store.Get(ctx, common.UsersKey)
	if !ok || raw == "" {
		return users
	}

	var decoded models.Users
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		r.logger.Warn(ctx, "discarding unreadable credential blob", "error", err)
		return users
	}
	for key, rec := range decoded {
		if err := validation.Struct(rec); err != nil {
			r.logger.Warn(ctx, "dropping invalid credential record", "key", key, "error", err)
			continue
		}
		users[key] = rec
	}
	return users
}

// Save replaces the stored blob with users.
func (r *Repository) Save(ctx context.Context, users models.Users) {
	if users == nil {
		users = models.Users{}
	}
	b, err := json.Marshal(users)
	if err != nil {
		// a map of plain strings always marshals
		r.logger.Error(ctx, "marshal credentials", "error", err)
		return
	}
	r.store.Set(ctx, common.UsersKey, string(b))
}

// NewUserID returns a fresh opaque record id.
func NewUserID() string {
	return uuid.NewString()
}

// EnsureSeedUsers adds the demo account unless an account with the same
// lowercased email already exists.
func (r *Repository) EnsureSeedUsers(ctx context.Context) {
	users := r.Load(ctx)
	key := Key(common.DemoEmail)
	if _, ok := users[key]; ok {
		return
	}
	users[key] = models.UserRecord{ID: NewUserID(), Email: common.DemoEmail, Password: common.DemoPassword}
	r.Save(ctx, users)
	r.logger.Info(ctx, "seeded demo account", "email", common.DemoEmail)
}
