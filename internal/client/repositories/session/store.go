// Package session holds the device's single authentication session.
//
// The session is stored as JSON under common.SessionKey and mirrored to a
// secure store. Mirror writes and deletes run on their own goroutines; their
// outcome never reaches the caller.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/herbalist/internal/client/models"
	"github.com/dmitrijs2005/herbalist/internal/client/securestore"
	"github.com/dmitrijs2005/herbalist/internal/client/storage"
	"github.com/dmitrijs2005/herbalist/internal/common"
	"github.com/dmitrijs2005/herbalist/internal/logging"
	"github.com/dmitrijs2005/herbalist/internal/validation"
)

type Store struct {
	store  *storage.Storage
	secure securestore.Store
	logger logging.Logger

	mirrors  sync.WaitGroup
	seq      atomic.Uint64
	mirrorMu sync.Mutex
	applied  uint64
}

// NewStore builds a session store. A nil secure store disables mirroring.
func NewStore(store *storage.Storage, secure securestore.Store, logger logging.Logger) *Store {
	if secure == nil {
		secure = securestore.Nop{}
	}
	return &Store{store: store, secure: secure, logger: logger.With("component", "session")}
}

func (s *Store) GetRaw(ctx context.Context) (string, bool) {
	return s.store.Get(ctx, common.SessionKey)
}

func (s *Store) SetRaw(ctx context.Context, value string) {
	s.store.Set(ctx, common.SessionKey, value)
}

func (s *Store) ClearRaw(ctx context.Context) {
	s.store.Remove(ctx, common.SessionKey)
}

// Load decodes the stored session. Missing, unparsable or structurally
// invalid content yields a signed-out session.
func (s *Store) Load(ctx context.Context) models.Session {
	raw, ok := s.GetRaw(ctx)
	if !ok || raw == "" {
		return models.Session{}
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		s.logger.Warn(ctx, "discarding unreadable session", "error", err)
		return models.Session{}
	}
	if err := validation.Struct(sess); err != nil {
		s.logger.Warn(ctx, "discarding invalid session", "error", err)
		return models.Session{}
	}
	return sess
}

// Save stores sess and starts a best-effort mirror write.
func (s *Store) Save(ctx context.Context, sess models.Session) {
	b, err := json.Marshal(sess)
	if err != nil {
		s.logger.Error(ctx, "marshal session", "error", err)
		return
	}
	raw := string(b)
	s.SetRaw(ctx, raw)

	s.detach(ctx, "mirror write", func(ctx context.Context) error {
		return s.secure.SetItem(ctx, common.SessionKey, raw)
	})
}

// Clear removes the session and starts a best-effort mirror delete.
func (s *Store) Clear(ctx context.Context) {
	s.ClearRaw(ctx)

	s.detach(ctx, "mirror delete", func(ctx context.Context) error {
		return s.secure.DeleteItem(ctx, common.SessionKey)
	})
}

// Hydrate restores the session from the secure store when the primary store
// has none, e.g. after the app's local storage was wiped. A session already
// present is never overwritten.
func (s *Store) Hydrate(ctx context.Context) {
	if raw, ok := s.GetRaw(ctx); ok && raw != "" {
		return
	}
	raw, ok, err := s.secure.GetItem(ctx, common.SessionKey)
	if err != nil {
		s.logger.Warn(ctx, "secure store read failed", "error", err)
		return
	}
	if !ok || raw == "" {
		return
	}
	s.SetRaw(ctx, raw)
	s.logger.Debug(ctx, "session hydrated from secure store")
}

// Wait blocks until every mirror task started so far has finished. The
// store's own operations never call it.
func (s *Store) Wait() {
	s.mirrors.Wait()
}

// detach runs fn on its own goroutine. Tasks may be scheduled out of order,
// so a task older than one already applied is skipped: the mirror always
// ends up reflecting the latest Save or Clear.
func (s *Store) detach(ctx context.Context, op string, fn func(ctx context.Context) error) {
	ctx = context.WithoutCancel(ctx)
	n := s.seq.Add(1)
	s.mirrors.Add(1)
	go func() {
		defer s.mirrors.Done()
		defer func() {
			if p := recover(); p != nil {
				s.logger.Warn(ctx, "secure store "+op+" panicked", "panic", p)
			}
		}()

		s.mirrorMu.Lock()
		defer s.mirrorMu.Unlock()
		if n < s.applied {
			return
		}
		s.applied = n
		if err := fn(ctx); err != nil {
			s.logger.Warn(ctx, "secure store "+op+" failed", "error", err)
		}
	}()
}
