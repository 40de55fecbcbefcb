package storage

import (
	"context"

	"github.com/dmitrijs2005/herbalist/internal/logging"
)

// Storage is the total key-value API the auth core relies on. Reads and
// writes go to the primary backend; when it is nil or returns an error the
// operation is served by an in-memory map instead, so callers never see a
// storage failure.
type Storage struct {
	primary  Store
	fallback *MemoryStore
	logger   logging.Logger
}

// New wraps primary. A nil primary means "no durable backend on this device".
func New(primary Store, logger logging.Logger) *Storage {
	return &Storage{primary: primary, fallback: NewMemoryStore(), logger: logger}
}

// NewInMemory returns a Storage with no durable backend.
func NewInMemory(logger logging.Logger) *Storage {
	return New(nil, logger)
}

func (s *Storage) Get(ctx context.Context, key string) (string, bool) {
	if s.primary != nil {
		v, ok, err := s.primary.Get(ctx, key)
		if err == nil {
			return v, ok
		}
		s.logger.Warn(ctx, "primary store read failed, using memory", "key", key, "error", err)
	}
	v, ok, _ := s.fallback.Get(ctx, key)
	return v, ok
}

func (s *Storage) Set(ctx context.Context, key, value string) {
	if s.primary != nil {
		err := s.primary.Set(ctx, key, value)
		if err == nil {
			return
		}
		s.logger.Warn(ctx, "primary store write failed, using memory", "key", key, "error", err)
	}
	_ = s.fallback.Set(ctx, key, value)
}

func (s *Storage) Remove(ctx context.Context, key string) {
	if s.primary != nil {
		err := s.primary.Remove(ctx, key)
		if err == nil {
			return
		}
		s.logger.Warn(ctx, "primary store delete failed, using memory", "key", key, "error", err)
	}
	_ = s.fallback.Remove(ctx, key)
}
