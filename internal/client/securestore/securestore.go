// Package securestore is the durable secure store that mirrors the session.
//
// On a device it is an encrypted directory (FileStore); where no secure
// storage exists, Nop stands in and every read misses.
package securestore

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/herbalist/internal/common"
	"github.com/dmitrijs2005/herbalist/internal/cryptox"
	"github.com/dmitrijs2005/herbalist/internal/filex"
)

// Store is the secure key-value API. Implementations must be safe to call
// from a goroutine detached from the caller.
type Store interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	DeleteItem(ctx context.Context, key string) error
}

const (
	saltFile = ".salt"
	saltSize = 16
)

// FileStore keeps one AES-GCM sealed file per key.
type FileStore struct {
	dir string
	key []byte
}

// NewFileStore prepares dir (mode 0700, relative paths resolved against the
// working directory) and derives the encryption key from passphrase and the
// directory salt, creating the salt on first use.
func NewFileStore(dir string, passphrase []byte) (*FileStore, error) {
	dir, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	salt, err := loadOrCreateSalt(filepath.Join(dir, saltFile))
	if err != nil {
		return nil, err
	}
	return &FileStore{dir: dir, key: cryptox.DeriveKey(passphrase, salt)}, nil
}

func loadOrCreateSalt(path string) ([]byte, error) {
	salt, err := os.ReadFile(path)
	if err == nil && len(salt) == saltSize {
		return salt, nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read salt: %w", err)
	}
	salt = common.GenerateRandByteArray(saltSize)
	if err := os.WriteFile(path, salt, 0o600); err != nil {
		return nil, fmt.Errorf("write salt: %w", err)
	}
	return salt, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, hex.EncodeToString([]byte(key))+".enc")
}

func (s *FileStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	sealed, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	plain, err := cryptox.Open(s.key, sealed)
	if err != nil {
		return "", false, fmt.Errorf("decrypt %s: %w", key, err)
	}
	return string(plain), true, nil
}

func (s *FileStore) SetItem(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sealed, err := cryptox.Seal(s.key, []byte(value))
	if err != nil {
		return fmt.Errorf("encrypt %s: %w", key, err)
	}
	// readers must never observe a partially written file
	tmp, err := os.CreateTemp(s.dir, "item-*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(sealed); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("rename %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) DeleteItem(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Nop is the secure store of platforms that have none.
type Nop struct{}

func (Nop) GetItem(context.Context, string) (string, bool, error) { return "", false, nil }
func (Nop) SetItem(context.Context, string, string) error         { return nil }
func (Nop) DeleteItem(context.Context, string) error              { return nil }
