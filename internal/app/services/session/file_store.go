package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/exceptions"

	"go.uber.org/zap"
	"golang.org/x/crypto/nacl/secretbox"
)

// fileStore persists one file per logical key under an app-scoped
// directory. Stored values carry patient data, so every blob is sealed
// with secretbox before it touches disk; on disk they stay opaque text.
type fileStore struct {
	dir     string
	sealKey [32]byte
	Log     *zap.Logger
}

func NewFileStore(dir, sealKeyHex string, logger *zap.Logger) (contracts.SessionStore, error) {
	keyBytes, err := hex.DecodeString(sealKeyHex)
	if err != nil || len(keyBytes) != 32 {
		return nil, fmt.Errorf("storage seal key must be 64 hex characters")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("cannot create storage dir %s: %w", dir, err)
	}

	store := &fileStore{
		dir: dir,
		Log: logger,
	}
	copy(store.sealKey[:], keyBytes)
	return store, nil
}

func (s *fileStore) Get(ctx context.Context, key string) (string, error) {
	raw, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", contracts.ErrKeyNotFound
	}
	if err != nil {
		return "", exceptions.ErrStorageRead(err, key)
	}

	sealed, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil || len(sealed) < 24 {
		// A blob we can no longer decode is as good as absent.
		s.Log.Warn("stored value is not a valid sealed blob, treating as absent",
			zap.String(constvars.LoggingStorageKeyKey, key),
		)
		return "", contracts.ErrKeyNotFound
	}

	var nonce [24]byte
	copy(nonce[:], sealed[:24])
	plain, ok := secretbox.Open(nil, sealed[24:], &nonce, &s.sealKey)
	if !ok {
		s.Log.Warn("stored value failed to unseal, treating as absent",
			zap.String(constvars.LoggingStorageKeyKey, key),
		)
		return "", contracts.ErrKeyNotFound
	}
	return string(plain), nil
}

func (s *fileStore) Set(ctx context.Context, key string, value string) error {
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return exceptions.ErrStorageWrite(err, key)
	}
	sealed := secretbox.Seal(nonce[:], []byte(value), &nonce, &s.sealKey)
	encoded := base64.StdEncoding.EncodeToString(sealed)

	// Write-then-rename keeps the previous value intact if the process
	// dies mid-write.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(encoded), 0o600); err != nil {
		return exceptions.ErrStorageWrite(err, key)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return exceptions.ErrStorageWrite(err, key)
	}
	return nil
}

func (s *fileStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return exceptions.ErrStorageDelete(err, key)
	}
	return nil
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, base64.URLEncoding.EncodeToString([]byte(key)))
}
