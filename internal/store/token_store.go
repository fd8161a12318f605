package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"turak/internal/domain"
)

const (
	tokensFile = "tokens.json"
	vaultFile  = "tokens.enc"
)

// TokenFileStore persists the access/refresh token pair under a config dir.
//
// With an empty passphrase tokens are stored as plain 0600 JSON, matching
// the browser localStorage the original client used. With a passphrase they
// are sealed in an scrypt+chacha20poly1305 envelope instead.
type TokenFileStore struct {
	dir        string
	passphrase string
	mu         sync.Mutex
}

// NewTokenFileStore returns a plaintext token store rooted at dir.
func NewTokenFileStore(dir string) *TokenFileStore {
	return &TokenFileStore{dir: dir}
}

// NewEncryptedTokenFileStore returns a token store that seals the pair with
// passphrase before it touches disk.
func NewEncryptedTokenFileStore(dir, passphrase string) *TokenFileStore {
	return &TokenFileStore{dir: dir, passphrase: passphrase}
}

// SaveTokens replaces the stored pair.
func (s *TokenFileStore) SaveTokens(pair domain.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.passphrase == "" {
		return writeJSON(filepath.Join(s.dir, tokensFile), pair, 0o600)
	}

	raw, err := json.Marshal(pair)
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	sealed, err := encrypt(s.passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, vaultFile), sealed, 0o600)
}

// AccessToken returns the stored access token, if any.
func (s *TokenFileStore) AccessToken() (string, bool) {
	pair, ok := s.load()
	return pair.Access, ok && pair.Access != ""
}

// RefreshToken returns the stored refresh token, if any.
func (s *TokenFileStore) RefreshToken() (string, bool) {
	pair, ok := s.load()
	return pair.Refresh, ok && pair.Refresh != ""
}

// Clear removes any stored tokens. Clearing an empty store is a no-op.
func (s *TokenFileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range []string{tokensFile, vaultFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

func (s *TokenFileStore) load() (domain.TokenPair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pair domain.TokenPair
	if s.passphrase == "" {
		ok, err := readJSON(filepath.Join(s.dir, tokensFile), &pair)
		return pair, ok && err == nil
	}

	sealed, err := os.ReadFile(filepath.Join(s.dir, vaultFile))
	if err != nil {
		return domain.TokenPair{}, false
	}
	raw, err := decrypt(s.passphrase, sealed)
	if err != nil {
		return domain.TokenPair{}, false
	}
	if err := json.Unmarshal(raw, &pair); err != nil {
		return domain.TokenPair{}, false
	}
	return pair, true
}

// Compile-time assertion that TokenFileStore implements domain.TokenStore.
var _ domain.TokenStore = (*TokenFileStore)(nil)
