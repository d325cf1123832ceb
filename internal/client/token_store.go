package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	tokenFileMode os.FileMode = 0o600
	tokenDirMode  os.FileMode = 0o700
)

// TokenStore persists the session token in a single file readable only by
// the current user.
type TokenStore struct {
	path string
}

func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// Path returns the location of the token file.
func (s *TokenStore) Path() string {
	return s.path
}

// Load returns the saved token or ErrNoSavedToken.
func (s *TokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoSavedToken
	}
	if err != nil {
		return "", fmt.Errorf("error reading token file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoSavedToken
	}
	return token, nil
}

// Save writes token, creating parent directories when needed. An existing
// file is narrowed to owner-only permissions.
func (s *TokenStore) Save(token string) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, tokenDirMode); err != nil {
			return fmt.Errorf("error creating token directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, []byte(token+"\n"), tokenFileMode); err != nil {
		return fmt.Errorf("error writing token file: %w", err)
	}
	// WriteFile keeps the mode of a file that already exists
	if err := os.Chmod(s.path, tokenFileMode); err != nil {
		return fmt.Errorf("error setting token file permissions: %w", err)
	}
	return nil
}

// Clear removes the token file. A missing file is not an error.
func (s *TokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error removing token file: %w", err)
	}
	return nil
}
