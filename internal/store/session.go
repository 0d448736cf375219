package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrValueNotFound is returned when a key has no stored value.
var ErrValueNotFound = errors.New("store: value not found")

// SetValue stores an arbitrary string under a key, replacing any
// previous value.
func (s *LocalStore) SetValue(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO local_values (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("store: failed to set %q: %w", key, err)
	}
	return nil
}

// GetValue returns the value stored under key, or ErrValueNotFound.
func (s *LocalStore) GetValue(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM local_values WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrValueNotFound
	}
	if err != nil {
		return "", fmt.Errorf("store: failed to get %q: %w", key, err)
	}
	return value, nil
}

// DeleteValue removes a stored key. Deleting a missing key is not an error.
func (s *LocalStore) DeleteValue(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM local_values WHERE key = ?", key); err != nil {
		return fmt.Errorf("store: failed to delete %q: %w", key, err)
	}
	return nil
}
