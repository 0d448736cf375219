package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"vasstra/internal/order"
)

// SavedAddress is an address book entry.
type SavedAddress struct {
	ID        string
	Address   order.Address
	CreatedAt time.Time
}

// AddressFingerprint computes the identity used for de-duplication.
// Two addresses differing only by letter case or surrounding whitespace
// in their location fields are the same address. Name and phone are
// contact details, not part of the identity.
func AddressFingerprint(a order.Address) string {
	parts := []string{a.Street, a.Street2, a.City, a.State, a.Zip, a.Country}
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.Join(strings.Fields(p), " "))
	}
	return strings.Join(parts, "|")
}

// SaveAddress inserts an address, returning the stored entry. A duplicate
// of an existing address returns the existing entry with its contact
// details refreshed; only one copy is retained.
func (s *LocalStore) SaveAddress(a order.Address) (SavedAddress, error) {
	if strings.TrimSpace(a.Street) == "" || strings.TrimSpace(a.City) == "" {
		return SavedAddress{}, fmt.Errorf("store: address requires street and city")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fp := AddressFingerprint(a)
	id := uuid.NewString()

	_, err := s.db.Exec(`
		INSERT INTO addresses (id, name, street, street2, city, state, zip, country, phone, fingerprint)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(fingerprint) DO UPDATE SET name = excluded.name, phone = excluded.phone`,
		id, a.Name, a.Street, a.Street2, a.City, a.State, a.Zip, a.Country, a.Phone, fp)
	if err != nil {
		return SavedAddress{}, fmt.Errorf("store: failed to save address: %w", err)
	}

	return s.addressByFingerprint(fp)
}

func (s *LocalStore) addressByFingerprint(fp string) (SavedAddress, error) {
	var sa SavedAddress
	err := s.db.QueryRow(`
		SELECT id, name, street, street2, city, state, zip, country, phone, created_at
		FROM addresses WHERE fingerprint = ?`, fp).Scan(
		&sa.ID, &sa.Address.Name, &sa.Address.Street, &sa.Address.Street2,
		&sa.Address.City, &sa.Address.State, &sa.Address.Zip, &sa.Address.Country,
		&sa.Address.Phone, &sa.CreatedAt)
	if err != nil {
		return SavedAddress{}, fmt.Errorf("store: failed to load address: %w", err)
	}
	return sa, nil
}

// Addresses lists the address book, oldest first.
func (s *LocalStore) Addresses() ([]SavedAddress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, street, street2, city, state, zip, country, phone, created_at
		FROM addresses ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("store: failed to list addresses: %w", err)
	}
	defer rows.Close()

	var out []SavedAddress
	for rows.Next() {
		var sa SavedAddress
		if err := rows.Scan(&sa.ID, &sa.Address.Name, &sa.Address.Street, &sa.Address.Street2,
			&sa.Address.City, &sa.Address.State, &sa.Address.Zip, &sa.Address.Country,
			&sa.Address.Phone, &sa.CreatedAt); err != nil {
			return nil, fmt.Errorf("store: failed to scan address: %w", err)
		}
		out = append(out, sa)
	}
	return out, rows.Err()
}

// DeleteAddress removes an address book entry.
func (s *LocalStore) DeleteAddress(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM addresses WHERE id = ?", id); err != nil {
		return fmt.Errorf("store: failed to delete address: %w", err)
	}
	return nil
}
