package store

import (
	"errors"
	"testing"
)

func TestLocalValues(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetValue("vasstra_auth_token", "tok-1"); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}
	got, err := s.GetValue("vasstra_auth_token")
	if err != nil {
		t.Fatalf("Failed to get value: %v", err)
	}
	if got != "tok-1" {
		t.Errorf("Expected tok-1, got %q", got)
	}

	// Overwrite replaces in place.
	if err := s.SetValue("vasstra_auth_token", "tok-2"); err != nil {
		t.Fatalf("Failed to overwrite value: %v", err)
	}
	got, err = s.GetValue("vasstra_auth_token")
	if err != nil {
		t.Fatalf("Failed to get value: %v", err)
	}
	if got != "tok-2" {
		t.Errorf("Expected tok-2, got %q", got)
	}

	if err := s.DeleteValue("vasstra_auth_token"); err != nil {
		t.Fatalf("Failed to delete value: %v", err)
	}
	if _, err := s.GetValue("vasstra_auth_token"); !errors.Is(err, ErrValueNotFound) {
		t.Errorf("Expected ErrValueNotFound, got %v", err)
	}
}

func TestDeleteMissingValue(t *testing.T) {
	s := newTestStore(t)

	if err := s.DeleteValue("never_set"); err != nil {
		t.Errorf("Expected no error deleting missing key, got %v", err)
	}
}
