package store

import (
	"testing"

	"vasstra/internal/order"
)

func TestSaveAddressDeduplicates(t *testing.T) {
	s := newTestStore(t)

	first := order.Address{
		Name:    "Asha Rao",
		Street:  "12 Rose Lane",
		City:    "Mumbai",
		State:   "MH",
		Zip:     "400001",
		Country: "India",
		Phone:   "9876543210",
	}
	saved, err := s.SaveAddress(first)
	if err != nil {
		t.Fatalf("Failed to save address: %v", err)
	}

	// Same address, different casing and stray whitespace.
	dup := order.Address{
		Name:    "A. Rao",
		Street:  "  12 rose LANE ",
		City:    "MUMBAI",
		State:   "mh",
		Zip:     " 400001",
		Country: "india",
		Phone:   "9876543211",
	}
	again, err := s.SaveAddress(dup)
	if err != nil {
		t.Fatalf("Failed to save duplicate address: %v", err)
	}

	if again.ID != saved.ID {
		t.Errorf("Expected duplicate to resolve to existing entry %s, got %s", saved.ID, again.ID)
	}

	all, err := s.Addresses()
	if err != nil {
		t.Fatalf("Failed to list addresses: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Expected 1 address after duplicate save, got %d", len(all))
	}
	// Contact details refresh on duplicate save.
	if all[0].Address.Phone != "9876543211" {
		t.Errorf("Expected refreshed phone, got %q", all[0].Address.Phone)
	}
}

func TestSaveAddressDistinct(t *testing.T) {
	s := newTestStore(t)

	a := order.Address{Street: "12 Rose Lane", City: "Mumbai", State: "MH", Zip: "400001", Country: "India"}
	b := a
	b.Street = "14 Rose Lane"

	if _, err := s.SaveAddress(a); err != nil {
		t.Fatalf("Failed to save address: %v", err)
	}
	if _, err := s.SaveAddress(b); err != nil {
		t.Fatalf("Failed to save second address: %v", err)
	}

	all, err := s.Addresses()
	if err != nil {
		t.Fatalf("Failed to list addresses: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 distinct addresses, got %d", len(all))
	}
}

func TestDeleteAddress(t *testing.T) {
	s := newTestStore(t)

	saved, err := s.SaveAddress(order.Address{Street: "12 Rose Lane", City: "Mumbai", State: "MH", Zip: "400001", Country: "India"})
	if err != nil {
		t.Fatalf("Failed to save address: %v", err)
	}
	if err := s.DeleteAddress(saved.ID); err != nil {
		t.Fatalf("Failed to delete address: %v", err)
	}

	all, err := s.Addresses()
	if err != nil {
		t.Fatalf("Failed to list addresses: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("Expected empty address book, got %d entries", len(all))
	}
}

func TestAddressFingerprint(t *testing.T) {
	a := order.Address{Street: "12 Rose Lane", City: "Mumbai", State: "MH", Zip: "400001", Country: "India"}
	b := order.Address{Street: "12  rose lane", City: " mumbai ", State: "Mh", Zip: "400001 ", Country: "INDIA"}
	if AddressFingerprint(a) != AddressFingerprint(b) {
		t.Error("Expected matching fingerprints for equivalent addresses")
	}

	c := a
	c.Zip = "400002"
	if AddressFingerprint(a) == AddressFingerprint(c) {
		t.Error("Expected different fingerprints for different zip codes")
	}
}
