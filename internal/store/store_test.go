package store

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := NewLocalStore(":memory:")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSchemaVersion(t *testing.T) {
	s := newTestStore(t)

	version, err := s.schemaVersion()
	if err != nil {
		t.Fatalf("Failed to read schema version: %v", err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("Expected schema version %d, got %d", CurrentSchemaVersion, version)
	}
}

func TestStats(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddCartItem(CartItem{ProductID: "p1", Name: "Tee", Price: 499, Size: "M", Color: "Black", Quantity: 1}); err != nil {
		t.Fatalf("Failed to add cart item: %v", err)
	}
	if err := s.AddWishlistItem(WishlistItem{ProductID: "p2", Name: "Hoodie", Price: 1299}); err != nil {
		t.Fatalf("Failed to add wishlist item: %v", err)
	}

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Failed to read stats: %v", err)
	}
	if stats["cart_items"] != 1 {
		t.Errorf("Expected 1 cart item, got %d", stats["cart_items"])
	}
	if stats["wishlist_items"] != 1 {
		t.Errorf("Expected 1 wishlist item, got %d", stats["wishlist_items"])
	}
}
