package store

import "testing"

func TestWishlistAddIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	item := WishlistItem{ProductID: "p1", Name: "Wool Coat", Price: 4999}
	if err := s.AddWishlistItem(item); err != nil {
		t.Fatalf("Failed to add wishlist item: %v", err)
	}
	if err := s.AddWishlistItem(item); err != nil {
		t.Fatalf("Failed to re-add wishlist item: %v", err)
	}

	items, err := s.WishlistItems()
	if err != nil {
		t.Fatalf("Failed to list wishlist: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("Expected 1 wishlist item, got %d", len(items))
	}
}

func TestWishlistToggle(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddWishlistItem(WishlistItem{ProductID: "p1", Name: "Wool Coat", Price: 4999}); err != nil {
		t.Fatalf("Failed to add wishlist item: %v", err)
	}

	in, err := s.InWishlist("p1")
	if err != nil {
		t.Fatalf("Failed to check wishlist: %v", err)
	}
	if !in {
		t.Error("Expected p1 in wishlist")
	}

	if err := s.RemoveWishlistItem("p1"); err != nil {
		t.Fatalf("Failed to remove wishlist item: %v", err)
	}
	in, err = s.InWishlist("p1")
	if err != nil {
		t.Fatalf("Failed to check wishlist: %v", err)
	}
	if in {
		t.Error("Expected p1 removed from wishlist")
	}
}

func TestRecentlyViewedBounded(t *testing.T) {
	s := newTestStore(t)

	// The bound evicts the oldest entries; exercise with a limit of 3.
	for _, id := range []string{"p1", "p2", "p3", "p4"} {
		if err := s.TouchRecentlyViewed(RecentProduct{ProductID: id, Name: id, Price: 100}, 3); err != nil {
			t.Fatalf("Failed to touch %s: %v", id, err)
		}
	}

	recent, err := s.RecentlyViewed()
	if err != nil {
		t.Fatalf("Failed to list recently viewed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 recent products, got %d", len(recent))
	}
	for _, r := range recent {
		if r.ProductID == "p1" {
			t.Error("Expected oldest entry p1 evicted")
		}
	}
}
