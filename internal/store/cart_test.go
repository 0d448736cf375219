package store

import (
	"math"
	"testing"
)

func TestCartMergeQuantity(t *testing.T) {
	s := newTestStore(t)

	item := CartItem{ProductID: "p1", Name: "Linen Shirt", Price: 1499, Size: "M", Color: "White", Quantity: 1}
	if err := s.AddCartItem(item); err != nil {
		t.Fatalf("Failed to add cart item: %v", err)
	}
	item.Quantity = 2
	if err := s.AddCartItem(item); err != nil {
		t.Fatalf("Failed to re-add cart item: %v", err)
	}

	items, err := s.CartItems()
	if err != nil {
		t.Fatalf("Failed to list cart: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 merged line, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Errorf("Expected merged quantity 3, got %d", items[0].Quantity)
	}
}

func TestCartVariantsAreSeparateLines(t *testing.T) {
	s := newTestStore(t)

	base := CartItem{ProductID: "p1", Name: "Linen Shirt", Price: 1499, Quantity: 1}

	m := base
	m.Size, m.Color = "M", "White"
	l := base
	l.Size, l.Color = "L", "White"

	if err := s.AddCartItem(m); err != nil {
		t.Fatalf("Failed to add M: %v", err)
	}
	if err := s.AddCartItem(l); err != nil {
		t.Fatalf("Failed to add L: %v", err)
	}

	items, err := s.CartItems()
	if err != nil {
		t.Fatalf("Failed to list cart: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("Expected 2 distinct lines, got %d", len(items))
	}
}

func TestSetCartQuantityZeroRemoves(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddCartItem(CartItem{ProductID: "p1", Name: "Tee", Price: 499, Size: "S", Color: "Black", Quantity: 2}); err != nil {
		t.Fatalf("Failed to add cart item: %v", err)
	}
	if err := s.SetCartQuantity("p1", "S", "Black", 0); err != nil {
		t.Fatalf("Failed to set quantity: %v", err)
	}

	items, err := s.CartItems()
	if err != nil {
		t.Fatalf("Failed to list cart: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected empty cart, got %d lines", len(items))
	}
}

func TestCartSubtotal(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddCartItem(CartItem{ProductID: "p1", Name: "Tee", Price: 499, Size: "S", Color: "Black", Quantity: 2}); err != nil {
		t.Fatalf("Failed to add cart item: %v", err)
	}
	if err := s.AddCartItem(CartItem{ProductID: "p2", Name: "Hoodie", Price: 1299, Size: "M", Color: "Grey", Quantity: 1}); err != nil {
		t.Fatalf("Failed to add cart item: %v", err)
	}

	subtotal, err := s.CartSubtotal()
	if err != nil {
		t.Fatalf("Failed to compute subtotal: %v", err)
	}
	if math.Abs(subtotal-2297) > 1e-9 {
		t.Errorf("Expected subtotal 2297, got %v", subtotal)
	}
}

func TestClearCart(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddCartItem(CartItem{ProductID: "p1", Name: "Tee", Price: 499, Size: "S", Color: "Black", Quantity: 1}); err != nil {
		t.Fatalf("Failed to add cart item: %v", err)
	}
	if err := s.ClearCart(); err != nil {
		t.Fatalf("Failed to clear cart: %v", err)
	}

	items, err := s.CartItems()
	if err != nil {
		t.Fatalf("Failed to list cart: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected empty cart after clear, got %d lines", len(items))
	}
}

func TestAddCartItemValidation(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddCartItem(CartItem{Name: "No ID", Price: 10, Quantity: 1}); err == nil {
		t.Error("Expected error for missing product id")
	}
	if err := s.AddCartItem(CartItem{ProductID: "p1", Name: "Bad qty", Price: 10, Quantity: 0}); err == nil {
		t.Error("Expected error for zero quantity")
	}
}
