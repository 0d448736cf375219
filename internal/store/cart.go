package store

import (
	"fmt"
	"time"

	"vasstra/internal/logging"
)

// CartItem is an ephemeral client-side cart line. Identity is
// (ProductID, Size, Color); re-adding the same identity merges quantity.
type CartItem struct {
	ProductID     string
	Name          string
	Price         float64
	OriginalPrice float64
	Image         string
	Size          string
	Color         string
	Category      string
	Quantity      int
	AddedAt       time.Time
}

// LineTotal returns price times quantity.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// AddCartItem inserts a cart line, merging quantity when the same
// product/size/color is already present.
func (s *LocalStore) AddCartItem(item CartItem) error {
	if item.ProductID == "" {
		return fmt.Errorf("store: cart item requires a product id")
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("store: cart item quantity must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO cart_items (product_id, name, price, original_price, image, size, color, category, quantity)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(product_id, size, color)
		DO UPDATE SET quantity = quantity + excluded.quantity, price = excluded.price`,
		item.ProductID, item.Name, item.Price, item.OriginalPrice, item.Image,
		item.Size, item.Color, item.Category, item.Quantity)
	if err != nil {
		return fmt.Errorf("store: failed to add cart item: %w", err)
	}

	logging.Cart("added %s (size=%s color=%s) x%d", item.ProductID, item.Size, item.Color, item.Quantity)
	return nil
}

// SetCartQuantity replaces the quantity of a cart line. Zero removes it.
func (s *LocalStore) SetCartQuantity(productID, size, color string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("store: quantity must be >= 0")
	}
	if quantity == 0 {
		return s.RemoveCartItem(productID, size, color)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		"UPDATE cart_items SET quantity = ? WHERE product_id = ? AND size = ? AND color = ?",
		quantity, productID, size, color)
	if err != nil {
		return fmt.Errorf("store: failed to update quantity: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("store: cart item %s not found", productID)
	}
	return nil
}

// RemoveCartItem deletes a cart line.
func (s *LocalStore) RemoveCartItem(productID, size, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(
		"DELETE FROM cart_items WHERE product_id = ? AND size = ? AND color = ?",
		productID, size, color); err != nil {
		return fmt.Errorf("store: failed to remove cart item: %w", err)
	}
	logging.Cart("removed %s (size=%s color=%s)", productID, size, color)
	return nil
}

// CartItems lists the cart in insertion order.
func (s *LocalStore) CartItems() ([]CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT product_id, name, price, original_price, image, size, color, category, quantity, added_at
		FROM cart_items ORDER BY added_at, product_id`)
	if err != nil {
		return nil, fmt.Errorf("store: failed to list cart: %w", err)
	}
	defer rows.Close()

	var items []CartItem
	for rows.Next() {
		var it CartItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Price, &it.OriginalPrice,
			&it.Image, &it.Size, &it.Color, &it.Category, &it.Quantity, &it.AddedAt); err != nil {
			return nil, fmt.Errorf("store: failed to scan cart item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ClearCart empties the cart. Called after checkout completes.
func (s *LocalStore) ClearCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM cart_items"); err != nil {
		return fmt.Errorf("store: failed to clear cart: %w", err)
	}
	logging.Cart("cart cleared")
	return nil
}

// CartSubtotal sums line totals.
func (s *LocalStore) CartSubtotal() (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var subtotal float64
	err := s.db.QueryRow("SELECT COALESCE(SUM(price * quantity), 0) FROM cart_items").Scan(&subtotal)
	if err != nil {
		return 0, fmt.Errorf("store: failed to compute subtotal: %w", err)
	}
	return subtotal, nil
}
