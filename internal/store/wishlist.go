package store

import (
	"fmt"
	"time"

	"vasstra/internal/logging"
)

// WishlistItem is a saved-for-later product reference.
type WishlistItem struct {
	ProductID     string
	Name          string
	Price         float64
	OriginalPrice float64
	Image         string
	Category      string
	AddedAt       time.Time
}

// AddWishlistItem saves a product. Re-adding is a no-op.
func (s *LocalStore) AddWishlistItem(item WishlistItem) error {
	if item.ProductID == "" {
		return fmt.Errorf("store: wishlist item requires a product id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO wishlist_items (product_id, name, price, original_price, image, category)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(product_id) DO NOTHING`,
		item.ProductID, item.Name, item.Price, item.OriginalPrice, item.Image, item.Category)
	if err != nil {
		return fmt.Errorf("store: failed to add wishlist item: %w", err)
	}
	logging.Cart("wishlisted %s", item.ProductID)
	return nil
}

// RemoveWishlistItem deletes a saved product.
func (s *LocalStore) RemoveWishlistItem(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM wishlist_items WHERE product_id = ?", productID); err != nil {
		return fmt.Errorf("store: failed to remove wishlist item: %w", err)
	}
	return nil
}

// InWishlist reports whether a product is saved.
func (s *LocalStore) InWishlist(productID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM wishlist_items WHERE product_id = ?", productID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("store: failed to check wishlist: %w", err)
	}
	return count > 0, nil
}

// WishlistItems lists saved products, most recent first.
func (s *LocalStore) WishlistItems() ([]WishlistItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT product_id, name, price, original_price, image, category, added_at
		FROM wishlist_items ORDER BY added_at DESC, product_id`)
	if err != nil {
		return nil, fmt.Errorf("store: failed to list wishlist: %w", err)
	}
	defer rows.Close()

	var items []WishlistItem
	for rows.Next() {
		var it WishlistItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Price, &it.OriginalPrice,
			&it.Image, &it.Category, &it.AddedAt); err != nil {
			return nil, fmt.Errorf("store: failed to scan wishlist item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
