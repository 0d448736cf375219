package store

import (
	"fmt"
	"time"
)

// RecentProduct is an entry in the recently-viewed cache.
type RecentProduct struct {
	ProductID string
	Name      string
	Price     float64
	Image     string
	ViewedAt  time.Time
}

// TouchRecentlyViewed records a product view and prunes the cache to limit
// entries, dropping the oldest.
func (s *LocalStore) TouchRecentlyViewed(p RecentProduct, limit int) error {
	if p.ProductID == "" {
		return fmt.Errorf("store: recent product requires an id")
	}
	if limit <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO recently_viewed (product_id, name, price, image, viewed_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(product_id) DO UPDATE SET viewed_at = excluded.viewed_at, price = excluded.price`,
		p.ProductID, p.Name, p.Price, p.Image, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("store: failed to record view: %w", err)
	}

	_, err = s.db.Exec(`
		DELETE FROM recently_viewed WHERE product_id NOT IN (
			SELECT product_id FROM recently_viewed ORDER BY viewed_at DESC LIMIT ?
		)`, limit)
	if err != nil {
		return fmt.Errorf("store: failed to prune recent views: %w", err)
	}
	return nil
}

// RecentlyViewed lists cached views, most recent first.
func (s *LocalStore) RecentlyViewed() ([]RecentProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT product_id, name, price, image, viewed_at
		FROM recently_viewed ORDER BY viewed_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: failed to list recent views: %w", err)
	}
	defer rows.Close()

	var out []RecentProduct
	for rows.Next() {
		var p RecentProduct
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Price, &p.Image, &p.ViewedAt); err != nil {
			return nil, fmt.Errorf("store: failed to scan recent view: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
