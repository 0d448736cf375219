package catalog

import "sort"

// SortKey selects the display comparator for product listings.
type SortKey string

const (
	// SortFeatured preserves fetch order. This is the default.
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	// SortNewest orders by createdAt, newest first. Ids are opaque
	// strings and say nothing about age.
	SortNewest SortKey = "newest"
)

// ParseSortKey maps a user-supplied string to a SortKey.
// Unknown values behave as featured.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc, SortNewest:
		return SortKey(s)
	default:
		return SortFeatured
	}
}

// Sort returns a new display-ordered slice. The input is never mutated
// and the sort is stable, so equal elements keep their fetch order.
func Sort(products []Product, key SortKey) []Product {
	out := make([]Product, len(products))
	copy(out, products)

	switch key {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			// Deterministic order for records sharing a timestamp
			return out[i].ID > out[j].ID
		})
	default:
		// featured: no reordering
	}
	return out
}
