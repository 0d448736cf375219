package catalog

import "strings"

// Selection is the set of facets a shopper has active. The zero value
// matches everything.
type Selection struct {
	// Category filters by the selected category's name or slug.
	// Empty or "All" disables the facet.
	Category string
	// CategorySlug optionally carries the selected category's slug so a
	// product tagged with either form matches.
	CategorySlug string

	// PriceRange is [min, max], inclusive on both ends.
	// The zero value [0, 0] disables the facet.
	PriceRange [2]float64

	// Sizes/Colors: when any are selected, a product must overlap.
	Sizes  []string
	Colors []string
}

// Active reports whether any facet narrows the result.
func (s Selection) Active() bool {
	return s.categoryActive() || s.priceActive() || len(s.Sizes) > 0 || len(s.Colors) > 0
}

func (s Selection) categoryActive() bool {
	return s.Category != "" && !strings.EqualFold(s.Category, AllCategories)
}

func (s Selection) priceActive() bool {
	return s.PriceRange[0] != 0 || s.PriceRange[1] != 0
}

// Matches reports whether a single product satisfies every active facet.
func (s Selection) Matches(p Product) bool {
	if s.categoryActive() && !matchCategory(p, s.Category, s.CategorySlug) {
		return false
	}
	if s.priceActive() {
		if p.Price < s.PriceRange[0] || p.Price > s.PriceRange[1] {
			return false
		}
	}
	if len(s.Sizes) > 0 && !overlapsAny(p.HasSize, s.Sizes) {
		return false
	}
	if len(s.Colors) > 0 && !overlapsAny(p.HasColor, s.Colors) {
		return false
	}
	return true
}

// Filter returns the products satisfying every active facet, in their
// original order. The input slice is never mutated.
func Filter(products []Product, sel Selection) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if sel.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// matchCategory does a case-insensitive substring match of the selected
// category's name or slug against the product's category string.
func matchCategory(p Product, name, slug string) bool {
	cat := strings.ToLower(p.Category)
	if name != "" && strings.Contains(cat, strings.ToLower(name)) {
		return true
	}
	if slug != "" && strings.Contains(cat, strings.ToLower(slug)) {
		return true
	}
	return false
}

func overlapsAny(has func(string) bool, wanted []string) bool {
	for _, w := range wanted {
		if has(w) {
			return true
		}
	}
	return false
}
