// Package catalog implements the storefront product model and the
// client-side filtering/sorting applied to fetched product lists.
package catalog

import (
	"strings"
	"time"
)

// SizeStock is a per-size inventory entry. A missing entry means zero stock.
type SizeStock struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// ColorStock is a per-color inventory entry. A missing entry means zero stock.
type ColorStock struct {
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
}

// Product is a catalog product as served by the API.
// Price <= OriginalPrice is expected but not enforced here.
type Product struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Price         float64      `json:"price"`
	OriginalPrice float64      `json:"originalPrice"`
	Category      string       `json:"category"`
	Subcategory   string       `json:"subcategory,omitempty"`
	Image         string       `json:"image"`
	Images        []string     `json:"images,omitempty"`
	Sizes         []string     `json:"sizes,omitempty"`
	Colors        []string     `json:"colors,omitempty"`
	StockBySize   []SizeStock  `json:"stockBySize,omitempty"`
	StockByColor  []ColorStock `json:"stockByColor,omitempty"`
	IsNew         bool         `json:"isNew,omitempty"`
	IsBestseller  bool         `json:"isBestseller,omitempty"`
	IsSummer      bool         `json:"isSummer,omitempty"`
	IsWinter      bool         `json:"isWinter,omitempty"`
	IsActive      bool         `json:"isActive"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// StockForSize returns the displayable stock for a size label.
// An absent entry counts as zero.
func (p Product) StockForSize(size string) int {
	for _, s := range p.StockBySize {
		if strings.EqualFold(s.Size, size) {
			return s.Quantity
		}
	}
	return 0
}

// StockForColor returns the displayable stock for a color label.
func (p Product) StockForColor(color string) int {
	for _, c := range p.StockByColor {
		if strings.EqualFold(c.Color, color) {
			return c.Quantity
		}
	}
	return 0
}

// HasSize reports whether the product is offered in the given size.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if strings.EqualFold(s, size) {
			return true
		}
	}
	return false
}

// HasColor reports whether the product is offered in the given color.
func (p Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if strings.EqualFold(c, color) {
			return true
		}
	}
	return false
}

// Discounted reports whether the product is sold below its original price.
func (p Product) Discounted() bool {
	return p.OriginalPrice > 0 && p.Price < p.OriginalPrice
}

// Category is a catalog category as served by GET /categories.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// AllCategories is the sentinel selection that disables category filtering.
const AllCategories = "All"
