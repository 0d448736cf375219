package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Decode errors. Malformed API responses fail loudly at the boundary
// instead of propagating zero values through the UI.
var (
	ErrInvalidID    = errors.New("catalog: invalid id")
	ErrInvalidName  = errors.New("catalog: invalid name")
	ErrInvalidPrice = errors.New("catalog: invalid price")
	ErrInvalidStock = errors.New("catalog: invalid stock entry")
)

// productWire mirrors the JSON shape served by the API. Pointer fields
// distinguish "absent" from zero so validation can reject missing data.
type productWire struct {
	ID            json.RawMessage `json:"id"`
	Name          string          `json:"name"`
	Price         *float64        `json:"price"`
	OriginalPrice *float64        `json:"originalPrice"`
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory"`
	Image         string          `json:"image"`
	Images        []string        `json:"images"`
	Sizes         []string        `json:"sizes"`
	Colors        []string        `json:"colors"`
	StockBySize   []SizeStock     `json:"stockBySize"`
	StockByColor  []ColorStock    `json:"stockByColor"`
	IsNew         bool            `json:"isNew"`
	IsBestseller  bool            `json:"isBestseller"`
	IsSummer      bool            `json:"isSummer"`
	IsWinter      bool            `json:"isWinter"`
	IsActive      *bool           `json:"isActive"`
	CreatedAt     string          `json:"createdAt"`
}

// DecodeProduct parses and validates a single product record.
func DecodeProduct(data []byte) (Product, error) {
	var w productWire
	if err := json.Unmarshal(data, &w); err != nil {
		return Product{}, fmt.Errorf("catalog: malformed product: %w", err)
	}
	return w.toProduct()
}

// DecodeProducts parses and validates a product list. Any invalid record
// fails the whole decode with its index attached.
func DecodeProducts(data []byte) ([]Product, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog: malformed product list: %w", err)
	}
	products := make([]Product, 0, len(raw))
	for i, r := range raw {
		p, err := DecodeProduct(r)
		if err != nil {
			return nil, fmt.Errorf("catalog: product %d: %w", i, err)
		}
		products = append(products, p)
	}
	return products, nil
}

func (w productWire) toProduct() (Product, error) {
	id, err := decodeID(w.ID)
	if err != nil {
		return Product{}, err
	}
	if strings.TrimSpace(w.Name) == "" {
		return Product{}, ErrInvalidName
	}
	if w.Price == nil || *w.Price < 0 {
		return Product{}, ErrInvalidPrice
	}

	originalPrice := *w.Price
	if w.OriginalPrice != nil {
		if *w.OriginalPrice < 0 {
			return Product{}, ErrInvalidPrice
		}
		originalPrice = *w.OriginalPrice
	}

	for _, s := range w.StockBySize {
		if s.Size == "" || s.Quantity < 0 {
			return Product{}, ErrInvalidStock
		}
	}
	for _, c := range w.StockByColor {
		if c.Color == "" || c.Quantity < 0 {
			return Product{}, ErrInvalidStock
		}
	}

	// Active unless the server says otherwise
	active := true
	if w.IsActive != nil {
		active = *w.IsActive
	}

	var createdAt time.Time
	if w.CreatedAt != "" {
		createdAt, err = time.Parse(time.RFC3339, w.CreatedAt)
		if err != nil {
			return Product{}, fmt.Errorf("catalog: invalid createdAt %q: %w", w.CreatedAt, err)
		}
	}

	return Product{
		ID:            id,
		Name:          strings.TrimSpace(w.Name),
		Price:         *w.Price,
		OriginalPrice: originalPrice,
		Category:      strings.TrimSpace(w.Category),
		Subcategory:   strings.TrimSpace(w.Subcategory),
		Image:         w.Image,
		Images:        w.Images,
		Sizes:         w.Sizes,
		Colors:        w.Colors,
		StockBySize:   w.StockBySize,
		StockByColor:  w.StockByColor,
		IsNew:         w.IsNew,
		IsBestseller:  w.IsBestseller,
		IsSummer:      w.IsSummer,
		IsWinter:      w.IsWinter,
		IsActive:      active,
		CreatedAt:     createdAt.UTC(),
	}, nil
}

// decodeID accepts both string and numeric ids; the backend has served both.
func decodeID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", ErrInvalidID
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if strings.TrimSpace(s) == "" {
			return "", ErrInvalidID
		}
		return strings.TrimSpace(s), nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	return "", ErrInvalidID
}
