package catalog

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestSort_PriceAscending(t *testing.T) {
	products := []Product{
		{ID: "2", Price: 1500},
		{ID: "3", Price: 2500},
		{ID: "1", Price: 500},
	}

	got := Sort(products, SortPriceAsc)
	for i := 1; i < len(got); i++ {
		if got[i-1].Price > got[i].Price {
			t.Errorf("not ascending at %d: %v > %v", i, got[i-1].Price, got[i].Price)
		}
	}
	if diff := cmp.Diff([]string{"1", "2", "3"}, ids(got)); diff != "" {
		t.Errorf("price-asc order (-want +got):\n%s", diff)
	}
}

func TestSort_PriceDescendingIsReverse(t *testing.T) {
	products := []Product{
		{ID: "1", Price: 500},
		{ID: "2", Price: 1500},
		{ID: "3", Price: 2500},
	}

	asc := Sort(products, SortPriceAsc)
	desc := Sort(products, SortPriceDesc)

	for i := range desc {
		if desc[i].ID != asc[len(asc)-1-i].ID {
			t.Fatalf("price-desc is not the reverse of price-asc: %v vs %v", ids(desc), ids(asc))
		}
	}
}

func TestSort_FilteredThenSortedScenario(t *testing.T) {
	// Catalog scenario: priceRange [1000,3000], then price-desc
	products := []Product{
		{ID: "1", Name: "a", Price: 500},
		{ID: "2", Name: "b", Price: 1500},
		{ID: "3", Name: "c", Price: 2500},
	}

	filtered := Filter(products, Selection{PriceRange: [2]float64{1000, 3000}})
	got := Sort(filtered, SortPriceDesc)
	if diff := cmp.Diff([]string{"3", "2"}, ids(got)); diff != "" {
		t.Errorf("scenario result (-want +got):\n%s", diff)
	}
}

func TestSort_FeaturedPreservesFetchOrder(t *testing.T) {
	products := []Product{
		{ID: "9", Price: 900},
		{ID: "1", Price: 100},
		{ID: "5", Price: 500},
	}

	got := Sort(products, SortFeatured)
	if diff := cmp.Diff(ids(products), ids(got)); diff != "" {
		t.Errorf("featured reordered (-want +got):\n%s", diff)
	}
}

func TestSort_NewestByCreatedAt(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	products := []Product{
		{ID: "old", CreatedAt: base},
		{ID: "newest", CreatedAt: base.Add(48 * time.Hour)},
		{ID: "mid", CreatedAt: base.Add(24 * time.Hour)},
	}

	got := Sort(products, SortNewest)
	if diff := cmp.Diff([]string{"newest", "mid", "old"}, ids(got)); diff != "" {
		t.Errorf("newest order (-want +got):\n%s", diff)
	}
}

func TestSort_NewestTimestampTieBreaksOnID(t *testing.T) {
	ts := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	products := []Product{
		{ID: "a", CreatedAt: ts},
		{ID: "b", CreatedAt: ts},
	}

	got := Sort(products, SortNewest)
	if diff := cmp.Diff([]string{"b", "a"}, ids(got)); diff != "" {
		t.Errorf("tie break (-want +got):\n%s", diff)
	}
}

func TestSort_StableForEqualPrices(t *testing.T) {
	products := []Product{
		{ID: "first", Price: 100},
		{ID: "second", Price: 100},
		{ID: "third", Price: 100},
	}

	got := Sort(products, SortPriceAsc)
	if diff := cmp.Diff([]string{"first", "second", "third"}, ids(got)); diff != "" {
		t.Errorf("equal prices should keep fetch order (-want +got):\n%s", diff)
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	products := []Product{
		{ID: "2", Price: 1500},
		{ID: "1", Price: 500},
	}
	before := ids(products)

	Sort(products, SortPriceAsc)

	if diff := cmp.Diff(before, ids(products)); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in   string
		want SortKey
	}{
		{"price-asc", SortPriceAsc},
		{"price-desc", SortPriceDesc},
		{"newest", SortNewest},
		{"featured", SortFeatured},
		{"", SortFeatured},
		{"rating", SortFeatured},
	}
	for _, tt := range tests {
		if got := ParseSortKey(tt.in); got != tt.want {
			t.Errorf("ParseSortKey(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
