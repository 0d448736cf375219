package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProducts_DecodesAndValidates(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": "1", "name": "Linen Shirt", "price": 899, "category": "Shirts"},
			{"id": "2", "name": "Summer Dress", "price": 1499, "category": "Dresses"}
		]`))
	})
	defer server.Close()

	products, err := client.Products(context.Background())
	if err != nil {
		t.Fatalf("Products failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	if products[0].ID != "1" || products[1].Name != "Summer Dress" {
		t.Errorf("unexpected decode: %+v", products)
	}
}

func TestProducts_MalformedRecordFailsLoudly(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name": "missing id and price"}]`))
	})
	defer server.Close()

	if _, err := client.Products(context.Background()); err == nil {
		t.Error("expected boundary validation error")
	}
}

func TestFetchShopData_ParallelFetches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			w.Write([]byte(`[{"id": "1", "name": "Shirt", "price": 899}]`))
		case "/categories":
			w.Write([]byte(`[{"id": "c1", "name": "Shirts", "slug": "shirts"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})
	data, err := client.FetchShopData(context.Background())
	if err != nil {
		t.Fatalf("FetchShopData failed: %v", err)
	}
	if len(data.Products) != 1 {
		t.Errorf("got %d products, want 1", len(data.Products))
	}
	if len(data.Categories) != 1 || data.Categories[0].Slug != "shirts" {
		t.Errorf("unexpected categories: %+v", data.Categories)
	}
}

func TestFetchShopData_FailureOfEitherFetchFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message": "boom"}`))
		}
	}))
	defer server.Close()

	client := New(Config{BaseURL: server.URL})
	if _, err := client.FetchShopData(context.Background()); err == nil {
		t.Error("expected category fetch failure to surface")
	}
}
