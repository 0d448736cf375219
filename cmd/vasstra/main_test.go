package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"vasstra/internal/api"
	"vasstra/internal/auth"
	"vasstra/internal/config"
	"vasstra/internal/order"
	"vasstra/internal/store"

	"vasstra/cmd/vasstra/ui"
)

// setupTestApp wires the shared app state against a test server and a
// throwaway data dir, the way setupApp does at startup.
func setupTestApp(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	logger = zap.NewNop()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.API.BaseURL = server.URL
	cfg.Storage.DataDir = dir

	st, err := store.NewLocalStore(filepath.Join(dir, "vasstra.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	app.cfg = cfg
	app.client = api.New(api.Config{BaseURL: server.URL})
	app.store = st
	app.session = auth.NewSession(st)
	app.styles = ui.NewStyles(ui.LightTheme())
	return server
}

func TestCommandWiring(t *testing.T) {
	expected := []string{"shop", "product", "browse", "cart", "wishlist", "checkout", "orders", "auth", "admin", "store", "config"}
	for _, name := range expected {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Command %q not registered on root", name)
		}
	}
}

func TestRunShop(t *testing.T) {
	setupTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"id": "p1", "name": "Linen Shirt", "price": 1499, "category": "Shirts"},
				{"id": "p2", "name": "Silk Dress", "price": 3999, "category": "Dresses"},
			})
		case "/categories":
			json.NewEncoder(w).Encode([]map[string]string{
				{"id": "c1", "name": "Shirts", "slug": "shirts"},
			})
		default:
			http.NotFound(w, r)
		}
	}))

	shopCategory = ""
	shopSort = ""
	if err := runShop(shopCmd, nil); err != nil {
		t.Fatalf("runShop failed: %v", err)
	}

	// Category facet narrows the listing without error.
	shopCategory = "shirts"
	defer func() { shopCategory = "" }()
	if err := runShop(shopCmd, nil); err != nil {
		t.Fatalf("runShop with category failed: %v", err)
	}
}

func TestRunCartAddAndList(t *testing.T) {
	setupTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/p1" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": "p1", "name": "Linen Shirt", "price": 1499, "category": "Shirts",
			"sizes": []string{"S", "M"}, "colors": []string{"White"},
		})
	}))

	cartSize = "M"
	cartColor = "White"
	cartQuantity = 1
	defer func() { cartSize, cartColor = "", "" }()

	if err := runCartAdd(cartAddCmd, []string{"p1"}); err != nil {
		t.Fatalf("runCartAdd failed: %v", err)
	}

	items, err := app.store.CartItems()
	if err != nil {
		t.Fatalf("Failed to list cart: %v", err)
	}
	if len(items) != 1 || items[0].Size != "M" {
		t.Fatalf("Unexpected cart contents: %+v", items)
	}

	if err := runCartList(cartListCmd, nil); err != nil {
		t.Fatalf("runCartList failed: %v", err)
	}
}

func TestRunCartAddRejectsMissingSize(t *testing.T) {
	setupTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": "p1", "name": "Linen Shirt", "price": 1499,
			"sizes": []string{"S", "M"},
		})
	}))

	cartSize = "XXL"
	defer func() { cartSize = "" }()

	if err := runCartAdd(cartAddCmd, []string{"p1"}); err == nil {
		t.Error("Expected error for unavailable size")
	}
}

func TestTrackingViewCourierUpdatesReplaceTimeline(t *testing.T) {
	styles := ui.NewStyles(ui.LightTheme())

	o := &order.Order{ID: "ord-1", Status: order.StatusShipped, RawStatus: "shipped"}
	plain := trackingView(o, false, styles)
	if !strings.Contains(plain, "Delivered") {
		t.Error("Expected status-derived timeline without courier updates")
	}

	o.TrackingUpdates = []order.TrackingUpdate{
		{Status: "shipped", Message: "Left warehouse", Location: "Mumbai", Timestamp: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
	}
	rich := trackingView(o, false, styles)
	if !strings.Contains(rich, "Left warehouse") {
		t.Error("Expected courier updates rendered verbatim")
	}
	// The reported history replaces the inferred timeline entirely.
	if strings.Contains(rich, "Delivered") || strings.Contains(rich, "●") || strings.Contains(rich, "○") {
		t.Error("Courier updates must suppress the status-derived timeline")
	}

	// --full only widens the fallback branch.
	if full := trackingView(o, true, styles); strings.Contains(full, "Processing") {
		t.Error("Dashboard steps must not appear when courier updates are present")
	}
}

func TestRunOrdersTrackNotFound(t *testing.T) {
	setupTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"no such order"}`, http.StatusNotFound)
	}))

	err := runOrdersTrack(ordersTrackCmd, []string{"TRK-MISSING"})
	if err == nil {
		t.Fatal("Expected error for unknown tracking id")
	}
	if err.Error() != "Order not found" {
		t.Errorf("Expected %q, got %q", "Order not found", err.Error())
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	name := "Überweite Röhrenjeans"

	got := truncate(name, 12)
	if !utf8.ValidString(got) {
		t.Fatalf("Truncated name is not valid UTF-8: %q", got)
	}
	if want := "Überweite R…"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if n := utf8.RuneCountInString(got); n != 12 {
		t.Errorf("Expected 12 runes, got %d (%q)", n, got)
	}

	if got := truncate(name, utf8.RuneCountInString(name)); got != name {
		t.Errorf("Expected name unchanged when it fits, got %q", got)
	}
	if got := truncate("日本製", 1); got != "日" {
		t.Errorf("Expected single rune, got %q", got)
	}
}
