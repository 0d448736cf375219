package order

import (
	"encoding/json"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"pending", StatusPending},
		{"confirmed", StatusConfirmed},
		{"processing", StatusProcessing},
		{"shipped", StatusShipped},
		{"delivered", StatusDelivered},
		{"cancelled", StatusCancelled},
		{"SHIPPED", StatusShipped},
		{" delivered ", StatusDelivered},
		{"unknown_status", StatusUnknown},
		{"", StatusUnknown},
	}
	for _, tt := range tests {
		if got := ParseStatus(tt.in); got != tt.want {
			t.Errorf("ParseStatus(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStatus_Terminal(t *testing.T) {
	if !StatusDelivered.Terminal() {
		t.Error("delivered should be terminal")
	}
	if !StatusCancelled.Terminal() {
		t.Error("cancelled should be terminal")
	}
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusUnknown} {
		if s.Terminal() {
			t.Errorf("%v should not be terminal", s)
		}
	}
}

func TestOrder_UnmarshalFoldsStatus(t *testing.T) {
	data := []byte(`{
		"id": "ord-1",
		"items": [{"name": "Linen Shirt", "price": 899, "quantity": 2, "size": "M"}],
		"subtotal": 1798,
		"shipping": 99,
		"total": 1897,
		"status": "shipped",
		"shippingAddress": {"street": "1 Main St", "city": "Pune", "state": "MH", "zip": "411001", "country": "IN"},
		"trackingId": "TRK123",
		"createdAt": "2025-06-01T10:00:00Z"
	}`)

	o, err := DecodeOrder(data)
	if err != nil {
		t.Fatalf("DecodeOrder failed: %v", err)
	}
	if o.Status != StatusShipped {
		t.Errorf("Status = %v, want shipped", o.Status)
	}
	if o.RawStatus != "shipped" {
		t.Errorf("RawStatus = %q, want shipped", o.RawStatus)
	}
	if len(o.Items) != 1 || o.Items[0].Quantity != 2 {
		t.Errorf("items not decoded: %+v", o.Items)
	}
	if o.HasTracking() {
		t.Error("no tracking updates present, HasTracking should be false")
	}
}

func TestOrder_UnmarshalUnknownStatus(t *testing.T) {
	data := []byte(`{"id": "ord-2", "status": "vaporized"}`)

	o, err := DecodeOrder(data)
	if err != nil {
		t.Fatalf("DecodeOrder failed: %v", err)
	}
	if o.Status != StatusUnknown {
		t.Errorf("Status = %v, want unknown", o.Status)
	}
	// Raw string preserved so the UI can still show what the server said
	if o.RawStatus != "vaporized" {
		t.Errorf("RawStatus = %q, want vaporized", o.RawStatus)
	}
}

func TestDecodeOrder_MissingID(t *testing.T) {
	if _, err := DecodeOrder([]byte(`{"status": "pending"}`)); err == nil {
		t.Error("expected error for order without id")
	}
}

func TestOrder_TrackingUpdatesKeepReceivedOrder(t *testing.T) {
	// The client renders updates verbatim, assumed chronological; it
	// must not re-sort them.
	data := []byte(`{
		"id": "ord-3",
		"status": "shipped",
		"trackingUpdates": [
			{"status": "picked_up", "message": "Picked up", "timestamp": "2025-06-03T09:00:00Z"},
			{"status": "in_transit", "message": "In transit", "timestamp": "2025-06-02T08:00:00Z"}
		]
	}`)

	var o Order
	if err := json.Unmarshal(data, &o); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !o.HasTracking() {
		t.Fatal("expected tracking updates")
	}
	if o.TrackingUpdates[0].Status != "picked_up" || o.TrackingUpdates[1].Status != "in_transit" {
		t.Errorf("updates reordered: %+v", o.TrackingUpdates)
	}
}
