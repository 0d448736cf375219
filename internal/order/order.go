// Package order implements the order model, its status vocabulary and the
// tracking timeline shown to shoppers. Status transitions happen server-side
// only; this package never changes an order's state, it renders whatever the
// server reports.
package order

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Status is an order's lifecycle state as reported by the server.
// Unrecognized server strings parse to StatusUnknown instead of being
// carried around as raw text.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusUnknown    Status = "unknown"
)

// ParseStatus maps a server-supplied status string to a Status.
func ParseStatus(s string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending
	case StatusConfirmed:
		return StatusConfirmed
	case StatusProcessing:
		return StatusProcessing
	case StatusShipped:
		return StatusShipped
	case StatusDelivered:
		return StatusDelivered
	case StatusCancelled:
		return StatusCancelled
	default:
		return StatusUnknown
	}
}

// Terminal reports whether the order can no longer progress.
// Delivered ends the linear progression; cancelled is the terminal side branch.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Known reports whether the status is part of the recognized vocabulary.
func (s Status) Known() bool {
	return s != StatusUnknown && s != ""
}

// Item is an order line item snapshot taken at checkout.
type Item struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size,omitempty"`
	Color    string  `json:"color,omitempty"`
	Category string  `json:"category,omitempty"`
}

// Address is a shipping destination snapshot.
type Address struct {
	Name    string `json:"name,omitempty"`
	Street  string `json:"street"`
	Street2 string `json:"street2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	Phone   string `json:"phone,omitempty"`
}

// TrackingUpdate is a timestamped courier-reported event.
type TrackingUpdate struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Location  string    `json:"location,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Order is created server-side at checkout and only mutated server-side.
type Order struct {
	ID              string           `json:"id"`
	Items           []Item           `json:"items"`
	Subtotal        float64          `json:"subtotal"`
	Shipping        float64          `json:"shipping"`
	Total           float64          `json:"total"`
	Status          Status           `json:"status"`
	RawStatus       string           `json:"-"`
	ShippingAddress Address          `json:"shippingAddress"`
	PaymentMethod   string           `json:"paymentMethod,omitempty"`
	TrackingID      string           `json:"trackingId,omitempty"`
	TrackingUpdates []TrackingUpdate `json:"trackingUpdates,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// HasTracking reports whether discrete courier events are available.
// When they are, the UI renders them verbatim instead of inferring
// progress from Status.
func (o *Order) HasTracking() bool {
	return len(o.TrackingUpdates) > 0
}

// UnmarshalJSON decodes an order, folding the server's status string into
// the closed Status vocabulary while preserving the raw value for display.
func (o *Order) UnmarshalJSON(data []byte) error {
	type wire Order
	aux := struct {
		*wire
		Status string `json:"status"`
	}{wire: (*wire)(o)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("order: malformed order: %w", err)
	}

	o.RawStatus = aux.Status
	o.Status = ParseStatus(aux.Status)
	return nil
}

// DecodeOrder parses and validates a single order record.
func DecodeOrder(data []byte) (*Order, error) {
	var o Order
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, err
	}
	if strings.TrimSpace(o.ID) == "" {
		return nil, fmt.Errorf("order: missing id")
	}
	return &o, nil
}
