package api

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"vasstra/internal/order"
)

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ErrOrderNotFound is returned when a tracking id matches no order.
var ErrOrderNotFound = errors.New("api: order not found")

// OrderRequest is the checkout payload for POST /orders.
type OrderRequest struct {
	Items           []order.Item  `json:"items"`
	Subtotal        float64       `json:"subtotal"`
	Shipping        float64       `json:"shipping"`
	Total           float64       `json:"total"`
	ShippingAddress order.Address `json:"shippingAddress"`
	PaymentMethod   string        `json:"paymentMethod"`
	CouponCode      string        `json:"couponCode,omitempty"`
}

// CreateOrder submits a checkout. The order object is created server-side;
// the response is the persisted record.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*order.Order, error) {
	var o order.Order
	if err := c.do(ctx, "POST", "/orders", req, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// MyOrders lists the logged-in user's orders.
func (c *Client) MyOrders(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	if err := c.get(ctx, "/orders/my", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// TrackOrder fetches an order by tracking id. A 404 maps to
// ErrOrderNotFound; the user resubmits the id manually, nothing retries.
func (c *Client) TrackOrder(ctx context.Context, trackingID string) (*order.Order, error) {
	var o order.Order
	err := c.get(ctx, "/orders/track/"+url.PathEscape(trackingID), &o)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// Coupon is a validated discount code.
type Coupon struct {
	Code           string  `json:"code"`
	DiscountType   string  `json:"discountType"` // "percent" or "fixed"
	DiscountValue  float64 `json:"discountValue"`
	MinOrderAmount float64 `json:"minOrderAmount,omitempty"`
}

// Discount returns the amount the coupon takes off an order subtotal.
func (cp Coupon) Discount(orderAmount float64) float64 {
	if orderAmount < cp.MinOrderAmount {
		return 0
	}
	switch cp.DiscountType {
	case "percent":
		return orderAmount * cp.DiscountValue / 100
	case "fixed":
		if cp.DiscountValue > orderAmount {
			return orderAmount
		}
		return cp.DiscountValue
	default:
		return 0
	}
}

// ValidateCoupon checks a code against the current order amount.
func (c *Client) ValidateCoupon(ctx context.Context, code string, orderAmount float64) (*Coupon, error) {
	var coupon Coupon
	path := "/coupons/validate/" + url.PathEscape(code) + "?orderAmount=" + url.QueryEscape(formatAmount(orderAmount))
	if err := c.get(ctx, path, &coupon); err != nil {
		return nil, err
	}
	return &coupon, nil
}
