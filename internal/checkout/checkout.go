// Package checkout assembles cart contents into an order request:
// totals, shipping, coupon discount, shipping address, submission.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"vasstra/internal/api"
	"vasstra/internal/config"
	"vasstra/internal/logging"
	"vasstra/internal/order"
	"vasstra/internal/store"
)

// ErrEmptyCart is returned when checkout starts with nothing in the cart.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// Rules are the storefront pricing rules, sourced from config.
type Rules struct {
	ShippingFee       float64
	FreeShippingAbove float64
}

// RulesFromConfig extracts checkout rules from shop configuration.
func RulesFromConfig(shop config.ShopConfig) Rules {
	return Rules{
		ShippingFee:       shop.ShippingFee,
		FreeShippingAbove: shop.FreeShippingAbove,
	}
}

// Totals is the price breakdown shown before submission.
type Totals struct {
	Subtotal     float64
	Discount     float64
	Shipping     float64
	Total        float64
	FreeShipping bool
}

// ComputeTotals prices an order. Shipping is waived at or above the
// free-shipping threshold, judged on the subtotal before discount.
// The coupon may be nil.
func ComputeTotals(subtotal float64, rules Rules, coupon *api.Coupon) Totals {
	t := Totals{Subtotal: subtotal}
	if coupon != nil {
		t.Discount = coupon.Discount(subtotal)
	}
	t.FreeShipping = rules.FreeShippingAbove > 0 && subtotal >= rules.FreeShippingAbove
	if !t.FreeShipping && subtotal > 0 {
		t.Shipping = rules.ShippingFee
	}
	t.Total = t.Subtotal - t.Discount + t.Shipping
	if t.Total < 0 {
		t.Total = 0
	}
	return t
}

// orderItems converts cart lines to order line items.
func orderItems(items []store.CartItem) []order.Item {
	out := make([]order.Item, 0, len(items))
	for _, it := range items {
		out = append(out, order.Item{
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Size:     it.Size,
			Color:    it.Color,
			Category: it.Category,
		})
	}
	return out
}

// Flow drives a checkout against the API using the local cart.
type Flow struct {
	client *api.Client
	store  *store.LocalStore
	rules  Rules
}

// NewFlow builds a checkout flow.
func NewFlow(client *api.Client, st *store.LocalStore, rules Rules) *Flow {
	return &Flow{client: client, store: st, rules: rules}
}

// Totals prices the current cart, optionally with a coupon applied.
func (f *Flow) Totals(coupon *api.Coupon) (Totals, error) {
	subtotal, err := f.store.CartSubtotal()
	if err != nil {
		return Totals{}, err
	}
	return ComputeTotals(subtotal, f.rules, coupon), nil
}

// ApplyCoupon validates a code against the current cart subtotal.
func (f *Flow) ApplyCoupon(ctx context.Context, code string) (*api.Coupon, error) {
	subtotal, err := f.store.CartSubtotal()
	if err != nil {
		return nil, err
	}
	coupon, err := f.client.ValidateCoupon(ctx, code, subtotal)
	if err != nil {
		return nil, fmt.Errorf("coupon %q rejected: %w", code, err)
	}
	logging.Checkout("Coupon %s applied: -%.2f", coupon.Code, coupon.Discount(subtotal))
	return coupon, nil
}

// PlaceOrder submits the cart as an order. The shipping address is saved
// to the address book (duplicates collapse to the existing entry), and
// the cart is cleared only after the server accepts the order.
func (f *Flow) PlaceOrder(ctx context.Context, addr order.Address, paymentMethod string, coupon *api.Coupon) (*order.Order, error) {
	items, err := f.store.CartItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal, err := f.store.CartSubtotal()
	if err != nil {
		return nil, err
	}
	totals := ComputeTotals(subtotal, f.rules, coupon)

	if _, err := f.store.SaveAddress(addr); err != nil {
		return nil, err
	}

	req := api.OrderRequest{
		Items:           orderItems(items),
		Subtotal:        totals.Subtotal,
		Shipping:        totals.Shipping,
		Total:           totals.Total,
		ShippingAddress: addr,
		PaymentMethod:   paymentMethod,
	}
	if coupon != nil {
		req.CouponCode = coupon.Code
	}

	placed, err := f.client.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}
	logging.Checkout("Order %s placed, total %.2f", placed.ID, totals.Total)

	if err := f.store.ClearCart(); err != nil {
		logging.Get(logging.CategoryCheckout).Error("Order placed but cart not cleared: %v", err)
	}
	return placed, nil
}
