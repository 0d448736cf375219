package api

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"vasstra/internal/catalog"
	"vasstra/internal/order"
)

// Stats is the admin dashboard summary.
type Stats struct {
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalUsers    int     `json:"totalUsers"`
	TotalProducts int     `json:"totalProducts"`
	PendingOrders int     `json:"pendingOrders"`
}

// AdminStats fetches the back-office dashboard numbers.
func (c *Client) AdminStats(ctx context.Context) (*Stats, error) {
	var s Stats
	if err := c.get(ctx, "/admin/stats", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// AdminProducts lists every product including inactive ones.
func (c *Client) AdminProducts(ctx context.Context) ([]catalog.Product, error) {
	data, err := c.getRaw(ctx, "/products/admin/all")
	if err != nil {
		return nil, err
	}
	return catalog.DecodeProducts(data)
}

// ProductInput is the create/update payload for a product.
type ProductInput struct {
	Name          string               `json:"name"`
	Price         float64              `json:"price"`
	OriginalPrice float64              `json:"originalPrice,omitempty"`
	Category      string               `json:"category"`
	Subcategory   string               `json:"subcategory,omitempty"`
	Image         string               `json:"image,omitempty"`
	Images        []string             `json:"images,omitempty"`
	Sizes         []string             `json:"sizes,omitempty"`
	Colors        []string             `json:"colors,omitempty"`
	StockBySize   []catalog.SizeStock  `json:"stockBySize,omitempty"`
	StockByColor  []catalog.ColorStock `json:"stockByColor,omitempty"`
	IsNew         bool                 `json:"isNew,omitempty"`
	IsBestseller  bool                 `json:"isBestseller,omitempty"`
	IsSummer      bool                 `json:"isSummer,omitempty"`
	IsWinter      bool                 `json:"isWinter,omitempty"`
	IsActive      bool                 `json:"isActive"`
}

// CreateProduct adds a product to the catalog.
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (catalog.Product, error) {
	var raw json.RawMessage
	if err := c.do(ctx, "POST", "/products", input, &raw); err != nil {
		return catalog.Product{}, err
	}
	return catalog.DecodeProduct(raw)
}

// UpdateProduct replaces a product's editable fields.
func (c *Client) UpdateProduct(ctx context.Context, id string, input ProductInput) (catalog.Product, error) {
	var raw json.RawMessage
	if err := c.do(ctx, "PUT", "/products/"+url.PathEscape(id), input, &raw); err != nil {
		return catalog.Product{}, err
	}
	return catalog.DecodeProduct(raw)
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/products/"+url.PathEscape(id), nil, nil)
}

// AdminOrders lists every order for the back office.
func (c *Client) AdminOrders(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	if err := c.get(ctx, "/admin/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrderUpdate carries an admin order mutation: a status transition
// and/or an appended tracking update. Transitions are requested here and
// performed server-side; the client never enforces ordering.
type OrderUpdate struct {
	Status         string                `json:"status,omitempty"`
	TrackingID     string                `json:"trackingId,omitempty"`
	TrackingUpdate *order.TrackingUpdate `json:"trackingUpdate,omitempty"`
}

// UpdateOrder requests a server-side order mutation.
func (c *Client) UpdateOrder(ctx context.Context, id string, update OrderUpdate) (*order.Order, error) {
	var o order.Order
	if err := c.do(ctx, "PUT", "/admin/orders/"+url.PathEscape(id), update, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// AdminUsers lists registered users.
func (c *Client) AdminUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/admin/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserUpdate carries editable user fields for the back office.
type UserUpdate struct {
	Name *string `json:"name,omitempty"`
	Role *string `json:"role,omitempty"`
}

// UpdateUser edits a user record.
func (c *Client) UpdateUser(ctx context.Context, id string, update UserUpdate) (*User, error) {
	var u User
	if err := c.do(ctx, "PUT", "/admin/users/"+url.PathEscape(id), update, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/admin/users/"+url.PathEscape(id), nil, nil)
}

// CouponInput is the create/update payload for a coupon.
type CouponInput struct {
	Code           string  `json:"code"`
	DiscountType   string  `json:"discountType"`
	DiscountValue  float64 `json:"discountValue"`
	MinOrderAmount float64 `json:"minOrderAmount,omitempty"`
	ExpiresAt      string  `json:"expiresAt,omitempty"`
	IsActive       bool    `json:"isActive"`
}

// AdminCoupons lists all coupons.
func (c *Client) AdminCoupons(ctx context.Context) ([]Coupon, error) {
	var coupons []Coupon
	if err := c.get(ctx, "/admin/coupons", &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

// CreateCoupon adds a coupon.
func (c *Client) CreateCoupon(ctx context.Context, input CouponInput) error {
	return c.do(ctx, "POST", "/admin/coupons", input, nil)
}

// DeleteCoupon removes a coupon.
func (c *Client) DeleteCoupon(ctx context.Context, code string) error {
	return c.do(ctx, "DELETE", "/admin/coupons/"+url.PathEscape(code), nil, nil)
}

// BannerInput is the create payload for a storefront banner.
type BannerInput struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Image    string `json:"image"`
	Link     string `json:"link,omitempty"`
	IsActive bool   `json:"isActive"`
}

// CreateBanner adds a storefront banner.
func (c *Client) CreateBanner(ctx context.Context, input BannerInput) (*Banner, error) {
	var b Banner
	if err := c.do(ctx, "POST", "/admin/banners", input, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteBanner removes a banner.
func (c *Client) DeleteBanner(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/admin/banners/"+url.PathEscape(id), nil, nil)
}

// UpdatePaymentSettings replaces the payment configuration.
func (c *Client) UpdatePaymentSettings(ctx context.Context, settings PaymentSettings) error {
	return c.do(ctx, "PUT", "/admin/payment-settings", settings, nil)
}

// InquiryRecord is a submitted support inquiry as the back office sees it.
type InquiryRecord struct {
	Inquiry
	Status    string    `json:"status,omitempty"` // open, answered, closed
	CreatedAt time.Time `json:"createdAt"`
}

// AdminInquiries lists submitted support inquiries.
func (c *Client) AdminInquiries(ctx context.Context) ([]InquiryRecord, error) {
	var inquiries []InquiryRecord
	if err := c.get(ctx, "/admin/inquiries", &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

// Invoice is a billing record attached to an order.
type Invoice struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"` // draft, issued, paid
	IssuedAt  time.Time `json:"issuedAt,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminInvoices lists invoices.
func (c *Client) AdminInvoices(ctx context.Context) ([]Invoice, error) {
	var invoices []Invoice
	if err := c.get(ctx, "/admin/invoices", &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}
