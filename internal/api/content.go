package api

import (
	"context"
	"net/url"
)

// ContactInfo is the storefront contact block. Fetch failure is non-fatal;
// callers fall back to DefaultContactInfo.
type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Hours   string `json:"hours,omitempty"`
}

// DefaultContactInfo is the hardcoded fallback used when GET /contact fails.
func DefaultContactInfo() ContactInfo {
	return ContactInfo{
		Email:   "support@vasstra.com",
		Phone:   "+91 98765 43210",
		Address: "Vasstra HQ, MG Road, Bengaluru",
	}
}

// Contact fetches the storefront contact block, silently falling back to
// the built-in defaults on any failure.
func (c *Client) Contact(ctx context.Context) ContactInfo {
	var info ContactInfo
	if err := c.get(ctx, "/contact", &info); err != nil {
		return DefaultContactInfo()
	}
	if info.Email == "" && info.Phone == "" {
		return DefaultContactInfo()
	}
	return info
}

// Inquiry is a customer support submission.
type Inquiry struct {
	// ID is generated client-side so resubmissions after a transport
	// error can be de-duplicated server-side.
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// SubmitInquiry sends a support inquiry.
func (c *Client) SubmitInquiry(ctx context.Context, inq Inquiry) error {
	return c.do(ctx, "POST", "/inquiries/submit", inq, nil)
}

// SizeChartRow is one row of a product's size chart.
type SizeChartRow struct {
	Size         string  `json:"size"`
	Chest        float64 `json:"chest,omitempty"`
	Waist        float64 `json:"waist,omitempty"`
	Hips         float64 `json:"hips,omitempty"`
	LengthInches float64 `json:"length,omitempty"`
}

// SizeChart is the measurement table for a product.
type SizeChart struct {
	ProductID string         `json:"productId"`
	Unit      string         `json:"unit,omitempty"`
	Rows      []SizeChartRow `json:"rows"`
	Notes     string         `json:"notes,omitempty"` // markdown
}

// ProductSizeChart fetches the size chart for a product.
func (c *Client) ProductSizeChart(ctx context.Context, productID string) (*SizeChart, error) {
	var chart SizeChart
	if err := c.get(ctx, "/size-charts/product/"+url.PathEscape(productID), &chart); err != nil {
		return nil, err
	}
	return &chart, nil
}

// PaymentSettings is the public subset of the payment configuration.
type PaymentSettings struct {
	CODEnabled    bool   `json:"codEnabled"`
	OnlineEnabled bool   `json:"onlineEnabled"`
	UPIID         string `json:"upiId,omitempty"`
	Instructions  string `json:"instructions,omitempty"` // markdown
}

// PublicPaymentSettings fetches the payment options shown at checkout.
func (c *Client) PublicPaymentSettings(ctx context.Context) (*PaymentSettings, error) {
	var settings PaymentSettings
	if err := c.get(ctx, "/admin/payment-settings/public", &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Banner is a storefront hero/promo banner.
type Banner struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Image    string `json:"image"`
	Link     string `json:"link,omitempty"`
	IsActive bool   `json:"isActive"`
}

// Banners fetches the active storefront banners.
func (c *Client) Banners(ctx context.Context) ([]Banner, error) {
	var banners []Banner
	if err := c.get(ctx, "/banners", &banners); err != nil {
		return nil, err
	}
	return banners, nil
}
