package api

import (
	"context"
	"net/url"

	"golang.org/x/sync/errgroup"

	"vasstra/internal/catalog"
)

// Products fetches the active product list.
// Records are validated at the boundary; a malformed record fails the fetch.
func (c *Client) Products(ctx context.Context) ([]catalog.Product, error) {
	data, err := c.getRaw(ctx, "/products")
	if err != nil {
		return nil, err
	}
	return catalog.DecodeProducts(data)
}

// Product fetches a single product by id.
func (c *Client) Product(ctx context.Context, id string) (catalog.Product, error) {
	data, err := c.getRaw(ctx, "/products/"+url.PathEscape(id))
	if err != nil {
		return catalog.Product{}, err
	}
	return catalog.DecodeProduct(data)
}

// Categories fetches the category list.
func (c *Client) Categories(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := c.get(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ShopData holds the two independent fetches the shop page issues.
type ShopData struct {
	Products   []catalog.Product
	Categories []catalog.Category
}

// FetchShopData loads products and categories in parallel. The fetches
// are independent and unordered relative to each other; each lands in
// its own field.
func (c *Client) FetchShopData(ctx context.Context) (*ShopData, error) {
	var data ShopData

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, err := c.Products(ctx)
		if err != nil {
			return err
		}
		data.Products = products
		return nil
	})
	g.Go(func() error {
		categories, err := c.Categories(ctx)
		if err != nil {
			return err
		}
		data.Categories = categories
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}
