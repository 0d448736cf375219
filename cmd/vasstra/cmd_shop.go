package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vasstra/internal/catalog"
	"vasstra/internal/store"

	"vasstra/cmd/vasstra/ui"
)

var (
	shopCategory string
	shopSizes    []string
	shopColors   []string
	shopMinPrice float64
	shopMaxPrice float64
	shopSort     string
)

// shopCmd lists the catalog with the same facets the storefront offers.
var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse the product catalog",
	Long: `Fetches the catalog and prints it as a table.

Facets combine: category, price range, sizes and colors all have to
match for a product to be listed. Sorting is stable; products that
compare equal keep their catalog order.

Examples:
  vasstra shop --category dresses --max-price 2500
  vasstra shop --size M --size L --color Black --sort price-asc`,
	RunE: runShop,
}

// productCmd shows one product in detail.
var productCmd = &cobra.Command{
	Use:   "product [id]",
	Short: "Show a product's details and stock",
	Args:  cobra.ExactArgs(1),
	RunE:  runProduct,
}

var shopRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recently viewed products",
	RunE: func(cmd *cobra.Command, args []string) error {
		recent, err := app.store.RecentlyViewed()
		if err != nil {
			return err
		}
		if len(recent) == 0 {
			fmt.Println(app.styles.Muted.Render("Nothing viewed yet."))
			return nil
		}
		table := ui.NewSimpleTable("Recently viewed", []string{"ID", "Product", "Price"}).AlignRight(2)
		for _, r := range recent {
			table.AddRow(r.ProductID, r.Name, fmt.Sprintf("₹%.2f", r.Price))
		}
		fmt.Print(table.View(app.styles))
		return nil
	},
}

func runShop(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.GetAPITimeout())
	defer cancel()

	data, err := app.client.FetchShopData(ctx)
	if err != nil {
		return fmt.Errorf("failed to load shop: %w", err)
	}

	sel := catalog.Selection{
		Category: shopCategory,
		Sizes:    shopSizes,
		Colors:   shopColors,
	}
	if shopMinPrice > 0 || shopMaxPrice > 0 {
		sel.PriceRange = [2]float64{shopMinPrice, shopMaxPrice}
	}
	// Resolve the category slug so either form on the product matches.
	for _, c := range data.Categories {
		if strings.EqualFold(c.Name, shopCategory) || strings.EqualFold(c.Slug, shopCategory) {
			sel.CategorySlug = c.Slug
			break
		}
	}

	products := catalog.Filter(data.Products, sel)

	sortKey := shopSort
	if sortKey == "" {
		sortKey = app.cfg.Shop.DefaultSort
	}
	products = catalog.Sort(products, catalog.ParseSortKey(sortKey))

	if len(products) == 0 {
		fmt.Println(app.styles.Muted.Render("No products match the selected filters."))
		return nil
	}

	table := ui.NewSimpleTable(fmt.Sprintf("Vasstra Catalog (%d products)", len(products)),
		[]string{"ID", "Name", "Category", "Price", "Sizes", "Tags"}).AlignRight(3)
	for _, p := range products {
		table.AddRow(p.ID, p.Name, p.Category, formatPrice(p), strings.Join(p.Sizes, " "), productTags(p))
	}
	fmt.Print(table.View(app.styles))
	return nil
}

func runProduct(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.GetAPITimeout())
	defer cancel()

	p, err := app.client.Product(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to load product: %w", err)
	}

	// Viewing a product feeds the recently-viewed shelf.
	_ = app.store.TouchRecentlyViewed(store.RecentProduct{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
	}, app.cfg.Storage.RecentLimit)

	s := app.styles
	fmt.Println(s.Title.Render(p.Name))
	if tags := productTags(p); tags != "" {
		fmt.Println(tags)
	}
	fmt.Printf("%s %s\n", s.Muted.Render("Category:"), p.Category)
	fmt.Printf("%s %s\n", s.Muted.Render("Price:"), formatPrice(p))

	if len(p.StockBySize) > 0 {
		fmt.Println(s.Subtitle.Render("\nStock by size"))
		for _, st := range p.StockBySize {
			line := fmt.Sprintf("  %-4s %d", st.Size, st.Quantity)
			if st.Quantity == 0 {
				line += "  " + s.Error.Render("out of stock")
			}
			fmt.Println(line)
		}
	}
	if len(p.Colors) > 0 {
		fmt.Printf("%s %s\n", s.Muted.Render("Colors:"), strings.Join(p.Colors, ", "))
	}
	return nil
}

// formatPrice renders the price, striking through the original on discount.
func formatPrice(p catalog.Product) string {
	s := app.styles
	price := s.Price.Render(fmt.Sprintf("₹%.2f", p.Price))
	if p.Discounted() {
		return price + " " + s.Strike.Render(fmt.Sprintf("₹%.2f", p.OriginalPrice))
	}
	return price
}

func productTags(p catalog.Product) string {
	s := app.styles
	var tags []string
	if p.IsNew {
		tags = append(tags, s.NewTag.Render("NEW"))
	}
	if p.Discounted() {
		tags = append(tags, s.SaleTag.Render("SALE"))
	}
	if p.IsBestseller {
		tags = append(tags, s.Badge.Render("BESTSELLER"))
	}
	return strings.Join(tags, " ")
}

func init() {
	shopCmd.Flags().StringVarP(&shopCategory, "category", "c", "", "Filter by category name or slug")
	shopCmd.Flags().StringSliceVar(&shopSizes, "size", nil, "Filter by size (repeatable)")
	shopCmd.Flags().StringSliceVar(&shopColors, "color", nil, "Filter by color (repeatable)")
	shopCmd.Flags().Float64Var(&shopMinPrice, "min-price", 0, "Minimum price, inclusive")
	shopCmd.Flags().Float64Var(&shopMaxPrice, "max-price", 0, "Maximum price, inclusive")
	shopCmd.Flags().StringVar(&shopSort, "sort", "", "Sort: featured, price-asc, price-desc, newest")

	shopCmd.AddCommand(shopRecentCmd)
}
