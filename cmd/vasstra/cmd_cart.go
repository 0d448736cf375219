package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vasstra/internal/store"

	"vasstra/cmd/vasstra/ui"
)

var (
	cartSize     string
	cartColor    string
	cartQuantity int
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the local shopping cart",
	RunE:  runCartList,
}

var cartAddCmd = &cobra.Command{
	Use:   "add [product-id]",
	Short: "Add a product to the cart",
	Long: `Adds a product to the cart. The same product in the same size and
color merges into one line; a different size or color is its own line.

Example:
  vasstra cart add prod-42 --size M --color Black --quantity 2`,
	Args: cobra.ExactArgs(1),
	RunE: runCartAdd,
}

var cartListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show cart contents and subtotal",
	RunE:  runCartList,
}

var cartSetCmd = &cobra.Command{
	Use:   "set [product-id] [quantity]",
	Short: "Set a cart line's quantity (0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE:  runCartSet,
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove [product-id]",
	Short: "Remove a cart line",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartRemove,
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.store.ClearCart(); err != nil {
			return err
		}
		fmt.Println(app.styles.Success.Render("Cart cleared."))
		return nil
	},
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.GetAPITimeout())
	defer cancel()

	// Fetch the product so the cart line carries a price snapshot.
	p, err := app.client.Product(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to load product: %w", err)
	}

	if cartSize != "" && !p.HasSize(cartSize) {
		return fmt.Errorf("%s is not available in size %s", p.Name, cartSize)
	}
	if cartColor != "" && !p.HasColor(cartColor) {
		return fmt.Errorf("%s is not available in %s", p.Name, cartColor)
	}

	item := store.CartItem{
		ProductID:     p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Size:          cartSize,
		Color:         cartColor,
		Category:      p.Category,
		Quantity:      cartQuantity,
	}
	if err := app.store.AddCartItem(item); err != nil {
		return err
	}

	fmt.Println(app.styles.Success.Render(fmt.Sprintf("Added %s to cart.", p.Name)))
	return nil
}

func runCartList(cmd *cobra.Command, args []string) error {
	items, err := app.store.CartItems()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println(app.styles.Muted.Render("Your cart is empty."))
		return nil
	}

	table := ui.NewSimpleTable("Cart", []string{"Product", "Size", "Color", "Qty", "Price", "Line"}).AlignRight(3, 4, 5)
	for _, it := range items {
		table.AddRow(it.Name, it.Size, it.Color,
			fmt.Sprintf("%d", it.Quantity),
			fmt.Sprintf("₹%.2f", it.Price),
			fmt.Sprintf("₹%.2f", it.LineTotal()))
	}
	fmt.Print(table.View(app.styles))

	subtotal, err := app.store.CartSubtotal()
	if err != nil {
		return err
	}
	totals, err := cartTotalsPreview(subtotal)
	if err != nil {
		return err
	}
	s := app.styles
	fmt.Printf("%s %s\n", s.Muted.Render("Subtotal:"), s.Price.Render(fmt.Sprintf("₹%.2f", totals.Subtotal)))
	if totals.FreeShipping {
		fmt.Printf("%s %s\n", s.Muted.Render("Shipping:"), s.Success.Render("FREE"))
	} else {
		fmt.Printf("%s ₹%.2f\n", s.Muted.Render("Shipping:"), totals.Shipping)
	}
	fmt.Printf("%s %s\n", s.Muted.Render("Total:"), s.Price.Render(fmt.Sprintf("₹%.2f", totals.Total)))
	return nil
}

func runCartSet(cmd *cobra.Command, args []string) error {
	var qty int
	if _, err := fmt.Sscanf(args[1], "%d", &qty); err != nil || qty < 0 {
		return fmt.Errorf("quantity must be a non-negative integer, got %q", args[1])
	}
	if err := app.store.SetCartQuantity(args[0], cartSize, cartColor, qty); err != nil {
		return err
	}
	if qty == 0 {
		fmt.Println(app.styles.Success.Render("Line removed."))
	} else {
		fmt.Println(app.styles.Success.Render(fmt.Sprintf("Quantity set to %d.", qty)))
	}
	return nil
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	if err := app.store.RemoveCartItem(args[0], cartSize, cartColor); err != nil {
		return err
	}
	fmt.Println(app.styles.Success.Render("Line removed."))
	return nil
}

func init() {
	for _, c := range []*cobra.Command{cartAddCmd, cartSetCmd, cartRemoveCmd} {
		c.Flags().StringVar(&cartSize, "size", "", "Size variant")
		c.Flags().StringVar(&cartColor, "color", "", "Color variant")
	}
	cartAddCmd.Flags().IntVarP(&cartQuantity, "quantity", "q", 1, "Quantity to add")

	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartListCmd)
	cartCmd.AddCommand(cartSetCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartClearCmd)
}
