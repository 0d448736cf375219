package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vasstra/internal/store"

	"vasstra/cmd/vasstra/ui"
)

var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Manage the wishlist",
	RunE:  runWishlistList,
}

var wishlistAddCmd = &cobra.Command{
	Use:   "add [product-id]",
	Short: "Add a product to the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), app.cfg.GetAPITimeout())
		defer cancel()

		p, err := app.client.Product(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to load product: %w", err)
		}
		item := store.WishlistItem{
			ProductID:     p.ID,
			Name:          p.Name,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			Image:         p.Image,
			Category:      p.Category,
		}
		if err := app.store.AddWishlistItem(item); err != nil {
			return err
		}
		fmt.Println(app.styles.Success.Render(fmt.Sprintf("Added %s to wishlist.", p.Name)))
		return nil
	},
}

var wishlistRemoveCmd = &cobra.Command{
	Use:   "remove [product-id]",
	Short: "Remove a product from the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.store.RemoveWishlistItem(args[0]); err != nil {
			return err
		}
		fmt.Println(app.styles.Success.Render("Removed from wishlist."))
		return nil
	},
}

var wishlistMoveCmd = &cobra.Command{
	Use:   "to-cart [product-id]",
	Short: "Move a wishlist item into the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishlistToCart,
}

func runWishlistList(cmd *cobra.Command, args []string) error {
	items, err := app.store.WishlistItems()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println(app.styles.Muted.Render("Your wishlist is empty."))
		return nil
	}

	table := ui.NewSimpleTable("Wishlist", []string{"ID", "Product", "Category", "Price"}).AlignRight(3)
	for _, it := range items {
		table.AddRow(it.ProductID, it.Name, it.Category, fmt.Sprintf("₹%.2f", it.Price))
	}
	fmt.Print(table.View(app.styles))
	return nil
}

func runWishlistToCart(cmd *cobra.Command, args []string) error {
	items, err := app.store.WishlistItems()
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.ProductID != args[0] {
			continue
		}
		cart := store.CartItem{
			ProductID:     it.ProductID,
			Name:          it.Name,
			Price:         it.Price,
			OriginalPrice: it.OriginalPrice,
			Image:         it.Image,
			Category:      it.Category,
			Quantity:      1,
		}
		if err := app.store.AddCartItem(cart); err != nil {
			return err
		}
		if err := app.store.RemoveWishlistItem(it.ProductID); err != nil {
			return err
		}
		fmt.Println(app.styles.Success.Render(fmt.Sprintf("Moved %s to cart.", it.Name)))
		return nil
	}
	return fmt.Errorf("product %s is not in the wishlist", args[0])
}

func init() {
	wishlistCmd.AddCommand(wishlistAddCmd)
	wishlistCmd.AddCommand(wishlistRemoveCmd)
	wishlistCmd.AddCommand(wishlistMoveCmd)
}
