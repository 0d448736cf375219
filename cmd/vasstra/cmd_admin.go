package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vasstra/internal/api"
	"vasstra/internal/order"

	"vasstra/cmd/vasstra/ui"
)

var (
	adminOrderStatus   string
	adminTrackingID    string
	adminTrackMessage  string
	adminTrackLocation string
	adminUserName      string
	adminUserRole      string
	adminProductFile   string
	couponType         string
	couponValue        float64
	couponMinAmount    float64
	couponExpires      string
)

// adminCmd groups the back-office operations. Every subcommand refuses
// to run without an admin session.
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Back-office operations (admin role required)",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Root PersistentPreRunE does not chain automatically.
		if parent := cmd.Root(); parent.PersistentPreRunE != nil {
			if err := parent.PersistentPreRunE(cmd, args); err != nil {
				return err
			}
		}
		if _, err := app.session.RequireAdmin(); err != nil {
			return fmt.Errorf("admin access required: %w", err)
		}
		return nil
	},
}

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show store-wide dashboard numbers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := adminContext()
		defer cancel()

		stats, err := app.client.AdminStats(ctx)
		if err != nil {
			return err
		}
		s := app.styles
		fmt.Println(s.Title.Render("Store dashboard"))
		fmt.Printf("%s %d\n", s.Muted.Render("Orders:"), stats.TotalOrders)
		fmt.Printf("%s ₹%.2f\n", s.Muted.Render("Revenue:"), stats.TotalRevenue)
		fmt.Printf("%s %d\n", s.Muted.Render("Users:"), stats.TotalUsers)
		fmt.Printf("%s %d\n", s.Muted.Render("Products:"), stats.TotalProducts)
		fmt.Printf("%s %d\n", s.Muted.Render("Pending orders:"), stats.PendingOrders)
		return nil
	},
}

var adminProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "List all products, including inactive ones",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := adminContext()
		defer cancel()

		products, err := app.client.AdminProducts(ctx)
		if err != nil {
			return err
		}
		table := ui.NewSimpleTable("All products", []string{"ID", "Name", "Category", "Price", "Active"}).AlignRight(3)
		for _, p := range products {
			active := "yes"
			if !p.IsActive {
				active = "no"
			}
			table.AddRow(p.ID, p.Name, p.Category, fmt.Sprintf("₹%.2f", p.Price), active)
		}
		fmt.Print(table.View(app.styles))
		return nil
	},
}

var adminProductCreateCmd = &cobra.Command{
	Use:   "product-create",
	Short: "Create a product from a JSON file",
	Long: `Reads a product definition from the --file JSON and creates it.

The JSON mirrors the product shape: name, price, category, sizes,
colors, stockBySize, and the isNew/isBestseller/isActive flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := loadProductInput(adminProductFile)
		if err != nil {
			return err
		}
		ctx, cancel := adminContext()
		defer cancel()

		p, err := app.client.CreateProduct(ctx, input)
		if err != nil {
			return err
		}
		fmt.Println(app.styles.Success.Render(fmt.Sprintf("Created %s (%s).", p.Name, p.ID)))
		return nil
	},
}

var adminProductUpdateCmd = &cobra.Command{
	Use:   "product-update [id]",
	Short: "Update a product from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := loadProductInput(adminProductFile)
		if err != nil {
			return err
		}
		ctx, cancel := adminContext()
		defer cancel()

		p, err := app.client.UpdateProduct(ctx, args[0], input)
		if err != nil {
			return err
		}
		fmt.Println(app.styles.Success.Render(fmt.Sprintf("Updated %s.", p.Name)))
		return nil
	},
}

var adminProductDeleteCmd = &cobra.Command{
	Use:   "product-delete [id]",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := adminContext()
		defer cancel()

		if err := app.client.DeleteProduct(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println(app.styles.Success.Render("Product deleted."))
		return nil
	},
}

var adminOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List all orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := adminContext()
		defer cancel()

		orders, err := app.client.AdminOrders(ctx)
		if err != nil {
			return err
		}
		table := ui.NewSimpleTable("All orders", []string{"ID", "Placed", "Total", "Status", "Tracking"}).AlignRight(2)
		for _, o := range orders {
			table.AddRow(o.ID, o.CreatedAt.Format("02 Jan 2006"), fmt.Sprintf("₹%.2f", o.Total), o.RawStatus, o.TrackingID)
		}
		fmt.Print(table.View(app.styles))
		return nil
	},
}

var adminOrderUpdateCmd = &cobra.Command{
	Use:   "order-update [id]",
	Short: "Update an order's status or append a tracking event",
	Long: `Mutates an order server-side. Status transitions, the tracking id,
and courier events all go through here; the storefront itself never
changes an order.

Examples:
  vasstra admin order-update ord-1 --status shipped --tracking-id TRK123
  vasstra admin order-update ord-1 --track-message "Out for delivery" --track-location Pune`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		update := api.OrderUpdate{
			Status:     adminOrderStatus,
			TrackingID: adminTrackingID,
		}
		if adminTrackMessage != "" || adminTrackLocation != "" {
			update.TrackingUpdate = &order.TrackingUpdate{
				Status:   adminOrderStatus,
				Message:  adminTrackMessage,
				Location: adminTrackLocation,
			}
		}
		if update.Status == "" && update.TrackingID == "" && update.TrackingUpdate == nil {
			return fmt.Errorf("nothing to update; pass --status, --tracking-id or --track-message")
		}

		ctx, cancel := adminContext()
		defer cancel()

		o, err := app.client.UpdateOrder(ctx, args[0], update)
		if err != nil {
			return err
		}
		fmt.Println(app.styles.Success.Render(fmt.Sprintf("Order %s is now %s.", o.ID, o.RawStatus)))
		return nil
	},
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered users",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := adminContext()
		defer cancel()

		users, err := app.client.AdminUsers(ctx)
		if err != nil {
			return err
		}
		table := ui.NewSimpleTable("Users", []string{"ID", "Name", "Email", "Role"})
		for _, u := range users {
			table.AddRow(u.ID, u.Name, u.Email, u.Role)
		}
		fmt.Print(table.View(app.styles))
		return nil
	},
}

var adminUserUpdateCmd = &cobra.Command{
	Use:   "user-update [id]",
	Short: "Update a user's name or role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var update api.UserUpdate
		if cmd.Flags().Changed("name") {
			update.Name = &adminUserName
		}
		if cmd.Flags().Changed("role") {
			update.Role = &adminUserRole
		}
		if update.Name == nil && update.Role == nil {
			return fmt.Errorf("nothing to update; pass --name or --role")
		}

		ctx, cancel := adminContext()
		defer cancel()

		u, err := app.client.UpdateUser(ctx, args[0], update)
		if err != nil {
			return err
		}
		fmt.Println(app.styles.Success.Render(fmt.Sprintf("Updated %s.", u.Email)))
		return nil
	},
}

var adminUserDeleteCmd = &cobra.Command{
	Use:   "user-delete [id]",
	Short: "Delete a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := adminContext()
		defer cancel()

		if err := app.client.DeleteUser(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println(app.styles.Success.Render("User deleted."))
		return nil
	},
}

var adminCouponsCmd = &cobra.Command{
	Use:   "coupons",
	Short: "List coupons",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := adminContext()
		defer cancel()

		coupons, err := app.client.AdminCoupons(ctx)
		if err != nil {
			return err
		}
		table := ui.NewSimpleTable("Coupons", []string{"Code", "Type", "Value", "Min order"}).AlignRight(2, 3)
		for _, c := range coupons {
			table.AddRow(c.Code, c.DiscountType, fmt.Sprintf("%.2f", c.DiscountValue), fmt.Sprintf("%.2f", c.MinOrderAmount))
		}
		fmt.Print(table.View(app.styles))
		return nil
	},
}

var adminCouponCreateCmd = &cobra.Command{
	Use:   "coupon-create [code]",
	Short: "Create a coupon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if couponType != "percent" && couponType != "fixed" {
			return fmt.Errorf("--type must be percent or fixed")
		}
		ctx, cancel := adminContext()
		defer cancel()

		input := api.CouponInput{
			Code:           args[0],
			DiscountType:   couponType,
			DiscountValue:  couponValue,
			MinOrderAmount: couponMinAmount,
			ExpiresAt:      couponExpires,
			IsActive:       true,
		}
		if err := app.client.CreateCoupon(ctx, input); err != nil {
			return err
		}
		fmt.Println(app.styles.Success.Render("Coupon created."))
		return nil
	},
}

var adminCouponDeleteCmd = &cobra.Command{
	Use:   "coupon-delete [code]",
	Short: "Delete a coupon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := adminContext()
		defer cancel()

		if err := app.client.DeleteCoupon(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println(app.styles.Success.Render("Coupon deleted."))
		return nil
	},
}

func adminContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), app.cfg.GetAPITimeout())
}

func loadProductInput(path string) (api.ProductInput, error) {
	if path == "" {
		return api.ProductInput{}, fmt.Errorf("--file is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return api.ProductInput{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var input api.ProductInput
	if err := json.Unmarshal(data, &input); err != nil {
		return api.ProductInput{}, fmt.Errorf("invalid product JSON: %w", err)
	}
	if input.Name == "" || input.Price <= 0 {
		return api.ProductInput{}, fmt.Errorf("product needs a name and a positive price")
	}
	return input, nil
}

func init() {
	adminOrderUpdateCmd.Flags().StringVar(&adminOrderStatus, "status", "", "New order status")
	adminOrderUpdateCmd.Flags().StringVar(&adminTrackingID, "tracking-id", "", "Assign a tracking id")
	adminOrderUpdateCmd.Flags().StringVar(&adminTrackMessage, "track-message", "", "Courier event message")
	adminOrderUpdateCmd.Flags().StringVar(&adminTrackLocation, "track-location", "", "Courier event location")

	adminUserUpdateCmd.Flags().StringVar(&adminUserName, "name", "", "New display name")
	adminUserUpdateCmd.Flags().StringVar(&adminUserRole, "role", "", "New role: user or admin")

	adminProductCreateCmd.Flags().StringVar(&adminProductFile, "file", "", "Product JSON file")
	adminProductUpdateCmd.Flags().StringVar(&adminProductFile, "file", "", "Product JSON file")

	adminCouponCreateCmd.Flags().StringVar(&couponType, "type", "percent", "Discount type: percent or fixed")
	adminCouponCreateCmd.Flags().Float64Var(&couponValue, "value", 0, "Discount value")
	adminCouponCreateCmd.Flags().Float64Var(&couponMinAmount, "min-amount", 0, "Minimum order amount")
	adminCouponCreateCmd.Flags().StringVar(&couponExpires, "expires", "", "Expiry date (RFC3339)")

	adminCmd.AddCommand(adminStatsCmd)
	adminCmd.AddCommand(adminProductsCmd)
	adminCmd.AddCommand(adminProductCreateCmd)
	adminCmd.AddCommand(adminProductUpdateCmd)
	adminCmd.AddCommand(adminProductDeleteCmd)
	adminCmd.AddCommand(adminOrdersCmd)
	adminCmd.AddCommand(adminOrderUpdateCmd)
	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminUserUpdateCmd)
	adminCmd.AddCommand(adminCouponsCmd)
	adminCmd.AddCommand(adminCouponCreateCmd)
	adminCmd.AddCommand(adminCouponDeleteCmd)
	adminCmd.AddCommand(adminUserDeleteCmd)
}
