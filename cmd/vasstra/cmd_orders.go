package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vasstra/internal/api"
	"vasstra/internal/order"

	"vasstra/cmd/vasstra/ui"
)

var ordersFull bool

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List and track your orders",
	RunE:  runOrdersList,
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your orders",
	RunE:  runOrdersList,
}

var ordersTrackCmd = &cobra.Command{
	Use:   "track [tracking-id]",
	Short: "Track an order by tracking id",
	Long: `Looks up an order by its tracking id and renders its progress.

With courier updates available, the reported history is shown as-is;
otherwise progress is derived from the order status. Use --full for
the five-step dashboard timeline instead of the compact three steps.`,
	Args: cobra.ExactArgs(1),
	RunE: runOrdersTrack,
}

func runOrdersList(cmd *cobra.Command, args []string) error {
	if _, err := app.session.RequireUser(); err != nil {
		return fmt.Errorf("sign in to see your orders: vasstra auth login")
	}

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.GetAPITimeout())
	defer cancel()

	orders, err := app.client.MyOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}
	if len(orders) == 0 {
		fmt.Println(app.styles.Muted.Render("No orders yet."))
		return nil
	}

	table := ui.NewSimpleTable("Your orders", []string{"ID", "Placed", "Items", "Total", "Status", "Tracking"}).AlignRight(2, 3)
	for _, o := range orders {
		table.AddRow(o.ID,
			o.CreatedAt.Format("02 Jan 2006"),
			fmt.Sprintf("%d", len(o.Items)),
			fmt.Sprintf("₹%.2f", o.Total),
			statusLabel(o),
			o.TrackingID)
	}
	fmt.Print(table.View(app.styles))
	return nil
}

func runOrdersTrack(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.GetAPITimeout())
	defer cancel()

	o, err := app.client.TrackOrder(ctx, args[0])
	if errors.Is(err, api.ErrOrderNotFound) {
		return fmt.Errorf("Order not found")
	}
	if err != nil {
		return fmt.Errorf("failed to track order: %w", err)
	}

	fmt.Print(trackingView(o, ordersFull, app.styles))
	return nil
}

// trackingView renders an order's progress. Courier updates, when
// present, are shown verbatim and replace the status-derived timeline;
// only without them is progress inferred from the status.
func trackingView(o *order.Order, full bool, s ui.Styles) string {
	var sb strings.Builder
	sb.WriteString(s.Title.Render("Order " + o.ID))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %s\n", s.Muted.Render("Status:"), statusLabel(*o)))
	sb.WriteString(fmt.Sprintf("%s ₹%.2f\n\n", s.Muted.Render("Total:"), o.Total))

	if o.HasTracking() {
		sb.WriteString(ui.TrackingHistory(o.TrackingUpdates, s))
		return sb.String()
	}

	steps := order.CompactSteps
	if full {
		steps = order.DashboardSteps
	}
	sb.WriteString(ui.Timeline(order.Timeline(steps, o.Status), s))
	return sb.String()
}

// statusLabel prints the order's status, keeping the server's wording
// when it falls outside the known vocabulary.
func statusLabel(o order.Order) string {
	s := app.styles
	switch o.Status {
	case order.StatusDelivered:
		return s.Success.Render(o.RawStatus)
	case order.StatusCancelled:
		return s.Error.Render(o.RawStatus)
	case order.StatusUnknown:
		return s.Warning.Render(o.RawStatus)
	default:
		return s.Info.Render(o.RawStatus)
	}
}

func init() {
	ordersTrackCmd.Flags().BoolVar(&ordersFull, "full", false, "Show the five-step dashboard timeline")

	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersTrackCmd)
}
