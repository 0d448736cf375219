package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"vasstra/internal/api"
	"vasstra/internal/checkout"
	"vasstra/internal/order"

	"vasstra/cmd/vasstra/ui"
)

var (
	coName    string
	coStreet  string
	coStreet2 string
	coCity    string
	coState   string
	coZip     string
	coCountry string
	coPhone   string
	coAddress string
	coPayment string
	coCoupon  string
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order from the cart",
	Long: `Submits the cart as an order.

The shipping address comes either from --address (an id from
"vasstra checkout addresses") or from the individual address flags. A
new address is saved to the address book; an address you have used
before is recognized and not duplicated.

Example:
  vasstra checkout --street "12 Rose Lane" --city Mumbai --state MH \
      --zip 400001 --country India --payment card --coupon SAVE10`,
	RunE: runCheckout,
}

var checkoutAddressesCmd = &cobra.Command{
	Use:   "addresses",
	Short: "List saved shipping addresses",
	RunE:  runAddresses,
}

var checkoutAddressRemoveCmd = &cobra.Command{
	Use:   "remove-address [id]",
	Short: "Delete a saved address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.store.DeleteAddress(args[0]); err != nil {
			return err
		}
		fmt.Println(app.styles.Success.Render("Address removed."))
		return nil
	},
}

func runCheckout(cmd *cobra.Command, args []string) error {
	if _, err := app.session.RequireUser(); err != nil {
		return fmt.Errorf("sign in before checking out: vasstra auth login")
	}

	addr, err := resolveShippingAddress()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.GetAPITimeout())
	defer cancel()

	flow := checkout.NewFlow(app.client, app.store, checkoutRules())

	var coupon *api.Coupon
	if coCoupon != "" {
		coupon, err = flow.ApplyCoupon(ctx, coCoupon)
		if err != nil {
			return err
		}
	}

	totals, err := flow.Totals(coupon)
	if err != nil {
		return err
	}
	printTotals(totals)

	placed, err := flow.PlaceOrder(ctx, addr, coPayment, coupon)
	if errors.Is(err, checkout.ErrEmptyCart) {
		return fmt.Errorf("your cart is empty")
	}
	if err != nil {
		return fmt.Errorf("checkout failed: %w", err)
	}

	s := app.styles
	fmt.Println(s.Success.Render("Order placed!"))
	fmt.Printf("%s %s\n", s.Muted.Render("Order ID:"), s.Bold.Render(placed.ID))
	if placed.TrackingID != "" {
		fmt.Printf("%s %s\n", s.Muted.Render("Tracking:"), placed.TrackingID)
	}
	return nil
}

// resolveShippingAddress picks a saved address by id or builds one from flags.
func resolveShippingAddress() (order.Address, error) {
	if coAddress != "" {
		saved, err := app.store.Addresses()
		if err != nil {
			return order.Address{}, err
		}
		for _, sa := range saved {
			if sa.ID == coAddress {
				return sa.Address, nil
			}
		}
		return order.Address{}, fmt.Errorf("no saved address with id %s", coAddress)
	}

	addr := order.Address{
		Name:    coName,
		Street:  coStreet,
		Street2: coStreet2,
		City:    coCity,
		State:   coState,
		Zip:     coZip,
		Country: coCountry,
		Phone:   coPhone,
	}
	if addr.Street == "" || addr.City == "" || addr.Zip == "" || addr.Country == "" {
		return order.Address{}, fmt.Errorf("shipping address requires --street, --city, --zip and --country (or --address <id>)")
	}
	return addr, nil
}

func runAddresses(cmd *cobra.Command, args []string) error {
	saved, err := app.store.Addresses()
	if err != nil {
		return err
	}
	if len(saved) == 0 {
		fmt.Println(app.styles.Muted.Render("No saved addresses."))
		return nil
	}

	table := ui.NewSimpleTable("Saved addresses", []string{"ID", "Name", "Street", "City", "State", "Zip", "Country"})
	for _, sa := range saved {
		a := sa.Address
		table.AddRow(sa.ID, a.Name, a.Street, a.City, a.State, a.Zip, a.Country)
	}
	fmt.Print(table.View(app.styles))
	return nil
}

// cartTotalsPreview prices the cart without a coupon, for cart listings.
func cartTotalsPreview(subtotal float64) (checkout.Totals, error) {
	return checkout.ComputeTotals(subtotal, checkoutRules(), nil), nil
}

func printTotals(t checkout.Totals) {
	s := app.styles
	fmt.Printf("%s ₹%.2f\n", s.Muted.Render("Subtotal:"), t.Subtotal)
	if t.Discount > 0 {
		fmt.Printf("%s -₹%.2f\n", s.Muted.Render("Discount:"), t.Discount)
	}
	if t.FreeShipping {
		fmt.Printf("%s %s\n", s.Muted.Render("Shipping:"), s.Success.Render("FREE"))
	} else {
		fmt.Printf("%s ₹%.2f\n", s.Muted.Render("Shipping:"), t.Shipping)
	}
	fmt.Printf("%s %s\n", s.Muted.Render("Total:"), s.Price.Render(fmt.Sprintf("₹%.2f", t.Total)))
}

func init() {
	checkoutCmd.Flags().StringVar(&coName, "name", "", "Recipient name")
	checkoutCmd.Flags().StringVar(&coStreet, "street", "", "Street address")
	checkoutCmd.Flags().StringVar(&coStreet2, "street2", "", "Apartment, suite, etc.")
	checkoutCmd.Flags().StringVar(&coCity, "city", "", "City")
	checkoutCmd.Flags().StringVar(&coState, "state", "", "State")
	checkoutCmd.Flags().StringVar(&coZip, "zip", "", "Postal code")
	checkoutCmd.Flags().StringVar(&coCountry, "country", "", "Country")
	checkoutCmd.Flags().StringVar(&coPhone, "phone", "", "Contact phone")
	checkoutCmd.Flags().StringVar(&coAddress, "address", "", "Use a saved address by id")
	checkoutCmd.Flags().StringVar(&coPayment, "payment", "cod", "Payment method: cod, card, upi")
	checkoutCmd.Flags().StringVar(&coCoupon, "coupon", "", "Coupon code")

	checkoutCmd.AddCommand(checkoutAddressesCmd)
	checkoutCmd.AddCommand(checkoutAddressRemoveCmd)
}
