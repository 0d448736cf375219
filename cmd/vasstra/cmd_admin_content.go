package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vasstra/internal/api"

	"vasstra/cmd/vasstra/ui"
)

var (
	bannerTitle    string
	bannerSubtitle string
	bannerImage    string
	bannerLink     string
	paymentsCOD    bool
	paymentsOnline bool
	paymentsUPI    string
)

var adminBannerCreateCmd = &cobra.Command{
	Use:   "banner-create",
	Short: "Create a storefront banner",
	RunE: func(cmd *cobra.Command, args []string) error {
		if bannerTitle == "" || bannerImage == "" {
			return fmt.Errorf("--title and --image are required")
		}
		ctx, cancel := adminContext()
		defer cancel()

		b, err := app.client.CreateBanner(ctx, api.BannerInput{
			Title:    bannerTitle,
			Subtitle: bannerSubtitle,
			Image:    bannerImage,
			Link:     bannerLink,
			IsActive: true,
		})
		if err != nil {
			return err
		}
		fmt.Println(app.styles.Success.Render(fmt.Sprintf("Banner %s created.", b.ID)))
		return nil
	},
}

var adminBannerDeleteCmd = &cobra.Command{
	Use:   "banner-delete [id]",
	Short: "Delete a banner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := adminContext()
		defer cancel()

		if err := app.client.DeleteBanner(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println(app.styles.Success.Render("Banner deleted."))
		return nil
	},
}

var adminPaymentsCmd = &cobra.Command{
	Use:   "payment-settings",
	Short: "Update the payment configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := adminContext()
		defer cancel()

		settings := api.PaymentSettings{
			CODEnabled:    paymentsCOD,
			OnlineEnabled: paymentsOnline,
			UPIID:         paymentsUPI,
		}
		if err := app.client.UpdatePaymentSettings(ctx, settings); err != nil {
			return err
		}
		fmt.Println(app.styles.Success.Render("Payment settings updated."))
		return nil
	},
}

var adminInquiriesCmd = &cobra.Command{
	Use:   "inquiries",
	Short: "List support inquiries",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := adminContext()
		defer cancel()

		inquiries, err := app.client.AdminInquiries(ctx)
		if err != nil {
			return err
		}
		table := ui.NewSimpleTable("Inquiries", []string{"Received", "From", "Subject", "Status"})
		for _, inq := range inquiries {
			table.AddRow(inq.CreatedAt.Format("02 Jan 2006"), inq.Email, inq.Subject, inq.Status)
		}
		fmt.Print(table.View(app.styles))
		return nil
	},
}

var adminInvoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "List invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := adminContext()
		defer cancel()

		invoices, err := app.client.AdminInvoices(ctx)
		if err != nil {
			return err
		}
		table := ui.NewSimpleTable("Invoices", []string{"ID", "Order", "Amount", "Status"}).AlignRight(2)
		for _, inv := range invoices {
			table.AddRow(inv.ID, inv.OrderID, fmt.Sprintf("₹%.2f", inv.Amount), inv.Status)
		}
		fmt.Print(table.View(app.styles))
		return nil
	},
}

func init() {
	adminBannerCreateCmd.Flags().StringVar(&bannerTitle, "title", "", "Banner headline")
	adminBannerCreateCmd.Flags().StringVar(&bannerSubtitle, "subtitle", "", "Banner subline")
	adminBannerCreateCmd.Flags().StringVar(&bannerImage, "image", "", "Banner image URL")
	adminBannerCreateCmd.Flags().StringVar(&bannerLink, "link", "", "Click-through link")

	adminPaymentsCmd.Flags().BoolVar(&paymentsCOD, "cod", true, "Enable cash on delivery")
	adminPaymentsCmd.Flags().BoolVar(&paymentsOnline, "online", true, "Enable online payment")
	adminPaymentsCmd.Flags().StringVar(&paymentsUPI, "upi", "", "UPI id shown at checkout")

	adminCmd.AddCommand(adminBannerCreateCmd)
	adminCmd.AddCommand(adminBannerDeleteCmd)
	adminCmd.AddCommand(adminPaymentsCmd)
	adminCmd.AddCommand(adminInquiriesCmd)
	adminCmd.AddCommand(adminInvoicesCmd)
}
