package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"vasstra/internal/api"

	"vasstra/cmd/vasstra/ui"
)

var (
	inquiryName    string
	inquiryEmail   string
	inquirySubject string
	inquiryMessage string
)

var contentCmd = &cobra.Command{
	Use:   "store",
	Short: "Storefront content: contact, banners, size charts",
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Show contact information",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), app.cfg.GetAPITimeout())
		defer cancel()

		// Falls back to built-in contact details when the API is down.
		info := app.client.Contact(ctx)

		s := app.styles
		fmt.Println(s.Title.Render("Contact Vasstra"))
		fmt.Printf("%s %s\n", s.Muted.Render("Email:"), info.Email)
		fmt.Printf("%s %s\n", s.Muted.Render("Phone:"), info.Phone)
		fmt.Printf("%s %s\n", s.Muted.Render("Address:"), info.Address)
		if info.Hours != "" {
			fmt.Printf("%s %s\n", s.Muted.Render("Hours:"), info.Hours)
		}
		return nil
	},
}

var inquiryCmd = &cobra.Command{
	Use:   "inquire",
	Short: "Send a support inquiry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if inquiryMessage == "" {
			return fmt.Errorf("--message is required")
		}
		if inquiryEmail == "" {
			if user, err := app.session.User(); err == nil {
				inquiryEmail = user.Email
				if inquiryName == "" {
					inquiryName = user.Name
				}
			} else {
				return fmt.Errorf("--email is required when not signed in")
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), app.cfg.GetAPITimeout())
		defer cancel()

		inq := api.Inquiry{
			ID:      uuid.NewString(),
			Name:    inquiryName,
			Email:   inquiryEmail,
			Subject: inquirySubject,
			Message: inquiryMessage,
		}
		if err := app.client.SubmitInquiry(ctx, inq); err != nil {
			return fmt.Errorf("failed to send inquiry: %w", err)
		}
		fmt.Println(app.styles.Success.Render("Inquiry sent. We'll get back to you by email."))
		return nil
	},
}

var sizeChartCmd = &cobra.Command{
	Use:   "size-chart [product-id]",
	Short: "Show a product's size chart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), app.cfg.GetAPITimeout())
		defer cancel()

		chart, err := app.client.ProductSizeChart(ctx, args[0])
		if err != nil {
			if api.IsNotFound(err) {
				fmt.Println(app.styles.Muted.Render("No size chart for this product."))
				return nil
			}
			return err
		}

		unit := chart.Unit
		if unit == "" {
			unit = "in"
		}
		table := ui.NewSimpleTable(fmt.Sprintf("Size chart (%s)", unit),
			[]string{"Size", "Chest", "Waist", "Hips", "Length"}).AlignRight(1, 2, 3, 4)
		for _, row := range chart.Rows {
			table.AddRow(row.Size,
				fmt.Sprintf("%.1f", row.Chest),
				fmt.Sprintf("%.1f", row.Waist),
				fmt.Sprintf("%.1f", row.Hips),
				fmt.Sprintf("%.1f", row.LengthInches))
		}
		fmt.Print(table.View(app.styles))

		if chart.Notes != "" {
			fmt.Print(renderMarkdown(chart.Notes))
		}
		return nil
	},
}

var bannersCmd = &cobra.Command{
	Use:   "banners",
	Short: "Show active storefront banners",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), app.cfg.GetAPITimeout())
		defer cancel()

		banners, err := app.client.Banners(ctx)
		if err != nil {
			return err
		}
		s := app.styles
		for _, b := range banners {
			if !b.IsActive {
				continue
			}
			fmt.Println(s.Subtitle.Render(b.Title))
			if b.Subtitle != "" {
				fmt.Println(s.Body.Render(b.Subtitle))
			}
			if b.Link != "" {
				fmt.Println(s.Muted.Render(b.Link))
			}
			fmt.Println()
		}
		return nil
	},
}

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "Show available payment options",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), app.cfg.GetAPITimeout())
		defer cancel()

		settings, err := app.client.PublicPaymentSettings(ctx)
		if err != nil {
			return err
		}
		s := app.styles
		fmt.Println(s.Title.Render("Payment options"))
		if settings.CODEnabled {
			fmt.Println(s.Body.Render("• Cash on delivery"))
		}
		if settings.OnlineEnabled {
			line := "• Online payment"
			if settings.UPIID != "" {
				line += " (UPI: " + settings.UPIID + ")"
			}
			fmt.Println(s.Body.Render(line))
		}
		if settings.Instructions != "" {
			fmt.Print(renderMarkdown(settings.Instructions))
		}
		return nil
	},
}

// renderMarkdown renders server-supplied markdown for the terminal,
// falling back to the raw text when rendering fails.
func renderMarkdown(md string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return md + "\n"
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md + "\n"
	}
	return out
}

func init() {
	inquiryCmd.Flags().StringVar(&inquiryName, "name", "", "Your name")
	inquiryCmd.Flags().StringVar(&inquiryEmail, "email", "", "Reply-to email")
	inquiryCmd.Flags().StringVar(&inquirySubject, "subject", "", "Subject line")
	inquiryCmd.Flags().StringVar(&inquiryMessage, "message", "", "Inquiry text")

	contentCmd.AddCommand(contactCmd)
	contentCmd.AddCommand(inquiryCmd)
	contentCmd.AddCommand(sizeChartCmd)
	contentCmd.AddCommand(bannersCmd)
	contentCmd.AddCommand(paymentsCmd)
}
