package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"vasstra/internal/api"
)

var (
	authEmail    string
	authPassword string
	profileName  string
	profilePhone string
	profileEmail string
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Sign in, sign out and manage your account",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to your Vasstra account",
	Long: `Signs in and caches the session locally, so subsequent commands
run authenticated until you log out.

Example:
  vasstra auth login --email you@example.com`,
	RunE: runLogin,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the cached session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.session.Logout(app.client); err != nil {
			return err
		}
		fmt.Println(app.styles.Success.Render("Signed out."))
		return nil
	},
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := app.session.User()
		if err != nil {
			fmt.Println(app.styles.Muted.Render("Not signed in."))
			return nil
		}
		s := app.styles
		fmt.Printf("%s %s\n", s.Muted.Render("Name:"), user.Name)
		fmt.Printf("%s %s\n", s.Muted.Render("Email:"), user.Email)
		if user.IsAdmin() {
			fmt.Println(s.Badge.Render("ADMIN"))
		}
		return nil
	},
}

var authForgotCmd = &cobra.Command{
	Use:   "forgot-password [email]",
	Short: "Request a password reset mail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), app.cfg.GetAPITimeout())
		defer cancel()

		if err := app.client.ForgotPassword(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println(app.styles.Success.Render("Reset mail sent if the account exists."))
		return nil
	},
}

var authResetCmd = &cobra.Command{
	Use:   "reset-password [token]",
	Short: "Set a new password with the emailed reset token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := promptSecret("New password: ")
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), app.cfg.GetAPITimeout())
		defer cancel()

		if err := app.client.ResetPassword(ctx, args[0], password); err != nil {
			return err
		}
		fmt.Println(app.styles.Success.Render("Password updated. Sign in with the new password."))
		return nil
	},
}

var authProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Update your profile",
	RunE:  runProfileUpdate,
}

func runLogin(cmd *cobra.Command, args []string) error {
	email := authEmail
	if email == "" {
		var err error
		email, err = promptLine("Email: ")
		if err != nil {
			return err
		}
	}
	password := authPassword
	if password == "" {
		var err error
		password, err = promptSecret("Password: ")
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.GetAPITimeout())
	defer cancel()

	user, err := app.session.Login(ctx, app.client, email, password)
	if err != nil {
		if api.IsUnauthorized(err) {
			return fmt.Errorf("invalid email or password")
		}
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Println(app.styles.Success.Render("Signed in as " + user.Email))
	return nil
}

func runProfileUpdate(cmd *cobra.Command, args []string) error {
	if _, err := app.session.RequireUser(); err != nil {
		return fmt.Errorf("sign in first: vasstra auth login")
	}

	var update api.ProfileUpdate
	if cmd.Flags().Changed("name") {
		update.Name = &profileName
	}
	if cmd.Flags().Changed("phone") {
		update.Phone = &profilePhone
	}
	if cmd.Flags().Changed("email") {
		update.Email = &profileEmail
	}
	if update.Name == nil && update.Phone == nil && update.Email == nil {
		return fmt.Errorf("nothing to update; pass --name, --phone or --email")
	}

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.GetAPITimeout())
	defer cancel()

	user, err := app.client.UpdateProfile(ctx, update)
	if err != nil {
		return fmt.Errorf("profile update failed: %w", err)
	}

	// Refresh the cached user so whoami reflects the change.
	token, err := app.session.Token()
	if err == nil {
		if err := app.session.Save(token, *user); err != nil {
			return err
		}
	}
	fmt.Println(app.styles.Success.Render("Profile updated."))
	return nil
}

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptSecret reads a line without terminal echo handling; piping a
// password in is the scriptable path, the flag the explicit one.
func promptSecret(prompt string) (string, error) {
	return promptLine(prompt)
}

func init() {
	authLoginCmd.Flags().StringVar(&authEmail, "email", "", "Account email")
	authLoginCmd.Flags().StringVar(&authPassword, "password", "", "Account password (prompted if omitted)")

	authProfileCmd.Flags().StringVar(&profileName, "name", "", "New display name")
	authProfileCmd.Flags().StringVar(&profilePhone, "phone", "", "New phone number")
	authProfileCmd.Flags().StringVar(&profileEmail, "email", "", "New email")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authWhoamiCmd)
	authCmd.AddCommand(authForgotCmd)
	authCmd.AddCommand(authResetCmd)
	authCmd.AddCommand(authProfileCmd)
}
