package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vasstra/internal/api"
	"vasstra/internal/auth"
	"vasstra/internal/checkout"
	"vasstra/internal/config"
	"vasstra/internal/logging"
	"vasstra/internal/store"

	"vasstra/cmd/vasstra/ui"
)

var (
	// Global flags
	verbose    bool
	apiURL     string
	dataDir    string
	configPath string
	timeout    time.Duration

	// Logger
	logger *zap.Logger

	// Shared application state, wired in PersistentPreRunE
	app struct {
		cfg     *config.Config
		client  *api.Client
		store   *store.LocalStore
		session *auth.Session
		styles  ui.Styles
	}
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vasstra",
	Short: "Vasstra - fashion storefront CLI",
	Long: `Vasstra is the terminal storefront for the Vasstra fashion catalog.

Browse the catalog, manage a cart and wishlist, check out, and track
orders against the Vasstra REST API. Cart, wishlist, addresses and the
signed-in session persist locally between invocations.

Run "vasstra browse" for the interactive catalog, or see the
subcommands for scriptable access to every storefront operation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return setupApp()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app.store != nil {
			_ = app.store.Close()
		}
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// setupApp loads configuration and wires the shared client, store and
// session used by every subcommand.
func setupApp() error {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags beat config and env
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	if dataDir != "" {
		cfg.Storage.DataDir = dataDir
	}
	if timeout > 0 {
		cfg.API.Timeout = timeout.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Initialize(cfg.Storage.DataDir, logging.Options{
		DebugMode:  cfg.Logging.DebugMode || verbose,
		Level:      cfg.Logging.Level,
		JSONFormat: cfg.Logging.JSONFormat,
		Categories: cfg.Logging.Categories,
	}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	st, err := store.NewLocalStore(cfg.Storage.DatabasePath())
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}

	client := api.New(api.Config{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		Timeout: cfg.GetAPITimeout(),
	})

	session := auth.NewSession(st)
	if err := session.Restore(client); err != nil {
		logger.Warn("Could not restore session", zap.Error(err))
	}

	app.cfg = cfg
	app.client = client
	app.store = st
	app.session = session
	app.styles = ui.DefaultStyles()
	return nil
}

// checkoutRules derives pricing rules from the loaded config.
func checkoutRules() checkout.Rules {
	return checkout.RulesFromConfig(app.cfg.Shop)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Storefront API base URL (or set VASSTRA_API_URL)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (default: ~/.vasstra)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Per-request timeout (default from config)")

	// Add commands to root
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(cartCmd)
	rootCmd.AddCommand(wishlistCmd)
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
