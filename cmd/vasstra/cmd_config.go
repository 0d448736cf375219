package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"vasstra/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := yaml.Marshal(app.cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the current defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultConfigPath()
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := app.cfg.Save(path); err != nil {
			return err
		}
		fmt.Println(app.styles.Success.Render("Wrote " + path))
		return nil
	},
}

var configWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the config file and log reloads",
	Long: `Watches the config file and applies changes as they land. Useful
while tuning shop defaults or pointing the CLI at another backend.
Stop with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultConfigPath()
		}

		watcher, err := config.NewWatcher(path, func(cfg *config.Config) {
			app.cfg = cfg
			logger.Info("Config reloaded",
				zap.String("api_url", cfg.API.BaseURL),
				zap.String("default_sort", cfg.Shop.DefaultSort))
			fmt.Println(app.styles.Success.Render("Config reloaded."))
		})
		if err != nil {
			return err
		}
		defer watcher.Stop()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			cancel()
		}()

		if err := watcher.Start(ctx); err != nil {
			return err
		}
		fmt.Println(app.styles.Muted.Render("Watching " + path + " (Ctrl-C to stop)"))
		<-ctx.Done()
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configWatchCmd)
}
