package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all vasstra client configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// REST API configuration
	API APIConfig `yaml:"api"`

	// Local storage configuration
	Storage StorageConfig `yaml:"storage"`

	// Storefront behavior
	Shop ShopConfig `yaml:"shop"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ShopConfig configures storefront defaults.
type ShopConfig struct {
	// Default sort key for product listings (featured, price-asc, price-desc, newest)
	DefaultSort string `yaml:"default_sort"`

	// Page size for admin listings
	PageSize int `yaml:"page_size"`

	// Flat shipping fee applied at checkout when the server omits one
	ShippingFee float64 `yaml:"shipping_fee"`

	// Orders above this subtotal ship free
	FreeShippingAbove float64 `yaml:"free_shipping_above"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Name:    "vasstra",
		Version: "1.0.0",

		API: APIConfig{
			BaseURL: "http://localhost:5000/api",
			Timeout: "30s",
		},

		Storage: StorageConfig{
			DataDir:      defaultDataDir(),
			DatabaseFile: "vasstra.db",
			RecentLimit:  12,
		},

		Shop: ShopConfig{
			DefaultSort:       "featured",
			PageSize:          20,
			ShippingFee:       99,
			FreeShippingAbove: 1999,
		},

		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vasstra"
	}
	return filepath.Join(home, ".vasstra")
}

// DefaultConfigPath returns the default location of the config file.
func DefaultConfigPath() string {
	return filepath.Join(defaultDataDir(), "config.yaml")
}

// Load reads configuration from a YAML file, applying defaults for
// missing fields and environment overrides on top.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("VASSTRA_API_URL"); url != "" {
		c.API.BaseURL = url
	}
	if token := os.Getenv("VASSTRA_API_TOKEN"); token != "" {
		c.API.Token = token
	}
	if timeout := os.Getenv("VASSTRA_API_TIMEOUT"); timeout != "" {
		c.API.Timeout = timeout
	}
	if dir := os.Getenv("VASSTRA_DATA_DIR"); dir != "" {
		c.Storage.DataDir = dir
	}
	if debug := os.Getenv("VASSTRA_DEBUG"); debug == "1" || debug == "true" {
		c.Logging.DebugMode = true
	}
}

// GetAPITimeout parses the API timeout string.
func (c *Config) GetAPITimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if _, err := time.ParseDuration(c.API.Timeout); err != nil {
		return fmt.Errorf("api.timeout is not a valid duration: %w", err)
	}
	if c.Storage.DataDir == "" {
		return fmt.Errorf("storage.data_dir is required")
	}
	if c.Storage.RecentLimit < 0 {
		return fmt.Errorf("storage.recent_limit must be >= 0")
	}
	switch c.Shop.DefaultSort {
	case "", "featured", "price-asc", "price-desc", "newest":
	default:
		return fmt.Errorf("shop.default_sort %q is not a known sort key", c.Shop.DefaultSort)
	}
	return nil
}
