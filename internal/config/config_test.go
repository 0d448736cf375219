package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "vasstra" {
		t.Errorf("expected Name=vasstra, got %s", cfg.Name)
	}
	if cfg.API.Timeout != "30s" {
		t.Errorf("expected api timeout 30s, got %s", cfg.API.Timeout)
	}
	if cfg.Shop.DefaultSort != "featured" {
		t.Errorf("expected default sort featured, got %s", cfg.Shop.DefaultSort)
	}
	if cfg.Storage.RecentLimit != 12 {
		t.Errorf("expected recent limit 12, got %d", cfg.Storage.RecentLimit)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("VASSTRA_API_URL", "")
	t.Setenv("VASSTRA_API_TOKEN", "")
	t.Setenv("VASSTRA_DATA_DIR", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	cfg := DefaultConfig()
	cfg.API.BaseURL = "https://shop.example.com/api"
	cfg.Shop.DefaultSort = "price-asc"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.API.BaseURL != "https://shop.example.com/api" {
		t.Errorf("expected saved base URL, got %s", loaded.API.BaseURL)
	}
	if loaded.Shop.DefaultSort != "price-asc" {
		t.Errorf("expected saved sort key, got %s", loaded.Shop.DefaultSort)
	}
}

func TestConfig_LoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("VASSTRA_API_URL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.API.BaseURL != DefaultConfig().API.BaseURL {
		t.Errorf("expected default base URL, got %s", cfg.API.BaseURL)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults pass", mutate: func(c *Config) {}, wantErr: false},
		{name: "missing base url", mutate: func(c *Config) { c.API.BaseURL = "" }, wantErr: true},
		{name: "bad timeout", mutate: func(c *Config) { c.API.Timeout = "soon" }, wantErr: true},
		{name: "missing data dir", mutate: func(c *Config) { c.Storage.DataDir = "" }, wantErr: true},
		{name: "negative recent limit", mutate: func(c *Config) { c.Storage.RecentLimit = -1 }, wantErr: true},
		{name: "unknown sort key", mutate: func(c *Config) { c.Shop.DefaultSort = "rating" }, wantErr: true},
		{name: "known sort key", mutate: func(c *Config) { c.Shop.DefaultSort = "newest" }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStorageConfig_DatabasePath(t *testing.T) {
	s := StorageConfig{DataDir: "/tmp/vasstra", DatabaseFile: "vasstra.db"}
	if got := s.DatabasePath(); got != filepath.Join("/tmp/vasstra", "vasstra.db") {
		t.Errorf("unexpected database path: %s", got)
	}
}
