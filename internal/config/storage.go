package config

import "path/filepath"

// StorageConfig configures local persistence.
type StorageConfig struct {
	// DataDir holds the SQLite database, session cache and logs.
	DataDir string `yaml:"data_dir"`

	// DatabaseFile is the SQLite file name inside DataDir.
	DatabaseFile string `yaml:"database_file"`

	// RecentLimit bounds the recently-viewed product cache.
	RecentLimit int `yaml:"recent_limit"`
}

// DatabasePath returns the full path of the SQLite database.
func (s StorageConfig) DatabasePath() string {
	return filepath.Join(s.DataDir, s.DatabaseFile)
}
