package config

// LoggingConfig controls the categorized file logger.
type LoggingConfig struct {
	// DebugMode enables file logging. Off means no logs are written at all.
	DebugMode bool `yaml:"debug_mode"`

	// Level: debug, info, warn, error
	Level string `yaml:"level"`

	// JSONFormat switches log lines to structured JSON.
	JSONFormat bool `yaml:"json_format"`

	// Categories selectively enables/disables log categories.
	// Empty means all categories are enabled in debug mode.
	Categories map[string]bool `yaml:"categories,omitempty"`
}
