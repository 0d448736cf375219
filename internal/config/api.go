package config

// APIConfig configures the REST API client.
type APIConfig struct {
	// BaseURL is the root of the storefront REST API, e.g. https://shop.example.com/api
	BaseURL string `yaml:"base_url"`

	// Token is the bearer token. Usually left empty here and supplied by the
	// local session cache after login; the env override exists for scripting.
	Token string `yaml:"token,omitempty"`

	// Timeout for each request, as a duration string.
	Timeout string `yaml:"timeout"`
}
