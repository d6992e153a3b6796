// Package config handles .plotsleuth.yaml configuration files.
package config

// Config represents the contents of a .plotsleuth.yaml file. The zero value
// is valid; ApplyDefaults fills in anything the file left unset.
type Config struct {
	// Listen is the address the HTTP server binds to.
	Listen string `yaml:"listen,omitempty"`

	// Model overrides the LLM provider's default model.
	Model string `yaml:"model,omitempty"`

	// MaxTokens bounds the completion length per identification request.
	MaxTokens int `yaml:"max_tokens,omitempty"`

	// Temperature and TopP are the sampling parameters sent upstream.
	// Pointers distinguish "unset" from an explicit zero.
	Temperature *float64 `yaml:"temperature,omitempty"`
	TopP        *float64 `yaml:"top_p,omitempty"`

	// CORSOrigins lists allowed origins. Empty means all origins ("*").
	CORSOrigins []string `yaml:"cors_origins,omitempty"`
}

// FileName is the expected config file name in the working directory.
const FileName = ".plotsleuth.yaml"

// Defaults applied when the config file is absent or leaves fields unset.
const (
	DefaultListen      = ":8080"
	DefaultMaxTokens   = 400
	DefaultTemperature = 0.3
	DefaultTopP        = 0.95
)

// ApplyDefaults fills unset fields with their defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Listen == "" {
		cfg.Listen = DefaultListen
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Temperature == nil {
		t := DefaultTemperature
		cfg.Temperature = &t
	}
	if cfg.TopP == nil {
		p := DefaultTopP
		cfg.TopP = &p
	}
}
