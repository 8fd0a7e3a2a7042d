// Package config provides YAML configuration for the evmkit client.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/quartznode/evmkit/internal/chain"
)

// Config holds all client configuration.
type Config struct {
	// Endpoint is the JSON-RPC URL. When empty, the registry default for
	// Chain/Network is used.
	Endpoint string `yaml:"endpoint,omitempty"`

	// Chain is the registry symbol (e.g. "ETH", "POLYGON").
	Chain string `yaml:"chain"`

	// Network selects mainnet or testnet parameters.
	Network string `yaml:"network"`

	// ChainID overrides the id fetched from the node during Start.
	ChainID uint32 `yaml:"chain_id,omitempty"`

	// HTTPTimeout bounds one RPC round trip.
	HTTPTimeout Duration `yaml:"http_timeout"`

	Logging LoggingConfig `yaml:"logging"`
}

// Duration wraps time.Duration so YAML accepts "10s"-style strings.
type Duration time.Duration

// UnmarshalYAML parses either a duration string or a nanosecond integer.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw interface{}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", v, err)
		}
		*d = Duration(parsed)
		return nil
	case int:
		*d = Duration(v)
		return nil
	default:
		return fmt.Errorf("invalid duration value %v", raw)
	}
}

// MarshalYAML renders the duration in its string form.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a configuration targeting Ethereum mainnet.
func DefaultConfig() *Config {
	return &Config{
		Chain:       "ETH",
		Network:     string(chain.Mainnet),
		HTTPTimeout: Duration(30 * time.Second),
		Logging:     LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML config file, applying defaults for absent fields.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	network := chain.Network(c.Network)
	if network != chain.Mainnet && network != chain.Testnet {
		return fmt.Errorf("unknown network %q", c.Network)
	}
	if c.Endpoint == "" {
		params, ok := chain.Get(c.Chain, network)
		if !ok {
			return fmt.Errorf("no endpoint configured and chain %q not registered on %s", c.Chain, c.Network)
		}
		if params.DefaultRPC == "" {
			return fmt.Errorf("chain %q has no default endpoint", c.Chain)
		}
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout must not be negative")
	}
	return nil
}

// ResolveEndpoint returns the configured endpoint, falling back to the
// registry default.
func (c *Config) ResolveEndpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	if params, ok := chain.Get(c.Chain, chain.Network(c.Network)); ok {
		return params.DefaultRPC
	}
	return ""
}
