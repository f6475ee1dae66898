package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Schedule kinds. Percentage schedules charge rate x notional per fill,
// fixed schedules charge a flat amount per fill regardless of size.
const (
	FeePercentage = "percentage"
	FeeFixed      = "fixed"
)

// Config represents the complete journal configuration
type Config struct {
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Fees    Fees          `json:"fees" yaml:"fees"`
}

// JournalConfig contains persistence parameters
type JournalConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// Fees holds the per-exchange fee schedules plus the user-level default
// applied when a trade's exchange has no schedule of its own.
type Fees struct {
	Default   FeeSchedule            `json:"default" yaml:"default"`
	Exchanges map[string]FeeSchedule `json:"exchanges,omitempty" yaml:"exchanges,omitempty"`
}

// FeeSchedule describes one exchange's cost model.
type FeeSchedule struct {
	Kind string `json:"kind" yaml:"kind"` // "percentage" or "fixed"
	// Rate is a fraction (0.001 = 0.1%) applied to entry and exit
	// notionals for percentage schedules.
	Rate float64 `json:"rate,omitempty" yaml:"rate,omitempty"`
	// Amount is the flat per-fill fee for fixed schedules.
	Amount float64 `json:"amount,omitempty" yaml:"amount,omitempty"`
}

// ForExchange resolves the schedule for an exchange, falling back to the
// user-level default schedule.
func (f Fees) ForExchange(exchange string) FeeSchedule {
	if s, ok := f.Exchanges[exchange]; ok {
		return s
	}
	return f.Default
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	// Determine format by extension
	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	if err := c.Fees.Default.validate("fees.default"); err != nil {
		return err
	}
	for name, s := range c.Fees.Exchanges {
		if err := s.validate("fees.exchanges." + name); err != nil {
			return err
		}
	}
	return nil
}

func (s FeeSchedule) validate(where string) error {
	switch s.Kind {
	case FeePercentage:
		if s.Rate < 0 || s.Rate >= 1 {
			return fmt.Errorf("%s: rate must be in [0, 1)", where)
		}
	case FeeFixed:
		if s.Amount < 0 {
			return fmt.Errorf("%s: amount must not be negative", where)
		}
	default:
		return fmt.Errorf("%s: kind must be %q or %q", where, FeePercentage, FeeFixed)
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Journal: JournalConfig{
			DBPath: "./journal.sqlite",
		},
		Fees: Fees{
			Default: FeeSchedule{
				Kind: FeePercentage,
				Rate: 0.001,
			},
		},
	}
}
