package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/mcoot/wordscramble/internal/factory"
)

// Config holds CLI configuration
type Config struct {
	App     factory.Config
	Output  string `env:"WORDSCRAMBLE_OUTPUT" envDefault:"text"`
	Verbose bool   `env:"WORDSCRAMBLE_VERBOSE" envDefault:"false"`
}

// DefaultConfig returns a Config populated from the environment
func DefaultConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return &Config{Output: "text"}, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
