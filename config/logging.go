package config

import "fmt"

// LoggingConfig defines settings for log output.
type LoggingConfig struct {
	// Level is the minimum severity to emit: "debug", "info", "warn" or
	// "error".
	Level string `json:"level"`
	// Format selects the output encoding: "json" or "console". Empty falls
	// back to FC_ENV detection.
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks mandatory fields.
func (c LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %s", c.Level)
	}
	switch c.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("unknown format %s", c.Format)
	}
	return nil
}
