package config

import "fmt"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// ValidLogLevels lists the accepted logging.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks level and format.
func (c LoggingConfig) Validate() error {
	valid := false
	for _, l := range ValidLogLevels {
		if c.Level == l {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid logging.level: %s (valid: %v)", c.Level, ValidLogLevels)
	}

	switch c.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("invalid logging.format: %s (valid: console, json)", c.Format)
	}
}
