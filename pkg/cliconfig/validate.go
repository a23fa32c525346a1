package cliconfig

import (
	"fmt"

	"github.com/getmockd/fakerhelper/pkg/locale"
	"github.com/getmockd/fakerhelper/pkg/logging"
)

// Validate checks the merged configuration. Whether the locale is shipped is
// left to the factory; only its syntax is checked here.
func (c *CLIConfig) Validate() error {
	if c.Locale != "" {
		if _, err := locale.Normalize(c.Locale); err != nil {
			return fmt.Errorf("locale: %w", err)
		}
	}
	if n := c.CountOrDefault(); n < 1 || n > MaxCount {
		return fmt.Errorf("count %d is out of range (1-%d)", n, MaxCount)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("format %q is not supported (valid: %s, %s, %s)", c.Format, FormatText, FormatJSON, FormatYAML)
	}
	if _, err := logging.LookupLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "", string(logging.FormatText), string(logging.FormatJSON):
	default:
		return fmt.Errorf("logFormat %q is not supported (valid: text, json)", c.LogFormat)
	}
	return nil
}

// LoggingConfig converts the log settings for logging.New.
func (c *CLIConfig) LoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(c.LogLevel)
	cfg.Format = logging.ParseFormat(c.LogFormat)
	return cfg
}
