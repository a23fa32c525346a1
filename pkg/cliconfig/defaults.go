package cliconfig

import "github.com/getmockd/fakerhelper/pkg/locale"

// DefaultCount is how many values a command prints by default.
const DefaultCount = 1

// MaxCount bounds --count.
const MaxCount = 100000

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultLogLevel keeps stderr quiet unless something goes wrong.
const DefaultLogLevel = "warn"

// DefaultLogFormat is the default log output format.
const DefaultLogFormat = "text"

// NewDefault creates a new CLIConfig with default values.
// The seed has no default: unseeded runs draw a fresh one.
func NewDefault() *CLIConfig {
	count := DefaultCount
	cfg := &CLIConfig{
		Locale:    locale.DefaultLocale,
		Count:     &count,
		Format:    FormatText,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources:   make(map[string]string),
	}
	for _, key := range []string{"locale", "count", "format", "logLevel", "logFormat"} {
		cfg.Sources[key] = SourceDefault
	}
	return cfg
}
