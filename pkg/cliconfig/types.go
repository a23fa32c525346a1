// Package cliconfig provides configuration types and loading for the fakerhelper CLI.
package cliconfig

// CLIConfig represents the complete configuration for the fakerhelper CLI.
// Configuration values can come from multiple sources with the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables
// 3. Local config file (.fakerhelperrc.yaml in current directory)
// 4. Global config file ($XDG_CONFIG_HOME/fakerhelper/config.yaml)
// 5. Default values (lowest priority)
type CLIConfig struct {
	// Generation settings
	Locale string  `yaml:"locale" json:"locale"`
	Seed   *uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`
	Count  *int    `yaml:"count,omitempty" json:"count,omitempty"`

	// Output settings
	Format string `yaml:"format" json:"format"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// Sources tracks where each value came from (for `fakerhelper config`).
	Sources map[string]string `yaml:"-" json:"-"`
}

// CountOrDefault returns the configured count, or DefaultCount when unset.
func (c *CLIConfig) CountOrDefault() int {
	if c.Count == nil {
		return DefaultCount
	}
	return *c.Count
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// Keys lists the config keys in display order.
var Keys = []string{"locale", "seed", "count", "format", "logLevel", "logFormat"}
