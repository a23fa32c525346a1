package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/getmockd/fakerhelper/pkg/cliconfig"
	"github.com/getmockd/fakerhelper/pkg/faker"
	"github.com/getmockd/fakerhelper/pkg/logging"
)

var (
	// Persistent flags available to all subcommands
	flagLocale    string
	flagSeed      uint64
	flagCount     int
	flagFormat    string
	flagLogLevel  string
	flagLogFormat string

	// cfg and logger are set by PersistentPreRunE before any command runs.
	cfg    = cliconfig.NewDefault()
	logger = logging.Nop()

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fakerhelper",
	Short: "fakerhelper generates locale-aware fake data",
	Long: `fakerhelper generates realistic fake data (names, addresses, text, payment
details, dates and more) for a chosen locale.

Configuration can be provided via flags, FAKERHELPER_* environment variables,
a local .fakerhelperrc.yaml or a global $XDG_CONFIG_HOME/fakerhelper/config.yaml.`,
	SilenceUsage:      true,
	SilenceErrors:     true, // We handle errors in Main()
	PersistentPreRunE: loadConfig,
}

// loadConfig resolves the layered configuration and builds the logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := cliconfig.LoadAll()
	if err != nil {
		return err
	}

	fromFlags := &cliconfig.CLIConfig{
		Locale:    flagLocale,
		Format:    flagFormat,
		LogLevel:  flagLogLevel,
		LogFormat: flagLogFormat,
	}
	if cmd.Flags().Changed("seed") {
		seed := flagSeed
		fromFlags.Seed = &seed
	}
	if cmd.Flags().Changed("count") {
		count := flagCount
		fromFlags.Count = &count
	}
	cliconfig.MergeConfig(loaded, fromFlags, cliconfig.SourceFlag)

	if err := loaded.Validate(); err != nil {
		return err
	}

	logCfg := loaded.LoggingConfig()
	logCfg.Output = cmd.ErrOrStderr()
	logger = logging.New(logCfg)
	cfg = loaded

	logger.Debug("configuration loaded", "locale", cfg.Locale, "format", cfg.Format, "count", cfg.CountOrDefault())
	return nil
}

// newGenerator builds the generator for the configured locale and seed.
func newGenerator() (*faker.Generator, error) {
	opts := []faker.Option{
		faker.WithDefaultLocale(cfg.Locale),
		faker.WithLogger(logger),
	}
	if cfg.Seed != nil {
		opts = append(opts, faker.WithSeed(*cfg.Seed))
	}
	return faker.NewFactory(opts...).Make("")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Main runs the CLI and returns the process exit code.
func Main() int {
	if err := Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}

// logAttrs is a small helper so commands log the same context.
func logAttrs(command string) []any {
	return []any{slog.String("command", command), slog.String("locale", cfg.Locale)}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagLocale, "locale", "l", "", "Locale, e.g. en_US or fr-FR (default en_US)")
	pf.Uint64Var(&flagSeed, "seed", 0, "Seed for reproducible output (default random)")
	pf.IntVarP(&flagCount, "count", "n", 0, "Number of values to generate (default 1)")
	pf.StringVarP(&flagFormat, "format", "o", "", "Output format: text, json or yaml (default text)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn or error (default warn)")
	pf.StringVar(&flagLogFormat, "log-format", "", "Log format: text or json (default text)")
}
