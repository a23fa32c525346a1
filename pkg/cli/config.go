package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/getmockd/fakerhelper/pkg/cli/internal/output"
	"github.com/getmockd/fakerhelper/pkg/cliconfig"
)

// ConfigEntry is one effective configuration value and its origin.
type ConfigEntry struct {
	Key    string `json:"key" yaml:"key"`
	Value  string `json:"value" yaml:"value"`
	Source string `json:"source" yaml:"source"`
}

var configPaths bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display effective configuration",
	Long: `Display the effective configuration and where each value came from
(default, global, local, env or flag). With --paths, list the config files
that are searched instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := cmd.OutOrStdout()
		if configPaths {
			for _, p := range cliconfig.SearchPaths() {
				fmt.Fprintln(w, p)
			}
			return nil
		}

		entries := configEntries(cfg)
		switch cfg.Format {
		case "json":
			return output.JSON(w, entries)
		case "yaml":
			return output.YAML(w, entries)
		}

		tw := output.Table(w)
		fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Key, e.Value, e.Source)
		}
		return tw.Flush()
	},
}

func configEntries(c *cliconfig.CLIConfig) []ConfigEntry {
	values := map[string]string{
		"locale":    c.Locale,
		"seed":      "random",
		"count":     strconv.Itoa(c.CountOrDefault()),
		"format":    c.Format,
		"logLevel":  c.LogLevel,
		"logFormat": c.LogFormat,
	}
	if c.Seed != nil {
		values["seed"] = strconv.FormatUint(*c.Seed, 10)
	}

	entries := make([]ConfigEntry, 0, len(cliconfig.Keys))
	for _, key := range cliconfig.Keys {
		source := c.Sources[key]
		if source == "" {
			source = cliconfig.SourceDefault
		}
		entries = append(entries, ConfigEntry{Key: key, Value: values[key], Source: source})
	}
	return entries
}

func init() {
	configCmd.Flags().BoolVar(&configPaths, "paths", false, "List the config file search paths")
	rootCmd.AddCommand(configCmd)
}
