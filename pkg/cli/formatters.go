package cli

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/getmockd/fakerhelper/pkg/cli/internal/output"
	"github.com/getmockd/fakerhelper/pkg/engine"
)

var formattersCmd = &cobra.Command{
	Use:   "formatters [pattern...]",
	Short: "List formatters, optionally filtered by glob",
	Long: `List the formatters available to gen and to templates.

Patterns without a slash match formatter names; patterns with a slash match
group/name, so "internet/*" lists one group and "*/*Email*" searches all.`,
	Example: `  fakerhelper formatters
  fakerhelper formatters 'date*'
  fakerhelper formatters 'payment/*' --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range args {
			if !doublestar.ValidatePattern(p) {
				return fmt.Errorf("invalid pattern %q", p)
			}
		}

		var list []engine.Info
		for _, info := range engine.Formatters() {
			if matchFormatter(info, args) {
				list = append(list, info)
			}
		}
		if len(list) == 0 {
			return ErrNoMatch
		}

		w := cmd.OutOrStdout()
		switch cfg.Format {
		case "json":
			return output.JSON(w, list)
		case "yaml":
			return output.YAML(w, list)
		}

		tw := output.Table(w)
		fmt.Fprintln(tw, "GROUP\tNAME")
		for _, info := range list {
			fmt.Fprintf(tw, "%s\t%s\n", info.Group, info.Name)
		}
		return tw.Flush()
	},
}

// matchFormatter reports whether info matches any pattern. No patterns match all.
func matchFormatter(info engine.Info, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		target := info.Name
		if strings.Contains(p, "/") {
			target = info.Group + "/" + info.Name
		}
		if ok, _ := doublestar.Match(p, target); ok {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(formattersCmd)
}
