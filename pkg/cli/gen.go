package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/fakerhelper/pkg/cli/internal/output"
	"github.com/getmockd/fakerhelper/pkg/engine"
)

var genCmd = &cobra.Command{
	Use:   "gen <formatter> [args...]",
	Short: "Generate values with a named formatter",
	Long: `Generate values with a named formatter.

Arguments after the formatter name are passed to it in order. Numbers,
booleans, durations and dates are parsed from their text form. Use -- before
negative numbers so they are not read as flags.`,
	Example: `  fakerhelper gen name
  fakerhelper gen numberBetween 1 10 --count 5
  fakerhelper gen iban DE --format json
  fakerhelper gen -- latitude -45 45`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGen,
}

func runGen(cmd *cobra.Command, args []string) error {
	name := args[0]
	if !engine.Has(name) {
		return fmt.Errorf("unknown formatter %q (run 'fakerhelper formatters' to list them)", name)
	}

	gen, err := newGenerator()
	if err != nil {
		return err
	}

	fargs := make([]any, len(args)-1)
	for i, a := range args[1:] {
		fargs[i] = a
	}

	logger.Debug("generating", append(logAttrs("gen"), "formatter", name, "count", cfg.CountOrDefault())...)
	values := make([]any, 0, cfg.CountOrDefault())
	for range cfg.CountOrDefault() {
		v, err := gen.Format(name, fargs...)
		if err != nil {
			return err
		}
		values = append(values, v)
	}
	return output.Values(cmd.OutOrStdout(), cfg.Format, values)
}

func init() {
	rootCmd.AddCommand(genCmd)
}
