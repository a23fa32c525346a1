package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/getmockd/fakerhelper/pkg/cli/internal/flags"
	"github.com/getmockd/fakerhelper/pkg/cli/internal/output"
	"github.com/getmockd/fakerhelper/pkg/cliconfig"
	"github.com/getmockd/fakerhelper/pkg/template"
)

var (
	renderFile string
	renderVars flags.StringSlice
	renderDoc  bool
)

var renderCmd = &cobra.Command{
	Use:   "render [template]",
	Short: "Render a template containing {{faker.*}} expressions",
	Long: `Render a template containing {{ ... }} expressions.

The template comes from the argument, from --file, or from stdin with
--file -. With --doc the input is a YAML or JSON document and every string
in it is rendered; the result is printed as YAML unless --format json is set.
Each of --count renders sees its iteration number as {{index}}.`,
	Example: `  fakerhelper render 'Hello {{faker.firstName}} from {{faker.city}}'
  fakerhelper render '{{sequence("id")}},{{faker.email}}' --count 3
  fakerhelper render --file user.yaml --doc --var team=core`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	source, err := templateSource(cmd, args)
	if err != nil {
		return err
	}
	vars, err := flags.KeyValues(renderVars)
	if err != nil {
		return err
	}

	gen, err := newGenerator()
	if err != nil {
		return err
	}
	eng := template.New(gen, template.WithLogger(logger))
	ctx := template.NewContext(vars)

	logger.Debug("rendering", append(logAttrs("render"), "doc", renderDoc, "count", cfg.CountOrDefault())...)
	values := make([]any, 0, cfg.CountOrDefault())
	if renderDoc {
		var doc any
		if err := yaml.Unmarshal([]byte(source), &doc); err != nil {
			return fmt.Errorf("parse document: %w", err)
		}
		for i := range cfg.CountOrDefault() {
			v, err := eng.ProcessInterface(doc, ctx.WithIndex(i))
			if err != nil {
				return err
			}
			values = append(values, v)
		}
		format := cfg.Format
		if format == cliconfig.FormatText {
			if cfg.Sources["format"] != cliconfig.SourceDefault {
				output.Warn(cmd.ErrOrStderr(), "--doc has no text form, printing %s", cliconfig.FormatYAML)
			}
			format = cliconfig.FormatYAML
		}
		return output.Values(cmd.OutOrStdout(), format, values)
	}

	for i := range cfg.CountOrDefault() {
		s, err := eng.Process(source, ctx.WithIndex(i))
		if err != nil {
			return err
		}
		values = append(values, s)
	}
	return output.Values(cmd.OutOrStdout(), cfg.Format, values)
}

func templateSource(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case len(args) == 1 && renderFile != "":
		return "", fmt.Errorf("pass a template argument or --file, not both")
	case len(args) == 1:
		return args[0], nil
	case renderFile == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		return string(data), err
	case renderFile != "":
		data, err := os.ReadFile(renderFile)
		return string(data), err
	default:
		return "", ErrNoTemplate
	}
}

func init() {
	renderCmd.Flags().StringVarP(&renderFile, "file", "f", "", "Read the template from a file (- for stdin)")
	renderCmd.Flags().Var(&renderVars, "var", "Template variable as key=value, available as vars.key (repeatable)")
	renderCmd.Flags().BoolVar(&renderDoc, "doc", false, "Treat the input as a YAML/JSON document and render every string in it")
	rootCmd.AddCommand(renderCmd)
}
