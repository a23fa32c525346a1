package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmockd/fakerhelper/pkg/cli/internal/output"
	"github.com/getmockd/fakerhelper/pkg/locale"
)

// LocaleOutput describes one shipped locale.
type LocaleOutput struct {
	Name    string `json:"name" yaml:"name"`
	Tag     string `json:"tag" yaml:"tag"`
	Region  string `json:"region" yaml:"region"`
	Parent  string `json:"parent,omitempty" yaml:"parent,omitempty"`
	Default bool   `json:"default" yaml:"default"`
}

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List the shipped locales",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg := locale.Default()
		current, err := locale.Normalize(cfg.Locale)
		if err != nil {
			return err
		}

		var list []LocaleOutput
		for _, name := range reg.Available() {
			loc, err := reg.Load(name)
			if err != nil {
				return err
			}
			list = append(list, LocaleOutput{
				Name:    loc.Name,
				Tag:     loc.Tag.String(),
				Region:  loc.Region(),
				Parent:  loc.Data.Parent,
				Default: loc.Name == current,
			})
		}

		w := cmd.OutOrStdout()
		switch cfg.Format {
		case "json":
			return output.JSON(w, list)
		case "yaml":
			return output.YAML(w, list)
		}

		tw := output.Table(w)
		fmt.Fprintln(tw, "NAME\tTAG\tREGION\tPARENT")
		for _, l := range list {
			name := l.Name
			if l.Default {
				name += "*"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, l.Tag, l.Region, l.Parent)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(localesCmd)
}
