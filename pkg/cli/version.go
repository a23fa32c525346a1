package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/getmockd/fakerhelper/pkg/cli/internal/output"
	"github.com/getmockd/fakerhelper/pkg/engine"
	"github.com/getmockd/fakerhelper/pkg/locale"
)

// VersionOutput represents JSON and YAML output
type VersionOutput struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	Go      string `json:"go" yaml:"go"`
	OS      string `json:"os" yaml:"os"`
	Arch    string `json:"arch" yaml:"arch"`
	Locales int    `json:"locales" yaml:"locales"`
	Formats int    `json:"formatters" yaml:"formatters"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show fakerhelper version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		version := Version
		commit := Commit
		date := BuildDate

		if info, ok := debug.ReadBuildInfo(); ok {
			if version == "dev" {
				version = info.Main.Version
			}
			for _, setting := range info.Settings {
				switch setting.Key {
				case "vcs.revision":
					if commit == "none" {
						commit = setting.Value
					}
				case "vcs.time":
					if date == "unknown" {
						date = setting.Value
					}
				case "vcs.modified":
					if setting.Value == "true" {
						commit += "-dirty"
					}
				}
			}
		}

		out := VersionOutput{
			Version: version,
			Commit:  commit,
			Date:    date,
			Go:      runtime.Version(),
			OS:      runtime.GOOS,
			Arch:    runtime.GOARCH,
			Locales: len(locale.Default().Available()),
			Formats: len(engine.Formatters()),
		}

		w := cmd.OutOrStdout()
		switch cfg.Format {
		case "json":
			return output.JSON(w, out)
		case "yaml":
			return output.YAML(w, out)
		}

		v := out.Version
		if len(v) > 0 && v[0] != 'v' && v != "dev" && v != "(devel)" {
			v = "v" + v
		}
		fmt.Fprintf(w, "fakerhelper %s (%s, %s)\n", v, out.Commit, out.Date)
		fmt.Fprintf(w, "%s %s/%s, %d locales, %d formatters\n", out.Go, out.OS, out.Arch, out.Locales, out.Formats)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
