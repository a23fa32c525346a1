package engine

import (
	"fmt"
	"strings"
)

var preReleaseTags = []string{"alpha", "beta", "rc"}

func init() {
	register("version", map[string]Formatter{
		"semver": func(e *Engine, a Args) (any, error) {
			preRelease, err := a.Bool(0, false)
			if err != nil {
				return nil, err
			}
			build, err := a.Bool(1, false)
			if err != nil {
				return nil, err
			}
			var sb strings.Builder
			fmt.Fprintf(&sb, "%d.%d.%d", e.rng.IntN(10), e.rng.IntN(100), e.rng.IntN(100))
			if preRelease && e.rng.IntN(2) == 1 {
				fmt.Fprintf(&sb, "-%s.%d", preReleaseTags[e.rng.IntN(len(preReleaseTags))], 1+e.rng.IntN(9))
			}
			if build && e.rng.IntN(2) == 1 {
				fmt.Fprintf(&sb, "+%s", e.bothify("*******"))
			}
			return sb.String(), nil
		},
	})
}
