package engine

import (
	"fmt"
	"strings"
)

var safeHexColors = []string{
	"#000000", "#000080", "#008000", "#008080", "#800000", "#800080", "#808000",
	"#808080", "#c0c0c0", "#0000ff", "#00ff00", "#00ffff", "#ff0000", "#ff00ff",
	"#ffff00", "#ffffff",
}

func init() {
	register("color", map[string]Formatter{
		"hexColor": func(e *Engine, _ Args) (any, error) {
			return strings.ToLower(e.faker.HexColor()), nil
		},
		"safeHexColor": func(e *Engine, _ Args) (any, error) {
			return safeHexColors[e.rng.IntN(len(safeHexColors))], nil
		},
		"rgbColorAsArray": func(e *Engine, _ Args) (any, error) {
			return e.faker.RGBColor(), nil
		},
		"rgbColor": func(e *Engine, _ Args) (any, error) {
			return joinInts(e.faker.RGBColor(), ","), nil
		},
		"rgbCssColor": func(e *Engine, _ Args) (any, error) {
			return "rgb(" + joinInts(e.faker.RGBColor(), ",") + ")", nil
		},
		"rgbaCssColor": func(e *Engine, _ Args) (any, error) {
			alpha := e.randomFloat(1, 0, 1)
			return fmt.Sprintf("rgba(%s,%g)", joinInts(e.faker.RGBColor(), ","), alpha), nil
		},
		"safeColorName": func(e *Engine, _ Args) (any, error) {
			return strings.ToLower(e.faker.SafeColor()), nil
		},
		"colorName": func(e *Engine, _ Args) (any, error) {
			return e.faker.Color(), nil
		},
		"hslColorAsArray": func(e *Engine, _ Args) (any, error) {
			return e.hsl(), nil
		},
		"hslColor": func(e *Engine, _ Args) (any, error) {
			return joinInts(e.hsl(), ","), nil
		},
	})
}

func (e *Engine) hsl() []int {
	return []int{e.rng.IntN(361), e.rng.IntN(101), e.rng.IntN(101)}
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, sep)
}
