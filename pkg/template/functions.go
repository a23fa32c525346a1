package template

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// fakerRef matches faker.name and faker.name(args) inside an expression.
var fakerRef = regexp.MustCompile(`\bfaker\.(\w+)(?:\(([^()]*)\))?`)

// expandShorthands rewrites faker.name(args) to fake("name", args).
func expandShorthands(expression string) string {
	return fakerRef.ReplaceAllStringFunc(expression, func(m string) string {
		sub := fakerRef.FindStringSubmatch(m)
		args := strings.TrimSpace(sub[2])
		if args == "" {
			return `fake("` + sub[1] + `")`
		}
		return `fake("` + sub[1] + `", ` + args + `)`
	})
}

// evaluation is the per-call state behind the expression environment.
// It keeps the last generator error so callers can match it with errors.Is.
type evaluation struct {
	e   *Engine
	err error
}

func (ev *evaluation) fake(name string, args ...any) (any, error) {
	v, err := ev.e.gen.Format(name, args...)
	if err != nil {
		ev.err = err
	}
	return v, err
}

func (ev *evaluation) sequence(name string, start ...int) int64 {
	from := int64(1)
	if len(start) > 0 {
		from = int64(start[0])
	}
	return ev.e.sequences.Next(name, from)
}

func (ev *evaluation) env(ctx *Context) map[string]any {
	return map[string]any{
		"fake":     ev.fake,
		"sequence": ev.sequence,
		"locale":   ev.e.gen.Locale,
		"vars":     ctx.vars(),
		"index":    ctx.index(),
	}
}

// formatValue converts an expression result to its template text.
func formatValue(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339)
	case []string:
		return strings.Join(v, ", ")
	case []int:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
