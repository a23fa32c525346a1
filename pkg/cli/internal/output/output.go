// Package output provides common output formatting utilities.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"
)

// JSON writes indented JSON to w.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v as a YAML document to w.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Table creates an aligned table writer for w.
// Remember to call Flush() when done writing.
func Table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// Warn prints a warning message to w.
func Warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "Warning: "+format+"\n", args...)
}

// Text renders a generated value as plain text. Lists print one element per
// line and maps print sorted "key: value" lines.
func Text(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return val.Format(time.RFC3339)
	case []string:
		return strings.Join(val, "\n")
	case []int:
		parts := make([]string, len(val))
		for i, n := range val {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, "\n")
	case map[string]string:
		return textMap(val)
	case map[string]float64:
		m := make(map[string]string, len(val))
		for k, f := range val {
			m[k] = strconv.FormatFloat(f, 'f', -1, 64)
		}
		return textMap(m)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func textMap(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = k + ": " + m[k]
	}
	return strings.Join(lines, "\n")
}

// Values writes a batch of generated values in the given format. Text prints
// each value on its own line; JSON and YAML print a single value as-is and
// several as a list.
func Values(w io.Writer, format string, values []any) error {
	switch format {
	case "json", "yaml":
		var doc any = values
		if len(values) == 1 {
			doc = values[0]
		}
		if format == "json" {
			return JSON(w, doc)
		}
		return YAML(w, doc)
	default:
		for _, v := range values {
			if _, err := fmt.Fprintln(w, Text(v)); err != nil {
				return err
			}
		}
		return nil
	}
}
