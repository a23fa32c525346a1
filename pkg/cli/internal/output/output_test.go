package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "Paris", "Paris"},
		{"float", 12.5, "12.5"},
		{"int", 42, "42"},
		{"time", time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC), "2024-06-15T12:00:00Z"},
		{"strings", []string{"a", "b"}, "a\nb"},
		{"ints", []int{255, 0, 10}, "255\n0\n10"},
		{"string map", map[string]string{"type": "Visa", "name": "Ann"}, "name: Ann\ntype: Visa"},
		{"float map", map[string]float64{"longitude": 2.5, "latitude": 48.75}, "latitude: 48.75\nlongitude: 2.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.in))
		})
	}
}

func TestValues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Values(&buf, "text", []any{"a", 1}))
	assert.Equal(t, "a\n1\n", buf.String())

	buf.Reset()
	require.NoError(t, Values(&buf, "json", []any{"only"}))
	assert.Equal(t, "\"only\"\n", buf.String())

	buf.Reset()
	require.NoError(t, Values(&buf, "json", []any{1, 2}))
	assert.JSONEq(t, "[1, 2]", buf.String())

	buf.Reset()
	require.NoError(t, Values(&buf, "yaml", []any{"x", "z"}))
	assert.Equal(t, "- x\n- z\n", buf.String())
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	Warn(&buf, "falling back to %s", "yaml")
	assert.Equal(t, "Warning: falling back to yaml\n", buf.String())
}
