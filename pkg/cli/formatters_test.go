package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/getmockd/fakerhelper/pkg/cliconfig"
	"github.com/getmockd/fakerhelper/pkg/engine"
)

func TestMatchFormatter(t *testing.T) {
	iban := engine.Info{Name: "iban", Group: "payment"}

	tests := []struct {
		name     string
		patterns []string
		want     bool
	}{
		{"no patterns", nil, true},
		{"exact name", []string{"iban"}, true},
		{"name glob", []string{"i*"}, true},
		{"group glob", []string{"payment/*"}, true},
		{"other group", []string{"address/*"}, false},
		{"name glob does not see group", []string{"pay*"}, false},
		{"any of several", []string{"city", "*/ib?n"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchFormatter(iban, tt.patterns))
		})
	}
}

func TestConfigEntries(t *testing.T) {
	c := cliconfig.NewDefault()
	entries := configEntries(c)
	assert.Len(t, entries, len(cliconfig.Keys))
	assert.Equal(t, ConfigEntry{Key: "seed", Value: "random", Source: cliconfig.SourceDefault}, entries[1])

	seed := uint64(12)
	cliconfig.MergeConfig(c, &cliconfig.CLIConfig{Seed: &seed}, cliconfig.SourceFlag)
	entries = configEntries(c)
	assert.Equal(t, ConfigEntry{Key: "seed", Value: "12", Source: cliconfig.SourceFlag}, entries[1])
}
