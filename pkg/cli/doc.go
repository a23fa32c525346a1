// Package cli provides the command-line interface for fakerhelper.
//
// The cli package implements the fakerhelper commands:
//   - gen: Run a named formatter, e.g. `fakerhelper gen numberBetween 1 10`
//   - render: Render a {{faker.*}} template or a YAML document of templates
//   - locales: List the shipped locales
//   - formatters: List formatters, optionally filtered by glob
//   - config: Display effective configuration and where each value came from
//   - version: Show fakerhelper version
//
// Global flags (--locale, --seed, --count, --format, --log-level,
// --log-format) override the layered configuration loaded by cliconfig.
package cli
