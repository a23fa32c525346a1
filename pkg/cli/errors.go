package cli

import "errors"

// Common CLI errors
var (
	ErrNoTemplate = errors.New("no template given - pass one as an argument or use --file")
	ErrNoMatch    = errors.New("no formatter matches the given patterns")
)
