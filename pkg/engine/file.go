package engine

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

func init() {
	register("file", map[string]Formatter{
		"mimeType": func(e *Engine, _ Args) (any, error) {
			return e.faker.FileMimeType(), nil
		},
		"fileExtension": func(e *Engine, _ Args) (any, error) {
			return e.faker.FileExtension(), nil
		},
	})

	register("hash", map[string]Formatter{
		"md5": func(e *Engine, _ Args) (any, error) {
			sum := md5.Sum(e.hashInput())
			return hex.EncodeToString(sum[:]), nil
		},
		"sha1": func(e *Engine, _ Args) (any, error) {
			sum := sha1.Sum(e.hashInput())
			return hex.EncodeToString(sum[:]), nil
		},
		"sha256": func(e *Engine, _ Args) (any, error) {
			sum := sha256.Sum256(e.hashInput())
			return hex.EncodeToString(sum[:]), nil
		},
	})
}

// hashInput is a random decimal number, hashed so digests look real while
// staying on the engine stream.
func (e *Engine) hashInput() []byte {
	return strconv.AppendUint(nil, e.rng.Uint64(), 10)
}
