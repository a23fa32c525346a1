package engine

import "github.com/google/uuid"

func init() {
	register("uuid", map[string]Formatter{
		"uuid": func(e *Engine, _ Args) (any, error) {
			id, err := uuid.NewRandomFromReader(rngReader{e})
			if err != nil {
				return nil, err
			}
			return id.String(), nil
		},
	})
}

// rngReader feeds uuid generation from the engine stream.
type rngReader struct {
	e *Engine
}

func (r rngReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.e.rng.Uint32())
	}
	return len(p), nil
}
