package faker

import (
	"fmt"
	"math"
)

// OptionalGenerator returns nil instead of a value when a weighted draw fails.
// Text operations return *string and list operations a nil slice.
type OptionalGenerator struct {
	g      *Generator
	weight float64
}

// Optional returns a generator whose operations produce a value with
// probability weight, in [0, 1], and nil otherwise. The draw advances the
// same random stream as every other operation.
func (g *Generator) Optional(weight float64) *OptionalGenerator {
	return &OptionalGenerator{g: g, weight: weight}
}

func (o *OptionalGenerator) draw() (bool, error) {
	if math.IsNaN(o.weight) || o.weight < 0 || o.weight > 1 {
		return false, fmt.Errorf("%w: weight %v is outside [0, 1]", ErrInvalidArgument, o.weight)
	}
	return call[bool](o.g, "boolean", int(math.Round(o.weight*100)))
}

// optional draws, then runs gen when the draw succeeds.
func optional[T any](o *OptionalGenerator, gen func() (T, error)) (*T, error) {
	ok, err := o.draw()
	if err != nil || !ok {
		return nil, err
	}
	v, err := gen()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalList[T any](o *OptionalGenerator, gen func() ([]T, error)) ([]T, error) {
	ok, err := o.draw()
	if err != nil || !ok {
		return nil, err
	}
	return gen()
}

// Word is Generator.Word or nil.
func (o *OptionalGenerator) Word() (*string, error) {
	return optional(o, o.g.Word)
}

// Words is Generator.Words or nil.
func (o *OptionalGenerator) Words(nb int) ([]string, error) {
	return optionalList(o, func() ([]string, error) { return o.g.Words(nb) })
}

// WordsAsText is Generator.WordsAsText or nil.
func (o *OptionalGenerator) WordsAsText(nb int) (*string, error) {
	return optional(o, func() (string, error) { return o.g.WordsAsText(nb) })
}

// Sentence is Generator.Sentence or nil.
func (o *OptionalGenerator) Sentence(nbWords int, variable bool) (*string, error) {
	return optional(o, func() (string, error) { return o.g.Sentence(nbWords, variable) })
}

// Sentences is Generator.Sentences or nil.
func (o *OptionalGenerator) Sentences(nb int) ([]string, error) {
	return optionalList(o, func() ([]string, error) { return o.g.Sentences(nb) })
}

// SentencesAsText is Generator.SentencesAsText or nil.
func (o *OptionalGenerator) SentencesAsText(nb int) (*string, error) {
	return optional(o, func() (string, error) { return o.g.SentencesAsText(nb) })
}

// Paragraph is Generator.Paragraph or nil.
func (o *OptionalGenerator) Paragraph(nbSentences int, variable bool) (*string, error) {
	return optional(o, func() (string, error) { return o.g.Paragraph(nbSentences, variable) })
}

// Paragraphs is Generator.Paragraphs or nil.
func (o *OptionalGenerator) Paragraphs(nb int) ([]string, error) {
	return optionalList(o, func() ([]string, error) { return o.g.Paragraphs(nb) })
}

// ParagraphsAsText is Generator.ParagraphsAsText or nil.
func (o *OptionalGenerator) ParagraphsAsText(nb int) (*string, error) {
	return optional(o, func() (string, error) { return o.g.ParagraphsAsText(nb) })
}

// Text is Generator.Text or nil.
func (o *OptionalGenerator) Text(maxNbChars int) (*string, error) {
	return optional(o, func() (string, error) { return o.g.Text(maxNbChars) })
}

// RealText is Generator.RealText or nil.
func (o *OptionalGenerator) RealText(maxNbChars, indexSize int) (*string, error) {
	return optional(o, func() (string, error) { return o.g.RealText(maxNbChars, indexSize) })
}

// RealTextBetween is Generator.RealTextBetween or nil.
func (o *OptionalGenerator) RealTextBetween(minNbChars, maxNbChars, indexSize int) (*string, error) {
	return optional(o, func() (string, error) { return o.g.RealTextBetween(minNbChars, maxNbChars, indexSize) })
}

// Float is Generator.Float or nil.
func (o *OptionalGenerator) Float(maxDecimals int, min, max float64) (*float64, error) {
	return optional(o, func() (float64, error) { return o.g.Float(maxDecimals, min, max) })
}

// RandomFloat is Generator.Float or nil.
//
// Deprecated: use Float.
func (o *OptionalGenerator) RandomFloat(maxDecimals int, min, max float64) (*float64, error) {
	return optional(o, func() (float64, error) { return o.g.RandomFloat(maxDecimals, min, max) })
}
