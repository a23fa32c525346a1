package faker

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_WeightOneAlwaysProduces(t *testing.T) {
	g := newSeeded(t, "en_US", 1)
	o := g.Optional(1)
	for range 50 {
		w, err := o.Word()
		require.NoError(t, err)
		require.NotNil(t, w)
		assert.NotEmpty(t, *w)

		words, err := o.Words(2)
		require.NoError(t, err)
		assert.Len(t, words, 2)

		f, err := o.Float(2, 0, 1)
		require.NoError(t, err)
		require.NotNil(t, f)
	}
}

func TestOptional_WeightZeroNeverProduces(t *testing.T) {
	g := newSeeded(t, "en_US", 2)
	o := g.Optional(0)
	for range 50 {
		s, err := o.Sentence(DefaultSentenceWords, true)
		require.NoError(t, err)
		assert.Nil(t, s)

		list, err := o.Paragraphs(DefaultParagraphCount)
		require.NoError(t, err)
		assert.Nil(t, list)

		rt, err := o.RealText(DefaultMaxChars, DefaultIndexSize)
		require.NoError(t, err)
		assert.Nil(t, rt)
	}
}

func TestOptional_MixedWeight(t *testing.T) {
	g := newSeeded(t, "en_US", 3)
	o := g.Optional(0.5)

	var produced, skipped int
	for range 400 {
		s, err := o.Text(50)
		require.NoError(t, err)
		if s == nil {
			skipped++
		} else {
			produced++
		}
	}
	assert.Greater(t, produced, 100)
	assert.Greater(t, skipped, 100)
}

func TestOptional_InvalidWeight(t *testing.T) {
	g := newSeeded(t, "en_US", 4)
	for _, w := range []float64{-0.1, 1.5, math.NaN()} {
		_, err := g.Optional(w).Word()
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestOptional_PropagatesErrors(t *testing.T) {
	g := newSeeded(t, "es_ES", 5)
	_, err := g.Optional(1).RealTextBetween(DefaultMinChars, DefaultMaxChars, DefaultIndexSize)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = g.Optional(1).Float(2, 10, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestOptional_DeterministicDraws(t *testing.T) {
	a := newSeeded(t, "en_GB", 6).Optional(0.3)
	b := newSeeded(t, "en_GB", 6).Optional(0.3)
	for range 50 {
		va, err := a.Word()
		require.NoError(t, err)
		vb, err := b.Word()
		require.NoError(t, err)
		assert.Equal(t, va, vb)
	}
}
