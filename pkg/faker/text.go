package faker

// Default arguments of the text operations.
const (
	DefaultWordCount      = 3
	DefaultSentenceWords  = 6
	DefaultSentenceCount  = 3
	DefaultParagraphCount = 3
	DefaultMaxChars       = 200
	DefaultMinChars       = 160
	DefaultIndexSize      = 2
)

// Word returns a single word, e.g. "Lorem".
func (g *Generator) Word() (string, error) {
	return call[string](g, "word")
}

// Words returns nb words.
func (g *Generator) Words(nb int) ([]string, error) {
	return call[[]string](g, "words", nb, false)
}

// WordsAsText returns nb words joined by spaces.
func (g *Generator) WordsAsText(nb int) (string, error) {
	return call[string](g, "words", nb, true)
}

// Sentence returns a sentence of about nbWords words, or exactly nbWords when
// variable is false. A non-positive nbWords yields the empty string.
func (g *Generator) Sentence(nbWords int, variable bool) (string, error) {
	return call[string](g, "sentence", nbWords, variable)
}

// Sentences returns nb sentences.
func (g *Generator) Sentences(nb int) ([]string, error) {
	return call[[]string](g, "sentences", nb, false)
}

// SentencesAsText returns nb sentences joined by spaces.
func (g *Generator) SentencesAsText(nb int) (string, error) {
	return call[string](g, "sentences", nb, true)
}

// Paragraph returns about nbSentences sentences, or exactly nbSentences when
// variable is false.
func (g *Generator) Paragraph(nbSentences int, variable bool) (string, error) {
	return call[string](g, "paragraph", nbSentences, variable)
}

// Paragraphs returns nb paragraphs.
func (g *Generator) Paragraphs(nb int) ([]string, error) {
	return call[[]string](g, "paragraphs", nb, false)
}

// ParagraphsAsText returns nb paragraphs separated by blank lines.
func (g *Generator) ParagraphsAsText(nb int) (string, error) {
	return call[string](g, "paragraphs", nb, true)
}

// Text returns at most maxNbChars characters of words, sentences or
// paragraphs depending on the size. maxNbChars must be at least 5.
func (g *Generator) Text(maxNbChars int) (string, error) {
	return call[string](g, "text", maxNbChars)
}

// RealText returns text drawn from the locale's corpus by a Markov chain over
// indexSize consecutive words, with about 80% to 100% of maxNbChars characters.
// Locales without a corpus fail with ErrUnsupported.
func (g *Generator) RealText(maxNbChars, indexSize int) (string, error) {
	return call[string](g, "realText", maxNbChars, indexSize)
}

// RealTextBetween is RealText with explicit bounds: the result is longer than
// minNbChars and at most maxNbChars characters.
func (g *Generator) RealTextBetween(minNbChars, maxNbChars, indexSize int) (string, error) {
	return call[string](g, "realTextBetween", minNbChars, maxNbChars, indexSize)
}
