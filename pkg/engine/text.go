package engine

import (
	"strings"
	"unicode/utf8"
)

// maxTextAttempts bounds the retries of text when every draw overshoots.
const maxTextAttempts = 1000

func init() {
	register("text", map[string]Formatter{
		"word": func(e *Engine, _ Args) (any, error) {
			return e.word()
		},
		"words": func(e *Engine, a Args) (any, error) {
			nb, asText, err := countAndText(a)
			if err != nil {
				return nil, err
			}
			words, err := e.words(nb)
			if err != nil {
				return nil, err
			}
			if asText {
				return strings.Join(words, " "), nil
			}
			return words, nil
		},
		"sentence": func(e *Engine, a Args) (any, error) {
			nb, variable, err := countAndVariable(a, 6)
			if err != nil {
				return nil, err
			}
			return e.sentence(nb, variable)
		},
		"sentences": func(e *Engine, a Args) (any, error) {
			nb, asText, err := countAndText(a)
			if err != nil {
				return nil, err
			}
			sentences, err := e.repeat(nb, func() (string, error) { return e.sentence(6, true) })
			if err != nil {
				return nil, err
			}
			if asText {
				return strings.Join(sentences, " "), nil
			}
			return sentences, nil
		},
		"paragraph": func(e *Engine, a Args) (any, error) {
			nb, variable, err := countAndVariable(a, 3)
			if err != nil {
				return nil, err
			}
			return e.paragraph(nb, variable)
		},
		"paragraphs": func(e *Engine, a Args) (any, error) {
			nb, asText, err := countAndText(a)
			if err != nil {
				return nil, err
			}
			paragraphs, err := e.repeat(nb, func() (string, error) { return e.paragraph(3, true) })
			if err != nil {
				return nil, err
			}
			if asText {
				return strings.Join(paragraphs, "\n\n"), nil
			}
			return paragraphs, nil
		},
		"text": func(e *Engine, a Args) (any, error) {
			max, err := a.Int(0, 200)
			if err != nil {
				return nil, err
			}
			return e.text(max)
		},
	})
}

func countAndText(a Args) (int, bool, error) {
	nb, err := a.Int(0, 3)
	if err != nil {
		return 0, false, err
	}
	if nb < 0 {
		return 0, false, invalidArg("count %d is negative", nb)
	}
	asText, err := a.Bool(1, false)
	return nb, asText, err
}

func countAndVariable(a Args, def int) (int, bool, error) {
	nb, err := a.Int(0, def)
	if err != nil {
		return 0, false, err
	}
	variable, err := a.Bool(1, true)
	return nb, variable, err
}

func (e *Engine) word() (string, error) {
	return e.pick("word", e.data().Text.Words)
}

func (e *Engine) words(n int) ([]string, error) {
	return e.repeat(n, e.word)
}

func (e *Engine) repeat(n int, gen func() (string, error)) ([]string, error) {
	out := make([]string, 0, n)
	for range n {
		s, err := gen()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// sentence returns about nbWords words, capitalized and ending in a period.
// A non-positive count yields the empty string.
func (e *Engine) sentence(nbWords int, variable bool) (string, error) {
	if nbWords <= 0 {
		return "", nil
	}
	if variable {
		nbWords = e.randomizeCount(nbWords)
	}
	words, err := e.words(nbWords)
	if err != nil {
		return "", err
	}
	words[0] = e.caser.String(words[0])
	return strings.Join(words, " ") + ".", nil
}

// paragraph returns about nbSentences sentences separated by spaces.
func (e *Engine) paragraph(nbSentences int, variable bool) (string, error) {
	if nbSentences <= 0 {
		return "", nil
	}
	if variable {
		nbSentences = e.randomizeCount(nbSentences)
	}
	sentences, err := e.repeat(nbSentences, func() (string, error) { return e.sentence(6, true) })
	if err != nil {
		return "", err
	}
	return strings.Join(sentences, " "), nil
}

// text fills up to max characters with words, sentences or paragraphs
// depending on the size requested.
func (e *Engine) text(max int) (string, error) {
	if max < 5 {
		return "", invalidArg("max number of chars %d is below 5", max)
	}

	gen, sep := e.word, " "
	switch {
	case max < 25:
	case max < 100:
		gen = func() (string, error) { return e.sentence(6, true) }
	default:
		gen = func() (string, error) { return e.paragraph(3, true) }
		sep = "\n"
	}

	for range maxTextAttempts {
		var parts []string
		size := 0
		for size < max {
			s, err := gen()
			if err != nil {
				return "", err
			}
			if len(parts) > 0 {
				size += utf8.RuneCountInString(sep)
			}
			size += utf8.RuneCountInString(s)
			parts = append(parts, s)
		}
		// The last part always overshoots.
		parts = parts[:len(parts)-1]
		if len(parts) == 0 {
			continue
		}
		if max < 25 {
			parts[0] = e.caser.String(parts[0])
			return strings.Join(parts, sep) + ".", nil
		}
		return strings.Join(parts, sep), nil
	}
	return "", ErrOverflow
}
