package engine

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxIndexSize       = 5
	minRealTextChars   = 10
	maxRealTextRetries = 100
)

func init() {
	register("text", map[string]Formatter{
		"realText": func(e *Engine, a Args) (any, error) {
			max, err := a.Int(0, 200)
			if err != nil {
				return nil, err
			}
			indexSize, err := a.Int(1, 2)
			if err != nil {
				return nil, err
			}
			return e.realTextBetween(int(math.Round(float64(max)*0.8)), max, indexSize)
		},
		"realTextBetween": func(e *Engine, a Args) (any, error) {
			min, err := a.Int(0, 160)
			if err != nil {
				return nil, err
			}
			max, err := a.Int(1, 200)
			if err != nil {
				return nil, err
			}
			indexSize, err := a.Int(2, 2)
			if err != nil {
				return nil, err
			}
			return e.realTextBetween(min, max, indexSize)
		},
	})
}

// chain is a Markov table from indexSize consecutive words to the words that
// follow them in the corpus. Keys keep corpus order so draws are reproducible.
type chain struct {
	keys []string
	next map[string][]string
}

func buildChain(corpus string, indexSize int) *chain {
	words := strings.Fields(corpus)
	c := &chain{next: make(map[string][]string)}
	if len(words) <= indexSize {
		return c
	}

	index := append([]string(nil), words[:indexSize]...)
	for _, w := range words[indexSize:] {
		key := strings.Join(index, " ")
		if _, ok := c.next[key]; !ok {
			c.keys = append(c.keys, key)
		}
		c.next[key] = append(c.next[key], w)
		index = append(index[1:], w)
	}
	return c
}

func (e *Engine) chain(indexSize int) (*chain, error) {
	if c, ok := e.chains[indexSize]; ok {
		return c, nil
	}
	corpus := e.data().Text.RealText
	if corpus == "" {
		return nil, e.unsupported("real text")
	}
	c := buildChain(corpus, indexSize)
	if len(c.keys) == 0 {
		return nil, e.unsupported("real text")
	}
	e.chains[indexSize] = c
	e.logger.Debug("built real text chain", "locale", e.loc.Name, "indexSize", indexSize, "keys", len(c.keys))
	return c, nil
}

// realTextBetween draws corpus-like text longer than min and at most max characters.
func (e *Engine) realTextBetween(min, max, indexSize int) (string, error) {
	switch {
	case min < 1:
		return "", invalidArg("min number of chars %d must be at least 1", min)
	case max < minRealTextChars:
		return "", invalidArg("max number of chars %d must be at least %d", max, minRealTextChars)
	case min >= max:
		return "", invalidArg("min number of chars %d must be below max %d", min, max)
	case indexSize < 1 || indexSize > maxIndexSize:
		return "", invalidArg("index size %d is outside [1, %d]", indexSize, maxIndexSize)
	}

	c, err := e.chain(indexSize)
	if err != nil {
		return "", err
	}

	for range maxRealTextRetries {
		result := e.generateText(c, max)
		if utf8.RuneCountInString(result) > min {
			return result, nil
		}
	}
	return "", ErrOverflow
}

func (e *Engine) generateText(c *chain, max int) string {
	var result []string
	length := 0
	key := c.keys[e.rng.IntN(len(c.keys))]

	// Bounds the walk when no reachable word can start a sentence.
	steps := 0
	limit := 10*max + len(c.keys)

	for length < max && steps < limit {
		candidates, ok := c.next[key]
		if !ok {
			break
		}
		steps++
		w := candidates[e.rng.IntN(len(candidates))]

		current := strings.Split(key, " ")
		key = strings.Join(append(current[1:], w), " ")

		if length == 0 && !validStart(w) {
			continue
		}
		result = append(result, w)
		length += utf8.RuneCountInString(w) + 1
	}

	// The last word overshoots max or was cut by the walk.
	if len(result) > 0 {
		result = result[:len(result)-1]
	}
	return appendEnd(strings.Join(result, " "))
}

func validStart(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}

func appendEnd(s string) string {
	return strings.TrimRight(s, " ,-.:;–—!?") + "."
}
