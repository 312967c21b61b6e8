// Package markov generates sentences from a first-order Markov chain over
// the word bigrams of a book.
package markov

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"book-analysis/internal/models"
	"book-analysis/internal/tokenizer"

	"github.com/rs/zerolog/log"
)

// ErrEmptyChain is returned when the text produced no usable bigram.
var ErrEmptyChain = errors.New("markov chain has no words")

// Rand is the source of random choices. *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
}

// Chain maps a word to every word seen right after it. Successor lists keep
// duplicates so a uniform pick follows the observed frequencies.
type Chain struct {
	next map[string][]string
	keys []string
}

// New builds a chain from the raw lines of a book. Lines are joined with
// double quotes removed and lowercased, then split on single spaces; no
// other punctuation is stripped.
func New(lines []string) *Chain {
	var text strings.Builder
	for _, line := range lines {
		text.WriteString(strings.ToLower(strings.ReplaceAll(line, `"`, "")))
		text.WriteString(" ")
	}
	words := strings.Split(text.String(), " ")

	c := &Chain{next: make(map[string][]string)}
	for i := 0; i < len(words)-1; i++ {
		if skipped(words[i]) || skipped(words[i+1]) {
			continue
		}
		c.add(strings.ToLower(words[i]), words[i+1])
	}

	log.Debug().Int("words", len(c.keys)).Msg("Built bigram model")
	return c
}

// skipped reports words that never take part in a bigram. The marker check
// is case-sensitive and so never matches lowercased text.
func skipped(word string) bool {
	if tokenizer.IsBlank(word) || word == models.ChapterMarker {
		return true
	}
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsDigit(r)
}

func (c *Chain) add(word, next string) {
	if _, ok := c.next[word]; !ok {
		c.keys = append(c.keys, word)
	}
	c.next[word] = append(c.next[word], next)
}

// Len is the number of words with at least one successor.
func (c *Chain) Len() int { return len(c.keys) }

// Next returns the successors of word. The slice must not be modified.
func (c *Chain) Next(word string) []string { return c.next[word] }

// Sentence walks the chain from a random word. It stops at a word ending in
// '.', '?' or '!', after models.MaxSentenceWords steps, or at a word with no
// successors. Words are chosen in first-seen key order, so a fixed sequence
// from rng always yields the same sentence.
func (c *Chain) Sentence(rng Rand) (string, error) {
	if len(c.keys) == 0 {
		return "", ErrEmptyChain
	}

	word := c.keys[rng.Intn(len(c.keys))]
	var sentence strings.Builder
	for i := 0; !terminal(word) && i < models.MaxSentenceWords; i++ {
		sentence.WriteString(word)
		sentence.WriteString(" ")
		next := c.next[word]
		if len(next) == 0 {
			break
		}
		word = next[rng.Intn(len(next))]
	}
	sentence.WriteString(word)
	return sentence.String(), nil
}

func terminal(word string) bool {
	r, _ := utf8.DecodeLastRuneInString(word)
	return strings.ContainsRune(models.SentenceTerminals, r)
}
