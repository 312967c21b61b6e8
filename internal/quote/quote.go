// Package quote finds the chapter a quote appears in.
package quote

import (
	"fmt"
	"slices"

	"book-analysis/internal/corpus"
	"book-analysis/internal/models"
	"book-analysis/internal/tokenizer"
)

// NotFound is returned when no chapter contains the quote.
const NotFound = models.NotFound

// Locate returns the 1-based number of the first chapter whose tokens
// contain the cleaned quote contiguously, or NotFound. A blank quote is an
// error; a quote with no words left after cleaning is simply not found.
func Locate(chapters []*corpus.Chapter, quote string) (int, error) {
	if tokenizer.IsBlank(quote) {
		return NotFound, fmt.Errorf("%w: quote can't be blank", models.ErrInvalidArgument)
	}

	words := tokenizer.QuoteTokens(quote)
	if len(words) == 0 {
		return NotFound, nil
	}

	for i, ch := range chapters {
		if !ch.Contains(words[0]) {
			continue
		}
		if contains(ch.Tokens(), words) {
			return i + 1, nil
		}
	}
	return NotFound, nil
}

// contains tries every occurrence of words[0] in tokens from left to right.
func contains(tokens, words []string) bool {
	for start := 0; start < len(tokens); {
		ind := slices.Index(tokens[start:], words[0])
		if ind < 0 {
			return false
		}
		ind += start
		if matchAt(tokens, words, ind) {
			return true
		}
		start = ind + 1
	}
	return false
}

func matchAt(tokens, words []string, ind int) bool {
	if ind+len(words) > len(tokens) {
		return false
	}
	for j, w := range words {
		if tokens[ind+j] != w {
			return false
		}
	}
	return true
}
