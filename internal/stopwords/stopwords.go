// Package stopwords loads the reference list of the most common English
// words.
package stopwords

import (
	"fmt"
	"strings"

	"book-analysis/internal/parser"

	"github.com/rs/zerolog/log"
)

// DefaultLimit is how many entries of the reference list are used.
const DefaultLimit = 100

// Set is a set of stopwords.
type Set map[string]struct{}

// New returns a set holding words.
func New(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

func (s Set) Len() int { return len(s) }

// Load reads the first limit lines of the list at filePath, one word per
// line. Spreadsheets use the first cell of each row. Blank lines count
// towards limit but add nothing.
func Load(filePath string, limit int) (Set, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	lines, err := parser.ReadFirstColumn(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading stopwords: %w", err)
	}

	if len(lines) > limit {
		lines = lines[:limit]
	}
	s := make(Set, len(lines))
	for _, line := range lines {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		s[word] = struct{}{}
	}

	log.Debug().Str("file", filePath).Int("words", len(s)).Msg("Loaded stopwords")
	return s, nil
}
