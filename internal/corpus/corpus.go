// Package corpus indexes the words of a book, both as a whole and chapter by
// chapter. A Corpus is immutable once built and safe for concurrent reads.
package corpus

import (
	"fmt"
	"slices"

	"book-analysis/internal/models"
	"book-analysis/internal/parser"
	"book-analysis/internal/tokenizer"

	"github.com/rs/zerolog/log"
)

// Chapter holds the tokens of one chapter in reading order.
type Chapter struct {
	Number int

	tokens []string
	counts map[string]int
}

func newChapter(number int) *Chapter {
	return &Chapter{Number: number, counts: make(map[string]int)}
}

func (c *Chapter) add(word string) {
	c.tokens = append(c.tokens, word)
	c.counts[word]++
}

// Tokens returns the chapter's tokens. The slice must not be modified.
func (c *Chapter) Tokens() []string { return c.tokens }

func (c *Chapter) Len() int { return len(c.tokens) }

func (c *Chapter) Count(word string) int { return c.counts[word] }

func (c *Chapter) Contains(word string) bool {
	_, ok := c.counts[word]
	return ok
}

// Corpus is the token sequence and frequency table of a whole book.
// The global sequence is the concatenation of the chapter sequences.
type Corpus struct {
	tokens   []string
	counts   map[string]int
	order    []string
	chapters []*Chapter
}

type corpusState struct {
	current *Chapter
	result  *Corpus
}

// Load reads the source at filePath and builds its corpus.
func Load(filePath string) (*Corpus, error) {
	lines, err := parser.ReadLines(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	c := Build(lines)
	log.Debug().
		Str("file", filePath).
		Int("chapters", len(c.chapters)).
		Int("words", c.TotalWords()).
		Int("unique", c.UniqueWords()).
		Msg("Loaded corpus")
	return c, nil
}

// Build indexes lines. Words before the first chapter marker are discarded.
func Build(lines []string) *Corpus {
	state := corpusState{
		result: &Corpus{counts: make(map[string]int)},
	}
	for _, line := range lines {
		processLine(line, &state)
	}
	state.seal()
	return state.result
}

func processLine(line string, state *corpusState) {
	tokens, marker := tokenizer.Line(line, state.current != nil)
	for _, word := range tokens {
		state.add(word)
	}
	if marker {
		state.seal()
		state.current = newChapter(len(state.result.chapters) + 1)
	}
}

func (s *corpusState) add(word string) {
	c := s.result
	if _, seen := c.counts[word]; !seen {
		c.order = append(c.order, word)
	}
	c.tokens = append(c.tokens, word)
	c.counts[word]++
	s.current.add(word)
}

// seal stores the current chapter, if any.
func (s *corpusState) seal() {
	if s.current != nil {
		s.result.chapters = append(s.result.chapters, s.current)
		s.current = nil
	}
}

// TotalWords is the number of tokens in the book.
func (c *Corpus) TotalWords() int { return len(c.tokens) }

// UniqueWords is the number of distinct tokens in the book.
func (c *Corpus) UniqueWords() int { return len(c.counts) }

func (c *Corpus) Count(word string) int { return c.counts[word] }

// Tokens returns a copy of the book's tokens in reading order.
func (c *Corpus) Tokens() []string { return slices.Clone(c.tokens) }

// Chapters returns the chapters in order.
func (c *Corpus) Chapters() []*Chapter { return slices.Clone(c.chapters) }

// Counts returns every distinct token with its count, in first-seen order.
func (c *Corpus) Counts() []models.WordCount {
	res := make([]models.WordCount, len(c.order))
	for i, word := range c.order {
		res[i] = models.WordCount{Word: word, Count: c.counts[word]}
	}
	return res
}

// Progression returns the count of word in each chapter, in chapter order.
func (c *Corpus) Progression(word string) ([]int, error) {
	if tokenizer.IsBlank(word) {
		return nil, fmt.Errorf("%w: word can't be blank", models.ErrInvalidArgument)
	}
	res := make([]int, len(c.chapters))
	for i, ch := range c.chapters {
		res[i] = ch.Count(word)
	}
	return res, nil
}
