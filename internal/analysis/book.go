// Package analysis answers word frequency, quote and sentence queries about
// one loaded book.
package analysis

import (
	"context"
	"fmt"

	"book-analysis/internal/chapterdb"
	"book-analysis/internal/config"
	"book-analysis/internal/corpus"
	"book-analysis/internal/embedding"
	"book-analysis/internal/frequency"
	"book-analysis/internal/markov"
	"book-analysis/internal/models"
	"book-analysis/internal/parser"
	"book-analysis/internal/quote"

	"github.com/rs/zerolog/log"
)

// Book is an immutable, fully indexed book.
type Book struct {
	lines  []string
	corpus *corpus.Corpus
	cfg    *config.Config
}

// Open reads the book at filePath. It fails without a partial result if the
// path is empty or unreadable. A nil cfg uses config.Defaults.
func Open(filePath string, cfg *config.Config) (*Book, error) {
	return OpenWith(parser.FileParser{}, filePath, cfg)
}

// OpenWith is Open reading through p.
func OpenWith(p parser.Parser, filePath string, cfg *config.Config) (*Book, error) {
	lines, err := p.ReadLines(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening book: %w", err)
	}
	b := NewBook(lines, cfg)
	log.Debug().
		Str("file", filePath).
		Int("chapters", len(b.corpus.Chapters())).
		Int("words", b.TotalWords()).
		Msg("Opened book")
	return b, nil
}

// NewBook indexes lines that were already read.
func NewBook(lines []string, cfg *config.Config) *Book {
	if cfg == nil {
		cfg = config.Defaults()
	}
	return &Book{lines: lines, corpus: corpus.Build(lines), cfg: cfg}
}

func (b *Book) Corpus() *corpus.Corpus { return b.corpus }

func (b *Book) TotalWords() int { return b.corpus.TotalWords() }

func (b *Book) UniqueWords() int { return b.corpus.UniqueWords() }

func (b *Book) MostFrequent() []models.WordCount {
	return frequency.Top(b.corpus.Counts(), b.cfg.Analysis.ListSize)
}

func (b *Book) LeastFrequent() []models.WordCount {
	return frequency.Bottom(b.corpus.Counts(), b.cfg.Analysis.ListSize)
}

// MostInteresting is MostFrequent without the words in stop.
func (b *Book) MostInteresting(stop frequency.Stopwords) []models.WordCount {
	return frequency.TopInteresting(b.corpus.Counts(), stop, b.cfg.Analysis.ListSize)
}

// Progression returns the count of word in every chapter.
func (b *Book) Progression(word string) ([]int, error) {
	return b.corpus.Progression(word)
}

// ChapterOf returns the 1-based chapter holding quote, or models.NotFound.
func (b *Book) ChapterOf(q string) (int, error) {
	return quote.Locate(b.corpus.Chapters(), q)
}

// GenerateSentence builds a bigram chain from the raw text and walks it.
func (b *Book) GenerateSentence(rng markov.Rand) (string, error) {
	return markov.New(b.lines).Sentence(rng)
}

// SimilarChapters ranks chapters by similarity to phrase using the
// configured embedder.
func (b *Book) SimilarChapters(ctx context.Context, phrase string) ([]models.ChapterMatch, error) {
	embed, err := embedding.New(&b.cfg.Similarity)
	if err != nil {
		return nil, err
	}
	idx, err := chapterdb.NewChapterIndex(ctx, b.corpus.Chapters(), embed)
	if err != nil {
		return nil, err
	}
	defer idx.Close()

	return idx.Similar(ctx, phrase, b.cfg.Similarity.Results)
}
