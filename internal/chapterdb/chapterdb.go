// Package chapterdb keeps an in-memory vector index of a book's chapters for
// approximate quote lookup.
package chapterdb

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"book-analysis/internal/corpus"
	"book-analysis/internal/helper"
	"book-analysis/internal/models"
	"book-analysis/internal/tokenizer"

	"github.com/philippgille/chromem-go"
	"github.com/rs/zerolog/log"
)

const chapterKey = "chapter"

// ChapterIndex ranks chapters by similarity to a phrase.
type ChapterIndex struct {
	db         *chromem.DB
	collection *chromem.Collection
}

// NewChapterIndex embeds every non-empty chapter with embed.
func NewChapterIndex(ctx context.Context, chapters []*corpus.Chapter, embed chromem.EmbeddingFunc) (*ChapterIndex, error) {
	id, err := helper.GenerateUUID()
	if err != nil {
		return nil, err
	}

	db := chromem.NewDB()
	c, err := db.GetOrCreateCollection("chapters-"+id, nil, embed)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	var docs []chromem.Document
	for _, ch := range chapters {
		if ch.Len() == 0 {
			continue
		}
		docs = append(docs, chromem.Document{
			ID:       fmt.Sprintf("chapter-%d", ch.Number),
			Content:  strings.Join(ch.Tokens(), " "),
			Metadata: map[string]string{chapterKey: strconv.Itoa(ch.Number)},
		})
	}
	if len(docs) > 0 {
		if err := c.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
			return nil, fmt.Errorf("failed to add chapters: %w", err)
		}
	}

	log.Debug().Str("collection", c.Name).Int("chapters", len(docs)).Msg("Indexed chapters")
	return &ChapterIndex{db: db, collection: c}, nil
}

// Len is the number of indexed chapters.
func (m *ChapterIndex) Len() int { return m.collection.Count() }

// Similar returns up to n chapters most similar to phrase, best first.
func (m *ChapterIndex) Similar(ctx context.Context, phrase string, n int) ([]models.ChapterMatch, error) {
	if tokenizer.IsBlank(phrase) {
		return nil, fmt.Errorf("%w: phrase can't be blank", models.ErrInvalidArgument)
	}
	n = min(n, m.collection.Count())
	if n <= 0 || len(tokenizer.QuoteTokens(phrase)) == 0 {
		return nil, nil
	}

	results, err := m.collection.Query(ctx, phrase, n, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query by similarity: %w", err)
	}

	matches := make([]models.ChapterMatch, 0, len(results))
	for _, r := range results {
		number, err := strconv.Atoi(r.Metadata[chapterKey])
		if err != nil {
			return nil, fmt.Errorf("bad chapter metadata for %s: %w", r.ID, err)
		}
		matches = append(matches, models.ChapterMatch{Chapter: number, Similarity: r.Similarity})
	}
	return matches, nil
}

// Close drops the collection.
func (m *ChapterIndex) Close() error {
	if err := m.db.DeleteCollection(m.collection.Name); err != nil {
		return fmt.Errorf("failed to drop collection: %w", err)
	}
	return nil
}
