// Package frequency ranks word counts.
//
// Rankings are stable: words with equal counts keep the order they were
// given in, which for a corpus is the order they were first seen. That order
// decides which of several equally frequent words make a truncated list.
package frequency

import (
	"slices"

	"book-analysis/internal/models"
)

// DefaultSize is the length of the top and bottom lists.
const DefaultSize = 20

// Stopwords is the set of common words excluded from interesting lists.
type Stopwords interface {
	Contains(word string) bool
}

// Descending sorts a copy of counts by count, highest first.
func Descending(counts []models.WordCount) []models.WordCount {
	res := slices.Clone(counts)
	slices.SortStableFunc(res, func(a, b models.WordCount) int {
		return b.Count - a.Count
	})
	return res
}

// Ascending sorts a copy of counts by count, lowest first.
func Ascending(counts []models.WordCount) []models.WordCount {
	res := slices.Clone(counts)
	slices.SortStableFunc(res, func(a, b models.WordCount) int {
		return a.Count - b.Count
	})
	return res
}

// Top returns up to n of the most frequent words.
func Top(counts []models.WordCount, n int) []models.WordCount {
	return head(Descending(counts), n)
}

// Bottom returns up to n of the least frequent words.
func Bottom(counts []models.WordCount, n int) []models.WordCount {
	return head(Ascending(counts), n)
}

// TopInteresting returns up to n of the most frequent words that are not
// stopwords.
func TopInteresting(counts []models.WordCount, stop Stopwords, n int) []models.WordCount {
	res := make([]models.WordCount, 0, max(n, 0))
	for _, wc := range Descending(counts) {
		if len(res) >= n {
			break
		}
		if stop != nil && stop.Contains(wc.Word) {
			continue
		}
		res = append(res, wc)
	}
	return res
}

func head(ranked []models.WordCount, n int) []models.WordCount {
	n = max(n, 0)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
