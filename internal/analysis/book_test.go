package analysis

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"book-analysis/internal/config"
	"book-analysis/internal/models"
	"book-analysis/internal/stopwords"

	"github.com/google/go-cmp/cmp"
)

func openBook(t *testing.T, path string) *Book {
	t.Helper()
	b, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open(%s): %v", path, err)
	}
	return b
}

func loadCommon(t *testing.T) stopwords.Set {
	t.Helper()
	s, err := stopwords.Load("testdata/common.txt", stopwords.DefaultLimit)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func words(counts []models.WordCount) []string {
	res := make([]string, len(counts))
	for i, wc := range counts {
		res[i] = wc.Word
	}
	return res
}

func TestOpenErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		want error
	}{
		{"empty path", "", models.ErrInvalidArgument},
		{"file not found", "../files/files/files.txt", models.ErrSourceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Open(tt.path, nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if b != nil {
				t.Error("got a book from a failed Open")
			}
		})
	}
}

// linesParser serves canned books by path.
type linesParser map[string][]string

func (p linesParser) ReadLines(filePath string) ([]string, error) {
	lines, ok := p[filePath]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrSourceUnavailable, filePath)
	}
	return lines, nil
}

func TestOpenWith(t *testing.T) {
	p := linesParser{"hound": {"Preface", "Chapter 1", "the hound", "Chapter 2", "the moor"}}

	b, err := OpenWith(p, "hound", nil)
	if err != nil {
		t.Fatalf("OpenWith: %v", err)
	}
	got, err := b.Progression("the")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 1}, got); diff != "" {
		t.Errorf("progression mismatch (-want +got):\n%s", diff)
	}

	if _, err := OpenWith(p, "missing", nil); !errors.Is(err, models.ErrSourceUnavailable) {
		t.Errorf("err = %v, want ErrSourceUnavailable", err)
	}
}

func TestCounts(t *testing.T) {
	tests := []struct {
		path          string
		total, unique int
	}{
		{"testdata/test.txt", 9, 7},
		{"testdata/test2.txt", 34, 25},
	}
	for _, tt := range tests {
		b := openBook(t, tt.path)
		if got := b.TotalWords(); got != tt.total {
			t.Errorf("%s: TotalWords = %d, want %d", tt.path, got, tt.total)
		}
		if got := b.UniqueWords(); got != tt.unique {
			t.Errorf("%s: UniqueWords = %d, want %d", tt.path, got, tt.unique)
		}
	}
}

func TestMostFrequent(t *testing.T) {
	g1 := openBook(t, "testdata/test.txt")
	want1 := []string{"what", "who", "where", "are", "you", "how", "happened"}
	if diff := cmp.Diff(want1, words(g1.MostFrequent())); diff != "" {
		t.Errorf("under 20 mismatch (-want +got):\n%s", diff)
	}

	g2 := openBook(t, "testdata/test2.txt")
	want2 := []string{"what", "i", "you", "today", "went",
		"outside", "who", "where", "are", "how", "happened", "well", "did",
		"do", "oh", "my", "word", "words", "it", "is"}
	if diff := cmp.Diff(want2, words(g2.MostFrequent())); diff != "" {
		t.Errorf("over 20 mismatch (-want +got):\n%s", diff)
	}
}

func TestMostInteresting(t *testing.T) {
	common := loadCommon(t)

	g1 := openBook(t, "testdata/test.txt")
	if diff := cmp.Diff([]string{"where", "happened"}, words(g1.MostInteresting(common))); diff != "" {
		t.Errorf("under 20 mismatch (-want +got):\n%s", diff)
	}

	g2 := openBook(t, "testdata/test2.txt")
	want := []string{"today", "went", "outside", "where",
		"happened", "well", "oh", "words", "july", "saw", "birb"}
	if diff := cmp.Diff(want, words(g2.MostInteresting(common))); diff != "" {
		t.Errorf("over 20 mismatch (-want +got):\n%s", diff)
	}
}

func TestLeastFrequent(t *testing.T) {
	g1 := openBook(t, "testdata/test.txt")
	want1 := []string{"who", "where", "are", "you", "how", "happened", "what"}
	if diff := cmp.Diff(want1, words(g1.LeastFrequent())); diff != "" {
		t.Errorf("under 20 mismatch (-want +got):\n%s", diff)
	}

	g2 := openBook(t, "testdata/test2.txt")
	want2 := []string{"who", "where", "are", "how", "happened", "well", "did", "do",
		"oh", "my", "word", "words", "it", "is", "july", "and",
		"saw", "a", "birb", "you"}
	if diff := cmp.Diff(want2, words(g2.LeastFrequent())); diff != "" {
		t.Errorf("over 20 mismatch (-want +got):\n%s", diff)
	}
}

func TestListSizeFromConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.Analysis.ListSize = 3
	b, err := Open("testdata/test2.txt", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"what", "i", "you"}, words(b.MostFrequent())); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if got := len(b.LeastFrequent()); got != 3 {
		t.Errorf("LeastFrequent len = %d, want 3", got)
	}
}

func TestProgression(t *testing.T) {
	g1 := openBook(t, "testdata/test.txt")
	g2 := openBook(t, "testdata/test2.txt")

	tests := []struct {
		name string
		b    *Book
		word string
		want []int
	}{
		{"what 1", g1, "what", []int{2, 1}},
		{"what 2", g2, "what", []int{2, 1, 1, 0, 0}},
		{"outside 1", g1, "outside", []int{0, 0}},
		{"outside 2", g2, "outside", []int{0, 0, 1, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.b.Progression(tt.word)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := g1.Progression(" "); !errors.Is(err, models.ErrInvalidArgument) {
		t.Errorf("blank word err = %v, want ErrInvalidArgument", err)
	}
}

func TestChapterOf(t *testing.T) {
	g1 := openBook(t, "testdata/test.txt")
	g2 := openBook(t, "testdata/test2.txt")

	tests := []struct {
		b     *Book
		quote string
		want  int
	}{
		{g1, "what?", 1},
		{g1, "where are you?", 1},
		{g1, "how?!?!?!?!", 2},
		{g1, "what happened?", 2},
		{g1, "there is nothing more stimulating", models.NotFound},
		{g1, "?!?!", models.NotFound},
		{g2, "today i went outside", 5},
	}
	for _, tt := range tests {
		got, err := tt.b.ChapterOf(tt.quote)
		if err != nil {
			t.Fatalf("ChapterOf(%q): %v", tt.quote, err)
		}
		if got != tt.want {
			t.Errorf("ChapterOf(%q) = %d, want %d", tt.quote, got, tt.want)
		}
	}

	if _, err := g1.ChapterOf(""); !errors.Is(err, models.ErrInvalidArgument) {
		t.Errorf("blank quote err = %v, want ErrInvalidArgument", err)
	}
}

func TestGenerateSentence(t *testing.T) {
	b := openBook(t, "testdata/test2.txt")
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		s, err := b.GenerateSentence(rng)
		if err != nil {
			t.Fatal(err)
		}
		if n := len(strings.Fields(s)); n == 0 || n > 21 {
			t.Errorf("sentence %q has %d words", s, n)
		}
		if s != strings.ToLower(s) {
			t.Errorf("sentence %q is not lowercase", s)
		}
	}
}

func TestSimilarChapters(t *testing.T) {
	b := openBook(t, "testdata/test2.txt")
	matches, err := b.SimilarChapters(context.Background(), "saw a birb")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != config.DefaultResults {
		t.Fatalf("got %d matches, want %d", len(matches), config.DefaultResults)
	}
	if matches[0].Chapter != 5 {
		t.Errorf("best match is chapter %d, want 5", matches[0].Chapter)
	}
}

func TestNewBookInvariants(t *testing.T) {
	b := NewBook([]string{"Chapter 1", "a b a", "Chapter 2", "b c"}, nil)
	total := 0
	for _, ch := range b.Corpus().Chapters() {
		total += ch.Len()
	}
	if total != b.TotalWords() || b.TotalWords() != 5 {
		t.Errorf("TotalWords = %d, chapter sum = %d", b.TotalWords(), total)
	}
	if b.UniqueWords() != 3 {
		t.Errorf("UniqueWords = %d, want 3", b.UniqueWords())
	}
}
