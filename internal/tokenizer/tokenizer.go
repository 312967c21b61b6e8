// Package tokenizer turns raw lines of a book into cleaned lowercase word
// tokens and detects chapter markers.
package tokenizer

import (
	"strings"
	"unicode"

	"book-analysis/internal/models"
)

var stripper = newStripper(models.StrippedRunes)

func newStripper(runes string) *strings.Replacer {
	oldnew := make([]string, 0, 2*len(runes))
	for _, r := range runes {
		oldnew = append(oldnew, string(r), "")
	}
	return strings.NewReplacer(oldnew...)
}

// isSpace matches Java's Character.isWhitespace: Unicode separators other
// than the no-break spaces, plus the ASCII controls \t through \r and
// \x1c through \x1f. Unlike unicode.IsSpace it rejects U+0085 and U+00A0.
func isSpace(r rune) bool {
	switch r {
	case '\u0085', '\u00a0', '\u2007', '\u202f':
		return false
	case '\x1c', '\x1d', '\x1e', '\x1f':
		return true
	}
	return unicode.IsSpace(r)
}

// CleanWord lowercases word, removes punctuation, turns "--" into a space
// and trims surrounding whitespace. Cleaning a clean word returns it unchanged.
func CleanWord(word string) string {
	word = stripper.Replace(strings.ToLower(word))
	word = strings.ReplaceAll(word, models.DoubleHyphen, " ")
	return strings.TrimFunc(word, isSpace)
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimFunc(s, isSpace) == ""
}

// Line tokenizes one line of a book.
//
// Pieces are split on single spaces. A piece equal to models.ChapterMarker
// ends the line and reports marker=true; the rest of the line is ignored.
// When collect is false no tokens are produced and pieces are only checked
// for the marker. When collect is true a piece that cleans to blank also ends
// the line, and a cleaned piece holding a space is split at the first space.
func Line(line string, collect bool) (tokens []string, marker bool) {
	for _, piece := range strings.Split(line, " ") {
		if piece == models.ChapterMarker {
			return tokens, true
		}
		if !collect {
			continue
		}

		word := CleanWord(piece)
		if IsBlank(word) {
			return tokens, false
		}
		if i := strings.Index(word, " "); i >= 0 {
			if head := word[:i]; head != "" {
				tokens = append(tokens, head)
			}
			word = word[i+1:]
		}
		if word != "" {
			tokens = append(tokens, word)
		}
	}
	return tokens, false
}

// QuoteTokens cleans every space separated piece of quote and drops blanks.
// Unlike Line it neither stops early nor splits cleaned pieces.
func QuoteTokens(quote string) []string {
	var tokens []string
	for _, piece := range strings.Split(quote, " ") {
		word := CleanWord(piece)
		if !IsBlank(word) {
			tokens = append(tokens, word)
		}
	}
	return tokens
}
