package models

import "fmt"

// WordCount is a token and the number of times it occurs.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

func (w WordCount) String() string {
	return fmt.Sprintf("%s=%d", w.Word, w.Count)
}

// ChapterMatch is a chapter ranked by similarity to a phrase.
type ChapterMatch struct {
	Chapter    int     `json:"chapter"`
	Similarity float32 `json:"similarity"`
}
