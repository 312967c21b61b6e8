package models

const (
	// ChapterMarker is the exact word that opens a new chapter. Case-sensitive.
	ChapterMarker = "Chapter"

	// NotFound is returned by quote lookups that match no chapter.
	NotFound = -1

	// MaxSentenceWords bounds the Markov walk.
	MaxSentenceWords = 20

	SentenceTerminals = ".?!"
	StrippedRunes     = `.,;:!?\/–"'_()`
	DoubleHyphen      = "--"
)
