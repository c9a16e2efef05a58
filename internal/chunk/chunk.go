// Package chunk splits document text into bounded pieces for extraction.
//
// Two strategies are provided:
//   - SplitBoundary — non-overlapping pieces that prefer structural break
//     points (paragraph, line, word), used for cleanup passes.
//   - SplitWindow — overlapping fixed-stride windows, used when a target
//     block must land whole inside at least one piece.
package chunk

import (
	"unicode"
	"unicode/utf8"
)

// Chunk is one bounded piece of a document's text. Start and End are byte
// offsets into the source text; Text is the trimmed substring between them.
type Chunk struct {
	Text  string
	Start int
	End   int
	Index int
}

// trimRange trims whitespace off text[start:end] and returns the resulting
// chunk with offsets adjusted to the trimmed region. ok is false when the
// region is all whitespace.
func trimRange(text string, start, end, index int) (Chunk, bool) {
	lo, hi := start, end
	for lo < hi {
		r, size := utf8.DecodeRuneInString(text[lo:hi])
		if !unicode.IsSpace(r) {
			break
		}
		lo += size
	}
	for hi > lo {
		r, size := utf8.DecodeLastRuneInString(text[lo:hi])
		if !unicode.IsSpace(r) {
			break
		}
		hi -= size
	}
	if lo >= hi {
		return Chunk{}, false
	}
	return Chunk{Text: text[lo:hi], Start: lo, End: hi, Index: index}, true
}
