package chunk

import "strings"

// Break-point priorities for SplitBoundary, searched backward in order.
var boundarySeps = []string{"\n\n", "\n", " "}

// SplitBoundary splits text into non-overlapping chunks of at most maxSize
// bytes, preferring to cut at a paragraph break, then a line break, then a
// word break. A candidate break is only taken when it falls in the second
// half of the window; a break too close to the window start would produce
// degenerate tiny chunks, so the search falls through to the next priority
// and finally to a hard cut at maxSize. Chunks are trimmed before emission
// and the scan resumes immediately after the break.
func SplitBoundary(text string, maxSize int) []Chunk {
	if maxSize <= 0 || len(text) == 0 {
		return nil
	}

	var chunks []Chunk
	pos := 0
	index := 0
	for pos < len(text) {
		rest := len(text) - pos
		if rest <= maxSize {
			if c, ok := trimRange(text, pos, len(text), index); ok {
				chunks = append(chunks, c)
			}
			break
		}

		window := text[pos : pos+maxSize]
		bp := boundaryBreak(window, maxSize)
		if c, ok := trimRange(text, pos, pos+bp, index); ok {
			chunks = append(chunks, c)
			index++
		}

		// Resume after the break, skipping the whitespace that the next
		// chunk would trim anyway. bp > 0 or the skip below guarantees
		// forward progress.
		pos += bp
		for pos < len(text) && isSpaceByte(text[pos]) {
			pos++
		}
	}
	return chunks
}

// boundaryBreak finds the split index inside window, falling back to a hard
// cut at maxSize when no separator lands in the second half of the window.
func boundaryBreak(window string, maxSize int) int {
	for _, sep := range boundarySeps {
		if bp := strings.LastIndex(window, sep); bp >= maxSize/2 {
			return bp
		}
	}
	return maxSize
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
