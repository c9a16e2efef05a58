package chunk

// SplitWindow splits text into overlapping windows of windowSize bytes whose
// start advances by windowSize-overlap each step. Any block of text up to
// windowSize bytes is therefore fully contained in at least one window, even
// when it straddles a stride boundary. Out-of-range sizes are clamped the
// same way regardless of input so callers get a usable split instead of an
// error.
func SplitWindow(text string, windowSize, overlap int) []Chunk {
	if windowSize <= 0 {
		windowSize = 3000
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= windowSize {
		overlap = windowSize / 4
	}
	if len(text) == 0 {
		return nil
	}

	if len(text) <= windowSize {
		if c, ok := trimRange(text, 0, len(text), 0); ok {
			return []Chunk{c}
		}
		return nil
	}

	stride := windowSize - overlap
	var chunks []Chunk
	index := 0
	for start := 0; start < len(text); start += stride {
		end := start + windowSize
		if end > len(text) {
			end = len(text)
		}
		if c, ok := trimRange(text, start, end, index); ok {
			chunks = append(chunks, c)
			index++
		}
		if end >= len(text) {
			break
		}
	}
	return chunks
}
