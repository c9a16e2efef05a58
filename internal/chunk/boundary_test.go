package chunk

import (
	"strings"
	"testing"
	"unicode"
)

// stripSpace removes all whitespace so reconstruction can be compared
// independently of the characters consumed at split points.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func TestSplitBoundaryEmpty(t *testing.T) {
	if got := SplitBoundary("", 100); got != nil {
		t.Fatalf("expected nil for empty input, got %d chunks", len(got))
	}
	if got := SplitBoundary("text", 0); got != nil {
		t.Fatalf("expected nil for non-positive size, got %d chunks", len(got))
	}
}

func TestSplitBoundarySingleChunk(t *testing.T) {
	chunks := SplitBoundary("  hello world  ", 100)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != "hello world" {
		t.Fatalf("expected trimmed text, got %q", chunks[0].Text)
	}
}

func TestSplitBoundaryPrefersParagraphBreaks(t *testing.T) {
	para1 := strings.Repeat("alpha ", 12) // 72 chars
	para2 := strings.Repeat("beta ", 12)
	text := para1 + "\n\n" + para2

	chunks := SplitBoundary(text, 100)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if strings.Contains(chunks[0].Text, "beta") {
		t.Fatalf("first chunk crossed the paragraph break: %q", chunks[0].Text)
	}
}

func TestSplitBoundaryReconstruction(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		sb.WriteString("Course CS101 Introduction to Computing grade A quality points 4.0\n")
		if i%5 == 0 {
			sb.WriteString("\n")
		}
	}
	text := sb.String()

	for _, maxSize := range []int{80, 200, 500, len(text) + 1} {
		chunks := SplitBoundary(text, maxSize)
		var joined strings.Builder
		for _, c := range chunks {
			if len(c.Text) > maxSize {
				t.Fatalf("maxSize=%d: chunk %d has %d chars", maxSize, c.Index, len(c.Text))
			}
			if text[c.Start:c.End] != c.Text {
				t.Fatalf("maxSize=%d: offsets do not match text for chunk %d", maxSize, c.Index)
			}
			joined.WriteString(c.Text)
			joined.WriteByte(' ')
		}
		if stripSpace(joined.String()) != stripSpace(text) {
			t.Fatalf("maxSize=%d: concatenated chunks do not reconstruct the input", maxSize)
		}
	}
}

func TestSplitBoundaryUnbreakableToken(t *testing.T) {
	text := strings.Repeat("a", 250)
	chunks := SplitBoundary(text, 100)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 hard-cut chunks, got %d", len(chunks))
	}
	for _, c := range chunks {
		if len(c.Text) > 100 {
			t.Fatalf("chunk %d exceeds max size: %d", c.Index, len(c.Text))
		}
	}
	if stripSpace(chunks[0].Text+chunks[1].Text+chunks[2].Text) != text {
		t.Fatal("hard cuts lost content")
	}
}

// A break point in the first half of every window must not be taken; the
// splitter falls through to a hard cut instead of emitting tiny fragments.
func TestSplitBoundaryRejectsEarlyBreaks(t *testing.T) {
	text := "ab " + strings.Repeat("c", 300)
	chunks := SplitBoundary(text, 100)
	for _, c := range chunks {
		if len(c.Text) > 100 {
			t.Fatalf("chunk exceeds max size: %d", len(c.Text))
		}
	}
	if len(chunks) > 4 {
		t.Fatalf("degenerate split into %d chunks", len(chunks))
	}
}

func TestSplitBoundaryIndexesAreSequential(t *testing.T) {
	text := strings.Repeat("word word word\n", 50)
	chunks := SplitBoundary(text, 60)
	for i, c := range chunks {
		if c.Index != i {
			t.Fatalf("chunk %d has index %d", i, c.Index)
		}
	}
}
