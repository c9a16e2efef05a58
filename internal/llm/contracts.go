package llm

import (
	"context"
	"strings"
)

// Status classifies the outcome of one extraction attempt.
type Status int

const (
	StatusHit          Status = iota // usable response text
	StatusNotFound                   // service answered with the not-found convention
	StatusTransport                  // network error or timeout
	StatusServiceError               // non-success status or malformed envelope
	StatusEmpty                      // success status but nothing usable in the body
)

func (s Status) String() string {
	switch s {
	case StatusHit:
		return "hit"
	case StatusNotFound:
		return "not_found"
	case StatusTransport:
		return "transport"
	case StatusServiceError:
		return "service_error"
	case StatusEmpty:
		return "empty"
	}
	return "unknown"
}

// Outcome is the tagged result of one (chunk, instruction) attempt.
// It is never mutated after creation.
type Outcome struct {
	Status Status
	Text   string // trimmed response text, set only for StatusHit
	Err    error  // underlying cause for transport/service failures
}

func (o Outcome) Hit() bool { return o.Status == StatusHit }

// Completer sends one rendered prompt to the extraction service.
// Implementations must confine the service's wire conventions (sentinel
// strings, response envelopes) to their own boundary and report everything
// else through the Outcome taxonomy.
type Completer interface {
	Complete(ctx context.Context, prompt string) Outcome
}

// NotFoundSentinel is the wire convention the extraction service uses to say
// "nothing matched". It is parsed at the client boundary only; the rest of
// the engine sees StatusNotFound.
const NotFoundSentinel = "NO_LEGEND"

// placeholder marks where a variant template receives the chunk text.
const placeholder = "{text}"

// Variant is one ranked instruction strategy. Lower ranks encode precise,
// low-recall searches; higher ranks broaden the match. Callers try variants
// in rank order and stop at the first hit.
type Variant struct {
	Rank     int
	Name     string
	Template string // must contain the {text} placeholder
}

// Render substitutes chunkText into the variant template. Brace characters
// in the chunk are escaped first so document content cannot corrupt the
// template's own control sequences.
func (v Variant) Render(chunkText string) string {
	return strings.ReplaceAll(v.Template, placeholder, EscapeBraces(chunkText))
}

// EscapeBraces doubles brace characters in document text.
func EscapeBraces(s string) string {
	s = strings.ReplaceAll(s, "{", "{{")
	return strings.ReplaceAll(s, "}", "}}")
}
