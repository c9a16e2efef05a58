// Package extract drives extraction-service calls across chunks and across
// an ordered ladder of instruction variants.
package extract

import (
	"context"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/transcript-harvester/internal/chunk"
	"github.com/joseph-ayodele/transcript-harvester/internal/llm"
)

// Chunker produces the chunk sequence for one document. The strategy is
// fixed per Extract call; both chunkers in internal/chunk satisfy it via a
// closure over their size parameters.
type Chunker func(text string) []chunk.Chunk

// Result is the per-document outcome of the escalation ladder.
type Result struct {
	Text     string // winning attempt's text; empty when Found is false
	Rank     int    // winning variant's rank; 0 when Found is false
	Attempts int    // total service calls made
	Found    bool
}

// Escalator tries variants in rank order over a document's chunks and stops
// at the first hit. Earlier variants encode a precise, low-recall search;
// later ones broaden the match. First hit wins across the whole ladder —
// a later chunk is never re-scanned for a "better" match once any attempt
// succeeds.
type Escalator struct {
	completer llm.Completer
	logger    *slog.Logger
}

func New(completer llm.Completer, logger *slog.Logger) *Escalator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Escalator{completer: completer, logger: logger}
}

// Extract runs the ladder for one document. Attempt order is deterministic:
// chunk 0 of variant 1, chunk 1 of variant 1, ..., chunk 0 of variant 2, and
// so on. Transport failures, service errors, empty responses and not-found
// answers all fall through to the next attempt; only a hit stops the scan.
func (e *Escalator) Extract(ctx context.Context, docID, text string, variants []llm.Variant, chunkFn Chunker) Result {
	start := time.Now()
	chunks := chunkFn(text)
	attempts := 0

	for _, v := range variants {
		for _, ck := range chunks {
			if ctx.Err() != nil {
				e.logger.Warn("extract.cancelled", "doc", docID, "attempts", attempts)
				return Result{Attempts: attempts}
			}
			attempts++
			out := e.completer.Complete(ctx, v.Render(ck.Text))
			if out.Hit() {
				e.logger.Info("extract.hit",
					"doc", docID,
					"variant", v.Name,
					"rank", v.Rank,
					"chunk", ck.Index,
					"attempts", attempts,
					"response_len", len(out.Text),
					"elapsed_ms", time.Since(start).Milliseconds(),
				)
				return Result{Text: out.Text, Rank: v.Rank, Attempts: attempts, Found: true}
			}
			e.logger.Debug("extract.miss",
				"doc", docID,
				"variant", v.Name,
				"chunk", ck.Index,
				"status", out.Status.String(),
			)
		}
	}

	e.logger.Info("extract.no_result",
		"doc", docID,
		"chunks", len(chunks),
		"variants", len(variants),
		"attempts", attempts,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{Attempts: attempts}
}
