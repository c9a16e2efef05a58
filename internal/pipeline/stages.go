package pipeline

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/joseph-ayodele/transcript-harvester/internal/chunk"
	"github.com/joseph-ayodele/transcript-harvester/internal/common"
	"github.com/joseph-ayodele/transcript-harvester/internal/extract"
	"github.com/joseph-ayodele/transcript-harvester/internal/ingest"
	"github.com/joseph-ayodele/transcript-harvester/internal/llm"
	"github.com/joseph-ayodele/transcript-harvester/internal/normalize"
	"github.com/joseph-ayodele/transcript-harvester/internal/pdftext"
)

// StageSet wires the four harvest stages from their collaborators.
//
// Two completers are deliberate: Searcher carries the not-found sentinel
// convention for legend hunting, while Rewriter must not — cleaned text or
// CSV output that happens to contain the marker is still a valid response.
type StageSet struct {
	Logger   *slog.Logger
	PDF      *pdftext.Extractor
	Rewriter llm.Completer
	Searcher llm.Completer

	ChunkSize  int // boundary chunker, clean stage
	WindowSize int // sliding window, legend stage
	Overlap    int
}

// PDFText dumps a PDF's raw text.
func (s *StageSet) PDFText() StageFunc {
	return func(ctx context.Context, doc ingest.Document) ([]byte, error) {
		text, pages, err := s.PDF.Extract(doc.Path)
		if err != nil {
			return nil, common.NewAppError("PDF_EXTRACT", doc.Base, common.ErrDocumentFatal)
		}
		s.Logger.Debug("stage.pdftext", "doc", doc.Base, "pages", pages, "chars", len(text))
		return []byte(text), nil
	}
}

// Clean rewrites raw text chunk by chunk. A chunk whose service call fails
// keeps its original text, so a flaky service degrades the cleanup instead
// of losing content.
func (s *StageSet) Clean() StageFunc {
	return func(ctx context.Context, doc ingest.Document) ([]byte, error) {
		raw, err := os.ReadFile(doc.Path)
		if err != nil {
			return nil, common.NewAppError("READ_INPUT", doc.Base, common.ErrDocumentFatal)
		}

		chunks := chunk.SplitBoundary(string(raw), s.ChunkSize)
		cleaned := make([]string, 0, len(chunks))
		kept := 0
		for _, ck := range chunks {
			out := s.Rewriter.Complete(ctx, llm.CleanVariant.Render(ck.Text))
			if out.Hit() {
				cleaned = append(cleaned, out.Text)
			} else {
				cleaned = append(cleaned, ck.Text)
				kept++
			}
		}
		if kept > 0 {
			s.Logger.Warn("stage.clean.kept_original", "doc", doc.Base, "chunks", len(chunks), "kept", kept)
		}
		return []byte(strings.Join(cleaned, "\n\n")), nil
	}
}

// Legends hunts for the grade legend with the escalation ladder over sliding
// windows. No hit is not an error: the empty artifact records "processed,
// nothing found".
func (s *StageSet) Legends() StageFunc {
	esc := extract.New(s.Searcher, s.Logger)
	return func(ctx context.Context, doc ingest.Document) ([]byte, error) {
		raw, err := os.ReadFile(doc.Path)
		if err != nil {
			return nil, common.NewAppError("READ_INPUT", doc.Base, common.ErrDocumentFatal)
		}

		res := esc.Extract(ctx, doc.Base, string(raw), llm.LegendVariants(), func(text string) []chunk.Chunk {
			return chunk.SplitWindow(text, s.WindowSize, s.Overlap)
		})
		if !res.Found {
			return nil, nil
		}
		return []byte(res.Text), nil
	}
}

// CSV formats a legend block into validated CODE,DESCRIPTION rows.
func (s *StageSet) CSV() StageFunc {
	return func(ctx context.Context, doc ingest.Document) ([]byte, error) {
		raw, err := os.ReadFile(doc.Path)
		if err != nil {
			return nil, common.NewAppError("READ_INPUT", doc.Base, common.ErrDocumentFatal)
		}
		if len(strings.TrimSpace(string(raw))) == 0 {
			return nil, nil
		}

		out := s.Rewriter.Complete(ctx, llm.CSVVariant.Render(string(raw)))
		if !out.Hit() {
			return nil, nil
		}

		res := normalize.Normalize(out.Text, normalize.Options{})
		if res.Rejected > 0 {
			s.Logger.Warn("stage.csv.rejected_lines", "doc", doc.Base, "accepted", len(res.Records), "rejected", res.Rejected)
		}
		if len(res.Records) == 0 {
			return nil, nil
		}
		return []byte(normalize.FormatCSV(res.Records)), nil
	}
}
