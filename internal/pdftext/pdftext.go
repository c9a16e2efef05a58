// Package pdftext dumps the raw text content of a PDF, page by page.
//
// Extraction quality is whatever the PDF's content streams give up — the
// downstream cleanup stage exists precisely because this output is noisy.
package pdftext

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type Extractor struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract returns the document's raw text (pages joined by newlines) and its
// page count.
func (e *Extractor) Extract(path string) (string, int, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.Warn("pdftext.close_error", "path", path, "error", err)
		}
	}()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return "", 0, fmt.Errorf("pdfcpu read: %w", err)
	}

	var sb strings.Builder
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		pageText := extractPageText(ctx, pageNr)
		if pageText == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(pageText)
	}

	text := sb.String()
	if text == "" {
		return "", ctx.PageCount, fmt.Errorf("no text content found in PDF")
	}

	e.logger.Debug("pdftext.extracted",
		"path", path,
		"pages", ctx.PageCount,
		"chars", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, ctx.PageCount, nil
}
