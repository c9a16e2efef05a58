// Package export aggregates per-document CSV artifacts into one XLSX workbook.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/transcript-harvester/internal/normalize"
)

// Service builds XLSX bytes from a directory of .csv legend artifacts.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// fileRecords is the parsed content of one artifact.
type fileRecords struct {
	base    string
	records []normalize.Record
}

// BuildWorkbook reads every .csv under dir (sorted by name) and returns an
// XLSX workbook with a "Legends" sheet of all records and a "Summary" sheet
// of per-document counts. Empty artifacts count as documents with no result.
func (s *Service) BuildWorkbook(dir string) ([]byte, error) {
	start := time.Now()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read artifact dir: %w", err)
	}

	var files []fileRecords
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read artifact %s: %w", e.Name(), err)
		}
		res := normalize.Normalize(string(raw), normalize.Options{})
		files = append(files, fileRecords{
			base:    strings.TrimSuffix(e.Name(), ".csv"),
			records: res.Records,
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].base < files[j].base })

	f := excelize.NewFile()

	const legends = "Legends"
	f.SetSheetName("Sheet1", legends)
	for i, h := range []string{"Document", "Code", "Description"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(legends, cell, h)
	}
	row := 2
	totalRecords := 0
	for _, fr := range files {
		for _, r := range fr.records {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(legends, cell, v)
			}
			write(1, fr.base)
			write(2, r.Code)
			write(3, r.Description)
			row++
			totalRecords++
		}
	}
	_ = f.SetColWidth(legends, "A", "A", 36)
	_ = f.SetColWidth(legends, "B", "B", 10)
	_ = f.SetColWidth(legends, "C", "C", 60)

	const summary = "Summary"
	if _, err := f.NewSheet(summary); err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}
	for i, h := range []string{"Document", "Records"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(summary, cell, h)
	}
	withRecords := 0
	for i, fr := range files {
		cellA, _ := excelize.CoordinatesToCellName(1, i+2)
		cellB, _ := excelize.CoordinatesToCellName(2, i+2)
		_ = f.SetCellValue(summary, cellA, fr.base)
		_ = f.SetCellValue(summary, cellB, len(fr.records))
		if len(fr.records) > 0 {
			withRecords++
		}
	}
	totalRow := len(files) + 3
	cellA, _ := excelize.CoordinatesToCellName(1, totalRow)
	cellB, _ := excelize.CoordinatesToCellName(2, totalRow)
	_ = f.SetCellValue(summary, cellA, fmt.Sprintf("Total (%d/%d with records)", withRecords, len(files)))
	_ = f.SetCellValue(summary, cellB, totalRecords)
	_ = f.SetColWidth(summary, "A", "A", 44)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"documents", len(files),
		"records", totalRecords,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
