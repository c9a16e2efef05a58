package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeCSV(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestBuildWorkbook(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "state-u.csv", "A,Excellent\nB,Good")
	writeCSV(t, dir, "city-college.csv", "W,Withdrawn")
	writeCSV(t, dir, "no-legend.csv", "")
	writeCSV(t, dir, "notes.txt", "ignored, wrong extension")

	out, err := NewService(nil).BuildWorkbook(dir)
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	cell := func(sheet, ref string) string {
		t.Helper()
		v, err := f.GetCellValue(sheet, ref)
		if err != nil {
			t.Fatal(err)
		}
		return v
	}

	// Legends sheet: documents in name order, one row per record.
	if got := cell("Legends", "A1"); got != "Document" {
		t.Fatalf("header A1 = %q", got)
	}
	if got := cell("Legends", "A2"); got != "city-college" {
		t.Fatalf("A2 = %q, want city-college first", got)
	}
	if got := cell("Legends", "B2"); got != "W" {
		t.Fatalf("B2 = %q", got)
	}
	if got := cell("Legends", "C3"); got != "Excellent" {
		t.Fatalf("C3 = %q", got)
	}
	if got := cell("Legends", "B4"); got != "B" {
		t.Fatalf("B4 = %q", got)
	}

	// Summary sheet: per-document counts; empty artifact shows zero.
	if got := cell("Summary", "A3"); got != "no-legend" {
		t.Fatalf("summary A3 = %q", got)
	}
	if got := cell("Summary", "B3"); got != "0" {
		t.Fatalf("summary B3 = %q", got)
	}
	if got := cell("Summary", "B4"); got != "2" {
		t.Fatalf("summary B4 = %q", got)
	}
	if got := cell("Summary", "B6"); got != "3" {
		t.Fatalf("summary total = %q", got)
	}
}

func TestBuildWorkbookNormalizesArtifacts(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "messy.csv", "A,Excellent\ngarbage line without separator\nTOOLONG,dropped")

	out, err := NewService(nil).BuildWorkbook(dir)
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Legends")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1 record", len(rows))
	}
}

func TestBuildWorkbookMissingDir(t *testing.T) {
	if _, err := NewService(nil).BuildWorkbook(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestBuildWorkbookEmptyDir(t *testing.T) {
	out, err := NewService(nil).BuildWorkbook(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	if _, err := f.GetRows("Summary"); err != nil {
		t.Fatal(err)
	}
}
