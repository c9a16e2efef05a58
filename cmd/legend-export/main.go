package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/transcript-harvester/internal/export"
)

func main() {
	var (
		dir = flag.String("dir", "", "directory of .csv legend artifacts (required)")
		out = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "Error: -dir is required")
		flag.Usage()
		os.Exit(2)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "legends.xlsx")
	}

	svc := export.NewService(logger)
	xlsxBytes, err := svc.BuildWorkbook(*dir)
	if err != nil {
		logger.Error("failed to build workbook", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0o644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Export complete!\n")
	fmt.Printf("- Output: %s\n", *out)
}
