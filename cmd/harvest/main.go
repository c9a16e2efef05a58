package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/transcript-harvester/constants"
	"github.com/joseph-ayodele/transcript-harvester/internal/common"
	"github.com/joseph-ayodele/transcript-harvester/internal/ingest"
	"github.com/joseph-ayodele/transcript-harvester/internal/llm"
	"github.com/joseph-ayodele/transcript-harvester/internal/llm/ollama"
	"github.com/joseph-ayodele/transcript-harvester/internal/pdftext"
	"github.com/joseph-ayodele/transcript-harvester/internal/pipeline"
)

// stageOrder is the full chain for -stage all.
var stageOrder = []constants.Stage{
	constants.StagePDFText,
	constants.StageClean,
	constants.StageLegends,
	constants.StageCSV,
}

func main() {
	var (
		stageName  = flag.String("stage", "", "stage to run: pdftext | clean | legends | csv | all (required)")
		in         = flag.String("in", "", "input directory or single file (required)")
		out        = flag.String("out", "", "output directory (required)")
		configPath = flag.String("config", "", "optional YAML config file")
		model      = flag.String("model", "", "override model identifier")
		baseURL    = flag.String("base-url", "", "override extraction service base URL")
		chunkSize  = flag.Int("chunk-size", 0, "override boundary chunk size in chars")
		windowSize = flag.Int("window-size", 0, "override sliding window size in chars")
		overlap    = flag.Int("overlap", -1, "override sliding window overlap in chars")
		workers    = flag.Int("workers", 0, "override worker count")
		limit      = flag.Int("limit", -1, "limit number of documents (0 = no limit)")
		overwrite  = flag.Bool("overwrite", false, "overwrite existing output files instead of resuming")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *stageName == "" || *in == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "Error: -stage, -in and -out are required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if *configPath != "" {
		if err := cfg.ApplyFile(*configPath); err != nil {
			logger.Error("failed to load config file", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}
	if *model != "" {
		cfg.LLM.Model = *model
	}
	if *baseURL != "" {
		cfg.LLM.BaseURL = *baseURL
	}
	if *chunkSize > 0 {
		cfg.Chunking.ChunkSize = *chunkSize
	}
	if *windowSize > 0 {
		cfg.Chunking.WindowSize = *windowSize
	}
	if *overlap >= 0 {
		cfg.Chunking.Overlap = *overlap
	}
	if *workers > 0 {
		cfg.Runner.Workers = *workers
	}
	if *limit >= 0 {
		cfg.Runner.Limit = *limit
	}
	if *overwrite {
		cfg.Runner.Overwrite = true
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if *stageName == "all" {
		runAll(ctx, logger, cfg, *in, *out)
		return
	}

	stage := constants.Stage(*stageName)
	if !stage.Valid() {
		logger.Error("unknown stage", "stage", *stageName)
		os.Exit(2)
	}
	stats, err := runStage(ctx, logger, cfg, stage, *in, *out)
	if err != nil {
		logger.Error("stage failed", "stage", stage, "error", err)
		os.Exit(1)
	}
	printSummary(stage, stats)
}

// runAll chains the four stages through subdirectories of outRoot.
func runAll(ctx context.Context, logger *slog.Logger, cfg *common.Config, in, outRoot string) {
	dirs := map[constants.Stage]string{
		constants.StagePDFText: filepath.Join(outRoot, "raw"),
		constants.StageClean:   filepath.Join(outRoot, "clean"),
		constants.StageLegends: filepath.Join(outRoot, "legends"),
		constants.StageCSV:     filepath.Join(outRoot, "csv"),
	}

	stageIn := in
	for _, stage := range stageOrder {
		stats, err := runStage(ctx, logger, cfg, stage, stageIn, dirs[stage])
		if err != nil {
			logger.Error("stage failed", "stage", stage, "error", err)
			os.Exit(1)
		}
		printSummary(stage, stats)
		stageIn = dirs[stage]
	}
}

func runStage(ctx context.Context, logger *slog.Logger, cfg *common.Config, stage constants.Stage, in, out string) (pipeline.Stats, error) {
	docs, scan, err := ingest.Enumerate(in, ingest.Options{
		Ext:        stage.InputExt(),
		Limit:      cfg.Runner.Limit,
		SkipEmpty:  stage == constants.StageCSV,
		SkipHidden: true,
	})
	if err != nil {
		return pipeline.Stats{}, err
	}
	logger.Info("ingest.enumerated",
		"stage", stage,
		"input", in,
		"scanned", scan.Scanned,
		"matched", scan.Matched,
		"skipped_empty", scan.SkippedEmpty,
		"documents", len(docs),
	)

	set := &pipeline.StageSet{
		Logger: logger,
		PDF:    pdftext.New(logger),
		Rewriter: ollama.NewClient(ollama.Config{
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			Timeout: cfg.LLM.Timeout,
		}, logger),
		Searcher: ollama.NewClient(ollama.Config{
			BaseURL:  cfg.LLM.BaseURL,
			Model:    cfg.LLM.Model,
			Timeout:  cfg.LLM.Timeout,
			Sentinel: llm.NotFoundSentinel,
		}, logger),
		ChunkSize:  cfg.Chunking.ChunkSize,
		WindowSize: cfg.Chunking.WindowSize,
		Overlap:    cfg.Chunking.Overlap,
	}

	var fn pipeline.StageFunc
	switch stage {
	case constants.StagePDFText:
		fn = set.PDFText()
	case constants.StageClean:
		fn = set.Clean()
	case constants.StageLegends:
		fn = set.Legends()
	case constants.StageCSV:
		fn = set.CSV()
	}

	runner := pipeline.NewRunner(pipeline.Options{
		Workers: cfg.Runner.Workers,
		Resume:  !cfg.Runner.Overwrite,
		Logger:  logger,
	})
	return runner.Run(ctx, docs, func(doc ingest.Document) string {
		return filepath.Join(out, doc.Base+stage.OutputExt())
	}, fn)
}

func printSummary(stage constants.Stage, stats pipeline.Stats) {
	fmt.Printf("Stage %s complete!\n", stage)
	fmt.Printf("- Completed: %d\n", stats.Completed)
	fmt.Printf("- Errored: %d\n", stats.Errored)
	fmt.Printf("- Skipped: %d\n", stats.Skipped)
	fmt.Printf("- Elapsed: %s (mean %s/item)\n",
		stats.Elapsed.Round(10*time.Millisecond), stats.MeanLatency().Round(10*time.Millisecond))
}
