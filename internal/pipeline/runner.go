// Package pipeline drives documents through a stage with bounded
// concurrency, per-document error isolation and resume-by-output-existence.
package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/transcript-harvester/internal/common"
	"github.com/joseph-ayodele/transcript-harvester/internal/ingest"
)

// StageFunc produces the artifact bytes for one document. A nil slice with a
// nil error means "processed, no result" and still writes an empty artifact.
// An error is a document-level failure: the runner logs it, counts it, and
// writes an empty placeholder so the document reads as processed on a resume
// run. Reprocessing failures therefore requires an overwrite run — one
// uniform policy for every stage.
type StageFunc func(ctx context.Context, doc ingest.Document) ([]byte, error)

// Options configures a Runner.
type Options struct {
	Workers int  // concurrent stage invocations; 1 = strictly sequential
	Resume  bool // skip documents whose output already exists
	Logger  *slog.Logger
}

type Runner struct {
	workers int
	resume  bool
	logger  *slog.Logger
}

func NewRunner(opts Options) *Runner {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Runner{workers: opts.Workers, resume: opts.Resume, logger: opts.Logger}
}

// task binds one document to its output path for the duration of a run.
type task struct {
	doc ingest.Document
	out string
}

// Run executes stage for every document whose output is missing (or for all
// of them when resume is off). Worker goroutines consume a fixed task list;
// tasks never share state beyond the counters, which a single mutex guards
// together with the progress line so interleaved output stays coherent.
// An empty input set is the one fatal condition: it stops the run before any
// dispatch.
func (r *Runner) Run(ctx context.Context, docs []ingest.Document, outPathFor func(ingest.Document) string, stage StageFunc) (Stats, error) {
	if len(docs) == 0 {
		return Stats{}, common.NewAppError("EMPTY_INPUT", "no input documents", common.ErrInvalidInput)
	}

	runID := uuid.New().String()

	var tasks []task
	var stats Stats
	for _, doc := range docs {
		out := outPathFor(doc)
		if r.resume {
			if _, err := os.Stat(out); err == nil {
				stats.Skipped++
				continue
			}
		}
		tasks = append(tasks, task{doc: doc, out: out})
	}
	if stats.Skipped > 0 {
		r.logger.Info("runner.skipped_existing", "run_id", runID, "skipped", stats.Skipped)
	}
	if len(tasks) == 0 {
		return stats, nil
	}

	for _, t := range tasks {
		if err := os.MkdirAll(filepath.Dir(t.out), 0o755); err != nil {
			return stats, common.WrapError(err, "create output dir")
		}
	}

	r.logger.Info("runner.start",
		"run_id", runID,
		"tasks", len(tasks),
		"workers", r.workers,
		"resume", r.resume,
	)

	start := time.Now()
	total := len(tasks)
	var mu sync.Mutex
	var wg sync.WaitGroup
	ch := make(chan task)

	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range ch {
				r.runTask(ctx, runID, t, stage, start, total, &mu, &stats)
			}
		}()
	}
	for _, t := range tasks {
		ch <- t
	}
	close(ch)
	wg.Wait()

	stats.Elapsed = time.Since(start)
	r.logger.Info("runner.done",
		"run_id", runID,
		"completed", stats.Completed,
		"errored", stats.Errored,
		"skipped", stats.Skipped,
		"elapsed_ms", stats.Elapsed.Milliseconds(),
		"rate_per_min", stats.Throughput()*60,
	)
	return stats, nil
}

// runTask executes one stage invocation and records its result. Failures are
// isolated here: nothing a task does can abort the run.
func (r *Runner) runTask(ctx context.Context, runID string, t task, stage StageFunc, start time.Time, total int, mu *sync.Mutex, stats *Stats) {
	taskStart := time.Now()
	artifact, err := stage(ctx, t.doc)
	if err != nil {
		artifact = nil // placeholder: processed, no result
	}
	writeErr := os.WriteFile(t.out, artifact, 0o644)
	latency := time.Since(taskStart)

	mu.Lock()
	defer mu.Unlock()

	if err != nil || writeErr != nil {
		stats.Errored++
	} else {
		stats.Completed++
	}
	stats.totalLatency += latency

	done := stats.Completed + stats.Errored
	elapsed := time.Since(start)
	rate := 0.0
	if elapsed > 0 {
		rate = float64(done) / elapsed.Seconds()
	}
	eta := 0.0
	if rate > 0 {
		eta = float64(total-done) / rate
	}

	if err != nil {
		cause := err
		if writeErr != nil {
			cause = writeErr
		}
		r.logger.Error("runner.task.error",
			"run_id", runID,
			"doc", t.doc.Base,
			"progress", progress(done, total),
			"error", cause,
			"elapsed_ms", latency.Milliseconds(),
			"eta", formatETA(eta),
		)
		return
	}
	if writeErr != nil {
		r.logger.Error("runner.task.write_error",
			"run_id", runID,
			"doc", t.doc.Base,
			"progress", progress(done, total),
			"error", writeErr,
			"eta", formatETA(eta),
		)
		return
	}
	r.logger.Info("runner.task.done",
		"run_id", runID,
		"doc", t.doc.Base,
		"progress", progress(done, total),
		"bytes", len(artifact),
		"elapsed_ms", latency.Milliseconds(),
		"rate_per_min", rate*60,
		"eta", formatETA(eta),
	)
}
