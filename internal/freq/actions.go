package freq

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/nickolas-z/goit-cs-hw-05/internal/common"
	"github.com/nickolas-z/goit-cs-hw-05/models"
	"github.com/nickolas-z/goit-cs-hw-05/pkg/chart"
	"github.com/nickolas-z/goit-cs-hw-05/pkg/runstore"
	"github.com/nickolas-z/goit-cs-hw-05/pkg/textcache"
	"github.com/urfave/cli/v2"
)

// WordFreqAction fetches a text, counts word frequencies with a worker
// pool, prints the top words, and records the run in the history database.
func WordFreqAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))
	startTime := time.Now()

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	// CLI flags override config file values; a positional argument
	// overrides the --source flag.
	source := cfg.Source
	if c.IsSet("source") {
		source = c.String("source")
	}
	if c.Args().Present() {
		source = c.Args().First()
	}

	workers := cfg.Workers
	if c.IsSet("workers") {
		workers = c.Int("workers")
	}
	if workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", workers)
	}

	top := cfg.Top
	if c.IsSet("top") {
		top = c.Int("top")
	}

	outputDir := cfg.OutputDir
	if c.IsSet("output-dir") {
		outputDir = c.String("output-dir")
	}

	format := cfg.Format
	if c.IsSet("format") {
		format = c.String("format")
	}
	format, err = common.ParseFormat(format)
	if err != nil {
		return err
	}

	// --force-fetch leaves maxAge at zero, which disables cache lookups
	// while still refreshing stored entries.
	var maxAge time.Duration
	if !c.Bool("force-fetch") {
		maxAgeStr := cfg.MaxAge
		if c.IsSet("max-age") {
			maxAgeStr = c.String("max-age")
		}
		maxAge, err = time.ParseDuration(maxAgeStr)
		if err != nil {
			return fmt.Errorf("invalid max-age duration: %w", err)
		}
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Run history is bookkeeping; trouble opening it never blocks the
	// analysis itself.
	var store *runstore.Store
	if !c.Bool("no-history") {
		store, err = runstore.Open(filepath.Join(outputDir, runstore.DefaultDBName))
		if err != nil {
			logger.Warn("run history unavailable", "error", err)
		} else {
			defer store.Close()
		}
	}

	runID := runstore.NewRunID()
	report, err := analyze(c.Context, logger, analyzeInput{
		Source:        source,
		Workers:       workers,
		Top:           top,
		MaxAge:        maxAge,
		CachePath:     filepath.Join(outputDir, textcache.DefaultDBName),
		DropStopwords: cfg.DropStopwords || c.Bool("drop-stopwords"),
	})
	if err != nil {
		recordRun(logger, store, runstore.Run{
			RunID:        runID,
			Source:       source,
			Workers:      workers,
			Duration:     time.Since(startTime),
			Status:       statusForError(err),
			ErrorMessage: err.Error(),
		})
		return fmt.Errorf("analyze %s: %w", source, err)
	}

	report.TotalTimeSeconds = time.Since(startTime).Seconds()

	recorded := false
	if store != nil {
		run := runstore.Run{
			RunID:         runID,
			Source:        report.Source,
			Language:      report.Language,
			Workers:       workers,
			TotalWords:    report.TotalWords,
			DistinctWords: report.DistinctWords,
			Duration:      time.Since(startTime),
			Status:        runstore.StatusCompleted,
		}
		if err := store.RecordRun(run, report.Top); err != nil {
			logger.Warn("failed to record run", "run_id", runID, "error", err)
		} else {
			recorded = true
			report.RunID = runID
		}
	}

	switch format {
	case common.FormatText:
		printReport(os.Stdout, report)
		if recorded {
			fmt.Printf("\nTip: Use 'hw05 runs show %s' to revisit this run\n", common.ShortID(runID))
		}
	default:
		data, err := common.Render(report, format)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Println(string(data))
	}

	chartPath := cfg.Chart
	if c.IsSet("chart") {
		chartPath = c.String("chart")
	}
	if chartPath != "" {
		title := fmt.Sprintf("Top %d Words", len(report.Top))
		if err := chart.SavePNG(chartPath, title, report.Top); err != nil {
			return fmt.Errorf("failed to save chart: %w", err)
		}
		logger.Info("chart saved", "path", chartPath)
	}

	return nil
}

// printReport renders the text format: a summary header and the bar chart.
func printReport(w io.Writer, report *Report) {
	fmt.Fprintf(w, "Source: %s", report.Source)
	if report.Language != "" {
		fmt.Fprintf(w, " (language: %s)", report.Language)
	}
	if report.FromCache {
		fmt.Fprint(w, " [cached]")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Words: %d total, %d distinct\n\n", report.TotalWords, report.DistinctWords)
	chart.Fprint(w, report.Top)
}

// recordRun stores a failed or cancelled run, best effort.
func recordRun(logger *slog.Logger, store *runstore.Store, run runstore.Run) {
	if store == nil {
		return
	}
	if err := store.RecordRun(run, nil); err != nil {
		logger.Warn("failed to record run", "run_id", run.RunID, "error", err)
	}
}

// statusForError distinguishes a user interrupt from a real failure.
func statusForError(err error) string {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return runstore.StatusCancelled
	}
	return runstore.StatusFailed
}
