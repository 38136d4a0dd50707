// Package runs wires the run-history database to the CLI.
package runs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nickolas-z/goit-cs-hw-05/internal/common"
	"github.com/nickolas-z/goit-cs-hw-05/models"
	"github.com/nickolas-z/goit-cs-hw-05/pkg/chart"
	"github.com/nickolas-z/goit-cs-hw-05/pkg/runstore"
	"github.com/nickolas-z/goit-cs-hw-05/pkg/wordcount"
	"github.com/urfave/cli/v2"
)

// openStore locates the history database the way wordfreq writes it:
// config file first, --output-dir override on top. A database that was
// never created is reported instead of silently materialized.
func openStore(c *cli.Context) (*runstore.Store, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	outputDir := cfg.OutputDir
	if c.IsSet("output-dir") {
		outputDir = c.String("output-dir")
	}

	path := filepath.Join(outputDir, runstore.DefaultDBName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("no run history at %s; run 'hw05 wordfreq' first", path)
	}

	return runstore.Open(path)
}

// ListAction prints recorded runs, most recent first.
func ListAction(c *cli.Context) error {
	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet")
		fmt.Printf("\nTip: Run 'hw05 wordfreq' to record one\n")
		return nil
	}

	fmt.Printf("%-10s %-20s %-10s %-9s %-9s %-9s %s\n",
		"ID", "Created", "Status", "Words", "Distinct", "Time", "Source")
	fmt.Println(strings.Repeat("-", 100))
	for _, run := range runs {
		fmt.Printf("%-10s %-20s %-10s %-9d %-9d %-9s %s\n",
			common.ShortID(run.RunID),
			run.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			run.Status,
			run.TotalWords,
			run.DistinctWords,
			run.Duration.Round(time.Millisecond),
			run.Source,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'hw05 runs show <id>' to see a run's top words\n")

	return nil
}

// ShowAction prints one run's details and its recorded top words. The run
// may be addressed by any unique id prefix.
func ShowAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected a run id (or prefix), got %d arguments", c.NArg())
	}

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.GetRun(c.Args().First())
	if err != nil {
		return err
	}

	words, err := store.GetRunWords(run.RunID, c.Int("top"))
	if err != nil {
		return err
	}

	fmt.Printf("Run %s\n", run.RunID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:   %s\n", run.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Source:    %s\n", run.Source)
	if run.Language != "" {
		fmt.Printf("Language:  %s\n", run.Language)
	}
	fmt.Printf("Status:    %s\n", run.Status)
	if run.ErrorMessage != "" {
		fmt.Printf("Error:     %s\n", run.ErrorMessage)
	}
	fmt.Printf("Workers:   %d\n", run.Workers)
	fmt.Printf("Words:     %d total, %d distinct\n", run.TotalWords, run.DistinctWords)
	fmt.Printf("Duration:  %s\n", run.Duration.Round(time.Millisecond))

	if len(words) > 0 {
		fmt.Printf("\nTop words (%d):\n", len(words))
		fmt.Println(strings.Repeat("-", 60))

		entries := make([]wordcount.Entry, len(words))
		for i, w := range words {
			entries[i] = wordcount.Entry{Word: w.Word, Count: w.Count}
		}
		chart.Fprint(os.Stdout, entries)
	}

	return nil
}
