// Package sortdir wires the file sorter to the CLI.
package sortdir

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/nickolas-z/goit-cs-hw-05/internal/common"
	"github.com/nickolas-z/goit-cs-hw-05/pkg/filesort"
	"github.com/urfave/cli/v2"
)

// SortAction copies every regular file under SRC into an extension-named
// subfolder of DST using a worker pool. Per-file failures are counted, not
// fatal.
func SortAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	if c.NArg() != 2 {
		return fmt.Errorf("expected SRC and DST arguments, got %d", c.NArg())
	}
	src, dst := c.Args().Get(0), c.Args().Get(1)

	workers := c.Int("workers")
	if workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", workers)
	}

	format, err := common.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}

	startTime := time.Now()
	stats, err := filesort.Sort(c.Context, src, dst, filesort.Options{
		Workers: workers,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("sort %s: %w", src, err)
	}

	switch format {
	case common.FormatText:
		printStats(os.Stdout, src, dst, stats, time.Since(startTime))
	default:
		data, err := common.Render(stats, format)
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		fmt.Println(string(data))
	}

	return nil
}

// printStats renders the per-extension copy table.
func printStats(w io.Writer, src, dst string, stats *filesort.Stats, elapsed time.Duration) {
	fmt.Fprintf(w, "Sorted %s into %s in %s\n", src, dst, elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "Copied: %d, failed: %d\n", stats.Copied, stats.Failed)
	if len(stats.ByExt) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%-16s %s\n", "Folder", "Files")
	fmt.Fprintln(w, strings.Repeat("-", 24))
	for _, ext := range slices.Sorted(maps.Keys(stats.ByExt)) {
		fmt.Fprintf(w, "%-16s %d\n", ext, stats.ByExt[ext])
	}
}
