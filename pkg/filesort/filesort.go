package filesort

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Options configure a sorting run.
type Options struct {
	// Workers is the size of the copy pool. Values below one are clamped.
	Workers int
	// Logger receives per-file progress and failures. Nil discards them.
	Logger *slog.Logger
}

// Stats summarize a completed sorting run.
type Stats struct {
	Copied int            `json:"copied" yaml:"copied"`
	Failed int            `json:"failed" yaml:"failed"`
	ByExt  map[string]int `json:"by_extension" yaml:"by_extension"`
}

type copyResult struct {
	path string
	ext  string
	err  error
}

// Sort copies every regular file under src into an extension-named subfolder
// of dst, using a fixed pool of copy workers. Files without an extension land
// in "unknown". A file that fails to copy is logged and counted, never fatal;
// only an unusable source or destination aborts the run. The destination
// subtree is excluded from scanning, so dst may live inside src.
func Sort(ctx context.Context, src, dst string, opts Options) (*Stats, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	info, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %s is not a directory", src)
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return nil, fmt.Errorf("failed to create destination directory: %w", err)
	}

	files, err := collect(src, dst, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Starting concurrent copy phase", "files", len(files), "workers", workers)

	var wg sync.WaitGroup
	jobs := make(chan string, len(files))
	results := make(chan copyResult, len(files))

	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go copyWorker(ctx, w, logger, dst, &wg, jobs, results)
	}

	for _, path := range files {
		jobs <- path
	}
	close(jobs)

	wg.Wait()
	close(results)

	stats := &Stats{ByExt: make(map[string]int)}
	for result := range results {
		if result.err != nil {
			stats.Failed++
			continue
		}
		stats.Copied++
		stats.ByExt[result.ext]++
	}

	logger.Info("All copy workers finished", "copied", stats.Copied, "failed", stats.Failed)

	if err := ctx.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}

// collect gathers every regular file under src, skipping the destination
// subtree so already-sorted files are never treated as input. Unreadable
// subdirectories are logged and skipped; only a broken root is fatal.
func collect(src, dst string, logger *slog.Logger) ([]string, error) {
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination: %w", err)
	}

	var files []string
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == src {
				return walkErr
			}
			logger.Warn("Skipping unreadable entry", "path", path, "error", walkErr)
			return nil
		}
		if d.IsDir() {
			absPath, absErr := filepath.Abs(path)
			if absErr == nil && absPath == absDst {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan source directory: %w", err)
	}

	return files, nil
}

func copyWorker(ctx context.Context, id int, logger *slog.Logger, dst string, wg *sync.WaitGroup, jobs <-chan string, results chan<- copyResult) {
	defer wg.Done()
	for path := range jobs {
		if err := ctx.Err(); err != nil {
			results <- copyResult{path: path, err: err}
			continue
		}

		folder := extFolder(filepath.Base(path))
		destDir := filepath.Join(dst, folder)
		if err := os.MkdirAll(destDir, 0755); err != nil {
			logger.Error("Failed to create extension directory", "worker_id", id, "dir", destDir, "error", err)
			results <- copyResult{path: path, err: err}
			continue
		}

		destPath, err := copyFile(path, destDir)
		if err != nil {
			logger.Error("Failed to copy file", "worker_id", id, "file", path, "error", err)
			results <- copyResult{path: path, err: err}
			continue
		}

		logger.Debug("Copied file", "worker_id", id, "from", path, "to", destPath)
		results <- copyResult{path: path, ext: folder}
	}
}

// extFolder maps a filename to its destination folder: the lower-cased
// extension without the dot, or "unknown" when there is none. Dotfiles such
// as .gitignore count as extensionless.
func extFolder(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		ext = ""
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return "unknown"
	}
	return ext
}

// copyFile writes the file at srcPath into destDir, appending -1, -2, ... to
// the name stem until an unused name is found.
func copyFile(srcPath, destDir string) (string, error) {
	in, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", srcPath, err)
	}
	defer in.Close()

	base := filepath.Base(srcPath)
	ext := filepath.Ext(base)
	if ext == base {
		ext = ""
	}
	stem := strings.TrimSuffix(base, ext)

	for attempt := 0; ; attempt++ {
		name := base
		if attempt > 0 {
			name = fmt.Sprintf("%s-%d%s", stem, attempt, ext)
		}
		destPath := filepath.Join(destDir, name)

		out, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create %s: %w", destPath, err)
		}

		_, copyErr := io.Copy(out, in)
		closeErr := out.Close()
		if copyErr != nil {
			os.Remove(destPath)
			return "", fmt.Errorf("failed to copy %s: %w", srcPath, copyErr)
		}
		if closeErr != nil {
			return "", fmt.Errorf("failed to close %s: %w", destPath, closeErr)
		}

		return destPath, nil
	}
}
