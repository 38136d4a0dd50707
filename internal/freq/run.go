package freq

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nickolas-z/goit-cs-hw-05/pkg/extract"
	"github.com/nickolas-z/goit-cs-hw-05/pkg/language"
	"github.com/nickolas-z/goit-cs-hw-05/pkg/stopwords"
	"github.com/nickolas-z/goit-cs-hw-05/pkg/textcache"
	"github.com/nickolas-z/goit-cs-hw-05/pkg/textsource"
	"github.com/nickolas-z/goit-cs-hw-05/pkg/tokenizer"
	"github.com/nickolas-z/goit-cs-hw-05/pkg/wordcount"
)

// analyzeInput collects everything the pipeline needs for one run.
type analyzeInput struct {
	Source        string
	Workers       int
	Top           int
	MaxAge        time.Duration
	CachePath     string
	DropStopwords bool
}

// analyze runs the full pipeline: fetch the source text, extract prose from
// HTML payloads, tokenize, count with the worker pool, and rank the top
// words. The caller stamps run id and timing onto the returned report.
func analyze(ctx context.Context, logger *slog.Logger, in analyzeInput) (*Report, error) {
	src, err := textsource.Resolve(in.Source)
	if err != nil {
		return nil, err
	}

	text, fromCache, err := loadText(ctx, logger, src, in.CachePath, in.MaxAge)
	if err != nil {
		return nil, err
	}

	if extract.IsHTML(text) {
		logger.Info("extracting text from HTML", "source", src.Location())
		text, err = extract.Text(text, src.Location())
		if err != nil {
			return nil, fmt.Errorf("extract text from %s: %w", src.Location(), err)
		}
	}

	lang := language.NewDetector().Detect(text)

	words := tokenizer.Words(text)
	logger.Info("tokenized source",
		"source", src.Location(), "words", len(words), "language", lang)

	freq, err := wordcount.MapReduce(ctx, words, in.Workers)
	if err != nil {
		return nil, err
	}

	if in.DropStopwords {
		list := stopwords.ForLanguage(lang)
		if list == nil {
			logger.Warn("no stopword list for detected language", "language", lang)
		} else {
			before := len(freq)
			freq = list.Filter(freq)
			logger.Info("dropped stopwords", "language", lang, "removed", before-len(freq))
		}
	}

	return &Report{
		Source:        src.Location(),
		Language:      lang,
		FromCache:     fromCache,
		Workers:       in.Workers,
		TotalWords:    len(words),
		DistinctWords: len(freq),
		Top:           wordcount.TopN(freq, in.Top),
	}, nil
}

// loadText fetches the source text, consulting the bolt cache for URL
// sources. Cache trouble only costs a warning; the fetch proceeds without.
func loadText(ctx context.Context, logger *slog.Logger, src textsource.Source, cachePath string, maxAge time.Duration) (string, bool, error) {
	if _, isURL := src.(*textsource.URLSource); !isURL || cachePath == "" {
		text, err := src.Fetch(ctx)
		return text, false, err
	}

	cache, err := textcache.Open(cachePath, maxAge)
	if err != nil {
		logger.Warn("fetch cache unavailable", "path", cachePath, "error", err)
		text, err := src.Fetch(ctx)
		return text, false, err
	}
	defer cache.Close()

	if text, ok := cache.Get(src.Location()); ok {
		logger.Info("cache hit", "url", src.Location())
		return text, true, nil
	}

	text, err := src.Fetch(ctx)
	if err != nil {
		return "", false, err
	}
	if err := cache.Set(src.Location(), text); err != nil {
		logger.Warn("failed to cache fetched text", "url", src.Location(), "error", err)
	}
	return text, false, nil
}
