package wordcount

import (
	"context"
	"fmt"
	"sync"
)

// Mapper produces the frequency map for a single chunk of words. Mappers run
// concurrently on separate chunks and must not share mutable state.
type Mapper func(ctx context.Context, words []string) (Frequency, error)

// CountChunk is the default Mapper: a plain sequential tally of one chunk.
func CountChunk(_ context.Context, words []string) (Frequency, error) {
	return Count(words), nil
}

type chunkJob struct {
	index int
	words []string
}

type chunkResult struct {
	index int
	freq  Frequency
	err   error
}

// MapReduce counts words concurrently: the input is split into up to workers
// contiguous chunks, each chunk is tallied independently by a fixed pool of
// workers, and the partial maps are merged with Reduce. The merged result is
// identical to Count(words) for every worker count.
func MapReduce(ctx context.Context, words []string, workers int) (Frequency, error) {
	return MapReduceWith(ctx, words, workers, CountChunk)
}

// MapReduceWith runs the same split/map/merge pipeline with a caller-supplied
// mapper. Any chunk failure fails the whole computation and no partial result
// is returned; when several chunks fail, the error of the lowest-indexed
// chunk is reported. A cancelled context aborts chunks that have not started.
func MapReduceWith(ctx context.Context, words []string, workers int, mapper Mapper) (Frequency, error) {
	if workers < 1 {
		workers = 1
	}

	chunks := Split(words, workers)
	if len(chunks) == 0 {
		return Frequency{}, nil
	}

	var wg sync.WaitGroup
	jobs := make(chan chunkJob, len(chunks))
	results := make(chan chunkResult, len(chunks))

	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go mapWorker(ctx, mapper, &wg, jobs, results)
	}

	for i, chunk := range chunks {
		jobs <- chunkJob{index: i, words: chunk}
	}
	close(jobs)

	wg.Wait()
	close(results)

	partials := make([]Frequency, len(chunks))
	failedChunk := -1
	var failure error
	for result := range results {
		if result.err != nil {
			if failedChunk == -1 || result.index < failedChunk {
				failedChunk = result.index
				failure = result.err
			}
			continue
		}
		partials[result.index] = result.freq
	}

	if failure != nil {
		return nil, fmt.Errorf("count chunk %d of %d: %w", failedChunk+1, len(chunks), failure)
	}

	return Reduce(partials), nil
}

func mapWorker(ctx context.Context, mapper Mapper, wg *sync.WaitGroup, jobs <-chan chunkJob, results chan<- chunkResult) {
	defer wg.Done()
	for job := range jobs {
		if err := ctx.Err(); err != nil {
			results <- chunkResult{index: job.index, err: err}
			continue
		}
		freq, err := mapper(ctx, job.words)
		results <- chunkResult{index: job.index, freq: freq, err: err}
	}
}

// Reduce merges per-chunk frequency maps by adding counts. Addition is
// associative and commutative, so the merge order never affects the result.
func Reduce(partials []Frequency) Frequency {
	merged := make(Frequency)
	for _, partial := range partials {
		for word, count := range partial {
			merged[word] += count
		}
	}
	return merged
}
