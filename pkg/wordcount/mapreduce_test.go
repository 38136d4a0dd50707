package wordcount

import (
	"context"
	"errors"
	"maps"
	"strings"
	"testing"

	"github.com/nickolas-z/goit-cs-hw-05/pkg/tokenizer"
)

const fixtureText = `It was the best of times, it was the worst of times,
it was the age of wisdom, it was the age of foolishness, it was the epoch
of belief, it was the epoch of incredulity.`

func TestMapReduce_MatchesSequentialCount(t *testing.T) {
	t.Parallel()

	words := tokenizer.Words(fixtureText)
	want := Count(words)

	for _, workers := range []int{1, 2, 3, 4, 7, 16, 100} {
		got, err := MapReduce(context.Background(), words, workers)
		if err != nil {
			t.Fatalf("MapReduce(workers=%d) error = %v", workers, err)
		}
		if !maps.Equal(got, want) {
			t.Errorf("MapReduce(workers=%d) = %v, want %v", workers, got, want)
		}
	}
}

func TestMapReduce_EmptyInput(t *testing.T) {
	t.Parallel()

	got, err := MapReduce(context.Background(), nil, 4)
	if err != nil {
		t.Fatalf("MapReduce(empty) error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("MapReduce(empty) = %v, want empty map", got)
	}
}

func TestMapReduce_ZeroWorkers(t *testing.T) {
	t.Parallel()

	words := []string{"a", "b", "a"}
	got, err := MapReduce(context.Background(), words, 0)
	if err != nil {
		t.Fatalf("MapReduce(workers=0) error = %v", err)
	}
	if want := (Frequency{"a": 2, "b": 1}); !maps.Equal(got, want) {
		t.Errorf("MapReduce(workers=0) = %v, want %v", got, want)
	}
}

func TestMapReduceWith_ChunkFailureAbortsRun(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("tally exploded")
	mapper := func(_ context.Context, words []string) (Frequency, error) {
		for _, w := range words {
			if w == "poison" {
				return nil, wantErr
			}
		}
		return Count(words), nil
	}

	words := tokenizer.Words(strings.Repeat("fine words here ", 10) + "poison " + strings.Repeat("more fine words ", 10))

	got, err := MapReduceWith(context.Background(), words, 4, mapper)
	if err == nil {
		t.Fatal("MapReduceWith() expected error, got nil")
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want wrapped %v", err, wantErr)
	}
	if got != nil {
		t.Errorf("MapReduceWith() returned partial result %v, want nil", got)
	}
}

func TestMapReduceWith_ReportsLowestFailedChunk(t *testing.T) {
	t.Parallel()

	mapper := func(_ context.Context, _ []string) (Frequency, error) {
		return nil, errors.New("always fails")
	}

	words := tokenizer.Words(fixtureText)
	_, err := MapReduceWith(context.Background(), words, 4, mapper)
	if err == nil {
		t.Fatal("MapReduceWith() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "chunk 1 of") {
		t.Errorf("error = %q, want first failing chunk reported", err)
	}
}

func TestMapReduce_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	words := tokenizer.Words(fixtureText)
	_, err := MapReduce(ctx, words, 4)
	if err == nil {
		t.Fatal("MapReduce() with cancelled context expected error, got nil")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
