package textsource

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     string
	}{
		{
			name:     "trims whitespace",
			location: "  https://example.com/book.txt  ",
			want:     "https://example.com/book.txt",
		},
		{
			name:     "unwraps markdown link",
			location: "[the book](https://example.com/book.txt)",
			want:     "https://example.com/book.txt",
		},
		{
			name:     "strips trailing comma",
			location: "https://example.com/book.txt,",
			want:     "https://example.com/book.txt",
		},
		{
			name:     "strips surrounding parens",
			location: "(https://example.com/book.txt)",
			want:     "https://example.com/book.txt",
		},
		{
			name:     "strips surrounding quotes",
			location: `"corpus/notes.txt"`,
			want:     "corpus/notes.txt",
		},
		{
			name:     "plain path untouched",
			location: "testdata/book.txt",
			want:     "testdata/book.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.location); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.location, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		location string
		wantURL  bool
		wantErr  bool
	}{
		{name: "https URL", location: "https://example.com/book.txt", wantURL: true},
		{name: "http URL", location: "http://example.com/book.txt", wantURL: true},
		{name: "relative path", location: "corpus/book.txt", wantURL: false},
		{name: "absolute path", location: "/tmp/book.txt", wantURL: false},
		{name: "empty location", location: "   ", wantErr: true},
		{name: "URL without host", location: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := Resolve(tt.location)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve(%q) error = %v, wantErr %v", tt.location, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			_, isURL := src.(*URLSource)
			if isURL != tt.wantURL {
				t.Errorf("Resolve(%q) = %T, want URL source %v", tt.location, src, tt.wantURL)
			}
		})
	}
}

func TestURLSource_Fetch(t *testing.T) {
	const body = "It was the best of times, it was the worst of times."

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(body))
	}))
	defer ts.Close()

	src := NewURLSource(ts.URL)
	got, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got != body {
		t.Errorf("Fetch() = %q, want %q", got, body)
	}
}

func TestURLSource_FetchDecodesLegacyCharset(t *testing.T) {
	// "привіт" encoded as windows-1251.
	encoded := []byte{0xEF, 0xF0, 0xE8, 0xE2, 0xB3, 0xF2}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=windows-1251")
		w.Write(encoded)
	}))
	defer ts.Close()

	src := NewURLSource(ts.URL)
	got, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got != "привіт" {
		t.Errorf("Fetch() = %q, want %q", got, "привіт")
	}
}

func TestURLSource_FetchStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	src := NewURLSource(ts.URL)
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Fatal("Fetch() expected error for 404 response, got nil")
	}
}

func TestURLSource_FetchRejectsBinary(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte{0x89, 'P', 'N', 'G', 0x00, 0x01, 0x02})
	}))
	defer ts.Close()

	src := NewURLSource(ts.URL)
	_, err := src.Fetch(context.Background())
	if !errors.Is(err, ErrNotText) {
		t.Errorf("Fetch() error = %v, want ErrNotText", err)
	}
}

func TestURLSource_FetchCancelledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("too late"))
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewURLSource(ts.URL)
	if _, err := src.Fetch(ctx); err == nil {
		t.Fatal("Fetch() with cancelled context expected error, got nil")
	}
}

func TestFileSource_Fetch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.txt")
	const body = "Марленна прокинулась рано вранці."
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	src := NewFileSource(path)
	got, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got != body {
		t.Errorf("Fetch() = %q, want %q", got, body)
	}
}

func TestFileSource_FetchStripsBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.txt")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFhello"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	src := NewFileSource(path)
	got, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got != "hello" {
		t.Errorf("Fetch() = %q, want %q", got, "hello")
	}
}

func TestFileSource_FetchMissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "missing.txt"))
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Fatal("Fetch() expected error for missing file, got nil")
	}
}
