package textsource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
)

// ErrNotText marks payloads that decode to binary rather than prose.
var ErrNotText = errors.New("source is not plain text")

// Source supplies the raw text to analyze.
type Source interface {
	// Location is the cleaned URL or file path the source reads from.
	Location() string
	// Fetch retrieves the payload and decodes it to UTF-8.
	Fetch(ctx context.Context) (string, error)
}

// Resolve turns a user-supplied location into a Source: http and https
// locations fetch over the network, everything else is treated as a local
// file path. The location is sanitized first.
func Resolve(location string) (Source, error) {
	cleaned := Sanitize(location)
	if cleaned == "" {
		return nil, errors.New("empty source location")
	}

	parsed, err := url.Parse(cleaned)
	if err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") {
		if parsed.Host == "" {
			return nil, fmt.Errorf("URL %q has no host", cleaned)
		}
		return NewURLSource(cleaned), nil
	}

	return NewFileSource(cleaned), nil
}

// markdownLinkPattern extracts the URL from a markdown link: [text](url) -> url.
var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)

// Sanitize performs basic cleanup on a source location to handle common
// copy-paste issues: surrounding whitespace, markdown link syntax, and stray
// punctuation picked up from prose.
func Sanitize(location string) string {
	cleaned := strings.TrimSpace(location)

	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	// Trailing punctuation from copy-paste: "https://example.com," etc.
	trailingChars := []string{",", ")", "}", "]", "\"", "'", ">", ";"}
	for _, char := range trailingChars {
		cleaned = strings.TrimSuffix(cleaned, char)
	}

	leadingChars := []string{"(", "[", "<", "\"", "'"}
	for _, char := range leadingChars {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	return strings.TrimSpace(cleaned)
}

// decode converts an arbitrary byte stream to UTF-8 text. Decoding is best
// effort: the charset comes from the content type when present and is sniffed
// from the first bytes otherwise, falling back to UTF-8. A payload that still
// carries NUL bytes after decoding is rejected as binary.
func decode(r io.Reader, contentType string) (string, error) {
	decoded, err := charset.NewReader(r, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to detect character encoding: %w", err)
	}

	data, err := io.ReadAll(decoded)
	if err != nil {
		return "", fmt.Errorf("failed to read source body: %w", err)
	}

	// charset.NewReader leaves a UTF-8 BOM in place; Gutenberg texts start
	// with one.
	text := strings.TrimPrefix(string(data), "\uFEFF")
	if strings.ContainsRune(text, '\x00') {
		return "", ErrNotText
	}

	return text, nil
}
