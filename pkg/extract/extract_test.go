package extract

import (
	"strings"
	"testing"
)

func TestIsHTML(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "doctype",
			text: "<!DOCTYPE html><html><body>hi</body></html>",
			want: true,
		},
		{
			name: "bare html tag",
			text: "<html><p>hello</p></html>",
			want: true,
		},
		{
			name: "plain text",
			text: "It was the best of times, it was the worst of times.",
			want: false,
		},
		{
			name: "text mentioning markup late",
			text: strings.Repeat("word ", 300) + "<html>",
			want: false,
		},
		{
			name: "empty",
			text: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHTML(tt.text); got != tt.want {
				t.Errorf("IsHTML() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestText_ExtractsArticleProse(t *testing.T) {
	paragraph := strings.Repeat("The whale surfaced beside the small boat and the crew held their breath. ", 8)
	html := `<!DOCTYPE html>
<html>
<head><title>Chapter One</title></head>
<body>
<article>
<h1>Chapter One</h1>
<p>` + paragraph + `</p>
<p>` + paragraph + `</p>
</article>
</body>
</html>`

	got, err := Text(html, "https://example.com/chapter-1")
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}

	if !strings.Contains(got, "whale surfaced beside the small boat") {
		t.Errorf("Text() missing article prose, got %q", truncate(got, 120))
	}
	if strings.Contains(got, "<p>") || strings.Contains(got, "</html>") {
		t.Errorf("Text() leaked markup: %q", truncate(got, 120))
	}
}

func TestText_FallbackDropsScriptsAndStyles(t *testing.T) {
	html := `<html><head>
<style>p { color: crimson; }</style>
<script>var tracker = "noise";</script>
</head>
<body><p>Actual words live here.</p></body></html>`

	got, err := Text(html, "")
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}

	if !strings.Contains(got, "Actual words live here.") {
		t.Errorf("Text() = %q, want body prose", got)
	}
	if strings.Contains(got, "tracker") || strings.Contains(got, "crimson") {
		t.Errorf("Text() leaked script or style content: %q", got)
	}
}

func TestText_CollapsesWhitespace(t *testing.T) {
	html := "<html><body><p>one\n\n   two\tthree</p></body></html>"

	got, err := Text(html, "")
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}

	if !strings.Contains(got, "one two three") {
		t.Errorf("Text() = %q, want collapsed whitespace", got)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
