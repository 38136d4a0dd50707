package language

import (
	"strings"
	"testing"
)

func TestDetector_Detect(t *testing.T) {
	detector := NewDetector()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "english prose",
			text: "It was the best of times, it was the worst of times, it was the age of wisdom.",
			want: "en",
		},
		{
			name: "ukrainian prose",
			text: "Це були найкращі часи, це були найгірші часи, це була доба мудрості.",
			want: "uk",
		},
		{
			name: "empty text",
			text: "",
			want: "",
		},
		{
			name: "whitespace only",
			text: "   \n\t  ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detector.Detect(tt.text); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetector_LongTextCutsAtRuneBoundary(t *testing.T) {
	detector := NewDetector()

	// Multi-byte text far past the probe window; must not panic or tear runes.
	text := strings.Repeat("Добрий день, шановні читачі цієї книги. ", 400)

	if got := detector.Detect(text); got != "uk" {
		t.Errorf("Detect(long ukrainian) = %q, want %q", got, "uk")
	}
}
