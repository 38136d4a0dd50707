package language

import (
	"strings"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

// Detector guesses the language of a text from a fixed candidate set.
// Construction is cheap; the per-language models load lazily on first use,
// so keep one Detector per process.
type Detector struct {
	inner lingua.LanguageDetector
}

// NewDetector builds a detector over the languages the analyzer understands.
// English and Ukrainian carry bundled stopword lists; the rest are there so
// that text in a near neighbour is not mislabelled as one of the two.
func NewDetector() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.Ukrainian,
			lingua.Russian,
			lingua.German,
			lingua.French,
			lingua.Spanish,
		).
		Build()

	return &Detector{inner: detector}
}

// probeLimit caps how much text detection looks at. A few kilobytes of prose
// is plenty and keeps detection cheap on book-sized inputs.
const probeLimit = 4096

// Detect returns the lower-case ISO 639-1 code ("en", "uk", ...) of the most
// likely language of text, or "" when the text is empty or no candidate is
// confident enough.
func (d *Detector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	if len(text) > probeLimit {
		cut := probeLimit
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	detected, ok := d.inner.DetectLanguageOf(text)
	if !ok {
		return ""
	}

	return strings.ToLower(detected.IsoCode639_1().String())
}
