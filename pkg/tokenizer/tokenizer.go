package tokenizer

import (
	"iter"
	"slices"
	"strings"
	"unicode"
)

// Tokens splits text into normalized words as a lazy sequence. Fields are
// lower-cased and stripped of leading and trailing runes that are neither
// letters nor digits; interior characters such as apostrophes and hyphens are
// kept, so "don't" and "half-hearted" survive intact. Fields that are empty
// after trimming (e.g. "--") are dropped. The sequence is finite and
// restartable: ranging over it twice yields the same words in the same order.
func Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for field := range strings.FieldsSeq(strings.ToLower(text)) {
			word := strings.TrimFunc(field, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsDigit(r)
			})
			if word == "" {
				continue
			}
			if !yield(word) {
				return
			}
		}
	}
}

// Words collects the tokens of text into a slice.
func Words(text string) []string {
	return slices.Collect(Tokens(text))
}
