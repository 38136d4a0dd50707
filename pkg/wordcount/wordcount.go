package wordcount

import "github.com/nickolas-z/goit-cs-hw-05/pkg/tokenizer"

// Frequency maps a word to the number of times it occurs in a text.
type Frequency map[string]int

// Count tallies every word in words into a fresh Frequency.
func Count(words []string) Frequency {
	freq := make(Frequency, len(words))
	for _, word := range words {
		freq[word]++
	}
	return freq
}

// CountText tokenizes text and counts it in a single sequential pass.
// The concurrent path must produce exactly this result for any worker count.
func CountText(text string) Frequency {
	freq := make(Frequency)
	for word := range tokenizer.Tokens(text) {
		freq[word]++
	}
	return freq
}

// Split partitions words into parts contiguous chunks whose lengths differ by
// at most one, preserving order. parts is clamped to [1, len(words)], so no
// chunk is ever empty; an empty input yields no chunks at all. The returned
// chunks alias the input slice.
func Split(words []string, parts int) [][]string {
	if len(words) == 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > len(words) {
		parts = len(words)
	}

	base := len(words) / parts
	extra := len(words) % parts

	chunks := make([][]string, 0, parts)
	start := 0
	for i := 0; i < parts; i++ {
		size := base
		if i < extra {
			size++
		}
		chunks = append(chunks, words[start:start+size])
		start += size
	}

	return chunks
}
