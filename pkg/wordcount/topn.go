package wordcount

import "sort"

// Entry is one ranked word with its total count.
type Entry struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// TopN returns the n most frequent words in freq, ordered by count
// descending. Words with equal counts are ordered alphabetically, so ranking
// the same text twice always yields the same list. n <= 0 or an empty map
// yields an empty result; n larger than the number of distinct words yields
// every word.
func TopN(freq Frequency, n int) []Entry {
	if n <= 0 || len(freq) == 0 {
		return nil
	}

	entries := make([]Entry, 0, len(freq))
	for word, count := range freq {
		entries = append(entries, Entry{Word: word, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})

	if n < len(entries) {
		entries = entries[:n]
	}

	return entries
}
