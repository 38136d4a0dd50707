package chart

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/nickolas-z/goit-cs-hw-05/pkg/wordcount"
)

// barWidth is the length of the longest terminal bar in runes.
const barWidth = 40

// Fprint writes a numbered frequency list with bars proportional to the
// highest count:
//
//	 1. the   ████████████████████████████████████████ 8176
//	 2. and   ███████████████████████████ 5565
func Fprint(w io.Writer, entries []wordcount.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No words to display.")
		return
	}

	wordWidth := 0
	maxCount := entries[0].Count
	for _, entry := range entries {
		if n := utf8.RuneCountInString(entry.Word); n > wordWidth {
			wordWidth = n
		}
		if entry.Count > maxCount {
			maxCount = entry.Count
		}
	}

	for i, entry := range entries {
		fmt.Fprintf(w, "%2d. %-*s %s %d\n", i+1, wordWidth, entry.Word, bar(entry.Count, maxCount), entry.Count)
	}
}

// bar renders a count as a block bar scaled against the highest count.
// Every entry gets at least one block so small counts stay visible.
func bar(count, maxCount int) string {
	if maxCount <= 0 || count <= 0 {
		return ""
	}
	n := count * barWidth / maxCount
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}
