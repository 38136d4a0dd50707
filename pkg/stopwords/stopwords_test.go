package stopwords

import (
	"maps"
	"testing"

	"github.com/nickolas-z/goit-cs-hw-05/pkg/wordcount"
)

func TestForLanguage(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantList bool
		sample   string
	}{
		{name: "english", code: "en", wantList: true, sample: "the"},
		{name: "ukrainian", code: "uk", wantList: true, sample: "що"},
		{name: "unsupported language", code: "fr", wantList: false},
		{name: "empty code", code: "", wantList: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := ForLanguage(tt.code)
			if (list != nil) != tt.wantList {
				t.Fatalf("ForLanguage(%q) = %v, want list %v", tt.code, list != nil, tt.wantList)
			}
			if tt.wantList && !list.Contains(tt.sample) {
				t.Errorf("ForLanguage(%q) missing %q", tt.code, tt.sample)
			}
		})
	}
}

func TestList_Filter(t *testing.T) {
	freq := wordcount.Frequency{"the": 10, "whale": 4, "of": 7, "sea": 3}

	got := ForLanguage("en").Filter(freq)
	want := wordcount.Frequency{"whale": 4, "sea": 3}
	if !maps.Equal(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}

	// The input map must stay intact.
	if freq["the"] != 10 || len(freq) != 4 {
		t.Errorf("Filter() mutated its input: %v", freq)
	}
}

func TestList_FilterNilList(t *testing.T) {
	freq := wordcount.Frequency{"the": 10, "whale": 4}

	var none List
	got := none.Filter(freq)
	if !maps.Equal(got, freq) {
		t.Errorf("nil List Filter() = %v, want %v unchanged", got, freq)
	}
}

func TestList_Contains(t *testing.T) {
	en := ForLanguage("en")

	if !en.Contains("don't") {
		t.Error("english list should contain apostrophe-bearing contractions")
	}
	if en.Contains("whale") {
		t.Error("english list should not contain content words")
	}

	var none List
	if none.Contains("the") {
		t.Error("nil list should contain nothing")
	}
}
