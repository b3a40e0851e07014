package vocab

import (
	"reflect"
	"testing"

	"github.com/subcue/subcue/internal/subtitle"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Hello, world!", []string{"hello", "world"}},
		{"Don't stop", []string{"don't", "stop"}},
		{"'quoted' word", []string{"quoted", "word"}},
		{"numbers 42 stay", []string{"numbers", "42", "stay"}},
		{"--- ...", nil},
	}

	for _, tt := range tests {
		if got := Tokenize(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestAnalyze(t *testing.T) {
	cues := []subtitle.Cue{
		{Text: "the quick brown fox"},
		{Text: "The lazy dog and the fox"},
	}

	entries := Analyze(cues)
	if len(entries) == 0 {
		t.Fatal("no entries")
	}

	if entries[0].Word != "the" || entries[0].Count != 3 {
		t.Errorf("top entry: %+v, want the/3", entries[0])
	}
	if entries[1].Word != "fox" || entries[1].Count != 2 {
		t.Errorf("second entry: %+v, want fox/2", entries[1])
	}

	// equal counts sort alphabetically
	for i := 2; i < len(entries)-1; i++ {
		if entries[i].Count == entries[i+1].Count && entries[i].Word > entries[i+1].Word {
			t.Errorf("ties not alphabetical: %q before %q",
				entries[i].Word, entries[i+1].Word)
		}
	}
}

func TestTop(t *testing.T) {
	entries := []Entry{{"a", 3}, {"b", 2}, {"c", 1}}

	if got := Top(entries, 2); len(got) != 2 {
		t.Errorf("Top(2) returned %d entries", len(got))
	}
	if got := Top(entries, 10); len(got) != 3 {
		t.Errorf("Top beyond length should return all, got %d", len(got))
	}
}
