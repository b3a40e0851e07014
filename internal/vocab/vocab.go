package vocab

import (
	"sort"
	"strings"
	"unicode"

	"github.com/subcue/subcue/internal/subtitle"
)

// Entry is one word with its occurrence count across a cue track.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Analyze builds a word frequency table over the cue texts: lowercase,
// punctuation stripped, sorted by count descending then alphabetically.
func Analyze(cues []subtitle.Cue) []Entry {
	counts := make(map[string]int)
	for _, cue := range cues {
		for _, token := range Tokenize(cue.Text) {
			counts[token]++
		}
	}

	entries := make([]Entry, 0, len(counts))
	for word, count := range counts {
		entries = append(entries, Entry{Word: word, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})

	return entries
}

// Top returns at most n highest-frequency entries.
func Top(entries []Entry, n int) []Entry {
	if n < 0 || n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}

// Tokenize lowercases text and splits it into words, dropping
// everything but letters, digits, and intra-word apostrophes.
func Tokenize(text string) []string {
	var sb strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'':
			sb.WriteRune(r)
		default:
			sb.WriteRune(' ')
		}
	}

	var tokens []string
	for _, tok := range strings.Fields(sb.String()) {
		tok = strings.Trim(tok, "'")
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
