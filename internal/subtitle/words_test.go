package subtitle

import (
	"math"
	"testing"
)

func TestInterpolateWords(t *testing.T) {
	words := interpolateWords("one two three four", 10.0, 12.0)
	if len(words) != 4 {
		t.Fatalf("expected 4 words, got %d", len(words))
	}

	for i, w := range words {
		wantStart := 10.0 + float64(i)*0.5
		wantEnd := wantStart + 0.5
		if math.Abs(w.StartTime-wantStart) > 1e-9 || math.Abs(w.EndTime-wantEnd) > 1e-9 {
			t.Errorf("word %d: [%v, %v], want [%v, %v]",
				i, w.StartTime, w.EndTime, wantStart, wantEnd)
		}
		if w.Confidence != nil {
			t.Errorf("interpolated word %d should have no confidence", i)
		}
	}
}

func TestInterpolateWordsIgnoresWordLength(t *testing.T) {
	// uniform split by word order, not by character count
	words := interpolateWords("a extraordinarily", 0.0, 2.0)
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}
	if math.Abs(words[0].EndTime-1.0) > 1e-9 {
		t.Errorf("short word should still get half the cue: end=%v", words[0].EndTime)
	}
}

func TestInterpolateWordsEmptyText(t *testing.T) {
	if words := interpolateWords("   ", 0, 1); words != nil {
		t.Errorf("expected nil for blank text, got %v", words)
	}
}

func TestExtractEmbeddedWordsClampsToRange(t *testing.T) {
	raw := rawCue{
		StartTime: 1.0,
		EndTime:   2.0,
		Source:    "<00:00:01.800><c>tail</c>",
	}
	words := extractEmbeddedWords(raw)
	if len(words) != 1 {
		t.Fatalf("expected 1 word, got %d", len(words))
	}
	if math.Abs(words[0].EndTime-2.0) > 1e-9 {
		t.Errorf("word end should clamp to cue end, got %v", words[0].EndTime)
	}
}

func TestExtractEmbeddedWordsOutOfOrderFixedUp(t *testing.T) {
	// malformed generator output: second timestamp earlier than the
	// first; the fix-up must restore non-decreasing starts
	raw := rawCue{
		StartTime: 0.0,
		EndTime:   10.0,
		Source:    "<00:00:05.000><c>late</c><00:00:01.000><c>early</c>",
	}
	words := extractEmbeddedWords(raw)
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}
	if words[1].StartTime < words[0].EndTime {
		t.Errorf("fix-up failed: word 1 starts at %v before word 0 ends at %v",
			words[1].StartTime, words[0].EndTime)
	}
	if words[1].EndTime <= words[1].StartTime {
		t.Errorf("word 1 span inverted: [%v, %v]",
			words[1].StartTime, words[1].EndTime)
	}
}

func TestExtractEmbeddedWordsSkipsBadTimestamps(t *testing.T) {
	raw := rawCue{
		StartTime: 0.0,
		EndTime:   5.0,
		Source:    "<00:00:xx.000><c>bad</c><00:00:01.000><c>good</c>",
	}
	words := extractEmbeddedWords(raw)
	if len(words) != 1 || words[0].Text != "good" {
		t.Fatalf("expected only the valid word, got %v", words)
	}
}

func TestExtractEmbeddedWordsClusteredAtEnd(t *testing.T) {
	// timestamps bunched up just before the cue end: the overlap push
	// must not shove a word outside the cue
	raw := rawCue{
		StartTime: 0.0,
		EndTime:   1.0,
		Source:    "<00:00:00.950><c>tail</c><00:00:00.990><c>end</c>",
	}
	words := extractEmbeddedWords(raw)
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}
	for i, w := range words {
		if w.StartTime < raw.StartTime || w.EndTime > raw.EndTime {
			t.Errorf("word %d [%v, %v] outside cue [%v, %v]",
				i, w.StartTime, w.EndTime, raw.StartTime, raw.EndTime)
		}
		if w.StartTime >= w.EndTime {
			t.Errorf("word %d span inverted: [%v, %v]", i, w.StartTime, w.EndTime)
		}
		if i > 0 && words[i-1].EndTime > w.StartTime {
			t.Errorf("word %d overlaps previous", i)
		}
	}
}

func TestFixWordTimingsInvariant(t *testing.T) {
	words := []Word{
		{Text: "a", StartTime: -1.0, EndTime: 0.2},
		{Text: "b", StartTime: 0.1, EndTime: 0.1},
		{Text: "c", StartTime: 8.0, EndTime: 99.0},
	}
	fixWordTimings(words, 0.0, 10.0)

	for i, w := range words {
		if w.StartTime < 0.0 {
			t.Errorf("word %d starts before cue: %v", i, w.StartTime)
		}
		if w.StartTime >= w.EndTime {
			t.Errorf("word %d span inverted: [%v, %v]", i, w.StartTime, w.EndTime)
		}
		if i > 0 && words[i-1].EndTime > w.StartTime {
			t.Errorf("word %d overlaps previous", i)
		}
	}
}
