package subtitle

import (
	"regexp"
	"strings"
)

const (
	// span assigned to a word taken from an embedded timestamp; the
	// source format gives word starts but no word ends
	fixedWordDuration = 0.4

	// confidence attached to embedded (exact) word timings
	embeddedConfidence = 0.95

	// minimum span granted to a word squeezed out by the monotonic fix-up
	minWordExtension = 0.1
)

// inlineWordRegex matches VTT per-word timing spans:
// <00:00:01.234><c> word</c>
var inlineWordRegex = regexp.MustCompile(
	`<(\d{1,2}:\d{2}:\d{2}\.\d{3})><c>([^<]+)</c>`,
)

// resolveWords produces the cue's display text and per-word timing.
// VTT cues carrying <c>-tagged words yield exact timings; everything
// else gets a uniform split of the cue duration across its words.
// The second return reports whether timings are exact.
func (p *Pipeline) resolveWords(raw rawCue, sanitized string, dialect Dialect) (string, []Word, bool) {
	if dialect == DialectVTT {
		if words := extractEmbeddedWords(raw); len(words) > 0 {
			tokens := make([]string, len(words))
			for i, w := range words {
				tokens[i] = w.Text
			}
			return strings.Join(tokens, " "), words, true
		}
	}

	return sanitized, interpolateWords(sanitized, raw.StartTime, raw.EndTime), false
}

// extractEmbeddedWords reads <timestamp><c>word</c> pairs out of the
// raw cue source. Plain text in the same cue that is not inside a <c>
// span is discarded; rolling-caption streams repeat those words in
// neighboring cues, and keeping them here would duplicate them.
// NOTE: a generator mixing tagged and untagged words in one cue loses
// the untagged ones. That mirrors the upstream behavior this pipeline
// normalizes; it is surfaced here rather than silently changed.
func extractEmbeddedWords(raw rawCue) []Word {
	matches := inlineWordRegex.FindAllStringSubmatch(raw.Source, -1)
	if len(matches) == 0 {
		return nil
	}

	words := make([]Word, 0, len(matches))
	for _, m := range matches {
		start, err := ParseTimestamp(m[1], DialectVTT)
		if err != nil {
			continue
		}
		text := strings.TrimSpace(htmlEntities.Replace(m[2]))
		if text == "" {
			continue
		}

		end := start + fixedWordDuration
		if end > raw.EndTime {
			end = raw.EndTime
		}

		conf := embeddedConfidence
		words = append(words, Word{
			Text:       text,
			StartTime:  start,
			EndTime:    end,
			Confidence: &conf,
		})
	}

	fixWordTimings(words, raw.StartTime, raw.EndTime)
	return words
}

// interpolateWords splits the cue duration evenly across its words,
// proportional to word order, not word length. A deliberate
// deterministic estimate, not an acoustic model.
func interpolateWords(text string, cueStart, cueEnd float64) []Word {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil
	}

	wordDuration := (cueEnd - cueStart) / float64(len(tokens))
	words := make([]Word, len(tokens))
	for i, token := range tokens {
		words[i] = Word{
			Text:      token,
			StartTime: cueStart + float64(i)*wordDuration,
			EndTime:   cueStart + float64(i+1)*wordDuration,
		}
	}

	fixWordTimings(words, cueStart, cueEnd)
	return words
}

// fixWordTimings clamps word spans into the cue range and restores
// monotonic ordering when embedded timestamps are malformed: an
// overlapping pair pushes the later word's start forward, extending
// its end when that would invert it.
func fixWordTimings(words []Word, cueStart, cueEnd float64) {
	for i := range words {
		if words[i].StartTime < cueStart {
			words[i].StartTime = cueStart
		}
		if words[i].StartTime > cueEnd {
			words[i].StartTime = cueEnd
		}
		if words[i].EndTime > cueEnd {
			words[i].EndTime = cueEnd
		}
		if words[i].EndTime <= words[i].StartTime {
			words[i].EndTime = words[i].StartTime + minWordExtension
			if words[i].EndTime > cueEnd {
				words[i].EndTime = cueEnd
				words[i].StartTime = cueEnd - minWordExtension
				if words[i].StartTime < cueStart {
					words[i].StartTime = cueStart
				}
			}
		}
	}

	for i := 0; i+1 < len(words); i++ {
		if words[i].EndTime > words[i+1].StartTime {
			words[i+1].StartTime = words[i].EndTime
			if words[i+1].EndTime <= words[i+1].StartTime {
				words[i+1].EndTime = words[i+1].StartTime + minWordExtension
			}
		}
	}

	// the push can run past the cue end when embedded timestamps
	// cluster there; squeeze the tail back inside the cue
	limit := cueEnd
	for i := len(words) - 1; i >= 0; i-- {
		if words[i].EndTime > limit {
			words[i].EndTime = limit
		}
		if words[i].StartTime >= words[i].EndTime {
			words[i].StartTime = words[i].EndTime - minWordExtension
			if words[i].StartTime < cueStart {
				words[i].StartTime = cueStart
			}
		}
		limit = words[i].StartTime
	}
}
