package subtitle

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// DedupeConfig holds the rolling-caption merge thresholds. The values
// are heuristic, not protocol; tests override them.
type DedupeConfig struct {
	// overlap must exceed this fraction of the shorter cue's duration
	OverlapRatio float64
	// cues whose starts or ends fall within this many seconds of each
	// other count as overlapping regardless of the ratio test
	TimeTolerance float64
	// text similarity above this triggers a merge
	SimilarityThreshold float64
	// below this length ratio the shorter text always loses
	LengthRatioFloor float64
}

// DefaultDedupeConfig returns the tuned production thresholds.
func DefaultDedupeConfig() DedupeConfig {
	return DedupeConfig{
		OverlapRatio:        0.3,
		TimeTolerance:       2.0,
		SimilarityThreshold: 0.5,
		LengthRatioFloor:    0.8,
	}
}

// Deduplicate merges rolling captions: cues whose time ranges overlap
// and whose text overlaps significantly collapse into the most
// complete version, which takes the union of both time ranges. Greedy
// O(n²) over the accepted list; subtitle tracks stay in the hundreds
// of cues, and the pass is idempotent.
func Deduplicate(cues []Cue, cfg DedupeConfig) []Cue {
	accepted := make([]Cue, 0, len(cues))

	for _, cue := range cues {
		merged := false
		for i := range accepted {
			if !timesOverlap(accepted[i], cue, cfg) {
				continue
			}
			if textSimilarity(accepted[i].Text, cue.Text) < cfg.SimilarityThreshold {
				continue
			}

			survivor := pickSurvivor(accepted[i], cue, cfg)
			survivor.StartTime = math.Min(accepted[i].StartTime, cue.StartTime)
			survivor.EndTime = math.Max(accepted[i].EndTime, cue.EndTime)
			accepted[i] = survivor
			merged = true
			break
		}
		if !merged {
			accepted = append(accepted, cue)
		}
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].StartTime < accepted[j].StartTime
	})

	return accepted
}

func timesOverlap(a, b Cue, cfg DedupeConfig) bool {
	overlap := math.Min(a.EndTime, b.EndTime) - math.Max(a.StartTime, b.StartTime)
	if overlap < 0 {
		overlap = 0
	}

	shorter := math.Min(a.Duration(), b.Duration())
	if overlap > cfg.OverlapRatio*shorter {
		return true
	}
	if math.Abs(a.StartTime-b.StartTime) <= cfg.TimeTolerance {
		return true
	}
	return math.Abs(a.EndTime-b.EndTime) <= cfg.TimeTolerance
}

// pickSurvivor keeps the cue with the longer text. When the lengths
// are close, the cue carrying more word entries wins (more precise
// timing); ties keep the first-seen cue.
func pickSurvivor(existing, candidate Cue, cfg DedupeConfig) Cue {
	existingLen := len(existing.Text)
	candidateLen := len(candidate.Text)

	if existingLen == 0 {
		return candidate
	}

	ratio := float64(candidateLen) / float64(existingLen)
	switch {
	case ratio < cfg.LengthRatioFloor:
		return existing
	case candidateLen > existingLen:
		return candidate
	default:
		if len(candidate.Words) > len(existing.Words) {
			return candidate
		}
		return existing
	}
}

// textSimilarity scores two texts in [0,1]: the Jaccard similarity of
// their word sets, or 1.0 outright when one cleaned text contains the
// other.
func textSimilarity(a, b string) float64 {
	cleanA := normalizeForCompare(a)
	cleanB := normalizeForCompare(b)
	if cleanA == "" || cleanB == "" {
		return 0
	}

	if strings.Contains(cleanA, cleanB) || strings.Contains(cleanB, cleanA) {
		return 1.0
	}

	setA := tokenSet(cleanA)
	setB := tokenSet(cleanB)

	intersection := 0
	for tok := range setA {
		if setB[tok] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}

func normalizeForCompare(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			sb.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

func tokenSet(cleaned string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(cleaned) {
		set[tok] = true
	}
	return set
}
