package subtitle

import (
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Pipeline turns raw subtitle text into an ordered, non-overlapping
// cue sequence with per-word timing. It holds no mutable state between
// calls and is safe to use from multiple goroutines.
type Pipeline struct {
	language string
	dedupe   DedupeConfig
	log      *zap.SugaredLogger
}

// NewPipeline builds a pipeline propagating the given language tag
// onto every cue. A nil logger disables diagnostics.
func NewPipeline(language string, dedupe DedupeConfig, log *zap.SugaredLogger) *Pipeline {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Pipeline{
		language: language,
		dedupe:   dedupe,
		log:      log,
	}
}

// Parse converts subtitle content in any supported dialect into the
// normalized cue list. Only pipeline-fatal conditions return an error;
// individual malformed cues are dropped and parsing continues.
func Parse(content string) ([]Cue, error) {
	return NewPipeline("", DefaultDedupeConfig(), nil).Parse(content)
}

// Parse runs detection, assembly, word timing resolution, and (for
// VTT) rolling-caption deduplication over one subtitle document.
func (p *Pipeline) Parse(content string) ([]Cue, error) {
	if strings.TrimSpace(strings.TrimPrefix(content, "\ufeff")) == "" {
		return nil, ErrEmptyInput
	}

	dialect := DetectDialect(content)

	var raws []rawCue
	var err error
	switch dialect {
	case DialectVTT:
		raws = p.assembleVTT(content)
	case DialectASS:
		raws, err = p.assembleASS(content)
		if err != nil {
			return nil, err
		}
	default:
		raws = p.assembleSRT(content)
	}

	cues := make([]Cue, 0, len(raws))
	for _, raw := range raws {
		if raw.EndTime <= raw.StartTime {
			p.log.Debugw("dropping cue with inverted time range",
				"start", raw.StartTime,
				"end", raw.EndTime,
			)
			continue
		}

		sanitized := CleanText(raw.Source, dialect)
		text, words, exact := p.resolveWords(raw, sanitized, dialect)
		if text == "" {
			p.log.Debugw("dropping cue with empty text", "start", raw.StartTime)
			continue
		}

		cue := Cue{
			StartTime: raw.StartTime,
			EndTime:   raw.EndTime,
			Text:      text,
			Words:     words,
			Language:  p.language,
		}
		if exact {
			conf := embeddedConfidence
			cue.Confidence = &conf
		}
		cues = append(cues, cue)
	}

	if dialect == DialectVTT {
		cues = Deduplicate(cues, p.dedupe)
	} else {
		sort.SliceStable(cues, func(i, j int) bool {
			return cues[i].StartTime < cues[j].StartTime
		})
	}

	p.log.Debugw("parsed subtitle content",
		"dialect", dialect,
		"cues", len(cues),
	)

	return cues, nil
}
