package subtitle

import (
	"strings"
)

// assembleVTT walks WebVTT cues. Everything before the first time
// range line is header metadata and is discarded. A cue ends at a
// blank line or at the next time range line, since some generators
// omit the blank separator. Raw text is kept with its tags so the
// word timing resolver can read inline timestamps.
func (p *Pipeline) assembleVTT(content string) []rawCue {
	var cues []rawCue
	var current *rawCue
	var textLines []string
	started := false

	flush := func() {
		if current != nil && len(textLines) > 0 {
			current.Source = strings.Join(textLines, "\n")
			cues = append(cues, *current)
		}
		current = nil
		textLines = nil
	}

	for lineNum, line := range strings.Split(content, "\n") {
		if lineNum == 0 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		line = strings.TrimRight(line, "\r")

		isTimeRange := strings.Contains(line, "-->")
		if !started {
			if !isTimeRange {
				continue
			}
			started = true
		}

		if isTimeRange {
			flush()
			start, end, err := parseTimeRange(line, DialectVTT)
			if err != nil {
				p.log.Debugw("skipping malformed VTT cue",
					"line", lineNum+1,
					"error", err,
				)
				continue
			}
			current = &rawCue{StartTime: start, EndTime: end}
			continue
		}

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		if current != nil {
			textLines = append(textLines, line)
		}
	}
	flush()

	return cues
}
