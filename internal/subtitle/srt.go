package subtitle

import (
	"fmt"
	"strconv"
	"strings"
)

// assembleSRT walks SRT blocks: an optional integer index line, a
// "start --> end" time range line, then text lines until a blank line.
// A malformed time range skips that block and scanning resumes at the
// next line.
func (p *Pipeline) assembleSRT(content string) []rawCue {
	var cues []rawCue
	var current *rawCue
	var textLines []string

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

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		// index lines are informational only
		if current == nil && isIndexLine(line) {
			continue
		}

		if strings.Contains(line, "-->") {
			flush()
			start, end, err := parseTimeRange(line, DialectSRT)
			if err != nil {
				p.log.Debugw("skipping malformed SRT block",
					"line", lineNum+1,
					"error", err,
				)
				continue
			}
			current = &rawCue{StartTime: start, EndTime: end}
			continue
		}

		if current != nil {
			textLines = append(textLines, line)
		}
	}
	flush()

	return cues
}

func isIndexLine(line string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(line))
	return err == nil
}

// parseTimeRange splits a "start --> end" line into two timestamps.
// For VTT the end token may carry trailing cue settings (align:,
// position:), which are dropped before the codec sees them.
func parseTimeRange(line string, dialect Dialect) (float64, float64, error) {
	parts := strings.SplitN(line, "-->", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: no time range in %q", ErrMalformedCue, line)
	}

	startRaw := strings.TrimSpace(parts[0])
	endRaw := strings.TrimSpace(parts[1])
	if dialect == DialectVTT {
		if fields := strings.Fields(endRaw); len(fields) > 0 {
			endRaw = fields[0]
		}
	}

	start, err := ParseTimestamp(startRaw, dialect)
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseTimestamp(endRaw, dialect)
	if err != nil {
		return 0, 0, err
	}

	return start, end, nil
}
