package subtitle

import (
	"strings"
)

// assembleASS walks the [Events] section of an ASS/SSA script. The
// Format: header defines positional field mapping for every following
// Dialogue: line. The Text field is free text with no quoting, so only
// the first N-1 commas of a dialogue payload are structural; everything
// after them belongs to the text.
func (p *Pipeline) assembleASS(content string) ([]rawCue, error) {
	var cues []rawCue
	var formatCols []string
	startIdx, endIdx, textIdx := -1, -1, -1
	inEvents := false
	sawDialogue := false
	sawUsableFormat := false

	for lineNum, line := range strings.Split(content, "\n") {
		if lineNum == 0 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		trimmed := strings.TrimSpace(strings.TrimRight(line, "\r"))

		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			section := strings.TrimSuffix(strings.TrimPrefix(trimmed, "["), "]")
			inEvents = strings.EqualFold(section, "events")
			continue
		}

		if !inEvents {
			continue
		}

		if strings.HasPrefix(trimmed, "Format:") {
			formatCols = nil
			startIdx, endIdx, textIdx = -1, -1, -1
			for i, col := range strings.Split(strings.TrimPrefix(trimmed, "Format:"), ",") {
				col = strings.TrimSpace(col)
				formatCols = append(formatCols, col)
				switch {
				case strings.EqualFold(col, "Start"):
					startIdx = i
				case strings.EqualFold(col, "End"):
					endIdx = i
				case strings.EqualFold(col, "Text"):
					textIdx = i
				}
			}
			if startIdx != -1 && endIdx != -1 && textIdx != -1 {
				sawUsableFormat = true
			}
			continue
		}

		if !strings.HasPrefix(trimmed, "Dialogue:") {
			continue
		}
		sawDialogue = true

		if textIdx == -1 || startIdx == -1 || endIdx == -1 {
			// no usable Format header has preceded this dialogue
			continue
		}

		payload := strings.TrimSpace(strings.TrimPrefix(trimmed, "Dialogue:"))
		fields := splitDialogueFields(payload, len(formatCols))
		if len(fields) < len(formatCols) {
			p.log.Debugw("skipping short ASS dialogue",
				"line", lineNum+1,
				"fields", len(fields),
				"expected", len(formatCols),
			)
			continue
		}

		start, err := ParseTimestamp(fields[startIdx], DialectASS)
		if err != nil {
			p.log.Debugw("skipping ASS dialogue", "line", lineNum+1, "error", err)
			continue
		}
		end, err := ParseTimestamp(fields[endIdx], DialectASS)
		if err != nil {
			p.log.Debugw("skipping ASS dialogue", "line", lineNum+1, "error", err)
			continue
		}

		cues = append(cues, rawCue{
			StartTime: start,
			EndTime:   end,
			Source:    fields[textIdx],
		})
	}

	if !sawDialogue {
		return nil, ErrNoDialogue
	}
	if !sawUsableFormat {
		return nil, ErrMissingFormatHeader
	}

	return cues, nil
}

// splitDialogueFields splits a dialogue payload into exactly numFields
// fields, merging any surplus commas back into the final (Text) field.
func splitDialogueFields(payload string, numFields int) []string {
	if numFields <= 0 {
		return nil
	}

	fields := make([]string, 0, numFields)
	remaining := payload

	for i := 0; i < numFields-1; i++ {
		idx := strings.Index(remaining, ",")
		if idx == -1 {
			fields = append(fields, remaining)
			remaining = ""
			break
		}
		fields = append(fields, remaining[:idx])
		remaining = remaining[idx+1:]
	}
	fields = append(fields, remaining)

	return fields
}
