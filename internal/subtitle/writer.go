package subtitle

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Writer renders normalized cues back into one subtitle dialect.
// Rendering is pure; callers own file placement.
type Writer interface {
	Render(cues []Cue) string
}

// SubRip format
type SRTWriter struct{}

// WebVTT format; optionally re-emits per-word timing tags for cues
// that carry exact word data
type VTTWriter struct {
	WordTags bool
}

// Advanced SubStation Alpha format
type ASSWriter struct {
	Title    string
	FontName string
	FontSize int
}

func NewWriter(dialect Dialect) (Writer, error) {
	switch dialect {
	case DialectSRT:
		return &SRTWriter{}, nil
	case DialectVTT:
		return &VTTWriter{}, nil
	case DialectASS:
		return &ASSWriter{
			Title:    "Subcue Normalized Subtitles",
			FontName: "Arial",
			FontSize: 20,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported dialect: %s", dialect)
	}
}

func (w *SRTWriter) Render(cues []Cue) string {
	var sb strings.Builder
	for i, cue := range cues {
		// index (1-based)
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			FormatTimestamp(cue.StartTime, DialectSRT),
			FormatTimestamp(cue.EndTime, DialectSRT)))

		sb.WriteString(cue.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func (w *VTTWriter) Render(cues []Cue) string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")

	for i, cue := range cues {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			FormatTimestamp(cue.StartTime, DialectVTT),
			FormatTimestamp(cue.EndTime, DialectVTT)))

		if w.WordTags && cue.Confidence != nil && len(cue.Words) > 0 {
			for _, word := range cue.Words {
				sb.WriteString(fmt.Sprintf("<%s><c>%s</c>",
					FormatTimestamp(word.StartTime, DialectVTT),
					word.Text))
			}
			sb.WriteString("\n\n")
			continue
		}

		sb.WriteString(cue.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func (w *ASSWriter) Render(cues []Cue) string {
	var sb strings.Builder

	sb.WriteString("[Script Info]\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", w.Title))
	sb.WriteString("ScriptType: v4.00+\n")
	sb.WriteString("Collisions: Normal\n")
	sb.WriteString("PlayDepth: 0\n\n")

	sb.WriteString("[V4+ Styles]\n")
	sb.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	sb.WriteString(fmt.Sprintf("Style: Default,%s,%d,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,2,2,10,10,10,1\n\n",
		w.FontName, w.FontSize))

	sb.WriteString("[Events]\n")
	sb.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")

	for _, cue := range cues {
		sb.WriteString(fmt.Sprintf("Dialogue: 0,%s,%s,Default,,0,0,0,,%s\n",
			FormatTimestamp(cue.StartTime, DialectASS),
			FormatTimestamp(cue.EndTime, DialectASS),
			escapeASSText(cue.Text)))
	}
	return sb.String()
}

func escapeASSText(text string) string {
	return strings.ReplaceAll(text, "\n", "\\N")
}

// DialectFromExtension maps a file extension to a dialect, defaulting
// to SRT.
func DialectFromExtension(path string) Dialect {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtt":
		return DialectVTT
	case ".ass", ".ssa":
		return DialectASS
	default:
		return DialectSRT
	}
}

// ExtensionForDialect returns the conventional file extension.
func ExtensionForDialect(dialect Dialect) string {
	switch dialect {
	case DialectVTT:
		return ".vtt"
	case DialectASS:
		return ".ass"
	default:
		return ".srt"
	}
}
