package subtitle

import (
	"errors"
)

// represents one timed caption unit in the normalized output
type Cue struct {
	StartTime  float64  `json:"start"`
	EndTime    float64  `json:"end"`
	Text       string   `json:"text"`
	Confidence *float64 `json:"confidence,omitempty"`
	Words      []Word   `json:"words,omitempty"`
	Language   string   `json:"language,omitempty"`
}

// represents one timed token within a cue
type Word struct {
	Text       string   `json:"word"`
	StartTime  float64  `json:"start"`
	EndTime    float64  `json:"end"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// Duration returns the cue's time span in seconds.
func (c Cue) Duration() float64 {
	return c.EndTime - c.StartTime
}

// represents one of the supported subtitle grammars
type Dialect string

const (
	DialectSRT Dialect = "srt"
	DialectVTT Dialect = "vtt"
	DialectASS Dialect = "ass"
)

// pipeline-fatal errors; per-cue anomalies are recovered by omission
var (
	ErrEmptyInput          = errors.New("subtitle content is empty")
	ErrMissingFormatHeader = errors.New("ASS events section has no Format line")
	ErrNoDialogue          = errors.New("ASS events section has no Dialogue lines")
)

// local, recovered parse failures
var (
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrMalformedCue     = errors.New("malformed cue block")
)

// rawCue is a format-agnostic cue record produced by the assemblers,
// before sanitization and word timing resolution. Source keeps the
// unsanitized text so VTT word-tag extraction can see inline
// timestamps that sanitization would discard.
type rawCue struct {
	StartTime float64
	EndTime   float64
	Source    string
}
