package subtitle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseTimestamp converts one dialect's timestamp grammar to seconds.
//
//	SRT  HH:MM:SS,mmm
//	VTT  HH:MM:SS.mmm  (lenient: MM:SS.mmm)
//	ASS  H:MM:SS.cc
//
// Wrong component counts, non-numeric components, or a fractional part
// outside 2-3 digits fail with ErrInvalidTimestamp. Callers treat a
// failure as "skip this cue", never as a parse abort.
func ParseTimestamp(raw string, dialect Dialect) (float64, error) {
	raw = strings.TrimSpace(raw)

	sep := "."
	if dialect == DialectSRT {
		sep = ","
	}

	parts := strings.Split(raw, ":")
	switch dialect {
	case DialectVTT:
		if len(parts) != 3 && len(parts) != 2 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
		}
	default:
		if len(parts) != 3 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
		}
	}

	var hours int
	var err error
	if len(parts) == 3 {
		hours, err = parseClockComponent(parts[0])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
		}
		parts = parts[1:]
	}

	minutes, err := parseClockComponent(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
	}

	secParts := strings.Split(parts[1], sep)
	if len(secParts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
	}
	seconds, err := parseClockComponent(secParts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
	}

	fracDigits := len(secParts[1])
	if fracDigits < 2 || fracDigits > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
	}
	frac, err := parseClockComponent(secParts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
	}

	return float64(hours)*3600 +
		float64(minutes)*60 +
		float64(seconds) +
		float64(frac)/math.Pow10(fracDigits), nil
}

func parseClockComponent(s string) (int, error) {
	if s == "" {
		return 0, ErrInvalidTimestamp
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidTimestamp
		}
	}
	return strconv.Atoi(s)
}

// FormatTimestamp renders seconds in the given dialect's grammar,
// the inverse of ParseTimestamp for canonical values.
func FormatTimestamp(seconds float64, dialect Dialect) string {
	if seconds < 0 {
		seconds = 0
	}

	if dialect == DialectASS {
		totalCentis := int64(math.Round(seconds * 100))
		hours := totalCentis / 360000
		minutes := (totalCentis / 6000) % 60
		secs := (totalCentis / 100) % 60
		centis := totalCentis % 100
		return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, secs, centis)
	}

	totalMillis := int64(math.Round(seconds * 1000))
	hours := totalMillis / 3600000
	minutes := (totalMillis / 60000) % 60
	secs := (totalMillis / 1000) % 60
	millis := totalMillis % 1000

	if dialect == DialectSRT {
		return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, millis)
}
