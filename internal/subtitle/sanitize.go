package subtitle

import (
	"regexp"
	"strings"
)

var (
	assOverrideRegex = regexp.MustCompile(`\{[^}]*\}`)
	markupTagRegex   = regexp.MustCompile(`<[^>]*>`)
	multiSpaceRegex  = regexp.MustCompile(`\s+`)
)

var htmlEntities = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// CleanText strips per-dialect markup down to plain display text.
// An empty result means the cue carried no renderable text and is
// dropped by the assembler rather than emitted.
func CleanText(raw string, dialect Dialect) string {
	text := raw

	switch dialect {
	case DialectASS:
		text = assOverrideRegex.ReplaceAllString(text, "")
		text = strings.ReplaceAll(text, `\N`, " ")
		text = strings.ReplaceAll(text, `\n`, " ")
		text = strings.ReplaceAll(text, `\h`, " ")
		text = strings.ReplaceAll(text, `\`, "")
	case DialectVTT:
		text = markupTagRegex.ReplaceAllString(text, "")
		text = htmlEntities.Replace(text)
	case DialectSRT:
		text = markupTagRegex.ReplaceAllString(text, "")
		text = strings.ReplaceAll(text, `\N`, " ")
	}

	text = multiSpaceRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
