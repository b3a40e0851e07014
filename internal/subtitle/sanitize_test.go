package subtitle

import (
	"testing"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		dialect Dialect
		want    string
	}{
		{
			name:    "ass override blocks",
			raw:     `{\pos(100,200)}{\i1}Hello{\i0} world`,
			dialect: DialectASS,
			want:    "Hello world",
		},
		{
			name:    "ass line breaks and hard spaces",
			raw:     `First\NSecond\nThird\hFourth`,
			dialect: DialectASS,
			want:    "First Second Third Fourth",
		},
		{
			name:    "ass stray backslash",
			raw:     `weird\text`,
			dialect: DialectASS,
			want:    "weirdtext",
		},
		{
			name:    "vtt word timing tags",
			raw:     `<00:00:01.000><c> the</c><00:00:01.400><c> quick</c>`,
			dialect: DialectVTT,
			want:    "the quick",
		},
		{
			name:    "vtt voice and class tags",
			raw:     `<v Roger>Hello <c.loud>world</c></v>`,
			dialect: DialectVTT,
			want:    "Hello world",
		},
		{
			name:    "vtt html entities",
			raw:     "Tom &amp; Jerry &lt;3 &quot;cheese&quot;&nbsp;&#39;n&#39; crackers",
			dialect: DialectVTT,
			want:    `Tom & Jerry <3 "cheese" 'n' crackers`,
		},
		{
			name:    "srt html tags",
			raw:     "<i>Hello</i> <b>world</b>",
			dialect: DialectSRT,
			want:    "Hello world",
		},
		{
			name:    "srt literal line break escape",
			raw:     `line one\Nline two`,
			dialect: DialectSRT,
			want:    "line one line two",
		},
		{
			name:    "whitespace collapse",
			raw:     "  too   many\t spaces \n here ",
			dialect: DialectSRT,
			want:    "too many spaces here",
		},
		{
			name:    "markup only becomes empty",
			raw:     `{\an8}`,
			dialect: DialectASS,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.raw, tt.dialect); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
