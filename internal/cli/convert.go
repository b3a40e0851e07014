package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/subcue/subcue/internal/subtitle"
)

var convertCmd = &cobra.Command{
	Use:   "convert [subtitle_file]",
	Short: "Convert a subtitle file to another dialect",
	Long: `Parse a subtitle file, normalize it, and re-serialize it in the
requested dialect. Rolling captions are deduplicated and markup is
stripped on the way through.

Examples:
  subcue convert captions.vtt -f srt
  subcue convert episode.srt -f ass -o episode.ass
  subcue convert captions.vtt -f vtt --word-tags`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("format", "f", "srt", "Output dialect (srt, vtt, ass)")
	convertCmd.Flags().
		Bool("word-tags", false, "Emit per-word timing tags in VTT output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	format, _ := cmd.Flags().GetString("format")
	dialect := subtitle.Dialect(strings.ToLower(format))
	switch dialect {
	case subtitle.DialectSRT, subtitle.DialectVTT, subtitle.DialectASS:
	default:
		return fmt.Errorf(
			"invalid format %q: supported formats are srt, vtt, ass",
			format,
		)
	}

	cues, err := parseSubtitleFile(cmd, inputPath)
	if err != nil {
		return err
	}

	writer, err := subtitle.NewWriter(dialect)
	if err != nil {
		return err
	}
	if vttWriter, ok := writer.(*subtitle.VTTWriter); ok {
		vttWriter.WordTags, _ = cmd.Flags().GetBool("word-tags")
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outputPath = base + subtitle.ExtensionForDialect(dialect)
	}
	if outputPath == inputPath {
		return fmt.Errorf("output would overwrite input %s; pass -o", inputPath)
	}

	rendered := writer.Render(cues)
	if err := os.WriteFile(outputPath, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Infow("Converted subtitle file",
		"input", inputPath,
		"output", outputPath,
		"format", dialect,
		"cues", len(cues),
	)

	return nil
}
