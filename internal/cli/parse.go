package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/subcue/subcue/internal/config"
	"github.com/subcue/subcue/internal/subtitle"
)

var parseCmd = &cobra.Command{
	Use:   "parse [subtitle_file]",
	Short: "Parse a subtitle file into normalized JSON cues",
	Long: `Parse an SRT, WebVTT, or ASS/SSA file and print the normalized cue
list as JSON. The dialect is detected from the content, not the file
extension.

Examples:
  subcue parse captions.vtt
  subcue parse episode.srt -o cues.json -l en
  subcue parse show.ass --pretty`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolP("pretty", "p", false, "Indent the JSON output")
}

func runParse(cmd *cobra.Command, args []string) error {
	cues, err := parseSubtitleFile(cmd, args[0])
	if err != nil {
		return err
	}

	pretty, _ := cmd.Flags().GetBool("pretty")
	var data []byte
	if pretty {
		data, err = json.MarshalIndent(cues, "", "  ")
	} else {
		data, err = json.Marshal(cues)
	}
	if err != nil {
		return fmt.Errorf("failed to encode cues: %w", err)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(outputPath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Infow("Wrote normalized cues", "output", outputPath, "cues", len(cues))

	return nil
}

// parseSubtitleFile wires flags, config, and the pipeline for every
// command that starts from a subtitle file on disk.
func parseSubtitleFile(cmd *cobra.Command, path string) ([]subtitle.Cue, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	language, _ := cmd.Flags().GetString("language")
	if language == "" {
		language = cfg.Language
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle file: %w", err)
	}
	content := strings.ToValidUTF8(string(data), "")

	logger.Infow("Parsing subtitle file",
		"file", path,
		"dialect", subtitle.DetectDialect(content),
		"language", language,
	)

	pipeline := subtitle.NewPipeline(language, cfg.DedupeConfig(), logger.SugaredLogger)
	cues, err := pipeline.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cues, nil
}
