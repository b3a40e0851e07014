package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/subcue/subcue/internal/vocab"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab [subtitle_file]",
	Short: "Print a word frequency table for a subtitle file",
	Long: `Parse a subtitle file and print the vocabulary it contains, most
frequent words first.

Examples:
  subcue vocab episode.srt
  subcue vocab captions.vtt --top 50 -o vocab.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runVocab,
}

func init() {
	rootCmd.AddCommand(vocabCmd)

	vocabCmd.Flags().IntP("top", "t", 0, "Limit output to the N most frequent words (0 = all)")
}

func runVocab(cmd *cobra.Command, args []string) error {
	cues, err := parseSubtitleFile(cmd, args[0])
	if err != nil {
		return err
	}

	entries := vocab.Analyze(cues)
	if top, _ := cmd.Flags().GetInt("top"); top > 0 {
		entries = vocab.Top(entries, top)
	}

	var sb strings.Builder
	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("%6d  %s\n", entry.Count, entry.Word))
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		fmt.Print(sb.String())
		return nil
	}

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Infow("Wrote vocabulary report",
		"output", outputPath,
		"words", len(entries),
	)

	return nil
}
