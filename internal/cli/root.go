package cli

import (
	"github.com/spf13/cobra"
	"github.com/subcue/subcue/internal/logging"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subcue",
	Short: "Normalize subtitle files into timed cues with word-level timing",
	Long: `Subcue ingests SRT, WebVTT, and ASS/SSA subtitle files and converts
them into a single normalized cue model with per-word timestamps,
suitable for playback word-highlighting and vocabulary analysis.

Rolling auto-generated captions are deduplicated; word timings are
taken from embedded timestamps when present and evenly interpolated
otherwise.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringP("language", "l", "", "Language tag stamped on every cue (e.g., en, es, fr)")
	rootCmd.PersistentFlags().
		StringP("config", "c", "", "Path to a YAML config file")
}
