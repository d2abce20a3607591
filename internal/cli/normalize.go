package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [subtitle_file]",
	Short: "Canonicalize Arabic-variant characters in subtitle text",
	Long: `Rewrite a subtitle file with its text canonicalized to Persian
forms: Arabic yeh and kaf become their Persian equivalents, variant
hamza glyphs are unified, and runs of whitespace collapse to single
spaces.

The input file is left untouched; output goes to the path given with
--output, or to <name>.normalized.<ext> next to the input.

Examples:
  zirnevis normalize episode01.fa.srt
  zirnevis normalize episode01.fa.vtt -o cleaned.vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	path := args[0]
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", path)
	}

	if outputPath == "" {
		ext := filepath.Ext(path)
		outputPath = strings.TrimSuffix(path, ext) + ".normalized" + ext
	}

	logger.Infow("Normalizing subtitle text",
		"input", path,
		"output", outputPath,
	)

	// Add normalizes every caption's text on the way in
	set, err := loadSet(path)
	if err != nil {
		return fmt.Errorf("failed to load captions: %w", err)
	}

	if err := writeSet(outputPath, set); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Normalized %d captions: %s\n", set.Len(), absOutput)
	return nil
}
