package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [subtitle_file]",
	Short: "Convert between subtitle formats and project documents",
	Long: `Convert a subtitle file or project document to another format.

Supported inputs and outputs are SRT, VTT, and JSON project documents.
The target format is taken from the extension of the --output path.

Examples:
  zirnevis convert episode01.srt -o episode01.vtt
  zirnevis convert episode01.vtt -o project.json
  zirnevis convert project.json -o episode01.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := args[0]
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", path)
	}

	if outputPath == "" {
		return fmt.Errorf("output path is required: use --output")
	}

	inExt := strings.ToLower(filepath.Ext(path))
	outExt := strings.ToLower(filepath.Ext(outputPath))
	if inExt == outExt {
		return fmt.Errorf(
			"input and output are both %s files; nothing to convert",
			outExt,
		)
	}

	logger.Infow("Converting captions",
		"input", path,
		"output", outputPath,
	)

	set, err := loadSet(path)
	if err != nil {
		return fmt.Errorf("failed to load captions: %w", err)
	}

	if err := writeSet(outputPath, set); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Converted %d captions: %s\n", set.Len(), absOutput)
	return nil
}
