package cli

import (
	"fmt"
	"os"

	"github.com/nimarahimi/zirnevis/internal/persian"
	"github.com/nimarahimi/zirnevis/internal/timecode"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint [subtitle_file]",
	Short: "Check Persian subtitle text for script and timing problems",
	Long: `Check a subtitle file or project document for quality problems in
the Persian translation.

Each caption's text is normalized and validated: captions with no
Persian script or with mixed Persian/Latin text are reported along
with a quality score. Captions shown for less time than a viewer
needs to read them, and captions with overlapping time ranges, are
flagged as warnings.

Examples:
  zirnevis lint episode01.fa.srt
  zirnevis lint project.json --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().
		Bool("strict", false, "Exit with a non-zero status if any caption has issues")
}

func runLint(cmd *cobra.Command, args []string) error {
	path := args[0]
	strict, _ := cmd.Flags().GetBool("strict")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", path)
	}

	logger.Infow("Linting subtitles",
		"input", path,
		"reading_speed_wps", cfg.ReadingWordsPerSecond,
	)

	set, err := loadSet(path)
	if err != nil {
		return fmt.Errorf("failed to load captions: %w", err)
	}

	if set.Len() == 0 {
		return fmt.Errorf("file contains no captions")
	}

	issueCount := 0
	warningCount := 0

	for i, c := range set.All() {
		window := fmt.Sprintf("%s --> %s",
			timecode.Format(c.StartTime, timecode.StyleReadable),
			timecode.Format(c.EndTime, timecode.StyleReadable))

		if c.Validation != nil && !c.Validation.IsValid {
			issueCount++
			fmt.Printf("#%d  %s  score %d/100\n", i+1, window, c.Validation.Score)
			for j, issue := range c.Validation.Issues {
				fmt.Printf("    [%s] %s\n", issue, c.Validation.Suggestions[j])
			}
		}

		if c.TargetText == "" {
			warningCount++
			fmt.Printf("#%d  %s  warning: not translated yet\n", i+1, window)
			continue
		}

		needed := persian.EstimateReadingTimeAt(
			c.TargetText,
			cfg.ReadingWordsPerSecond,
		)
		if c.Duration() < needed {
			warningCount++
			fmt.Printf(
				"#%d  %s  warning: shown for %.1fs but needs about %.1fs to read\n",
				i+1, window, c.Duration(), needed,
			)
		}
	}

	for _, pair := range set.Overlaps() {
		warningCount++
		fmt.Printf("warning: captions overlap between %s and %s\n",
			timecode.Format(pair[1].StartTime, timecode.StyleReadable),
			timecode.Format(pair[0].EndTime, timecode.StyleReadable))
	}

	fmt.Printf("\nChecked %d captions: %d with issues, %d warnings\n",
		set.Len(), issueCount, warningCount)

	if strict && issueCount > 0 {
		return fmt.Errorf("%d captions have validation issues", issueCount)
	}
	return nil
}
