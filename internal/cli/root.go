package cli

import (
	"github.com/nimarahimi/zirnevis/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "zirnevis",
	Short: "Subtitle timing and Persian text toolkit for translation projects",
	Long: `Zirnevis is a toolkit for community subtitle translation projects
with Persian as the target language.

It checks subtitle files for script-level problems in the translated
text, canonicalizes Arabic-variant characters to their Persian forms,
and converts between subtitle formats and project files.`,
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
		StringP("config", "c", "", "Config file with session defaults")
}
