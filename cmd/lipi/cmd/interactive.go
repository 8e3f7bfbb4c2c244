package cmd

import (
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch the interactive converter.

Type Roman Nepali on the left; the Devanagari transliteration appears on
the right and updates on every keystroke.

Controls:
  ctrl+y  Copy output
  ctrl+x  Clear all
  ctrl+t  Toggle tips
  f1      Help
  esc     Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
