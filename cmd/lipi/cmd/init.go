package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/lipi/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize lipi configuration",
	Long: `Write a config.yaml with the default settings to your config directory.

Settings:
  endpoint      transliteration service URL
  input_tool    language/script tag sent as itc (ne-t-i0-und)
  candidates    number of candidates requested (only the first is shown)
  timeout       request timeout, 0 for none
  debounce      delay before converting after a keystroke, 0 for none
  stale_policy  "apply" shows results in completion order,
                "discard" drops results older than the newest request`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.FileName)

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureConfigDir(configDir); err != nil {
		return err
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Adjust debounce or stale_policy if typing feels laggy")
	fmt.Fprintln(out, "  2. Run 'lipi' to start converting")

	return nil
}
