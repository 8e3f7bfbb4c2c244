// Package cmd contains all CLI commands for lipi.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/lipi/internal/clipboard"
	"github.com/f3rmion/lipi/internal/config"
	"github.com/f3rmion/lipi/internal/logging"
	"github.com/f3rmion/lipi/internal/translit"
	"github.com/f3rmion/lipi/internal/tui"
	"github.com/f3rmion/lipi/internal/tui/views"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lipi",
	Short: "Roman to Nepali converter - live Devanagari transliteration",
	Long: `lipi turns Roman-script Nepali into Devanagari as you type.

Every change to the input is sent to the Google Input Tools
transliteration service and the top candidate is shown next to it.
When the service fails, the input is shown unchanged.

Running 'lipi' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/lipi)")
	flags.Bool("verbose", false, "verbose output")
	flags.String("endpoint", "", "transliteration endpoint URL")
	flags.Duration("timeout", 0, "request timeout (0 disables it)")
	flags.Duration("debounce", 0, "delay before converting after a keystroke")
	flags.String("stale-policy", "", `what to do with late results: "apply" or "discard"`)

	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("endpoint", flags.Lookup("endpoint"))
	viper.BindPFlag("timeout", flags.Lookup("timeout"))
	viper.BindPFlag("debounce", flags.Lookup("debounce"))
	viper.BindPFlag("stale_policy", flags.Lookup("stale-policy"))
}

// initConfig reads in ENV variables and resolves the config directory.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("LIPI")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadConfig reads config.yaml from the config directory and applies flag and
// LIPI_* environment overrides on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(filepath.Join(getConfigDir(), config.FileName))
	if err != nil {
		return nil, err
	}

	if viper.IsSet("endpoint") {
		cfg.Endpoint = viper.GetString("endpoint")
	}
	if viper.IsSet("timeout") {
		cfg.Timeout = viper.GetDuration("timeout")
	}
	if viper.IsSet("debounce") {
		cfg.Debounce = viper.GetDuration("debounce")
	}
	if viper.IsSet("stale_policy") {
		cfg.StalePolicy = viper.GetString("stale_policy")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// newTransliterator builds the endpoint client for cfg.
func newTransliterator(cfg *config.Config) translit.Transliterator {
	return translit.NewClient(cfg.ClientOptions())
}

// runTUI launches the interactive converter.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	configDir := getConfigDir()
	if err := config.EnsureConfigDir(configDir); err != nil {
		return err
	}

	// The TUI owns the terminal; diagnostics go to a file.
	logFile, err := logging.OpenFile(cfg.LogPath(configDir), viper.GetBool("verbose"))
	if err != nil {
		return err
	}
	defer logFile.Close()

	if !clipboard.Available() {
		logging.Warnf("no system clipboard found; copies stay inside lipi")
	}

	p := tea.NewProgram(
		tui.NewApp(views.ConverterOptions{
			Transliterator: newTransliterator(cfg),
			Clipboard:      clipboard.Default(),
			Policy:         cfg.Policy(),
			Debounce:       cfg.Debounce,
		}),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
