package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/f3rmion/lipi/internal/logging"
	"github.com/f3rmion/lipi/internal/session"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var convertCmd = &cobra.Command{
	Use:   "convert [text...]",
	Short: "Convert Roman Nepali to Devanagari",
	Long: `Convert Roman Nepali text and print the Devanagari transliteration.

Arguments are joined with spaces and converted as one text. Without
arguments every line read from stdin is converted on its own.

When the service fails the input is printed unchanged.

Example:
  lipi convert namaste
  lipi convert kasto cha
  echo "tapai kaha basnu huncha" | lipi convert`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	logging.SetOutput(cmd.ErrOrStderr(), viper.GetBool("verbose"))

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	tr := newTransliterator(cfg)
	out := cmd.OutOrStdout()

	if len(args) > 0 {
		text := strings.Join(args, " ")
		fmt.Fprintln(out, session.ConvertOnce(cmd.Context(), tr, text))
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		fmt.Fprintln(out, session.ConvertOnce(cmd.Context(), tr, scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	return nil
}
