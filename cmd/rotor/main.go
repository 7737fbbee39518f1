// rotor is the classroom toolkit for the alphabet shift cipher exercise:
// encode/decode text, check answers against an exercise set, crack a
// ciphertext by frequency analysis, and review attempt history.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rotor/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	logLevelFlag  string
	logFormatFlag string
)

var rootCmd = &cobra.Command{
	Use:   "rotor",
	Short: "Alphabet shift (Caesar) cipher exercise toolkit",
	Long: "Rotor encodes, decodes, checks and cracks alphabet-shift ciphertexts\n" +
		"for the classroom cipher assignment. Output uses the textbook\n" +
		"presentation: uppercase letters in space-separated 5-letter blocks.",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := logging.ParseLevel(logLevelFlag)
		if err != nil {
			return err
		}
		logging.Init(level, logFormatFlag)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "text", "log format (text, json)")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(crackCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
