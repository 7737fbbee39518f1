package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rotor/internal/analyze"
	"rotor/internal/display"
	"rotor/internal/format"
)

var (
	crackTop    int
	crackFormat string
)

var crackCmd = &cobra.Command{
	Use:   "crack [text]",
	Short: "Rank likely shifts for a ciphertext by frequency analysis",
	Long: "Crack scores every possible shift of the ciphertext against English\n" +
		"letter frequencies (chi-squared, lower is better) and prints the top\n" +
		"candidates with their decode previews. Works best on longer texts.",
	Example: "  rotor crack \"DWWDF NDWGD ZQ\"\n" +
		"  rotor crack --top 10 < ciphertext.txt",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		mode, err := format.ParseMode(crackFormat)
		if err != nil {
			return err
		}

		cands := analyze.Crack(text)
		top := crackTop
		if top < 1 || top > len(cands) {
			top = len(cands)
		}

		tb := format.NewTable(mode)
		tb.Header("Shift", "Score", "Preview")
		tb.RightAlign(2)
		for _, c := range cands[:top] {
			tb.Row(display.Shift(c.Shift), fmt.Sprintf("%.1f", c.Score), c.Preview)
		}
		fmt.Fprintln(cmd.OutOrStdout(), tb.String())
		return nil
	},
}

func init() {
	crackCmd.Flags().IntVar(&crackTop, "top", 5, "number of candidates to show (max 26)")
	crackCmd.Flags().StringVar(&crackFormat, "format", "ascii", "table format (ascii, markdown)")
}
