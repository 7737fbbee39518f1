package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rotor/internal/codec"
)

var decodeShift int

var decodeCmd = &cobra.Command{
	Use:   "decode [text]",
	Short: "Decode shift-ciphered text with a known shift",
	Long: "Decode applies the complement of --shift, recovering the normalized\n" +
		"plaintext (uppercase, non-letters removed, 5-letter blocks).",
	Example: "  rotor decode --shift 3 \"DWWDF NDWGD ZQ\"",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkShift(decodeShift); err != nil {
			return err
		}
		text, err := readInput(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), codec.Decode(text, decodeShift))
		return nil
	},
}

func init() {
	decodeCmd.Flags().IntVarP(&decodeShift, "shift", "n", 0, "the shift the text was encoded with")
	_ = decodeCmd.MarkFlagRequired("shift")
}
