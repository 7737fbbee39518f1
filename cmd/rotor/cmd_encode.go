package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rotor/internal/codec"
)

var encodeShift int

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode text with the shift cipher",
	Long: "Encode drops non-letters, uppercases what remains, rotates every letter\n" +
		"forward by --shift positions (wrapping past Z), and prints the result in\n" +
		"5-letter blocks. Reads stdin when no text argument is given.",
	Example: "  rotor encode --shift 3 \"attack at dawn\"\n" +
		"  echo 'attack at dawn' | rotor encode --shift 3",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkShift(encodeShift); err != nil {
			return err
		}
		text, err := readInput(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), codec.Encode(text, encodeShift))
		return nil
	},
}

func init() {
	encodeCmd.Flags().IntVarP(&encodeShift, "shift", "n", 0, "alphabet positions to rotate forward")
	_ = encodeCmd.MarkFlagRequired("shift")
}
