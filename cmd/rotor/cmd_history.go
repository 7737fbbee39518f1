package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rotor/internal/display"
	"rotor/internal/format"
	"rotor/internal/store"
)

var (
	historySet    string
	historyDBPath string
	historyFormat string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded check attempts, newest first",
	Example: "  rotor history\n" +
		"  rotor history --set week-3 --format markdown",
	RunE: func(cmd *cobra.Command, _ []string) error {
		mode, err := format.ParseMode(historyFormat)
		if err != nil {
			return err
		}

		st, err := store.Open(historyDBPath)
		if err != nil {
			return err
		}
		defer st.Close()

		attempts, err := st.ListAttempts(historySet)
		if err != nil {
			return err
		}
		if len(attempts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No attempts recorded.")
			return nil
		}

		tb := format.NewTable(mode)
		tb.Header("When", "Set", "Case", "Shift", "Verdict")
		for _, a := range attempts {
			tb.Row(a.CreatedAt, a.SetName, a.CaseName, display.Shift(a.Shift), display.Verdict(a.Verdict))
		}
		fmt.Fprintln(cmd.OutOrStdout(), tb.String())
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historySet, "set", "", "filter by exercise set name")
	historyCmd.Flags().StringVar(&historyDBPath, "db", store.DefaultDBPath, "history DB path")
	historyCmd.Flags().StringVar(&historyFormat, "format", "ascii", "table format (ascii, markdown)")
}
