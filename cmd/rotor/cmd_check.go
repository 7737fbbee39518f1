package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rotor/internal/display"
	"rotor/internal/exercise"
	"rotor/internal/format"
	"rotor/internal/logging"
	"rotor/internal/store"
)

var (
	checkFile     string
	checkParallel int
	checkDBPath   string
	checkFormat   string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check an exercise set and record the attempt",
	Long: "Check runs every case of an exercise set YAML file, prints a verdict\n" +
		"table, and records the attempt in the history DB. Cases with a blank\n" +
		"expected value count as unanswered. Exits non-zero when any case fails.",
	Example: "  rotor check -f exercises/week-3.yaml\n" +
		"  rotor check -f week-3.yaml --parallel 4 --format markdown",
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "exercise set YAML file (required)")
	checkCmd.Flags().IntVar(&checkParallel, "parallel", 1, "number of parallel workers")
	checkCmd.Flags().StringVar(&checkDBPath, "db", store.DefaultDBPath, "history DB path (\"\" disables history)")
	checkCmd.Flags().StringVar(&checkFormat, "format", "ascii", "table format (ascii, markdown)")
	_ = checkCmd.MarkFlagRequired("file")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	logger := logging.New("check")

	mode, err := format.ParseMode(checkFormat)
	if err != nil {
		return err
	}

	set, err := exercise.Load(checkFile)
	if err != nil {
		return err
	}

	results, sum, err := exercise.Runner{Parallel: checkParallel}.Run(cmd.Context(), set)
	if err != nil {
		return fmt.Errorf("run exercise set: %w", err)
	}

	if checkDBPath != "" {
		st, err := store.Open(checkDBPath)
		if err != nil {
			return err
		}
		defer st.Close()
		for _, r := range results {
			_, err := st.SaveAttempt(&store.Attempt{
				SetName:  set.Name,
				CaseName: r.Case.Name,
				Input:    r.Case.Input,
				Shift:    r.Case.Shift,
				Got:      r.Got,
				Want:     r.Case.Expected,
				Verdict:  string(r.Verdict),
			})
			if err != nil {
				return fmt.Errorf("record attempt: %w", err)
			}
		}
		logger.Info("attempt recorded", "set", set.Name, "db", checkDBPath)
	}

	tb := format.NewTable(mode)
	tb.Header("Case", "Shift", "Verdict", "Got", "Want")
	for _, r := range results {
		want := ""
		if r.Verdict == exercise.VerdictFail {
			want = r.Case.Expected
		}
		tb.Row(r.Case.Name, display.Shift(r.Case.Shift), display.Verdict(string(r.Verdict)), r.Got, want)
	}
	tb.Footer("", "", fmt.Sprintf("%d/%d correct", sum.Passed, sum.Total()), "", "")
	fmt.Fprintln(cmd.OutOrStdout(), tb.String())

	if sum.Failed > 0 {
		return fmt.Errorf("%d case(s) incorrect", sum.Failed)
	}
	return nil
}
