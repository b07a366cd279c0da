package main

import (
	"fmt"

	"github.com/martinemde/verbdef/casefile"
	"github.com/spf13/cobra"
)

var suiteCmd = &cobra.Command{
	Use:   "suite <cases.yaml>",
	Short: "Run a YAML suite of inputs against their expected verdicts",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuite,
}

func init() {
	rootCmd.AddCommand(suiteCmd)
}

func runSuite(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd.ErrOrStderr())

	s, err := casefile.LoadFromFile(args[0])
	if err != nil {
		return fmt.Errorf("loading suite: %w", err)
	}
	log.Info("running suite", "path", args[0], "name", s.Name, "cases", len(s.Cases))

	rep := s.Run()
	printSuiteReport(cmd, rep)

	if !rep.OK() {
		return fmt.Errorf("%d of %d cases failed", rep.Failed, len(rep.Results))
	}
	return nil
}

// printSuiteReport prints one line per case followed by a summary.
func printSuiteReport(cmd *cobra.Command, rep casefile.Report) {
	out := cmd.OutOrStdout()
	for _, r := range rep.Results {
		if r.Passed {
			fmt.Fprintf(out, "PASS %s\n", r.ID)
			continue
		}
		fmt.Fprintf(out, "FAIL %s: %s\n", r.ID, r.Reason)
		if r.Reject != nil {
			fmt.Fprintf(out, "     %v\n", r.Reject)
		}
	}
	fmt.Fprintf(out, "\n%d passed, %d failed\n", rep.Passed, rep.Failed)
}
