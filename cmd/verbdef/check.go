package main

import (
	"errors"
	"fmt"

	"github.com/martinemde/verbdef/verbdef"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errRejected = errors.New("input rejected")

var checkCmd = &cobra.Command{
	Use:   "check [file|-]",
	Short: "Check whether a verb definition is well formed",
	Long:  "Tokenize and recognize a verb definition read from a file, stdin (-), or the built-in sample, printing the verdict.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("explain", false, "Print the rejection diagnostic to stderr")
	checkCmd.Flags().Bool("exit-code", false, "Exit with status 1 when the input is rejected")

	_ = viper.BindPFlag("explain", checkCmd.Flags().Lookup("explain"))
	_ = viper.BindPFlag("exit_code", checkCmd.Flags().Lookup("exit-code"))

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd.ErrOrStderr())

	name, src, err := readSource(cmd, args, verbdef.Sample)
	if err != nil {
		return err
	}

	in := verbdef.NewInterpreter(src, cmd.OutOrStdout())
	ok := in.Interpret()
	res := in.Result()

	log.Info("checked input", "source", name, "accepted", ok, "consumed", res.Consumed, "steps", len(res.Steps))
	for _, s := range res.Steps {
		got := "<end of input>"
		if s.Got != nil {
			got = s.Got.String()
		}
		log.Debug("transition", "from", s.From, "cursor", s.Cursor, "want", s.Want, "got", got, "matched", s.Matched, "to", s.To)
	}

	if ok {
		return nil
	}
	if viper.GetBool("explain") && res.Err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", name, res.Err)
	}
	if viper.GetBool("exit_code") {
		return errRejected
	}
	return nil
}
