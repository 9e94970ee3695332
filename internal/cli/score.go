package cli

import (
	"github.com/spf13/cobra"
)

func newScoreCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "score <word> [word...]",
		Short: "Score a list of words",
		Long: `Score words as if they were accepted guesses, in the order given. The
first word is position 1. No validation is done.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d.out.Print(newScoreResult(d.app.ScoringService.Breakdown(args)))
			return nil
		},
	}
}
