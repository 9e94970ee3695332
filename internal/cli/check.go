package cli

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mcoot/wordscramble/internal/services/game"
	"github.com/mcoot/wordscramble/internal/services/wordlist"
)

func newCheckCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "check <root> <word> [word...]",
		Short: "Check words against a given root word",
		Long: `Play a single round with the given root word, submitting each word in
order, and report which were accepted and the resulting score.

Words are checked exactly as in play, so repeating a word is rejected.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, words := args[0], args[1:]

			app := d.app
			engine := game.NewEngine(
				wordlist.Static{root},
				app.DictionaryService,
				app.ScoringService,
				app.Clock,
				app.Random,
				d.logger,
				d.cfg.App.GameConfig(),
			)
			if err := engine.StartNewRound(cmd.Context()); err != nil {
				return fmt.Errorf("invalid root word %q: %w", root, err)
			}

			results := lo.Map(words, func(w string, _ int) SubmitView {
				return newSubmitView(engine.Submit(cmd.Context(), w))
			})

			rootWord, _ := engine.RootWord()
			d.out.Print(CheckResult{
				RootWord: rootWord,
				Results:  results,
				Score:    engine.Score(),
			})
			return nil
		},
	}
}
