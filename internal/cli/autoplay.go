package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordscramble/internal/model"
)

func newAutoplayCmd(d *deps) *cobra.Command {
	var (
		strategy string
		rounds   int
		words    int
	)

	cmd := &cobra.Command{
		Use:   "autoplay",
		Short: "Let a bot play some rounds",
		Long: fmt.Sprintf(`Start rounds and have a bot submit dictionary words made from each
root word until it runs out or reaches the word limit.

Strategies: %s`, strings.Join(model.ValidBotStrategies(), ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rounds < 1 {
				return fmt.Errorf("rounds must be at least 1, got %d", rounds)
			}

			engine := d.app.Engine
			actions, err := d.app.BotService.Autoplay(cmd.Context(), engine, strategy, rounds, words)
			if err != nil {
				return err
			}

			d.out.Print(AutoplayResult{
				Strategy:  strategy,
				Actions:   actions,
				HighScore: engine.HighScore(),
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", model.BotStrategyLongest, "Bot strategy")
	cmd.Flags().IntVar(&rounds, "rounds", 1, "Number of rounds to play")
	cmd.Flags().IntVar(&words, "words", 0, "Maximum words per round, 0 for no limit")

	return cmd
}
