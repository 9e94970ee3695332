package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/services/letters"
)

// REPL commands; anything else is submitted as a guess
const (
	cmdNew   = ":new"
	cmdHint  = ":hint"
	cmdState = ":state"
	cmdHelp  = ":help"
	cmdQuit  = ":quit"
)

const playHelp = `Type a word and press Enter to submit it.
  :new    start a new round
  :hint   show how many words are left to find
  :state  show the current round
  :help   show this help
  :quit   exit`

func newPlayCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play interactively",
		Long: `Start a round and read guesses from standard input, one per line.

` + playHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), d, cmd.InOrStdin())
		},
	}
}

func runPlay(ctx context.Context, d *deps, in io.Reader) error {
	engine := d.app.Engine
	out := d.out

	engine.SetListener(func(ev model.Event) {
		if d.cfg.Verbose {
			out.Print(newEventView(ev))
			return
		}
		if p, ok := ev.Payload.(model.HighScoreRaisedPayload); ok && !out.IsJSON() {
			out.PrintMessage(fmt.Sprintf("New high score: %d", p.Current))
		}
	})
	defer engine.SetListener(nil)

	if err := engine.StartNewRound(ctx); err != nil {
		return err
	}
	out.Print(newRoundView(engine.Snapshot()))

	scanner := bufio.NewScanner(in)
	for {
		out.Prompt("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()

		switch strings.TrimSpace(line) {
		case cmdQuit:
			return finishPlay(d)
		case cmdNew:
			if err := engine.StartNewRound(ctx); err != nil {
				return err
			}
			out.Print(newRoundView(engine.Snapshot()))
		case cmdHint:
			out.Print(hint(d))
		case cmdState:
			out.Print(newRoundView(engine.Snapshot()))
		case cmdHelp:
			out.PrintMessage(playHelp)
		default:
			engine.SetInput(line)
			res := engine.SubmitInput(ctx)
			out.Print(newSubmitView(res))
			if res.Accepted {
				out.Print(newRoundView(engine.Snapshot()))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return finishPlay(d)
}

func finishPlay(d *deps) error {
	highScore := d.app.Engine.CheckAndRaiseHighScore()
	d.out.PrintMessage(fmt.Sprintf("Final high score: %d", highScore))
	return nil
}

// hint counts the dictionary words formable from the root word that have not
// been guessed, and suggests the longest one by its first letter
func hint(d *deps) HintView {
	snap := d.app.Engine.Snapshot()
	formable := d.app.DictionaryService.FindFormableWords(snap.RootWord)

	guessed := lo.SliceToMap(snap.Guesses, func(g string) (string, struct{}) {
		return letters.Normalize(g), struct{}{}
	})
	remaining := lo.Reject(formable, func(w string, _ int) bool {
		_, ok := guessed[w]
		return ok
	})

	view := HintView{
		RootWord:  snap.RootWord,
		Total:     len(formable),
		Found:     len(formable) - len(remaining),
		Remaining: len(remaining),
	}
	if len(remaining) > 0 {
		next := remaining[0]
		view.Pattern = next[:1] + strings.Repeat("_", len(next)-1)
	}
	return view
}
