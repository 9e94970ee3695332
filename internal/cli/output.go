package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/services/bot"
	"github.com/mcoot/wordscramble/internal/services/scoring"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
	title  cases.Caser
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{
		format: format,
		w:      w,
		errW:   errW,
		title:  cases.Title(language.English),
	}
}

// IsJSON reports whether output is machine readable
func (o *Output) IsJSON() bool {
	return o.format == "json"
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.IsJSON() {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.IsJSON() {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errW, string(data))
	} else {
		fmt.Fprintf(o.errW, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.IsJSON() {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

// Prompt writes an input prompt; JSON output has none
func (o *Output) Prompt(prompt string) {
	if !o.IsJSON() {
		fmt.Fprint(o.w, prompt)
	}
}

// TitleWord title-cases a root word for display
func (o *Output) TitleWord(word string) string {
	return o.title.String(word)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case RoundView:
		o.printRound(v)
	case SubmitView:
		o.printSubmit(v)
	case HintView:
		o.printHint(v)
	case CheckResult:
		o.printCheckResult(v)
	case ScoreResult:
		o.printScoreResult(v)
	case WordListStats:
		o.printWordListStats(v)
	case EventView:
		o.printEvent(v)
	case AutoplayResult:
		o.printAutoplayResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// RoundView is the displayed state of a round
type RoundView struct {
	Round     int         `json:"round"`
	RootWord  string      `json:"root_word"`
	Guesses   []GuessView `json:"guesses"`
	Score     int         `json:"score"`
	HighScore int         `json:"high_score"`
}

// GuessView is one accepted guess and its length
type GuessView struct {
	Word   string `json:"word"`
	Length int    `json:"length"`
}

// SubmitView is the outcome of one submission
type SubmitView struct {
	Word     string `json:"word"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

// HintView summarises the words still to be found
type HintView struct {
	RootWord  string `json:"root_word"`
	Total     int    `json:"total"`
	Found     int    `json:"found"`
	Remaining int    `json:"remaining"`
	Pattern   string `json:"pattern,omitempty"`
}

// CheckResult is the outcome of checking words against a root word
type CheckResult struct {
	RootWord string       `json:"root_word"`
	Results  []SubmitView `json:"results"`
	Score    int          `json:"score"`
}

// ScoreResult is a scored word list
type ScoreResult struct {
	Entries []ScoreEntry `json:"entries"`
	Total   int          `json:"total"`
}

// ScoreEntry is one scored word
type ScoreEntry struct {
	Word     string `json:"word"`
	Position int    `json:"position"`
	Length   int    `json:"length"`
	Bonus    int    `json:"bonus"`
	Total    int    `json:"total"`
}

// WordListStats describes the loaded word sources
type WordListStats struct {
	Source          string   `json:"source"`
	RootWords       int      `json:"root_words"`
	DictionaryWords int      `json:"dictionary_words"`
	Words           []string `json:"words,omitempty"`
}

// AutoplayResult is a record of bot play
type AutoplayResult struct {
	Strategy  string          `json:"strategy"`
	Actions   []bot.BotAction `json:"actions"`
	HighScore int             `json:"high_score"`
}

// EventView is an engine event for display
type EventView struct {
	Type    string    `json:"type"`
	Round   int       `json:"round"`
	Time    time.Time `json:"time"`
	Payload any       `json:"payload"`
}

func newRoundView(snap model.Snapshot) RoundView {
	return RoundView{
		Round:    snap.Round,
		RootWord: snap.RootWord,
		Guesses: lo.Map(snap.Guesses, func(g string, _ int) GuessView {
			return GuessView{Word: g, Length: utf8.RuneCountInString(g)}
		}),
		Score:     snap.Score,
		HighScore: snap.HighScore,
	}
}

func newSubmitView(res model.SubmitResult) SubmitView {
	return SubmitView{
		Word:     res.Word,
		Accepted: res.Accepted,
		Reason:   string(res.Reason),
	}
}

func newScoreResult(entries []scoring.Entry) ScoreResult {
	return ScoreResult{
		Entries: lo.Map(entries, func(e scoring.Entry, _ int) ScoreEntry {
			return ScoreEntry{
				Word:     e.Word,
				Position: e.Position,
				Length:   e.Length,
				Bonus:    e.Bonus,
				Total:    e.Total(),
			}
		}),
		Total: lo.SumBy(entries, func(e scoring.Entry) int {
			return e.Total()
		}),
	}
}

func newEventView(ev model.Event) EventView {
	return EventView{
		Type:    string(ev.Type),
		Round:   ev.Round,
		Time:    ev.Timestamp,
		Payload: ev.Payload,
	}
}

// describeReason turns a rejection reason into a message for the player
func describeReason(reason string) string {
	switch model.RejectReason(reason) {
	case model.ReasonEmpty:
		return "nothing to submit"
	case model.ReasonNotLetters:
		return "only letters a-z are allowed"
	case model.ReasonDuplicate:
		return "already guessed"
	case model.ReasonNotInRoot:
		return "can't be made from the root word"
	case model.ReasonMisspelled:
		return "not a recognised word"
	default:
		return reason
	}
}

func (o *Output) printRound(r RoundView) {
	fmt.Fprintf(o.w, "Round %d: %s\n", r.Round, o.TitleWord(r.RootWord))
	fmt.Fprintf(o.w, "Score: %d  High score: %d\n", r.Score, r.HighScore)
	if len(r.Guesses) == 0 {
		return
	}
	fmt.Fprintf(o.w, "Guesses (%d):\n", len(r.Guesses))
	for _, g := range r.Guesses {
		fmt.Fprintf(o.w, "  %s (%d)\n", g.Word, g.Length)
	}
}

func (o *Output) printSubmit(s SubmitView) {
	if s.Accepted {
		fmt.Fprintf(o.w, "✓ %s\n", s.Word)
		return
	}
	fmt.Fprintf(o.w, "✗ %q: %s\n", s.Word, describeReason(s.Reason))
}

func (o *Output) printHint(h HintView) {
	if h.Remaining == 0 {
		fmt.Fprintf(o.w, "You found all %d words in %s!\n", h.Total, o.TitleWord(h.RootWord))
		return
	}
	fmt.Fprintf(o.w, "%d of %d words found, %d to go\n", h.Found, h.Total, h.Remaining)
	if h.Pattern != "" {
		fmt.Fprintf(o.w, "Try: %s\n", h.Pattern)
	}
}

func (o *Output) printCheckResult(c CheckResult) {
	fmt.Fprintf(o.w, "Root word: %s\n", o.TitleWord(c.RootWord))
	for _, r := range c.Results {
		o.printSubmit(r)
	}
	fmt.Fprintf(o.w, "Score: %d\n", c.Score)
}

func (o *Output) printScoreResult(s ScoreResult) {
	for _, e := range s.Entries {
		line := fmt.Sprintf("%3d. %-16s %2d", e.Position, e.Word, e.Length)
		if e.Bonus > 0 {
			line += fmt.Sprintf(" +%d bonus", e.Bonus)
		}
		fmt.Fprintln(o.w, line)
	}
	fmt.Fprintf(o.w, "Total: %d\n", s.Total)
}

func (o *Output) printWordListStats(s WordListStats) {
	fmt.Fprintf(o.w, "Source: %s\n", s.Source)
	fmt.Fprintf(o.w, "Root words: %d\n", s.RootWords)
	fmt.Fprintf(o.w, "Dictionary words: %d\n", s.DictionaryWords)
	if len(s.Words) > 0 {
		fmt.Fprintln(o.w, strings.Join(s.Words, "\n"))
	}
}

func (o *Output) printEvent(e EventView) {
	switch p := e.Payload.(type) {
	case model.RoundStartedPayload:
		fmt.Fprintf(o.w, "[event] round %d started: %s\n", e.Round, o.TitleWord(p.RootWord))
	case model.WordAcceptedPayload:
		fmt.Fprintf(o.w, "[event] accepted %s, score %d\n", p.Word, p.Score)
	case model.WordRejectedPayload:
		fmt.Fprintf(o.w, "[event] rejected %q: %s\n", p.Word, p.Reason)
	case model.HighScoreRaisedPayload:
		fmt.Fprintf(o.w, "[event] high score %d -> %d\n", p.Previous, p.Current)
	default:
		fmt.Fprintf(o.w, "[event] %s\n", e.Type)
	}
}

func (o *Output) printAutoplayResult(a AutoplayResult) {
	fmt.Fprintf(o.w, "Strategy: %s\n", model.BotStrategyDisplayName(a.Strategy))
	for _, action := range a.Actions {
		switch action.Type {
		case bot.ActionNewRound:
			fmt.Fprintf(o.w, "Round %d: %s\n", action.Round, o.TitleWord(action.Word))
		case bot.ActionSubmit:
			if action.Accepted {
				fmt.Fprintf(o.w, "  ✓ %s (score %d)\n", action.Word, action.Score)
			} else {
				fmt.Fprintf(o.w, "  ✗ %s: %s\n", action.Word, describeReason(string(action.Reason)))
			}
		}
	}
	fmt.Fprintf(o.w, "Final high score: %d\n", a.HighScore)
}
