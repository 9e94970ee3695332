package game

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/mcoot/wordscramble/internal/dependencies/clock"
	"github.com/mcoot/wordscramble/internal/dependencies/random"
	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/services/dictionary"
	"github.com/mcoot/wordscramble/internal/services/letters"
	"github.com/mcoot/wordscramble/internal/services/scoring"
	"github.com/mcoot/wordscramble/internal/services/wordlist"
)

// Config controls round behaviour
type Config struct {
	// CarryGuessesAcrossRounds keeps the guess list when a new round starts.
	// Old guesses then still count toward score and duplicate checks even
	// though they were built from a different root word.
	CarryGuessesAcrossRounds bool
	// Language is passed to the spell checker; defaults to English
	Language dictionary.Language
}

// DefaultConfig returns the default round behaviour
func DefaultConfig() Config {
	return Config{
		CarryGuessesAcrossRounds: false,
		Language:                 dictionary.LanguageEnglish,
	}
}

// Engine owns the state of a single player's game: root word, accepted
// guesses, high score and the input buffer.
//
// An Engine is driven by one UI loop and is not safe for concurrent use.
type Engine struct {
	wordList     wordlist.Provider
	spellChecker dictionary.SpellChecker
	scoring      *scoring.Service
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger
	cfg          Config
	listener     model.Listener

	rootWords      []string // universe, loaded on first round
	rootWord       string
	guesses        []string // most recent first, as typed
	highScore      int
	input          string
	round          int
	roundStartedAt time.Time
}

// NewEngine creates a new game engine
func NewEngine(
	wordList wordlist.Provider,
	spellChecker dictionary.SpellChecker,
	scoringService *scoring.Service,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
	cfg Config,
) *Engine {
	if cfg.Language == "" {
		cfg.Language = dictionary.LanguageEnglish
	}
	return &Engine{
		wordList:     wordList,
		spellChecker: spellChecker,
		scoring:      scoringService,
		clock:        clk,
		random:       rnd,
		logger:       logger,
		cfg:          cfg,
	}
}

// SetListener registers a function to receive engine events; nil disables events
func (e *Engine) SetListener(listener model.Listener) {
	e.listener = listener
}

// StartNewRound banks the current score into the high score, resets the
// guess list and picks a new root word uniformly at random. The same root
// word may come up again.
//
// An error means the word list could not be loaded or is empty. There is no
// degraded mode; callers should treat it as fatal.
func (e *Engine) StartNewRound(ctx context.Context) error {
	e.CheckAndRaiseHighScore()

	words, err := e.universe(ctx)
	if err != nil {
		return err
	}

	if !e.cfg.CarryGuessesAcrossRounds {
		e.guesses = nil
	}
	e.rootWord = words[e.random.Intn(len(words))]
	e.input = ""
	e.round++
	e.roundStartedAt = e.clock.Now()

	e.logger.InfoContext(ctx, "round started",
		slog.Int("round", e.round),
		slog.String("root_word", e.rootWord),
		slog.Int("carried_guesses", len(e.guesses)),
	)
	e.emit(model.EventRoundStarted, model.RoundStartedPayload{RootWord: e.rootWord})

	return nil
}

// universe returns the cached root word list, loading it on first use
func (e *Engine) universe(ctx context.Context) ([]string, error) {
	if e.rootWords != nil {
		return e.rootWords, nil
	}

	words, err := e.wordList.Load(ctx)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to load word list", slog.String("error", err.Error()))
		return nil, fmt.Errorf("load word list: %w", err)
	}
	if len(words) == 0 {
		return nil, model.ErrWordListEmpty
	}

	e.rootWords = words
	return e.rootWords, nil
}

// Submit runs raw through the validation pipeline and, if it passes, adds
// it to the front of the guess list exactly as typed. The input buffer is
// cleared either way.
//
// Checks run in order and stop at the first failure: non-empty after
// normalizing, only a-z, not already guessed, spelled from the root word's
// letters, known to the spell checker. The spell checker sees raw, not the
// normalized form.
func (e *Engine) Submit(ctx context.Context, raw string) model.SubmitResult {
	e.input = ""

	reason := e.validate(raw)
	if reason != model.ReasonNone {
		e.logger.DebugContext(ctx, "word rejected",
			slog.String("word", raw),
			slog.String("reason", string(reason)),
		)
		e.emit(model.EventWordRejected, model.WordRejectedPayload{Word: raw, Reason: reason})
		return model.SubmitResult{Accepted: false, Reason: reason, Word: raw}
	}

	e.guesses = slices.Insert(e.guesses, 0, raw)
	score := e.Score()

	e.logger.DebugContext(ctx, "word accepted",
		slog.String("word", raw),
		slog.Int("score", score),
	)
	e.emit(model.EventWordAccepted, model.WordAcceptedPayload{Word: raw, Score: score})
	e.CheckAndRaiseHighScore()

	return model.SubmitResult{Accepted: true, Reason: model.ReasonNone, Word: raw}
}

// SubmitInput submits the current input buffer
func (e *Engine) SubmitInput(ctx context.Context) model.SubmitResult {
	return e.Submit(ctx, e.input)
}

func (e *Engine) validate(raw string) model.RejectReason {
	normalized := letters.Normalize(raw)

	switch {
	case normalized == "":
		return model.ReasonEmpty
	case !letters.IsLowerAlpha(normalized):
		return model.ReasonNotLetters
	case e.hasGuessed(normalized):
		return model.ReasonDuplicate
	case !letters.IsSubMultiset(normalized, e.rootWord):
		return model.ReasonNotInRoot
	case !e.spellChecker.IsValidWord(raw, e.cfg.Language):
		return model.ReasonMisspelled
	}
	return model.ReasonNone
}

// hasGuessed compares against the normalized form of each stored guess, so
// "CAT" and "cat" count as the same word
func (e *Engine) hasGuessed(normalized string) bool {
	return lo.ContainsBy(e.guesses, func(g string) bool {
		return letters.Normalize(g) == normalized
	})
}

// Score returns the score derived from the current guess list
func (e *Engine) Score() int {
	return e.scoring.Score(e.guesses)
}

// CheckAndRaiseHighScore raises the high score to the current score if it is
// higher, and returns the high score
func (e *Engine) CheckAndRaiseHighScore() int {
	score := e.Score()
	if score > e.highScore {
		previous := e.highScore
		e.highScore = score
		e.emit(model.EventHighScoreRaised, model.HighScoreRaisedPayload{Previous: previous, Current: score})
	}
	return e.highScore
}

// HighScore returns the highest score seen this process
func (e *Engine) HighScore() int {
	return e.highScore
}

// RootWord returns the current root word, and false before the first round
func (e *Engine) RootWord() (string, bool) {
	return e.rootWord, e.round > 0
}

// Guesses returns a copy of the accepted guesses, most recent first
func (e *Engine) Guesses() []string {
	return slices.Clone(e.guesses)
}

// Input returns the input buffer
func (e *Engine) Input() string {
	return e.input
}

// SetInput replaces the input buffer
func (e *Engine) SetInput(input string) {
	e.input = input
}

// State reports whether a round is in progress
func (e *Engine) State() model.RoundState {
	if e.round == 0 {
		return model.RoundStateUninitialized
	}
	return model.RoundStateInProgress
}

// Snapshot returns a read-only view of the engine state
func (e *Engine) Snapshot() model.Snapshot {
	return model.Snapshot{
		State:          e.State(),
		Round:          e.round,
		RootWord:       e.rootWord,
		Guesses:        e.Guesses(),
		Score:          e.Score(),
		HighScore:      e.highScore,
		Input:          e.input,
		RoundStartedAt: e.roundStartedAt,
	}
}

func (e *Engine) emit(eventType model.EventType, payload any) {
	if e.listener == nil {
		return
	}
	e.listener(model.Event{
		Type:      eventType,
		Timestamp: e.clock.Now(),
		Round:     e.round,
		Payload:   payload,
	})
}

// Interface for dependency injection
type EngineInterface interface {
	StartNewRound(ctx context.Context) error
	Submit(ctx context.Context, raw string) model.SubmitResult
	SubmitInput(ctx context.Context) model.SubmitResult
	Score() int
	CheckAndRaiseHighScore() int
	HighScore() int
	RootWord() (string, bool)
	Guesses() []string
	Input() string
	SetInput(input string)
	State() model.RoundState
	Snapshot() model.Snapshot
	SetListener(listener model.Listener)
}

var _ EngineInterface = (*Engine)(nil)
