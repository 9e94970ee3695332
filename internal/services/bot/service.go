package bot

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/samber/lo"

	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/services/game"
	"github.com/mcoot/wordscramble/internal/services/letters"
)

const (
	// MaxBotIterations is a safety limit on submissions per round
	MaxBotIterations = 1000
)

// BotActionType represents the type of action a bot took
type BotActionType string

const (
	ActionNewRound BotActionType = "new_round"
	ActionSubmit   BotActionType = "submit"
)

// BotAction represents a single action taken by a bot
type BotAction struct {
	Type     BotActionType      `json:"type"`
	Round    int                `json:"round"`
	Word     string             `json:"word,omitempty"`
	Accepted bool               `json:"accepted"`
	Reason   model.RejectReason `json:"reason,omitempty"`
	Score    int                `json:"score"`
}

// WordFinder lists the dictionary words that can be made from a root word
type WordFinder interface {
	FindFormableWords(root string) []string
}

// Service plays rounds on an engine without a human
type Service struct {
	finder     WordFinder
	strategies map[string]Strategy
	logger     *slog.Logger
}

// NewService creates a new bot Service
func NewService(finder WordFinder, strategies map[string]Strategy, logger *slog.Logger) *Service {
	return &Service{
		finder:     finder,
		strategies: strategies,
		logger:     logger.With(slog.String("component", "bot-service")),
	}
}

// PlayRound submits words to the round in progress until none are left or
// maxWords have been tried. maxWords <= 0 means no limit.
func (s *Service) PlayRound(ctx context.Context, engine game.EngineInterface, strategy string, maxWords int) ([]BotAction, error) {
	st, err := s.strategy(strategy)
	if err != nil {
		return nil, err
	}

	root, ok := engine.RootWord()
	if !ok {
		return nil, model.ErrNoRoundInProgress
	}
	round := engine.Snapshot().Round

	guessed := lo.SliceToMap(engine.Guesses(), func(g string) (string, struct{}) {
		return letters.Normalize(g), struct{}{}
	})
	candidates := lo.Reject(s.finder.FindFormableWords(root), func(w string, _ int) bool {
		_, ok := guessed[w]
		return ok
	})

	limit := MaxBotIterations
	if maxWords > 0 && maxWords < limit {
		limit = maxWords
	}

	var actions []BotAction
	for range limit {
		if len(candidates) == 0 {
			break
		}

		word := st.ChooseWord(candidates)
		candidates = lo.Without(candidates, word)

		res := engine.Submit(ctx, word)
		actions = append(actions, BotAction{
			Type:     ActionSubmit,
			Round:    round,
			Word:     word,
			Accepted: res.Accepted,
			Reason:   res.Reason,
			Score:    engine.Score(),
		})
	}

	s.logger.InfoContext(ctx, "bot round played",
		slog.String("root_word", root),
		slog.String("strategy", strategy),
		slog.Int("submitted", len(actions)),
		slog.Int("score", engine.Score()),
	)

	return actions, nil
}

// Autoplay starts the given number of new rounds and plays each with
// PlayRound. The high score is banked after the last round.
func (s *Service) Autoplay(ctx context.Context, engine game.EngineInterface, strategy string, rounds, maxWords int) ([]BotAction, error) {
	if _, err := s.strategy(strategy); err != nil {
		return nil, err
	}

	var actions []BotAction
	for range rounds {
		if err := engine.StartNewRound(ctx); err != nil {
			return actions, err
		}
		root, _ := engine.RootWord()
		actions = append(actions, BotAction{
			Type:  ActionNewRound,
			Round: engine.Snapshot().Round,
			Word:  root,
		})

		roundActions, err := s.PlayRound(ctx, engine, strategy, maxWords)
		if err != nil {
			return actions, err
		}
		actions = append(actions, roundActions...)
	}
	engine.CheckAndRaiseHighScore()

	return actions, nil
}

// Strategies returns the registered strategy names, sorted
func (s *Service) Strategies() []string {
	names := lo.Keys(s.strategies)
	slices.Sort(names)
	return names
}

func (s *Service) strategy(name string) (Strategy, error) {
	st, ok := s.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownBotStrategy, name)
	}
	return st, nil
}
