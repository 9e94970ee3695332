package bot

import (
	"github.com/mcoot/wordscramble/internal/dependencies/random"
	"github.com/mcoot/wordscramble/internal/model"
)

// Strategy defines how a bot chooses its next word
type Strategy interface {
	// ChooseWord picks one of candidates, which are ordered longest first
	// and never empty
	ChooseWord(candidates []string) string
}

// LongestStrategy always plays the longest remaining word
type LongestStrategy struct{}

// NewLongestStrategy creates a new LongestStrategy
func NewLongestStrategy() *LongestStrategy {
	return &LongestStrategy{}
}

// ChooseWord returns the first candidate
func (s *LongestStrategy) ChooseWord(candidates []string) string {
	return candidates[0]
}

// RandomStrategy picks any remaining word
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseWord returns a random candidate
func (s *RandomStrategy) ChooseWord(candidates []string) string {
	return candidates[s.random.Intn(len(candidates))]
}

// DefaultStrategies returns every built-in strategy keyed by name
func DefaultStrategies(rnd random.Random) map[string]Strategy {
	return map[string]Strategy{
		model.BotStrategyLongest: NewLongestStrategy(),
		model.BotStrategyRandom:  NewRandomStrategy(rnd),
	}
}
