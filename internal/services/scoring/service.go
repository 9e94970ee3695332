package scoring

import (
	"unicode/utf8"

	"github.com/samber/lo"
)

const (
	// BonusInterval is how many guesses make up one bonus tier
	BonusInterval = 5
	// BonusPerTier is multiplied by the tier number to give the bonus
	BonusPerTier = 5
)

// Service scores accepted guess lists
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// Entry is the score contribution of a single guess
type Entry struct {
	Word     string
	Position int // 1-based, in stored order
	Length   int
	Bonus    int
}

// Total returns the entry's full contribution
func (e Entry) Total() int {
	return e.Length + e.Bonus
}

// Score returns the total score of guesses in their stored order.
//
// Each guess scores its character count. Every BonusInterval-th position adds
// BonusPerTier times the tier number, so positions 5, 10, 15 add 5, 10, 15.
// Position is counted in stored order, which is most recent first.
func (s *Service) Score(guesses []string) int {
	return lo.SumBy(s.Breakdown(guesses), func(e Entry) int {
		return e.Total()
	})
}

// Breakdown returns each guess's contribution in stored order
func (s *Service) Breakdown(guesses []string) []Entry {
	return lo.Map(guesses, func(word string, index int) Entry {
		position := index + 1
		return Entry{
			Word:     word,
			Position: position,
			Length:   utf8.RuneCountInString(word),
			Bonus:    Bonus(position),
		}
	})
}

// Bonus returns the bonus for the 1-based position, or 0 when the position
// does not complete a tier
func Bonus(position int) int {
	if position <= 0 || position%BonusInterval != 0 {
		return 0
	}
	return BonusPerTier * (position / BonusInterval)
}

// Interface for dependency injection
type ServiceInterface interface {
	Score(guesses []string) int
	Breakdown(guesses []string) []Entry
}

var _ ServiceInterface = (*Service)(nil)
