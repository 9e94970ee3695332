package game

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordscramble/internal/dependencies/mocks"
	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/services/dictionary"
	"github.com/mcoot/wordscramble/internal/services/scoring"
	"github.com/mcoot/wordscramble/internal/testutil"
)

type fakeWordList struct {
	words []string
	err   error
	loads int
}

func (f *fakeWordList) Load(ctx context.Context) ([]string, error) {
	f.loads++
	if f.err != nil {
		return nil, f.err
	}
	return f.words, nil
}

type fakeSpellChecker struct {
	known map[string]bool
	seen  []string
}

func newFakeSpellChecker(words ...string) *fakeSpellChecker {
	known := make(map[string]bool, len(words))
	for _, w := range words {
		known[w] = true
	}
	return &fakeSpellChecker{known: known}
}

func (f *fakeSpellChecker) IsValidWord(raw string, lang dictionary.Language) bool {
	f.seen = append(f.seen, raw)
	if lang != dictionary.LanguageEnglish {
		return false
	}
	return f.known[strings.ToLower(strings.TrimSpace(raw))]
}

type EngineSuite struct {
	suite.Suite
	ctx      context.Context
	wordList *fakeWordList
	checker  *fakeSpellChecker
	random   *mocks.MockRandom
	clock    *mocks.MockClock
	events   []model.Event
	engine   *Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.ctx = context.Background()
	s.wordList = &fakeWordList{words: []string{"tacos", "planets", "silkworm"}}
	s.checker = newFakeSpellChecker(
		"tacos", "taco", "cat", "act", "cot", "oat", "sat", "coat", "coats", "cost", "a",
		"planets", "plan", "net", "ten",
	)
	s.random = mocks.NewMockRandom()
	s.clock = mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	s.events = nil
	s.engine = s.newEngine(DefaultConfig())
}

func (s *EngineSuite) newEngine(cfg Config) *Engine {
	e := NewEngine(s.wordList, s.checker, scoring.New(), s.clock, s.random, testutil.NopLogger(), cfg)
	e.SetListener(func(ev model.Event) {
		s.events = append(s.events, ev)
	})
	return e
}

// startWith starts a round whose root word is s.wordList.words[index]
func (s *EngineSuite) startWith(index int) {
	s.random.QueueIntn(index)
	s.Require().NoError(s.engine.StartNewRound(s.ctx))
}

func (s *EngineSuite) eventTypes() []model.EventType {
	types := make([]model.EventType, len(s.events))
	for i, ev := range s.events {
		types[i] = ev.Type
	}
	return types
}

// Round lifecycle tests

func (s *EngineSuite) TestInitialState() {
	s.Equal(model.RoundStateUninitialized, s.engine.State())
	root, ok := s.engine.RootWord()
	s.False(ok)
	s.Empty(root)
	s.Empty(s.engine.Guesses())
	s.Equal(0, s.engine.Score())
	s.Equal(0, s.engine.HighScore())
}

func (s *EngineSuite) TestStartNewRoundPicksFromWordList() {
	s.startWith(1)

	root, ok := s.engine.RootWord()
	s.True(ok)
	s.Equal("planets", root)
	s.Equal(model.RoundStateInProgress, s.engine.State())
	s.Equal([]int{3}, s.random.Calls)
}

func (s *EngineSuite) TestStartNewRoundAllowsRepeatRoot() {
	s.startWith(0)
	s.startWith(0)

	root, _ := s.engine.RootWord()
	s.Equal("tacos", root)
	s.Equal(2, s.engine.Snapshot().Round)
}

func (s *EngineSuite) TestWordListLoadedOnce() {
	s.startWith(0)
	s.startWith(1)
	s.startWith(2)

	s.Equal(1, s.wordList.loads)
}

func (s *EngineSuite) TestStartNewRoundClearsInput() {
	s.engine.SetInput("half typed")
	s.startWith(0)

	s.Empty(s.engine.Input())
}

func (s *EngineSuite) TestStartNewRoundResetsGuesses() {
	s.startWith(0)
	s.True(s.engine.Submit(s.ctx, "cat").Accepted)

	s.startWith(1)

	s.Empty(s.engine.Guesses())
	s.Equal(0, s.engine.Score())
}

func (s *EngineSuite) TestCarryGuessesAcrossRounds() {
	s.engine = s.newEngine(Config{CarryGuessesAcrossRounds: true})
	s.startWith(0)
	s.True(s.engine.Submit(s.ctx, "cat").Accepted)

	s.startWith(1)

	s.Equal([]string{"cat"}, s.engine.Guesses())
	// Carried guesses still count as duplicates
	res := s.engine.Submit(s.ctx, "cat")
	s.False(res.Accepted)
	s.Equal(model.ReasonDuplicate, res.Reason)
}

func (s *EngineSuite) TestStartNewRoundWordListError() {
	loadErr := errors.New("disk on fire")
	s.wordList.err = loadErr

	err := s.engine.StartNewRound(s.ctx)

	s.Require().Error(err)
	s.ErrorIs(err, loadErr)
	s.Equal(model.RoundStateUninitialized, s.engine.State())
}

func (s *EngineSuite) TestStartNewRoundEmptyWordList() {
	s.wordList.words = []string{}

	err := s.engine.StartNewRound(s.ctx)

	s.ErrorIs(err, model.ErrWordListEmpty)
}

func (s *EngineSuite) TestStartNewRoundRecordsStartTime() {
	s.clock.Advance(time.Minute)
	s.startWith(0)

	s.Equal(s.clock.Now(), s.engine.Snapshot().RoundStartedAt)
}

// Submission tests

func (s *EngineSuite) TestSubmitAcceptsSubMultiset() {
	s.startWith(0)

	res := s.engine.Submit(s.ctx, "cat")

	s.True(res.Accepted)
	s.Equal(model.ReasonNone, res.Reason)
	s.Equal([]string{"cat"}, s.engine.Guesses())
	s.Equal(3, s.engine.Score())
}

func (s *EngineSuite) TestSubmitPrependsGuesses() {
	s.startWith(0)

	s.engine.Submit(s.ctx, "cat")
	s.engine.Submit(s.ctx, "coat")
	s.engine.Submit(s.ctx, "a")

	s.Equal([]string{"a", "coat", "cat"}, s.engine.Guesses())
}

func (s *EngineSuite) TestSubmitRejectsEmpty() {
	s.startWith(0)

	for _, raw := range []string{"", "   ", "\t\n"} {
		res := s.engine.Submit(s.ctx, raw)
		s.False(res.Accepted, "raw %q", raw)
		s.Equal(model.ReasonEmpty, res.Reason, "raw %q", raw)
	}
	s.Empty(s.engine.Guesses())
}

func (s *EngineSuite) TestSubmitRejectsNonLetters() {
	s.startWith(0)
	s.engine.SetInput("123")

	res := s.engine.SubmitInput(s.ctx)

	s.False(res.Accepted)
	s.Equal(model.ReasonNotLetters, res.Reason)
	s.Empty(s.engine.Guesses())
	s.Empty(s.engine.Input())
}

func (s *EngineSuite) TestSubmitRejectsInnerSpacesAndPunctuation() {
	s.startWith(0)

	for _, raw := range []string{"ta co", "cat!", "c-at", "café"} {
		res := s.engine.Submit(s.ctx, raw)
		s.Equal(model.ReasonNotLetters, res.Reason, "raw %q", raw)
	}
}

func (s *EngineSuite) TestSubmitRejectsDuplicateIdempotently() {
	s.startWith(0)
	s.True(s.engine.Submit(s.ctx, "cat").Accepted)

	for range 3 {
		res := s.engine.Submit(s.ctx, "cat")
		s.False(res.Accepted)
		s.Equal(model.ReasonDuplicate, res.Reason)
	}
	s.Equal([]string{"cat"}, s.engine.Guesses())
	s.Equal(3, s.engine.Score())
}

func (s *EngineSuite) TestSubmitDuplicateIsCaseInsensitive() {
	s.startWith(0)
	s.True(s.engine.Submit(s.ctx, "CAT").Accepted)

	res := s.engine.Submit(s.ctx, " cat ")

	s.False(res.Accepted)
	s.Equal(model.ReasonDuplicate, res.Reason)
}

func (s *EngineSuite) TestSubmitRejectsLettersNotInRoot() {
	s.startWith(0)

	for _, raw := range []string{"tact", "dog", "tacoss"} {
		res := s.engine.Submit(s.ctx, raw)
		s.False(res.Accepted, "raw %q", raw)
		s.Equal(model.ReasonNotInRoot, res.Reason, "raw %q", raw)
	}
}

func (s *EngineSuite) TestSubmitBeforeFirstRound() {
	res := s.engine.Submit(s.ctx, "cat")

	s.False(res.Accepted)
	s.Equal(model.ReasonNotInRoot, res.Reason)
}

func (s *EngineSuite) TestSubmitRejectsMisspelled() {
	s.startWith(0)

	res := s.engine.Submit(s.ctx, "sato")

	s.False(res.Accepted)
	s.Equal(model.ReasonMisspelled, res.Reason)
	s.Empty(s.engine.Guesses())
}

func (s *EngineSuite) TestSpellCheckerOnlyCalledAfterOtherChecks() {
	s.startWith(0)

	s.engine.Submit(s.ctx, "123")
	s.engine.Submit(s.ctx, "dog")
	s.Empty(s.checker.seen)

	s.engine.Submit(s.ctx, "cat")
	s.Equal([]string{"cat"}, s.checker.seen)
}

func (s *EngineSuite) TestSubmitStoresRawInput() {
	s.startWith(0)

	res := s.engine.Submit(s.ctx, "CAT")

	s.True(res.Accepted)
	s.Equal("CAT", res.Word)
	s.Equal([]string{"CAT"}, s.engine.Guesses())
	s.Equal([]string{"CAT"}, s.checker.seen)
}

func (s *EngineSuite) TestSubmitRootWordItself() {
	s.startWith(0)

	s.True(s.engine.Submit(s.ctx, "tacos").Accepted)
}

func (s *EngineSuite) TestSubmitClearsInputOnAcceptance() {
	s.startWith(0)
	s.engine.SetInput("cat")

	res := s.engine.SubmitInput(s.ctx)

	s.True(res.Accepted)
	s.Empty(s.engine.Input())
}

func (s *EngineSuite) TestGuessesReturnsCopy() {
	s.startWith(0)
	s.engine.Submit(s.ctx, "cat")

	guesses := s.engine.Guesses()
	guesses[0] = "mutated"

	s.Equal([]string{"cat"}, s.engine.Guesses())
}

// Scoring and high score tests

func (s *EngineSuite) TestScoreWithBonus() {
	s.startWith(0)
	for _, w := range []string{"cat", "act", "cot", "oat", "sat"} {
		s.Require().True(s.engine.Submit(s.ctx, w).Accepted, w)
	}

	s.Equal(20, s.engine.Score())
	s.Equal(20, s.engine.HighScore())
}

func (s *EngineSuite) TestHighScoreSurvivesNewRound() {
	s.startWith(0)
	s.engine.Submit(s.ctx, "coats")
	s.Equal(5, s.engine.HighScore())

	s.startWith(1)
	s.Equal(0, s.engine.Score())
	s.Equal(5, s.engine.HighScore())

	s.engine.Submit(s.ctx, "net")
	s.Equal(5, s.engine.HighScore())
}

func (s *EngineSuite) TestHighScoreNeverDecreases() {
	previous := 0
	for round := range 4 {
		s.startWith(round % 2)
		for _, w := range []string{"cat", "net", "coat", "plan"} {
			s.engine.Submit(s.ctx, w)
			s.GreaterOrEqual(s.engine.HighScore(), previous)
			previous = s.engine.HighScore()
		}
	}
}

func (s *EngineSuite) TestCheckAndRaiseHighScore() {
	s.startWith(0)
	s.engine.Submit(s.ctx, "cat")

	s.Equal(3, s.engine.CheckAndRaiseHighScore())
	s.Equal(3, s.engine.CheckAndRaiseHighScore())
}

// Event tests

func (s *EngineSuite) TestEventsEmitted() {
	s.startWith(0)
	s.engine.Submit(s.ctx, "cat")
	s.engine.Submit(s.ctx, "123")

	s.Equal([]model.EventType{
		model.EventRoundStarted,
		model.EventWordAccepted,
		model.EventHighScoreRaised,
		model.EventWordRejected,
	}, s.eventTypes())

	s.Equal(model.RoundStartedPayload{RootWord: "tacos"}, s.events[0].Payload)
	s.Equal(model.WordAcceptedPayload{Word: "cat", Score: 3}, s.events[1].Payload)
	s.Equal(model.HighScoreRaisedPayload{Previous: 0, Current: 3}, s.events[2].Payload)
	s.Equal(model.WordRejectedPayload{Word: "123", Reason: model.ReasonNotLetters}, s.events[3].Payload)
	for _, ev := range s.events {
		s.Equal(1, ev.Round)
		s.Equal(s.clock.Now(), ev.Timestamp)
	}
}

func (s *EngineSuite) TestNilListener() {
	s.engine.SetListener(nil)
	s.startWith(0)

	s.True(s.engine.Submit(s.ctx, "cat").Accepted)
	s.Empty(s.events)
}

func (s *EngineSuite) TestSnapshot() {
	s.startWith(0)
	s.engine.Submit(s.ctx, "cat")
	s.engine.SetInput("co")

	snap := s.engine.Snapshot()

	s.Equal(model.RoundStateInProgress, snap.State)
	s.Equal(1, snap.Round)
	s.Equal("tacos", snap.RootWord)
	s.Equal([]string{"cat"}, snap.Guesses)
	s.Equal(3, snap.Score)
	s.Equal(3, snap.HighScore)
	s.Equal("co", snap.Input)
}

func (s *EngineSuite) TestNonEnglishLanguageRejectsEverything() {
	s.engine = s.newEngine(Config{Language: "fr"})
	s.startWith(0)

	res := s.engine.Submit(s.ctx, "cat")

	s.False(res.Accepted)
	s.Equal(model.ReasonMisspelled, res.Reason)
}
