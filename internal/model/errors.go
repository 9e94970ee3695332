package model

import "errors"

// Common errors used across the application
var (
	// Word list errors
	ErrWordListNotLoaded = errors.New("word list not loaded")
	ErrWordListEmpty     = errors.New("word list is empty")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
	ErrDictionaryEmpty     = errors.New("dictionary is empty")

	// Round errors
	ErrNoRoundInProgress = errors.New("no round in progress")

	// Bot errors
	ErrUnknownBotStrategy = errors.New("unknown bot strategy")
)
