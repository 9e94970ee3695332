// Package data bundles the default word resources into the binary.
package data

import _ "embed"

// WordList holds the newline-delimited root word candidates
//
//go:embed wordlist.txt
var WordList string

// Words holds the newline-delimited English dictionary used for spell checking
//
//go:embed words.txt
var Words string
