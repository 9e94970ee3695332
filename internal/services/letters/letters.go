// Package letters holds the letter-pool rules shared by the engine and the
// dictionary: normalization, the a-z check, and sub-multiset containment.
package letters

import (
	"strings"
)

// Normalize lowercases raw input and trims surrounding whitespace
func Normalize(raw string) string {
	return strings.TrimSpace(strings.ToLower(raw))
}

// IsLowerAlpha reports whether s is non-empty and made only of ASCII a-z
func IsLowerAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// IsSubMultiset reports whether every letter of candidate can be taken from
// root, each letter of root used at most once.
//
// Walks candidate and removes one matching occurrence from a scratch copy of
// root per letter; quadratic, fine for words of a couple dozen letters.
func IsSubMultiset(candidate, root string) bool {
	pool := []rune(root)
	for _, letter := range candidate {
		idx := indexOf(pool, letter)
		if idx < 0 {
			return false
		}
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return true
}

func indexOf(pool []rune, letter rune) int {
	for i, r := range pool {
		if r == letter {
			return i
		}
	}
	return -1
}
