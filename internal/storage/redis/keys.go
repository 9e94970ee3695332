package redis

import (
	"fmt"
)

// Key prefix for all game-related data
const keyPrefix = "wscramble"

// wordListKey returns the Redis key for the root word SET read from source
func wordListKey(source string) string {
	return fmt.Sprintf("%s:wordlist:%s", keyPrefix, source)
}

// dictionaryKey returns the Redis key for the dictionary word SET read from source
func dictionaryKey(source string) string {
	return fmt.Sprintf("%s:dictionary:%s", keyPrefix, source)
}
