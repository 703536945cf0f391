package utils

import "math/rand/v2"

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TokenLength is the length of every case reference token.
const TokenLength = 16

// GenerateToken produces a random token of the given length, each
// character drawn uniformly from A-Z0-9. Tokens are the human-facing
// reversal key for a case record; uniqueness is probabilistic, not
// enforced.
func GenerateToken(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = tokenAlphabet[rand.IntN(len(tokenAlphabet))]
	}
	return string(b)
}
