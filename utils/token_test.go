package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTokenLength(t *testing.T) {
	for _, length := range []int{1, 8, TokenLength, 32} {
		token := GenerateToken(length)
		assert.Len(t, token, length)
	}
}

func TestGenerateTokenAlphabet(t *testing.T) {
	for i := 0; i < 200; i++ {
		token := GenerateToken(TokenLength)
		for _, c := range token {
			assert.True(t, strings.ContainsRune(tokenAlphabet, c),
				"token %q contains character %q outside A-Z0-9", token, c)
		}
	}
}

func TestGenerateTokenVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[GenerateToken(TokenLength)] = true
	}
	// 100 draws over 36^16 values colliding would mean a broken source.
	assert.Greater(t, len(seen), 90)
}
