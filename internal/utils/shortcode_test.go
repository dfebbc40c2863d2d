package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShortCode(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		code, err := GenerateShortCode()
		require.NoError(t, err)
		require.Len(t, code, ShortCodeLength)

		for _, r := range code {
			assert.True(t, strings.ContainsRune(shortCodeAlphabet, r), "unexpected rune %q", r)
		}
		seen[code] = struct{}{}
	}

	assert.Greater(t, len(seen), 95)
}
