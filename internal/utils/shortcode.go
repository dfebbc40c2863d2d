package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const shortCodeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ShortCodeLength is the length of generated short URL codes.
const ShortCodeLength = 7

// GenerateShortCode returns a random base62 code of [ShortCodeLength]
// characters.
func GenerateShortCode() (string, error) {
	code := make([]byte, ShortCodeLength)
	limit := big.NewInt(int64(len(shortCodeAlphabet)))

	for i := range code {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("error generating short code: %w", err)
		}
		code[i] = shortCodeAlphabet[n.Int64()]
	}

	return string(code), nil
}
