package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// passwordAlphabet is the character set generated passwords draw from.
const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!$%^"

// passwordLength is the fixed length of generated passwords.
const passwordLength = 12

// GeneratePassword returns a random password of passwordLength characters,
// each an independent uniform choice from passwordAlphabet (repeats allowed).
func GeneratePassword() (string, error) {
	max := big.NewInt(int64(len(passwordAlphabet)))
	buf := make([]byte, passwordLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("sample password character: %w", err)
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf), nil
}
