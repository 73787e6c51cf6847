package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// shortCodeAlphabet excludes characters that are easy to confuse when
// read aloud or retyped: 0, O, I, l and 1.
const shortCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

const (
	shareKeyBytes   = 32
	shortCodeLength = 8
)

// GenerateShareKey returns a 64-character hex key from crypto/rand.
func GenerateShareKey() (string, error) {
	buf := make([]byte, shareKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating share key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// GenerateShortCode returns an 8-character code from the unambiguous
// alphabet.
func GenerateShortCode() (string, error) {
	buf := make([]byte, shortCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating short code: %w", err)
	}
	code := make([]byte, shortCodeLength)
	for i, b := range buf {
		code[i] = shortCodeAlphabet[int(b)%len(shortCodeAlphabet)]
	}
	return string(code), nil
}

// IsValidShareKey reports whether s has the shape of a generated key.
func IsValidShareKey(s string) bool {
	if len(s) != shareKeyBytes*2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// IsValidShortCode reports whether s has the shape of a generated
// short code.
func IsValidShortCode(s string) bool {
	if len(s) != shortCodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isShortCodeChar(s[i]) {
			return false
		}
	}
	return true
}

func isShortCodeChar(c byte) bool {
	for i := 0; i < len(shortCodeAlphabet); i++ {
		if shortCodeAlphabet[i] == c {
			return true
		}
	}
	return false
}

// SecureCompare compares two strings in constant time.
func SecureCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
