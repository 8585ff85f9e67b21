// Package shift implements the Caesar shift cipher.
//
// Every ASCII letter is rotated within its own case by a fixed integer
// amount; all other characters pass through unchanged.
package shift

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"github.com/cipherstack/cipherstack/pkg/cipher"
	errs "github.com/cipherstack/cipherstack/pkg/errors"
)

// Algorithm registers the shift cipher.
var Algorithm = &cipher.Algorithm{
	ID:          cipher.Shift,
	Name:        "Caesar shift",
	Aliases:     []string{"caesar"},
	KeyHint:     "integer shift, e.g. 3 or -5",
	ValidateKey: ValidateKey,
	Encrypt:     Encrypt,
	Decrypt:     Decrypt,
}

// ParseKey parses key as a decimal integer shift. Integers too large for an
// int are accepted and returned reduced modulo 26, which shifts identically.
func ParseKey(key string) (int, error) {
	s := strings.TrimSpace(key)
	k, err := strconv.Atoi(s)
	if err == nil {
		return k, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		if n, ok := new(big.Int).SetString(s, 10); ok {
			// Mod is Euclidean, so the result is in [0, 26).
			return int(n.Mod(n, big.NewInt(26)).Int64()), nil
		}
	}
	return 0, errs.New(errs.ErrCodeInvalidKey, "shift key %q is not an integer", key)
}

// ValidateKey reports whether key parses to an integer.
func ValidateKey(key string) error {
	_, err := ParseKey(key)
	return err
}

// Encrypt shifts every letter of text forward by key.
func Encrypt(text, key string) (string, error) {
	k, err := ParseKey(key)
	if err != nil {
		return "", err
	}
	return Rotate(text, k), nil
}

// Decrypt shifts every letter of text backward by key.
func Decrypt(text, key string) (string, error) {
	k, err := ParseKey(key)
	if err != nil {
		return "", err
	}
	return Rotate(text, -k), nil
}

// Rotate shifts each ASCII letter of text by k positions, preserving case.
// k may be any integer; it is reduced modulo 26.
func Rotate(text string, k int) string {
	k = cipher.Mod(k, 26)
	if k == 0 {
		return text
	}
	return strings.Map(func(r rune) rune {
		switch {
		case cipher.IsLower(r):
			return 'a' + rune(cipher.Mod(int(r-'a')+k, 26))
		case cipher.IsUpper(r):
			return 'A' + rune(cipher.Mod(int(r-'A')+k, 26))
		}
		return r
	}, text)
}
