// Package poly implements the Vigenère polyalphabetic substitution cipher.
package poly

import (
	"strings"

	"github.com/cipherstack/cipherstack/pkg/cipher"
	errs "github.com/cipherstack/cipherstack/pkg/errors"
)

// Algorithm registers the Vigenère cipher.
var Algorithm = &cipher.Algorithm{
	ID:          cipher.PolySubstitution,
	Name:        "Vigenère",
	Aliases:     []string{"vigenere", "poly"},
	KeyHint:     "one or more letters, e.g. lemon",
	Lossy:       true,
	ValidateKey: ValidateKey,
	Encrypt:     Encrypt,
	Decrypt:     Decrypt,
}

// shifts converts key into per-letter shift amounts.
func shifts(key string) ([]int, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, errs.New(errs.ErrCodeInvalidKey, "vigenère key cannot be empty")
	}
	out := make([]int, 0, len(key))
	for _, r := range key {
		if !cipher.IsLetter(r) {
			return nil, errs.New(errs.ErrCodeInvalidKey, "vigenère key contains non-letter %q", r)
		}
		out = append(out, int(cipher.ToLower(r)-'a'))
	}
	return out, nil
}

// ValidateKey checks that key is a non-empty run of letters.
func ValidateKey(key string) error {
	_, err := shifts(key)
	return err
}

// Encrypt adds the cycled key to each letter of text.
func Encrypt(text, key string) (string, error) {
	return apply(text, key, 1)
}

// Decrypt subtracts the cycled key from each letter of text.
func Decrypt(text, key string) (string, error) {
	return apply(text, key, -1)
}

// apply walks text, advancing the key cursor only on letters. Letters come
// out lower-case; everything else is copied unchanged.
func apply(text, key string, sign int) (string, error) {
	ks, err := shifts(key)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(text))
	i := 0
	for _, r := range text {
		if !cipher.IsLetter(r) {
			b.WriteRune(r)
			continue
		}
		p := int(cipher.ToLower(r) - 'a')
		b.WriteRune('a' + rune(cipher.Mod(p+sign*ks[i%len(ks)], 26)))
		i++
	}
	return b.String(), nil
}
