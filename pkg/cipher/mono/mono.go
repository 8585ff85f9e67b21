// Package mono implements monoalphabetic substitution.
//
// The key is a permutation of the 26-letter alphabet: the letter at
// position i of the key replaces the i-th letter of the alphabet. Input is
// lower-cased first, so case is not preserved.
package mono

import (
	"strings"

	"github.com/cipherstack/cipherstack/pkg/cipher"
	errs "github.com/cipherstack/cipherstack/pkg/errors"
)

// Algorithm registers the monoalphabetic substitution cipher.
var Algorithm = &cipher.Algorithm{
	ID:          cipher.MonoSubstitution,
	Name:        "Monoalphabetic substitution",
	Aliases:     []string{"monoalphabetic", "mono"},
	KeyHint:     "26 distinct letters, e.g. qwertyuiopasdfghjklzxcvbnm",
	Lossy:       true,
	ValidateKey: ValidateKey,
	Encrypt:     Encrypt,
	Decrypt:     Decrypt,
}

// table maps a lower-case letter to its substitute.
type table map[rune]rune

// ValidateKey checks that key is a permutation of the alphabet.
func ValidateKey(key string) error {
	_, err := parseKey(key)
	return err
}

func parseKey(key string) ([]rune, error) {
	k := []rune(strings.ToLower(strings.TrimSpace(key)))
	if len(k) != len(cipher.Alphabet) {
		return nil, errs.New(errs.ErrCodeInvalidKey, "substitution key must have %d letters, got %d", len(cipher.Alphabet), len(k))
	}
	seen := make(map[rune]bool, len(k))
	for _, r := range k {
		if !cipher.IsLower(r) {
			return nil, errs.New(errs.ErrCodeInvalidKey, "substitution key contains non-letter %q", r)
		}
		if seen[r] {
			return nil, errs.New(errs.ErrCodeInvalidKey, "substitution key repeats letter %q", r)
		}
		seen[r] = true
	}
	return k, nil
}

// forward builds the plain-to-cipher table for key.
func forward(k []rune) table {
	t := make(table, len(k))
	for i, r := range cipher.Alphabet {
		t[r] = k[i]
	}
	return t
}

// inverse builds the cipher-to-plain table for key.
func inverse(k []rune) table {
	t := make(table, len(k))
	for i, r := range cipher.Alphabet {
		t[k[i]] = r
	}
	return t
}

func (t table) apply(text string) string {
	return strings.Map(func(r rune) rune {
		if s, ok := t[r]; ok {
			return s
		}
		return r
	}, strings.ToLower(text))
}

// Encrypt substitutes each letter of text using the forward table.
func Encrypt(text, key string) (string, error) {
	k, err := parseKey(key)
	if err != nil {
		return "", err
	}
	return forward(k).apply(text), nil
}

// Decrypt substitutes each letter of text using the inverse table.
func Decrypt(text, key string) (string, error) {
	k, err := parseKey(key)
	if err != nil {
		return "", err
	}
	return inverse(k).apply(text), nil
}
