// Package registry provides the complete list of supported cipher families.
//
// This package exists to break import cycles: the individual cipher
// packages import pkg/cipher, so pkg/cipher cannot import them back.
// Consumers that need to dispatch on an identifier import this package.
//
// Usage:
//
//	import "github.com/cipherstack/cipherstack/pkg/cipher/registry"
//
//	alg, err := registry.Resolve("caesar")
//	out, _, err := alg.Apply("hello", "3", cipher.Encrypt)
package registry

import (
	"strings"

	"github.com/cipherstack/cipherstack/pkg/cipher"
	"github.com/cipherstack/cipherstack/pkg/cipher/columnar"
	"github.com/cipherstack/cipherstack/pkg/cipher/digraph"
	"github.com/cipherstack/cipherstack/pkg/cipher/feistel"
	"github.com/cipherstack/cipherstack/pkg/cipher/mono"
	"github.com/cipherstack/cipherstack/pkg/cipher/poly"
	"github.com/cipherstack/cipherstack/pkg/cipher/shift"
	"github.com/cipherstack/cipherstack/pkg/cipher/zigzag"
	errs "github.com/cipherstack/cipherstack/pkg/errors"
)

// All is the canonical list of supported algorithms, in presentation order.
var All = []*cipher.Algorithm{
	shift.Algorithm,
	mono.Algorithm,
	poly.Algorithm,
	zigzag.Algorithm,
	columnar.Algorithm,
	feistel.Algorithm,
	digraph.Algorithm,
}

// Find returns the Algorithm whose identifier or alias matches name,
// or nil if none does. The "none" sentinel is not an Algorithm.
func Find(name string) *cipher.Algorithm {
	for _, alg := range All {
		if alg.Matches(name) {
			return alg
		}
	}
	return nil
}

// IsNone reports whether name is the skip-layer sentinel ("none" or empty).
func IsNone(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	return name == "" || name == string(cipher.None)
}

// Resolve maps name to an Algorithm. It returns (nil, nil) for the "none"
// sentinel and an UNSUPPORTED_ALGORITHM error for unknown names.
func Resolve(name string) (*cipher.Algorithm, error) {
	if IsNone(name) {
		return nil, nil
	}
	if alg := Find(name); alg != nil {
		return alg, nil
	}
	return nil, errs.New(errs.ErrCodeUnsupportedAlgorithm, "unsupported algorithm %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Canonical returns the canonical identifier for name, resolving aliases.
func Canonical(name string) (cipher.ID, error) {
	if IsNone(name) {
		return cipher.None, nil
	}
	alg, err := Resolve(name)
	if err != nil {
		return "", err
	}
	return alg.ID, nil
}

// Names returns the canonical identifiers of all algorithms.
func Names() []string {
	names := make([]string, len(All))
	for i, alg := range All {
		names[i] = string(alg.ID)
	}
	return names
}
