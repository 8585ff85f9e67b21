// Package cipher defines the shared vocabulary of the layered cipher engine.
//
// Each cipher family lives in its own subpackage (shift, mono, poly, zigzag,
// columnar, feistel, digraph) and exports an [Algorithm] value describing its
// identifier, accepted aliases, key shape and transforms. The registry
// subpackage collects those values so callers can dispatch on an identifier.
//
// Transforms are pure functions: they hold no state between calls and never
// perform I/O, so a single [Algorithm] can be shared freely between goroutines.
//
// # Usage
//
//	import (
//	    "github.com/cipherstack/cipherstack/pkg/cipher"
//	    "github.com/cipherstack/cipherstack/pkg/cipher/shift"
//	)
//
//	out, _, err := shift.Algorithm.Apply("Hello", "3", cipher.Encrypt)
//	// out == "Khoor"
//
// None of these ciphers offer real security; they exist to demonstrate
// substitution, transposition and Feistel mechanics.
package cipher
