package cipher

import (
	"fmt"
	"strings"
)

// ID is the canonical identifier of a cipher family.
type ID string

// Supported algorithm identifiers. None marks a layer that is skipped.
const (
	None                  ID = "none"
	Shift                 ID = "shift"
	MonoSubstitution      ID = "mono-substitution"
	PolySubstitution      ID = "poly-substitution"
	ZigZagTransposition   ID = "zigzag-transposition"
	ColumnarTransposition ID = "columnar-transposition"
	FeistelBlock          ID = "feistel-block"
	DigraphSubstitution   ID = "digraph-substitution"
)

// IDs lists every real algorithm identifier in presentation order.
var IDs = []ID{
	Shift,
	MonoSubstitution,
	PolySubstitution,
	ZigZagTransposition,
	ColumnarTransposition,
	FeistelBlock,
	DigraphSubstitution,
}

// Direction selects whether a transform encrypts or decrypts.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

// String returns "encrypt" or "decrypt".
func (d Direction) String() string {
	if d == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

// ParseDirection parses "encrypt" or "decrypt" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encrypt", "enc", "e":
		return Encrypt, nil
	case "decrypt", "dec", "d":
		return Decrypt, nil
	}
	return Encrypt, fmt.Errorf("invalid direction %q (must be encrypt or decrypt)", s)
}

// Transform applies one direction of a cipher to text under key.
type Transform func(text, key string) (string, error)

// TraceTransform is a Transform that also reports its intermediate states
// as a human-readable, newline-separated trace.
type TraceTransform func(text, key string, dir Direction) (out string, trace string, err error)

// Algorithm describes one cipher family.
//
// Each subpackage exports an Algorithm value; the registry package collects
// them. An Algorithm has either Encrypt/Decrypt or Trace set; Apply picks
// whichever is present.
type Algorithm struct {
	// ID is the canonical identifier (e.g., "shift").
	ID ID

	// Name is a short display name (e.g., "Caesar shift").
	Name string

	// Aliases are alternative identifiers accepted by the registry,
	// such as the historical cipher name ("caesar", "playfair").
	Aliases []string

	// KeyHint describes the accepted key shape for help output.
	KeyHint string

	// Lossy reports whether the transform drops or rewrites characters so
	// that decrypt(encrypt(T)) may differ from T for arbitrary text.
	Lossy bool

	// ValidateKey checks a key without transforming anything. It returns
	// an INVALID_KEY error when the key is unusable.
	ValidateKey func(key string) error

	// Encrypt and Decrypt are the plain transforms.
	Encrypt Transform
	Decrypt Transform

	// Trace, when set, is used instead of Encrypt/Decrypt.
	Trace TraceTransform
}

// Apply runs the algorithm in the given direction. The trace is empty for
// algorithms that do not report intermediate states.
func (a *Algorithm) Apply(text, key string, dir Direction) (string, string, error) {
	if a.Trace != nil {
		return a.Trace(text, key, dir)
	}
	fn := a.Encrypt
	if dir == Decrypt {
		fn = a.Decrypt
	}
	if fn == nil {
		return "", "", fmt.Errorf("%s: no %s transform", a.ID, dir)
	}
	out, err := fn(text, key)
	return out, "", err
}

// Traces reports whether Apply produces a trace.
func (a *Algorithm) Traces() bool {
	return a.Trace != nil
}

// Matches reports whether name is this algorithm's identifier or one of
// its aliases, ignoring case and surrounding whitespace.
func (a *Algorithm) Matches(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == string(a.ID) {
		return true
	}
	for _, alias := range a.Aliases {
		if name == alias {
			return true
		}
	}
	return false
}
