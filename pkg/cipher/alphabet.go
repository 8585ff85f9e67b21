package cipher

import "strings"

// Alphabet is the canonical 26-letter lower-case Latin alphabet.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// IsLower reports whether r is an ASCII lower-case letter.
func IsLower(r rune) bool { return r >= 'a' && r <= 'z' }

// IsUpper reports whether r is an ASCII upper-case letter.
func IsUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

// IsLetter reports whether r is an ASCII letter.
func IsLetter(r rune) bool { return IsLower(r) || IsUpper(r) }

// ToLower lower-cases r if it is an ASCII upper-case letter.
func ToLower(r rune) rune {
	if IsUpper(r) {
		return r + ('a' - 'A')
	}
	return r
}

// Mod returns the non-negative remainder of a divided by n.
func Mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// LettersOnly returns s with every non-ASCII-letter removed.
func LettersOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// StripSpace removes all whitespace from s.
func StripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
