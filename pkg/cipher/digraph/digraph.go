// Package digraph implements the Playfair digraph substitution cipher.
//
// Letters are substituted two at a time using a 5×5 key square built from
// the key. The square has no 'j'; every 'j' is read as 'i'. Repeated
// letters inside a pair are split with the filler 'x', and an odd final
// letter is padded with 'x'.
//
// Decryption removes fillers heuristically: an 'x' standing between two
// identical letters is dropped, and a trailing 'x' is dropped. This is a
// best-effort cleanup. Plaintext that genuinely contains an 'x' between two
// equal letters (e.g. "axa") or ends in 'x' does not round-trip exactly.
package digraph

import (
	"strings"

	"github.com/cipherstack/cipherstack/pkg/cipher"
	errs "github.com/cipherstack/cipherstack/pkg/errors"
)

// Filler is the letter inserted between doubled letters and used for padding.
const Filler = 'x'

// Size is the side length of the key square.
const Size = 5

// Algorithm registers the Playfair cipher.
var Algorithm = &cipher.Algorithm{
	ID:          cipher.DigraphSubstitution,
	Name:        "Playfair",
	Aliases:     []string{"playfair"},
	KeyHint:     "keyword with at least one letter, e.g. monarchy",
	Lossy:       true,
	ValidateKey: ValidateKey,
	Encrypt:     Encrypt,
	Decrypt:     Decrypt,
}

// normalize lower-cases s, drops non-letters and merges j into i.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !cipher.IsLetter(r) {
			continue
		}
		r = cipher.ToLower(r)
		if r == 'j' {
			r = 'i'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ValidateKey checks that key contains at least one letter.
func ValidateKey(key string) error {
	if normalize(key) == "" {
		return errs.New(errs.ErrCodeInvalidKey, "playfair key must contain at least one letter")
	}
	return nil
}

type position struct{ row, col int }

// Square is a 5×5 Playfair key square.
type Square struct {
	cells [Size][Size]rune
	pos   map[rune]position
}

// NewSquare builds the key square for key: the unique letters of the key in
// order, followed by the rest of the alphabet without 'j'.
func NewSquare(key string) (*Square, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	sq := &Square{pos: make(map[rune]position, Size*Size)}
	n := 0
	place := func(r rune) {
		if _, ok := sq.pos[r]; ok {
			return
		}
		p := position{n / Size, n % Size}
		sq.cells[p.row][p.col] = r
		sq.pos[r] = p
		n++
	}
	for _, r := range normalize(key) {
		place(r)
	}
	for _, r := range cipher.Alphabet {
		if r != 'j' {
			place(r)
		}
	}
	return sq, nil
}

// String renders the square as five space-separated rows.
func (sq *Square) String() string {
	rows := make([]string, Size)
	for i, row := range sq.cells {
		letters := make([]string, Size)
		for j, r := range row {
			letters[j] = string(r)
		}
		rows[i] = strings.Join(letters, " ")
	}
	return strings.Join(rows, "\n")
}

// At returns the letter at row, col.
func (sq *Square) At(row, col int) rune {
	return sq.cells[cipher.Mod(row, Size)][cipher.Mod(col, Size)]
}

// Digraphs splits normalized text into letter pairs, inserting the filler
// between doubled letters and padding an odd final letter.
func Digraphs(text string) [][2]rune {
	rs := []rune(normalize(text))
	var pairs [][2]rune
	for i := 0; i < len(rs); {
		a := rs[i]
		if i+1 >= len(rs) {
			pairs = append(pairs, [2]rune{a, Filler})
			break
		}
		b := rs[i+1]
		if a == b {
			pairs = append(pairs, [2]rune{a, Filler})
			i++
			continue
		}
		pairs = append(pairs, [2]rune{a, b})
		i += 2
	}
	return pairs
}

// substitute maps one digraph. step is +1 to encrypt and -1 to decrypt.
func (sq *Square) substitute(p [2]rune, step int) [2]rune {
	a, b := sq.pos[p[0]], sq.pos[p[1]]
	switch {
	case a.row == b.row:
		return [2]rune{sq.At(a.row, a.col+step), sq.At(b.row, b.col+step)}
	case a.col == b.col:
		return [2]rune{sq.At(a.row+step, a.col), sq.At(b.row+step, b.col)}
	default:
		return [2]rune{sq.At(a.row, b.col), sq.At(b.row, a.col)}
	}
}

func transform(text, key string, step int) (string, error) {
	sq, err := NewSquare(key)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, p := range Digraphs(text) {
		s := sq.substitute(p, step)
		b.WriteRune(s[0])
		b.WriteRune(s[1])
	}
	return b.String(), nil
}

// Encrypt substitutes each digraph of text using the key square.
func Encrypt(text, key string) (string, error) {
	return transform(text, key, 1)
}

// Decrypt reverses the digraph substitution and strips filler letters.
func Decrypt(text, key string) (string, error) {
	out, err := transform(text, key, -1)
	if err != nil {
		return "", err
	}
	return StripFillers(out), nil
}

// StripFillers removes a filler that sits between two identical letters and
// a trailing filler. The scan is left to right over non-overlapping
// letter-filler pairs: once a letter and the filler after it are examined,
// scanning resumes after the filler.
func StripFillers(s string) string {
	rs := []rune(s)
	out := make([]rune, 0, len(rs))
	for i := 0; i < len(rs); {
		if i+2 < len(rs) && rs[i+1] == Filler {
			out = append(out, rs[i])
			if rs[i] != rs[i+2] {
				out = append(out, Filler)
			}
			i += 2
			continue
		}
		out = append(out, rs[i])
		i++
	}
	if n := len(out); n > 0 && out[n-1] == Filler {
		out = out[:n-1]
	}
	return string(out)
}
