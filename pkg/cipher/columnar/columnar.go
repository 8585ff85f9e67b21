// Package columnar implements row-column (columnar) transposition.
//
// Only letters are kept from the input; the remaining text is written into
// a grid row by row, one column per key character, and read out column by
// column in key order. Stripping non-letters makes the transform lossy for
// text containing spaces, digits or punctuation.
package columnar

import (
	"slices"
	"strings"

	"github.com/cipherstack/cipherstack/pkg/cipher"
	errs "github.com/cipherstack/cipherstack/pkg/errors"
)

// Algorithm registers the columnar transposition cipher.
var Algorithm = &cipher.Algorithm{
	ID:          cipher.ColumnarTransposition,
	Name:        "Row-column transposition",
	Aliases:     []string{"rowcolumn", "row-column", "columnar"},
	KeyHint:     "non-empty string; its sort order picks the column order, e.g. 3142 or zebras",
	Lossy:       true,
	ValidateKey: ValidateKey,
	Encrypt:     Encrypt,
	Decrypt:     Decrypt,
}

// ValidateKey checks that key is non-empty.
func ValidateKey(key string) error {
	if key == "" {
		return errs.New(errs.ErrCodeInvalidKey, "transposition key cannot be empty")
	}
	return nil
}

// Order returns the column indices of key sorted by key character. Equal
// characters keep their left-to-right order.
func Order(key string) []int {
	k := []rune(key)
	order := make([]int, len(k))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return int(k[a]) - int(k[b])
	})
	return order
}

// Encrypt fills a row-major grid with the letters of text and emits its
// columns in key order, skipping cells past the end of the text.
func Encrypt(text, key string) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	src := []rune(cipher.LettersOnly(text))
	cols := len([]rune(key))
	rows := (len(src) + cols - 1) / cols

	var b strings.Builder
	b.Grow(len(src))
	for _, col := range Order(key) {
		for row := 0; row < rows; row++ {
			if i := row*cols + col; i < len(src) {
				b.WriteRune(src[i])
			}
		}
	}
	return b.String(), nil
}

// Decrypt refills the grid column by column in key order, writing only into
// cells that encryption filled, and reads it back row by row.
func Decrypt(text, key string) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	src := []rune(cipher.LettersOnly(text))
	cols := len([]rune(key))
	rows := (len(src) + cols - 1) / cols

	grid := make([]rune, len(src))
	next := 0
	for _, col := range Order(key) {
		for row := 0; row < rows; row++ {
			if i := row*cols + col; i < len(src) {
				grid[i] = src[next]
				next++
			}
		}
	}
	return string(grid), nil
}
