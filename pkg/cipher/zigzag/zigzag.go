// Package zigzag implements the rail fence transposition cipher.
//
// Characters are written along a zig-zag path across a number of rails and
// read back rail by rail. The transform works on runes, so any text
// round-trips exactly.
package zigzag

import (
	"strconv"
	"strings"

	"github.com/cipherstack/cipherstack/pkg/cipher"
	errs "github.com/cipherstack/cipherstack/pkg/errors"
)

// Algorithm registers the rail fence cipher.
var Algorithm = &cipher.Algorithm{
	ID:          cipher.ZigZagTransposition,
	Name:        "Rail fence",
	Aliases:     []string{"railfence", "rail-fence", "zigzag"},
	KeyHint:     "positive number of rails, e.g. 3",
	ValidateKey: ValidateKey,
	Encrypt:     Encrypt,
	Decrypt:     Decrypt,
}

// ParseKey parses key as a positive rail count.
func ParseKey(key string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil || n < 1 {
		return 0, errs.New(errs.ErrCodeInvalidKey, "rail count %q is not a positive integer", key)
	}
	return n, nil
}

// ValidateKey reports whether key is a positive integer.
func ValidateKey(key string) error {
	_, err := ParseKey(key)
	return err
}

// Path returns the rail index of each of n positions along the zig-zag.
// The direction reverses on reaching rail 0 or rail rails-1.
func Path(n, rails int) []int {
	path := make([]int, n)
	if rails <= 1 {
		return path
	}
	rail, step := 0, 1
	for i := range path {
		path[i] = rail
		rail += step
		if rail == 0 || rail == rails-1 {
			step = -step
		}
	}
	return path
}

// Encrypt writes text along the zig-zag and reads it rail by rail.
func Encrypt(text, key string) (string, error) {
	rails, err := ParseKey(key)
	if err != nil {
		return "", err
	}
	rs := []rune(text)
	// With as many rails as characters the path never turns back.
	rails = min(rails, len(rs))
	if rails <= 1 {
		return text, nil
	}

	rows := make([][]rune, rails)
	for i, rail := range Path(len(rs), rails) {
		rows[rail] = append(rows[rail], rs[i])
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, row := range rows {
		b.WriteString(string(row))
	}
	return b.String(), nil
}

// Decrypt rebuilds the zig-zag positions, fills them rail by rail with the
// ciphertext and reads them back in path order.
func Decrypt(text, key string) (string, error) {
	rails, err := ParseKey(key)
	if err != nil {
		return "", err
	}
	rs := []rune(text)
	rails = min(rails, len(rs))
	if rails <= 1 {
		return text, nil
	}

	path := Path(len(rs), rails)
	out := make([]rune, len(rs))
	next := 0
	for rail := 0; rail < rails; rail++ {
		for i, r := range path {
			if r == rail {
				out[i] = rs[next]
				next++
			}
		}
	}
	return string(out), nil
}
