package feistel

import (
	"strings"

	"github.com/cipherstack/cipherstack/pkg/cipher"
)

// Bits is a fixed-length sequence of bits, most significant first.
// Each element is 0 or 1.
type Bits []uint8

// ParseBits converts a string of '0'/'1' characters into Bits, ignoring
// whitespace. ok is false if any other character is present.
func ParseBits(s string) (b Bits, ok bool) {
	s = cipher.StripSpace(s)
	b = make(Bits, 0, len(s))
	for _, r := range s {
		switch r {
		case '0':
			b = append(b, 0)
		case '1':
			b = append(b, 1)
		default:
			return nil, false
		}
	}
	return b, true
}

// String renders b as a string of '0' and '1'.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		sb.WriteByte('0' + bit)
	}
	return sb.String()
}

// permute selects bits of b by 1-based table positions.
func permute(b Bits, table []int) Bits {
	out := make(Bits, len(table))
	for i, pos := range table {
		out[i] = b[pos-1]
	}
	return out
}

// rotl rotates b left by n positions.
func rotl(b Bits, n int) Bits {
	n %= len(b)
	out := make(Bits, 0, len(b))
	out = append(out, b[n:]...)
	return append(out, b[:n]...)
}

func xor(a, b Bits) Bits {
	out := make(Bits, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

func concat(a, b Bits) Bits {
	out := make(Bits, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
