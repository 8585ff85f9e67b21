package feistel

import (
	"fmt"
	"strings"

	"github.com/cipherstack/cipherstack/pkg/cipher"
	errs "github.com/cipherstack/cipherstack/pkg/errors"
)

const (
	// KeySize is the key length in bits.
	KeySize = 10

	// BlockSize is the block length in bits.
	BlockSize = 8
)

// Permutation and substitution tables (1-based positions).
var (
	p10   = []int{3, 5, 2, 7, 4, 10, 1, 9, 8, 6}
	p8    = []int{6, 3, 7, 4, 8, 5, 10, 9}
	p4    = []int{2, 4, 3, 1}
	ip    = []int{2, 6, 3, 1, 4, 8, 5, 7}
	ipInv = []int{4, 1, 3, 5, 7, 2, 8, 6}
	ep    = []int{4, 1, 2, 3, 2, 3, 4, 1}

	s0 = [4][4]uint8{
		{1, 0, 3, 2},
		{3, 2, 1, 0},
		{0, 2, 1, 3},
		{3, 1, 3, 2},
	}
	s1 = [4][4]uint8{
		{0, 1, 2, 3},
		{2, 0, 1, 3},
		{3, 0, 1, 0},
		{2, 1, 0, 3},
	}
)

// Algorithm registers the S-DES block cipher. It always produces a trace.
var Algorithm = &cipher.Algorithm{
	ID:          cipher.FeistelBlock,
	Name:        "Simplified DES",
	Aliases:     []string{"des", "sdes", "s-des"},
	KeyHint:     "10 binary digits, e.g. 1010000010 (input must be one 8-bit block)",
	ValidateKey: ValidateKey,
	Trace:       Process,
}

// Subkeys holds the two round keys derived from a 10-bit key.
type Subkeys struct {
	K1, K2 Bits
}

// ParseKey parses a 10-bit key.
func ParseKey(key string) (Bits, error) {
	b, ok := ParseBits(key)
	if !ok {
		return nil, errs.New(errs.ErrCodeInvalidKey, "feistel key %q must contain only 0 and 1", key)
	}
	if len(b) != KeySize {
		return nil, errs.New(errs.ErrCodeInvalidKey, "feistel key must be %d bits, got %d", KeySize, len(b))
	}
	return b, nil
}

// ValidateKey reports whether key is exactly ten binary digits.
func ValidateKey(key string) error {
	_, err := ParseKey(key)
	return err
}

// ParseBlock parses one 8-bit data block.
func ParseBlock(text string) (Bits, error) {
	b, ok := ParseBits(text)
	if !ok || len(b) != BlockSize {
		return nil, errs.New(errs.ErrCodeInvalidBlockLength, "feistel input must be exactly %d binary digits, got %q", BlockSize, text)
	}
	return b, nil
}

// trace collects human-readable intermediate values.
type trace struct {
	lines []string
}

func (t *trace) add(format string, args ...any) {
	if t != nil {
		t.lines = append(t.lines, fmt.Sprintf(format, args...))
	}
}

// GenerateSubkeys runs the key schedule.
func GenerateSubkeys(key Bits) Subkeys {
	return generateSubkeys(key, nil)
}

func generateSubkeys(key Bits, t *trace) Subkeys {
	p := permute(key, p10)
	t.add("P10 permutation: %s", p)

	left, right := p[:5], p[5:]
	t.add("Split: L=%s, R=%s", left, right)

	left, right = rotl(left, 1), rotl(right, 1)
	k1 := permute(concat(left, right), p8)
	t.add("K1: %s", k1)

	left, right = rotl(left, 2), rotl(right, 2)
	k2 := permute(concat(left, right), p8)
	t.add("K2: %s", k2)

	return Subkeys{K1: k1, K2: k2}
}

// sbox looks up a 4-bit input in box: the outer bits select the row and
// the inner bits the column. The result is two bits.
func sbox(in Bits, box [4][4]uint8) Bits {
	row := in[0]<<1 | in[3]
	col := in[1]<<1 | in[2]
	v := box[row][col]
	return Bits{v >> 1 & 1, v & 1}
}

// fk is the round function: it returns L XOR F(R, subkey).
func fk(l, r, subkey Bits) Bits {
	x := xor(permute(r, ep), subkey)
	s := concat(sbox(x[:4], s0), sbox(x[4:], s1))
	return xor(l, permute(s, p4))
}

// processBlock runs both rounds over block with the given subkeys.
func processBlock(block Bits, keys Subkeys, dir cipher.Direction, t *trace) Bits {
	first, second := keys.K1, keys.K2
	if dir == cipher.Decrypt {
		first, second = second, first
	}

	x := permute(block, ip)
	t.add("IP: %s", x)

	l, r := x[:4], x[4:]
	f1 := fk(l, r, first)
	t.add("After fk1: L=%s, R=%s", f1, r)

	l, r = r, f1
	t.add("After SW: L=%s, R=%s", l, r)

	pre := concat(fk(l, r, second), r)
	t.add("After fk2: %s", pre)

	out := permute(pre, ipInv)
	t.add("IP⁻¹: %s", out)
	return out
}

// Process encrypts or decrypts a single 8-bit block and returns the output
// block together with the key schedule and round trace.
func Process(text, key string, dir cipher.Direction) (string, string, error) {
	k, err := ParseKey(key)
	if err != nil {
		return "", "", err
	}
	block, err := ParseBlock(text)
	if err != nil {
		return "", "", err
	}

	t := &trace{lines: []string{"Key Generation:"}}
	keys := generateSubkeys(k, t)

	heading := "Encryption Steps:"
	if dir == cipher.Decrypt {
		heading = "Decryption Steps:"
	}
	t.add("")
	t.add("%s", heading)

	out := processBlock(block, keys, dir, t)
	return out.String(), strings.Join(t.lines, "\n"), nil
}

// Encrypt encrypts one 8-bit block, discarding the trace.
func Encrypt(text, key string) (string, error) {
	out, _, err := Process(text, key, cipher.Encrypt)
	return out, err
}

// Decrypt decrypts one 8-bit block, discarding the trace.
func Decrypt(text, key string) (string, error) {
	out, _, err := Process(text, key, cipher.Decrypt)
	return out, err
}
