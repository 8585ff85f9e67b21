package feistel

import (
	"strings"
	"testing"

	"github.com/cipherstack/cipherstack/pkg/cipher"
	errs "github.com/cipherstack/cipherstack/pkg/errors"
)

const (
	vectorKey   = "1010000010"
	vectorPlain = "11110011"
	vectorCiph  = "01000001"
)

func TestGenerateSubkeys(t *testing.T) {
	key, err := ParseKey(vectorKey)
	if err != nil {
		t.Fatalf("ParseKey error: %v", err)
	}
	keys := GenerateSubkeys(key)
	if got := keys.K1.String(); got != "10100100" {
		t.Errorf("K1 = %s, want 10100100", got)
	}
	if got := keys.K2.String(); got != "01000011" {
		t.Errorf("K2 = %s, want 01000011", got)
	}
}

func TestKnownVector(t *testing.T) {
	enc, err := Encrypt(vectorPlain, vectorKey)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if enc != vectorCiph {
		t.Errorf("Encrypt(%s) = %s, want %s", vectorPlain, enc, vectorCiph)
	}

	dec, err := Decrypt(enc, vectorKey)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if dec != vectorPlain {
		t.Errorf("Decrypt(%s) = %s, want %s", enc, dec, vectorPlain)
	}
}

func TestRoundTripAllBlocks(t *testing.T) {
	keys := []string{"0000000000", "1111111111", vectorKey, "0111111101"}
	for _, key := range keys {
		for v := 0; v < 256; v++ {
			block := make(Bits, BlockSize)
			for i := range block {
				block[i] = uint8(v >> (BlockSize - 1 - i) & 1)
			}
			enc, err := Encrypt(block.String(), key)
			if err != nil {
				t.Fatalf("Encrypt error: %v", err)
			}
			dec, err := Decrypt(enc, key)
			if err != nil {
				t.Fatalf("Decrypt error: %v", err)
			}
			if dec != block.String() {
				t.Fatalf("key %s: round trip %s -> %s -> %s", key, block, enc, dec)
			}
		}
	}
}

func TestWhitespaceIgnored(t *testing.T) {
	got, err := Encrypt("1111 0011", "10100 00010")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if got != vectorCiph {
		t.Errorf("Encrypt with spaces = %s, want %s", got, vectorCiph)
	}
}

func TestTrace(t *testing.T) {
	_, trace, err := Process(vectorPlain, vectorKey, cipher.Encrypt)
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}

	want := strings.Join([]string{
		"Key Generation:",
		"P10 permutation: 1000001100",
		"Split: L=10000, R=01100",
		"K1: 10100100",
		"K2: 01000011",
		"",
		"Encryption Steps:",
		"IP: 10111101",
		"After fk1: L=0100, R=1101",
		"After SW: L=1101, R=0100",
		"After fk2: 10000100",
		"IP⁻¹: 01000001",
	}, "\n")
	if trace != want {
		t.Errorf("trace mismatch\ngot:\n%s\nwant:\n%s", trace, want)
	}

	_, trace, _ = Process(vectorCiph, vectorKey, cipher.Decrypt)
	if !strings.Contains(trace, "Decryption Steps:") {
		t.Errorf("decrypt trace missing heading:\n%s", trace)
	}
}

func TestInvalidKey(t *testing.T) {
	for _, key := range []string{"", "101", "10100000101", "10100000a0", "2010000010"} {
		if _, err := Encrypt(vectorPlain, key); !errs.Is(err, errs.ErrCodeInvalidKey) {
			t.Errorf("Encrypt with key %q: error = %v, want INVALID_KEY", key, err)
		}
	}
}

func TestInvalidBlockLength(t *testing.T) {
	for _, block := range []string{"111", "", "111100111", "1111001x", "hello"} {
		if _, err := Encrypt(block, vectorKey); !errs.Is(err, errs.ErrCodeInvalidBlockLength) {
			t.Errorf("Encrypt(%q): error = %v, want INVALID_BLOCK_LENGTH", block, err)
		}
	}
}

func TestAlgorithmApply(t *testing.T) {
	out, trace, err := Algorithm.Apply(vectorPlain, vectorKey, cipher.Encrypt)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if out != vectorCiph {
		t.Errorf("Apply = %s, want %s", out, vectorCiph)
	}
	if trace == "" {
		t.Error("Apply should return a trace")
	}
	if !Algorithm.Traces() {
		t.Error("Traces() = false, want true")
	}
}
