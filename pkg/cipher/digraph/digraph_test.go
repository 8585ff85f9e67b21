package digraph

import (
	"reflect"
	"testing"

	errs "github.com/cipherstack/cipherstack/pkg/errors"
)

func TestNewSquare(t *testing.T) {
	sq, err := NewSquare("Monarchy")
	if err != nil {
		t.Fatalf("NewSquare error: %v", err)
	}
	want := "m o n a r\n" +
		"c h y b d\n" +
		"e f g i k\n" +
		"l p q s t\n" +
		"u v w x z"
	if got := sq.String(); got != want {
		t.Errorf("square:\n%s\nwant:\n%s", got, want)
	}
}

func TestSquareHasEveryLetterOnce(t *testing.T) {
	for _, key := range []string{"monarchy", "playfair example", "jjjj", "zyxwvutsrqponmlkihgfedcba"} {
		sq, err := NewSquare(key)
		if err != nil {
			t.Fatalf("NewSquare(%q) error: %v", key, err)
		}
		seen := map[rune]int{}
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				seen[sq.At(r, c)]++
			}
		}
		if len(seen) != 25 {
			t.Errorf("NewSquare(%q) has %d distinct letters, want 25", key, len(seen))
		}
		if seen['j'] != 0 {
			t.Errorf("NewSquare(%q) contains j", key)
		}
	}
}

func TestDigraphs(t *testing.T) {
	tests := []struct {
		text string
		want [][2]rune
	}{
		{"hello", [][2]rune{{'h', 'e'}, {'l', 'x'}, {'l', 'o'}}},
		{"abc", [][2]rune{{'a', 'b'}, {'c', 'x'}}},
		{"Jam!", [][2]rune{{'i', 'a'}, {'m', 'x'}}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := Digraphs(tt.text); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Digraphs(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestEncrypt(t *testing.T) {
	// hello -> he lx lo; all three pairs form rectangles in the monarchy square.
	got, err := Encrypt("hello", "monarchy")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if got != "cfsupm" {
		t.Errorf("Encrypt(hello) = %q, want %q", got, "cfsupm")
	}
}

func TestSameRowAndColumn(t *testing.T) {
	// "mo" share row 0; "mc" share column 0.
	got, _ := Encrypt("mo", "monarchy")
	if got != "on" {
		t.Errorf("same row: Encrypt(mo) = %q, want on", got)
	}
	got, _ = Encrypt("mc", "monarchy")
	if got != "ce" {
		t.Errorf("same column: Encrypt(mc) = %q, want ce", got)
	}
	// Wrapping: "rm" at row 0 columns 4 and 0.
	got, _ = Encrypt("rm", "monarchy")
	if got != "mo" {
		t.Errorf("wrap: Encrypt(rm) = %q, want mo", got)
	}
	got, _ = Decrypt("mo", "monarchy")
	if got != "rm" {
		t.Errorf("wrap: Decrypt(mo) = %q, want rm", got)
	}
}

func TestDecryptFillerBehaviour(t *testing.T) {
	// Encryption inserts a filler between the two l's ("helxlo"). Decryption
	// drops an x that separates identical letters, so the original comes back.
	enc, _ := Encrypt("hello", "monarchy")
	dec, err := Decrypt(enc, "monarchy")
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if dec != "hello" && dec != "helxlo" {
		t.Fatalf("Decrypt = %q, want hello modulo filler", dec)
	}
	if dec != "hello" {
		t.Errorf("Decrypt = %q, want filler removed", dec)
	}

	// Odd-length input is padded and the trailing filler is removed.
	enc, _ = Encrypt("abc", "monarchy")
	if dec, _ := Decrypt(enc, "monarchy"); dec != "abc" {
		t.Errorf("Decrypt(Encrypt(abc)) = %q, want abc", dec)
	}

	// A genuine x between equal letters is indistinguishable from a filler.
	enc, _ = Encrypt("axay", "monarchy")
	if dec, _ := Decrypt(enc, "monarchy"); dec != "aay" {
		t.Errorf("Decrypt(Encrypt(axay)) = %q, want lossy aay", dec)
	}
}

func TestStripFillers(t *testing.T) {
	tests := []struct{ in, want string }{
		{"helxlo", "hello"},
		{"abcx", "abc"},
		{"axb", "axb"},
		{"balxloxon", "balloon"},
		{"x", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripFillers(tt.in); got != tt.want {
			t.Errorf("StripFillers(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInvalidKey(t *testing.T) {
	for _, key := range []string{"", "1234", " !? "} {
		if _, err := Encrypt("hello", key); !errs.Is(err, errs.ErrCodeInvalidKey) {
			t.Errorf("Encrypt with key %q: error = %v, want INVALID_KEY", key, err)
		}
	}
}
