package mono

import (
	"testing"

	errs "github.com/cipherstack/cipherstack/pkg/errors"
)

const qwerty = "qwertyuiopasdfghjklzxcvbnm"

func TestEncrypt(t *testing.T) {
	tests := []struct {
		text, key, want string
	}{
		{"abc", qwerty, "qwe"},
		{"Hello, World", qwerty, "itssg, vgksr"},
		{"xyz", qwerty, "bnm"},
		{"abc", "QWERTYUIOPASDFGHJKLZXCVBNM", "qwe"},
		{"42!", qwerty, "42!"},
	}

	for _, tt := range tests {
		got, err := Encrypt(tt.text, tt.key)
		if err != nil {
			t.Fatalf("Encrypt(%q) error: %v", tt.text, err)
		}
		if got != tt.want {
			t.Errorf("Encrypt(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDecrypt(t *testing.T) {
	got, err := Decrypt("itssg, vgksr", qwerty)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if got != "hello, world" {
		t.Errorf("Decrypt = %q, want %q", got, "hello, world")
	}
}

func TestRoundTripLowercase(t *testing.T) {
	texts := []string{"the quick brown fox jumps over the lazy dog", "a-b-c 123", ""}
	for _, text := range texts {
		enc, _ := Encrypt(text, qwerty)
		dec, err := Decrypt(enc, qwerty)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if dec != text {
			t.Errorf("round trip %q = %q", text, dec)
		}
	}
}

func TestCaseIsNotPreserved(t *testing.T) {
	enc, _ := Encrypt("ABC", qwerty)
	dec, _ := Decrypt(enc, qwerty)
	if dec != "abc" {
		t.Errorf("Decrypt(Encrypt(ABC)) = %q, want lower-case %q", dec, "abc")
	}
}

func TestInvalidKey(t *testing.T) {
	keys := []string{
		"",
		"abc",
		"qwertyuiopasdfghjklzxcvbn",   // 25 letters
		"qwertyuiopasdfghjklzxcvbnmq", // 27 letters
		"qwertyuiopasdfghjklzxcvbnq",  // duplicate q, missing m
		"qwertyuiopasdfghjklzxcvbn1",  // digit
	}
	for _, key := range keys {
		if err := ValidateKey(key); !errs.Is(err, errs.ErrCodeInvalidKey) {
			t.Errorf("ValidateKey(%q) = %v, want INVALID_KEY", key, err)
		}
		if _, err := Encrypt("hello", key); !errs.Is(err, errs.ErrCodeInvalidKey) {
			t.Errorf("Encrypt with key %q: error = %v, want INVALID_KEY", key, err)
		}
	}
}
