package poly

import (
	"testing"

	errs "github.com/cipherstack/cipherstack/pkg/errors"
)

func TestEncrypt(t *testing.T) {
	tests := []struct {
		text, key, want string
	}{
		{"attackatdawn", "lemon", "lxfopvefrnhr"},
		{"ATTACKATDAWN", "LEMON", "lxfopvefrnhr"},
		// Non-letters do not advance the key cursor.
		{"attack at dawn", "lemon", "lxfopv ef rnhr"},
		{"a-a-a", "abc", "a-b-c"},
		{"hello", "a", "hello"},
	}

	for _, tt := range tests {
		got, err := Encrypt(tt.text, tt.key)
		if err != nil {
			t.Fatalf("Encrypt(%q, %q) error: %v", tt.text, tt.key, err)
		}
		if got != tt.want {
			t.Errorf("Encrypt(%q, %q) = %q, want %q", tt.text, tt.key, got, tt.want)
		}
	}
}

func TestDecrypt(t *testing.T) {
	got, err := Decrypt("lxfopv ef rnhr", "lemon")
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if got != "attack at dawn" {
		t.Errorf("Decrypt = %q, want %q", got, "attack at dawn")
	}
}

func TestRoundTrip(t *testing.T) {
	texts := []string{"the quick brown fox, jumps!", "zzz", "", "12 34"}
	for _, text := range texts {
		enc, _ := Encrypt(text, "Secret")
		dec, err := Decrypt(enc, "Secret")
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if dec != text {
			t.Errorf("round trip %q = %q", text, dec)
		}
	}
}

func TestInvalidKey(t *testing.T) {
	for _, key := range []string{"", "   ", "abc1", "le mon", "ключ"} {
		if err := ValidateKey(key); !errs.Is(err, errs.ErrCodeInvalidKey) {
			t.Errorf("ValidateKey(%q) = %v, want INVALID_KEY", key, err)
		}
		if _, err := Encrypt("hello", key); !errs.Is(err, errs.ErrCodeInvalidKey) {
			t.Errorf("Encrypt with key %q: error = %v, want INVALID_KEY", key, err)
		}
	}
}
