package cipher

import (
	"errors"
	"testing"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"encrypt", Encrypt, false},
		{"DECRYPT", Decrypt, false},
		{" dec ", Decrypt, false},
		{"e", Encrypt, false},
		{"sideways", Encrypt, true},
		{"", Encrypt, true},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if Encrypt.String() != "encrypt" || Decrypt.String() != "decrypt" {
		t.Error("Direction.String() mismatch")
	}
}

func TestAlgorithmApply(t *testing.T) {
	upper := func(text, key string) (string, error) { return key + text, nil }
	fail := errors.New("boom")
	alg := &Algorithm{
		ID:      "test",
		Encrypt: upper,
		Decrypt: func(string, string) (string, error) { return "", fail },
	}

	out, trace, err := alg.Apply("abc", ">", Encrypt)
	if err != nil || out != ">abc" || trace != "" {
		t.Errorf("Apply(Encrypt) = %q, %q, %v", out, trace, err)
	}
	if _, _, err := alg.Apply("abc", ">", Decrypt); !errors.Is(err, fail) {
		t.Errorf("Apply(Decrypt) error = %v, want %v", err, fail)
	}
	if alg.Traces() {
		t.Error("Traces() = true for algorithm without Trace")
	}

	missing := &Algorithm{ID: "half", Encrypt: upper}
	if _, _, err := missing.Apply("abc", "", Decrypt); err == nil {
		t.Error("Apply with nil Decrypt should fail")
	}
}

func TestAlgorithmMatches(t *testing.T) {
	alg := &Algorithm{ID: Shift, Aliases: []string{"caesar"}}
	for _, name := range []string{"shift", "SHIFT", " caesar"} {
		if !alg.Matches(name) {
			t.Errorf("Matches(%q) = false", name)
		}
	}
	if alg.Matches("rot13") {
		t.Error("Matches(rot13) = true")
	}
}

func TestHelpers(t *testing.T) {
	if Mod(-1, 26) != 25 || Mod(27, 26) != 1 || Mod(0, 5) != 0 {
		t.Error("Mod returned a wrong remainder")
	}
	if got := LettersOnly("a1 b-C!"); got != "abC" {
		t.Errorf("LettersOnly = %q", got)
	}
	if got := StripSpace(" 10 1\t0\n"); got != "1010" {
		t.Errorf("StripSpace = %q", got)
	}
	if ToLower('Q') != 'q' || ToLower('é') != 'é' {
		t.Error("ToLower mismatch")
	}
	if IsLetter('é') || !IsLetter('Z') {
		t.Error("IsLetter mismatch")
	}
}
