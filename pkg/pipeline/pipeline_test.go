package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/cipherstack/cipherstack/pkg/cipher"
	errs "github.com/cipherstack/cipherstack/pkg/errors"
)

const (
	sdesKey   = "1010000010"
	sdesPlain = "11110011"
	sdesCiph  = "01000001"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		layers []LayerSpec
		dir    cipher.Direction
		want   string
	}{
		{"single shift", "hello", []LayerSpec{{"shift", "3"}}, cipher.Encrypt, "khoor"},
		{"shift then zigzag", "hello", []LayerSpec{{"shift", "3"}, {"zigzag-transposition", "2"}}, cipher.Encrypt, "korho"},
		{"decrypt reverses", "korho", []LayerSpec{{"shift", "3"}, {"zigzag-transposition", "2"}}, cipher.Decrypt, "hello"},
		{"alias", "hello", []LayerSpec{{"caesar", "3"}}, cipher.Encrypt, "khoor"},
		{"none skipped", "abc", []LayerSpec{{"none", ""}, {"shift", "3"}, {"", "ignored"}}, cipher.Encrypt, "def"},
		{"only none", "abc", []LayerSpec{{"none", ""}}, cipher.Encrypt, "abc"},
		{"feistel", sdesPlain, []LayerSpec{{"feistel-block", sdesKey}}, cipher.Encrypt, sdesCiph},
		{"feistel decrypt", sdesCiph, []LayerSpec{{"feistel-block", sdesKey}}, cipher.Decrypt, sdesPlain},
		{"digits pass shift", sdesPlain, []LayerSpec{{"shift", "3"}, {"feistel-block", sdesKey}}, cipher.Encrypt, sdesCiph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Run(tt.text, tt.layers, tt.dir)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if res.Text != tt.want {
				t.Errorf("Run() = %q, want %q", res.Text, tt.want)
			}
		})
	}
}

func TestRunRoundTrip(t *testing.T) {
	layers := []LayerSpec{
		{"shift", "3"},
		{"poly-substitution", "lemon"},
		{"zigzag-transposition", "3"},
	}
	for _, text := range []string{"attackatdawn", "wearediscoveredfleeatonce", "a"} {
		enc, err := Run(text, layers, cipher.Encrypt)
		if err != nil {
			t.Fatalf("encrypt %q: %v", text, err)
		}
		dec, err := Run(enc.Text, layers, cipher.Decrypt)
		if err != nil {
			t.Fatalf("decrypt %q: %v", enc.Text, err)
		}
		if dec.Text != text {
			t.Errorf("round trip %q = %q", text, dec.Text)
		}
	}
}

func TestRunOrderMatters(t *testing.T) {
	// Columnar transposition and a polyalphabetic key do not commute.
	a := []LayerSpec{{"poly-substitution", "key"}, {"columnar-transposition", "3142"}}
	b := []LayerSpec{{"columnar-transposition", "3142"}, {"poly-substitution", "key"}}

	ra, err := Run("attackatdawn", a, cipher.Encrypt)
	if err != nil {
		t.Fatal(err)
	}
	rb, err := Run("attackatdawn", b, cipher.Encrypt)
	if err != nil {
		t.Fatal(err)
	}
	if ra.Text == rb.Text {
		t.Errorf("expected different outputs for swapped layers, both %q", ra.Text)
	}

	// Decrypting with the matching order restores the plaintext.
	back, err := Run(ra.Text, a, cipher.Decrypt)
	if err != nil {
		t.Fatal(err)
	}
	if back.Text != "attackatdawn" {
		t.Errorf("decrypt = %q, want attackatdawn", back.Text)
	}
}

func TestRunTrace(t *testing.T) {
	layers := []LayerSpec{{"feistel-block", sdesKey}, {"feistel-block", "1111100000"}}

	res, err := Run(sdesPlain, layers, cipher.Encrypt)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(res.Trace) != 2 {
		t.Fatalf("len(Trace) = %d, want 2", len(res.Trace))
	}
	if !strings.Contains(res.Trace[0], "P10 permutation: 1000001100") {
		t.Errorf("first trace should belong to the first key:\n%s", res.Trace[0])
	}
	if !strings.Contains(res.Trace[0], "IP⁻¹: "+sdesCiph) {
		t.Errorf("first trace should end with the first ciphertext:\n%s", res.Trace[0])
	}
	if !strings.HasSuffix(res.Trace[1], "IP⁻¹: "+res.Text) {
		t.Errorf("second trace should end with the final ciphertext:\n%s", res.Trace[1])
	}

	// Decryption records traces in application order too: last layer first.
	dec, err := Run(res.Text, layers, cipher.Decrypt)
	if err != nil {
		t.Fatalf("Run() decrypt error = %v", err)
	}
	if dec.Text != sdesPlain {
		t.Errorf("decrypt = %q, want %q", dec.Text, sdesPlain)
	}
	if len(dec.Trace) != 2 || !strings.HasPrefix(dec.Trace[1], "Key Generation:") {
		t.Fatalf("unexpected decrypt trace: %q", dec.Trace)
	}
	if !strings.Contains(dec.Trace[1], "P10 permutation: 1000001100") {
		t.Errorf("last decrypt trace should belong to the first layer's key:\n%s", dec.Trace[1])
	}

	if got := res.JoinedTrace(); !strings.Contains(got, TraceSeparator+"Key Generation:") {
		t.Errorf("JoinedTrace should separate entries with a blank line")
	}
}

func TestRunTraceEmpty(t *testing.T) {
	res, err := Run("hello", []LayerSpec{{"shift", "1"}}, cipher.Encrypt)
	if err != nil {
		t.Fatal(err)
	}
	if res.Trace == nil || len(res.Trace) != 0 {
		t.Errorf("Trace = %#v, want empty non-nil slice", res.Trace)
	}
}

func TestRunStats(t *testing.T) {
	res, err := Run("abc", []LayerSpec{{"none", ""}, {"shift", "1"}, {"none", ""}}, cipher.Encrypt)
	if err != nil {
		t.Fatal(err)
	}
	if res.Stats.Applied != 1 || res.Stats.Skipped != 2 {
		t.Errorf("Stats = %+v, want 1 applied, 2 skipped", res.Stats)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		layers    []LayerSpec
		dir       cipher.Direction
		code      errs.Code
		layer     int // -1 when no LayerError is expected
		algorithm string
	}{
		{"empty pipeline", "hello", nil, cipher.Encrypt, errs.ErrCodeEmptyPipeline, -1, ""},
		{"empty pipeline wins", "", nil, cipher.Encrypt, errs.ErrCodeEmptyPipeline, -1, ""},
		{"empty input", "", []LayerSpec{{"shift", "3"}}, cipher.Encrypt, errs.ErrCodeEmptyInput, -1, ""},
		{"unsupported", "hello", []LayerSpec{{"shift", "3"}, {"enigma", "x"}}, cipher.Encrypt, errs.ErrCodeUnsupportedAlgorithm, 1, "enigma"},
		{"invalid key", "hello", []LayerSpec{{"shift", "abc"}}, cipher.Encrypt, errs.ErrCodeInvalidKey, 0, "shift"},
		{"first in encrypt order", "hello", []LayerSpec{{"shift", "abc"}, {"enigma", ""}}, cipher.Encrypt, errs.ErrCodeInvalidKey, 0, "shift"},
		{"first in decrypt order", "hello", []LayerSpec{{"shift", "abc"}, {"enigma", ""}}, cipher.Decrypt, errs.ErrCodeUnsupportedAlgorithm, 1, "enigma"},
		{"block length", "hello", []LayerSpec{{"shift", "3"}, {"feistel-block", sdesKey}}, cipher.Encrypt, errs.ErrCodeInvalidBlockLength, 1, "feistel-block"},
		{"late key error before any transform", "hello", []LayerSpec{{"feistel-block", sdesKey}, {"mono-substitution", "abc"}}, cipher.Encrypt, errs.ErrCodeInvalidKey, 1, "mono-substitution"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Run(tt.text, tt.layers, tt.dir)
			if err == nil {
				t.Fatalf("Run() = %q, want error", res.Text)
			}
			if res != nil {
				t.Errorf("Run() returned a result alongside an error")
			}
			if !errs.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}

			var le *LayerError
			if tt.layer < 0 {
				if errors.As(err, &le) {
					t.Errorf("unexpected LayerError %v", le)
				}
				return
			}
			if !errors.As(err, &le) {
				t.Fatalf("error %v is not a *LayerError", err)
			}
			if le.Index != tt.layer || le.Algorithm != tt.algorithm {
				t.Errorf("LayerError = {%d, %s}, want {%d, %s}", le.Index, le.Algorithm, tt.layer, tt.algorithm)
			}
		})
	}
}

func TestLayerErrorMessage(t *testing.T) {
	err := &LayerError{Index: 1, Algorithm: "shift", Err: errs.New(errs.ErrCodeInvalidKey, "bad")}
	if got := err.Error(); got != "layer 2 (shift): INVALID_KEY: bad" {
		t.Errorf("Error() = %q", got)
	}
}

func TestParseLayer(t *testing.T) {
	tests := []struct {
		in      string
		want    LayerSpec
		wantErr bool
	}{
		{"shift:3", LayerSpec{"shift", "3"}, false},
		{"playfair:monarchy", LayerSpec{"playfair", "monarchy"}, false},
		{" mono-substitution :qwertyuiopasdfghjklzxcvbnm", LayerSpec{"mono-substitution", "qwertyuiopasdfghjklzxcvbnm"}, false},
		{"shift:-3", LayerSpec{"shift", "-3"}, false},
		{"poly:a:b", LayerSpec{"poly", "a:b"}, false},
		{"none", LayerSpec{"none", ""}, false},
		{"shift", LayerSpec{}, true},
	}
	for _, tt := range tests {
		got, err := ParseLayer(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLayer(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLayer(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	got, err := Canonicalize([]LayerSpec{{"caesar", "3"}, {"Playfair", "k"}, {"", ""}})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"shift", "digraph-substitution", "none"}
	for i, l := range got {
		if l.Algorithm != want[i] {
			t.Errorf("layer %d = %q, want %q", i, l.Algorithm, want[i])
		}
	}

	if _, err := Canonicalize([]LayerSpec{{"rot47", "1"}}); !errs.Is(err, errs.ErrCodeUnsupportedAlgorithm) {
		t.Errorf("Canonicalize(rot47) error = %v", err)
	}
}

func TestDescribe(t *testing.T) {
	got := Describe([]LayerSpec{{"shift", "3"}, {"zigzag-transposition", "2"}})
	if got != "shift → zigzag-transposition" {
		t.Errorf("Describe() = %q", got)
	}
}
