package pipeline

import (
	"strings"
	"time"

	"github.com/cipherstack/cipherstack/pkg/cipher"
	"github.com/cipherstack/cipherstack/pkg/cipher/registry"
	errs "github.com/cipherstack/cipherstack/pkg/errors"
)

// TraceSeparator joins trace entries when they are rendered as one string.
const TraceSeparator = "\n\n"

// LayerSpec is one configured layer: an algorithm identifier (or alias, or
// "none") and its key.
type LayerSpec struct {
	Algorithm string `json:"algorithm" toml:"algorithm"`
	Key       string `json:"key" toml:"key"`
}

// String renders the layer as "algorithm:key".
func (l LayerSpec) String() string {
	return l.Algorithm + ":" + l.Key
}

// ParseLayer parses the "algorithm:key" form used on the command line.
// Everything after the first colon is the key, so keys may contain colons.
// A bare "none" is accepted without a key.
func ParseLayer(s string) (LayerSpec, error) {
	alg, key, ok := strings.Cut(s, ":")
	if !ok {
		if registry.IsNone(alg) {
			return LayerSpec{Algorithm: string(cipher.None)}, nil
		}
		return LayerSpec{}, errs.New(errs.ErrCodeInvalidStack, "layer %q must have the form algorithm:key", s)
	}
	return LayerSpec{Algorithm: strings.TrimSpace(alg), Key: key}, nil
}

// Result is the outcome of a pipeline run.
type Result struct {
	// Text is the final transformed text.
	Text string `json:"text"`

	// Trace holds one entry per feistel-block layer, in application order.
	// It is empty (not nil) when no such layer ran.
	Trace []string `json:"trace"`

	// Stats describes the run; it is not part of the wire format.
	Stats Stats `json:"-"`
}

// JoinedTrace renders the trace entries separated by a blank line.
func (r *Result) JoinedTrace() string {
	return strings.Join(r.Trace, TraceSeparator)
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Applied  int           // layers that transformed the text
	Skipped  int           // "none" layers
	Duration time.Duration // wall time of the fold
}

// step is one resolved layer in application order.
type step struct {
	index int // position in the caller's layer list
	spec  LayerSpec
	alg   *cipher.Algorithm // nil for "none"
}

// plan resolves and validates every layer and returns them in application
// order for dir. It fails on the first unknown algorithm or invalid key.
func plan(layers []LayerSpec, dir cipher.Direction) ([]step, error) {
	steps := make([]step, 0, len(layers))
	for i := range layers {
		idx := i
		if dir == cipher.Decrypt {
			idx = len(layers) - 1 - i
		}
		spec := layers[idx]
		alg, err := registry.Resolve(spec.Algorithm)
		if err != nil {
			return nil, &LayerError{Index: idx, Algorithm: spec.Algorithm, Err: err}
		}
		if alg != nil {
			if err := alg.ValidateKey(spec.Key); err != nil {
				return nil, &LayerError{Index: idx, Algorithm: string(alg.ID), Err: err}
			}
		}
		steps = append(steps, step{index: idx, spec: spec, alg: alg})
	}
	return steps, nil
}

// observer is notified after every layer; it may be nil.
type observer func(s step, d time.Duration, err error)

// Run applies layers to text in the given direction.
//
// It fails with EMPTY_PIPELINE if layers is empty and EMPTY_INPUT if text is
// empty. Layer failures are returned as *LayerError. Run is pure: the same
// arguments always produce the same result.
func Run(text string, layers []LayerSpec, dir cipher.Direction) (*Result, error) {
	return run(text, layers, dir, nil)
}

func run(text string, layers []LayerSpec, dir cipher.Direction, observe observer) (*Result, error) {
	if len(layers) == 0 {
		return nil, errs.New(errs.ErrCodeEmptyPipeline, "pipeline has no layers")
	}
	if text == "" {
		return nil, errs.New(errs.ErrCodeEmptyInput, "input text cannot be empty")
	}

	steps, err := plan(layers, dir)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res := &Result{Text: text, Trace: []string{}}
	for _, s := range steps {
		if s.alg == nil {
			res.Stats.Skipped++
			if observe != nil {
				observe(s, 0, nil)
			}
			continue
		}

		layerStart := time.Now()
		out, trace, err := s.alg.Apply(res.Text, s.spec.Key, dir)
		if observe != nil {
			observe(s, time.Since(layerStart), err)
		}
		if err != nil {
			return nil, &LayerError{Index: s.index, Algorithm: string(s.alg.ID), Err: err}
		}

		res.Text = out
		res.Stats.Applied++
		if s.alg.Traces() {
			res.Trace = append(res.Trace, trace)
		}
	}
	res.Stats.Duration = time.Since(start)
	return res, nil
}

// Canonicalize returns a copy of layers with every algorithm name replaced
// by its canonical identifier.
func Canonicalize(layers []LayerSpec) ([]LayerSpec, error) {
	out := make([]LayerSpec, len(layers))
	for i, l := range layers {
		id, err := registry.Canonical(l.Algorithm)
		if err != nil {
			return nil, &LayerError{Index: i, Algorithm: l.Algorithm, Err: err}
		}
		out[i] = LayerSpec{Algorithm: string(id), Key: l.Key}
	}
	return out, nil
}

// Describe renders layers as a compact arrow-separated chain, e.g.
// "shift → zigzag-transposition". Keys are omitted.
func Describe(layers []LayerSpec) string {
	names := make([]string, len(layers))
	for i, l := range layers {
		names[i] = l.Algorithm
	}
	return strings.Join(names, " → ")
}
