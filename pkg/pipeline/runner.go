package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cipherstack/cipherstack/pkg/cipher"
	errs "github.com/cipherstack/cipherstack/pkg/errors"
	"github.com/cipherstack/cipherstack/pkg/observability"
)

// Request is one pipeline invocation.
type Request struct {
	Text      string
	Layers    []LayerSpec
	Direction cipher.Direction
}

// Runner executes pipelines with logging, input limits and observability
// hooks. The zero value is not usable; create one with NewRunner.
type Runner struct {
	// Logger receives one debug line per layer. Keys and text are never logged.
	Logger *log.Logger

	// MaxInput bounds the input text length in bytes. Zero disables the check.
	MaxInput int
}

// NewRunner creates a Runner. A nil logger discards all output.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		Logger:   logger,
		MaxInput: errs.DefaultMaxTextLength,
	}
}

// Execute runs req and reports progress through the registered
// observability hooks.
func (r *Runner) Execute(ctx context.Context, req Request) (*Result, error) {
	hooks := observability.Pipeline()
	dir := req.Direction.String()

	hooks.OnRunStart(ctx, dir, len(req.Layers))
	start := time.Now()

	res, err := r.execute(ctx, req)

	hooks.OnRunComplete(ctx, dir, time.Since(start), err)
	if err != nil {
		r.Logger.Debug("pipeline failed", "direction", dir, "code", errs.GetCode(err))
		return nil, err
	}
	r.Logger.Debug("pipeline complete",
		"direction", dir,
		"applied", res.Stats.Applied,
		"skipped", res.Stats.Skipped,
		"duration", res.Stats.Duration)
	return res, nil
}

func (r *Runner) execute(ctx context.Context, req Request) (*Result, error) {
	if len(req.Layers) > 0 && r.MaxInput > 0 && req.Text != "" {
		if err := errs.ValidateText(req.Text, r.MaxInput); err != nil {
			return nil, err
		}
	}

	hooks := observability.Pipeline()
	return run(req.Text, req.Layers, req.Direction, func(s step, d time.Duration, err error) {
		name := s.spec.Algorithm
		if s.alg != nil {
			name = string(s.alg.ID)
		}
		hooks.OnLayerApplied(ctx, s.index, name, d, err)
		switch {
		case s.alg == nil:
			r.Logger.Debug("layer skipped", "layer", s.index+1)
		case err != nil:
			r.Logger.Debug("layer failed", "layer", s.index+1, "algorithm", name, "code", errs.GetCode(err))
		default:
			r.Logger.Debug("layer applied", "layer", s.index+1, "algorithm", name, "duration", d)
		}
	})
}
