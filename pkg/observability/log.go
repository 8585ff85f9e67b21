package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by writing debug-level events
// to a charmbracelet logger. Failures are logged at warn level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that write to logger. A nil logger uses the
// package-level default logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{logger: logger.WithPrefix("hooks")}
}

func (h *LogHooks) OnRunStart(_ context.Context, direction string, layers int) {
	h.logger.Debug("pipeline start", "direction", direction, "layers", layers)
}

func (h *LogHooks) OnLayerApplied(_ context.Context, index int, algorithm string, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("layer failed", "layer", index+1, "algorithm", algorithm, "err", err)
		return
	}
	h.logger.Debug("layer applied", "layer", index+1, "algorithm", algorithm, "duration", d)
}

func (h *LogHooks) OnRunComplete(_ context.Context, direction string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("pipeline failed", "direction", direction, "duration", d)
		return
	}
	h.logger.Debug("pipeline complete", "direction", direction, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "duration", d)
}

func (h *LogHooks) OnError(_ context.Context, method, path string, err error) {
	h.logger.Warn("request failed", "method", method, "path", path, "err", err)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
