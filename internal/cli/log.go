// Package cli implements the stackbadge command-line interface.
//
// The commands render single badges, batches from a manifest, and the style
// gallery, and expose the building blocks underneath: text measurement,
// color parsing, font width tables and the icon catalog. The CLI is built
// using cobra, reads its defaults through internal/config and logs with
// charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - render: Render one badge to a file or stdout
//   - batch: Render every badge listed in a TOML or YAML manifest
//   - gallery: Render all styles side by side as an HTML page
//   - measure, color: Inspect text widths and color values
//   - fonts, icons: List and build width tables, browse the icon catalog
//   - cache: Manage the render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports render and cache events. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Rendered 12 badges (48ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability hooks
// =============================================================================

// logHooks reports library events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnRenderStart(_ context.Context, name, style string) {
	h.logger.Debug("render", "badge", name, "style", style)
}

func (h *logHooks) OnRenderComplete(_ context.Context, name, style string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "badge", name, "style", style, "error", err)
		return
	}
	h.logger.Debug("rendered", "badge", name, "style", style, "duration", d)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *logHooks) OnBatchStart(_ context.Context, entries, workers int) {
	h.logger.Debug("batch start", "badges", entries, "workers", workers)
}

func (h *logHooks) OnBatchComplete(_ context.Context, written int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("batch failed", "written", written, "error", err)
		return
	}
	h.logger.Debug("batch complete", "written", written, "duration", d)
}
