// Package batch renders every badge listed in a manifest file.
//
// A manifest is a TOML or YAML document with optional defaults and a list of
// named badges. The [Runner] renders the entries on a bounded pool of
// goroutines, consults a [cache.Cache] before rendering, and writes each
// badge to <dir>/<name>.svg.
//
//	m, err := batch.LoadManifest("badges.toml")
//	...
//	runner := batch.NewRunner(renderer, cache.NewMemoryCache(), nil, logger)
//	results, err := runner.Run(ctx, m, "out")
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/stackbadge/pkg/badge"
	"github.com/matzehuels/stackbadge/pkg/cache"
	"github.com/matzehuels/stackbadge/pkg/errors"
	"github.com/matzehuels/stackbadge/pkg/observability"
)

// FileExt is the extension of written badges.
const FileExt = ".svg"

// Runner renders manifests with caching.
//
// The Runner holds no per-run state, so multiple goroutines can share one.
type Runner struct {
	Renderer *badge.Renderer
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger

	// Workers bounds concurrent renders. Zero means GOMAXPROCS.
	Workers int
	// TTL is passed to Cache.Set. Zero never expires.
	TTL time.Duration
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// means cache.DefaultKeyer and a nil logger means log.Default().
func NewRunner(r *badge.Renderer, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Renderer: r,
		Cache:    c,
		Keyer:    keyer,
		Logger:   logger,
	}
}

// Result describes one written badge.
type Result struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Bytes  int    `json:"bytes"`
	Cached bool   `json:"cached"`
}

// Run renders every entry of m into dir, creating dir if needed. Results
// are in manifest order. The first failure cancels the remaining renders.
func (r *Runner) Run(ctx context.Context, m *Manifest, dir string) (results []Result, err error) {
	if err := Validate(m); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create output directory %s", dir)
	}

	workers := r.workers()
	start := time.Now()
	observability.Batch().OnBatchStart(ctx, len(m.Badges), workers)
	defer func() {
		observability.Batch().OnBatchComplete(ctx, len(results), time.Since(start), err)
	}()

	out := make([]Result, len(m.Badges))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, e := range m.Badges {
		i, e := i, e
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, err := e.Badge(m.Defaults)
			if err != nil {
				return fmt.Errorf("badge %q: %w", e.Name, err)
			}
			svg, cached, err := r.RenderBadge(gctx, e.Name, b)
			if err != nil {
				return fmt.Errorf("badge %q: %w", e.Name, err)
			}

			path := filepath.Join(dir, e.Name+FileExt)
			if err := os.WriteFile(path, svg, 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
			}
			r.Logger.Debug("wrote badge", "name", e.Name, "path", path, "cached", cached)
			out[i] = Result{Name: e.Name, Path: path, Bytes: len(svg), Cached: cached}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.Logger.Info("rendered badges", "count", len(out), "dir", dir, "duration", time.Since(start))
	return out, nil
}

// RenderBadge renders b through the cache and reports whether the result
// came from the cache. Cache failures are logged and otherwise ignored.
func (r *Runner) RenderBadge(ctx context.Context, name string, b badge.Badge) ([]byte, bool, error) {
	key := r.Keyer.BadgeKey(b)
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "badge")
		return data, true, nil
	} else if err != nil {
		r.Logger.Warn("cache read failed", "name", name, "error", err)
	}
	observability.Cache().OnCacheMiss(ctx, "badge")

	start := time.Now()
	observability.Render().OnRenderStart(ctx, name, b.Style.String())
	svg, err := r.Renderer.RenderString(b)
	observability.Render().OnRenderComplete(ctx, name, b.Style.String(), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	data := []byte(svg)
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "name", name, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "badge", len(data))
	}
	return data, false, nil
}

// WriteReport writes results as a JSON array.
func WriteReport(w io.Writer, results []Result) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func (r *Runner) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
