package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/champagne/pkg/cache"
	"github.com/matzehuels/champagne/pkg/drawing"
	"github.com/matzehuels/champagne/pkg/observability"
)

// Cache key types reported to observability hooks.
const (
	keyTypeDrawing  = "drawing"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// If logger is nil, log output is discarded.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	for _, w := range opts.Warnings() {
		r.Logger.Warn(w)
	}

	result := &Result{}

	// Stage 1: Generate
	generateStart := time.Now()
	d, drawingHit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Drawing = d
	result.Stats.GenerateTime = time.Since(generateStart)
	result.Stats.HoleCount = len(d.Paths)
	result.CacheInfo.DrawingHit = drawingHit
	if data, err := drawing.Marshal(d); err == nil {
		result.DrawingHash = cache.Hash(data)
	}

	r.Logger.Info("generated panel",
		"holes", result.Stats.HoleCount,
		"open", fmt.Sprintf("%g%%", d.Report.OpenArea),
		"cached", drawingHit,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Render
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, d, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo generates a drawing with caching and returns cache hit info.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (drawing.Drawing, bool, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return drawing.Drawing{}, false, err
	}

	paramsData, err := json.Marshal(opts.Params)
	if err != nil {
		return drawing.Drawing{}, false, fmt.Errorf("serialize params for cache key: %w", err)
	}
	cacheKey := r.Keyer.DrawingKey(cache.Hash(paramsData), opts.DrawingKeyOpts())

	if d, ok := r.cachedDrawing(ctx, cacheKey); ok {
		return d, true, nil
	}

	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, opts.Width, opts.Height)
	start := time.Now()
	d, err := Generate(opts)
	hooks.OnGenerateComplete(ctx, len(d.Paths), time.Since(start), err)
	if err != nil {
		return drawing.Drawing{}, false, err
	}

	if data, err := drawing.Marshal(d); err == nil {
		r.store(ctx, keyTypeDrawing, cacheKey, data, cache.TTLDrawing)
	}
	return d, false, nil
}

// Generate is a convenience wrapper that calls GenerateWithCacheInfo and discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, opts Options) (drawing.Drawing, error) {
	d, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return d, err
}

// RenderWithCacheInfo renders artifacts with caching and returns whether
// every requested format came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, d drawing.Drawing, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	drawingData, err := drawing.Marshal(d)
	if err != nil {
		return nil, false, fmt.Errorf("serialize drawing for cache key: %w", err)
	}
	drawingHash := cache.Hash(drawingData)

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		if _, ok := artifacts[format]; ok {
			continue
		}
		key := r.Keyer.ArtifactKey(drawingHash, opts.ArtifactKeyOpts(format))
		if data, ok := r.lookup(ctx, keyTypeArtifact, key); ok {
			artifacts[format] = data
			continue
		}
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, missing)
	start := time.Now()
	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := Render(d, renderOpts)
	hooks.OnRenderComplete(ctx, missing, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(drawingHash, opts.ArtifactKeyOpts(format))
		r.store(ctx, keyTypeArtifact, key, data, cache.TTLArtifact)
		artifacts[format] = data
	}
	return artifacts, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, d drawing.Drawing, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, d, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// cachedDrawing returns the drawing stored under key. An entry that no
// longer decodes is treated as a miss and recomputed.
func (r *Runner) cachedDrawing(ctx context.Context, key string) (drawing.Drawing, bool) {
	data, ok := r.lookup(ctx, keyTypeDrawing, key)
	if !ok {
		return drawing.Drawing{}, false
	}
	d, err := drawing.Unmarshal(data)
	if err != nil {
		r.Logger.Debug("discarding cached drawing", "err", err)
		return drawing.Drawing{}, false
	}
	return d, true
}

// lookup reads from the cache. Cache errors are logged and count as misses.
func (r *Runner) lookup(ctx context.Context, keyType, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "type", keyType, "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

// store writes to the cache. Failures are logged and otherwise ignored.
func (r *Runner) store(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}
