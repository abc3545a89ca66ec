package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// ErrMissingSink is returned when Render is called without an image sink
var ErrMissingSink = errors.New("renderer: no image sink")

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains configuration for a render
type RenderConfig struct {
	NumWorkers   int        // Number of parallel workers (0 = use CPU count)
	Seed         int64      // Base seed for the per-worker samplers
	ProgressStep int        // Percent of pixels between progress reports (negative = silent)
	GridInterval int        // Paint every Nth row and column with GridColor (0 = none)
	GridColor    core.Color // Grid line color
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers:   0, // Auto-detect CPU count
		Seed:         42,
		ProgressStep: 10,
		GridColor:    core.NewColor(255, 255, 255),
	}
}

// MergeRenderConfig returns base with every non-zero field of override applied.
// A zero field means "unset": set Seed directly on the result to use seed 0,
// and pass a negative ProgressStep to turn progress reports off.
func MergeRenderConfig(base, override RenderConfig) RenderConfig {
	result := base
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	if override.ProgressStep != 0 {
		result.ProgressStep = override.ProgressStep
	}
	if override.GridInterval != 0 {
		result.GridInterval = override.GridInterval
	}
	if override.GridColor != core.Black {
		result.GridColor = override.GridColor
	}
	return result
}

// Renderer drives a camera and a ray tracer over every pixel of an image sink
type Renderer struct {
	camera *Camera
	tracer *RayTracer
	config RenderConfig
	logger core.Logger
}

// NewRenderer creates a renderer. The scene must be fully prepared: it is
// only read during Render.
func NewRenderer(camera *Camera, scene Scene, config RenderConfig, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		camera: camera,
		tracer: NewRayTracer(scene),
		config: config,
		logger: logger,
	}
}

// RenderPixel averages the colors of every ray the camera generates for pixel (j, i)
func (r *Renderer) RenderPixel(nX, nY, j, i int, sampler core.Sampler) core.Color {
	var ps PixelStats
	for _, ray := range r.camera.PixelRays(nX, nY, j, i, sampler) {
		ps.AddSample(r.tracer.TraceRay(ray))
	}
	return ps.GetColor()
}

// Render writes every pixel of sink exactly once, in parallel, then flushes the
// sink once. Grid pixels take GridColor and are not traced. On cancellation it stops claiming new
// pixels and returns ctx.Err() without flushing.
func (r *Renderer) Render(ctx context.Context, sink ImageSink) (RenderStats, error) {
	if sink == nil {
		return RenderStats{}, ErrMissingSink
	}

	start := time.Now()
	nX, nY := sink.Width(), sink.Height()
	total := nX * nY
	locked := &lockedSink{sink: sink}
	pool := NewWorkerPool(total, r.config.NumWorkers, r.config.Seed)

	r.logger.Printf("Rendering %dx%d at %d samples per pixel (using %d workers)...\n",
		nX, nY, r.camera.SamplesPerPixel(), pool.GetNumWorkers())

	rays := r.tracer.RaysTraced()
	err := pool.Run(ctx, func(index int, sampler core.Sampler) {
		j, i := index%nX, index/nX
		if onGrid(j, i, r.config.GridInterval) {
			locked.WritePixel(j, i, r.config.GridColor)
			return
		}
		locked.WritePixel(j, i, r.RenderPixel(nX, nY, j, i, sampler))
	}, r.progress(int64(total)))

	stats := RenderStats{
		TotalPixels:     int(pool.done.Load()),
		SamplesPerPixel: r.camera.SamplesPerPixel(),
		TotalRays:       r.tracer.RaysTraced() - rays,
		Workers:         pool.GetNumWorkers(),
	}
	stats.TotalSamples = stats.TotalPixels * stats.SamplesPerPixel

	if err != nil {
		stats.Duration = time.Since(start)
		return stats, fmt.Errorf("render cancelled after %d of %d pixels: %w", stats.TotalPixels, total, err)
	}

	if err := sink.Flush(); err != nil {
		return stats, fmt.Errorf("flush image: %w", err)
	}

	stats.Duration = time.Since(start)
	r.logger.Printf("Render complete: %d pixels, %d rays in %v\n", stats.TotalPixels, stats.TotalRays, stats.Duration)
	return stats, nil
}

// progress reports each time the finished pixel count crosses another ProgressStep percent
func (r *Renderer) progress(total int64) func(done int64) {
	step := int64(r.config.ProgressStep)
	if step <= 0 || total == 0 {
		return nil
	}
	return func(done int64) {
		pct := done * 100 / total
		if pct/step != (done-1)*100/total/step {
			r.logger.Printf("Progress: %d%% (%d/%d pixels)\n", pct, done, total)
		}
	}
}
