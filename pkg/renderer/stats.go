package renderer

import (
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Pixels written to the sink
	TotalSamples    int           // Primary rays cast across all pixels
	SamplesPerPixel int           // Primary rays per pixel (AA × DOF)
	TotalRays       int64         // Every ray traced, secondary and shadow rays included
	Workers         int           // Goroutines used
	Duration        time.Duration // Wall time of the render
}

// RaysPerSecond returns the tracing throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalRays) / s.Duration.Seconds()
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Color // Sum of sample colors
	SampleCount int        // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Color) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Color {
	if ps.SampleCount == 0 {
		return core.Black
	}
	return ps.ColorAccum.Reduce(ps.SampleCount)
}
