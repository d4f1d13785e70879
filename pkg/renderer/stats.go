package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	Workers        int           // Number of workers used
	Duration       time.Duration // Wall-clock render time
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Divide(float32(ps.SampleCount))
}

// newRenderStats builds the summary for a finished render
func newRenderStats(width, height, totalSamples, workers int, duration time.Duration) RenderStats {
	totalPixels := width * height
	stats := RenderStats{
		TotalPixels:  totalPixels,
		TotalSamples: totalSamples,
		Workers:      workers,
		Duration:     duration,
	}
	if totalPixels > 0 {
		stats.AverageSamples = float64(totalSamples) / float64(totalPixels)
	}
	return stats
}
