package renderer

import (
	"testing"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestPixelStats_AddSample(t *testing.T) {
	var ps PixelStats

	if got := ps.GetColor(); got != (core.Vec3{}) {
		t.Errorf("Expected black for a pixel without samples, got %v", got)
	}

	ps.AddSample(core.NewVec3(1, 0, 0))
	ps.AddSample(core.NewVec3(0, 1, 0))
	ps.AddSample(core.NewVec3(0, 0, 1))
	ps.AddSample(core.NewVec3(1, 1, 1))

	if ps.SampleCount != 4 {
		t.Errorf("Expected 4 samples, got %d", ps.SampleCount)
	}
	expected := core.NewVec3(0.5, 0.5, 0.5)
	if got := ps.GetColor(); got != expected {
		t.Errorf("Expected average %v, got %v", expected, got)
	}
}

func TestNewRenderStats(t *testing.T) {
	stats := newRenderStats(10, 5, 200, 3, time.Second)

	if stats.TotalPixels != 50 || stats.TotalSamples != 200 || stats.Workers != 3 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if stats.AverageSamples != 4 {
		t.Errorf("Expected 4 samples/pixel, got %f", stats.AverageSamples)
	}

	if empty := newRenderStats(0, 0, 0, 1, 0); empty.AverageSamples != 0 {
		t.Errorf("Expected zero average for an empty image, got %f", empty.AverageSamples)
	}
}
