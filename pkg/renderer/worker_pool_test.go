package renderer

import (
	"context"
	"runtime"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestWorkerPool_DefaultWorkerCount(t *testing.T) {
	pool := NewWorkerPool(nil, 0, 1)
	if pool.GetNumWorkers() != runtime.NumCPU() {
		t.Errorf("Expected %d workers, got %d", runtime.NumCPU(), pool.GetNumWorkers())
	}
}

func TestWorkerPool_RendersEveryRow(t *testing.T) {
	scene := newSphereScene(core.NewVec3(0.5, 0.5, 0.5), 2, 3)
	raytracer, err := NewRaytracer(scene, DefaultRenderConfig(), silentLogger{})
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}

	const rows = 9
	pixels := make([][]PixelStats, rows)
	pool := NewWorkerPool(raytracer, 3, rows)
	pool.Start(context.Background())
	for y := 0; y < rows; y++ {
		pixels[y] = make([]PixelStats, 16)
		pool.SubmitTask(RowTask{Row: y, Pixels: pixels[y], Seed: int64(y)})
	}

	seen := make(map[int]bool)
	for i := 0; i < rows; i++ {
		result, ok := pool.GetResult()
		if !ok {
			t.Fatal("Result queue closed early")
		}
		if result.Error != nil {
			t.Fatalf("Row %d failed: %v", result.Row, result.Error)
		}
		if result.Samples != 16*2 {
			t.Errorf("Row %d took %d samples, want %d", result.Row, result.Samples, 16*2)
		}
		seen[result.Row] = true
	}
	pool.Stop()

	if len(seen) != rows {
		t.Errorf("Expected results for %d rows, got %d", rows, len(seen))
	}
	for y := range pixels {
		for x := range pixels[y] {
			if pixels[y][x].SampleCount != 2 {
				t.Fatalf("Pixel (%d,%d) has %d samples, want 2", x, y, pixels[y][x].SampleCount)
			}
		}
	}
}
