package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// ErrInvalidSamplingConfig is returned when a sampling configuration cannot be rendered
var ErrInvalidSamplingConfig = errors.New("invalid sampling config")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Validate reports whether the configuration describes a renderable image
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidSamplingConfig, c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: samples per pixel %d must be positive", ErrInvalidSamplingConfig, c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d must not be negative", ErrInvalidSamplingConfig, c.MaxDepth)
	}
	return nil
}

// RenderConfig contains the execution settings for a render
type RenderConfig struct {
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed; each row derives its own generator from it
	Iterative  bool  // Use the loop form of the radiance estimator
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers: 0,
		Seed:       42,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Shape
	GetSamplingConfig() SamplingConfig
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Raytracer handles the rendering process
type Raytracer struct {
	camera     *Camera
	world      geometry.Shape
	integrator integrator.Integrator
	sampling   SamplingConfig
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer, validating the scene's sampling configuration
func NewRaytracer(scene Scene, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	sampling := scene.GetSamplingConfig()
	if err := sampling.Validate(); err != nil {
		return nil, err
	}

	integratorConfig := integrator.DefaultIntegratorConfig()
	integratorConfig.TopColor, integratorConfig.BottomColor = scene.GetBackgroundColors()
	integratorConfig.Iterative = config.Iterative

	return &Raytracer{
		camera:     scene.GetCamera(),
		world:      scene.GetWorld(),
		integrator: integrator.NewPathTracingIntegrator(integratorConfig),
		sampling:   sampling,
		config:     config,
		logger:     logger,
	}, nil
}

// Render traces the whole image in parallel rows and returns the encoded result.
// The output depends only on the scene and RenderConfig.Seed, not on worker count.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	width, height := rt.sampling.Width, rt.sampling.Height
	startTime := time.Now()

	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	pool := NewWorkerPool(rt, rt.config.NumWorkers, height)
	rt.logger.Printf("Rendering %dx%d at %d samples/pixel, max depth %d (using %d workers)...\n",
		width, height, rt.sampling.SamplesPerPixel, rt.sampling.MaxDepth, pool.GetNumWorkers())

	pool.Start(ctx)
	for y := 0; y < height; y++ {
		pool.SubmitTask(RowTask{
			Row:    y,
			Pixels: pixelStats[y],
			Seed:   rt.config.Seed + int64(y),
		})
	}

	totalSamples := 0
	var renderErr error
	for i := 0; i < height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil && renderErr == nil {
			renderErr = result.Error
		}
		totalSamples += result.Samples
	}
	pool.Stop()

	if renderErr != nil {
		rt.logger.Printf("Render cancelled: %v\n", renderErr)
		return nil, RenderStats{}, fmt.Errorf("render cancelled: %w", renderErr)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, Vec3ToColor(pixelStats[y][x].GetColor()))
		}
	}

	stats := newRenderStats(width, height, totalSamples, pool.GetNumWorkers(), time.Since(startTime))
	rt.logger.Printf("Render completed in %v (%.1f samples/pixel)\n", stats.Duration, stats.AverageSamples)

	return img, stats, nil
}

// RenderRow samples every pixel of image row y (0 at the top) into pixels
// and returns the number of samples taken.
func (rt *Raytracer) RenderRow(y int, pixels []PixelStats, random *rand.Rand) int {
	sampler := core.NewRandomSampler(random)
	samples := 0

	for x := range pixels {
		for s := 0; s < rt.sampling.SamplesPerPixel; s++ {
			pixels[x].AddSample(rt.SamplePixel(x, y, sampler))
			samples++
		}
	}

	return samples
}

// SamplePixel traces one jittered camera ray through pixel (x, y)
func (rt *Raytracer) SamplePixel(x, y int, sampler core.Sampler) core.Vec3 {
	// Image rows run top-down; the camera's t runs bottom-up
	u := (float32(x) + sampler.Get1D()) / float32(rt.sampling.Width)
	v := 1 - (float32(y)+sampler.Get1D())/float32(rt.sampling.Height)

	ray := rt.camera.GetRay(u, v, sampler)
	return rt.integrator.RayColor(ray, rt.world, rt.sampling.MaxDepth, sampler)
}

// Vec3ToColor converts a linear color to RGBA with gamma 2 and 8-bit quantization
func Vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Gamma 2: square root of each non-negative channel
	colorVec = colorVec.Clamp(0, math.MaxFloat32).Sqrt()

	// Clamp below 1 so 256·c never reaches 256
	colorVec = colorVec.Clamp(0.0, 0.999)

	return color.RGBA{
		R: uint8(256 * colorVec.X),
		G: uint8(256 * colorVec.Y),
		B: uint8(256 * colorVec.Z),
		A: 255,
	}
}
