package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName string
	width     int   // 0 keeps the scene's width
	samples   int   // 0 keeps the scene's samples per pixel
	depth     int   // negative keeps the scene's max depth
	workers   int   // 0 uses every CPU
	seed      int64 // base seed for the per-row generators
	output    string
}

func main() {
	opts := options{}
	flag.StringVar(&opts.sceneName, "scene", "default", "Scene name (see -help)")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels; height follows the camera aspect ratio (0 = scene default)")
	flag.IntVar(&opts.samples, "samples", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&opts.depth, "depth", -1, "Maximum bounce depth (-1 = scene default)")
	flag.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.Int64Var(&opts.seed, "seed", renderer.DefaultRenderConfig().Seed, "Random seed")
	flag.StringVar(&opts.output, "output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	if err := run(opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Go Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-15s - %s\n", info.Name, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

// run renders the selected scene and writes it as a PNG
func run(opts options) error {
	fmt.Println("Starting Go Path Tracer...")

	selectedScene, err := createScene(opts.sceneName)
	if err != nil {
		return err
	}
	applyOverrides(selectedScene, opts)

	config := renderer.DefaultRenderConfig()
	config.NumWorkers = opts.workers
	config.Seed = opts.seed

	raytracer, err := renderer.NewRaytracer(selectedScene, config, renderer.NewDefaultLogger())
	if err != nil {
		return fmt.Errorf("scene %q: %w", opts.sceneName, err)
	}

	startTime := time.Now()
	img, stats, err := raytracer.Render(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Render completed in %v\n", time.Since(startTime))
	fmt.Printf("Samples: %d total, %.1f per pixel, %d workers\n",
		stats.TotalSamples, stats.AverageSamples, stats.Workers)

	filename := opts.output
	if filename == "" {
		filename = outputPath(opts.sceneName, time.Now())
	}
	if err := savePNG(filename, img); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene resolves a built-in scene by name
func createScene(sceneName string) (*scene.Scene, error) {
	s, err := scene.ByName(sceneName)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, scene.Names())
	}
	fmt.Printf("Using %s scene (%d objects)...\n", sceneName, s.World.Len())
	return s, nil
}

// applyOverrides replaces the scene's sampling settings with any set on the command line
func applyOverrides(s *scene.Scene, opts options) {
	if opts.width > 0 {
		s.SetWidth(opts.width)
	}
	if opts.samples > 0 {
		s.SamplingConfig.SamplesPerPixel = opts.samples
	}
	if opts.depth >= 0 {
		s.SamplingConfig.MaxDepth = opts.depth
	}
}

// outputPath builds the timestamped default output file for a scene
func outputPath(sceneName string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

// savePNG encodes img to filename, creating parent directories as needed
func savePNG(filename string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return file.Close()
}
