package integrator

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// IntegratorConfig contains the environment and intersection settings for path tracing
type IntegratorConfig struct {
	TopColor    core.Vec3 // Sky color straight up
	BottomColor core.Vec3 // Sky color straight down
	HitEpsilon  float32   // Minimum t accepted for a hit, avoids shadow acne
	Iterative   bool      // Use the loop form instead of recursion
}

// DefaultIntegratorConfig returns the white-to-blue sky gradient
func DefaultIntegratorConfig() IntegratorConfig {
	return IntegratorConfig{
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
		HitEpsilon:  0.001,
	}
}

// PathTracingIntegrator implements unidirectional path tracing under a sky gradient
type PathTracingIntegrator struct {
	config IntegratorConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config IntegratorConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) core.Vec3 {
	if pt.config.Iterative {
		return pt.RayColorIterative(ray, world, depth, sampler)
	}
	return pt.RayColorRecursive(ray, world, depth, sampler)
}

// RayColorRecursive evaluates attenuation ⊙ RayColor(scattered, depth-1) by recursion
func (pt *PathTracingIntegrator) RayColorRecursive(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth < 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, pt.config.HitEpsilon, math32.Inf(1))
	if !isHit {
		return pt.BackgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(
		pt.RayColorRecursive(scatter.Scattered, world, depth-1, sampler))
}

// RayColorIterative evaluates the same estimator as RayColorRecursive with a
// throughput accumulator instead of a call stack. It draws from the sampler in
// the same order.
func (pt *PathTracingIntegrator) RayColorIterative(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for ; depth >= 0; depth-- {
		hit, isHit := world.Hit(ray, pt.config.HitEpsilon, math32.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(pt.BackgroundGradient(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.Vec3{X: 0, Y: 0, Z: 0}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return core.Vec3{X: 0, Y: 0, Z: 0}
}

// BackgroundGradient returns a gradient color based on ray direction
func (pt *PathTracingIntegrator) BackgroundGradient(r core.Ray) core.Vec3 {
	// Normalize the ray direction to get consistent results
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return pt.config.BottomColor.Multiply(1.0 - t).Add(pt.config.TopColor.Multiply(t))
}
