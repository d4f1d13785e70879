package core

import (
	"math/rand"

	"github.com/chewxy/math32"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float32
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float32 in [0, 1)
func (r *RandomSampler) Get1D() float32 {
	return r.random.Float32()
}

// Get2D returns two random float32 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float32(), r.random.Float32())
}

// Get3D returns three random float32 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float32(), r.random.Float32(), r.random.Float32())
}

// RandomUnitVector returns a direction distributed uniformly on the unit sphere
func RandomUnitVector(sampler Sampler) Vec3 {
	sample := sampler.Get2D()
	a := 2 * math32.Pi * sample.X
	z := 2*sample.Y - 1
	r := math32.Sqrt(1 - z*z)
	return NewVec3(r*math32.Cos(a), r*math32.Sin(a), z)
}

// RandomInUnitSphere returns a point distributed uniformly inside the unit ball
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		// Generate random point in [-1,1]³ cube
		s := sampler.Get3D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 2*s.Z-1)
		// Accept if inside unit sphere
		if p.LengthSquared() <= 1 {
			return p
		}
	}
}

// RandomInUnitDisk returns a point distributed uniformly inside the unit disk on z=0
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}
