package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

const tolerance = 1e-5

func newTestSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

func vecApproxEqual(a, b core.Vec3) bool {
	return a.Subtract(b).Length() < tolerance
}

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < tolerance
}

// constSampler returns the same value for every draw
type constSampler float32

func (c constSampler) Get1D() float32 { return float32(c) }
func (c constSampler) Get2D() core.Vec2 {
	return core.NewVec2(float32(c), float32(c))
}
func (c constSampler) Get3D() core.Vec3 {
	return core.NewVec3(float32(c), float32(c), float32(c))
}

// pointSampler returns a fixed 3D sample and 0.5 for lower dimensions
type pointSampler struct {
	point core.Vec3
}

func (p pointSampler) Get1D() float32   { return 0.5 }
func (p pointSampler) Get2D() core.Vec2 { return core.NewVec2(0.5, 0.5) }
func (p pointSampler) Get3D() core.Vec3 { return p.point }
