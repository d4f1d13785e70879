package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewRandomSpheresScene creates a field of small random spheres around three
// large ones, viewed through a lens with depth of field. The layout depends
// only on seed.
func NewRandomSpheresScene(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := applyCameraOverrides(renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   3.0 / 2.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}, cameraOverrides)

	samplingConfig := renderer.SamplingConfig{
		Width:           600,
		Height:          400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}

	random := rand.New(rand.NewSource(seed))
	randomColor := func(lo, hi float32) core.Vec3 {
		return core.NewVec3(
			lo+(hi-lo)*random.Float32(),
			lo+(hi-lo)*random.Float32(),
			lo+(hi-lo)*random.Float32(),
		)
	}

	objects := []Object{
		{Center: core.NewVec3(0, -1000, 0), Radius: 1000, Material: material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))},
	}

	glass := material.NewDielectric(1.5)
	keepClear := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float32()
			center := core.NewVec3(float32(a)+0.9*random.Float32(), 0.2, float32(b)+0.9*random.Float32())

			// Leave room around the large metal sphere
			if center.Subtract(keepClear).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				mat = material.NewLambertian(randomColor(0, 1).MultiplyVec(randomColor(0, 1)))
			case chooseMat < 0.95:
				mat = material.NewMetal(randomColor(0.5, 1), 0.5*random.Float32())
			default:
				mat = glass
			}
			objects = append(objects, Object{Center: center, Radius: 0.2, Material: mat})
		}
	}

	objects = append(objects,
		Object{Center: core.NewVec3(0, 1, 0), Radius: 1.0, Material: glass},
		Object{Center: core.NewVec3(-4, 1, 0), Radius: 1.0, Material: material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))},
		Object{Center: core.NewVec3(4, 1, 0), Radius: 1.0, Material: material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)},
	)

	return newScene(BuildScene(objects), cameraConfig, samplingConfig)
}
