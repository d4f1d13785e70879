package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates three spheres on a large ground sphere: diffuse
// blue in the middle, hollow glass on the left and polished gold on the right
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := applyCameraOverrides(renderer.CameraConfig{
		LookFrom:    core.NewVec3(-2, 2, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20.0,
		AspectRatio: 16.0 / 9.0,
	}, cameraOverrides)

	samplingConfig := renderer.DefaultSamplingConfig()

	groundMaterial := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	centerMaterial := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	objects := []Object{
		{Center: core.NewVec3(0, -100.5, -1), Radius: 100, Material: groundMaterial},
		{Center: core.NewVec3(0, 0, -1), Radius: 0.5, Material: centerMaterial},
		// Hollow glass: the inner sphere's negative radius points its normals inward
		{Center: core.NewVec3(-1, 0, -1), Radius: 0.5, Material: glass},
		{Center: core.NewVec3(-1, 0, -1), Radius: -0.45, Material: glass},
		{Center: core.NewVec3(1, 0, -1), Radius: 0.5, Material: gold},
	}

	return newScene(BuildScene(objects), cameraConfig, samplingConfig)
}
