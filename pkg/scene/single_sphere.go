package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewSingleSphereScene creates one gray diffuse sphere floating under the sky
func NewSingleSphereScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := applyCameraOverrides(renderer.DefaultCameraConfig(), cameraOverrides)

	samplingConfig := renderer.SamplingConfig{
		Width:           192,
		Height:          108,
		SamplesPerPixel: 50,
		MaxDepth:        50,
	}

	objects := []Object{
		{Center: core.NewVec3(0, 0, -1), Radius: 0.5, Material: material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))},
	}

	return newScene(BuildScene(objects), cameraConfig, samplingConfig)
}
