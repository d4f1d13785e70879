package scene

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

var (
	// ErrInvalidRadius is returned for a sphere whose radius is zero, NaN or infinite
	ErrInvalidRadius = errors.New("invalid sphere radius")
	// ErrNilMaterial is returned for an object without a material
	ErrNilMaterial = errors.New("object has no material")
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World          *geometry.HittableList // Objects in the scene
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
	TopColor       core.Vec3 // Sky color straight up
	BottomColor    core.Vec3 // Sky color at the horizon and below
}

// Object pairs a sphere's geometry with its material
type Object struct {
	Center   core.Vec3
	Radius   float32 // Negative radius flips the normals inward (hollow shells)
	Material material.Material
}

// Validate reports whether the object can be placed in a scene
func (o Object) Validate() error {
	if o.Radius == 0 || math32.IsNaN(o.Radius) || math32.IsInf(o.Radius, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, o.Radius)
	}
	if o.Material == nil {
		return ErrNilMaterial
	}
	return nil
}

// BuildScene turns a list of objects into the world the integrator traces.
// It does no validation; see NewScene.
func BuildScene(objects []Object) *geometry.HittableList {
	world := geometry.NewHittableList()
	for _, obj := range objects {
		world.Add(geometry.NewSphere(obj.Center, obj.Radius, obj.Material))
	}
	return world
}

// NewScene validates the objects and assembles a scene under the default sky
func NewScene(objects []Object, cameraConfig renderer.CameraConfig, samplingConfig renderer.SamplingConfig) (*Scene, error) {
	for i, obj := range objects {
		if err := obj.Validate(); err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
	}
	if err := samplingConfig.Validate(); err != nil {
		return nil, err
	}

	return newScene(BuildScene(objects), cameraConfig, samplingConfig), nil
}

func newScene(world *geometry.HittableList, cameraConfig renderer.CameraConfig, samplingConfig renderer.SamplingConfig) *Scene {
	return &Scene{
		World:          world,
		Camera:         renderer.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		SamplingConfig: samplingConfig,
		TopColor:       core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0),
	}
}

// applyCameraOverrides merges the first override, if any, onto base
func applyCameraOverrides(base renderer.CameraConfig, overrides []renderer.CameraConfig) renderer.CameraConfig {
	if len(overrides) > 0 {
		return renderer.MergeCameraConfig(base, overrides[0])
	}
	return base
}

// SetWidth changes the image width and derives the height from the camera aspect ratio
func (s *Scene) SetWidth(width int) {
	s.SamplingConfig.Width = width
	s.SamplingConfig.Height = int(float32(width)/s.CameraConfig.AspectRatio + 0.5)
	if s.SamplingConfig.Height < 1 {
		s.SamplingConfig.Height = 1
	}
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld returns the scene geometry
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// GetSamplingConfig returns the image size and sampling budget
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig {
	return s.SamplingConfig
}

// GetBackgroundColors returns the sky gradient endpoints
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}
