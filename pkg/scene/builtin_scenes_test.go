package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// spheres returns the scene's shapes as spheres, failing on anything else
func spheres(t *testing.T, s *Scene) []*geometry.Sphere {
	t.Helper()
	var result []*geometry.Sphere
	for _, shape := range s.World.Shapes {
		sphere, ok := shape.(*geometry.Sphere)
		if !ok {
			t.Fatalf("Expected only spheres, got %T", shape)
		}
		result = append(result, sphere)
	}
	return result
}

func TestBuiltInScenesAreValid(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := ByName(name)
			if err != nil {
				t.Fatalf("ByName(%q) failed: %v", name, err)
			}
			if err := s.SamplingConfig.Validate(); err != nil {
				t.Errorf("Invalid sampling config: %v", err)
			}
			if s.Camera == nil {
				t.Error("Scene has no camera")
			}
			if s.World.Len() == 0 {
				t.Error("Scene has no objects")
			}
			for i, sphere := range spheres(t, s) {
				obj := Object{Center: sphere.Center, Radius: sphere.Radius, Material: sphere.Material}
				if err := obj.Validate(); err != nil {
					t.Errorf("Object %d invalid: %v", i, err)
				}
			}

			aspect := float32(s.SamplingConfig.Width) / float32(s.SamplingConfig.Height)
			if diff := aspect - s.CameraConfig.AspectRatio; diff > 0.01 || diff < -0.01 {
				t.Errorf("Image aspect %f does not match camera aspect %f", aspect, s.CameraConfig.AspectRatio)
			}
		})
	}
}

func TestByName_Unknown(t *testing.T) {
	for _, name := range []string{"", "cornell", "DEFAULT"} {
		s, err := ByName(name)
		if !errors.Is(err, ErrUnknownScene) {
			t.Errorf("ByName(%q): expected ErrUnknownScene, got %v", name, err)
		}
		if s != nil {
			t.Errorf("ByName(%q): expected nil scene", name)
		}
	}
}

func TestNames(t *testing.T) {
	expected := []string{"default", "random-spheres", "single-sphere"}
	names := Names()
	if len(names) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, names)
		}
	}
}

func TestDefaultScene(t *testing.T) {
	s := NewDefaultScene()
	objects := spheres(t, s)

	if len(objects) != 5 {
		t.Fatalf("Expected 5 spheres, got %d", len(objects))
	}

	ground := objects[0]
	if ground.Center != core.NewVec3(0, -100.5, -1) || ground.Radius != 100 {
		t.Errorf("Unexpected ground sphere %+v", ground)
	}

	outer, inner := objects[2], objects[3]
	if outer.Center != inner.Center || outer.Radius != 0.5 || inner.Radius != -0.45 {
		t.Errorf("Expected a hollow glass shell, got outer r=%f inner r=%f", outer.Radius, inner.Radius)
	}
	if _, ok := inner.Material.(*material.Dielectric); !ok {
		t.Errorf("Expected glass for the hollow shell, got %T", inner.Material)
	}
	if outer.Material != inner.Material {
		t.Error("Expected both shell surfaces to share one glass material")
	}

	if metal, ok := objects[4].Material.(*material.Metal); !ok || metal.Fuzz != 0 {
		t.Errorf("Expected a polished metal sphere on the right, got %+v", objects[4].Material)
	}
}

func TestDefaultScene_CameraOverride(t *testing.T) {
	s := NewDefaultScene(renderer.CameraConfig{VFov: 45})

	if s.CameraConfig.VFov != 45 {
		t.Errorf("Expected overridden VFov 45, got %f", s.CameraConfig.VFov)
	}
	if s.CameraConfig.LookFrom != core.NewVec3(-2, 2, 1) {
		t.Errorf("Expected the scene's LookFrom to survive the override, got %v", s.CameraConfig.LookFrom)
	}
}

func TestRandomSpheresScene(t *testing.T) {
	a := spheres(t, NewRandomSpheresScene(7))
	b := spheres(t, NewRandomSpheresScene(7))
	c := spheres(t, NewRandomSpheresScene(8))

	// Ground, up to 22x22 small spheres and three large ones
	if len(a) < 4 || len(a) > 1+22*22+3 {
		t.Fatalf("Unexpected sphere count %d", len(a))
	}
	if len(a) != len(b) {
		t.Fatalf("Same seed produced %d and %d spheres", len(a), len(b))
	}
	for i := range a {
		if a[i].Center != b[i].Center || a[i].Radius != b[i].Radius {
			t.Fatalf("Same seed produced different sphere %d", i)
		}
	}

	same := len(a) == len(c)
	for i := 0; same && i < len(a); i++ {
		same = a[i].Center == c[i].Center
	}
	if same {
		t.Error("Different seeds produced the same layout")
	}

	keepClear := core.NewVec3(4, 0.2, 0)
	for _, sphere := range a[1 : len(a)-3] {
		if sphere.Radius != 0.2 {
			t.Errorf("Expected small sphere radius 0.2, got %f", sphere.Radius)
		}
		if sphere.Center.Subtract(keepClear).Length() <= 0.9 {
			t.Errorf("Small sphere at %v overlaps the large metal sphere", sphere.Center)
		}
	}

	s := NewRandomSpheresScene(7)
	if s.CameraConfig.Aperture <= 0 || s.CameraConfig.FocusDistance != 10 {
		t.Errorf("Expected a depth of field camera, got %+v", s.CameraConfig)
	}
}
