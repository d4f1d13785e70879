package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned by ByName for names that are not built in
var ErrUnknownScene = errors.New("unknown scene")

// randomSpheresSeed fixes the layout of the built-in random spheres scene
const randomSpheresSeed = 42

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
	build       func() *Scene
}

var builtInScenes = []SceneInfo{
	{
		Name:        "default",
		Description: "Diffuse, hollow glass and metal spheres on a ground sphere",
		build:       func() *Scene { return NewDefaultScene() },
	},
	{
		Name:        "random-spheres",
		Description: "Field of random small spheres around three large ones, with depth of field",
		build:       func() *Scene { return NewRandomSpheresScene(randomSpheresSeed) },
	},
	{
		Name:        "single-sphere",
		Description: "One diffuse sphere under the sky",
		build:       func() *Scene { return NewSingleSphereScene() },
	},
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := append([]SceneInfo(nil), builtInScenes...)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Names returns the names of the built-in scenes in sorted order
func Names() []string {
	var names []string
	for _, info := range ListScenes() {
		names = append(names, info.Name)
	}
	return names
}

// ByName builds the built-in scene with the given name
func ByName(name string) (*Scene, error) {
	for _, info := range builtInScenes {
		if info.Name == name {
			return info.build(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}
