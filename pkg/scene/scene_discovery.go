package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned when no built-in scene has the requested ID
var ErrUnknownScene = errors.New("unknown scene")

// Constructor builds a fresh scene, optionally overriding its camera
type Constructor func(cameraOverrides ...renderer.CameraConfig) *Scene

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string // Unique identifier
	DisplayName string // Name shown in listings
	Description string
	Group       string // Grouping category
}

type registration struct {
	info  SceneInfo
	build Constructor
}

var builtIn = map[string]registration{}

func register(id, description, group string, build Constructor) {
	builtIn[id] = registration{
		info: SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: description,
			Group:       group,
		},
		build: build,
	}
}

func init() {
	register("default", "Glass sphere with an emissive core before a mirror wall", "Showcase", NewDefaultScene)
	register("transparency", "Transparent sphere casting a tinted shadow on two triangles", "Showcase", NewTransparencyScene)
	register("cylinders", "Capped cylinders, a glass column and an infinite tube", "Primitives", NewCylinderScene)
	register("sphere-grid", "10x10 grid of colored spheres on a reflective plane", "Performance", NewSphereGridScene)
}

// ListScenes returns every built-in scene, ordered by group then ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtIn))
	for _, r := range builtIn {
		scenes = append(scenes, r.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		if scenes[i].Group != scenes[j].Group {
			return scenes[i].Group < scenes[j].Group
		}
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Load builds the built-in scene with the given ID
func Load(id string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	r, ok := builtIn[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	return r.build(cameraOverrides...), nil
}

// titleCase converts an ID-style string to title case
// e.g., "sphere-grid" -> "Sphere Grid"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
