package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-empty", "Cornell Empty"},
		{"dragon_gold", "Dragon Gold"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestListScenes(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != len(builtIn) {
		t.Fatalf("Expected %d scenes, got %d", len(builtIn), len(scenes))
	}
	for i := 1; i < len(scenes); i++ {
		a, b := scenes[i-1], scenes[i]
		if a.Group > b.Group || (a.Group == b.Group && a.ID > b.ID) {
			t.Errorf("Scenes out of order: %s/%s before %s/%s", a.Group, a.ID, b.Group, b.ID)
		}
	}
}

func TestLoad_AllBuiltIns(t *testing.T) {
	for _, info := range ListScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := Load(info.ID)
			if err != nil {
				t.Fatalf("Failed to load %s: %v", info.ID, err)
			}
			if s.Name != info.ID {
				t.Errorf("Expected scene name %q, got %q", info.ID, s.Name)
			}
			if s.GetPrimitiveCount() == 0 {
				t.Error("Expected scene to contain geometry")
			}
			if len(s.Lights) == 0 {
				t.Error("Expected scene to contain lights")
			}
			if _, err := s.NewCameraBuilder().Build(); err != nil {
				t.Errorf("Scene camera does not build: %v", err)
			}
		})
	}
}

func TestLoad_Unknown(t *testing.T) {
	_, err := Load("no-such-scene")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestLoad_CameraOverride(t *testing.T) {
	s, err := Load("default", renderer.CameraConfig{AASamples: 9, Location: core.NewPoint3(0, 0, 500)})
	if err != nil {
		t.Fatal(err)
	}
	if s.CameraConfig.AASamples != 9 {
		t.Errorf("Expected 9 AA samples, got %d", s.CameraConfig.AASamples)
	}
	if s.CameraConfig.Location != core.NewPoint3(0, 0, 500) {
		t.Errorf("Expected overridden location, got %v", s.CameraConfig.Location)
	}
	if s.CameraConfig.Distance != 1000 {
		t.Errorf("Expected scene distance to survive the merge, got %f", s.CameraConfig.Distance)
	}
}
