package scene

import (
	"github.com/df07/go-sdf-raytracer/pkg/core"
	"github.com/df07/go-sdf-raytracer/pkg/geometry"
)

// MaxDistance is the sentinel returned by Query when no surface is in range.
// It doubles as the "essentially infinite" distance during marching.
const MaxDistance = 9999.0

// Light is a point light with a scalar intensity
type Light struct {
	Position  core.Vec3
	Intensity float64
}

// NewLight creates a new light
func NewLight(position core.Vec3, intensity float64) Light {
	return Light{Position: position, Intensity: intensity}
}

// Scene contains all the elements needed for rendering. It must not be
// mutated while a render pass is running; every worker reads it concurrently.
type Scene struct {
	Surfaces []geometry.Surface
	Lights   []Light
}

// New creates a scene from the given surfaces and lights. Empty slices are
// legal; rays then only ever see the ground plane and the background.
func New(surfaces []geometry.Surface, lights []Light) *Scene {
	return &Scene{Surfaces: surfaces, Lights: lights}
}

// Query scans every surface for its signed distance at point and returns the
// minimum non-negative distance along with the surface reporting it. Surfaces
// reporting a negative distance contain the point and are skipped: a ray
// inside a solid cannot detect that solid here. When nothing qualifies the
// result is (MaxDistance, nil). Equal distances keep the earliest surface.
func (s *Scene) Query(point core.Vec3) (float64, geometry.Surface) {
	minDist := MaxDistance
	var nearest geometry.Surface
	for _, surface := range s.Surfaces {
		dist := surface.SignedDistance(point)
		if dist < 0 {
			continue
		}
		if dist < minDist {
			minDist = dist
			nearest = surface
		}
	}
	return minDist, nearest
}
