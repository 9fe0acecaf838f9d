package scene

import (
	"github.com/df07/go-sdf-raytracer/pkg/core"
	"github.com/df07/go-sdf-raytracer/pkg/geometry"
	"github.com/df07/go-sdf-raytracer/pkg/material"
)

// NewDefaultScene creates the classic four-sphere scene: an ivory sphere, a
// glass sphere, a red rubber sphere and a large mirror, lit by three point
// lights.
func NewDefaultScene() *Scene {
	surfaces := []geometry.Surface{
		geometry.NewSphere(core.NewVec3(-3, 0, -16), 2, material.Ivory()),
		geometry.NewSphere(core.NewVec3(-1.0, -1.5, -12), 2, material.Glass()),
		geometry.NewSphere(core.NewVec3(1.5, -0.5, -18), 3, material.RedRubber()),
		geometry.NewSphere(core.NewVec3(7, 5, -18), 4, material.Mirror()),
	}

	lights := []Light{
		NewLight(core.NewVec3(-20, 20, 20), 1.5),
		NewLight(core.NewVec3(30, 50, -25), 1.8),
		NewLight(core.NewVec3(30, 20, 30), 1.7),
	}

	return New(surfaces, lights)
}

// NewShapesScene creates a scene showing off the non-sphere surface types:
// a glass box and an ivory torus over the checkerboard, plus a mirror sphere.
func NewShapesScene() *Scene {
	surfaces := []geometry.Surface{
		geometry.NewBox(core.NewVec3(-3, -1, -14), core.NewVec3(1.5, 1.5, 1.5), material.Glass()),
		geometry.NewTorus(core.NewVec3(2, -1, -16), 2.5, 0.8, material.Ivory()),
		geometry.NewSphere(core.NewVec3(6, 4, -20), 3, material.Mirror()),
	}

	lights := []Light{
		NewLight(core.NewVec3(-20, 20, 20), 1.5),
		NewLight(core.NewVec3(30, 50, -25), 1.8),
	}

	return New(surfaces, lights)
}
