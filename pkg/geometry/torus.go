package geometry

import (
	"math"

	"github.com/df07/go-sdf-raytracer/pkg/core"
	"github.com/df07/go-sdf-raytracer/pkg/material"
)

// Torus represents a torus lying in the XZ plane around its center
type Torus struct {
	Center      core.Vec3
	MajorRadius float64 // Distance from center to the middle of the tube
	MinorRadius float64 // Radius of the tube
	Mat         material.Material
}

// NewTorus creates a new torus
func NewTorus(center core.Vec3, majorRadius, minorRadius float64, mat material.Material) *Torus {
	return &Torus{
		Center:      center,
		MajorRadius: majorRadius,
		MinorRadius: minorRadius,
		Mat:         mat,
	}
}

// SignedDistance returns the distance from point to the torus boundary,
// negative inside the tube
func (t *Torus) SignedDistance(point core.Vec3) float64 {
	rel := point.Subtract(t.Center)
	ring := math.Sqrt(rel.X*rel.X+rel.Z*rel.Z) - t.MajorRadius
	return math.Sqrt(ring*ring+rel.Y*rel.Y) - t.MinorRadius
}

// NormalAt estimates the outward normal from the distance field gradient.
// Points on the torus axis see a flat gradient and have no defined normal.
func (t *Torus) NormalAt(point core.Vec3) (core.Vec3, error) {
	return fieldNormal(t.SignedDistance, point)
}

// Material returns the material carried by this torus
func (t *Torus) Material() material.Material {
	return t.Mat
}
