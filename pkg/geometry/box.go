package geometry

import (
	"math"

	"github.com/df07/go-sdf-raytracer/pkg/core"
	"github.com/df07/go-sdf-raytracer/pkg/material"
)

// Box represents an axis-aligned box shape
type Box struct {
	Center   core.Vec3
	HalfSize core.Vec3 // Half extents along each axis
	Mat      material.Material
}

// NewBox creates a new axis-aligned box
func NewBox(center, halfSize core.Vec3, mat material.Material) *Box {
	return &Box{
		Center:   center,
		HalfSize: halfSize,
		Mat:      mat,
	}
}

// SignedDistance returns the distance from point to the box boundary,
// negative inside
func (b *Box) SignedDistance(point core.Vec3) float64 {
	q := point.Subtract(b.Center).Abs().Subtract(b.HalfSize)
	outside := q.Max(core.Vec3{}).Length()
	inside := math.Min(q.MaxComponent(), 0)
	return outside + inside
}

// NormalAt estimates the outward normal from the distance field gradient
func (b *Box) NormalAt(point core.Vec3) (core.Vec3, error) {
	return fieldNormal(b.SignedDistance, point)
}

// Material returns the material carried by this box
func (b *Box) Material() material.Material {
	return b.Mat
}
