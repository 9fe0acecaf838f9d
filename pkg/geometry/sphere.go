package geometry

import (
	"github.com/df07/go-sdf-raytracer/pkg/core"
	"github.com/df07/go-sdf-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Mat    material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Mat:    mat,
	}
}

// SignedDistance returns the distance from point to the sphere's boundary,
// negative inside
func (s *Sphere) SignedDistance(point core.Vec3) float64 {
	return point.Subtract(s.Center).Length() - s.Radius
}

// NormalAt returns the unit vector from the center to the point. The center
// itself has no defined normal.
func (s *Sphere) NormalAt(point core.Vec3) (core.Vec3, error) {
	toPoint := point.Subtract(s.Center)
	if toPoint.Length() < core.Epsilon {
		return core.Vec3{}, ErrDegenerateNormal
	}
	return toPoint.Normalize(), nil
}

// Material returns the material carried by this sphere
func (s *Sphere) Material() material.Material {
	return s.Mat
}
