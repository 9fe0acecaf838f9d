package geometry

import (
	"errors"

	"github.com/df07/go-sdf-raytracer/pkg/core"
	"github.com/df07/go-sdf-raytracer/pkg/material"
)

// ErrDegenerateNormal is returned by NormalAt when the queried point sits on a
// singular location of the field (e.g. a sphere's center) where no outward
// direction exists.
var ErrDegenerateNormal = errors.New("geometry: normal undefined at singular point")

// Surface is an implicit surface described by a signed distance field.
// Each surface carries exactly one material.
type Surface interface {
	// SignedDistance returns the distance from point to the surface boundary,
	// negative when the point is inside.
	SignedDistance(point core.Vec3) float64
	// NormalAt returns the outward unit normal at a point on (or near) the
	// surface, or ErrDegenerateNormal at a singular point.
	NormalAt(point core.Vec3) (core.Vec3, error)
	// Material returns the material carried by this surface.
	Material() material.Material
}

// fieldNormal estimates a surface normal as the normalized gradient of the
// distance field, via central differences.
func fieldNormal(sdf func(core.Vec3) float64, p core.Vec3) (core.Vec3, error) {
	const h = 1e-4
	gradient := core.NewVec3(
		sdf(core.NewVec3(p.X+h, p.Y, p.Z))-sdf(core.NewVec3(p.X-h, p.Y, p.Z)),
		sdf(core.NewVec3(p.X, p.Y+h, p.Z))-sdf(core.NewVec3(p.X, p.Y-h, p.Z)),
		sdf(core.NewVec3(p.X, p.Y, p.Z+h))-sdf(core.NewVec3(p.X, p.Y, p.Z-h)),
	)
	if gradient.Length() < 1e-8 {
		return core.Vec3{}, ErrDegenerateNormal
	}
	return gradient.Normalize(), nil
}
