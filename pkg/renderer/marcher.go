package renderer

import (
	"log"
	"math"

	"github.com/df07/go-sdf-raytracer/pkg/core"
	"github.com/df07/go-sdf-raytracer/pkg/material"
	"github.com/df07/go-sdf-raytracer/pkg/scene"
)

const (
	// MaxMarchingSteps bounds the number of sphere-tracing steps per ray
	MaxMarchingSteps = 128

	// GroundPlaneY is the height of the infinite checkerboard plane
	GroundPlaneY = -4.0

	// groundPlaneCutoff separates a real plane hit from "essentially infinite"
	groundPlaneCutoff = 1000.0
)

// HitRecord describes a ray-surface intersection: where the ray landed, the
// surface normal there, and a copy of the surface's material.
type HitRecord struct {
	Point    core.Vec3
	Normal   core.Vec3
	Material material.Material
}

// March walks a ray through the scene by sphere tracing: each step advances
// by the scene's reported minimum distance until that distance drops below
// the convergence epsilon. Rays that escape the surfaces, or exhaust the step
// budget, fall through to the bounded checkerboard ground plane. Returns the
// hit record and whether anything was hit.
//
// A failed normal computation at a converged hit is logged and tolerated: the
// hit is still reported, with a zero normal.
func March(origin, direction core.Vec3, sc *scene.Scene) (HitRecord, bool) {
	var hit HitRecord

	depth := core.Epsilon
	for i := 0; i < MaxMarchingSteps; i++ {
		dist, surface := sc.Query(origin.Add(direction.Multiply(depth)))
		if surface == nil {
			break
		}

		depth += dist
		if dist < core.Epsilon {
			hit.Point = origin.Add(direction.Multiply(depth))
			normal, err := surface.NormalAt(hit.Point)
			if err != nil {
				log.Printf("renderer: %v at (%g, %g, %g)", err, hit.Point.X, hit.Point.Y, hit.Point.Z)
			}
			hit.Normal = normal
			hit.Material = surface.Material()
			return hit, true
		}
	}

	planeDist := math.MaxFloat64
	if math.Abs(direction.Y) > core.Epsilon {
		d := -(origin.Y - GroundPlaneY) / direction.Y
		pt := origin.Add(direction.Multiply(d))
		if d > 0 && math.Abs(pt.X) < 10 && pt.Z < -10 && pt.Z > -30 {
			planeDist = d
			hit.Point = pt
			hit.Normal = core.NewVec3(0, 1, 0)
			hit.Material = checkerboardMaterial(pt)
		}
	}
	return hit, math.Min(scene.MaxDistance, planeDist) < groundPlaneCutoff
}

// checkerboardMaterial picks one of the two tile colors by the parity of the
// scaled floor coordinates.
func checkerboardMaterial(pt core.Vec3) material.Material {
	mat := material.Default()
	parity := int(math.Floor(0.5*pt.X+1000)) + int(math.Floor(0.5*pt.Z))
	if parity&1 == 0 {
		mat.DiffuseColor = core.NewVec3(0.3, 0.3, 0.3)
	} else {
		mat.DiffuseColor = core.NewVec3(0.3, 0.2, 0.1)
	}
	return mat
}
