package renderer

import (
	"math"

	"github.com/df07/go-sdf-raytracer/pkg/core"
	"github.com/df07/go-sdf-raytracer/pkg/material"
	"github.com/df07/go-sdf-raytracer/pkg/scene"
)

// MaxDepth is the number of recursive bounces allowed after the primary ray
const MaxDepth = 4

// BackgroundColor returns the color for rays that hit nothing
func BackgroundColor() core.Vec3 {
	return core.NewVec3(0.2, 0.7, 0.8)
}

// Shade computes the radiance arriving along a ray. Direct lighting with
// shadow tests is combined with recursively traced reflection and refraction,
// each term weighted by the material's albedo. The refraction ray is only
// spawned when the Fresnel term leaves any light to transmit. Recursion stops
// at MaxDepth; deeper rays contribute the background color.
//
// The reflected and refracted terms are weighted by albedo alone, not by
// kr/(1-kr); energy is not conserved.
func Shade(origin, direction core.Vec3, sc *scene.Scene, depth int) core.Vec3 {
	if depth > MaxDepth {
		return BackgroundColor()
	}
	hit, ok := March(origin, direction, sc)
	if !ok {
		return BackgroundColor()
	}

	kr := core.Fresnel(direction, hit.Normal, hit.Material.RefractiveIndex)

	// Total internal reflection transmits nothing, skip the refraction ray
	var refractColor core.Vec3
	if kr < 1 {
		refractDir := core.Refract(direction, hit.Normal, hit.Material.RefractiveIndex, 1.0).Normalize()
		refractOrigin := offsetOrigin(hit.Point, hit.Normal, refractDir)
		refractColor = Shade(refractOrigin, refractDir, sc, depth+1)
	}

	reflectDir := core.Reflect(direction, hit.Normal).Normalize()
	reflectOrigin := offsetOrigin(hit.Point, hit.Normal, reflectDir)
	reflectColor := Shade(reflectOrigin, reflectDir, sc, depth+1)

	var diffuseIntensity, specularIntensity float64
	for _, light := range sc.Lights {
		toLight := light.Position.Subtract(hit.Point)
		lightDir := toLight.Normalize()
		lightDistance := toLight.Length()

		shadowOrigin := offsetOrigin(hit.Point, hit.Normal, lightDir)
		if shadowHit, shadowed := March(shadowOrigin, lightDir, sc); shadowed &&
			shadowHit.Point.Subtract(shadowOrigin).Length() < lightDistance {
			continue
		}

		diffuseIntensity += light.Intensity * math.Max(0, lightDir.Dot(hit.Normal))
		specularIntensity += math.Pow(
			math.Max(0, core.Reflect(lightDir.Negate(), hit.Normal).Negate().Dot(direction)),
			hit.Material.SpecularExponent) * light.Intensity
	}

	white := core.NewVec3(1, 1, 1)
	return hit.Material.DiffuseColor.Multiply(diffuseIntensity * hit.Material.Albedo[material.AlbedoDiffuse]).
		Add(white.Multiply(specularIntensity * hit.Material.Albedo[material.AlbedoSpecular])).
		Add(reflectColor.Multiply(hit.Material.Albedo[material.AlbedoReflection])).
		Add(refractColor.Multiply(hit.Material.Albedo[material.AlbedoRefraction]))
}

// offsetOrigin nudges a secondary ray's origin off the surface it starts
// from, along the normal, on the side the new direction points to.
func offsetOrigin(point, normal, direction core.Vec3) core.Vec3 {
	if direction.Dot(normal) < 0 {
		return point.Subtract(normal.Multiply(core.Epsilon))
	}
	return point.Add(normal.Multiply(core.Epsilon))
}
