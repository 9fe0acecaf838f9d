package material

import "github.com/df07/go-sdf-raytracer/pkg/core"

// Albedo indices into Material.Albedo
const (
	AlbedoDiffuse = iota
	AlbedoSpecular
	AlbedoReflection
	AlbedoRefraction
)

// Material describes how a surface responds to light. It is an immutable
// value type: surfaces carry one by value and hit records copy it, so nothing
// is ever shared mutably. The four albedo weights control the diffuse,
// specular, reflective and refractive contributions; they are not required to
// sum to 1.
type Material struct {
	RefractiveIndex  float64    // Index of refraction, >= 1
	Albedo           [4]float64 // Non-negative term weights
	DiffuseColor     core.Vec3  // Base RGB color, tone-mapped on output
	SpecularExponent float64    // Phong highlight exponent, >= 0
}

// New creates a new material
func New(refractiveIndex float64, albedo [4]float64, diffuseColor core.Vec3, specularExponent float64) Material {
	return Material{
		RefractiveIndex:  refractiveIndex,
		Albedo:           albedo,
		DiffuseColor:     diffuseColor,
		SpecularExponent: specularExponent,
	}
}

// Default returns the material assigned to hits that carry no surface
// material of their own, such as the ground plane: purely diffuse, index 1.
func Default() Material {
	return Material{RefractiveIndex: 1, Albedo: [4]float64{1, 0, 0, 0}}
}

// Ivory is a mostly diffuse material with a mild highlight
func Ivory() Material {
	return New(1.0, [4]float64{0.6, 0.3, 0.1, 0.0}, core.NewVec3(0.4, 0.4, 0.3), 50)
}

// Glass is a refractive material with a sharp highlight
func Glass() Material {
	return New(1.5, [4]float64{0.0, 0.5, 0.1, 0.8}, core.NewVec3(0.6, 0.7, 0.8), 125)
}

// RedRubber is a dull diffuse material
func RedRubber() Material {
	return New(1.0, [4]float64{0.9, 0.1, 0.0, 0.0}, core.NewVec3(0.3, 0.1, 0.1), 10)
}

// Mirror is an almost perfectly reflective material
func Mirror() Material {
	return New(1.0, [4]float64{0.0, 10.0, 0.8, 0.0}, core.NewVec3(1.0, 1.0, 1.0), 1425)
}
