package core

import "math"

// Reflect mirrors the incident direction about the surface normal: I - 2(I·N)N
func Reflect(incident, normal Vec3) Vec3 {
	return incident.Subtract(normal.Multiply(2 * incident.Dot(normal)))
}

// Refract bends the incident direction through a dielectric boundary using
// Snell's law. etaT is the refractive index of the medium being entered, etaI
// the index of the medium being left. When the incident ray arrives from
// inside the object the call recurses once with the normal negated and the
// indices swapped, so callers can always pass the outward normal. A negative
// discriminant means total internal reflection; the returned (1,0,0) direction
// has no physical meaning, but in that regime Fresnel reports full reflectance
// and the refracted contribution is never used.
func Refract(incident, normal Vec3, etaT, etaI float64) Vec3 {
	cosI := -math.Max(-1, math.Min(1, incident.Dot(normal)))
	if cosI < 0 {
		return Refract(incident, normal.Negate(), etaI, etaT)
	}
	eta := etaI / etaT
	k := 1 - eta*eta*(1-cosI*cosI)
	if k < 0 {
		return Vec3{X: 1, Y: 0, Z: 0}
	}
	return incident.Multiply(eta).Add(normal.Multiply(eta*cosI - math.Sqrt(k)))
}

// Fresnel returns the fraction of light reflected at a dielectric boundary
// with the given refractive index, averaging the s- and p-polarized
// reflectances. Returns 1 under total internal reflection.
func Fresnel(incident, normal Vec3, ior float64) float64 {
	cosI := math.Max(-1, math.Min(1, incident.Dot(normal)))
	etaI, etaT := 1.0, ior
	if cosI > 0 {
		etaI, etaT = etaT, etaI
	}

	// Snell's law gives the sine on the transmission side
	sinT := etaI / etaT * math.Sqrt(math.Max(0, 1-cosI*cosI))
	if sinT >= 1 {
		return 1
	}

	cosT := math.Sqrt(math.Max(0, 1-sinT*sinT))
	cosI = math.Abs(cosI)
	rs := ((etaT * cosI) - (etaI * cosT)) / ((etaT * cosI) + (etaI * cosT))
	rp := ((etaI * cosI) - (etaT * cosT)) / ((etaI * cosI) + (etaT * cosT))
	return (rs*rs + rp*rp) / 2
}
