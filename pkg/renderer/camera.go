package renderer

import (
	"math"

	"github.com/df07/go-sdf-raytracer/pkg/core"
)

// Camera is a pinhole camera at the origin looking down -Z
type Camera struct {
	width  int
	height int
	fov    float64 // Vertical field of view in radians
}

// NewCamera creates a pinhole camera for the given image size and field of view
func NewCamera(width, height int, fov float64) *Camera {
	return &Camera{width: width, height: height, fov: fov}
}

// GetRay generates the primary ray through the center of pixel (i, j), with
// j counted from the top row. The direction is unit length.
func (c *Camera) GetRay(i, j int) core.Ray {
	dirX := (float64(i) + 0.5) - float64(c.width)/2
	dirY := -(float64(j) + 0.5) + float64(c.height)/2 // flips the image vertically
	dirZ := -float64(c.height) / (2 * math.Tan(c.fov/2))
	return core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(dirX, dirY, dirZ).Normalize())
}
