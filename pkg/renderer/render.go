package renderer

import (
	"fmt"

	"github.com/df07/go-sdf-raytracer/pkg/geometry"
	"github.com/df07/go-sdf-raytracer/pkg/output"
	"github.com/df07/go-sdf-raytracer/pkg/scene"
)

// Render renders the given surfaces and lights at the default resolution and
// writes the result to outPath as a binary PPM.
func Render(surfaces []geometry.Surface, lights []scene.Light, outPath string) error {
	rt := NewRaytracer(scene.New(surfaces, lights), DefaultWidth, DefaultHeight)
	framebuffer, _ := rt.RenderPass()
	if err := output.SavePPM(outPath, framebuffer, DefaultWidth, DefaultHeight); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
