package output

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/df07/go-sdf-raytracer/pkg/core"
)

// ToImage converts a framebuffer into an image, applying the same
// hue-preserving normalization as the PPM writer.
func ToImage(framebuffer []core.Vec3, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			pixel := normalize(framebuffer[j*width+i])
			offset := img.PixOffset(i, j)
			img.Pix[offset+0] = quantize(pixel.X)
			img.Pix[offset+1] = quantize(pixel.Y)
			img.Pix[offset+2] = quantize(pixel.Z)
			img.Pix[offset+3] = 255
		}
	}
	return img
}

// SavePreview writes a quarter-resolution preview of the framebuffer to path.
// The image format follows the file extension.
func SavePreview(path string, framebuffer []core.Vec3, width, height int) error {
	if len(framebuffer) != width*height {
		return fmt.Errorf("output: framebuffer has %d pixels, want %d (%dx%d)",
			len(framebuffer), width*height, width, height)
	}

	img := ToImage(framebuffer, width, height)
	preview := resize.Resize(uint(width/4), uint(height/4), img, resize.Bilinear)
	if err := imaging.Save(preview, path); err != nil {
		return fmt.Errorf("output: saving preview %s: %w", path, err)
	}
	return nil
}
