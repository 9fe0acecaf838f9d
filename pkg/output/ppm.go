// Package output serializes rendered framebuffers to image files.
package output

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/df07/go-sdf-raytracer/pkg/core"
)

// normalize tone-maps a pixel: if any channel exceeds 1, all three are scaled
// down so the maximum is exactly 1, preserving hue.
func normalize(c core.Vec3) core.Vec3 {
	if maxChan := c.MaxComponent(); maxChan > 1 {
		return c.Multiply(1 / maxChan)
	}
	return c
}

// quantize converts a [0,1] channel to an output byte
func quantize(v float64) byte {
	return byte(math.Round(255 * math.Max(0, math.Min(1, v))))
}

// WritePPM encodes the framebuffer as a binary PPM (P6): the header
// "P6\n<width> <height>\n255\n" followed by one byte per channel, row-major,
// top row first.
func WritePPM(w io.Writer, framebuffer []core.Vec3, width, height int) error {
	if len(framebuffer) != width*height {
		return fmt.Errorf("output: framebuffer has %d pixels, want %d (%dx%d)",
			len(framebuffer), width*height, width, height)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "P6\n%d %d\n255\n", width, height)
	for _, pixel := range framebuffer {
		pixel = normalize(pixel)
		buf.WriteByte(quantize(pixel.X))
		buf.WriteByte(quantize(pixel.Y))
		buf.WriteByte(quantize(pixel.Z))
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("output: writing PPM: %w", err)
	}
	return nil
}

// SavePPM writes the framebuffer to path as a binary PPM file
func SavePPM(path string, framebuffer []core.Vec3, width, height int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: creating %s: %w", path, err)
	}
	defer file.Close()

	if err := WritePPM(file, framebuffer, width, height); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("output: closing %s: %w", path, err)
	}
	return nil
}
