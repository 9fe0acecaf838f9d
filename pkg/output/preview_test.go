package output

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-sdf-raytracer/pkg/core"
)

func TestToImage_PixelValues(t *testing.T) {
	framebuffer := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(2, 2, 2), // hot pixel normalizes to white
	}

	img := ToImage(framebuffer, 2, 2)

	tests := []struct {
		name     string
		x, y     int
		expected [4]uint8
	}{
		{"red", 0, 0, [4]uint8{255, 0, 0, 255}},
		{"green", 1, 0, [4]uint8{0, 255, 0, 255}},
		{"blue", 0, 1, [4]uint8{0, 0, 255, 255}},
		{"normalized white", 1, 1, [4]uint8{255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset := img.PixOffset(tt.x, tt.y)
			got := [4]uint8{img.Pix[offset], img.Pix[offset+1], img.Pix[offset+2], img.Pix[offset+3]}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSavePreview_WritesQuarterResolutionPNG(t *testing.T) {
	width, height := 16, 8
	framebuffer := make([]core.Vec3, width*height)
	for i := range framebuffer {
		framebuffer[i] = core.NewVec3(0.2, 0.7, 0.8)
	}

	path := filepath.Join(t.TempDir(), "preview.png")
	if err := SavePreview(path, framebuffer, width, height); err != nil {
		t.Fatalf("Expected save to succeed, got %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Expected preview file to exist, got %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Expected a decodable PNG, got %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != width/4 || bounds.Dy() != height/4 {
		t.Errorf("Expected %dx%d preview, got %dx%d", width/4, height/4, bounds.Dx(), bounds.Dy())
	}
}

func TestSavePreview_SizeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")
	if err := SavePreview(path, make([]core.Vec3, 3), 2, 2); err == nil {
		t.Error("Expected an error for a mismatched framebuffer size")
	}
}
