package renderer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-sdf-raytracer/pkg/core"
	"github.com/df07/go-sdf-raytracer/pkg/geometry"
	"github.com/df07/go-sdf-raytracer/pkg/material"
	"github.com/df07/go-sdf-raytracer/pkg/scene"
)

func TestRender_WritesPPM(t *testing.T) {
	if testing.Short() {
		t.Skip("full-resolution render")
	}

	surfaces := []geometry.Surface{
		geometry.NewSphere(core.NewVec3(-3, 0, -16), 2, material.Ivory()),
	}
	lights := []scene.Light{
		scene.NewLight(core.NewVec3(-20, 20, 20), 1.5),
	}

	path := filepath.Join(t.TempDir(), "out.ppm")
	if err := Render(surfaces, lights, path); err != nil {
		t.Fatalf("Expected render to succeed, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected output file, got %v", err)
	}
	header := "P6\n1024 768\n255\n"
	if !strings.HasPrefix(string(data[:len(header)]), header) {
		t.Errorf("Expected header %q, got %q", header, string(data[:len(header)]))
	}
	if len(data) != len(header)+1024*768*3 {
		t.Errorf("Expected %d bytes, got %d", len(header)+1024*768*3, len(data))
	}
}

func TestRender_BadPathSurfacesError(t *testing.T) {
	if testing.Short() {
		t.Skip("full-resolution render")
	}

	err := Render(nil, nil, "/nonexistent-dir/out.ppm")
	if err == nil {
		t.Error("Expected an error for an unwritable output path")
	}
}
