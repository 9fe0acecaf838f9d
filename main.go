package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/df07/go-sdf-raytracer/pkg/output"
	"github.com/df07/go-sdf-raytracer/pkg/renderer"
	"github.com/df07/go-sdf-raytracer/pkg/scene"
)

// createScene builds a scene by name
func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "shapes":
		return scene.NewShapesScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'shapes'")
	out := flag.String("out", "out.ppm", "Output PPM file path")
	preview := flag.String("preview", "", "Optional preview image path (quarter resolution, format by extension)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = one per CPU)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("SDF Raytracer")
		fmt.Println("Usage: sdf-raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Four spheres (ivory, glass, red rubber, mirror) over a checkerboard")
		fmt.Println("  shapes  - Box, torus and mirror sphere over a checkerboard")
		return
	}

	fmt.Println("Starting SDF Raytracer...")

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	raytracer := renderer.NewRaytracer(selectedScene, renderer.DefaultWidth, renderer.DefaultHeight)
	raytracer.SetWorkers(*workers)

	framebuffer, stats := raytracer.RenderPass()
	fmt.Printf("Render completed in %v (%dx%d, %d workers)\n",
		stats.Elapsed, stats.Width, stats.Height, stats.Workers)

	if err := output.SavePPM(*out, framebuffer, stats.Width, stats.Height); err != nil {
		fmt.Printf("Error saving render: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", *out)

	if *preview != "" {
		if err := output.SavePreview(*preview, framebuffer, stats.Width, stats.Height); err != nil {
			fmt.Printf("Error saving preview: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Preview saved as %s\n", *preview)
	}
}
