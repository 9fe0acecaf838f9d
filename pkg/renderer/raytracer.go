package renderer

import (
	"math"
	"runtime"
	"time"

	"github.com/df07/go-sdf-raytracer/pkg/core"
	"github.com/df07/go-sdf-raytracer/pkg/scene"
)

// Default render parameters
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
	DefaultFOV    = math.Pi / 3
)

// Raytracer renders a scene into a framebuffer of linear RGB values,
// row-major, top row first.
type Raytracer struct {
	scene      *scene.Scene
	camera     *Camera
	width      int
	height     int
	numWorkers int
}

// NewRaytracer creates a new raytracer for the given scene and image size
func NewRaytracer(sc *scene.Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:      sc,
		camera:     NewCamera(width, height, DefaultFOV),
		width:      width,
		height:     height,
		numWorkers: runtime.NumCPU(),
	}
}

// SetWorkers overrides the number of render workers; n <= 0 keeps one per CPU
func (rt *Raytracer) SetWorkers(n int) {
	if n > 0 {
		rt.numWorkers = n
	}
}

// RenderPass renders every pixel once and returns the framebuffer along with
// render statistics. The output is deterministic regardless of worker count.
func (rt *Raytracer) RenderPass() ([]core.Vec3, RenderStats) {
	start := time.Now()
	framebuffer := make([]core.Vec3, rt.width*rt.height)

	pool := NewWorkerPool(rt.numWorkers, rt.height)
	pool.Start(func(row int) int {
		return rt.renderRow(row, framebuffer)
	})
	for j := 0; j < rt.height; j++ {
		pool.SubmitTask(RowTask{Row: j})
	}
	pool.Stop()

	stats := RenderStats{
		Width:   rt.width,
		Height:  rt.height,
		Workers: pool.NumWorkers(),
	}
	for result := range pool.Results() {
		stats.TotalPixels += result.Pixels
	}
	stats.Elapsed = time.Since(start)

	return framebuffer, stats
}

// renderRow casts one primary ray per pixel of row j into the framebuffer
func (rt *Raytracer) renderRow(j int, framebuffer []core.Vec3) int {
	for i := 0; i < rt.width; i++ {
		ray := rt.camera.GetRay(i, j)
		framebuffer[j*rt.width+i] = Shade(ray.Origin, ray.Direction, rt.scene, 0)
	}
	return rt.width
}
