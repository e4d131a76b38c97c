package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/renderer"
	"github.com/Mnajm6201/RealTimeRayTracer/pkg/scene"
)

func main() {
	width := flag.Int("width", 800, "Output width in pixels")
	height := flag.Int("height", 600, "Output height in pixels")
	samples := flag.Int("samples", 2, "Anti-aliasing samples per pixel (1-8)")
	frames := flag.Int("frames", 1, "Number of animation frames to render")
	step := flag.Float64("step", 1.0/60.0, "Animation time step per frame in seconds")
	configName := flag.String("config", "enhanced", "Tracing config: 'enhanced' or 'basic'")
	outputDir := flag.String("output", "output", "Output directory for PNG frames")
	flag.Parse()

	var config renderer.Config
	switch *configName {
	case "basic":
		config = renderer.BasicConfig()
	case "enhanced":
		config = renderer.EnhancedConfig()
	default:
		fmt.Printf("Unknown config %q, using enhanced\n", *configName)
		config = renderer.EnhancedConfig()
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	r := renderer.NewRenderer(scene.NewDefaultScene(), config)
	r.SetSamples(*samples)

	// Same default viewpoint as the interactive viewer: straight down -z
	// from five units out
	cam := renderer.CameraState{Distance: 5}

	fmt.Printf("Rendering %d frame(s) at %dx%d, %d sample(s) per pixel...\n",
		*frames, *width, *height, r.Samples())

	for frame := 0; frame < *frames; frame++ {
		start := time.Now()
		buffer := r.RenderFrame(*step, cam, *width, *height)
		elapsed := time.Since(start)

		img := frameToImage(buffer, *width, *height)
		path := filepath.Join(*outputDir, fmt.Sprintf("frame_%04d.png", frame))
		if err := writePNG(path, img); err != nil {
			fmt.Printf("Error writing %s: %v\n", path, err)
			os.Exit(1)
		}

		fmt.Printf("Frame %d: %v (%s)\n", frame, elapsed, path)
	}
}

// frameToImage wraps a row-major RGB frame buffer in an image.RGBA
func frameToImage(buffer []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src := (y*width + x) * 3
			dst := y*img.Stride + x*4
			img.Pix[dst] = buffer[src]
			img.Pix[dst+1] = buffer[src+1]
			img.Pix[dst+2] = buffer[src+2]
			img.Pix[dst+3] = 0xff
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}
