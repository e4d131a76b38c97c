package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/renderer"
	"github.com/Mnajm6201/RealTimeRayTracer/pkg/scene"
)

const (
	windowWidth  = 800
	windowHeight = 600

	// The tracer is CPU-bound, so render at a fraction of the window size
	// and let ebiten scale up
	renderScale = 4

	minDistance = 1.0
	maxDistance = 20.0

	orbitKeyStep   = 0.05 // radians per tick while a key is held
	orbitMouseStep = 0.01 // radians per cursor pixel while dragging
	zoomStep       = 0.5  // distance units per wheel notch
)

// Game is the interactive host: it owns the window, translates input into
// orbit camera state, and presents each rendered frame.
type Game struct {
	renderer *renderer.Renderer
	cam      renderer.CameraState

	width, height int
	rgba          []byte
	last          time.Time

	cursorX, cursorY int
	frames           int
	fpsWindow        time.Time
}

func NewGame() *Game {
	r := renderer.NewRenderer(scene.NewDefaultScene(), renderer.EnhancedConfig())
	r.SetSamples(2)

	now := time.Now()
	return &Game{
		renderer:  r,
		cam:       renderer.CameraState{Distance: 5},
		last:      now,
		fpsWindow: now,
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// Keyboard orbit
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		g.cam.AngleY += orbitKeyStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		g.cam.AngleY -= orbitKeyStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.cam.AngleX -= orbitKeyStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.cam.AngleX += orbitKeyStep
	}

	// Mouse-drag orbit
	cx, cy := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.cam.AngleX += float64(cx-g.cursorX) * orbitMouseStep
		g.cam.AngleY += float64(cy-g.cursorY) * orbitMouseStep
	}
	g.cursorX, g.cursorY = cx, cy

	// Wheel zoom, clamped before it ever reaches the renderer
	_, wheelY := ebiten.Wheel()
	g.cam.Distance -= wheelY * zoomStep
	if g.cam.Distance < minDistance {
		g.cam.Distance = minDistance
	}
	if g.cam.Distance > maxDistance {
		g.cam.Distance = maxDistance
	}

	// Anti-aliasing quality
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.renderer.SetSamples(g.renderer.Samples() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.renderer.SetSamples(g.renderer.Samples() - 1)
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	now := time.Now()
	dt := now.Sub(g.last).Seconds()
	g.last = now

	buffer := g.renderer.RenderFrame(dt, g.cam, g.width, g.height)

	if len(g.rgba) != g.width*g.height*4 {
		g.rgba = make([]byte, g.width*g.height*4)
	}
	for i := 0; i < g.width*g.height; i++ {
		g.rgba[i*4] = buffer[i*3]
		g.rgba[i*4+1] = buffer[i*3+1]
		g.rgba[i*4+2] = buffer[i*3+2]
		g.rgba[i*4+3] = 0xff
	}
	screen.WritePixels(g.rgba)

	g.frames++
	if now.Sub(g.fpsWindow) >= time.Second {
		fps := float64(g.frames) / now.Sub(g.fpsWindow).Seconds()
		ebiten.SetWindowTitle(fmt.Sprintf("Real-Time Ray Tracer | %.1f FPS | %d samples",
			fps, g.renderer.Samples()))
		g.frames = 0
		g.fpsWindow = now
	}
}

// Layout renders at a fraction of the window size; resizing the window
// resizes the frame buffer on the next render call.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width = outsideWidth / renderScale
	g.height = outsideHeight / renderScale
	if g.width < 1 {
		g.width = 1
	}
	if g.height < 1 {
		g.height = 1
	}
	return g.width, g.height
}

func main() {
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Real-Time Ray Tracer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	fmt.Println("Controls:")
	fmt.Println("- Mouse drag / WASD: rotate camera")
	fmt.Println("- Scroll: zoom in/out")
	fmt.Println("- +/-: anti-aliasing samples")
	fmt.Println("- ESC: exit")

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
