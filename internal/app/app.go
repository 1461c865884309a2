//go:build ebiten

package app

import (
	"fmt"
	"time"

	"fallingsand/internal/core"
	"fallingsand/internal/render"
	"fallingsand/internal/sims/sand"
	"fallingsand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the falling sand world to the ebiten.Game interface. Frame
// pacing, keyboard and mouse polling, and stroke forwarding live here; the
// simulation core never sees the window.
type Game struct {
	world   *sand.World
	painter *render.GridPainter
	overlay *ui.Overlay
	ticker  *core.FixedStep

	scale    int
	seed     int64
	paused   bool
	tickOnce bool

	material sand.Material
	brush    int

	prevX, prevY int
	stroking     bool
}

// New constructs a Game for the provided world.
func New(world *sand.World, scale, tps int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := world.Size()
	return &Game{
		world:    world,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(world),
		ticker:   core.NewFixedStep(tps),
		scale:    scale,
		seed:     seed,
		material: sand.Sand,
		brush:    1,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation at the
// configured tick rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.material = sand.NextMaterial(g.material)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.material = sand.PrevMaterial(g.material)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyComma) {
		g.ticker.SetTPS(g.ticker.TPS() / 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		g.ticker.SetTPS(g.ticker.TPS() * 2)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.brush += int(wy)
		if g.brush < 1 {
			g.brush = 1
		}
		if g.brush > 16 {
			g.brush = 16
		}
	}

	g.handleStroke()
	g.overlay.Update()

	if (g.ticker.ShouldStep() && !g.paused) || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

// handleStroke rasterizes the mouse drag since the previous frame into the
// grid: left button paints the selected material, right button erases.
func (g *Game) handleStroke() {
	mx, my := ebiten.CursorPosition()
	size := g.world.Size()
	// Screen y grows downward; the grid origin is the bottom left.
	cx := mx / g.scale
	cy := size.H - 1 - my/g.scale

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if left || right {
		m := g.material
		if right {
			m = sand.Empty
		}
		if !g.stroking {
			g.prevX, g.prevY = cx, cy
		}
		g.world.PaintStroke(g.prevX, g.prevY, cx, cy, m, g.brush-1)
		g.stroking = true
	} else {
		g.stroking = false
	}
	g.prevX, g.prevY = cx, cy
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), g.world.Palette(), g.scale)
	status := fmt.Sprintf("fps %.0f  tps %d  material %s  brush %d",
		ebiten.ActualFPS(), g.ticker.TPS(), g.material, g.brush)
	if g.paused {
		status += "  paused"
	}
	g.overlay.Draw(screen, status)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W * g.scale, s.H * g.scale
}
