package sand

import (
	"image/color"

	"fallingsand/internal/core"
)

// World adapts a particle grid to the framework Sim contract and exposes
// the overlay parameter controls.
type World struct {
	cfg     Config
	grid    *Grid
	rng     *core.RNG
	display []uint8
}

// New returns a falling sand world with the provided dimensions using
// defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	w := &World{
		cfg:     cfg,
		grid:    NewGridWithParams(cfg.Width, cfg.Height, cfg.Params),
		rng:     core.NewRNG(cfg.Seed),
		display: make([]uint8, cfg.Width*cfg.Height),
	}
	w.applyScenario()
	w.rebuildDisplay()
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size {
	return core.Size{W: w.grid.Width(), H: w.grid.Height()}
}

// Cells exposes the palette-index display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Grid exposes the particle grid.
func (w *World) Grid() *Grid { return w.grid }

// Palette exposes the render palette.
func (w *World) Palette() []color.RGBA { return Palette() }

// Reset clears the grid, reseeds the RNG (a zero seed falls back to the
// configured one), and reapplies the scenario.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.grid.Clear()
	w.applyScenario()
	w.rebuildDisplay()
}

// Step advances the simulation by exactly one tick.
func (w *World) Step() {
	w.grid.Step(w.rng)
	w.rebuildDisplay()
}

// Clear empties the grid without touching the RNG stream.
func (w *World) Clear() {
	w.grid.Clear()
	w.rebuildDisplay()
}

// PaintStroke rasterizes a drag gesture into the grid and refreshes the
// display buffer so paints show up while paused.
func (w *World) PaintStroke(x1, y1, x2, y2 int, m Material, radius int) {
	w.grid.DrawStrokeRadius(x1, y1, x2, y2, m, radius)
	w.rebuildDisplay()
}

func (w *World) applyScenario() {
	for _, s := range w.cfg.Scenario.Strokes {
		m, ok := MaterialFromName(s.Material)
		if !ok {
			continue
		}
		w.grid.DrawStrokeRadius(s.From[0], s.From[1], s.To[0], s.To[1], m, s.Radius)
	}
}

func (w *World) rebuildDisplay() {
	for i := range w.grid.cells {
		w.display[i] = w.grid.cells[i].ColorIdx
	}
}

// ParameterControls lists the overlay-adjustable behavior tunables.
func (w *World) ParameterControls() []core.ParameterControl {
	ctl := func(key, label string, step float64) core.ParameterControl {
		return core.ParameterControl{
			Key:    key,
			Label:  label,
			Type:   core.ParamTypeFloat,
			Step:   step,
			Min:    0,
			Max:    1,
			HasMin: true,
			HasMax: true,
		}
	}
	return []core.ParameterControl{
		ctl("smoke_decay_max", "Smoke decay", 0.01),
		ctl("fire_decay_max", "Fire decay", 0.01),
		ctl("flame_decay_max", "Flame decay", 0.01),
		ctl("oil_ignite_chance", "Oil ignite", 0.05),
		ctl("wood_ignite_chance", "Wood ignite", 0.05),
		ctl("fire_smoke_chance", "Fire to smoke", 0.05),
	}
}

// FloatParameter reports the current value of an overlay control.
func (w *World) FloatParameter(key string) (float64, bool) {
	p := w.grid.Params()
	switch key {
	case "smoke_decay_max":
		return p.SmokeDecayMax, true
	case "fire_decay_max":
		return p.FireDecayMax, true
	case "flame_decay_max":
		return p.FlameDecayMax, true
	case "oil_ignite_chance":
		return p.OilIgniteChance, true
	case "wood_ignite_chance":
		return p.WoodIgniteChance, true
	case "fire_smoke_chance":
		return p.FireSmokeChance, true
	}
	return 0, false
}

// SetFloatParameter clamps and applies an overlay adjustment.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	p := w.grid.Params()
	switch key {
	case "smoke_decay_max":
		p.SmokeDecayMax = value
	case "fire_decay_max":
		p.FireDecayMax = value
	case "flame_decay_max":
		p.FlameDecayMax = value
	case "oil_ignite_chance":
		p.OilIgniteChance = value
	case "wood_ignite_chance":
		p.WoodIgniteChance = value
	case "fire_smoke_chance":
		p.FireSmokeChance = value
	default:
		return false
	}
	w.cfg.Params = p
	w.grid.SetParams(p)
	return true
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
