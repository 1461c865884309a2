//go:build ebiten

package ui

import (
	"fmt"
	"strings"

	"fallingsand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the status line and the parameter panel on top of the
// simulation view and owns the keyboard handling for parameter tuning.
type Overlay struct {
	sim      core.Sim
	controls []core.ParameterControl
	selected int
	visible  bool
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim, visible: true}
	if prov, ok := sim.(core.ParameterControlsProvider); ok {
		o.controls = prov.ParameterControls()
	}
	return o
}

// Update processes the overlay key bindings: Tab toggles the panel, up and
// down select a control, minus and equals adjust it by its step.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
	if len(o.controls) == 0 || !o.visible {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		o.selected = (o.selected + 1) % len(o.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		o.selected = (o.selected + len(o.controls) - 1) % len(o.controls)
	}
	direction := 0.0
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		direction = -1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		direction = 1
	}
	if direction != 0 {
		o.adjust(o.controls[o.selected], direction)
	}
}

func (o *Overlay) adjust(ctl core.ParameterControl, direction float64) {
	getter, okGet := o.sim.(core.FloatParameterGetter)
	setter, okSet := o.sim.(core.FloatParameterSetter)
	if !okGet || !okSet {
		return
	}
	cur, ok := getter.FloatParameter(ctl.Key)
	if !ok {
		return
	}
	next := cur + direction*ctl.Step
	if ctl.HasMin && next < ctl.Min {
		next = ctl.Min
	}
	if ctl.HasMax && next > ctl.Max {
		next = ctl.Max
	}
	setter.SetFloatParameter(ctl.Key, next)
}

// Draw renders the status line and, when visible, the parameter panel.
func (o *Overlay) Draw(screen *ebiten.Image, status string) {
	ebitenutil.DebugPrintAt(screen, status, 4, 4)
	if !o.visible || len(o.controls) == 0 {
		return
	}
	getter, _ := o.sim.(core.FloatParameterGetter)
	var b strings.Builder
	for i, ctl := range o.controls {
		marker := "  "
		if i == o.selected {
			marker = "> "
		}
		val := 0.0
		if getter != nil {
			val, _ = getter.FloatParameter(ctl.Key)
		}
		fmt.Fprintf(&b, "%s%-14s %.2f\n", marker, ctl.Label, val)
	}
	ebitenutil.DebugPrintAt(screen, b.String(), 4, 24)
}
