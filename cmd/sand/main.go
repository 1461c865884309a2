//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"fallingsand/internal/app"
	"fallingsand/internal/core"
	"fallingsand/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var world *sand.World
	seed := cfg.Seed
	if cfg.File != "" {
		simCfg, err := sand.LoadFile(cfg.File)
		if err != nil {
			log.Fatal(err)
		}
		world = sand.NewWithConfig(simCfg)
		seed = simCfg.Seed
	} else {
		factory, ok := core.Sims()[cfg.Sim]
		if !ok {
			log.Fatalf("unknown sim %q", cfg.Sim)
		}
		sim := factory(map[string]string{
			"w":    strconv.Itoa(cfg.Width),
			"h":    strconv.Itoa(cfg.Height),
			"seed": strconv.FormatInt(cfg.Seed, 10),
		})
		world, ok = sim.(*sand.World)
		if !ok {
			log.Fatalf("sim %q does not support painting", cfg.Sim)
		}
	}

	game := app.New(world, cfg.Scale, cfg.TPS, seed)
	size := world.Size()

	ebiten.SetWindowTitle("falling " + world.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
