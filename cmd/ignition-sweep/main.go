package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"

	"fallingsand/internal/core"
	"fallingsand/internal/sims/sand"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"
)

// paramSet is one point in the sweep over the fire tunables.
type paramSet struct {
	woodIgnite float64
	oilIgnite  float64
	fireDecay  float64
	smokeOut   float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("wood=%.2f oil=%.2f fireDecay=%.2f smoke=%.2f",
		p.woodIgnite, p.oilIgnite, p.fireDecay, p.smokeOut)
}

// sweepRow is the CSV record for one parameter set aggregated over seeds.
type sweepRow struct {
	WoodIgnite   float64 `csv:"wood_ignite_chance"`
	OilIgnite    float64 `csv:"oil_ignite_chance"`
	FireDecayMax float64 `csv:"fire_decay_max"`
	FireSmoke    float64 `csv:"fire_smoke_chance"`
	BurnedMean   float64 `csv:"wood_burned_mean"`
	BurnedStdDev float64 `csv:"wood_burned_stddev"`
	BurnoutMean  float64 `csv:"burnout_step_mean"`
}

const (
	gridW = 96
	gridH = 64
)

func main() {
	steps := flag.Int("steps", 400, "ticks to simulate per scenario")
	seeds := flag.Int("seeds", 8, "seeds to average per parameter set")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	out := flag.String("out", "ignition_sweep.csv", "CSV output path")
	flag.Parse()

	woodOptions := []float64{0.25, 0.5, 0.75}
	oilOptions := []float64{0.5, 0.75}
	decayOptions := []float64{0.1, 0.15, 0.2}
	smokeOptions := []float64{0.1, 0.2, 0.4}

	var sets []paramSet
	for _, wood := range woodOptions {
		for _, oil := range oilOptions {
			for _, decay := range decayOptions {
				for _, smoke := range smokeOptions {
					sets = append(sets, paramSet{
						woodIgnite: wood,
						oilIgnite:  oil,
						fireDecay:  decay,
						smokeOut:   smoke,
					})
				}
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d seeds, %d steps)\n",
		len(sets), *workers, *seeds, *steps)

	jobs := make(chan paramSet)
	results := make(chan sweepRow)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runSet(params, *seeds, *steps)
			}
		}()
	}

	go func() {
		for _, s := range sets {
			jobs <- s
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var rows []sweepRow
	for row := range results {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].BurnedMean > rows[j].BurnedMean
	})

	for i, row := range rows {
		if i >= 10 {
			break
		}
		fmt.Printf("%2d. wood=%.2f oil=%.2f decay=%.2f smoke=%.2f | burned %.3f ± %.3f, burnout @%.0f\n",
			i+1, row.WoodIgnite, row.OilIgnite, row.FireDecayMax, row.FireSmoke,
			row.BurnedMean, row.BurnedStdDev, row.BurnoutMean)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := gocsv.Marshal(rows, f); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
	fmt.Printf("Wrote %d rows to %s\n", len(rows), *out)
}

// runSet averages one parameter set over the requested seeds.
func runSet(ps paramSet, seeds, steps int) sweepRow {
	burned := make([]float64, 0, seeds)
	burnout := make([]float64, 0, seeds)
	for seed := 1; seed <= seeds; seed++ {
		b, out := runScenario(ps, int64(seed), steps)
		burned = append(burned, b)
		burnout = append(burnout, float64(out))
	}
	return sweepRow{
		WoodIgnite:   ps.woodIgnite,
		OilIgnite:    ps.oilIgnite,
		FireDecayMax: ps.fireDecay,
		FireSmoke:    ps.smokeOut,
		BurnedMean:   stat.Mean(burned, nil),
		BurnedStdDev: stat.StdDev(burned, nil),
		BurnoutMean:  stat.Mean(burnout, nil),
	}
}

// runScenario burns a wood slab with an oil pool at its flank and reports
// the fraction of wood consumed plus the step the last fire went out.
func runScenario(ps paramSet, seed int64, steps int) (float64, int) {
	p := sand.DefaultParams()
	p.WoodIgniteChance = ps.woodIgnite
	p.OilIgniteChance = ps.oilIgnite
	p.FireDecayMax = ps.fireDecay
	p.FireSmokeChance = ps.smokeOut

	g := sand.NewGridWithParams(gridW, gridH, p)
	for y := 0; y < 8; y++ {
		g.DrawStroke(8, y, 87, y, sand.Wood)
	}
	for y := 0; y < 4; y++ {
		g.DrawStroke(89, y, 94, y, sand.Oil)
	}
	g.DrawStroke(8, 8, 87, 8, sand.Fire)

	initialWood := countMaterial(g, sand.Wood)
	rng := core.NewRNG(seed)
	burnoutStep := steps
	for s := 0; s < steps; s++ {
		g.Step(rng)
		if countMaterial(g, sand.Fire)+countMaterial(g, sand.Flame) == 0 {
			burnoutStep = s + 1
			break
		}
	}

	remaining := countMaterial(g, sand.Wood)
	return float64(initialWood-remaining) / float64(initialWood), burnoutStep
}

func countMaterial(g *sand.Grid, m sand.Material) int {
	n := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if p, ok := g.Get(x, y); ok && p.Material == m {
				n++
			}
		}
	}
	return n
}
