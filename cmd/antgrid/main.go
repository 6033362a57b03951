// Command antgrid runs a pheromone swarm on a blank surface and reports
// what it painted: field statistics on stdout, an optional HTML heatmap,
// and the strongest corridor from the nest to the hottest cell.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"k8s.io/klog/v2"

	"github.com/Lufajardo/antgrid/fieldstats"
	"github.com/Lufajardo/antgrid/grid"
	"github.com/Lufajardo/antgrid/render"
	"github.com/Lufajardo/antgrid/swarm"
	"github.com/Lufajardo/antgrid/trail"
)

var (
	flagRows    = flag.Int("rows", 64, "surface rows")
	flagCols    = flag.Int("cols", 64, "surface cols")
	flagAnts    = flag.Int("ants", 16, "number of agents to spawn")
	flagTicks   = flag.Int("ticks", 200, "number of simulation ticks")
	flagSeed    = flag.Int64("seed", 1, "RNG seed; identical seeds replay identical runs")
	flagDecay   = flag.Float64("decay", 0.9, "pheromone retained per tick, in [0,1)")
	flagDeposit = flag.Float64("deposit", 1.0, "pheromone written per visit")
	flagSite    = flag.String("site", "", `nest position as "row,col" (default: center)`)
	flagOut     = flag.String("out", "", "write the field heatmap to this HTML file")
	flagEvery   = flag.Int("log-every", 50, "log progress every N ticks")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	if err := run(); err != nil {
		klog.Exitf("antgrid: %v", err)
	}
}

func run() error {
	s, err := grid.NewSurface(*flagRows, *flagCols)
	if err != nil {
		return err
	}
	w, err := swarm.NewWorld(s,
		swarm.WithSeed(*flagSeed),
		swarm.WithDecay(*flagDecay),
		swarm.WithDeposit(*flagDeposit),
	)
	if err != nil {
		return err
	}

	nest := grid.Position{Row: *flagRows / 2, Col: *flagCols / 2}
	if *flagSite != "" {
		if nest, err = parsePos(*flagSite); err != nil {
			return err
		}
	}
	if err = w.AddSite(nest); err != nil {
		return err
	}
	for i := 0; i < *flagAnts; i++ {
		if _, err = w.Spawn(); err != nil {
			return err
		}
	}
	klog.Infof("world ready: %dx%d surface, %d ants at %s, decay=%.3g deposit=%.3g seed=%d",
		*flagRows, *flagCols, w.Population(), nest, *flagDecay, *flagDeposit, *flagSeed)

	// Tick loop with periodic progress.
	every := *flagEvery
	if every <= 0 {
		every = 50
	}
	for done := 0; done < *flagTicks; {
		n := every
		if rest := *flagTicks - done; rest < n {
			n = rest
		}
		if err = w.Run(n); err != nil {
			return err
		}
		done += n

		sum, serr := fieldstats.Summarize(s, swarm.PheromoneLayer)
		if serr != nil {
			return serr
		}
		klog.V(1).Infof("tick %d: %s", w.Tick(), sum)
	}

	// Final report.
	sum, err := fieldstats.Summarize(s, swarm.PheromoneLayer)
	if err != nil {
		return err
	}
	fmt.Println(sum)

	// Strongest corridor from the nest to the hottest cell.
	if hot, ok := hottest(s); ok && hot != nest {
		path, cost, terr := trail.Strongest(s, swarm.PheromoneLayer, nest, hot)
		if terr != nil {
			return terr
		}
		klog.Infof("strongest corridor %s → %s: %d cells, cost %.3f", nest, hot, len(path), cost)
	}

	if *flagOut != "" {
		if err = writeHeatmap(s, *flagOut); err != nil {
			return err
		}
		klog.Infof("heatmap written to %s", *flagOut)
	}

	return nil
}

// hottest locates the maximum pheromone cell; ok is false on a blank field.
func hottest(s *grid.Surface) (grid.Position, bool) {
	cells, err := s.LayerSnapshot(swarm.PheromoneLayer)
	if err != nil {
		return grid.Position{}, false
	}
	var best grid.Position
	bestV := 0.0
	for r := range cells {
		for c := range cells[r] {
			if cells[r][c] > bestV {
				bestV = cells[r][c]
				best = grid.Position{Row: r, Col: c}
			}
		}
	}

	return best, bestV > 0
}

func writeHeatmap(s *grid.Surface, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	subtitle := fmt.Sprintf("ticks=%d decay=%.3g deposit=%.3g seed=%d",
		*flagTicks, *flagDecay, *flagDeposit, *flagSeed)

	return render.WriteHTML(f, s, swarm.PheromoneLayer,
		render.WithTitle("antgrid pheromone field", subtitle))
}

// parsePos parses "row,col" into a Position.
func parsePos(raw string) (grid.Position, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return grid.Position{}, fmt.Errorf("antgrid: bad position %q, want \"row,col\"", raw)
	}
	var p grid.Position
	if _, err := fmt.Sscanf(raw, "%d,%d", &p.Row, &p.Col); err != nil {
		return grid.Position{}, fmt.Errorf("antgrid: bad position %q: %w", raw, err)
	}

	return p, nil
}
