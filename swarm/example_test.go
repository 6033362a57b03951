// File: swarm/example_test.go
package swarm_test

import (
	"fmt"

	"github.com/Lufajardo/antgrid/grid"
	"github.com/Lufajardo/antgrid/swarm"
)

////////////////////////////////////////////////////////////////////////////////
// Example: field dynamics
////////////////////////////////////////////////////////////////////////////////

// ExampleWorld demonstrates the pheromone field contract on a 3×3 world:
// deposits overwrite, evaporation halves, zero is a fixed point.
//
// Scenario:
//
//   - One site at the center (1,1), decay factor 0.5.
//   - Deposit 9 at the corner, read it back, evaporate, read 4.5.
func ExampleWorld() {
	s, _ := grid.NewSurface(3, 3)
	w, _ := swarm.NewWorld(s, swarm.WithDecay(0.5))
	_ = w.AddSite(grid.Position{Row: 1, Col: 1})

	corner := grid.Position{Row: 0, Col: 0}
	_ = w.Deposit(corner, 9)
	v, _ := w.Pheromone(corner)
	fmt.Println("after deposit:", v)

	_ = w.Evaporate()
	v, _ = w.Pheromone(corner)
	fmt.Println("after evaporation:", v)

	// Output:
	// after deposit: 9
	// after evaporation: 4.5
}

////////////////////////////////////////////////////////////////////////////////
// Example: population lifecycle
////////////////////////////////////////////////////////////////////////////////

// ExampleWorld_Spawn walks the lifecycle: spawn two ants at the nest,
// remove one, and observe membership as the only life/death signal.
func ExampleWorld_Spawn() {
	s, _ := grid.NewSurface(3, 3)
	w, _ := swarm.NewWorld(s)
	_ = w.AddSite(grid.Position{Row: 1, Col: 1})

	a, _ := w.Spawn()
	b, _ := w.Spawn()
	fmt.Println("population:", w.Population(), "at", a.Pos, b.Pos)

	_ = w.Remove(a)
	fmt.Println("population:", w.Population())

	err := w.Remove(a) // double kill is reported
	fmt.Println("double remove:", err != nil)

	// Output:
	// population: 2 at (1,1) (1,1)
	// population: 1
	// double remove: true
}
