package swarm_test

import (
	"testing"

	"github.com/Lufajardo/antgrid/grid"
	"github.com/Lufajardo/antgrid/swarm"
)

// BenchmarkStep measures one full tick (move + evaporate) for 100 ants
// on a 100×100 surface.
// Complexity: O(agents×d + rows×cols) per tick.
func BenchmarkStep(b *testing.B) {
	s, err := grid.NewSurface(100, 100)
	if err != nil {
		b.Fatalf("setup NewSurface failed: %v", err)
	}
	w, err := swarm.NewWorld(s, swarm.WithSeed(42), swarm.WithDecay(0.9))
	if err != nil {
		b.Fatalf("setup NewWorld failed: %v", err)
	}
	if err = w.AddSite(grid.Position{Row: 50, Col: 50}); err != nil {
		b.Fatalf("setup AddSite failed: %v", err)
	}
	for i := 0; i < 100; i++ {
		if _, err = w.Spawn(); err != nil {
			b.Fatalf("setup Spawn failed: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = w.Step(); err != nil {
			b.Fatalf("Step failed: %v", err)
		}
	}
}

// BenchmarkMove isolates a single agent move on an established field.
func BenchmarkMove(b *testing.B) {
	s, err := grid.NewSurface(64, 64)
	if err != nil {
		b.Fatalf("setup NewSurface failed: %v", err)
	}
	w, err := swarm.NewWorld(s, swarm.WithSeed(42))
	if err != nil {
		b.Fatalf("setup NewWorld failed: %v", err)
	}
	if err = w.AddSite(grid.Position{Row: 32, Col: 32}); err != nil {
		b.Fatalf("setup AddSite failed: %v", err)
	}
	a, err := w.Spawn()
	if err != nil {
		b.Fatalf("setup Spawn failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = w.Move(a); err != nil {
			b.Fatalf("Move failed: %v", err)
		}
	}
}
