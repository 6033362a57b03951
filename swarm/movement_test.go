package swarm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lufajardo/antgrid/grid"
	"github.com/Lufajardo/antgrid/swarm"
)

//----------------------------------------------------------------------------//
// Move
//----------------------------------------------------------------------------//

func TestMove_UnknownAgent(t *testing.T) {
	w := newWorld3x3(t)
	other := newWorld3x3(t)
	foreign, err := other.Spawn()
	require.NoError(t, err)

	assert.ErrorIs(t, w.Move(foreign), swarm.ErrUnknownAgent)
	assert.ErrorIs(t, w.Move(nil), swarm.ErrUnknownAgent)
}

func TestMove_NoNeighborsOnDegenerateGrid(t *testing.T) {
	s, err := grid.NewSurface(1, 1)
	require.NoError(t, err)
	w, err := swarm.NewWorld(s)
	require.NoError(t, err)
	require.NoError(t, w.AddSite(grid.Position{Row: 0, Col: 0}))
	a, err := w.Spawn()
	require.NoError(t, err)

	err = w.Move(a)
	assert.ErrorIs(t, err, swarm.ErrNoNeighbors)
	// Reported, not fatal: the agent stays put and stays alive.
	assert.Equal(t, grid.Position{Row: 0, Col: 0}, a.Pos)
	assert.Equal(t, 1, w.Population())
}

func TestMove_StepsToNeighborAndDeposits(t *testing.T) {
	w := newWorld3x3(t, swarm.WithSeed(3))
	a, err := w.Spawn()
	require.NoError(t, err)
	from := a.Pos

	require.NoError(t, w.Move(a))
	assert.NotEqual(t, from, a.Pos)
	assert.Contains(t, w.Neighbors(from), a.Pos)

	v, err := w.Pheromone(a.Pos)
	require.NoError(t, err)
	assert.Equal(t, swarm.DefaultDeposit, v)
}

// TestMove_FollowsSingleScentedNeighbor paints exactly one neighbor and
// leaves the rest at zero: the roulette wheel must land there for any
// seed, because zero-weight candidates hold no span on the wheel.
func TestMove_FollowsSingleScentedNeighbor(t *testing.T) {
	for _, seed := range []int64{1, 2, 42, 1337} {
		w := newWorld3x3(t, swarm.WithSeed(seed))
		a, err := w.Spawn()
		require.NoError(t, err)

		target := grid.Position{Row: 0, Col: 2}
		require.NoError(t, w.Deposit(target, 50))

		require.NoError(t, w.Move(a))
		assert.Equalf(t, target, a.Pos, "seed %d", seed)
	}
}

// TestMove_ProportionalBias runs many single moves off a fresh center
// cell with one neighbor four times as scented as another and checks the
// empirical ratio roughly follows the weights.
func TestMove_ProportionalBias(t *testing.T) {
	heavy := grid.Position{Row: 0, Col: 1}
	light := grid.Position{Row: 2, Col: 1}

	const trials = 2000
	counts := map[grid.Position]int{}
	w := newWorld3x3(t, swarm.WithSeed(42), swarm.WithDepositRule(swarm.DepositMax), swarm.WithDeposit(0.0001))
	require.NoError(t, w.Surface().Set(swarm.PheromoneLayer, heavy, 4))
	require.NoError(t, w.Surface().Set(swarm.PheromoneLayer, light, 1))

	for i := 0; i < trials; i++ {
		a, err := w.Spawn()
		require.NoError(t, err)
		require.NoError(t, w.Move(a))
		counts[a.Pos]++
		require.NoError(t, w.Remove(a))
	}

	// Expected split 4:1 (other six neighbors are unscented). Allow a
	// generous band: the point is proportional bias, not exact odds.
	assert.Greater(t, counts[heavy], 2*counts[light], "counts: %v", counts)
	assert.Greater(t, counts[light], 0, "weak trail should still see traffic")
}

func TestGreedyDecision_PicksStrongest(t *testing.T) {
	w := newWorld3x3(t, swarm.WithDecision(swarm.GreedyDecision))
	a, err := w.Spawn()
	require.NoError(t, err)

	best := grid.Position{Row: 2, Col: 0}
	require.NoError(t, w.Deposit(best, 3))
	require.NoError(t, w.Deposit(grid.Position{Row: 0, Col: 0}, 2))

	require.NoError(t, w.Move(a))
	assert.Equal(t, best, a.Pos)
}

//----------------------------------------------------------------------------//
// Step / Run
//----------------------------------------------------------------------------//

func TestStep_MovesAllAgentsAndEvaporatesOnce(t *testing.T) {
	w := newWorld3x3(t, swarm.WithSeed(9), swarm.WithDecay(0.5))
	stale := grid.Position{Row: 2, Col: 2}
	require.NoError(t, w.Deposit(stale, 8))

	for i := 0; i < 3; i++ {
		_, err := w.Spawn()
		require.NoError(t, err)
	}

	require.NoError(t, w.Step())
	assert.Equal(t, uint64(1), w.Tick())
	assert.Equal(t, 3, w.Population())

	// The stale marker decayed exactly once (unless an agent stepped on
	// it, in which case it reads deposit × decay or less).
	v, err := w.Pheromone(stale)
	require.NoError(t, err)
	assert.LessOrEqual(t, v, 4.0)

	for _, a := range w.Agents() {
		assert.True(t, w.Surface().InBounds(a.Pos))
	}
}

func TestStep_PopulationRuleRunsAfterTick(t *testing.T) {
	grow := func(w *swarm.World) error {
		_, err := w.Spawn()

		return err
	}
	w := newWorld3x3(t, swarm.WithPopulationRule(grow))
	_, err := w.Spawn()
	require.NoError(t, err)

	require.NoError(t, w.Step())
	assert.Equal(t, 2, w.Population())
	require.NoError(t, w.Step())
	assert.Equal(t, 3, w.Population())
}

// TestStep_SkipsAgentsRemovedMidTick installs a decision strategy whose
// side effect kills the other agent: the snapshot iteration must skip
// the dead agent instead of erroring.
func TestStep_SkipsAgentsRemovedMidTick(t *testing.T) {
	var first, second *swarm.Agent
	killer := func(w *swarm.World, a *swarm.Agent, cand []grid.Position) (grid.Position, error) {
		if a == first && second != nil {
			if err := w.Remove(second); err != nil {
				return grid.Position{}, err
			}
			second = nil
		}

		return cand[0], nil
	}

	w := newWorld3x3(t, swarm.WithDecision(killer))
	var err error
	first, err = w.Spawn()
	require.NoError(t, err)
	second, err = w.Spawn()
	require.NoError(t, err)

	require.NoError(t, w.Step())
	assert.Equal(t, 1, w.Population())
	assert.Contains(t, w.Agents(), first)
}

func TestRunUntil_StopsEarly(t *testing.T) {
	w := newWorld3x3(t)
	_, err := w.Spawn()
	require.NoError(t, err)

	stop := func(w *swarm.World) bool { return w.Tick() >= 4 }
	require.NoError(t, w.RunUntil(100, stop))
	assert.Equal(t, uint64(4), w.Tick())
}

//----------------------------------------------------------------------------//
// Determinism
//----------------------------------------------------------------------------//

// TestRun_DeterministicUnderFixedSeed builds two identical worlds with
// the same seed and verifies agent positions and the pheromone field
// match cell-for-cell after a multi-tick run.
func TestRun_DeterministicUnderFixedSeed(t *testing.T) {
	build := func() *swarm.World {
		s, err := grid.NewSurface(8, 8)
		require.NoError(t, err)
		w, err := swarm.NewWorld(s, swarm.WithSeed(42), swarm.WithDecay(0.8))
		require.NoError(t, err)
		require.NoError(t, w.AddSite(grid.Position{Row: 4, Col: 4}))
		for i := 0; i < 5; i++ {
			_, err = w.Spawn()
			require.NoError(t, err)
		}

		return w
	}

	w1, w2 := build(), build()
	require.NoError(t, w1.Run(20))
	require.NoError(t, w2.Run(20))

	a1, a2 := w1.Agents(), w2.Agents()
	require.Len(t, a2, len(a1))
	for i := range a1 {
		assert.Equalf(t, a1[i].Pos, a2[i].Pos, "agent %d diverged", i)
	}

	f1, err := w1.Surface().LayerSnapshot(swarm.PheromoneLayer)
	require.NoError(t, err)
	f2, err := w2.Surface().LayerSnapshot(swarm.PheromoneLayer)
	require.NoError(t, err)
	assert.Equal(t, f1, f2)
}
