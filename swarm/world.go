package swarm

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/Lufajardo/antgrid/grid"
)

// World owns one grid.Surface, the live agent population, and the site
// positions. All mutation of the surface and the population flows
// through the World; no other component holds a writable reference.
//
// The simulation is single-threaded and tick-driven: one Step fully
// completes before the next begins. A World must not be shared across
// goroutines without external synchronization.
type World struct {
	surface *grid.Surface
	opts    Options
	rng     *rand.Rand

	// agents holds the live population in insertion order; members maps
	// agent ID to its index. Membership here is the sole "is alive"
	// signal for an agent.
	agents  []*Agent
	members map[uuid.UUID]int

	// sites are spawn points / points of interest, in registration order.
	sites []grid.Position

	nextSite int // round-robin cursor for SpawnRoundRobin
	tick     uint64
}

// NewWorld constructs a World over an already-extent-configured surface.
// The pheromone layer is registered on the surface when absent, so every
// pheromone read/write has a target from the first tick.
//
// Preconditions and validation (in order):
//  1. s must be non-nil (ErrNilSurface).
//  2. Decay must lie in [0,1) (ErrBadDecay).
//  3. Deposit must be positive (ErrBadDeposit).
//  4. Decision strategy must be non-nil (ErrNilDecision).
//
// Complexity: O(rows×cols) when the pheromone layer is created, O(1) after.
func NewWorld(s *grid.Surface, opts ...Option) (*World, error) {
	// 1. Validate surface
	if s == nil {
		return nil, ErrNilSurface
	}

	// 2. Apply options over documented defaults
	cfg := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&cfg)
	}

	// 3. Validate effective configuration
	if cfg.decay < 0 || cfg.decay >= 1 {
		return nil, fmt.Errorf("%w: %v", ErrBadDecay, cfg.decay)
	}
	if cfg.deposit <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadDeposit, cfg.deposit)
	}
	if cfg.decide == nil {
		return nil, ErrNilDecision
	}

	// 4. Resolve the RNG: explicit stream wins over seed
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.seed))
	}

	// 5. Ensure the pheromone layer exists
	if !s.HasLayer(PheromoneLayer) {
		if err := s.AddLayer(PheromoneLayer); err != nil {
			return nil, fmt.Errorf("swarm: registering %q: %w", PheromoneLayer, err)
		}
	}

	return &World{
		surface: s,
		opts:    cfg,
		rng:     rng,
		members: make(map[uuid.UUID]int),
	}, nil
}

// Surface returns the world's surface for host-side layer setup
// (obstacles, food) and reporting.
func (w *World) Surface() *grid.Surface { return w.surface }

// Tick reports the number of completed ticks.
func (w *World) Tick() uint64 { return w.tick }

// Population reports the current number of live agents.
func (w *World) Population() int { return len(w.agents) }

// Agents returns a snapshot slice of the live population in stable
// insertion order. The slice is a copy; the *Agent values are live.
func (w *World) Agents() []*Agent {
	out := make([]*Agent, len(w.agents))
	copy(out, w.agents)

	return out
}

// AddSite registers a spawn point / point of interest.
// Returns grid.ErrOutOfBounds for a position outside the extent.
func (w *World) AddSite(p grid.Position) error {
	if !w.surface.InBounds(p) {
		return fmt.Errorf("%w: site %s", grid.ErrOutOfBounds, p)
	}
	w.sites = append(w.sites, p)

	return nil
}

// Sites returns a copy of the registered sites in registration order.
func (w *World) Sites() []grid.Position {
	out := make([]grid.Position, len(w.sites))
	copy(out, w.sites)

	return out
}

// Spawn creates a new agent at a site chosen by the spawn policy,
// inserts it into the population, and returns it. The population grows
// by exactly one. Returns ErrNoSites when no sites are registered.
func (w *World) Spawn() (*Agent, error) {
	// 1. Pick the birth site per policy
	p, err := w.spawnSite()
	if err != nil {
		return nil, err
	}

	// 2. Insert at the tail of the stable iteration order
	a := &Agent{ID: uuid.New(), Pos: p}
	w.members[a.ID] = len(w.agents)
	w.agents = append(w.agents, a)

	return a, nil
}

// spawnSite resolves the spawn policy to a concrete site.
func (w *World) spawnSite() (grid.Position, error) {
	if len(w.sites) == 0 {
		return grid.Position{}, ErrNoSites
	}

	switch w.opts.spawn {
	case SpawnRoundRobin:
		p := w.sites[w.nextSite%len(w.sites)]
		w.nextSite++

		return p, nil
	case SpawnRandomSite:
		return w.sites[w.rng.Intn(len(w.sites))], nil
	default: // SpawnFirstSite
		return w.sites[0], nil
	}
}

// Remove deletes the agent from the population; the agent is dead and
// must not be referenced afterwards. The population shrinks by exactly
// one. Returns ErrUnknownAgent for a non-member, including a second
// Remove of the same agent (double-kill detection).
func (w *World) Remove(a *Agent) error {
	idx, err := w.memberIndex(a)
	if err != nil {
		return err
	}

	// Splice out preserving insertion order, then reindex the tail.
	delete(w.members, a.ID)
	copy(w.agents[idx:], w.agents[idx+1:])
	w.agents = w.agents[:len(w.agents)-1]
	for i := idx; i < len(w.agents); i++ {
		w.members[w.agents[i].ID] = i
	}

	return nil
}

// memberIndex resolves a to its population index, guarding against nil,
// foreign, and already-removed agents.
func (w *World) memberIndex(a *Agent) (int, error) {
	if a == nil {
		return 0, fmt.Errorf("%w: nil agent", ErrUnknownAgent)
	}
	idx, ok := w.members[a.ID]
	if !ok || w.agents[idx] != a {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAgent, a.ID)
	}

	return idx, nil
}

// Pheromone reads the scalar at p on the pheromone layer.
// Returns grid.ErrOutOfBounds for an invalid position.
func (w *World) Pheromone(p grid.Position) (float64, error) {
	return w.surface.Get(PheromoneLayer, p)
}

// Deposit writes amount at p on the pheromone layer according to the
// configured deposit rule (overwrite by default).
// Returns grid.ErrOutOfBounds for an invalid position.
func (w *World) Deposit(p grid.Position, amount float64) error {
	switch w.opts.rule {
	case DepositAccumulate:
		cur, err := w.surface.Get(PheromoneLayer, p)
		if err != nil {
			return err
		}

		return w.surface.Set(PheromoneLayer, p, cur+amount)
	case DepositMax:
		cur, err := w.surface.Get(PheromoneLayer, p)
		if err != nil {
			return err
		}
		if cur >= amount {
			return nil
		}

		return w.surface.Set(PheromoneLayer, p, amount)
	default: // DepositOverwrite
		return w.surface.Set(PheromoneLayer, p, amount)
	}
}

// Neighbors returns the in-bounds neighbor positions of p under the
// world's connectivity, in the fixed offset order.
func (w *World) Neighbors(p grid.Position) []grid.Position {
	return w.surface.AdjacentPositions(p, w.opts.conn)
}

// Evaporate applies uniform multiplicative decay to the whole pheromone
// layer, clamped at zero. Step is the only caller during a simulation;
// agents never evaporate the field themselves.
// Complexity: O(rows×cols).
func (w *World) Evaporate() error {
	return w.surface.Scale(PheromoneLayer, w.opts.decay)
}

// Move advances the agent one cell: the decision strategy picks among
// the in-bounds neighbors (pheromone-weighted by default), the agent's
// position updates, and the deposit rule writes at the new position.
//
// Returns ErrUnknownAgent for a non-member and ErrNoNeighbors when the
// position has no valid neighbors (only possible on a 1×1 extent); the
// agent then stays put and the condition is reported, not fatal.
func (w *World) Move(a *Agent) error {
	// 1. Membership guard
	if _, err := w.memberIndex(a); err != nil {
		return err
	}

	// 2. Candidate neighbors in deterministic order
	cand := w.Neighbors(a.Pos)
	if len(cand) == 0 {
		return fmt.Errorf("%w: %s", ErrNoNeighbors, a.Pos)
	}

	// 3. Delegate the choice to the configured strategy
	next, err := w.opts.decide(w, a, cand)
	if err != nil {
		return fmt.Errorf("swarm: decision at %s: %w", a.Pos, err)
	}
	if !w.surface.InBounds(next) {
		return fmt.Errorf("%w: decision returned %s", grid.ErrOutOfBounds, next)
	}

	// 4. Commit and mark the trail
	a.Pos = next

	return w.Deposit(next, w.opts.deposit)
}

// Step runs one discrete tick: every agent in a membership snapshot
// taken at tick start moves exactly once, then the field evaporates
// once, then the population rule (if any) runs. Agents removed mid-tick
// are skipped; agents spawned mid-tick join the next tick.
func (w *World) Step() error {
	// 1. Snapshot membership for stable iteration
	snapshot := w.Agents()

	// 2. Move every agent still live
	var err error
	for _, a := range snapshot {
		if _, ok := w.members[a.ID]; !ok {
			continue // removed by an earlier decision this tick
		}
		if err = w.Move(a); err != nil {
			return fmt.Errorf("swarm: tick %d: %w", w.tick, err)
		}
	}

	// 3. Evaporate the field exactly once per tick
	if err = w.Evaporate(); err != nil {
		return fmt.Errorf("swarm: tick %d: %w", w.tick, err)
	}

	// 4. Population control, if configured
	if w.opts.popRule != nil {
		if err = w.opts.popRule(w); err != nil {
			return fmt.Errorf("swarm: tick %d: population rule: %w", w.tick, err)
		}
	}
	w.tick++

	return nil
}

// Run executes n consecutive ticks.
func (w *World) Run(n int) error {
	return w.RunUntil(n, nil)
}

// RunUntil executes up to n ticks, stopping early once stop returns
// true (checked before each tick). A nil stop never triggers.
func (w *World) RunUntil(n int, stop func(*World) bool) error {
	for i := 0; i < n; i++ {
		if stop != nil && stop(w) {
			return nil
		}
		if err := w.Step(); err != nil {
			return err
		}
	}

	return nil
}
