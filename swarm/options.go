package swarm

import (
	"math/rand"

	"github.com/Lufajardo/antgrid/grid"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultSeed seeds the world RNG when neither WithSeed nor WithRand
	// is supplied, keeping bare constructions reproducible.
	DefaultSeed int64 = 1

	// DefaultDecay is the fraction of each pheromone cell retained per
	// tick: value ← value × DefaultDecay.
	DefaultDecay = 0.5

	// DefaultDeposit is the amount written at an agent's new position
	// after each move.
	DefaultDeposit = 1.0

	// DefaultConnectivity is the Moore neighborhood.
	DefaultConnectivity = grid.Conn8

	// DefaultSpawnPolicy places every new agent on the first site.
	DefaultSpawnPolicy = SpawnFirstSite

	// DefaultDepositRule overwrites the visited cell.
	DefaultDepositRule = DepositOverwrite
)

// Option mutates world Options. Applied in order; last-writer-wins.
type Option func(*Options)

// Options stores the effective world configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option.
// Validation happens once, in NewWorld, so misconfiguration surfaces as
// a sentinel error rather than a mid-run surprise.
type Options struct {
	seed    int64
	rng     *rand.Rand // non-nil overrides seed
	decay   float64
	deposit float64
	conn    grid.Connectivity
	spawn   SpawnPolicy
	rule    DepositRule
	decide  DecisionFunc
	popRule PopulationRule
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		seed:    DefaultSeed,
		decay:   DefaultDecay,
		deposit: DefaultDeposit,
		conn:    DefaultConnectivity,
		spawn:   DefaultSpawnPolicy,
		rule:    DefaultDepositRule,
		decide:  RouletteDecision,
	}
}

// WithSeed seeds the world's private RNG. Two worlds built with the same
// seed and initial state evolve identically.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRand supplies an RNG directly, taking precedence over WithSeed.
// Useful when several components must share one deterministic stream.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.rng = r }
}

// WithDecay sets the evaporation factor f: each tick every pheromone
// cell becomes cell × f, clamped at zero. Must lie in [0,1); validated
// by NewWorld (ErrBadDecay).
func WithDecay(f float64) Option {
	return func(o *Options) { o.decay = f }
}

// WithDeposit sets the amount written at an agent's new position after
// each move. Must be positive; validated by NewWorld (ErrBadDeposit).
func WithDeposit(v float64) Option {
	return func(o *Options) { o.deposit = v }
}

// WithConnectivity chooses the neighborhood shape for movement:
// grid.Conn4 (von Neumann) or grid.Conn8 (Moore).
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) { o.conn = c }
}

// WithSpawnPolicy chooses how Spawn picks a site for a new agent.
func WithSpawnPolicy(p SpawnPolicy) Option {
	return func(o *Options) { o.spawn = p }
}

// WithDepositRule chooses how a deposit combines with the current cell
// value: overwrite (default), accumulate, or max.
func WithDepositRule(r DepositRule) Option {
	return func(o *Options) { o.rule = r }
}

// WithDecision swaps the movement-decision strategy. The default is
// RouletteDecision. Must be non-nil; validated by NewWorld
// (ErrNilDecision).
func WithDecision(fn DecisionFunc) Option {
	return func(o *Options) { o.decide = fn }
}

// WithPopulationRule installs a per-tick spawn/kill hook, run by Step
// after evaporation. Agents it spawns move first in the next tick.
func WithPopulationRule(fn PopulationRule) Option {
	return func(o *Options) { o.popRule = fn }
}
