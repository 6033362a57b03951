// Package swarm defines the agent type, policies, and sentinel errors
// for the world.
package swarm

import (
	"errors"

	"github.com/google/uuid"

	"github.com/Lufajardo/antgrid/grid"
)

// PheromoneLayer is the distinguished layer name the world deposits to
// and evaporates. NewWorld registers it on the surface when absent.
const PheromoneLayer = "pheromone"

// Sentinel errors for world operations.
var (
	// ErrNilSurface indicates NewWorld received a nil surface.
	ErrNilSurface = errors.New("swarm: surface must be non-nil")

	// ErrNoSites indicates Spawn was called with no registered sites.
	ErrNoSites = errors.New("swarm: no sites registered")

	// ErrUnknownAgent indicates the agent is not a current population member.
	ErrUnknownAgent = errors.New("swarm: agent is not a population member")

	// ErrNoNeighbors indicates a position with no in-bounds neighbors.
	ErrNoNeighbors = errors.New("swarm: position has no in-bounds neighbors")

	// ErrBadDecay indicates a decay factor outside [0,1).
	ErrBadDecay = errors.New("swarm: decay factor must be in [0,1)")

	// ErrBadDeposit indicates a non-positive deposit amount.
	ErrBadDeposit = errors.New("swarm: deposit amount must be positive")

	// ErrNilDecision indicates WithDecision received a nil strategy.
	ErrNilDecision = errors.New("swarm: decision strategy must be non-nil")
)

// Agent is a single mobile entity: an identity and a current position.
// Agents carry no memory of their history; trails are reconstructed from
// the pheromone field, not from the agent. Agents are owned by exactly
// one world and are live only while members of its population.
type Agent struct {
	// ID uniquely identifies the agent for membership bookkeeping.
	ID uuid.UUID

	// Pos is the agent's current position, always within the surface
	// extent while the agent is a population member.
	Pos grid.Position
}

// SpawnPolicy selects the initial position of a spawned agent among the
// world's sites.
type SpawnPolicy int

const (
	// SpawnFirstSite always uses the first registered site.
	SpawnFirstSite SpawnPolicy = iota
	// SpawnRoundRobin cycles through the sites in registration order.
	SpawnRoundRobin
	// SpawnRandomSite draws a site uniformly from the world's RNG.
	SpawnRandomSite
)

// DepositRule resolves what a deposit does to the current cell value.
type DepositRule int

const (
	// DepositOverwrite replaces the cell with the deposited amount, so
	// trail strength reflects most-recent visitation.
	DepositOverwrite DepositRule = iota
	// DepositAccumulate adds the amount to the cell, so trail strength
	// reflects cumulative traffic.
	DepositAccumulate
	// DepositMax keeps the larger of the cell and the amount.
	DepositMax
)

// DecisionFunc chooses the agent's next position among the in-bounds
// candidate neighbors. Candidates arrive in the fixed offset order of
// the world's connectivity and are never empty.
type DecisionFunc func(w *World, a *Agent, candidates []grid.Position) (grid.Position, error)

// PopulationRule is an optional per-tick spawn/kill hook, applied by
// Step after evaporation. Agents it spawns join the next tick.
type PopulationRule func(w *World) error
