// Package swarm implements the tick-driven world of a stigmergic
// multi-agent simulation: a population of mobile agents over a
// grid.Surface, coordinating only through a decaying pheromone layer.
//
// What:
//
//   - World owns one grid.Surface, the live agent population, and a set
//     of site positions (nests / points of interest).
//   - Spawn/Remove manage the population; membership in the population
//     is the sole life/death signal for an agent.
//   - Move performs the classic stigmergic transition: a roulette-wheel
//     draw over the pheromone values of the in-bounds neighbors, with a
//     uniform fallback when all weights are equal (including all-zero),
//     then a deposit at the new position.
//   - Evaporate applies uniform multiplicative decay to the whole
//     pheromone layer, clamped at zero.
//   - Step runs one tick: every live agent moves exactly once over a
//     membership snapshot taken at tick start, then the field evaporates
//     once, then an optional population rule runs.
//
// Why:
//
//   - Corridor / least-effort-path discovery over raster-like terrain.
//   - Calibration experiments that need many independent, reproducible
//     trials without process restarts.
//
// Determinism:
//
//   - All randomness flows from an injected seed (WithSeed / WithRand);
//     there is no package-level RNG.
//   - Agents are iterated in stable insertion order; neighbor candidates
//     arrive in the fixed offset order of the connectivity.
//   - The tick loop is sequential and reads the live field, so agents
//     later in a tick observe deposits made earlier in the same tick.
//     Under a fixed seed two runs produce identical positions and fields.
//
// Options:
//
//   - WithSeed(n) / WithRand(r)     seed or supply the RNG.
//   - WithDecay(f)                  evaporation factor in [0,1).
//   - WithDeposit(v)                amount deposited after each move (v > 0).
//   - WithConnectivity(c)           grid.Conn4 or grid.Conn8 (default Conn8).
//   - WithSpawnPolicy(p)            SpawnFirstSite, SpawnRoundRobin, SpawnRandomSite.
//   - WithDepositRule(r)            DepositOverwrite, DepositAccumulate, DepositMax.
//   - WithDecision(fn)              swap the movement-decision strategy.
//   - WithPopulationRule(fn)        per-tick spawn/kill hook, runs after evaporation.
//
// Errors:
//
//   - ErrNilSurface     nil surface passed to NewWorld.
//   - ErrNoSites        Spawn with no registered sites.
//   - ErrUnknownAgent   Move/Remove target is not a population member.
//   - ErrNoNeighbors    position has no in-bounds neighbors (1×1 extent).
//   - ErrBadDecay       decay factor outside [0,1).
//   - ErrBadDeposit     non-positive deposit amount.
//   - grid.ErrOutOfBounds for invalid positions on sensing/deposit.
package swarm
