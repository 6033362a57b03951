// Package trail extracts least-effort corridors from a pheromone field:
// the path a loaded ant would take once the swarm has marked the terrain.
//
// What:
//
//   - Strongest(surface, layer, from, to) finds the cheapest path between
//     two cells where the cost of entering a cell falls with its scent:
//     cost = 1 / (1 + value). Strong trails are cheap, blank terrain
//     costs a full unit per step.
//   - Dijkstra with a lazy-decrease-key min-heap over the implicit grid
//     graph; no explicit graph is ever materialized.
//   - An optional obstacle layer marks impassable cells (value > 0).
//
// Why:
//
//   - Corridor discovery: after a simulation run, turn the fuzzy
//     pheromone field into one concrete path for reporting.
//   - Calibration: compare extracted corridors across decay/deposit
//     settings without re-running the swarm.
//
// Complexity:
//
//   - Time:  O(C·d·log C) for C = rows×cols cells, d = 4 or 8 neighbors.
//   - Space: O(C) for distances, predecessors, and the heap.
//
// Options:
//
//   - WithConnectivity(c): grid.Conn4 or grid.Conn8 (default Conn8).
//   - WithMaxCost(x):      abandon exploration beyond total cost x (x > 0).
//   - WithObstacleLayer(name): cells with value > 0 on that layer are
//     impassable.
//
// Errors:
//
//   - ErrNilSurface:        nil surface.
//   - ErrBadMaxCost:        non-positive WithMaxCost.
//   - ErrNoPath:            destination unreachable (obstacles or MaxCost).
//   - grid.ErrUnknownLayer: pheromone or obstacle layer not registered.
//   - grid.ErrOutOfBounds:  from or to outside the extent.
package trail
