// Package antgrid is an in-memory engine for stigmergic multi-agent
// simulations over raster-like terrain — mobile agents that sense and
// deposit a decaying scalar field on a discretized landscape.
//
// 🐜 What is antgrid?
//
//	A deterministic, host-embeddable simulation core that brings together:
//		• Grid surface: any number of named scalar layers over a fixed extent
//		• Swarm world: agent lifecycle, pheromone-weighted movement, evaporation
//		• Tick driver: synchronous steps with snapshot iteration and stop predicates
//		• Trail extraction: least-effort corridor discovery over the pheromone field
//		• Field statistics & heatmap export for calibration and inspection
//
// ✨ Why antgrid?
//
//   - Reproducible – all randomness flows from an injected seed, no globals
//   - Recoverable – every boundary violation is a sentinel error, never a clamp
//   - Extensible – movement decisions and population rules are swappable strategies
//   - Host-friendly – operates on plain in-memory arrays; raster I/O stays outside
//
// Under the hood, everything is organized under five subpackages:
//
//	grid/       — multi-layer 2-D surface, positions, bounds, connectivity
//	swarm/      — world: agents, sites, movement, deposition, evaporation, ticks
//	trail/      — strongest-trail (least-effort path) extraction
//	fieldstats/ — summary statistics of a layer for calibration runs
//	render/     — HTML heatmap export of a layer
//
// Quick ASCII example:
//
//	    . 2 .
//	    1 ● 4
//	    . 3 .
//
//	an agent at ● rolls a pheromone-weighted die over its neighbors:
//	the cell holding 4 is four times as likely as the cell holding 1.
//
// The host supplies the surface extent and any terrain layers, runs the
// world for a number of ticks, and reads the pheromone field back for
// persistence or visualization.
//
//	go get github.com/Lufajardo/antgrid
package antgrid
