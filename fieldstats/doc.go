// Package fieldstats summarizes a single surface layer for calibration
// and reporting: how strong the pheromone field is, how much of the
// terrain the swarm has touched, and how the mass is distributed.
//
// What:
//
//   - Summarize(surface, layer) returns cell count, non-zero coverage,
//     min/max/mean/standard deviation, and the empirical 25/50/75/95
//     percentiles of the layer.
//
// Why:
//
//   - Calibration loops compare decay/deposit settings across many
//     independent trials; a handful of scalars per run beats diffing
//     whole rasters.
//
// Complexity:
//
//   - Time: O(C log C) for C = rows×cols cells (quantiles sort a copy).
//   - Space: O(C) for the flattened copy.
//
// Errors:
//
//   - grid.ErrUnknownLayer via the surface accessors; the package adds
//     no error kinds of its own.
package fieldstats
