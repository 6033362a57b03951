// Package render exports a surface layer as a self-contained HTML
// heatmap, the quickest way to eyeball what the swarm actually painted.
//
// What:
//
//   - Heatmap(surface, layer) builds an echarts heatmap: one colored
//     cell per grid cell, viridis ramp from zero to the layer maximum.
//   - WriteHTML renders it to any io.Writer.
//
// Why:
//
//   - The core deliberately owns no raster I/O; a browser-openable HTML
//     file is the cheapest host-side visualization with zero native deps.
//
// Complexity:
//
//   - Time/Space: O(rows×cols) to flatten the layer into series data.
//
// Errors:
//
//   - grid.ErrUnknownLayer via the surface accessors; rendering errors
//     from the chart writer are wrapped and returned.
package render
