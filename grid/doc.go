// Package grid provides a multi-layer 2-D surface with a fixed extent,
// the shared substrate a swarm world keeps its scalar fields on.
//
// What:
//
//   - Surface holds any number of named rows×cols float64 layers.
//   - Layers are added and removed dynamically by name; every layer is
//     zero-initialized and always matches the surface extent.
//   - Position is an immutable (row, col) value; every cell access is
//     validated against the extent — out-of-range access is an error,
//     never a silent clamp.
//   - Connectivity (Conn4 or Conn8) describes neighbor adjacency and is
//     shared by the movement and trail-extraction packages.
//
// Why:
//
//   - Simulation substrates: pheromone, obstacle, and food layers over one
//     terrain without hardwiring which fields exist.
//   - Reporting: snapshot a layer for external statistics or visualization
//     without exposing the live array.
//
// Complexity:
//
//   - AddLayer / RemoveLayer / Fill / Scale: O(rows×cols).
//   - Get / Set / InBounds / AdjacentPositions: O(1).
//
// Errors:
//
//   - ErrInvalidExtent: non-positive rows or cols at construction.
//   - ErrEmptyLayerName: layer name is the empty string.
//   - ErrDuplicateLayer: AddLayer on an existing name.
//   - ErrUnknownLayer: layer name not registered.
//   - ErrOutOfBounds: position outside the surface extent.
package grid
