// Package grid defines core types, connectivity, and sentinel errors
// for the multi-layer surface.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for surface operations.
var (
	// ErrInvalidExtent indicates non-positive rows or cols at construction.
	ErrInvalidExtent = errors.New("grid: extent dimensions must be positive")

	// ErrEmptyLayerName indicates a layer operation received an empty name.
	ErrEmptyLayerName = errors.New("grid: layer name is empty")

	// ErrDuplicateLayer indicates AddLayer was called with an existing name.
	ErrDuplicateLayer = errors.New("grid: layer already exists")

	// ErrUnknownLayer indicates the named layer is not registered.
	ErrUnknownLayer = errors.New("grid: unknown layer")

	// ErrOutOfBounds indicates a position outside the surface extent.
	ErrOutOfBounds = errors.New("grid: position outside surface extent")
)

// Position is an immutable (row, col) coordinate pair on a Surface.
// The zero value is the top-left cell (0,0).
type Position struct {
	Row, Col int
}

// String renders the position as "(row,col)" for error messages and logs.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Connectivity selects neighbor adjacency: orthogonal (Conn4) or
// including diagonals (Conn8, the Moore neighborhood).
type Connectivity int

const (
	// Conn4 uses 4-directional adjacency: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional adjacency: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// conn4Offsets and conn8Offsets are (dRow, dCol) deltas in a fixed order,
// so adjacency traversals are reproducible across runs.
var (
	conn4Offsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	conn8Offsets = [][2]int{
		{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
		{1, 0}, {1, -1}, {0, -1}, {-1, -1},
	}
)

// Offsets returns the (dRow, dCol) neighbor deltas for c in a fixed,
// deterministic order. Unknown values fall back to Conn4.
// Complexity: O(1); the returned slice must not be mutated.
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return conn8Offsets
	}

	return conn4Offsets
}
