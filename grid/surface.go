package grid

import (
	"fmt"
	"sort"
)

// Surface is a fixed-extent store of named rows×cols float64 layers.
// The extent is immutable once constructed; layers come and go by name.
// A Surface is owned and mutated by exactly one world; it performs no
// simulation logic of its own.
type Surface struct {
	rows, cols int
	layers     map[string][][]float64
}

// NewSurface constructs an empty Surface with the given extent.
// Returns ErrInvalidExtent if rows or cols is not positive.
// Complexity: O(1); layers allocate lazily via AddLayer.
func NewSurface(rows, cols int) (*Surface, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidExtent, rows, cols)
	}

	return &Surface{
		rows:   rows,
		cols:   cols,
		layers: make(map[string][][]float64),
	}, nil
}

// Rows reports the number of rows in the extent.
func (s *Surface) Rows() int { return s.rows }

// Cols reports the number of columns in the extent.
func (s *Surface) Cols() int { return s.cols }

// InBounds reports whether p lies within the surface extent.
// Complexity: O(1).
func (s *Surface) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < s.rows && p.Col >= 0 && p.Col < s.cols
}

// AdjacentPositions returns the in-bounds neighbors of p under c, in the
// fixed offset order of c. Positions outside the extent are excluded,
// so a corner cell yields 3 neighbors under Conn8, an interior cell 8.
// Complexity: O(1) (at most 8 candidates).
func (s *Surface) AdjacentPositions(p Position, c Connectivity) []Position {
	offsets := c.Offsets()
	out := make([]Position, 0, len(offsets))
	var q Position
	for _, d := range offsets {
		q = Position{Row: p.Row + d[0], Col: p.Col + d[1]}
		if s.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// AddLayer registers a new zero-initialized rows×cols layer under name.
// Returns ErrEmptyLayerName for an empty name and ErrDuplicateLayer if
// the name is already registered.
// Complexity: O(rows×cols).
func (s *Surface) AddLayer(name string) error {
	if name == "" {
		return ErrEmptyLayerName
	}
	if _, ok := s.layers[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateLayer, name)
	}

	cells := make([][]float64, s.rows)
	for r := 0; r < s.rows; r++ {
		cells[r] = make([]float64, s.cols)
	}
	s.layers[name] = cells

	return nil
}

// RemoveLayer deletes the named layer.
// Returns ErrUnknownLayer if the name is not registered.
func (s *Surface) RemoveLayer(name string) error {
	if _, ok := s.layers[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLayer, name)
	}
	delete(s.layers, name)

	return nil
}

// HasLayer reports whether name is a registered layer.
func (s *Surface) HasLayer(name string) bool {
	_, ok := s.layers[name]

	return ok
}

// Layers returns the registered layer names in sorted order, so reports
// and logs are stable across runs.
// Complexity: O(L log L) for L layers.
func (s *Surface) Layers() []string {
	names := make([]string, 0, len(s.layers))
	for name := range s.layers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Layer returns the live, mutable cell array of the named layer, indexed
// [row][col]. Mutations write through to the surface.
// Returns ErrUnknownLayer if the name is not registered.
func (s *Surface) Layer(name string) ([][]float64, error) {
	cells, ok := s.layers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
	}

	return cells, nil
}

// LayerSnapshot returns a deep copy of the named layer for external
// reporting or visualization; mutating it never touches the surface.
// Returns ErrUnknownLayer if the name is not registered.
// Complexity: O(rows×cols).
func (s *Surface) LayerSnapshot(name string) ([][]float64, error) {
	cells, ok := s.layers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
	}

	snap := make([][]float64, s.rows)
	for r := 0; r < s.rows; r++ {
		snap[r] = make([]float64, s.cols)
		copy(snap[r], cells[r])
	}

	return snap, nil
}

// Get reads the single cell at p on the named layer.
// Returns ErrUnknownLayer or ErrOutOfBounds on violation.
// Complexity: O(1).
func (s *Surface) Get(name string, p Position) (float64, error) {
	cells, ok := s.layers[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
	}
	if !s.InBounds(p) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}

	return cells[p.Row][p.Col], nil
}

// Set overwrites the single cell at p on the named layer with v.
// Returns ErrUnknownLayer or ErrOutOfBounds on violation.
// Complexity: O(1).
func (s *Surface) Set(name string, p Position, v float64) error {
	cells, ok := s.layers[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLayer, name)
	}
	if !s.InBounds(p) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	cells[p.Row][p.Col] = v

	return nil
}

// Fill assigns v to every cell of the named layer.
// Returns ErrUnknownLayer if the name is not registered.
// Complexity: O(rows×cols).
func (s *Surface) Fill(name string, v float64) error {
	cells, ok := s.layers[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLayer, name)
	}
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			cells[r][c] = v
		}
	}

	return nil
}

// Scale multiplies every cell of the named layer by factor, clamping
// results at zero so a decayed field never turns negative. Zero cells
// stay zero for any factor (fixed point at zero).
// Returns ErrUnknownLayer if the name is not registered.
// Complexity: O(rows×cols).
func (s *Surface) Scale(name string, factor float64) error {
	cells, ok := s.layers[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLayer, name)
	}
	var v float64
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			v = cells[r][c] * factor
			if v < 0 {
				v = 0
			}
			cells[r][c] = v
		}
	}

	return nil
}
