// Package trail defines configuration options and sentinel errors for
// corridor extraction.
package trail

import (
	"errors"
	"math"

	"github.com/Lufajardo/antgrid/grid"
)

// Sentinel errors returned by Strongest.
var (
	// ErrNilSurface indicates a nil *grid.Surface was passed.
	ErrNilSurface = errors.New("trail: surface must be non-nil")

	// ErrBadMaxCost indicates WithMaxCost received a non-positive budget.
	ErrBadMaxCost = errors.New("trail: max cost must be positive")

	// ErrNoPath indicates the destination is unreachable, either walled
	// off by obstacles or beyond the configured cost budget.
	ErrNoPath = errors.New("trail: no path between the given positions")
)

// DefaultConnectivity matches the swarm's default movement neighborhood.
const DefaultConnectivity = grid.Conn8

// Option mutates extraction Options. Applied in order; last-writer-wins.
type Option func(*Options)

// Options stores the effective extraction configuration.
type Options struct {
	conn     grid.Connectivity
	maxCost  float64
	obstacle string // obstacle layer name; empty = no obstacles
}

// DefaultOptions returns the documented defaults: Conn8, no cost budget,
// no obstacle layer.
func DefaultOptions() Options {
	return Options{
		conn:    DefaultConnectivity,
		maxCost: math.Inf(1),
	}
}

// WithConnectivity chooses the neighborhood shape of the implicit grid
// graph: grid.Conn4 or grid.Conn8.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) { o.conn = c }
}

// WithMaxCost caps the total path cost explored; cells farther than x
// from the origin are abandoned and the extraction reports ErrNoPath.
// Must be positive; validated by Strongest (ErrBadMaxCost).
func WithMaxCost(x float64) Option {
	return func(o *Options) { o.maxCost = x }
}

// WithObstacleLayer treats cells with value > 0 on the named layer as
// impassable. The layer must be registered (grid.ErrUnknownLayer).
func WithObstacleLayer(name string) Option {
	return func(o *Options) { o.obstacle = name }
}
