package fieldstats

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/Lufajardo/antgrid/grid"
)

// Summary holds the per-layer scalars reported by Summarize.
type Summary struct {
	// Cells is the total number of cells (rows × cols).
	Cells int
	// NonZero counts cells with a value other than zero — the footprint
	// the swarm (or the host) has touched.
	NonZero int

	Min    float64
	Max    float64
	Mean   float64
	StdDev float64 // sample standard deviation; 0 for a single cell

	// Empirical quantiles of the cell values.
	Q25, Median, Q75, Q95 float64
}

// String renders the summary on one line for logs.
func (s Summary) String() string {
	return fmt.Sprintf("cells=%d nonzero=%d min=%.4g max=%.4g mean=%.4g stddev=%.4g median=%.4g",
		s.Cells, s.NonZero, s.Min, s.Max, s.Mean, s.StdDev, s.Median)
}

// Summarize flattens the named layer and computes its Summary.
// Returns grid.ErrUnknownLayer if the layer is not registered.
// Complexity: O(C log C) time, O(C) memory, for C = rows×cols cells.
func Summarize(s *grid.Surface, layer string) (Summary, error) {
	// 1. Snapshot the layer; reporting never aliases the live field.
	cells, err := s.LayerSnapshot(layer)
	if err != nil {
		return Summary{}, err
	}

	// 2. Flatten row-major and count the non-zero footprint.
	flat := make([]float64, 0, s.Rows()*s.Cols())
	nonZero := 0
	for _, row := range cells {
		for _, v := range row {
			if v != 0 {
				nonZero++
			}
			flat = append(flat, v)
		}
	}

	// 3. Moments.
	out := Summary{
		Cells:   len(flat),
		NonZero: nonZero,
		Mean:    stat.Mean(flat, nil),
	}
	if len(flat) > 1 {
		out.StdDev = stat.StdDev(flat, nil)
	}

	// 4. Order statistics: quantiles require a sorted sample.
	sort.Float64s(flat)
	out.Min = flat[0]
	out.Max = flat[len(flat)-1]
	out.Q25 = stat.Quantile(0.25, stat.Empirical, flat, nil)
	out.Median = stat.Quantile(0.5, stat.Empirical, flat, nil)
	out.Q75 = stat.Quantile(0.75, stat.Empirical, flat, nil)
	out.Q95 = stat.Quantile(0.95, stat.Empirical, flat, nil)

	return out, nil
}
