package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Lufajardo/antgrid/grid"
)

// Rendering defaults.
const (
	DefaultTitle  = "pheromone field"
	DefaultWidth  = "900px"
	DefaultHeight = "600px"
)

// viridisRamp is the color ramp used for the visual map, weak to strong.
var viridisRamp = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// Option mutates rendering Options.
type Option func(*Options)

// Options stores the effective rendering configuration.
type Options struct {
	title    string
	subtitle string
	width    string
	height   string
}

// WithTitle sets the chart title and subtitle.
func WithTitle(title, subtitle string) Option {
	return func(o *Options) {
		o.title = title
		o.subtitle = subtitle
	}
}

// WithSize sets the canvas width and height (CSS units, e.g. "900px").
func WithSize(width, height string) Option {
	return func(o *Options) {
		o.width = width
		o.height = height
	}
}

// Heatmap builds an echarts heatmap of the named layer: column index on
// the x axis, row index on the y axis, cell value as color. Points carry
// raw row indices; echarts category axes run upward, so row 0 sits at
// the bottom of the chart.
// Returns grid.ErrUnknownLayer if the layer is not registered.
// Complexity: O(rows×cols).
func Heatmap(s *grid.Surface, layer string, options ...Option) (*charts.HeatMap, error) {
	// 1. Snapshot the layer; rendering never aliases the live field.
	cells, err := s.LayerSnapshot(layer)
	if err != nil {
		return nil, err
	}

	// 2. Resolve options
	cfg := Options{
		title:  DefaultTitle,
		width:  DefaultWidth,
		height: DefaultHeight,
	}
	for _, fn := range options {
		fn(&cfg)
	}

	// 3. Flatten into series points and find the color-scale maximum
	rows, cols := s.Rows(), s.Cols()
	data := make([]opts.HeatMapData, 0, rows*cols)
	maxV := 0.0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := cells[r][c]
			if v > maxV {
				maxV = v
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{c, r, v}})
		}
	}
	if maxV == 0 {
		maxV = 1 // blank field still gets a valid scale
	}

	// 4. Category axes: one bucket per column / row
	xs := make([]string, cols)
	for c := 0; c < cols; c++ {
		xs[c] = strconv.Itoa(c)
	}
	ys := make([]string, rows)
	for r := 0; r < rows; r++ {
		ys[r] = strconv.Itoa(r)
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: cfg.title,
			Width:     cfg.width,
			Height:    cfg.height,
		}),
		charts.WithTitleOpts(opts.Title{Title: cfg.title, Subtitle: cfg.subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: "col"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Name: "row", Data: ys}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxV),
			InRange:    &opts.VisualMapInRange{Color: viridisRamp},
		}),
	)
	hm.SetXAxis(xs).AddSeries(layer, data)

	return hm, nil
}

// WriteHTML renders the layer heatmap as a self-contained HTML page.
func WriteHTML(w io.Writer, s *grid.Surface, layer string, options ...Option) error {
	hm, err := Heatmap(s, layer, options...)
	if err != nil {
		return err
	}
	if err = hm.Render(w); err != nil {
		return fmt.Errorf("render: writing heatmap: %w", err)
	}

	return nil
}
