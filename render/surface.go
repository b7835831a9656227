// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// visualColours is the number of stops sampled for the echarts visual map.
const visualColours = 11

// Surface3D writes s as a standalone HTML page with one 3D surface chart.
//
// Errors: matrix sentinels for bad surfaces, ErrBadFigure, and any error
// from the page renderer.
func Surface3D(w io.Writer, s Surface, f Figure) error {
	chart, err := surfaceChart(s, f)
	if err != nil {
		return err
	}
	if err = chart.Render(w); err != nil {
		return fmt.Errorf("render: html: %w", err)
	}

	return nil
}

// Page writes every panel as a 3D surface chart on one HTML page.
// At least one panel is required.
func Page(w io.Writer, panels ...Panel) error {
	if len(panels) == 0 {
		return fmt.Errorf("%w: no panels", ErrBadFigure)
	}
	page := components.NewPage()
	page.PageTitle = panels[0].Figure.Title
	for i, p := range panels {
		chart, err := surfaceChart(p.Surface, p.Figure)
		if err != nil {
			return fmt.Errorf("panel %d: %w", i, err)
		}
		page.AddCharts(chart)
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render: html: %w", err)
	}

	return nil
}

func surfaceChart(s Surface, f Figure) (*charts.Surface3D, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	colours, err := f.ColorMap.hexColors(visualColours)
	if err != nil {
		return nil, err
	}
	lo, hi := s.zRange()

	chart := charts.NewSurface3D()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: f.Title,
			Width:     "900px",
			Height:    "700px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: f.Title,
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(lo),
			Max:        float32(hi),
			InRange:    &opts.VisualMapInRange{Color: colours},
		}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: f.XLabel}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: f.YLabel}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: f.ZLabel}),
	)
	chart.AddSeries(f.ZLabel, surfaceData(s))
	// AddSeries defaults to a scatter3D series; draw a surface instead.
	chart.MultiSeries[len(chart.MultiSeries)-1].Type = types.ChartSurface3D

	return chart, nil
}

// surfaceData flattens s into [x, y, z] triples in row-major order.
func surfaceData(s Surface) []opts.Chart3DData {
	r, c := s.Z.Shape()
	xs, ys, zs := s.X.Raw(), s.Y.Raw(), s.Z.Raw()
	out := make([]opts.Chart3DData, 0, r*c)
	for k := range zs {
		out = append(out, opts.Chart3DData{Value: []interface{}{xs[k], ys[k], zs[k]}})
	}

	return out
}
