// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Canvas geometry of the PNG output.
const (
	pngWidth    = 8 * vg.Inch
	pngHeight   = 6 * vg.Inch
	barWidth    = 1.2 * vg.Inch
	heatColours = 255
)

// gridXYZ adapts a Surface to plotter.GridXYZ (c indexes columns, r rows).
type gridXYZ struct {
	s Surface
}

func (g gridXYZ) Dims() (c, r int) { return g.s.Z.Cols(), g.s.Z.Rows() }

func (g gridXYZ) Z(c, r int) float64 {
	v, _ := g.s.Z.At(r, c)
	return v
}

func (g gridXYZ) X(c int) float64 {
	v, _ := g.s.X.At(0, c)
	return v
}

func (g gridXYZ) Y(r int) float64 {
	v, _ := g.s.Y.At(r, 0)
	return v
}

// mono is a single-colour palette for contour lines.
type mono []color.Color

func (m mono) Colors() []color.Color { return m }

// Contour draws s as a PNG heat map with f.Levels contour lines and a
// vertical colour bar labelled f.ZLabel.
//
// Errors: matrix sentinels for bad surfaces, ErrBadFigure, and any error
// from the PNG encoder.
func Contour(w io.Writer, s Surface, f Figure) error {
	if err := f.validate(); err != nil {
		return err
	}
	if err := s.validate(); err != nil {
		return err
	}
	lo, hi := s.zRange()
	cm, err := f.ColorMap.scale(lo, hi)
	if err != nil {
		return err
	}
	g := gridXYZ{s: s}

	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel

	heat := plotter.NewHeatMap(g, cm.Palette(heatColours))
	heat.Min, heat.Max = lo, hi
	p.Add(heat)

	if f.Levels > 0 {
		levels := floats.Span(make([]float64, f.Levels+2), lo, hi)[1 : f.Levels+1]
		lines := plotter.NewContour(g, levels, mono{color.Black})
		p.Add(lines)
	}

	bar := plot.New()
	bar.Title.Text = f.ZLabel
	bar.HideX()
	bar.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true, Colors: heatColours})

	img := vgimg.New(pngWidth, pngHeight)
	dc := draw.New(img)
	p.Draw(draw.Crop(dc, 0, -barWidth, 0, 0))
	bar.Draw(draw.Crop(dc, pngWidth-barWidth, 0, 0, 0))

	if _, err = (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("render: png: %w", err)
	}

	return nil
}
