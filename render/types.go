// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/katalvlaran/laplace/matrix"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// ErrBadFigure is returned for an invalid Figure or a surface too small to draw.
var ErrBadFigure = errors.New("render: invalid figure")

// DefaultLevels is the contour level count used by NewFigure.
const DefaultLevels = 30

// ColorMap names a colour scale.
type ColorMap int

const (
	// Inferno is a black-red-yellow scale (moreland extended black body).
	Inferno ColorMap = iota
	// Viridis is a perceptually uniform blue-green-yellow scale (moreland extended Kindlmann).
	Viridis
)

// String implements fmt.Stringer.
func (c ColorMap) String() string {
	switch c {
	case Inferno:
		return "inferno"
	case Viridis:
		return "viridis"
	}
	return fmt.Sprintf("ColorMap(%d)", int(c))
}

// ParseColorMap maps "inferno" or "viridis" to a ColorMap.
func ParseColorMap(s string) (ColorMap, error) {
	switch s {
	case "inferno":
		return Inferno, nil
	case "viridis":
		return Viridis, nil
	}
	return 0, fmt.Errorf("%w: unknown colour map %q", ErrBadFigure, s)
}

// scale returns a fresh gonum colour map spanning [lo, hi].
func (c ColorMap) scale(lo, hi float64) (palette.ColorMap, error) {
	var cm palette.ColorMap
	switch c {
	case Inferno:
		cm = moreland.ExtendedBlackBody()
	case Viridis:
		cm = moreland.ExtendedKindlmann()
	default:
		return nil, fmt.Errorf("%w: unknown colour map %d", ErrBadFigure, int(c))
	}
	cm.SetMax(hi)
	cm.SetMin(lo)

	return cm, nil
}

// hexColors samples n colours of c as CSS hex strings.
func (c ColorMap) hexColors(n int) ([]string, error) {
	cm, err := c.scale(0, 1)
	if err != nil {
		return nil, err
	}
	cols := cm.Palette(n).Colors()
	out := make([]string, len(cols))
	for i, col := range cols {
		rgba := color.RGBAModel.Convert(col).(color.RGBA)
		out[i] = fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
	}

	return out, nil
}

// Figure carries the presentation parameters shared by all outputs.
type Figure struct {
	Title  string
	XLabel string
	YLabel string
	ZLabel string

	ColorMap ColorMap

	// Levels is the number of contour lines; 0 draws the heat map only.
	Levels int
}

// NewFigure returns a Figure with axis labels x, y, V and DefaultLevels.
func NewFigure(title string, cm ColorMap) Figure {
	return Figure{
		Title:    title,
		XLabel:   "x",
		YLabel:   "y",
		ZLabel:   "V",
		ColorMap: cm,
		Levels:   DefaultLevels,
	}
}

func (f Figure) validate() error {
	if f.Levels < 0 {
		return fmt.Errorf("%w: levels %d < 0", ErrBadFigure, f.Levels)
	}
	if f.ColorMap != Inferno && f.ColorMap != Viridis {
		return fmt.Errorf("%w: unknown colour map %d", ErrBadFigure, int(f.ColorMap))
	}

	return nil
}

// Surface is a sampled function Z(X, Y) in grid orientation.
type Surface struct {
	X, Y, Z *matrix.Dense
}

// Panel pairs a surface with its figure for Page.
type Panel struct {
	Surface Surface
	Figure  Figure
}

func (s Surface) validate() error {
	for _, m := range []struct {
		name string
		m    *matrix.Dense
	}{{"X", s.X}, {"Y", s.Y}, {"Z", s.Z}} {
		if err := matrix.ValidateNotNil(m.m); err != nil {
			return fmt.Errorf("render: %s: %w", m.name, err)
		}
	}
	if err := matrix.ValidateSameShape(s.X, s.Z); err != nil {
		return fmt.Errorf("render: X/Z: %w", err)
	}
	if err := matrix.ValidateSameShape(s.Y, s.Z); err != nil {
		return fmt.Errorf("render: Y/Z: %w", err)
	}
	if r, c := s.Z.Shape(); r < 2 || c < 2 {
		return fmt.Errorf("%w: surface %dx%d smaller than 2x2", ErrBadFigure, r, c)
	}
	if err := matrix.ValidateFinite(s.Z); err != nil {
		return fmt.Errorf("render: Z: %w", err)
	}

	return nil
}

// zRange returns the Z extent, widened to unit width when Z is flat.
func (s Surface) zRange() (lo, hi float64) {
	lo, hi, _ = matrix.Range(s.Z)
	if hi <= lo {
		hi = lo + 1
	}

	return lo, hi
}
