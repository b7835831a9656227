// SPDX-License-Identifier: MIT

// Package app wires the laplace packages into the command-line program:
// build the grid, relax, evaluate the series, compare, and render.
package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/laplace/compare"
	"github.com/katalvlaran/laplace/grid"
	"github.com/katalvlaran/laplace/matrix"
	"github.com/katalvlaran/laplace/relax"
	"github.com/katalvlaran/laplace/render"
	"github.com/katalvlaran/laplace/series"
)

// Output file names written into Config.OutDir.
const (
	RelaxationPNG = "relaxation_contour.png"
	AnalyticPNG   = "analytic_contour.png"
	SurfacesHTML  = "surfaces.html"
)

// Axis labels of the CLI figures.
const (
	XLabel = "x (cm)"
	YLabel = "y (cm)"
	ZLabel = "V(x,y) (V)"
)

// Solution holds both solutions of one run.
type Solution struct {
	Grid     *grid.Grid
	Field    *matrix.Dense // relaxed, row 0 at the top plate
	Analytic *matrix.Dense // series, row 0 at y = 0
	Result   relax.Result
	Report   compare.Report
}

// Solve runs both solvers for cfg and compares them.
// A nil logger discards output.
func Solve(cfg *Config, logger *log.Logger) (*Solution, error) {
	logger = orDiscard(logger)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := grid.New(cfg.Rows, cfg.Cols, cfg.Dx)
	if err != nil {
		return nil, err
	}
	field, err := g.FieldFor(grid.Dipole(cfg.V0))
	if err != nil {
		return nil, err
	}

	opts := cfg.solverOptions()
	if cfg.ProgressEvery > 0 {
		opts = append(opts, relax.WithProgress(cfg.ProgressEvery, func(p relax.Progress) {
			logger.Printf("relax: pass %d/%d delta=%.3g", p.Iteration, p.MaxIterations, p.Delta)
		}))
	}
	start := time.Now()
	res, err := relax.Solve(field, opts...)
	if err != nil {
		return nil, err
	}
	if res.Converged {
		logger.Printf("relax: converged after %d passes in %s (residual %.3g)", res.Iterations, time.Since(start), res.Residual)
	} else {
		logger.Printf("relax: not converged after %d passes, delta=%.3g", res.Iterations, res.Delta)
	}

	analytic, err := series.SolveGrid(g, cfg.V0, cfg.Terms, cfg.seriesOptions()...)
	if err != nil {
		return nil, err
	}
	rep, err := compare.Fields(field, analytic)
	if err != nil {
		return nil, err
	}
	logger.Printf("compare: %v", rep)

	return &Solution{Grid: g, Field: field, Analytic: analytic, Result: res, Report: rep}, nil
}

// panels returns the relaxed and analytic surfaces with their figures.
func (s *Solution) panels(levels int) []render.Panel {
	x, y := s.Grid.Mesh()
	fr := render.NewFigure("Relaxation method", render.Inferno)
	fa := render.NewFigure("Fourier series", render.Viridis)
	for _, f := range []*render.Figure{&fr, &fa} {
		f.XLabel, f.YLabel, f.ZLabel = XLabel, YLabel, ZLabel
		f.Levels = levels
	}

	return []render.Panel{
		{Surface: render.Surface{X: x, Y: y, Z: s.Field.FlipRows()}, Figure: fr},
		{Surface: render.Surface{X: x, Y: y, Z: s.Analytic}, Figure: fa},
	}
}

// Page renders the surface page for s into memory.
func (s *Solution) Page(levels int) ([]byte, error) {
	var buf bytes.Buffer
	if err := render.Page(&buf, s.panels(levels)...); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Write renders both contour PNGs and the surface page into dir.
func (s *Solution) Write(dir string, levels int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	p := s.panels(levels)
	targets := []struct {
		name string
		draw func(f *os.File) error
	}{
		{RelaxationPNG, func(f *os.File) error { return render.Contour(f, p[0].Surface, p[0].Figure) }},
		{AnalyticPNG, func(f *os.File) error { return render.Contour(f, p[1].Surface, p[1].Figure) }},
		{SurfacesHTML, func(f *os.File) error { return render.Page(f, p...) }},
	}
	for _, t := range targets {
		if err := writeFile(filepath.Join(dir, t.name), t.draw); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, draw func(f *os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("app: %w", cerr)
		}
	}()
	if err = draw(f); err != nil {
		return fmt.Errorf("app: %s: %w", filepath.Base(path), err)
	}

	return nil
}

// Handler serves a pre-rendered page; write failures go to logger.
func Handler(page []byte, logger *log.Logger) http.HandlerFunc {
	logger = orDiscard(logger)
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(page); err != nil {
			logger.Println(err)
		}
	}
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return logger
}

// Run solves, writes figures to cfg.OutDir and, when cfg.Serve is set,
// serves the surface page until ctx is cancelled.
func Run(ctx context.Context, cfg *Config, logger *log.Logger) error {
	logger = orDiscard(logger)
	sol, err := Solve(cfg, logger)
	if err != nil {
		return err
	}
	if cfg.OutDir != "" {
		if err = sol.Write(cfg.OutDir, cfg.Levels); err != nil {
			return err
		}
		logger.Printf("wrote %s, %s and %s to %s", RelaxationPNG, AnalyticPNG, SurfacesHTML, cfg.OutDir)
	}
	if cfg.Serve == "" {
		return nil
	}

	page, err := sol.Page(cfg.Levels)
	if err != nil {
		return err
	}
	srv := &http.Server{Addr: cfg.Serve, Handler: Handler(page, logger), ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	logger.Printf("serving surfaces on http://%s/", cfg.Serve)

	select {
	case err = <-errc:
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = srv.Shutdown(shutdown)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
