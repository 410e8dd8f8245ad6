// seehuhn.de/go/patterns - synthetic pattern datasets
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package dataset generates labelled image datasets of tiled unit
// patterns.
//
// A [Generator] builds the unit patterns for every configured shape and
// scale once, and then tiles them into canvases for every tile offset and
// every (sampled) assignment of unit patterns to tiles. Each canvas is
// appended to the file data.csv in the output directory and can
// optionally be saved as an image.
package dataset

import (
	"bufio"
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/patterns/canvas"
	"seehuhn.de/go/patterns/combination"
	"seehuhn.de/go/patterns/export"
	"seehuhn.de/go/patterns/internal/logging"
	"seehuhn.de/go/patterns/unit"
)

// RecordFile is the name of the dataset file in the output directory.
const RecordFile = "data.csv"

// Generator produces datasets for a fixed configuration.
// A Generator must not be used by more than one goroutine at a time.
type Generator struct {
	cfg   Config
	units [][]*unit.UnitPattern // indexed like cfg.Types

	// recordsOpened is set once data.csv has been truncated. Later runs
	// of the same generator append to the file.
	recordsOpened bool
}

// NewGenerator standardises a copy of cfg and generates all unit patterns.
func NewGenerator(ctx context.Context, cfg *Config) (*Generator, error) {
	g := &Generator{cfg: *cfg}
	g.cfg.Types = append([]unit.Type(nil), cfg.Types...)
	if err := g.cfg.Standardize(); err != nil {
		return nil, err
	}

	scales := g.cfg.Scales()
	if len(scales) == 0 {
		return nil, fmt.Errorf("%w: empty scale range [%g, %g)",
			ErrConfig, g.cfg.MinScale, g.cfg.MaxScale)
	}

	g.units = make([][]*unit.UnitPattern, len(g.cfg.Types))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Workers)
	for p, t := range g.cfg.Types {
		g.units[p] = make([]*unit.UnitPattern, len(scales))
		for i, s := range scales {
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				u, err := unit.New(t, g.cfg.UnitHeight, g.cfg.UnitWidth, unit.VariantScales(t, s))
				if u == nil {
					return err
				}
				if err != nil {
					logging.Logger().Warn("unit pattern clipped", "type", t, "scale", s, "error", err)
				}
				g.units[p][i] = u
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	logging.Logger().Debug("unit patterns generated",
		"types", len(g.cfg.Types), "scales", len(scales))
	return g, nil
}

// Config returns the standardised configuration.
func (g *Generator) Config() Config {
	cfg := g.cfg
	cfg.Types = append([]unit.Type(nil), g.cfg.Types...)
	return cfg
}

// Units returns the unit patterns generated for shape t, ordered by scale.
// The result is nil if t is not part of the configuration.
func (g *Generator) Units(t unit.Type) []*unit.UnitPattern {
	for p, tp := range g.cfg.Types {
		if tp == t {
			return g.units[p]
		}
	}
	return nil
}

// job describes one canvas to produce.
type job struct {
	label   unit.Type
	layout  canvas.Layout
	units   []*unit.UnitPattern
	slots   []int
	outline *path.Data
}

// sink receives the canvases of one run.
type sink struct {
	ext     string // image file extension, empty for no images
	records *bufio.Writer
	fd      *os.File
	count   int
}

// Run generates the dataset: for every tile offset and every shape, one
// canvas per sampled tile assignment. It returns the number of canvases.
func (g *Generator) Run(ctx context.Context) (int, error) {
	return g.run(ctx, g.cfg.Fraction, nil)
}

// RunSamples generates one randomly chosen canvas per tile offset and
// shape. Canvases with many tiles are drawn from a thinned-out set of
// tile assignments. The choice is determined by Config.Seed.
func (g *Generator) RunSamples(ctx context.Context) (int, error) {
	rng := rand.New(rand.NewPCG(g.cfg.Seed, g.cfg.Seed))
	return g.run(ctx, 0, rng)
}

// sampleFraction gives the share of tile assignments considered by
// RunSamples for a canvas with the given number of tiles.
func sampleFraction(tiles int) float64 {
	switch {
	case tiles >= 9:
		return 0.0001
	case tiles >= 6:
		return 0.01
	default:
		return 1
	}
}

func (g *Generator) run(ctx context.Context, fraction float64, rng *rand.Rand) (int, error) {
	s, err := g.openSink(g.cfg.ImageFormat)
	if err != nil {
		return 0, err
	}

	sampler := g.cfg.Sampler()
	maxV, maxH := g.cfg.OffsetSteps()
	for v := 0; v <= maxV; v++ {
		for h := 0; h <= maxH; h++ {
			layout := g.cfg.Layout(v, h)
			before := s.count
			for p, t := range g.cfg.Types {
				vOK, hOK := t.OffsetAllowed()
				if (v > 0 && !vOK) || (h > 0 && !hOK) {
					continue
				}

				units := g.units[p]
				rows, cols := layout.Tiles(units[0].Height(), units[0].Width())
				tiles := rows * cols
				if tiles == 0 {
					continue
				}

				frac := fraction
				if rng != nil {
					frac = sampleFraction(tiles)
				}
				combos, err := combination.Sample(sampler, indexes(len(units)), tiles, frac)
				if err != nil {
					s.close()
					return s.count, fmt.Errorf("%s, offset %d/%d: %w", t, v, h, err)
				}
				if rng != nil && len(combos) > 0 {
					combos = combos[rng.IntN(len(combos)):][:1]
				}

				jobs := make([]job, len(combos))
				for i, slots := range combos {
					jobs[i] = job{label: t, layout: layout, units: units, slots: slots}
				}
				if err := g.emit(ctx, jobs, s); err != nil {
					s.close()
					return s.count, err
				}
			}
			logging.Logger().Info("offset done",
				"vertical", v, "horizontal", h, "images", s.count-before)
		}
	}
	return s.count, s.close()
}

// SaveUnitPatterns writes every unit pattern as a separate image, using
// the configured image format or BMP if none is set. PDF images include
// the polygon outline where one exists. It returns the number of images.
func (g *Generator) SaveUnitPatterns(ctx context.Context) (int, error) {
	format := g.cfg.ImageFormat
	if format == "" {
		format = "bmp"
	}
	s := &sink{ext: export.Extension(format)}
	if err := os.MkdirAll(g.cfg.Output, 0o755); err != nil {
		return 0, err
	}

	var jobs []job
	for p, t := range g.cfg.Types {
		for _, u := range g.units[p] {
			jobs = append(jobs, job{
				label: t,
				layout: canvas.Layout{
					Height: u.Height(),
					Width:  u.Width(),
					Center: g.cfg.Center,
				},
				units:   []*unit.UnitPattern{u},
				slots:   []int{0},
				outline: u.Outline(),
			})
		}
	}
	err := g.emit(ctx, jobs, s)
	return s.count, err
}

// openSink prepares the output directory and data.csv for a run.
func (g *Generator) openSink(format string) (*sink, error) {
	s := &sink{ext: export.Extension(format)}
	if s.ext == "" && !g.cfg.WriteRecords {
		return s, nil
	}
	if err := os.MkdirAll(g.cfg.Output, 0o755); err != nil {
		return nil, err
	}
	if !g.cfg.WriteRecords {
		return s, nil
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_APPEND
	if !g.recordsOpened {
		flags |= os.O_TRUNC
	}
	fd, err := os.OpenFile(filepath.Join(g.cfg.Output, RecordFile), flags, 0o644)
	if err != nil {
		return nil, err
	}
	g.recordsOpened = true
	s.fd = fd
	s.records = bufio.NewWriter(fd)
	return s, nil
}

func (s *sink) close() error {
	if s.fd == nil {
		return nil
	}
	err := s.records.Flush()
	err2 := s.fd.Close()
	s.fd = nil
	if err != nil {
		return err
	}
	return err2
}

// emit renders the canvases for jobs in batches. Canvases and image files
// are produced in parallel; records are written in job order.
func (g *Generator) emit(ctx context.Context, jobs []job, s *sink) error {
	batchSize := 64 * g.cfg.Workers
	for len(jobs) > 0 {
		batch := jobs[:min(len(jobs), batchSize)]
		jobs = jobs[len(batch):]

		canvases := make([]*canvas.Pattern, len(batch))
		eg, ctx := errgroup.WithContext(ctx)
		eg.SetLimit(g.cfg.Workers)
		for i, j := range batch {
			n := s.count + i
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				c, err := canvas.New(j.label, j.layout, j.units, j.slots)
				if err != nil {
					return err
				}
				canvases[i] = c
				if s.ext == "" {
					return nil
				}
				fname := filepath.Join(g.cfg.Output, fmt.Sprintf("%s_%d%s", j.label, n, s.ext))
				return export.Save(fname, c.Grid(), &export.Options{
					Scale:   g.cfg.ImageScale,
					Outline: j.outline,
				})
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}

		if s.records != nil {
			for _, c := range canvases {
				if _, err := s.records.WriteString(c.Record() + "\n"); err != nil {
					return fmt.Errorf("writing records: %w", err)
				}
			}
		}
		s.count += len(batch)
	}
	return nil
}

func indexes(n int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = i
	}
	return res
}
