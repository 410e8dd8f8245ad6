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

// Package export writes pixel grids to image files.
//
// Filled pixels are drawn black on a white background.
// The file format is chosen by the file name extension:
// ".png", ".bmp", ".svg" and ".pdf" are supported.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/patterns/raster"
)

// ErrFormat is returned for file names with an unsupported extension.
var ErrFormat = errors.New("unsupported image format")

// Options control the appearance of exported images.
type Options struct {
	// Scale is the side length of one grid pixel in the output.
	// Values smaller than 1 are treated as 1.
	Scale int

	// Outline, if set, is stroked on top of the pixels. The path uses grid
	// coordinates, with x along the columns and y along the rows.
	// Only PDF output draws outlines.
	Outline *path.Data
}

func (o *Options) scale() int {
	if o == nil || o.Scale < 1 {
		return 1
	}
	return o.Scale
}

// Extension returns the file name extension used for the given format
// name, or the empty string if the format is not supported.
func Extension(format string) string {
	switch f := strings.ToLower(strings.TrimPrefix(format, ".")); f {
	case "png", "bmp", "svg", "pdf":
		return "." + f
	}
	return ""
}

// Save writes g to the file fname.
func Save(fname string, g *raster.Grid, opt *Options) error {
	ext := strings.ToLower(filepath.Ext(fname))
	if ext == ".pdf" {
		return SavePDF(fname, g, opt)
	}

	var write func(io.Writer, *raster.Grid, *Options) error
	switch ext {
	case ".png":
		write = WritePNG
	case ".bmp":
		write = WriteBMP
	case ".svg":
		write = WriteSVG
	default:
		return fmt.Errorf("%s: %w", fname, ErrFormat)
	}

	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = write(fd, g, opt)
	err2 := fd.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return err2
}

// Image returns a grayscale copy of g, enlarged by the scale factor from
// opt.
func Image(g *raster.Grid, opt *Options) *image.Gray {
	s := opt.scale()
	dst := image.NewGray(image.Rect(0, 0, g.Width()*s, g.Height()*s))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), g, g.Bounds(), draw.Src, nil)
	return dst
}

// WritePNG encodes g as a PNG image.
func WritePNG(w io.Writer, g *raster.Grid, opt *Options) error {
	return png.Encode(w, Image(g, opt))
}

// WriteBMP encodes g as a BMP image.
func WriteBMP(w io.Writer, g *raster.Grid, opt *Options) error {
	return bmp.Encode(w, Image(g, opt))
}

// run is a horizontal stretch of filled pixels, from column start
// (inclusive) to column end (exclusive).
type run struct {
	row, start, end int
}

// runs returns the filled stretches of g in row-major order.
func runs(g *raster.Grid) []run {
	var res []run
	for row := range g.Height() {
		start := -1
		for col := range g.Width() + 1 {
			filled := col < g.Width() && g.Filled(row, col)
			switch {
			case filled && start < 0:
				start = col
			case !filled && start >= 0:
				res = append(res, run{row, start, col})
				start = -1
			}
		}
	}
	return res
}
