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

package export

import (
	"io"

	svg "github.com/ajstarks/svgo"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/patterns/raster"
)

// WriteSVG writes g as an SVG image, using one rectangle per horizontal
// run of filled pixels.
func WriteSVG(w io.Writer, g *raster.Grid, opt *Options) error {
	s := opt.scale()
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(g.Width()*s, g.Height()*s)
	canvas.Rect(0, 0, g.Width()*s, g.Height()*s, "fill:white")
	for _, r := range runs(g) {
		canvas.Rect(r.start*s, r.row*s, (r.end-r.start)*s, s, "fill:black")
	}
	canvas.End()
	return ew.err
}

// errWriter keeps the first write error, since the SVG writer does not
// report errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// SavePDF writes g to a single-page PDF file.
// One grid pixel corresponds to Scale PDF points.
func SavePDF(fname string, g *raster.Grid, opt *Options) error {
	s := float64(opt.scale())
	w := float64(g.Width()) * s
	h := float64(g.Height()) * s

	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF origin is bottom-left, grids start at the top-left.
	page.Transform(matrix.Matrix{s, 0, 0, -s, 0, h})

	rr := runs(g)
	if len(rr) > 0 {
		page.SetFillColor(color.DeviceGray(0))
		for _, r := range rr {
			page.Rectangle(float64(r.start), float64(r.row), float64(r.end-r.start), 1)
		}
		page.Fill()
	}

	if opt != nil && opt.Outline != nil && len(opt.Outline.Cmds) > 0 {
		page.SetStrokeColor(color.DeviceGray(0.5))
		page.SetLineWidth(0.25)
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
		for cmd, pts := range opt.Outline.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
	}

	return page.Close()
}
