// seehuhn.de/go/polyfill - scanline polygon rasterization
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

package polyfill

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Surface is the pixel target of a [Rasterizer].
// SetPoint paints a single pixel; the rasterizer only calls it for
// 0 <= x < Width() and 0 <= y < Height().
type Surface interface {
	Width() int
	Height() int
	SetPoint(x, y int)
}

// edge is a polygon side in pixel coordinates.
type edge struct {
	x0, y0   float64 // start point
	x1, y1   float64 // end point
	iy0, iy1 int     // y0 and y1 rounded, for the scanline crossing test
}

// Rasterizer draws lines and polygons onto a [Surface], using the
// surface's current color.  Create one instance per surface and reuse it:
// internal buffers grow as needed but never shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Flatness controls curve approximation accuracy in pixels, for
	// FillPath and StrokePath.  Must be positive.
	Flatness float64

	dst Surface

	// Internal buffers (reused across calls)
	edges []edge     // edge list for the current fill
	xs    []int      // scanline intersections
	poly  []vec.Vec2 // current subpath, flattened

	// Edge collection state (used by addEdge)
	bbox      rect.Rect // bounding box of all edges
	bboxEmpty bool      // true if no edges added yet
}

// NewRasterizer returns a Rasterizer which draws onto dst.
func NewRasterizer(dst Surface) *Rasterizer {
	return &Rasterizer{
		Flatness: defaultFlatness,
		dst:      dst,
	}
}

// DrawLine draws a one pixel wide line from start to end, including both
// end points, using Bresenham's algorithm.  The coordinates are first
// rounded to the nearest integer.
//
// Coordinates are clamped to ±2^30 after rounding, so lines with end
// points further out than this are drawn with a changed slope.  Lines which
// miss the surface return immediately, but a line crossing the surface
// still visits every pixel position between the surface edge and the end
// point it starts from.
func (r *Rasterizer) DrawLine(start, end vec.Vec2) {
	if !finite(start) || !finite(end) {
		Logger().Debug("line with non-finite end point skipped")
		return
	}
	r.line(roundCoord(start.X), roundCoord(start.Y), roundCoord(end.X), roundCoord(end.Y))
}

// line runs Bresenham's algorithm between two pixel positions.
// Each iteration may step in x, in y, or in both (diagonal step).
// The error terms use int64, since 2*err can exceed 32 bits for clamped
// coordinates.
func (r *Rasterizer) line(x1, y1, x2, y2 int) {
	width, height := r.dst.Width(), r.dst.Height()
	if max(x1, x2) < 0 || max(y1, y2) < 0 ||
		min(x1, x2) >= width || min(y1, y2) >= height {
		return
	}

	dx := abs(int64(x2) - int64(x1))
	sx := -1
	if x1 < x2 {
		sx = 1
	}
	dy := -abs(int64(y2) - int64(y1))
	sy := -1
	if y1 < y2 {
		sy = 1
	}
	err := dx + dy

	entered := false
	x, y := x1, y1
	for {
		if x >= 0 && y >= 0 && x < width && y < height {
			r.dst.SetPoint(x, y)
			entered = true
		} else if entered {
			// A line leaves the surface at most once.
			break
		}
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// DrawPolygon draws the outline of a closed polygon: a line from every
// vertex to the next one, and from the last vertex back to the first.
// Polygons with fewer than three vertices are ignored.
func (r *Rasterizer) DrawPolygon(vertices []vec.Vec2) {
	if len(vertices) < minPolygonVertices {
		Logger().Debug("degenerate polygon outline skipped", "vertices", len(vertices))
		return
	}
	for i, start := range vertices {
		end := vertices[(i+1)%len(vertices)]
		r.DrawLine(start, end)
	}
}

// FillPolygon fills the interior of a closed polygon using the even-odd
// rule.  Polygons with fewer than three vertices are ignored.
//
// Scanlines are taken at integer y coordinates.  An edge contributes to
// scanline y if one of its rounded end points lies at or above y and the
// other lies below y; the intersections on each scanline are rounded,
// sorted, and the pixels between consecutive pairs (inclusive) are
// painted.  As a consequence the bottom row of a polygon, where no edge
// crosses, is left to the outline.
func (r *Rasterizer) FillPolygon(vertices []vec.Vec2) {
	if len(vertices) < minPolygonVertices {
		Logger().Debug("degenerate polygon fill skipped", "vertices", len(vertices))
		return
	}

	r.resetEdges()
	if !r.addPolygon(vertices) {
		Logger().Debug("polygon with non-finite vertex skipped")
		return
	}
	r.fillEdges()
}

// resetEdges clears the edge list.
func (r *Rasterizer) resetEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addPolygon adds the edges of a closed polygon to the edge list.
// The return value is false, and nothing is added, if any vertex has a
// non-finite coordinate.
func (r *Rasterizer) addPolygon(vertices []vec.Vec2) bool {
	for _, v := range vertices {
		if !finite(v) {
			return false
		}
	}
	for i, start := range vertices {
		end := vertices[(i+1)%len(vertices)]
		r.addEdge(start, end)
	}
	return true
}

// addEdge adds a single polygon side to the edge list.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	// Update bounding box
	if r.bboxEmpty {
		r.bbox = rect.Rect{
			LLx: min(p0.X, p1.X),
			LLy: min(p0.Y, p1.Y),
			URx: max(p0.X, p1.X),
			URy: max(p0.Y, p1.Y),
		}
		r.bboxEmpty = false
	} else {
		r.bbox.LLx = min(r.bbox.LLx, min(p0.X, p1.X))
		r.bbox.LLy = min(r.bbox.LLy, min(p0.Y, p1.Y))
		r.bbox.URx = max(r.bbox.URx, max(p0.X, p1.X))
		r.bbox.URy = max(r.bbox.URy, max(p0.Y, p1.Y))
	}

	// Edges which are horizontal after rounding never cross a scanline.
	iy0 := roundCoord(p0.Y)
	iy1 := roundCoord(p1.Y)
	if iy0 == iy1 {
		return
	}

	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		iy0: iy0, iy1: iy1,
	})
}

// fillEdges paints the interior of the current edge list, scanline by
// scanline, using the even-odd rule.
func (r *Rasterizer) fillEdges() {
	if len(r.edges) == 0 {
		return
	}

	width, height := r.dst.Width(), r.dst.Height()

	// Rows outside the surface would not paint anything.
	yMin := max(roundCoord(r.bbox.LLy), 0)
	yMax := min(roundCoord(r.bbox.URy), height-1)

	Logger().Debug("scanline fill",
		"edges", len(r.edges), "yMin", yMin, "yMax", yMax)

	for y := yMin; y <= yMax; y++ {
		yf := float64(y)

		r.xs = r.xs[:0]
		for i := range r.edges {
			e := &r.edges[i]
			if (e.iy0 <= y) == (e.iy1 <= y) {
				continue
			}
			// Interpolate using the unrounded coordinates.  The crossing
			// test guarantees e.y1 != e.y0.
			x := e.x0 + (yf-e.y0)*(e.x1-e.x0)/(e.y1-e.y0)
			r.xs = append(r.xs, roundCoord(x))
		}
		slices.Sort(r.xs)

		// Pair up intersections; an odd one out is dropped.
		for i := 0; i+1 < len(r.xs); i += 2 {
			xStart := max(r.xs[i], 0)
			xEnd := min(r.xs[i+1], width-1)
			for x := xStart; x <= xEnd; x++ {
				r.dst.SetPoint(x, y)
			}
		}
	}
}

// roundCoord rounds a coordinate to the nearest integer, with halfway
// cases rounded away from zero.  Values are clamped to ±maxCoord, so that
// the conversion to int is well defined.
func roundCoord(v float64) int {
	v = math.Round(v)
	switch {
	case v > maxCoord:
		return maxCoord
	case v < -maxCoord:
		return -maxCoord
	}
	return int(v)
}

func finite(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

func abs[T int | int64](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

const (
	// minPolygonVertices is the smallest number of vertices for which
	// DrawPolygon and FillPolygon do anything.
	minPolygonVertices = 3

	// maxCoord is the largest pixel coordinate magnitude.  Coordinates
	// beyond this are clamped.
	maxCoord = 1 << 30

	// defaultFlatness is the default curve flattening tolerance in pixels.
	defaultFlatness = 0.25
)
