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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FillPath fills the interior of a path using the even-odd rule.
//
// Every subpath is treated as closed.  The edges of all subpaths are
// rasterized together, so that a subpath lying inside another one cuts
// a hole.  Curves are flattened to line segments first, see Flatness.
// Subpaths with fewer than three points after flattening are ignored.
func (r *Rasterizer) FillPath(p path.Path) {
	r.resetEdges()
	r.walkPath(p, func(poly []vec.Vec2, _ bool) {
		if len(poly) < minPolygonVertices {
			return
		}
		if !r.addPolygon(poly) {
			Logger().Debug("subpath with non-finite vertex skipped")
		}
	})
	r.fillEdges()
}

// StrokePath draws the outline of every subpath with one pixel wide
// lines.  Closed subpaths are joined back to their starting point.
func (r *Rasterizer) StrokePath(p path.Path) {
	r.walkPath(p, func(poly []vec.Vec2, closed bool) {
		for i := 1; i < len(poly); i++ {
			r.DrawLine(poly[i-1], poly[i])
		}
		if closed && len(poly) >= minPolygonVertices {
			r.DrawLine(poly[len(poly)-1], poly[0])
		}
	})
}

// walkPath flattens p and calls emit once for every subpath.  The slice
// passed to emit is only valid during the call.
func (r *Rasterizer) walkPath(p path.Path, emit func(poly []vec.Vec2, closed bool)) {
	r.poly = r.poly[:0]
	flush := func(closed bool) {
		if len(r.poly) > 0 {
			emit(r.poly, closed)
		}
		r.poly = r.poly[:0]
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			flush(false)
			r.poly = append(r.poly, pts[0])

		case path.CmdLineTo:
			r.poly = append(r.poly, pts[0])

		case path.CmdQuadTo:
			if len(r.poly) == 0 {
				r.poly = append(r.poly, pts[0])
			}
			r.flattenQuadratic(r.poly[len(r.poly)-1], pts[0], pts[1])

		case path.CmdCubeTo:
			if len(r.poly) == 0 {
				r.poly = append(r.poly, pts[0])
			}
			r.flattenCubic(r.poly[len(r.poly)-1], pts[0], pts[1], pts[2])

		case path.CmdClose:
			if len(r.poly) == 0 {
				continue
			}
			start := r.poly[0]
			flush(true)
			// The current point moves back to the start of the subpath.
			r.poly = append(r.poly, start)
		}
	}
	flush(false)
}

// flattenQuadratic appends a polygonal approximation of a quadratic Bézier
// curve to r.poly.  p0 is the start point (already in r.poly), p1 is the
// control point, p2 is the end point.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	// Compute error vector: e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := segmentCount(math.Sqrt(e.Length() / r.tolerance()))

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		r.poly = append(r.poly, pt)
	}
}

// flattenCubic appends a polygonal approximation of a cubic Bézier curve
// to r.poly.  p0 is the start point (already in r.poly), p1 and p2 are the
// control points, p3 is the end point.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Segment count from Wang's formula
	m := max(d1.Length(), d2.Length())
	n := segmentCount(math.Sqrt(3 * m / (4 * r.tolerance())))

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		r.poly = append(r.poly, pt)
	}
}

// tolerance returns the flattening tolerance, falling back to the default
// if Flatness is not a positive number.
func (r *Rasterizer) tolerance() float64 {
	if r.Flatness > 0 {
		return r.Flatness
	}
	return defaultFlatness
}

// segmentCount converts an estimated segment count into an integer in
// the range [1, maxCurveSegments].  NaN gives 1.
func segmentCount(n float64) int {
	if !(n > 1) {
		return 1
	}
	if n >= maxCurveSegments {
		return maxCurveSegments
	}
	return int(math.Ceil(n))
}

// maxCurveSegments limits the number of line segments used for a single
// curve.
const maxCurveSegments = 1 << 16
