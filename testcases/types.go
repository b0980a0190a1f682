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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name     string       // lowercase a-z, 0-9 and _ only
	Polygons [][]vec.Vec2 // closed contours, in pixel coordinates
	Width    int          // canvas width in pixels
	Height   int          // canvas height in pixels
	Op       Operation    // fill or outline
}

// Operation is the rendering operation to apply to the polygons.
type Operation interface {
	isOperation()
}

// Fill paints the interior of the polygons using the even-odd rule.
// All contours of a test case are filled together.
type Fill struct{}

func (Fill) isOperation() {}

// Outline draws one pixel wide lines along the polygon edges.
type Outline struct{}

func (Outline) isOperation() {}

// Path returns the polygons of the test case as a path, one closed
// subpath per polygon.
func (tc TestCase) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for _, poly := range tc.Polygons {
			if len(poly) == 0 {
				continue
			}
			buf[0] = poly[0]
			if !yield(path.CmdMoveTo, buf[:]) {
				return
			}
			for _, p := range poly[1:] {
				buf[0] = p
				if !yield(path.CmdLineTo, buf[:]) {
					return
				}
			}
			if !yield(path.CmdClose, nil) {
				return
			}
		}
	}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
