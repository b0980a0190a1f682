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

import "seehuhn.de/go/geom/vec"

var precisionCases = []TestCase{
	{
		Name:     "offset_00",
		Polygons: [][]vec.Vec2{offsetRectangle(20, 20, 24, 24, 0.0)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "offset_25",
		Polygons: [][]vec.Vec2{offsetRectangle(20, 20, 24, 24, 0.25)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "offset_50",
		Polygons: [][]vec.Vec2{offsetRectangle(20, 20, 24, 24, 0.5)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "offset_75",
		Polygons: [][]vec.Vec2{offsetRectangle(20, 20, 24, 24, 0.75)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "thin_sliver",
		Polygons: [][]vec.Vec2{triangle(4, 30, 60, 31, 4, 32)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "tiny_triangle",
		Polygons: [][]vec.Vec2{triangle(31.2, 30.6, 33.4, 32.9, 30.1, 33.3)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
}

// offsetRectangle returns a w×h rectangle with its top-left corner at
// (x+offset, y+offset).
func offsetRectangle(x, y, w, h, offset float64) []vec.Vec2 {
	x += offset
	y += offset
	return rectangle(x, y, x+w, y+h)
}
