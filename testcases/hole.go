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

var holeCases = []TestCase{
	{
		Name: "two_triangles",
		Polygons: [][]vec.Vec2{
			triangle(16, 20, 28, 44, 4, 44),
			triangle(48, 20, 60, 44, 36, 44),
		},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name: "square_with_hole",
		Polygons: [][]vec.Vec2{
			rectangle(8, 8, 56, 56),
			rectangle(24, 24, 40, 40),
		},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name: "overlapping_rectangles",
		Polygons: [][]vec.Vec2{
			rectangle(10, 10, 40, 40),
			rectangle(24, 24, 54, 54),
		},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name: "diamond_in_square",
		Polygons: [][]vec.Vec2{
			rectangle(4, 4, 60, 60),
			diamond(32, 32, 20),
		},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}
