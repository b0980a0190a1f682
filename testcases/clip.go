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

// clipCases contain polygons which extend beyond the canvas.
var clipCases = []TestCase{
	{
		Name:     "left_top",
		Polygons: [][]vec.Vec2{triangle(-20, -10, 40, 10, 10, 40)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "right_bottom",
		Polygons: [][]vec.Vec2{rectangle(40, 40, 100, 90)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "covering",
		Polygons: [][]vec.Vec2{diamond(32, 32, 100)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "outside",
		Polygons: [][]vec.Vec2{rectangle(-50, -50, -10, -10)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "outline_across",
		Polygons: [][]vec.Vec2{triangle(-30, 32, 32, -30, 94, 94)},
		Width:    64,
		Height:   64,
		Op:       Outline{},
	},
}
