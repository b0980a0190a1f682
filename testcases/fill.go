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
	"math"

	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:     "triangle",
		Polygons: [][]vec.Vec2{triangle(10, 50, 32, 10, 54, 50)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "rectangle",
		Polygons: [][]vec.Vec2{rectangle(10, 10, 44, 44)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "diamond",
		Polygons: [][]vec.Vec2{diamond(32, 32, 24)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name:     "star",
		Polygons: [][]vec.Vec2{fivePointStar(32, 32, 25)},
		Width:    64,
		Height:   64,
		Op:       Fill{},
	},
	{
		Name: "arrow",
		Polygons: [][]vec.Vec2{{
			pt(8, 24), pt(36, 24), pt(36, 10), pt(58, 32),
			pt(36, 54), pt(36, 40), pt(8, 40),
		}},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}

var outlineCases = []TestCase{
	{
		Name:     "triangle",
		Polygons: [][]vec.Vec2{triangle(10, 50, 32, 10, 54, 50)},
		Width:    64,
		Height:   64,
		Op:       Outline{},
	},
	{
		Name:     "rectangle",
		Polygons: [][]vec.Vec2{rectangle(10, 10, 44, 44)},
		Width:    64,
		Height:   64,
		Op:       Outline{},
	},
	{
		Name:     "star",
		Polygons: [][]vec.Vec2{fivePointStar(32, 32, 25)},
		Width:    64,
		Height:   64,
		Op:       Outline{},
	},
}

// triangle returns the vertices of a triangle.
func triangle(x1, y1, x2, y2, x3, y3 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y2), pt(x3, y3)}
}

// rectangle returns the corners of an axis-aligned rectangle, clockwise
// on screen starting at (x1, y1).
func rectangle(x1, y1, x2, y2 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// diamond returns a square rotated by 45 degrees.
func diamond(cx, cy, r float64) []vec.Vec2 {
	return []vec.Vec2{pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy)}
}

// fivePointStar returns a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) []vec.Vec2 {
	// five points, connecting every second point
	var pts [5]vec.Vec2
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	order := []int{0, 2, 4, 1, 3}
	star := make([]vec.Vec2, len(order))
	for i, j := range order {
		star[i] = pts[j]
	}
	return star
}
