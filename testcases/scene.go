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

// Scene dimensions in pixels.
const (
	SceneWidth  = 800
	SceneHeight = 600
)

// Scene lists the polygons of the demonstration picture, in drawing
// order.  They are hand-authored, mostly concave shapes.
var Scene = [][]vec.Vec2{
	// star-like shape
	{
		pt(165, 380), pt(185, 360), pt(180, 330), pt(207, 345), pt(233, 330),
		pt(230, 360), pt(250, 380), pt(220, 385), pt(205, 410), pt(193, 383),
	},
	// quadrilateral
	{
		pt(321, 335), pt(288, 286), pt(339, 251), pt(374, 302),
	},
	// triangle
	{
		pt(377, 249), pt(411, 197), pt(436, 249),
	},
	// large concave outline
	{
		pt(413, 177), pt(448, 159), pt(502, 88), pt(553, 53), pt(535, 36),
		pt(676, 37), pt(660, 52), pt(750, 145), pt(761, 179), pt(672, 192),
		pt(659, 214), pt(615, 214), pt(632, 230), pt(580, 230), pt(597, 215),
		pt(552, 214), pt(517, 144), pt(466, 180),
	},
	// hole inside the previous polygon
	{
		pt(682, 175), pt(708, 120), pt(735, 148), pt(739, 170),
	},
}

var sceneCases = []TestCase{
	{
		Name:     "star_shape",
		Polygons: Scene[0:1],
		Width:    SceneWidth,
		Height:   SceneHeight,
		Op:       Fill{},
	},
	{
		Name:     "quadrilateral",
		Polygons: Scene[1:2],
		Width:    SceneWidth,
		Height:   SceneHeight,
		Op:       Fill{},
	},
	{
		Name:     "triangle",
		Polygons: Scene[2:3],
		Width:    SceneWidth,
		Height:   SceneHeight,
		Op:       Fill{},
	},
	{
		Name:     "with_hole",
		Polygons: Scene[3:5],
		Width:    SceneWidth,
		Height:   SceneHeight,
		Op:       Fill{},
	},
	{
		Name:     "outlines",
		Polygons: Scene,
		Width:    SceneWidth,
		Height:   SceneHeight,
		Op:       Outline{},
	},
}
