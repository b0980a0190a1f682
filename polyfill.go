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

// Package polyfill draws polygons into a 24-bit RGB pixel buffer.
//
// A [Canvas] owns the pixels and the drawing colors.  A [Rasterizer]
// draws onto any [Surface], a canvas in particular: lines use Bresenham's
// algorithm, polygon interiors use an even-odd scanline fill.  The
// sub-package [seehuhn.de/go/polyfill/bmp] writes the result to a BMP file.
//
// Coordinates are in pixels, with the origin in the top-left corner and y
// increasing downward.  Drawing operations never fail: anything outside
// the canvas is silently clipped.
package polyfill

//go:generate go run ./testcases/export
