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
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrInvalidSize is returned by [NewCanvas] for non-positive dimensions.
var ErrInvalidSize = errors.New("invalid canvas size")

// Canvas is a fixed-size buffer of 24-bit pixels together with the
// current drawing state.
//
// Pixels are stored row by row, starting at the top-left corner.  A
// Canvas is not safe for concurrent use.
type Canvas struct {
	width  int
	height int
	pixels []Color

	background Color // used by Clear
	current    Color // used by SetPoint
}

// NewCanvas allocates a width×height canvas.  All pixels are initialized to
// the default background color (black) and the drawing color is white.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width > maxCanvasPixels/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels",
			ErrInvalidSize, width, height, maxCanvasPixels)
	}

	c := &Canvas{
		width:      width,
		height:     height,
		pixels:     make([]Color, width*height),
		background: Black,
		current:    White,
	}
	c.Clear()

	Logger().Debug("canvas created", "width", width, "height", height)
	return c, nil
}

// maxCanvasPixels bounds the allocation made by NewCanvas.
const maxCanvasPixels = 1 << 30

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Pixels returns the pixel buffer in row-major order, top row first.
// The slice is shared with the canvas and must not be modified.
func (c *Canvas) Pixels() []Color {
	return c.pixels
}

// Clear sets every pixel to the background color.
func (c *Canvas) Clear() {
	for i := range c.pixels {
		c.pixels[i] = c.background
	}
}

// SetBackground sets the color used by subsequent calls to Clear.
// Existing pixels are not changed.
func (c *Canvas) SetBackground(col Color) {
	c.background = col
}

// Background returns the color used by Clear.
func (c *Canvas) Background() Color {
	return c.background
}

// SetColor sets the color used by subsequent drawing operations.
func (c *Canvas) SetColor(col Color) {
	c.current = col
}

// CurrentColor returns the color used by drawing operations.
func (c *Canvas) CurrentColor() Color {
	return c.current
}

// SetPoint paints the pixel at (x, y) in the current color.
// Points outside the canvas are ignored.
func (c *Canvas) SetPoint(x, y int) {
	if !c.inside(x, y) {
		return
	}
	c.pixels[y*c.width+x] = c.current
}

// Pixel returns the color of the pixel at (x, y).
// The second return value is false if the point lies outside the canvas.
func (c *Canvas) Pixel(x, y int) (Color, bool) {
	if !c.inside(x, y) {
		return 0, false
	}
	return c.pixels[y*c.width+x], true
}

// inside reports whether (x, y) addresses a pixel of the canvas.
// Without the sign checks, a negative x would address a pixel at the
// end of the previous row.
func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// ColorModel implements the [image.Image] interface.
func (c *Canvas) ColorModel() color.Model {
	return ColorModel
}

// Bounds implements the [image.Image] interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At implements the [image.Image] interface.
// Points outside the canvas are reported as black.
func (c *Canvas) At(x, y int) color.Color {
	col, _ := c.Pixel(x, y)
	return col
}
