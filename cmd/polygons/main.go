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

// Command polygons draws the demonstration scene and saves it as a BMP
// file.  The output file name defaults to polygons.bmp and can be given as
// the only argument.
package main

import (
	"log/slog"
	"os"

	"seehuhn.de/go/polyfill"
	"seehuhn.de/go/polyfill/bmp"
	"seehuhn.de/go/polyfill/testcases"
)

// fillColors gives the interior color of each polygon in testcases.Scene.
// All outlines are drawn in white.
var fillColors = []polyfill.Color{
	0xFFFF00,
	0x0000FF,
	0xFF0000,
	0x00FF00,
	0xFFFFFF,
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	polyfill.SetLogger(logger)

	out := "polygons.bmp"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	if err := run(out); err != nil {
		logger.Error("rendering failed", "error", err)
		os.Exit(1)
	}
}

func run(out string) error {
	canvas, err := polyfill.NewCanvas(testcases.SceneWidth, testcases.SceneHeight)
	if err != nil {
		return err
	}
	canvas.SetBackground(polyfill.White)
	canvas.Clear()

	r := polyfill.NewRasterizer(canvas)
	for i, poly := range testcases.Scene {
		canvas.SetColor(fillColors[i])
		r.FillPolygon(poly)

		canvas.SetColor(polyfill.White)
		r.DrawPolygon(poly)
	}

	return bmp.WriteFile(out, canvas)
}
