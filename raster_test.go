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
	"fmt"
	"image"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// recorder is a Surface which remembers every painted pixel.
type recorder struct {
	width, height int
	pts           []image.Point
	outside       int // calls with coordinates outside the surface
}

func newRecorder(width, height int) *recorder {
	return &recorder{width: width, height: height}
}

func (r *recorder) Width() int  { return r.width }
func (r *recorder) Height() int { return r.height }

func (r *recorder) SetPoint(x, y int) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		r.outside++
	}
	r.pts = append(r.pts, image.Pt(x, y))
}

// set returns the distinct painted pixels.
func (r *recorder) set() map[image.Point]bool {
	m := make(map[image.Point]bool, len(r.pts))
	for _, p := range r.pts {
		m[p] = true
	}
	return m
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func nan() float64 {
	return math.NaN()
}

// fivePointStar returns a self-intersecting five-pointed star.
func fivePointStar(cx, cy, r float64) []vec.Vec2 {
	var star []vec.Vec2
	for _, i := range []int{0, 2, 4, 1, 3} {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		star = append(star, pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return star
}

// rectSet returns all pixels with x0 <= x <= x1 and y0 <= y <= y1.
func rectSet(x0, y0, x1, y1 int) map[image.Point]bool {
	m := make(map[image.Point]bool)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			m[image.Pt(x, y)] = true
		}
	}
	return m
}

func diffSets(t *testing.T, got, want map[image.Point]bool) {
	t.Helper()
	var missing, extra []image.Point
	for p := range want {
		if !got[p] {
			missing = append(missing, p)
		}
	}
	for p := range got {
		if !want[p] {
			extra = append(extra, p)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		t.Errorf("pixel sets differ: missing %v, extra %v", missing, extra)
	}
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name       string
		start, end vec.Vec2
		want       []image.Point
	}{
		{
			name:  "horizontal",
			start: pt(0, 0), end: pt(4, 0),
			want: []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}},
		},
		{
			name:  "vertical",
			start: pt(0, 0), end: pt(0, 4),
			want: []image.Point{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}},
		},
		{
			name:  "diagonal",
			start: pt(0, 0), end: pt(4, 4),
			want: []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}},
		},
		{
			name:  "reverse",
			start: pt(4, 2), end: pt(0, 2),
			want: []image.Point{{4, 2}, {3, 2}, {2, 2}, {1, 2}, {0, 2}},
		},
		{
			name:  "shallow",
			start: pt(0, 0), end: pt(4, 2),
			want: []image.Point{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}},
		},
		{
			name:  "point",
			start: pt(3, 3), end: pt(3, 3),
			want: []image.Point{{3, 3}},
		},
		{
			name:  "rounded",
			start: pt(0.4, 0.5), end: pt(2.49, 0.6),
			want: []image.Point{{0, 1}, {1, 1}, {2, 1}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := newRecorder(10, 10)
			NewRasterizer(rec).DrawLine(test.start, test.end)
			if !slices.Equal(rec.pts, test.want) {
				t.Errorf("got %v, want %v", rec.pts, test.want)
			}
		})
	}
}

func TestDrawLineProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range 200 {
		x1, y1 := rng.IntN(200)-50, rng.IntN(200)-50
		x2, y2 := rng.IntN(200)-50, rng.IntN(200)-50

		rec := newRecorder(1000, 1000)
		r := NewRasterizer(rec)
		// shift into the surface so that nothing is clipped
		r.DrawLine(pt(float64(x1+100), float64(y1+100)), pt(float64(x2+100), float64(y2+100)))

		pts := rec.pts
		n := max(abs(x2-x1), abs(y2-y1)) + 1
		if len(pts) != n {
			t.Fatalf("%d: line (%d,%d)-(%d,%d) has %d pixels, want %d",
				i, x1, y1, x2, y2, len(pts), n)
		}
		if pts[0] != image.Pt(x1+100, y1+100) || pts[n-1] != image.Pt(x2+100, y2+100) {
			t.Fatalf("%d: line (%d,%d)-(%d,%d) runs from %v to %v",
				i, x1, y1, x2, y2, pts[0], pts[n-1])
		}
		for j := 1; j < n; j++ {
			d := pts[j].Sub(pts[j-1])
			if abs(d.X) > 1 || abs(d.Y) > 1 || d == (image.Point{}) {
				t.Fatalf("%d: step %v -> %v is not 8-connected", i, pts[j-1], pts[j])
			}
		}
	}
}

func TestDrawLineClipping(t *testing.T) {
	c, err := NewCanvas(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	r := NewRasterizer(c)
	r.DrawLine(pt(-5, -5), pt(20, 20))

	for y := range 10 {
		for x := range 10 {
			got, _ := c.Pixel(x, y)
			want := Black
			if x == y {
				want = White
			}
			if got != want {
				t.Errorf("Pixel(%d, %d) = %06x, want %06x", x, y, got, want)
			}
		}
	}

	rec := newRecorder(10, 10)
	r = NewRasterizer(rec)
	r.DrawLine(pt(-100, 5), pt(200, 7))
	r.DrawLine(pt(-3, -3), pt(-30, -1))
	if rec.outside > 0 {
		t.Errorf("%d pixels painted outside the surface", rec.outside)
	}
}

// TestDrawLineClipped checks that clipping a line to the surface does not
// change which of its pixels are painted.
func TestDrawLineClipped(t *testing.T) {
	const size, offset = 100, 150
	rng := rand.New(rand.NewPCG(3, 4))
	for i := range 500 {
		x1, y1 := rng.IntN(400)-offset, rng.IntN(400)-offset
		x2, y2 := rng.IntN(400)-offset, rng.IntN(400)-offset

		full := newRecorder(size+2*offset+100, size+2*offset+100)
		NewRasterizer(full).DrawLine(
			pt(float64(x1+offset), float64(y1+offset)),
			pt(float64(x2+offset), float64(y2+offset)))
		var want []image.Point
		for _, p := range full.pts {
			p = p.Sub(image.Pt(offset, offset))
			if p.X >= 0 && p.Y >= 0 && p.X < size && p.Y < size {
				want = append(want, p)
			}
		}

		clipped := newRecorder(size, size)
		NewRasterizer(clipped).DrawLine(pt(float64(x1), float64(y1)), pt(float64(x2), float64(y2)))
		if !slices.Equal(clipped.pts, want) {
			t.Fatalf("%d: line (%d,%d)-(%d,%d): got %v, want %v",
				i, x1, y1, x2, y2, clipped.pts, want)
		}
	}
}

func TestDrawLineHugeCoordinates(t *testing.T) {
	rec := newRecorder(10, 10)
	r := NewRasterizer(rec)

	// entirely outside: nothing is iterated
	r.DrawLine(pt(-1e300, -1e300), pt(-1e300, 1e300))
	r.DrawLine(pt(1e12, 3), pt(2e12, 7))
	if len(rec.pts) != 0 {
		t.Fatalf("lines outside the surface painted %v", rec.pts)
	}

	// starts inside: the loop stops where the line leaves the surface
	r.DrawLine(pt(5, 5), pt(5, 1e300))
	want := []image.Point{{5, 5}, {5, 6}, {5, 7}, {5, 8}, {5, 9}}
	if !slices.Equal(rec.pts, want) {
		t.Errorf("got %v, want %v", rec.pts, want)
	}
}

func TestDrawLineNonFinite(t *testing.T) {
	rec := newRecorder(10, 10)
	r := NewRasterizer(rec)
	r.DrawLine(pt(nan(), 0), pt(5, 5))
	r.FillPolygon([]vec.Vec2{pt(0, 0), pt(5, nan()), pt(0, 5)})
	if len(rec.pts) != 0 {
		t.Errorf("non-finite coordinates painted %v", rec.pts)
	}
}

func TestDrawPolygon(t *testing.T) {
	rec := newRecorder(20, 20)
	r := NewRasterizer(rec)
	r.DrawPolygon([]vec.Vec2{pt(2, 2), pt(8, 2), pt(8, 6), pt(2, 6)})

	want := make(map[image.Point]bool)
	for x := 2; x <= 8; x++ {
		want[image.Pt(x, 2)] = true
		want[image.Pt(x, 6)] = true
	}
	for y := 2; y <= 6; y++ {
		want[image.Pt(2, y)] = true
		want[image.Pt(8, y)] = true
	}
	diffSets(t, rec.set(), want)
}

func TestDegeneratePolygons(t *testing.T) {
	for n := range 3 {
		vertices := []vec.Vec2{pt(1, 1), pt(8, 1), pt(8, 8)}[:n]

		rec := newRecorder(10, 10)
		r := NewRasterizer(rec)
		r.DrawPolygon(vertices)
		r.FillPolygon(vertices)
		if len(rec.pts) != 0 {
			t.Errorf("%d vertices: painted %v", n, rec.pts)
		}
	}
}

func TestFillRectangle(t *testing.T) {
	vertices := []vec.Vec2{pt(2, 2), pt(8, 2), pt(8, 6), pt(2, 6)}

	// The bottom row has no edge crossing under the half-open rule and
	// is left to the outline.
	rec := newRecorder(12, 10)
	r := NewRasterizer(rec)
	r.FillPolygon(vertices)
	diffSets(t, rec.set(), rectSet(2, 2, 8, 5))

	r.DrawPolygon(vertices)
	diffSets(t, rec.set(), rectSet(2, 2, 8, 6))
}

func TestFillTriangle(t *testing.T) {
	rec := newRecorder(20, 20)
	NewRasterizer(rec).FillPolygon([]vec.Vec2{pt(0, 0), pt(10, 0), pt(0, 10)})

	// row y spans from 0 to the hypotenuse at x = 10-y
	want := make(map[image.Point]bool)
	for y := 0; y < 10; y++ {
		for x := 0; x <= 10-y; x++ {
			want[image.Pt(x, y)] = true
		}
	}
	diffSets(t, rec.set(), want)
}

func TestFillEvenOdd(t *testing.T) {
	c, err := NewCanvas(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	star := fivePointStar(32, 32, 25)
	NewRasterizer(c).FillPolygon(star)

	if got, _ := c.Pixel(32, 32); got != Black {
		t.Error("centre of the star is filled")
	}
	if got, _ := c.Pixel(32, 15); got != White {
		t.Error("top point of the star is not filled")
	}
}

func TestFillDoesNotModifyVertices(t *testing.T) {
	vertices := []vec.Vec2{pt(5.5, 1.2), pt(9.7, 8.1), pt(1.4, 7.6), pt(3, 3)}
	orig := slices.Clone(vertices)

	rec := newRecorder(10, 10)
	r := NewRasterizer(rec)
	r.FillPolygon(vertices)
	r.DrawPolygon(vertices)

	if !slices.Equal(vertices, orig) {
		t.Errorf("vertices changed from %v to %v", orig, vertices)
	}
}

func TestFillClipping(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := range 100 {
		n := 3 + rng.IntN(6)
		vertices := make([]vec.Vec2, n)
		for j := range vertices {
			vertices[j] = pt(rng.Float64()*80-20, rng.Float64()*80-20)
		}

		rec := newRecorder(40, 30)
		r := NewRasterizer(rec)
		r.FillPolygon(vertices)
		r.DrawPolygon(vertices)
		if rec.outside > 0 {
			t.Fatalf("%d: %d pixels painted outside the surface for %v",
				i, rec.outside, vertices)
		}
	}
}

func TestOddIntersectionDropped(t *testing.T) {
	rec := newRecorder(10, 10)
	r := NewRasterizer(rec)

	// a single edge crosses every scanline exactly once
	r.resetEdges()
	r.addEdge(pt(2, 0), pt(5, 9))
	r.fillEdges()
	if len(rec.pts) != 0 {
		t.Errorf("unpaired intersection painted %v", rec.pts)
	}

	// three crossings: the first two are paired, the third is dropped
	r.resetEdges()
	r.addEdge(pt(1, 0), pt(1, 5))
	r.addEdge(pt(3, 0), pt(3, 5))
	r.addEdge(pt(6, 0), pt(6, 5))
	r.fillEdges()
	diffSets(t, rec.set(), rectSet(1, 0, 3, 4))
}

func TestHorizontalEdgesSkipped(t *testing.T) {
	r := NewRasterizer(newRecorder(10, 10))
	r.resetEdges()
	r.addEdge(pt(0, 3), pt(9, 3))
	r.addEdge(pt(0, 3.4), pt(9, 2.6)) // horizontal after rounding
	if len(r.edges) != 0 {
		t.Errorf("horizontal edges kept: %v", r.edges)
	}
}

func TestRoundCoord(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{-0.5, -1},
		{-0.49, 0},
		{2.5, 3},
		{-2.5, -3},
		{1e300, maxCoord},
		{-1e300, -maxCoord},
	}
	for _, test := range tests {
		if got := roundCoord(test.in); got != test.want {
			t.Errorf("roundCoord(%g) = %d, want %d", test.in, got, test.want)
		}
	}
}

func ExampleRasterizer() {
	c, err := NewCanvas(8, 5)
	if err != nil {
		panic(err)
	}
	r := NewRasterizer(c)
	r.FillPolygon([]vec.Vec2{{X: 1, Y: 1}, {X: 6, Y: 1}, {X: 6, Y: 3}, {X: 1, Y: 3}})

	for y := range c.Height() {
		for x := range c.Width() {
			if p, _ := c.Pixel(x, y); p == White {
				fmt.Print("#")
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println()
	}
	// Output:
	// ........
	// .######.
	// .######.
	// ........
	// ........
}
