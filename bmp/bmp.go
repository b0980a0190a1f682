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

// Package bmp writes canvases as uncompressed 24-bit BMP files.
//
// The output consists of a BITMAPFILEHEADER and a BITMAPINFOHEADER
// (54 bytes together), followed by the pixel rows, bottom row first.
// Each pixel is stored as three bytes in blue, green, red order and each
// row is padded with zero bytes to a multiple of four bytes.
package bmp

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"seehuhn.de/go/polyfill"
)

// Source is an image which can be written as a bitmap.
// Pixels must return Width()*Height() colors in row-major order, top row
// first; [polyfill.Canvas] implements this interface.
type Source interface {
	Width() int
	Height() int
	Pixels() []polyfill.Color
}

// ErrTooLarge is returned if an image cannot be described by the 32-bit
// size fields of the bitmap header.
var ErrTooLarge = errors.New("image too large for BMP")

const (
	// HeaderSize is the combined size of the file and info headers.
	// The pixel data starts directly after the headers.
	HeaderSize = fileHeaderSize + infoHeaderSize

	// PixelsPerMeter is the resolution recorded in the header, in both
	// directions.  This corresponds to 72 dpi.
	PixelsPerMeter = 2835

	fileHeaderSize = 14
	infoHeaderSize = 40
	bitsPerPixel   = 24
	bytesPerPixel  = bitsPerPixel / 8
)

// fileHeader is the BITMAPFILEHEADER structure.
type fileHeader struct {
	Type      [2]byte // "BM"
	Size      uint32  // size of the file in bytes
	Reserved1 uint16  // must be zero
	Reserved2 uint16  // must be zero
	OffBits   uint32  // offset of the pixel data
}

// infoHeader is the BITMAPINFOHEADER structure.
type infoHeader struct {
	Size            uint32 // size of this structure
	Width           int32  // width in pixels
	Height          int32  // positive: rows are stored bottom-up
	Planes          uint16 // must be 1
	BitCount        uint16 // bits per pixel
	Compression     uint32 // 0 for uncompressed
	SizeImage       uint32 // may be 0 for uncompressed images
	XPixelsPerM     int32  // horizontal resolution
	YPixelsPerM     int32  // vertical resolution
	ColorsUsed      uint32 // palette size, 0 for 24-bit images
	ColorsImportant uint32 // 0 means all colors are important
}

// Padding returns the number of zero bytes appended to each row of an
// image of the given width.
func Padding(width int) int {
	return (4 - width*bytesPerPixel%4) % 4
}

// FileSize returns the size in bytes of the BMP file for a width×height
// image.
func FileSize(width, height int) int {
	return HeaderSize + (width*bytesPerPixel+Padding(width))*height
}

// Encode writes src to w in BMP format.
func Encode(w io.Writer, src Source) error {
	width, height := src.Width(), src.Height()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("bmp: invalid image size %dx%d", width, height)
	}
	if width > math.MaxInt32 || height > math.MaxInt32 ||
		(width*bytesPerPixel+3)/4 > (math.MaxUint32-HeaderSize)/4/height {
		return fmt.Errorf("bmp: %dx%d: %w", width, height, ErrTooLarge)
	}
	pixels := src.Pixels()
	if len(pixels) != width*height {
		return fmt.Errorf("bmp: %dx%d image has %d pixels",
			width, height, len(pixels))
	}

	fh := fileHeader{
		Type:    [2]byte{'B', 'M'},
		Size:    uint32(FileSize(width, height)),
		OffBits: HeaderSize,
	}
	ih := infoHeader{
		Size:        infoHeaderSize,
		Width:       int32(width),
		Height:      int32(height),
		Planes:      1,
		BitCount:    bitsPerPixel,
		Compression: 0,
		SizeImage:   0,
		XPixelsPerM: PixelsPerMeter,
		YPixelsPerM: PixelsPerMeter,
	}
	if err := binary.Write(w, binary.LittleEndian, &fh); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, &ih); err != nil {
		return err
	}

	// One buffer holds a full row including its padding; the padding
	// bytes are never written to and stay zero.
	row := make([]byte, width*bytesPerPixel+Padding(width))
	for y := height - 1; y >= 0; y-- {
		for x, c := range pixels[y*width : (y+1)*width] {
			row[3*x] = c.B()
			row[3*x+1] = c.G()
			row[3*x+2] = c.R()
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes src to the named file in BMP format.  An existing file
// is truncated.  Errors are wrapped with the file name.
func WriteFile(name string, src Source) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := writeAndClose(f, src); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	polyfill.Logger().Info("bitmap written",
		"file", name, "width", src.Width(), "height", src.Height(),
		"bytes", FileSize(src.Width(), src.Height()))
	return nil
}

// writeAndClose encodes src to w and closes w.  The first error
// encountered is returned; w is closed in every case.
func writeAndClose(w io.WriteCloser, src Source) (err error) {
	defer func() {
		closeErr := w.Close()
		if err == nil {
			err = closeErr
		}
	}()

	buf := bufio.NewWriter(w)
	if err := Encode(buf, src); err != nil {
		return err
	}
	return buf.Flush()
}
