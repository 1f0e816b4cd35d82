/*
Package cxpm implements the CXPM compressed image format.

A CXPM image has at most fifteen colours. Each colour has a 4-bit code, and
the codes of an image are contiguous from a start code of at least one.
Pixels are stored two to a byte, the left pixel in the high nibble, one byte
sequence per scanline. A scanline is a series of tokens: either a single
packed byte, or the three byte escape 0x00 followed by a run length and the
packed byte to repeat. Because codes start at one a packed byte is never
zero. One code may be declared transparent; pixels carrying it are skipped
when drawing.

The file form is little endian:

	magic     [4]byte "CXPM"
	width     uint16
	height    uint16
	colors    uint8   number of colour table entries
	tcode     uint8   bit 7 set if the low nibble is a transparency code
	table     colors x {code, r, g, b uint8}
	scanlines height x {length uint16, data [length]byte}
*/
package cxpm

import (
	"image/color"

	"github.com/32bitkid/mode13/vga"
)

const (
	magic = "CXPM"

	escape    = 0x00
	tcodeFlag = 0x80

	MaxColors = 15

	// runs shorter than minRun cost less stored as plain bytes
	minRun = 4
	maxRun = 255
)

// Entry is one row of the colour table.
type Entry struct {
	Code  uint8
	Color vga.RGB8
}

// Image is a decoded CXPM header plus its still-encoded scanlines. Images are
// treated as read-only once built.
type Image struct {
	Width, Height int
	Colors        []Entry

	TCode    uint8
	HasTCode bool

	Lines [][]byte
}

// Start is the code of the first colour table entry.
func (img *Image) Start() uint8 {
	if len(img.Colors) == 0 {
		return 0
	}
	return img.Colors[0].Code
}

// Lookup returns the colour for a code. A code outside the table panics.
func (img *Image) Lookup(code uint8) vga.RGB8 {
	return img.Colors[int(code)-int(img.Start())].Color
}

// Stat reports the image dimensions and the size of its colour table.
func (img *Image) Stat() (vga.Point, int) {
	return vga.Pt(img.Width, img.Height), len(img.Colors)
}

// TransparencyCode reports the code that is never drawn, if any.
func (img *Image) TransparencyCode() (uint8, bool) {
	return img.TCode, img.HasTCode
}

func (img *Image) transparent(code uint8) bool {
	return img.HasTCode && code == img.TCode
}

// Palette returns the colour table as a color.Palette indexed by code minus
// the start code. The transparency code maps to a fully transparent colour.
func (img *Image) Palette() color.Palette {
	p := make(color.Palette, len(img.Colors))
	for i, e := range img.Colors {
		if img.transparent(e.Code) {
			p[i] = color.RGBA{}
			continue
		}
		p[i] = color.RGBA{R: e.Color.R, G: e.Color.G, B: e.Color.B, A: 0xff}
	}
	return p
}

// Codes expands scanline y into one colour code per pixel. A short scanline
// yields fewer than Width codes.
func (img *Image) Codes(y int) []uint8 {
	codes := make([]uint8, 0, img.Width+1)
	s := newScanner(img.Lines[y])
	for len(codes) < img.Width {
		t, err := s.next()
		if err != nil {
			break
		}
		for i := 0; i < t.run && len(codes) < img.Width; i++ {
			codes = append(codes, t.hi, t.lo)
		}
	}
	if len(codes) > img.Width {
		codes = codes[:img.Width]
	}
	return codes
}
