// Package vga holds the value types shared by the drawing packages and the
// hardware collaborators they talk to: the BIOS mode switch, the DAC palette
// port pair and the text console.
package vga

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// Mode is a BIOS video mode number.
type Mode uint8

const (
	ModeText Mode = 0x03
	Mode13   Mode = 0x13
)

func (m Mode) String() string {
	switch m {
	case ModeText:
		return "Mode(Text)"
	case Mode13:
		return "Mode(13h)"
	}
	return "Mode(UNKNOWN)"
}

// Point is a screen coordinate, origin in the upper-left corner.
type Point struct{ X, Y int }

func Pt(x, y int) Point { return Point{x, y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// RGB8 is a 24-bit colour. It is compared by exact equality.
type RGB8 struct{ R, G, B uint8 }

func RGB(r, g, b uint8) RGB8 { return RGB8{r, g, b} }

func (c RGB8) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)<<8 | uint32(c.R)
	g = uint32(c.G)<<8 | uint32(c.G)
	b = uint32(c.B)<<8 | uint32(c.B)
	a = 0xFFFF
	return
}

// FromColor converts any colour to RGB8, dropping alpha.
func FromColor(c color.Color) RGB8 {
	if rgb, ok := c.(RGB8); ok {
		return rgb
	}
	clr, _ := colorful.MakeColor(c)
	r, g, b := clr.RGB255()
	return RGB8{r, g, b}
}

// ParseColor accepts "#rrggbb" or an SVG colour name.
func ParseColor(s string) (RGB8, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		clr, err := colorful.Hex(s)
		if err != nil {
			return RGB8{}, errors.Wrapf(err, "vga: bad colour %q", s)
		}
		r, g, b := clr.RGB255()
		return RGB8{r, g, b}, nil
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGB8{named.R, named.G, named.B}, nil
	}
	return RGB8{}, errors.Errorf("vga: unknown colour %q", s)
}
