// Package screen drives an indexed-colour frame buffer.
//
// A Driver is one hardware video mode. Callers are responsible for keeping
// coordinates on the surface: the primitives here do not clip, and an
// off-surface write panics on the underlying slice.
package screen

import "github.com/32bitkid/mode13/vga"

type Driver interface {
	Mode() vga.Mode
	Width() int
	Height() int

	Clear()
	PutPixel(x, y int, c vga.RGB8)
	GetPixel(x, y int) vga.RGB8

	// DrawRect fills the rectangle spanned by its upper-right and
	// lower-left corners. The right and bottom edges are exclusive.
	DrawRect(ur, ll vga.Point, c vga.RGB8)
	DrawRectWH(ul vga.Point, w, h int, c vga.RGB8)
}

// Text dimensions, in character cells.
const (
	TextWidth  = 80
	TextHeight = 25
)

// Text is the driver installed while no graphics mode is active. It reports
// the text console's dimensions and ignores every draw call.
type Text struct{}

func (Text) Mode() vga.Mode { return vga.ModeText }
func (Text) Width() int     { return TextWidth }
func (Text) Height() int    { return TextHeight }

func (Text) Clear() {}

func (Text) PutPixel(x, y int, c vga.RGB8) {}

func (Text) GetPixel(x, y int) vga.RGB8 { return vga.Black }

func (Text) DrawRect(ur, ll vga.Point, c vga.RGB8) {}

func (Text) DrawRectWH(ul vga.Point, w, h int, c vga.RGB8) {}
