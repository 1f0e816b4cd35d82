// Package mode13 is a small graphics library for VGA mode 13h, the 320x200
// 256-colour mode.
//
// A GL owns the palette cache and the active screen driver. Callers enter
// graphics mode, draw with plain points and RGB colours, and exit back to
// text mode. Colours are mapped onto hardware palette slots as they are
// used; a session may use at most 254 colours besides black and white
// before slots are recycled and earlier pixels change colour.
//
// Drawing never fails. Rectangles and pixels are not clipped, so drawing
// off the surface panics; lines, text and images clip for themselves.
package mode13

import (
	"fmt"
	"image"
	"io"
	"log"

	"github.com/32bitkid/mode13/assets"
	"github.com/32bitkid/mode13/cxpm"
	"github.com/32bitkid/mode13/palette"
	"github.com/32bitkid/mode13/screen"
	"github.com/32bitkid/mode13/text"
	"github.com/32bitkid/mode13/vga"
)

type GL struct {
	bios    vga.BIOS
	console vga.Console
	port    vga.Port
	images  assets.Table
	log     *log.Logger

	cache  *palette.Cache
	driver screen.Driver
}

// New returns a GL in text mode. Without options it runs against an
// emulated BIOS, console and DAC with the compiled-in images.
func New(options ...func(*GL) error) (*GL, error) {
	emu := vga.NewEmulator()
	dac := vga.NewDAC()
	g := &GL{
		bios:    emu,
		console: emu,
		port:    dac,
		images:  assets.Builtin(),
		log:     log.New(io.Discard, "", 0),
		cache:   palette.New(dac),
		driver:  screen.Text{},
	}
	if err := g.SetOptions(options...); err != nil {
		return nil, err
	}
	return g, nil
}

// Enter switches into mode m. Entering mode 13h again resets the palette
// and clears the screen.
func (g *GL) Enter(m vga.Mode) {
	switch m {
	case vga.Mode13:
		if g.driver.Mode() == vga.ModeText {
			g.console.SwapBuffers()
		}
		g.driver = screen.EnterMode13(g.bios, g.cache)
		g.log.Printf("entered %v (%dx%d)", m, g.driver.Width(), g.driver.Height())
	case vga.ModeText:
		g.Exit()
	default:
		g.log.Printf("cannot enter %v (0x%02x)", m, uint8(m))
	}
}

// Exit restores text mode, hides the hardware cursor and brings back the
// console. It does nothing in text mode.
func (g *GL) Exit() {
	if g.driver.Mode() == vga.ModeText {
		return
	}
	g.bios.SetMode(vga.ModeText)
	g.bios.HideCursor()
	g.console.SwapBuffers()
	g.driver = screen.Text{}
	g.log.Printf("exited to %v", vga.ModeText)
}

func (g *GL) Mode() vga.Mode { return g.driver.Mode() }

func (g *GL) W() int { return g.driver.Width() }

func (g *GL) H() int { return g.driver.Height() }

func (g *GL) Clrscr() { g.driver.Clear() }

func (g *GL) PutPixel(p vga.Point, c vga.RGB8) { g.driver.PutPixel(p.X, p.Y, c) }

func (g *GL) GetPixel(p vga.Point) vga.RGB8 { return g.driver.GetPixel(p.X, p.Y) }

// DrawRect fills the rectangle with upper-right corner ur and lower-left
// corner ll, exclusive of the right column and bottom row.
func (g *GL) DrawRect(ur, ll vga.Point, c vga.RGB8) { g.driver.DrawRect(ur, ll, c) }

func (g *GL) DrawRectWH(ul vga.Point, w, h int, c vga.RGB8) { g.driver.DrawRectWH(ul, w, h, c) }

func (g *GL) DrawLine(p0, p1 vga.Point, c vga.RGB8) {
	screen.Line(g.driver, p0, p1, 1, c)
}

func (g *GL) DrawLineWidth(p0, p1 vga.Point, width int, c vga.RGB8) {
	screen.Line(g.driver, p0, p1, width, c)
}

// DrawStr draws str at scale 1, wrapping at the right edge of the screen.
// Passing bg == fg leaves the background untouched.
func (g *GL) DrawStr(ul vga.Point, bg, fg vga.RGB8, str string) {
	text.DrawStrScale(g.driver, ul, bg, fg, str, 1, g.W())
}

// DrawStrScale draws str wrapping at the absolute x coordinate bound.
func (g *GL) DrawStrScale(ul vga.Point, bg, fg vga.RGB8, str string, scale, bound int) {
	text.DrawStrScale(g.driver, ul, bg, fg, str, scale, bound)
}

// DrawStrBB returns the size of the box DrawStrScale would fill.
func (g *GL) DrawStrBB(ul vga.Point, str string, scale, bound int) vga.Point {
	return text.DrawStrBB(ul, str, scale, bound)
}

func (g *GL) DrawStrf(ul vga.Point, bg, fg vga.RGB8, format string, a ...interface{}) {
	g.DrawStr(ul, bg, fg, fmt.Sprintf(format, a...))
}

func (g *GL) DrawStrfScale(ul vga.Point, bg, fg vga.RGB8, scale, bound int, format string, a ...interface{}) {
	g.DrawStrScale(ul, bg, fg, fmt.Sprintf(format, a...), scale, bound)
}

func (g *GL) DrawStrfBB(ul vga.Point, scale, bound int, format string, a ...interface{}) vga.Point {
	return g.DrawStrBB(ul, fmt.Sprintf(format, a...), scale, bound)
}

func (g *GL) image(fid assets.FID) *cxpm.Image {
	img := g.images.Lookup(fid)
	if img == nil {
		g.log.Printf("no image for %v", fid)
	}
	return img
}

func (g *GL) DrawImg(ul vga.Point, fid assets.FID) {
	g.DrawImgScale(ul, fid, 1)
}

func (g *GL) DrawImgScale(ul vga.Point, fid assets.FID, scale int) {
	if img := g.image(fid); img != nil {
		cxpm.Draw(g.driver, ul, img, scale)
	}
}

func (g *GL) DrawImgCenter(fid assets.FID) {
	g.DrawImgCenterScale(fid, 1)
}

// DrawImgCenterScale centres the scaled image on screen. An image larger
// than the screen is drawn from the upper-left corner and cut off.
func (g *GL) DrawImgCenterScale(fid assets.FID, scale int) {
	if img := g.image(fid); img != nil {
		cxpm.DrawCenter(g.driver, img, scale)
	}
}

// ImgStat reports an image's size and colour count. Both are zero for an
// unknown fid.
func (g *GL) ImgStat(fid assets.FID) (vga.Point, int) {
	if img := g.image(fid); img != nil {
		return img.Stat()
	}
	return vga.Point{}, 0
}

func (g *GL) ImgStatTCode(fid assets.FID) (uint8, bool) {
	if img := g.image(fid); img != nil {
		return img.TransparencyCode()
	}
	return 0, false
}

// Snapshot copies the frame buffer together with the current palette. It
// returns nil in text mode.
func (g *GL) Snapshot() *image.Paletted {
	m, ok := g.driver.(*screen.Mode13)
	if !ok {
		return nil
	}
	src := m.Image()
	dst := image.NewPaletted(src.Rect, src.Palette)
	copy(dst.Pix, src.Pix)
	return dst
}
