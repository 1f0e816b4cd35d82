package screen

import (
	"encoding/binary"
	"image"

	"github.com/32bitkid/mode13/palette"
	"github.com/32bitkid/mode13/vga"
)

// Mode 13h: 320x200, one byte per pixel, linear.
const (
	Mode13Width  = 320
	Mode13Height = 200
	Mode13Base   = 0xA0000
)

type Mode13 struct {
	fb    *image.Paletted
	cache *palette.Cache
}

// EnterMode13 switches the hardware into mode 13h and resets the colour
// table so colours requested by a previous program do not leak in.
func EnterMode13(bios vga.BIOS, cache *palette.Cache) *Mode13 {
	if bios != nil {
		bios.SetMode(vga.Mode13)
	}
	cache.Reset()
	return &Mode13{
		// the mode switch clears video memory
		fb:    image.NewPaletted(image.Rect(0, 0, Mode13Width, Mode13Height), nil),
		cache: cache,
	}
}

func (m *Mode13) Mode() vga.Mode { return vga.Mode13 }
func (m *Mode13) Width() int     { return m.fb.Rect.Dx() }
func (m *Mode13) Height() int    { return m.fb.Rect.Dy() }

func (m *Mode13) Clear() {
	for i := range m.fb.Pix {
		m.fb.Pix[i] = 0
	}
}

func (m *Mode13) PutPixel(x, y int, c vga.RGB8) {
	m.fb.Pix[y*m.fb.Stride+x] = m.cache.Fetch(c)
}

func (m *Mode13) GetPixel(x, y int) vga.RGB8 {
	return m.cache.Color(m.fb.Pix[y*m.fb.Stride+x])
}

// DrawRect writes two pixels per store along each scanline and finishes an
// odd column with a single byte.
func (m *Mode13) DrawRect(ur, ll vga.Point, c vga.RGB8) {
	code := m.cache.Fetch(c)

	w, h := ur.X-ll.X, ll.Y-ur.Y
	if w <= 0 || h <= 0 {
		return
	}

	var (
		pix    = m.fb.Pix
		stride = m.fb.Stride
		words  = w >> 1
		odd    = w&1 != 0
		packed = uint16(code)<<8 | uint16(code)
		offset = ur.Y*stride + ll.X
	)

	for y := 0; y < h; y++ {
		i := offset
		for n := 0; n < words; n++ {
			binary.LittleEndian.PutUint16(pix[i:], packed)
			i += 2
		}
		if odd {
			pix[i] = code
		}
		offset += stride
	}
}

func (m *Mode13) DrawRectWH(ul vga.Point, w, h int, c vga.RGB8) {
	m.DrawRect(vga.Pt(ul.X+w, ul.Y), vga.Pt(ul.X, ul.Y+h), c)
}

// Pix exposes the raw frame buffer, row-major, Width bytes per row.
func (m *Mode13) Pix() []byte { return m.fb.Pix }

// Image returns the frame buffer with the current colour table attached.
// The pixels are shared, not copied.
func (m *Mode13) Image() *image.Paletted {
	m.fb.Palette = m.cache.Palette()
	return m.fb
}
