// Package text lays out strings in a fixed 8x8 bitmap font.
//
// Every character occupies one cell: the glyph plus padding on each side,
// multiplied by an integer scale. Lines wrap at an absolute x bound, breaking
// before a word that would not fit when possible. Only 7-bit ASCII has
// glyphs; other bytes must not be passed in.
package text

import (
	"strings"

	"github.com/32bitkid/mode13/vga"
)

const (
	glyphWidth  = 8
	glyphHeight = 8
	glyphCount  = 128

	PadHorz = 0
	PadVert = 2

	CellWidth  = glyphWidth + 2*PadHorz
	CellHeight = glyphHeight + 2*PadVert

	MaxScale = 127
)

// Surface is what text needs from a screen driver.
type Surface interface {
	DrawRectWH(ul vga.Point, w, h int, c vga.RGB8)
}

// DrawStrScale draws str with its first cell at ul. A background cell is
// filled first unless bg == fg, which is how callers ask for transparent
// text. Glyph pixels are drawn as scale x scale squares.
func DrawStrScale(s Surface, ul vga.Point, bg, fg vga.RGB8, str string, scale int, bound int) {
	scale = coerce(scale)
	cw, chh := CellWidth*scale, CellHeight*scale

	layout(ul, str, scale, bound, func(ch byte, col, row int) {
		cell := vga.Pt(ul.X+col*cw, ul.Y+row*chh)
		if bg != fg {
			s.DrawRectWH(cell, cw, chh, bg)
		}
		drawGlyph(s, cell.Add(vga.Pt(PadHorz*scale, PadVert*scale)), fg, glyphs[ch&0x7f], scale)
	})
}

// DrawStrBB runs the same layout as DrawStrScale without drawing and
// returns the size of the box it would cover.
func DrawStrBB(ul vga.Point, str string, scale int, bound int) vga.Point {
	scale = coerce(scale)
	cols, rows := layout(ul, str, scale, bound, nil)
	return vga.Pt(cols*CellWidth*scale, rows*CellHeight*scale)
}

// layout walks str, reporting where each visible character lands, and
// returns the widest row in columns and the number of rows.
func layout(ul vga.Point, str string, scale int, bound int, emit func(ch byte, col, row int)) (int, int) {
	if len(str) == 0 {
		return 0, 0
	}

	cw := CellWidth * scale
	fits := func(col, n int) bool {
		return ul.X+(col+n)*cw <= bound
	}

	var col, row, maxCols int
	// a break that replaced a space only opens a row once something follows
	broken := false
	for i := 0; i < len(str); i++ {
		ch := str[i]
		if broken {
			broken = false
			col = 0
			row++
		}
		if ch == '\n' {
			col = 0
			row++
			continue
		}

		if col > 0 {
			need := 1
			if ch == ' ' {
				need += wordLen(str[i+1:])
			}
			if !fits(col, need) {
				if ch == ' ' {
					broken = true
					continue
				}
				col = 0
				row++
			}
		}

		if emit != nil {
			emit(ch, col, row)
		}
		col++
		if col > maxCols {
			maxCols = col
		}
	}

	return maxCols, row + 1
}

// wordLen is the length of the word at the start of s.
func wordLen(s string) int {
	if i := strings.IndexAny(s, " \n"); i >= 0 {
		return i
	}
	return len(s)
}

func drawGlyph(s Surface, at vga.Point, fg vga.RGB8, bitmap [glyphHeight]uint8, scale int) {
	for y, bits := range bitmap {
		if bits == 0 {
			continue
		}
		for x := 0; x < glyphWidth; x++ {
			if bits&(0x80>>uint(x)) != 0 {
				s.DrawRectWH(vga.Pt(at.X+x*scale, at.Y+y*scale), scale, scale, fg)
			}
		}
	}
}

func coerce(scale int) int {
	if scale < 1 || scale > MaxScale {
		return 1
	}
	return scale
}
