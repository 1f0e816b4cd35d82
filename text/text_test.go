package text

import (
	"strings"
	"testing"

	"github.com/32bitkid/mode13/vga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rect struct {
	ul   vga.Point
	w, h int
	c    vga.RGB8
}

type recorder struct {
	rects []rect
}

func (r *recorder) DrawRectWH(ul vga.Point, w, h int, c vga.RGB8) {
	r.rects = append(r.rects, rect{ul, w, h, c})
}

// bitsInA is the number of set pixels in the 'A' glyph.
const bitsInA = 24

func TestTransparentText(t *testing.T) {
	var r recorder
	DrawStrScale(&r, vga.Pt(0, 0), vga.White, vga.White, "A", 1, 320)

	require.Len(t, r.rects, bitsInA)
	assert.Equal(t, rect{vga.Pt(2, PadVert), 1, 1, vga.White}, r.rects[0])
	for _, rc := range r.rects {
		assert.Equal(t, vga.White, rc.c)
	}
}

func TestOpaqueTextFillsCell(t *testing.T) {
	var r recorder
	DrawStrScale(&r, vga.Pt(10, 20), vga.Black, vga.White, "A", 1, 320)

	require.Len(t, r.rects, bitsInA+1)
	assert.Equal(t, rect{vga.Pt(10, 20), CellWidth, CellHeight, vga.Black}, r.rects[0])
}

func TestScaledGlyphPixels(t *testing.T) {
	var r recorder
	DrawStrScale(&r, vga.Pt(0, 0), vga.White, vga.White, "A", 2, 320)

	require.Len(t, r.rects, bitsInA)
	assert.Equal(t, rect{vga.Pt(4, 2*PadVert), 2, 2, vga.White}, r.rects[0])
}

func TestSpaceDrawsOnlyBackground(t *testing.T) {
	var r recorder
	DrawStrScale(&r, vga.Pt(0, 0), vga.Black, vga.White, " ", 1, 320)
	assert.Equal(t, []rect{{vga.Pt(0, 0), CellWidth, CellHeight, vga.Black}}, r.rects)
}

func TestDrawStrBB(t *testing.T) {
	cases := []struct {
		name  string
		ul    vga.Point
		str   string
		scale int
		bound int
		want  vga.Point
	}{
		{"empty", vga.Pt(0, 0), "", 1, 320, vga.Pt(0, 0)},
		{"single", vga.Pt(0, 0), "A", 1, 320, vga.Pt(8, 12)},
		{"wrap at bound", vga.Pt(0, 0), "AB", 1, 8, vga.Pt(8, 24)},
		{"newline", vga.Pt(0, 0), "AB\nC", 1, 320, vga.Pt(16, 24)},
		{"space fits", vga.Pt(0, 0), "AB CD", 1, 320, vga.Pt(40, 12)},
		{"word moves to next row", vga.Pt(0, 0), "AB CDE", 1, 40, vga.Pt(24, 24)},
		{"bound is absolute", vga.Pt(300, 0), "AB", 1, 320, vga.Pt(16, 12)},
		{"bound is absolute wrap", vga.Pt(300, 0), "ABC", 1, 320, vga.Pt(16, 24)},
		{"scale", vga.Pt(0, 0), "A", 2, 320, vga.Pt(16, 24)},
		{"scale zero", vga.Pt(0, 0), "A", 0, 320, vga.Pt(8, 12)},
		{"scale too large", vga.Pt(0, 0), "A", 200, 320, vga.Pt(8, 12)},
		{"long word never fits", vga.Pt(0, 0), "ABCD", 1, 16, vga.Pt(16, 24)},
		{"trailing space at bound", vga.Pt(0, 0), "AB ", 1, 16, vga.Pt(16, 12)},
		{"trailing spaces at bound", vga.Pt(0, 0), "AB  ", 1, 16, vga.Pt(16, 24)},
		{"space break then word", vga.Pt(0, 0), "AB C", 1, 16, vga.Pt(16, 24)},
		{"space break then newline", vga.Pt(0, 0), "AB \nC", 1, 16, vga.Pt(16, 36)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DrawStrBB(tc.ul, tc.str, tc.scale, tc.bound))
		})
	}
}

func TestLayoutMatchesBB(t *testing.T) {
	var r recorder
	str := "HELLO WORLD"
	DrawStrScale(&r, vga.Pt(0, 0), vga.Black, vga.White, str, 1, 48)

	bb := DrawStrBB(vga.Pt(0, 0), str, 1, 48)
	assert.Equal(t, vga.Pt(40, 24), bb)

	var cells []vga.Point
	for _, rc := range r.rects {
		if rc.c == vga.Black {
			cells = append(cells, rc.ul)
		}
	}
	// the space at the break is swallowed
	require.Len(t, cells, len(str)-1)
	assert.Equal(t, vga.Pt(0, 12), cells[5])
	for _, ul := range cells {
		assert.True(t, ul.X+CellWidth <= bb.X)
		assert.True(t, ul.Y+CellHeight <= bb.Y)
	}
}

func TestEmptyStringDrawsNothing(t *testing.T) {
	var r recorder
	DrawStrScale(&r, vga.Pt(0, 0), vga.Black, vga.White, "", 1, 320)
	assert.Empty(t, r.rects)
}

func TestGlyphString(t *testing.T) {
	g := GlyphFor('!')
	lines := strings.Split(g.String(), "\n")
	assert.Equal(t, "   ██   ", lines[0])
	assert.Equal(t, "        ", lines[5])

	assert.True(t, GlyphFor(' ').Blank())
	assert.False(t, g.Blank())
}
