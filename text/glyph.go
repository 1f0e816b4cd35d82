package text

import (
	"fmt"
	"strings"
)

// Glyph is the bitmap for a single character, one byte per row.
type Glyph [glyphHeight]uint8

// GlyphFor returns the bitmap used to draw ch. Bytes outside 7-bit ASCII
// share the glyph of their low seven bits.
func GlyphFor(ch byte) Glyph {
	return Glyph(glyphs[ch&0x7f])
}

// Blank reports whether the glyph sets no pixels.
func (g Glyph) Blank() bool {
	return g == Glyph{}
}

func (g Glyph) String() string {
	var sb strings.Builder
	for _, row := range g {
		fmt.Fprintf(&sb, "%08b\n", row)
	}
	return strings.NewReplacer("0", " ", "1", "█").Replace(sb.String())
}
