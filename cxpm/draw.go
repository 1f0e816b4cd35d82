package cxpm

import "github.com/32bitkid/mode13/vga"

// Surface is the subset of a screen driver images are drawn onto.
type Surface interface {
	Width() int
	Height() int
	DrawRectWH(ul vga.Point, w, h int, c vga.RGB8)
}

// Draw decodes img straight onto dst with its upper-left corner at ul, each
// image pixel becoming a scale x scale block. Output is clipped to the right
// and bottom screen edges; ul itself must be on screen.
func Draw(dst Surface, ul vga.Point, img *Image, scale int) {
	if scale < 1 {
		scale = 1
	}

	h := dst.Height()
	for y := 0; y < img.Height && y < len(img.Lines); y++ {
		py := ul.Y + y*scale
		if py >= h {
			return
		}
		rh := scale
		if py+rh > h {
			rh = h - py
		}
		drawLine(dst, vga.Pt(ul.X, py), rh, img, img.Lines[y], scale)
	}
}

func drawLine(dst Surface, at vga.Point, rh int, img *Image, line []byte, scale int) {
	right := at.X + img.Width*scale
	if w := dst.Width(); right > w {
		right = w
	}

	s := newScanner(line)
	for x := at.X; x < right; {
		t, err := s.next()
		if err != nil {
			return
		}
		span := t.run * 2 * scale

		if t.hi == t.lo {
			if !img.transparent(t.hi) {
				w := span
				if x+w > right {
					w = right - x
				}
				dst.DrawRectWH(vga.Pt(x, at.Y), w, rh, img.Lookup(t.hi))
			}
			x += span
			continue
		}

		for i := 0; i < t.run; i++ {
			px := x + i*2*scale
			if px+scale > right {
				return
			}
			if !img.transparent(t.hi) {
				dst.DrawRectWH(vga.Pt(px, at.Y), scale, rh, img.Lookup(t.hi))
			}
			if px+2*scale > right {
				return
			}
			if !img.transparent(t.lo) {
				dst.DrawRectWH(vga.Pt(px+scale, at.Y), scale, rh, img.Lookup(t.lo))
			}
		}
		x += span
	}
}

// Center returns the upper-left corner that centres an image of size dims,
// scaled, on a screen of size screen. An axis that does not fit is pinned
// to zero.
func Center(screen, dims vga.Point, scale int) vga.Point {
	if scale < 1 {
		scale = 1
	}
	cx := screen.X - dims.X*scale
	if cx < 0 {
		cx = 0
	}
	cy := screen.Y - dims.Y*scale
	if cy < 0 {
		cy = 0
	}
	return vga.Pt(cx/2, cy/2)
}

// DrawCenter draws img centred on dst.
func DrawCenter(dst Surface, img *Image, scale int) {
	dims, _ := img.Stat()
	ul := Center(vga.Pt(dst.Width(), dst.Height()), dims, scale)
	Draw(dst, ul, img, scale)
}
