package screen

import (
	"image"

	"github.com/32bitkid/mode13/vga"
)

// Line strokes the half-open segment [p0, p1) using only filled rectangles.
//
// Width is applied along a single axis: shallow segments are thickened
// downwards, steep and diagonal ones to the right. This is not a true
// perpendicular stroke. Endpoints are clamped to the surface and anything
// still falling off it, such as a row at y == Height, is dropped.
func Line(d Driver, p0, p1 vga.Point, width int, c vga.RGB8) {
	if p0.X > p1.X {
		p0, p1 = p1, p0
	}

	w, h := d.Width(), d.Height()
	clip(&p0.X, 0, w)
	clip(&p0.Y, 0, h)
	clip(&p1.X, 0, w)
	clip(&p1.Y, 0, h)

	dx, dy := p1.X-p0.X, p1.Y-p0.Y

	switch {
	case dy == 0:
		fill(d, p0, dx, width, c)
	case dx == 0:
		swapIf(&p0, &p1, p0.Y > p1.Y)
		fill(d, p0, width, p1.Y-p0.Y, c)
	case dx == absInt(dy):
		stepY := sign(dy)
		for i := 0; i < dx; i++ {
			fill(d, vga.Pt(p0.X+i, p0.Y+i*stepY), width, 1, c)
		}
	case absInt(dy) > dx:
		steep(d, p0, dx, dy, width, c)
	default:
		shallow(d, p0, dx, dy, width, c)
	}
}

// steep walks y one row at a time; dx is never negative here.
func steep(d Driver, p0 vga.Point, dx, dy, width int, c vga.RGB8) {
	var (
		stepY    = sign(dy)
		ady      = absInt(dy)
		dE       = 2 * dx
		dNE      = 2 * (dx - ady)
		decision = 2*dx - ady
		x        = p0.X
	)

	for i := 0; i < ady; i++ {
		fill(d, vga.Pt(x, p0.Y+i*stepY), width, 1, c)
		if decision > 0 {
			x++
			decision += dNE
		} else {
			decision += dE
		}
	}
}

func shallow(d Driver, p0 vga.Point, dx, dy, width int, c vga.RGB8) {
	var (
		stepY    = sign(dy)
		ady      = absInt(dy)
		dE       = 2 * ady
		dNE      = 2 * (ady - dx)
		decision = 2*ady - dx
		y        = p0.Y
	)

	for i := 0; i < dx; i++ {
		fill(d, vga.Pt(p0.X+i, y), 1, width, c)
		if decision > 0 {
			y += stepY
			decision += dNE
		} else {
			decision += dE
		}
	}
}

// fill draws the part of the w x h rectangle at ul that lies on d.
func fill(d Driver, ul vga.Point, w, h int, c vga.RGB8) {
	r := image.Rect(ul.X, ul.Y, ul.X+w, ul.Y+h).Intersect(image.Rect(0, 0, d.Width(), d.Height()))
	if r.Empty() {
		return
	}
	d.DrawRectWH(vga.Pt(r.Min.X, r.Min.Y), r.Dx(), r.Dy(), c)
}
