// Package palette maps RGB colours onto the 256 entry hardware colour table.
//
// Slot 0 is always black and slot 255 always white. The remaining slots are
// handed out in order as new colours are requested and recycled oldest-first
// once the table is full. A recycled slot silently changes the colour of any
// pixel already drawn with it.
package palette

import (
	"image/color"

	"github.com/32bitkid/mode13/vga"
)

const (
	Size       = 256
	BlackIndex = 0
	WhiteIndex = Size - 1
	Reserved   = 2

	first = BlackIndex + 1
	last  = WhiteIndex - 1
)

// Cache mirrors the hardware table in memory so lookups never touch the
// ports.
type Cache struct {
	port   vga.Port
	table  [Size]vga.RGB8
	cursor uint8
}

// New returns a cache writing through port, already reset.
func New(port vga.Port) *Cache {
	c := &Cache{port: port}
	c.Reset()
	return c
}

// Reset rewrites the reserved colours and rewinds the fill cursor.
func (c *Cache) Reset() {
	c.table[BlackIndex] = vga.Black
	c.table[WhiteIndex] = vga.White
	c.write(BlackIndex, vga.Black)
	c.write(WhiteIndex, vga.White)
	c.cursor = first
}

// Fetch returns the table index for clr, allocating a slot on a miss.
func (c *Cache) Fetch(clr vga.RGB8) uint8 {
	if clr == c.table[BlackIndex] {
		return BlackIndex
	}
	if clr == c.table[WhiteIndex] {
		return WhiteIndex
	}

	// only slots below the cursor have been handed out since the last wrap
	for i := uint8(first); i < c.cursor; i++ {
		if c.table[i] == clr {
			return i
		}
	}

	idx := c.cursor
	c.write(idx, clr)
	c.table[idx] = clr
	c.cursor %= last
	c.cursor++
	return idx
}

// Color is the reverse mapping used when reading pixels back.
func (c *Cache) Color(idx uint8) vga.RGB8 { return c.table[idx] }

// Cursor is the slot the next new colour will occupy.
func (c *Cache) Cursor() uint8 { return c.cursor }

// Palette snapshots the table for use with image.Paletted.
func (c *Cache) Palette() color.Palette {
	p := make(color.Palette, Size)
	for i, clr := range c.table {
		p[i] = clr
	}
	return p
}

// write loads one colour register. The DAC only has 6 bits per channel.
func (c *Cache) write(idx uint8, clr vga.RGB8) {
	if c.port == nil {
		return
	}
	c.port.Outb(vga.PortDACWriteIndex, idx)
	c.port.Outb(vga.PortDACData, clr.R>>2)
	c.port.Outb(vga.PortDACData, clr.G>>2)
	c.port.Outb(vga.PortDACData, clr.B>>2)
}
