package assets

import (
	"github.com/32bitkid/mode13/cxpm"
	"github.com/32bitkid/mode13/vga"
)

// 16x8, an orange frame around a white panel.
var hsc = &cxpm.Image{
	Width:  16,
	Height: 8,
	Colors: []cxpm.Entry{
		{Code: 1, Color: vga.HSC},
		{Code: 2, Color: vga.White},
	},
	Lines: [][]byte{
		{0x00, 8, 0x11},
		{0x11, 0x00, 6, 0x22, 0x11},
		{0x11, 0x00, 6, 0x22, 0x11},
		{0x11, 0x00, 6, 0x22, 0x11},
		{0x11, 0x00, 6, 0x22, 0x11},
		{0x11, 0x00, 6, 0x22, 0x11},
		{0x11, 0x00, 6, 0x22, 0x11},
		{0x00, 8, 0x11},
	},
}

// 12x6, a spectrum on the right half; code 1 is never drawn.
var prism = &cxpm.Image{
	Width:  12,
	Height: 6,
	Colors: []cxpm.Entry{
		{Code: 1, Color: vga.Black},
		{Code: 2, Color: vga.RGB(0xff, 0x00, 0x00)},
		{Code: 3, Color: vga.RGB(0xff, 0x80, 0x00)},
		{Code: 4, Color: vga.RGB(0xff, 0xff, 0x00)},
		{Code: 5, Color: vga.RGB(0x00, 0xc0, 0x00)},
		{Code: 6, Color: vga.RGB(0x00, 0x40, 0xff)},
		{Code: 7, Color: vga.RGB(0x80, 0x00, 0xc0)},
	},
	TCode:    1,
	HasTCode: true,
	Lines: [][]byte{
		{0x11, 0x11, 0x11, 0x22, 0x22, 0x22},
		{0x11, 0x11, 0x11, 0x33, 0x33, 0x33},
		{0x11, 0x11, 0x11, 0x44, 0x44, 0x44},
		{0x11, 0x11, 0x11, 0x55, 0x55, 0x55},
		{0x11, 0x11, 0x11, 0x66, 0x66, 0x66},
		{0x11, 0x11, 0x11, 0x77, 0x77, 0x77},
	},
}
