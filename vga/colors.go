package vga

var (
	Black = RGB8{0x00, 0x00, 0x00}
	White = RGB8{0xFF, 0xFF, 0xFF}
	HSC   = RGB8{0xF3, 0x6E, 0x21}
)

// EGA is the 16 colour CGA/EGA set, handy for callers that only need the
// classic colours.
var EGA = [16]RGB8{
	{0x00, 0x00, 0x00},
	{0x00, 0x00, 0xAA},
	{0x00, 0xAA, 0x00},
	{0x00, 0xAA, 0xAA},
	{0xAA, 0x00, 0x00},
	{0xAA, 0x00, 0xAA},
	{0xAA, 0x55, 0x00},
	{0xAA, 0xAA, 0xAA},

	{0x55, 0x55, 0x55},
	{0x55, 0x55, 0xFF},
	{0x55, 0xFF, 0x55},
	{0x55, 0xFF, 0xFF},
	{0xFF, 0x55, 0x55},
	{0xFF, 0x55, 0xFF},
	{0xFF, 0xFF, 0x55},
	{0xFF, 0xFF, 0xFF},
}
