package text

// glyphs holds one 8x8 bitmap per 7-bit ASCII code. Each byte is a row, most
// significant bit leftmost. Codes without an entry render blank.
var glyphs = [glyphCount][glyphHeight]uint8{
	0x21: {0x18, 0x18, 0x18, 0x18, 0x18, 0x00, 0x18, 0x18}, // '!'
	0x27: {0x10, 0x10, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00}, // "'"
	0x2b: {0x00, 0x00, 0x10, 0x10, 0x7e, 0x10, 0x10, 0x00}, // '+'
	0x2c: {0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x08}, // ','
	0x2d: {0x00, 0x00, 0x00, 0x00, 0x7e, 0x00, 0x00, 0x00}, // '-'
	0x2e: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18}, // '.'
	0x2f: {0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80}, // '/'
	0x30: {0x3c, 0x42, 0x46, 0x4a, 0x52, 0x62, 0x42, 0x3c}, // '0'
	0x31: {0x08, 0x18, 0x08, 0x08, 0x08, 0x08, 0x08, 0x7e}, // '1'
	0x32: {0x78, 0x04, 0x02, 0x06, 0x0c, 0x18, 0x30, 0x7e}, // '2'
	0x33: {0x7c, 0x02, 0x02, 0x3e, 0x02, 0x02, 0x02, 0x7c}, // '3'
	0x34: {0x42, 0x42, 0x42, 0x3e, 0x02, 0x02, 0x02, 0x02}, // '4'
	0x35: {0x7e, 0x40, 0x40, 0x3c, 0x02, 0x02, 0x02, 0x7c}, // '5'
	0x36: {0x3e, 0x40, 0x40, 0x40, 0x7c, 0x42, 0x42, 0x3c}, // '6'
	0x37: {0x7e, 0x02, 0x04, 0x3e, 0x10, 0x20, 0x40, 0x40}, // '7'
	0x38: {0x3c, 0x42, 0x42, 0x3c, 0x3c, 0x42, 0x42, 0x3c}, // '8'
	0x39: {0x3c, 0x42, 0x42, 0x42, 0x3e, 0x02, 0x02, 0x7c}, // '9'
	0x3d: {0x00, 0x00, 0x00, 0x7e, 0x00, 0x7e, 0x00, 0x00}, // '='
	0x3f: {0x00, 0x38, 0x44, 0x18, 0x10, 0x00, 0x10, 0x10}, // '?'
	0x41: {0x3c, 0x66, 0x42, 0x42, 0x7e, 0x42, 0x42, 0x42}, // 'A'
	0x42: {0x7c, 0x42, 0x42, 0x5c, 0x5c, 0x42, 0x42, 0x7c}, // 'B'
	0x43: {0x3c, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x3c}, // 'C'
	0x44: {0x78, 0x44, 0x42, 0x42, 0x42, 0x42, 0x44, 0x78}, // 'D'
	0x45: {0x7e, 0x40, 0x40, 0x7e, 0x40, 0x40, 0x40, 0x7e}, // 'E'
	0x46: {0x7e, 0x40, 0x40, 0x7e, 0x40, 0x40, 0x40, 0x40}, // 'F'
	0x47: {0x3c, 0x40, 0x40, 0x40, 0x4c, 0x42, 0x42, 0x3c}, // 'G'
	0x48: {0x42, 0x42, 0x42, 0x7e, 0x42, 0x42, 0x42, 0x42}, // 'H'
	0x49: {0x7e, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x7e}, // 'I'
	0x4a: {0x7e, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x70}, // 'J'
	0x4b: {0x42, 0x44, 0x48, 0x70, 0x70, 0x48, 0x44, 0x42}, // 'K'
	0x4c: {0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x7e}, // 'L'
	0x4d: {0x66, 0x66, 0x5a, 0x5a, 0x42, 0x42, 0x42, 0x42}, // 'M'
	0x4e: {0x42, 0x42, 0x62, 0x52, 0x4a, 0x46, 0x42, 0x42}, // 'N'
	0x4f: {0x3c, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x3c}, // 'O'
	0x50: {0x7c, 0x42, 0x42, 0x7c, 0x40, 0x40, 0x40, 0x40}, // 'P'
	0x51: {0x3c, 0x42, 0x42, 0x42, 0x52, 0x4a, 0x44, 0x3a}, // 'Q'
	0x52: {0x7c, 0x42, 0x42, 0x7c, 0x70, 0x48, 0x44, 0x42}, // 'R'
	0x53: {0x3e, 0x40, 0x40, 0x70, 0x0c, 0x02, 0x02, 0x7c}, // 'S'
	0x54: {0x7e, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08}, // 'T'
	0x55: {0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x3c}, // 'U'
	0x56: {0x42, 0x42, 0x42, 0x42, 0x42, 0x24, 0x24, 0x18}, // 'V'
	0x57: {0x42, 0x42, 0x42, 0x42, 0x42, 0x5a, 0x5a, 0x24}, // 'W'
	0x58: {0x42, 0x42, 0x42, 0x3c, 0x3c, 0x42, 0x42, 0x42}, // 'X'
	0x59: {0x42, 0x42, 0x42, 0x42, 0x3c, 0x08, 0x08, 0x08}, // 'Y'
	0x5a: {0x7e, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x7e}, // 'Z'
	0x5b: {0x3c, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x3c}, // '['
	0x5c: {0x80, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01}, // '\\'
	0x5d: {0x3c, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x3c}, // ']'
	0x5e: {0x10, 0x28, 0x44, 0x00, 0x00, 0x00, 0x00, 0x00}, // '^'
	0x5f: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7e}, // '_'
	0x60: {0x40, 0x30, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00}, // '`'
	0x61: {0x00, 0x00, 0x00, 0x3c, 0x42, 0x42, 0x46, 0x3a}, // 'a'
	0x62: {0x40, 0x40, 0x40, 0x40, 0x7c, 0x42, 0x42, 0x7c}, // 'b'
	0x63: {0x00, 0x00, 0x00, 0x00, 0x3e, 0x40, 0x40, 0x3e}, // 'c'
	0x64: {0x02, 0x02, 0x02, 0x3e, 0x42, 0x42, 0x46, 0x3a}, // 'd'
	0x65: {0x00, 0x00, 0x00, 0x1c, 0x22, 0x3c, 0x20, 0x1e}, // 'e'
	0x66: {0x00, 0x0c, 0x12, 0x10, 0x3c, 0x10, 0x10, 0x10}, // 'f'
	0x67: {0x00, 0x00, 0x00, 0x3c, 0x62, 0x3e, 0x02, 0x1c}, // 'g'
	0x68: {0x00, 0x20, 0x20, 0x20, 0x2c, 0x32, 0x22, 0x22}, // 'h'
	0x69: {0x00, 0x00, 0x18, 0x00, 0x18, 0x08, 0x08, 0x1c}, // 'i'
	0x6a: {0x00, 0x00, 0x0c, 0x00, 0x04, 0x04, 0x44, 0x38}, // 'j'
	0x6b: {0x20, 0x20, 0x20, 0x24, 0x28, 0x30, 0x28, 0x24}, // 'k'
	0x6c: {0x60, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x0c}, // 'l'
	0x6d: {0x00, 0x00, 0x00, 0x00, 0x5c, 0x6a, 0x4a, 0x4a}, // 'm'
	0x6e: {0x00, 0x00, 0x00, 0x00, 0x5c, 0x62, 0x42, 0x42}, // 'n'
	0x6f: {0x00, 0x00, 0x00, 0x3c, 0x42, 0x42, 0x42, 0x3c}, // 'o'
	0x70: {0x00, 0x00, 0x00, 0x1c, 0x22, 0x3c, 0x20, 0x20}, // 'p'
	0x71: {0x00, 0x00, 0x00, 0x30, 0x48, 0x4c, 0x34, 0x06}, // 'q'
	0x72: {0x00, 0x00, 0x00, 0x5c, 0x62, 0x40, 0x40, 0x40}, // 'r'
	0x73: {0x00, 0x00, 0x00, 0x3c, 0x60, 0x30, 0x0c, 0x78}, // 's'
	0x74: {0x10, 0x10, 0x7e, 0x10, 0x10, 0x10, 0x12, 0x0c}, // 't'
	0x75: {0x00, 0x00, 0x00, 0x00, 0x42, 0x42, 0x46, 0x3a}, // 'u'
	0x76: {0x00, 0x00, 0x00, 0x00, 0x22, 0x22, 0x14, 0x08}, // 'v'
	0x77: {0x00, 0x00, 0x00, 0x00, 0x42, 0x5a, 0x5a, 0x24}, // 'w'
	0x78: {0x00, 0x00, 0x00, 0x42, 0x24, 0x18, 0x24, 0x42}, // 'x'
	0x79: {0x00, 0x00, 0x44, 0x44, 0x24, 0x18, 0x30, 0x60}, // 'y'
	0x7a: {0x00, 0x00, 0x00, 0x00, 0x7e, 0x08, 0x10, 0x7e}, // 'z'
	0x7b: {0x3e, 0x40, 0x20, 0x10, 0x10, 0x20, 0x40, 0x3e}, // '{'
	0x7c: {0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08}, // '|'
	0x7d: {0x7c, 0x02, 0x04, 0x08, 0x08, 0x04, 0x02, 0x7c}, // '}'
	0x7e: {0x00, 0x00, 0x00, 0x32, 0x4c, 0x00, 0x00, 0x00}, // '~'
	0x7f: {0xee, 0x55, 0x55, 0x00, 0x00, 0x00, 0x00, 0x00}, // DEL
}
