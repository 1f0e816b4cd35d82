package vga

import "image/color"

// DAC I/O ports.
const (
	PortDACReadIndex  uint16 = 0x03C7
	PortDACWriteIndex uint16 = 0x03C8
	PortDACData       uint16 = 0x03C9
)

// Port is byte-wide port I/O as seen by the palette cache.
type Port interface {
	Outb(port uint16, value uint8)
}

// DAC emulates the VGA colour look-up table behind the palette port pair.
// Entries hold 6 bits per channel; writes auto-increment the index after
// every third channel.
type DAC struct {
	entries [256][3]uint8

	writeIndex uint8
	writePhase uint8
	readIndex  uint8
	readPhase  uint8

	writes int
}

func NewDAC() *DAC { return &DAC{} }

func (d *DAC) Outb(port uint16, value uint8) {
	switch port {
	case PortDACWriteIndex:
		d.writeIndex = value
		d.writePhase = 0
	case PortDACReadIndex:
		d.readIndex = value
		d.readPhase = 0
	case PortDACData:
		d.entries[d.writeIndex][d.writePhase] = value & 0x3F
		d.writePhase++
		if d.writePhase == 3 {
			d.writePhase = 0
			d.writeIndex++
			d.writes++
		}
	}
}

func (d *DAC) Inb(port uint16) uint8 {
	switch port {
	case PortDACWriteIndex:
		return d.writeIndex
	case PortDACData:
		v := d.entries[d.readIndex][d.readPhase]
		d.readPhase++
		if d.readPhase == 3 {
			d.readPhase = 0
			d.readIndex++
		}
		return v
	}
	return 0xFF
}

// Entry returns the raw 6-bit channels of a table slot.
func (d *DAC) Entry(i uint8) (r, g, b uint8) {
	e := d.entries[i]
	return e[0], e[1], e[2]
}

// Writes counts completed colour register updates.
func (d *DAC) Writes() int { return d.writes }

// Palette expands the table to 8 bits per channel.
func (d *DAC) Palette() color.Palette {
	p := make(color.Palette, len(d.entries))
	for i, e := range d.entries {
		p[i] = color.RGBA{expand6(e[0]), expand6(e[1]), expand6(e[2]), 0xFF}
	}
	return p
}

func expand6(v uint8) uint8 { return v<<2 | v>>4 }
