package cxpm

import (
	"encoding/binary"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/pkg/errors"

	"github.com/32bitkid/mode13/vga"
)

// Write serializes img in the CXPM file form.
func Write(w io.Writer, img *Image) error {
	if len(img.Colors) == 0 || len(img.Colors) > MaxColors {
		return errors.Wrapf(errBadTable, "%d colours", len(img.Colors))
	}
	if err := validateTable(img); err != nil {
		return err
	}
	if img.Width > math.MaxUint16 || img.Height > math.MaxUint16 {
		return errors.Errorf("cxpm: image too large (%dx%d)", img.Width, img.Height)
	}
	if len(img.Lines) != img.Height {
		return errors.Errorf("cxpm: %d scanlines for height %d", len(img.Lines), img.Height)
	}

	h := header{
		Width:  uint16(img.Width),
		Height: uint16(img.Height),
		Colors: uint8(len(img.Colors)),
		TCode:  img.TCode & 0x0f,
	}
	copy(h.Magic[:], magic)
	if img.HasTCode {
		h.TCode |= tcodeFlag
	}
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return err
	}

	entries := make([]entry, len(img.Colors))
	for i, e := range img.Colors {
		entries[i] = entry{e.Code, e.Color.R, e.Color.G, e.Color.B}
	}
	if err := binary.Write(w, binary.LittleEndian, entries); err != nil {
		return err
	}

	for y, line := range img.Lines {
		if len(line) > math.MaxUint16 {
			return errors.Errorf("cxpm: scanline %d too long", y)
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(len(line))); err != nil {
			return err
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes m to w as CXPM, reducing it to at most MaxColors colours.
func Encode(w io.Writer, m image.Image) error {
	img, err := FromImage(m)
	if err != nil {
		return err
	}
	return Write(w, img)
}

func opaque(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a >= 0x8000
}

// uniqueColors returns the opaque colours of m in order of first use, or
// false once there are more than max of them.
func uniqueColors(m image.Image, max int) (color.Palette, bool) {
	b := m.Bounds()
	seen := make(map[vga.RGB8]struct{})
	var p color.Palette
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := m.At(x, y)
			if !opaque(c) {
				continue
			}
			rgb := vga.FromColor(c)
			if _, ok := seen[rgb]; ok {
				continue
			}
			if len(p) == max {
				return nil, false
			}
			seen[rgb] = struct{}{}
			p = append(p, rgb)
		}
	}
	return p, true
}

func hasTransparency(m image.Image) bool {
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !opaque(m.At(x, y)) {
				return true
			}
		}
	}
	return false
}

// FromImage builds a CXPM image from m. Pixels less than half opaque become
// the transparency code; the rest are quantized to the remaining codes.
func FromImage(m image.Image) (*Image, error) {
	b := m.Bounds()
	if b.Empty() {
		return nil, errors.New("cxpm: empty image")
	}
	if b.Dx() > math.MaxUint16 || b.Dy() > math.MaxUint16 {
		return nil, errors.Errorf("cxpm: image too large (%dx%d)", b.Dx(), b.Dy())
	}

	transparent := hasTransparency(m)
	budget := MaxColors
	if transparent {
		budget--
	}

	p, ok := uniqueColors(m, budget)
	if !ok {
		q := quantize.MedianCutQuantizer{}
		p = nil
		for _, c := range q.Quantize(make(color.Palette, 0, budget), m) {
			p = append(p, vga.FromColor(c))
		}
	}

	img := &Image{Width: b.Dx(), Height: b.Dy()}
	for i, c := range p {
		img.Colors = append(img.Colors, Entry{uint8(i + 1), vga.FromColor(c)})
	}
	if transparent {
		img.TCode = uint8(len(p) + 1)
		img.HasTCode = true
		img.Colors = append(img.Colors, Entry{img.TCode, vga.Black})
	}

	codes := make([]uint8, b.Dx(), b.Dx()+1)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := m.At(x, y)
			if !opaque(c) {
				codes[x-b.Min.X] = img.TCode
				continue
			}
			codes[x-b.Min.X] = uint8(p.Index(vga.FromColor(c)) + 1)
		}
		img.Lines = append(img.Lines, packLine(codes))
	}

	return img, nil
}

// packLine nibble-packs one scanline of codes and run-length escapes
// repeated bytes. An odd trailing pixel is paired with itself.
func packLine(codes []uint8) []byte {
	if len(codes)%2 == 1 {
		codes = append(codes, codes[len(codes)-1])
	}
	packed := make([]byte, len(codes)/2)
	for i := range packed {
		packed[i] = codes[2*i]<<4 | codes[2*i+1]&0x0f
	}

	var out []byte
	for i := 0; i < len(packed); {
		j := i + 1
		for j < len(packed) && packed[j] == packed[i] && j-i < maxRun {
			j++
		}
		if n := j - i; n >= minRun {
			out = append(out, escape, byte(n), packed[i])
		} else {
			for ; n > 0; n-- {
				out = append(out, packed[i])
			}
		}
		i = j
	}
	return out
}
