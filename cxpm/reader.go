package cxpm

import (
	"encoding/binary"
	"image"
	"io"

	"github.com/pkg/errors"

	"github.com/32bitkid/mode13/vga"
)

var (
	errBadHeader = errors.New("cxpm: invalid format")
	errNotEnough = errors.New("cxpm: not enough image data")
	errBadTable  = errors.New("cxpm: invalid colour table")
	errBadCode   = errors.New("cxpm: colour code outside table")
)

func init() {
	image.RegisterFormat("cxpm", magic, Decode, DecodeConfig)
}

type header struct {
	Magic  [4]byte
	Width  uint16
	Height uint16
	Colors uint8
	TCode  uint8
}

type entry struct {
	Code    uint8
	R, G, B uint8
}

func readHeader(r io.Reader, img *Image) error {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return err
	}
	if string(h.Magic[:]) != magic {
		return errBadHeader
	}

	img.Width, img.Height = int(h.Width), int(h.Height)
	img.HasTCode = h.TCode&tcodeFlag != 0
	img.TCode = h.TCode & 0x0f

	if h.Colors == 0 || h.Colors > MaxColors {
		return errors.Wrapf(errBadTable, "%d colours", h.Colors)
	}
	entries := make([]entry, h.Colors)
	if err := binary.Read(r, binary.LittleEndian, &entries); err != nil {
		return err
	}

	img.Colors = make([]Entry, len(entries))
	for i, e := range entries {
		img.Colors[i] = Entry{e.Code, vga.RGB(e.R, e.G, e.B)}
	}
	return validateTable(img)
}

func validateTable(img *Image) error {
	start := img.Start()
	if start == 0 {
		return errors.Wrap(errBadTable, "start code must be at least 1")
	}
	for i, e := range img.Colors {
		if int(e.Code) != int(start)+i || e.Code > 0x0f {
			return errors.Wrapf(errBadTable, "entry %d has code %d", i, e.Code)
		}
	}
	return nil
}

func readLines(r io.Reader, img *Image) error {
	img.Lines = make([][]byte, img.Height)
	for y := range img.Lines {
		var n uint16
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return err
		}
		img.Lines[y] = make([]byte, n)
		if _, err := io.ReadFull(r, img.Lines[y]); err != nil {
			return err
		}
	}
	return nil
}

func notEnough(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errNotEnough
	}
	return err
}

// Read parses a CXPM file. Its scanlines are kept encoded, but every code
// Draw would look up is checked against the colour table first.
func Read(r io.Reader) (*Image, error) {
	var img Image
	if err := readHeader(r, &img); err != nil {
		return nil, notEnough(err)
	}
	if err := readLines(r, &img); err != nil {
		return nil, notEnough(err)
	}
	if err := img.Validate(); err != nil {
		return nil, err
	}
	return &img, nil
}

// Validate reports the first visible pixel whose code is not in the colour
// table. Short scanlines are allowed; Draw leaves the rest of the row alone.
func (img *Image) Validate() error {
	start, end := int(img.Start()), int(img.Start())+len(img.Colors)
	for y := 0; y < img.Height && y < len(img.Lines); y++ {
		for x, code := range img.Codes(y) {
			if img.transparent(code) {
				continue
			}
			if c := int(code); c < start || c >= end {
				return errors.Wrapf(errBadCode, "code %d at (%d,%d)", code, x, y)
			}
		}
	}
	return nil
}

// Paletted expands the image into an *image.Paletted whose palette is
// Palette(). Unlike Draw it checks every code against the colour table.
func (img *Image) Paletted() (*image.Paletted, error) {
	p := img.Palette()
	m := image.NewPaletted(image.Rect(0, 0, img.Width, img.Height), p)
	start := int(img.Start())

	for y := 0; y < img.Height; y++ {
		if y >= len(img.Lines) {
			return nil, errNotEnough
		}
		codes := img.Codes(y)
		if len(codes) < img.Width {
			return nil, errors.Wrapf(errNotEnough, "scanline %d", y)
		}
		row := m.Pix[y*m.Stride:]
		for x, code := range codes {
			i := int(code) - start
			if i < 0 || i >= len(p) {
				return nil, errors.Wrapf(errBadCode, "code %d at (%d,%d)", code, x, y)
			}
			row[x] = uint8(i)
		}
	}

	return m, nil
}

// Decode reads a CXPM image from r and returns it as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	img, err := Read(r)
	if err != nil {
		return nil, err
	}
	return img.Paletted()
}

// DecodeConfig returns the color model and dimensions of a CXPM image without
// reading its scanlines.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var img Image
	if err := readHeader(r, &img); err != nil {
		return image.Config{}, notEnough(err)
	}
	return image.Config{
		ColorModel: img.Palette(),
		Width:      img.Width,
		Height:     img.Height,
	}, nil
}
