package cxpm

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/32bitkid/mode13/vga"
)

var (
	red  = vga.RGB(0xff, 0, 0)
	blue = vga.RGB(0, 0, 0xff)
)

type rect struct {
	ul   vga.Point
	w, h int
	c    vga.RGB8
}

type surface struct {
	w, h  int
	rects []rect
}

func newSurface() *surface { return &surface{w: 320, h: 200} }

func (s *surface) Width() int  { return s.w }
func (s *surface) Height() int { return s.h }

func (s *surface) DrawRectWH(ul vga.Point, w, h int, c vga.RGB8) {
	s.rects = append(s.rects, rect{ul, w, h, c})
}

func twoColors(width int, lines ...[]byte) *Image {
	return &Image{
		Width:  width,
		Height: len(lines),
		Colors: []Entry{{1, red}, {2, blue}},
		Lines:  lines,
	}
}

func TestDrawMatchingCodes(t *testing.T) {
	s := newSurface()
	Draw(s, vga.Pt(0, 0), twoColors(2, []byte{0x11}), 1)
	assert.Equal(t, []rect{{vga.Pt(0, 0), 2, 1, red}}, s.rects)
}

func TestDrawTransparentRun(t *testing.T) {
	img := twoColors(2, []byte{0x11})
	img.TCode, img.HasTCode = 1, true

	s := newSurface()
	Draw(s, vga.Pt(0, 0), img, 1)
	assert.Empty(t, s.rects)
}

func TestDrawDifferingCodes(t *testing.T) {
	s := newSurface()
	Draw(s, vga.Pt(5, 7), twoColors(2, []byte{0x12}), 1)
	assert.Equal(t, []rect{
		{vga.Pt(5, 7), 1, 1, red},
		{vga.Pt(6, 7), 1, 1, blue},
	}, s.rects)
}

func TestDrawEscapedRuns(t *testing.T) {
	t.Run("pairs", func(t *testing.T) {
		s := newSurface()
		Draw(s, vga.Pt(0, 0), twoColors(6, []byte{escape, 3, 0x12}), 2)
		require.Len(t, s.rects, 6)
		for i, r := range s.rects {
			assert.Equal(t, vga.Pt(i*2, 0), r.ul)
			assert.Equal(t, 2, r.w)
			assert.Equal(t, 2, r.h)
		}
		assert.Equal(t, blue, s.rects[5].c)
	})

	t.Run("solid", func(t *testing.T) {
		s := newSurface()
		Draw(s, vga.Pt(0, 0), twoColors(8, []byte{escape, 4, 0x22}), 1)
		assert.Equal(t, []rect{{vga.Pt(0, 0), 8, 1, blue}}, s.rects)
	})

	t.Run("followed by literal", func(t *testing.T) {
		s := newSurface()
		Draw(s, vga.Pt(0, 0), twoColors(10, []byte{escape, 4, 0x22, 0x11}), 1)
		assert.Equal(t, []rect{
			{vga.Pt(0, 0), 8, 1, blue},
			{vga.Pt(8, 0), 2, 1, red},
		}, s.rects)
	})
}

func TestDrawPartialTransparency(t *testing.T) {
	img := twoColors(4, []byte{escape, 2, 0x12})
	img.TCode, img.HasTCode = 2, true

	s := newSurface()
	Draw(s, vga.Pt(0, 0), img, 1)
	assert.Equal(t, []rect{
		{vga.Pt(0, 0), 1, 1, red},
		{vga.Pt(2, 0), 1, 1, red},
	}, s.rects)
}

func TestDrawClipsRightEdge(t *testing.T) {
	s := newSurface()
	Draw(s, vga.Pt(316, 0), twoColors(8, []byte{escape, 4, 0x11}), 1)
	assert.Equal(t, []rect{{vga.Pt(316, 0), 4, 1, red}}, s.rects)

	s = newSurface()
	Draw(s, vga.Pt(317, 0), twoColors(8, []byte{escape, 4, 0x12}), 1)
	assert.Equal(t, []rect{
		{vga.Pt(317, 0), 1, 1, red},
		{vga.Pt(318, 0), 1, 1, blue},
		{vga.Pt(319, 0), 1, 1, red},
	}, s.rects)
}

func TestDrawOddWidth(t *testing.T) {
	s := newSurface()
	Draw(s, vga.Pt(0, 0), twoColors(3, []byte{0x12, 0x22}), 1)
	assert.Equal(t, []rect{
		{vga.Pt(0, 0), 1, 1, red},
		{vga.Pt(1, 0), 1, 1, blue},
		{vga.Pt(2, 0), 1, 1, blue},
	}, s.rects)
}

func TestDrawClipsBottomEdge(t *testing.T) {
	img := twoColors(2, []byte{0x11}, []byte{0x11}, []byte{0x11})

	s := newSurface()
	Draw(s, vga.Pt(0, 198), img, 1)
	assert.Len(t, s.rects, 2)

	s = newSurface()
	Draw(s, vga.Pt(0, 199), img, 2)
	assert.Equal(t, []rect{{vga.Pt(0, 199), 4, 1, red}}, s.rects)
}

func TestCenter(t *testing.T) {
	screen := vga.Pt(320, 200)
	assert.Equal(t, vga.Pt(60, 50), Center(screen, vga.Pt(100, 50), 2))
	assert.Equal(t, vga.Pt(0, 75), Center(screen, vga.Pt(400, 50), 1))
	assert.Equal(t, vga.Pt(0, 0), Center(screen, vga.Pt(400, 300), 1))
}

func TestDrawCenter(t *testing.T) {
	s := newSurface()
	DrawCenter(s, twoColors(2, []byte{0x11}), 1)
	assert.Equal(t, []rect{{vga.Pt(159, 99), 2, 1, red}}, s.rects)
}

func TestStat(t *testing.T) {
	img := twoColors(2, []byte{0x11})
	dims, n := img.Stat()
	assert.Equal(t, vga.Pt(2, 1), dims)
	assert.Equal(t, 2, n)

	_, ok := img.TransparencyCode()
	assert.False(t, ok)
}

func TestPackLine(t *testing.T) {
	cases := []struct {
		name  string
		codes []uint8
		want  []byte
	}{
		{"pairs", []uint8{1, 2, 3, 4}, []byte{0x12, 0x34}},
		{"odd", []uint8{1, 2, 3}, []byte{0x12, 0x33}},
		{"short run", []uint8{1, 1, 1, 1, 1, 1}, []byte{0x11, 0x11, 0x11}},
		{"run", []uint8{1, 1, 1, 1, 1, 1, 1, 1, 2, 1}, []byte{escape, 4, 0x11, 0x21}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, packLine(tc.codes))
		})
	}

	long := make([]uint8, 2*300)
	for i := range long {
		long[i] = 3
	}
	assert.Equal(t, []byte{escape, 255, 0x33, escape, 45, 0x33}, packLine(long))
}

func testImage() *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, 9, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 9; x++ {
			c := color.NRGBA{0xff, 0, 0, 0xff}
			if x > y {
				c = color.NRGBA{0, 0x80, 0, 0xff}
			}
			m.SetNRGBA(x, y, c)
		}
	}
	m.SetNRGBA(8, 2, color.NRGBA{})
	return m
}

func TestEncodeDecode(t *testing.T) {
	src := testImage()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src))

	m, format, err := image.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "cxpm", format)
	assert.Equal(t, src.Bounds(), m.Bounds())

	for y := 0; y < 3; y++ {
		for x := 0; x < 9; x++ {
			want := color.NRGBAModel.Convert(src.At(x, y))
			got := color.NRGBAModel.Convert(m.At(x, y))
			assert.Equal(t, want, got, "pixel (%d,%d)", x, y)
		}
	}

	cfg, err := DecodeConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Width)
	assert.Equal(t, 3, cfg.Height)
}

func TestFromImageTransparency(t *testing.T) {
	img, err := FromImage(testImage())
	require.NoError(t, err)

	tcode, ok := img.TransparencyCode()
	require.True(t, ok)
	assert.Equal(t, uint8(3), tcode)
	assert.Len(t, img.Colors, 3)
	assert.Equal(t, uint8(1), img.Start())

	s := newSurface()
	Draw(s, vga.Pt(0, 0), img, 1)
	for _, r := range s.rects {
		assert.False(t, r.ul.Y == 2 && r.ul.X+r.w > 8, "transparent pixel drawn: %v", r)
	}
}

func TestFromImageQuantizes(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 32, 4))
	for x := 0; x < 32; x++ {
		for y := 0; y < 4; y++ {
			m.Set(x, y, color.RGBA{uint8(x * 8), uint8(y * 60), 0x40, 0xff})
		}
	}

	img, err := FromImage(m)
	require.NoError(t, err)
	assert.True(t, len(img.Colors) <= MaxColors)
	assert.False(t, img.HasTCode)

	_, err = img.Paletted()
	assert.NoError(t, err)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("NOPE0000000")))
	assert.Equal(t, errBadHeader, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, twoColors(2, []byte{0x11}, []byte{0x22})))
	truncated := buf.Bytes()[:buf.Len()-2]

	_, err = Read(bytes.NewReader(truncated))
	assert.Equal(t, errNotEnough, err)

	img, err := Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, twoColors(2, []byte{0x11}, []byte{0x22}), img)
}

func TestPalettedRejectsUnknownCode(t *testing.T) {
	_, err := twoColors(2, []byte{0x17}).Paletted()
	assert.Error(t, err)
}

func TestReadRejectsUnknownCode(t *testing.T) {
	img := &Image{
		Width:  2,
		Height: 1,
		Colors: []Entry{{1, red}},
		Lines:  [][]byte{{0x77}},
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, img))

	_, err := Read(bytes.NewReader(buf.Bytes()))
	assert.Equal(t, errBadCode, errors.Cause(err))
	assert.EqualError(t, err, "code 7 at (0,0): cxpm: colour code outside table")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		img  *Image
		ok   bool
	}{
		{"plain", twoColors(4, []byte{0x12, 0x21}), true},
		{"short scanline", twoColors(4, []byte{0x12}), true},
		{"escaped run", twoColors(8, []byte{0x00, 0x04, 0x21}), true},
		{"code past odd width", twoColors(3, []byte{0x12, 0x1f}), true},
		{"code below start", twoColors(2, []byte{0x10}), false},
		{"code past table", twoColors(2, []byte{0x13}), false},
		{"bad code inside run", twoColors(8, []byte{0x00, 0x04, 0x29}), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.img.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, errBadCode, errors.Cause(err))
			}
		})
	}

	transparent := twoColors(2, []byte{0x19})
	transparent.TCode, transparent.HasTCode = 9, true
	assert.NoError(t, transparent.Validate())
}
