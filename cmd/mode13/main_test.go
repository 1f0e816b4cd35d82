package main

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/32bitkid/mode13/cxpm"
	"github.com/32bitkid/mode13/vga"
)

func TestParseLine(t *testing.T) {
	cases := []struct {
		in   string
		want []int
		ok   bool
	}{
		{"0,250,250,0", []int{0, 250, 250, 0}, true},
		{" 1, 2 ,3,4", []int{1, 2, 3, 4}, true},
		{"-5,0,10,-20", []int{-5, 0, 10, -20}, true},
		{"1,2,3", nil, false},
		{"1,2,3,4,5", nil, false},
		{"1,2,x,4", nil, false},
		{"", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseLine(tc.in)
			if !tc.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// run executes the app inside dir, returning the error instead of exiting.
func run(t *testing.T, dir string, args ...string) error {
	t.Helper()
	exiter, errWriter := cli.OsExiter, cli.ErrWriter
	cli.OsExiter = func(int) {}
	cli.ErrWriter = io.Discard
	t.Cleanup(func() { cli.OsExiter, cli.ErrWriter = exiter, errWriter })

	app := newApp(dir)
	app.Writer = io.Discard
	return app.Run(append([]string{"mode13"}, args...))
}

func readPNG(t *testing.T, file string) image.Image {
	t.Helper()
	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()
	m, _, err := image.Decode(f)
	require.NoError(t, err)
	return m
}

func TestRenderLineFromBelowScreen(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "line.png")

	require.NoError(t, run(t, dir, "render", "-o", out, "--line", "0,250,250,0"))

	m := readPNG(t, out)
	assert.Equal(t, image.Rect(0, 0, 320, 200), m.Bounds())
	assert.Equal(t, color.RGBAModel.Convert(color.White), color.RGBAModel.Convert(m.At(1, 199)))
	assert.Equal(t, color.RGBAModel.Convert(color.Black), color.RGBAModel.Convert(m.At(0, 199)))
}

func TestRenderRejectsBadLine(t *testing.T) {
	dir := t.TempDir()
	err := run(t, dir, "render", "-o", filepath.Join(dir, "x.png"), "--line", "0,250")
	assert.EqualError(t, err, `--line wants x0,y0,x1,y1, got "0,250"`)
}

func TestRenderRejectsBadImage(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "bad.cxpm")

	var buf bytes.Buffer
	require.NoError(t, cxpm.Write(&buf, &cxpm.Image{
		Width:  2,
		Height: 1,
		Colors: []cxpm.Entry{{Code: 1, Color: vga.White}},
		Lines:  [][]byte{{0x77}},
	}))
	require.NoError(t, os.WriteFile(file, buf.Bytes(), 0644))

	err := run(t, dir, "render", "-o", filepath.Join(dir, "x.png"), "--img", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour code outside table")
	_, err = os.Stat(filepath.Join(dir, "x.png"))
	assert.True(t, os.IsNotExist(err))
}
