package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/32bitkid/mode13"
	"github.com/32bitkid/mode13/assets"
	"github.com/32bitkid/mode13/catalog"
	"github.com/32bitkid/mode13/cxpm"
	"github.com/32bitkid/mode13/screen"
	"github.com/32bitkid/mode13/vga"
)

// fileFID is where an image given on the command line is placed in the
// asset table.
const fileFID assets.FID = -1

var renderCommand = &cli.Command{
	Name:      "render",
	Usage:     "Draw onto an emulated mode 13h screen and save it as PNG",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "screen.png", Usage: "PNG file to write"},
		&cli.IntFlag{Name: "fid", Value: -1, Usage: "draw the image with this file id"},
		&cli.StringFlag{Name: "img", Usage: "draw this image file (CXPM, PNG, GIF or JPEG)"},
		&cli.IntFlag{Name: "scale", Value: 1, Usage: "image and text scale"},
		&cli.BoolFlag{Name: "center", Usage: "centre the image"},
		&cli.IntFlag{Name: "x", Usage: "left edge of image and text"},
		&cli.IntFlag{Name: "y", Usage: "top edge of image and text"},
		&cli.StringFlag{Name: "text", Usage: "draw this string"},
		&cli.StringFlag{Name: "fg", Value: "white", Usage: "text and line colour"},
		&cli.StringFlag{Name: "bg", Value: "black", Usage: "text background, same as fg for none"},
		&cli.StringFlag{Name: "line", Usage: "draw a line `x0,y0,x1,y1`"},
		&cli.IntFlag{Name: "width", Value: 1, Usage: "line width"},
		&cli.BoolFlag{Name: "crt", Usage: "emulate a CRT when saving"},
	},
	Action: func(c *cli.Context) error {
		if err := render(c); err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	},
}

// parseLine reads the four comma separated coordinates of --line.
func parseLine(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return nil, errors.Errorf("--line wants x0,y0,x1,y1, got %q", s)
	}
	line := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "--line %q", s)
		}
		line[i] = v
	}
	return line, nil
}

func loadTable(c *cli.Context) (assets.Table, error) {
	table := assets.Builtin()

	if _, err := os.Stat(c.String("db")); err == nil {
		db, err := catalog.Open(c.String("db"))
		if err != nil {
			return nil, err
		}
		defer db.Close()

		stored, err := db.Load()
		if err != nil {
			return nil, err
		}
		table = table.Merge(stored)
	}

	if file := c.String("img"); file != "" {
		var img *cxpm.Image
		if strings.EqualFold(filepath.Ext(file), ".cxpm") {
			i, err := readCXPM(file)
			if err != nil {
				return nil, err
			}
			img = i
		} else {
			m, err := decodeFile(file)
			if err != nil {
				return nil, err
			}
			if img, err = cxpm.FromImage(m); err != nil {
				return nil, errors.Wrap(err, file)
			}
		}
		table[fileFID] = img
	}

	return table, nil
}

func render(c *cli.Context) error {
	fg, err := vga.ParseColor(c.String("fg"))
	if err != nil {
		return err
	}
	bg, err := vga.ParseColor(c.String("bg"))
	if err != nil {
		return err
	}

	var line []int
	if s := c.String("line"); s != "" {
		if line, err = parseLine(s); err != nil {
			return err
		}
	}

	table, err := loadTable(c)
	if err != nil {
		return err
	}

	gl, err := mode13.New(
		mode13.WithLogger(newLogger(c)),
		mode13.WithImages(table),
	)
	if err != nil {
		return err
	}
	gl.Enter(vga.Mode13)
	defer gl.Exit()

	ul := vga.Pt(c.Int("x"), c.Int("y"))
	scale := c.Int("scale")

	fid := assets.FID(c.Int("fid"))
	if c.String("img") != "" {
		fid = fileFID
	}
	if c.IsSet("fid") || c.String("img") != "" {
		if c.Bool("center") {
			gl.DrawImgCenterScale(fid, scale)
		} else {
			gl.DrawImgScale(ul, fid, scale)
		}
	}

	if line != nil {
		gl.DrawLineWidth(vga.Pt(line[0], line[1]), vga.Pt(line[2], line[3]), c.Int("width"), fg)
	}

	if str := c.String("text"); str != "" {
		gl.DrawStrScale(ul, bg, fg, str, scale, gl.W())
	}

	var out image.Image = gl.Snapshot()
	if c.Bool("crt") {
		out = screen.RenderToCRT(out, 3)
	}

	f, err := os.Create(c.String("output"))
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, out)
}
