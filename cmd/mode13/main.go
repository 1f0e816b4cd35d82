package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/32bitkid/mode13/assets"
	"github.com/32bitkid/mode13/catalog"
	"github.com/32bitkid/mode13/cxpm"
)

const defaultDB = "mode13.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func decodeFile(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, file)
	}
	return m, nil
}

func readCXPM(file string) (*cxpm.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := cxpm.Read(f)
	if err != nil {
		return nil, errors.Wrap(err, file)
	}
	return img, nil
}

func newApp(cwd string) *cli.App {
	app := cli.NewApp()

	app.Name = "mode13"
	app.Usage = "VGA mode 13h graphics toolkit"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"MODE13_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to image catalog",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "encode",
			Usage:     "Convert an image to CXPM",
			ArgsUsage: "INPUT OUTPUT",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}
				logger := newLogger(c)

				m, err := decodeFile(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				f, err := os.Create(c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				if err := cxpm.Encode(f, m); err != nil {
					return cli.NewExitError(err, 1)
				}
				logger.Printf("wrote %s", c.Args().Get(1))

				return nil
			},
		},
		{
			Name:      "stat",
			Usage:     "Show the header of CXPM files",
			ArgsUsage: "FILE...",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				for _, file := range c.Args().Slice() {
					img, err := readCXPM(file)
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					printStat(c.App.Writer, file, img)
				}

				return nil
			},
		},
		{
			Name:      "import",
			Usage:     "Add an image to the catalog",
			ArgsUsage: "NAME FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}
				logger := newLogger(c)

				m, err := decodeFile(c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				img, err := cxpm.FromImage(m)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				db, err := catalog.Open(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				fid, err := db.Import(c.Args().Get(0), img)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				logger.Printf("imported %s as %v", c.Args().Get(0), fid)
				fmt.Fprintln(c.App.Writer, int(fid))

				return nil
			},
		},
		{
			Name:  "list",
			Usage: "List compiled-in and catalog images",
			Action: func(c *cli.Context) error {
				builtin := assets.Builtin()
				for _, fid := range builtin.FIDs() {
					printStat(c.App.Writer, fmt.Sprintf("%d\t(builtin)", int(fid)), builtin.Lookup(fid))
				}

				db, err := catalog.Open(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				records, err := db.List()
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				for _, r := range records {
					fmt.Fprintf(c.App.Writer, "%d\t%s\t%dx%d\t%d colours\n", int(r.FID), r.Name, r.Width, r.Height, r.Colors)
				}

				return nil
			},
		},
		renderCommand,
	}

	return app
}

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	if err := newApp(cwd).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func printStat(w io.Writer, name string, img *cxpm.Image) {
	dims, colors := img.Stat()
	fmt.Fprintf(w, "%s\t%dx%d\t%d colours", name, dims.X, dims.Y, colors)
	if tcode, ok := img.TransparencyCode(); ok {
		fmt.Fprintf(w, "\ttransparent %d", tcode)
	}
	fmt.Fprintln(w)
}
