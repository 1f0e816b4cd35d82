package mode13

import (
	"log"

	"github.com/pkg/errors"

	"github.com/32bitkid/mode13/assets"
	"github.com/32bitkid/mode13/palette"
	"github.com/32bitkid/mode13/vga"
)

func (g *GL) SetLogger(l *log.Logger) error {
	if l == nil {
		return errors.New("nil logger")
	}
	g.log = l
	return nil
}

func (g *GL) SetBIOS(b vga.BIOS) error {
	if b == nil {
		return errors.New("nil BIOS")
	}
	g.bios = b
	return nil
}

func (g *GL) SetPort(p vga.Port) error {
	if p == nil {
		return errors.New("nil palette port")
	}
	g.port = p
	g.cache = palette.New(p)
	return nil
}

func (g *GL) SetConsole(c vga.Console) error {
	if c == nil {
		return errors.New("nil console")
	}
	g.console = c
	return nil
}

func (g *GL) SetImages(t assets.Table) error {
	g.images = t
	return nil
}

func (g *GL) SetOptions(options ...func(*GL) error) error {
	for i, option := range options {
		if err := option(g); err != nil {
			return errors.Wrapf(err, "failed to set option index %d", i)
		}
	}
	return nil
}

func WithLogger(l *log.Logger) func(*GL) error {
	return func(g *GL) error {
		return g.SetLogger(l)
	}
}

func WithBIOS(b vga.BIOS) func(*GL) error {
	return func(g *GL) error {
		return g.SetBIOS(b)
	}
}

// WithPort routes palette writes to p instead of an emulated DAC. A driver
// already in mode 13h keeps its old palette until the next Enter.
func WithPort(p vga.Port) func(*GL) error {
	return func(g *GL) error {
		return g.SetPort(p)
	}
}

func WithConsole(c vga.Console) func(*GL) error {
	return func(g *GL) error {
		return g.SetConsole(c)
	}
}

// WithImages replaces the compiled-in image table.
func WithImages(t assets.Table) func(*GL) error {
	return func(g *GL) error {
		return g.SetImages(t)
	}
}
