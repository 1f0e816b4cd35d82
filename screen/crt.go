package screen

import (
	"image"
	"image/color"
)

// RenderToCRT upscales a frame by an integer factor and fakes the look of a
// VGA monitor: neighbouring pixels bleed into each other horizontally and
// the bottom row of every scanline is dimmed.
func RenderToCRT(src image.Image, scale int) *image.RGBA {
	if scale < 2 {
		scale = 2
	}

	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*scale, bounds.Dy()*scale))

	// blends are expensive; most frames only hold a handful of colours
	type pair struct{ l, r color.Color }
	type key struct {
		pair
		t float64
	}
	mixes := map[key]color.Color{}
	mix := func(l, r color.Color, t float64) color.Color {
		k := key{pair{l, r}, t}
		if c, ok := mixes[k]; ok {
			return c
		}
		c := rgbMix(l, r, t)
		mixes[k] = c
		return c
	}
	dims := map[color.Color]color.Color{}
	dim := func(c color.Color) color.Color {
		if d, ok := dims[c]; ok {
			return d
		}
		d := darken(c, 0.25)
		dims[c] = d
		return d
	}

	for sy, dy := bounds.Min.Y, 0; sy < bounds.Max.Y; sy, dy = sy+1, dy+scale {
		for sx, dx := bounds.Min.X, 0; sx < bounds.Max.X; sx, dx = sx+1, dx+scale {
			left := src.At(max(sx-1, bounds.Min.X), sy)
			c := src.At(sx, sy)
			right := src.At(min(sx+1, bounds.Max.X-1), sy)

			for iy := 0; iy < scale; iy++ {
				for ix := 0; ix < scale; ix++ {
					co := c
					switch ix {
					case 0:
						co = mix(left, c, 2.0/3.0)
					case scale - 1:
						co = mix(c, right, 1.0/3.0)
					}
					if iy == scale-1 {
						co = dim(co)
					}
					dst.Set(dx+ix, dy+iy, co)
				}
			}
		}
	}

	return dst
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
