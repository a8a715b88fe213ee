// Package raster is the drawing side of the pipeline: a fixed-size RGBA
// canvas, plain line plotting, and image encoding in the configured format.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/leaguetools/uvee/pkg/geom"
)

// Canvas is a square drawing target. It starts fully transparent; lines
// overwrite pixels with no blending or anti-aliasing, so overlapping edges
// simply overdraw.
type Canvas struct {
	img  *image.NRGBA
	size int
}

// NewCanvas allocates a transparent size x size canvas.
func NewCanvas(size int) *Canvas {
	return &Canvas{
		img:  image.NewNRGBA(image.Rect(0, 0, size, size)),
		size: size,
	}
}

// Size returns the canvas edge length in pixels.
func (c *Canvas) Size() int {
	return c.size
}

// Image returns the backing image.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// DrawLine plots the segment between two pixel-space endpoints. Endpoints may
// be fractional or lie outside the canvas; pixels that land outside are
// dropped silently.
func (c *Canvas) DrawLine(from, to geom.Vec2, col color.NRGBA) {
	x0, y0 := float64(from.X), float64(from.Y)
	x1, y1 := float64(to.X), float64(to.Y)

	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps == 0 {
		c.set(int(math.Round(x0)), int(math.Round(y0)), col)
		return
	}
	sx := (x1 - x0) / float64(steps)
	sy := (y1 - y0) / float64(steps)
	for i := 0; i <= steps; i++ {
		c.set(int(math.Round(x0+sx*float64(i))), int(math.Round(y0+sy*float64(i))), col)
	}
}

func (c *Canvas) set(x, y int, col color.NRGBA) {
	if x < 0 || y < 0 || x >= c.size || y >= c.size {
		return
	}
	c.img.SetNRGBA(x, y, col)
}

// ParseColor parses a hex color of the form #RRGGBB or #RRGGBBAA. The leading
// '#' is optional and alpha defaults to opaque.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("color %q: want RRGGBB or RRGGBBAA hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %v", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
