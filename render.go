package novice

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Render returns the picture as a standard image.Image with the inflation
// factor applied: each cell becomes an NxN block for factor N. The cells
// themselves are never mutated by rendering.
func (p *Picture) Render() image.Image {
	return p.inflated()
}

// RenderGrid renders the inflated picture with 1px separator lines between
// pixel blocks, making individual pixels easy to point at on screen. The
// grid color may be any form ParseColor accepts. Rendering a grid requires
// an inflation factor of at least 2, otherwise the lines would replace the
// pixels themselves.
func (p *Picture) RenderGrid(gridColor any) (image.Image, error) {
	if p.inflation < 2 {
		return nil, fmt.Errorf("grid rendering needs an inflation factor of at least 2, got %d", p.inflation)
	}
	c, err := ParseColor(gridColor)
	if err != nil {
		return nil, err
	}

	base := p.inflated()
	bounds := base.Bounds()
	out := image.NewNRGBA(bounds)
	draw.Draw(out, bounds, base, bounds.Min, draw.Src)

	line := color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}

	// Vertical separators between pixel columns
	for x := p.inflation; x < bounds.Dx(); x += p.inflation {
		for y := 0; y < bounds.Dy(); y++ {
			out.Set(x, y, line)
		}
	}

	// Horizontal separators between pixel rows
	for y := p.inflation; y < bounds.Dy(); y += p.inflation {
		for x := 0; x < bounds.Dx(); x++ {
			out.Set(x, y, line)
		}
	}

	return out, nil
}
