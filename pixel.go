package novice

import "fmt"

// Pixel is a live alias into one cell of a Picture.
//
// A Pixel owns no pixel data: component writes go straight through to the
// owning Picture and mark it modified. The coordinates are fixed for the
// life of the Pixel. After the owner is resized or its grid replaced, the
// cached component values may no longer reflect the picture; fetch a fresh
// Pixel after any structural change.
type Pixel struct {
	pic     *Picture
	x, y    int
	r, g, b uint8
}

// X returns the horizontal location (left = 0).
func (p *Pixel) X() int { return p.x }

// Y returns the vertical location (bottom = 0).
func (p *Pixel) Y() int { return p.y }

// Red returns the red component.
func (p *Pixel) Red() uint8 { return p.r }

// Green returns the green component.
func (p *Pixel) Green() uint8 { return p.g }

// Blue returns the blue component.
func (p *Pixel) Blue() uint8 { return p.b }

// RGB returns the pixel's color.
func (p *Pixel) RGB() Color { return Color{p.r, p.g, p.b} }

// SetRed sets the red component. Values outside 0-255 fail with
// ErrInvalidComponentValue.
func (p *Pixel) SetRed(value int) error {
	v, err := parseComponent(float64(value))
	if err != nil {
		return err
	}
	p.r = v
	p.writeThrough()
	return nil
}

// SetGreen sets the green component.
func (p *Pixel) SetGreen(value int) error {
	v, err := parseComponent(float64(value))
	if err != nil {
		return err
	}
	p.g = v
	p.writeThrough()
	return nil
}

// SetBlue sets the blue component.
func (p *Pixel) SetBlue(value int) error {
	v, err := parseComponent(float64(value))
	if err != nil {
		return err
	}
	p.b = v
	p.writeThrough()
	return nil
}

// SetRGB sets the pixel's color from any of the forms ParseColor accepts:
// an (r,g,b) triple, a "#RRGGBB" hex string, or a color name. The color is
// parsed and validated once, then written through to the owner in a single
// store.
func (p *Pixel) SetRGB(value any) error {
	c, err := ParseColor(value)
	if err != nil {
		return err
	}
	p.r, p.g, p.b = c.R, c.G, c.B
	p.writeThrough()
	return nil
}

// writeThrough stores the cached components into the owning picture's cell
// and marks the owner modified.
func (p *Pixel) writeThrough() {
	p.pic.setCell(p.x, p.y, Color{p.r, p.g, p.b})
	p.pic.setModified()
}

func (p *Pixel) String() string {
	return fmt.Sprintf("Pixel (red: %d, green: %d, blue: %d)", p.r, p.g, p.b)
}
