package novice

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where 0 is no intensity and 255 is
// full intensity.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex returns the color in "#RRGGBB" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseColor normalizes the accepted color forms into a Color.
//
// Accepted forms:
//   - Color
//   - [3]uint8, [3]int, [3]float64, []int, []float64 (an (r,g,b) triple;
//     float components are truncated toward zero before validation)
//   - string: a "#RRGGBB" hex string (exactly 7 characters, leading '#'),
//     or a color name from the built-in palette
//
// Triples with a component outside 0-255 fail with ErrInvalidComponentValue.
// Any other shape, a malformed hex string, or an unknown name fails with
// ErrInvalidColor.
func ParseColor(value any) (Color, error) {
	switch v := value.(type) {
	case Color:
		return v, nil
	case [3]uint8:
		return Color{v[0], v[1], v[2]}, nil
	case [3]int:
		return colorFromComponents(float64(v[0]), float64(v[1]), float64(v[2]))
	case [3]float64:
		return colorFromComponents(v[0], v[1], v[2])
	case []int:
		if len(v) != 3 {
			return Color{}, fmt.Errorf("%w: color triple must have 3 components, got %d", ErrInvalidColor, len(v))
		}
		return colorFromComponents(float64(v[0]), float64(v[1]), float64(v[2]))
	case []float64:
		if len(v) != 3 {
			return Color{}, fmt.Errorf("%w: color triple must have 3 components, got %d", ErrInvalidColor, len(v))
		}
		return colorFromComponents(v[0], v[1], v[2])
	case string:
		return parseColorString(v)
	default:
		return Color{}, fmt.Errorf("%w: expected triple or string, got %T", ErrInvalidColor, value)
	}
}

// parseColorString resolves a "#RRGGBB" hex string or a palette name.
func parseColorString(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		if len(s) != 7 {
			return Color{}, fmt.Errorf("%w: expected #RRGGBB, got %q", ErrInvalidColor, s)
		}
		cf, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("%w: expected #RRGGBB, got %q", ErrInvalidColor, s)
		}
		r, g, b := cf.RGB255()
		return Color{r, g, b}, nil
	}
	if c, ok := LookupName(s); ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("%w: expected color name or #RRGGBB, got %q", ErrInvalidColor, s)
}

func colorFromComponents(r, g, b float64) (Color, error) {
	rc, err := parseComponent(r)
	if err != nil {
		return Color{}, err
	}
	gc, err := parseComponent(g)
	if err != nil {
		return Color{}, err
	}
	bc, err := parseComponent(b)
	if err != nil {
		return Color{}, err
	}
	return Color{rc, gc, bc}, nil
}

// parseComponent coerces a numeric component value to the 0-255 domain.
// Fractional values are truncated toward zero, matching integer conversion;
// NaN and out-of-range values are rejected.
func parseComponent(v float64) (uint8, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: expected an integer between 0 and 255, got %v", ErrInvalidComponentValue, v)
	}
	n := int(v) // truncates toward zero
	if n < 0 || n > 255 {
		return 0, fmt.Errorf("%w: expected an integer between 0 and 255, got %v", ErrInvalidComponentValue, v)
	}
	return uint8(n), nil
}
