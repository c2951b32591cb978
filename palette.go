package novice

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// colorNames maps lowercase color names to their RGB values. Multi-word
// names use a single space; LookupName also accepts underscores.
var colorNames = map[string]Color{
	"black":        {0, 0, 0},
	"white":        {255, 255, 255},
	"red":          {255, 0, 0},
	"green":        {0, 128, 0},
	"blue":         {0, 0, 255},
	"yellow":       {255, 255, 0},
	"cyan":         {0, 255, 255},
	"magenta":      {255, 0, 255},
	"gray":         {128, 128, 128},
	"grey":         {128, 128, 128},
	"silver":       {192, 192, 192},
	"maroon":       {128, 0, 0},
	"olive":        {128, 128, 0},
	"lime":         {0, 255, 0},
	"teal":         {0, 128, 128},
	"navy":         {0, 0, 128},
	"purple":       {128, 0, 128},
	"orange":       {255, 165, 0},
	"brown":        {165, 42, 42},
	"pink":         {255, 192, 203},
	"gold":         {255, 215, 0},
	"salmon":       {250, 128, 114},
	"coral":        {255, 127, 80},
	"tomato":       {255, 99, 71},
	"crimson":      {220, 20, 60},
	"orchid":       {218, 112, 214},
	"violet":       {238, 130, 238},
	"plum":         {221, 160, 221},
	"indigo":       {75, 0, 130},
	"khaki":        {240, 230, 140},
	"tan":          {210, 180, 140},
	"beige":        {245, 245, 220},
	"ivory":        {255, 255, 240},
	"snow":         {255, 250, 250},
	"turquoise":    {64, 224, 208},
	"aquamarine":   {127, 255, 212},
	"chocolate":    {210, 105, 30},
	"firebrick":    {178, 34, 34},
	"dark red":     {139, 0, 0},
	"dark green":   {0, 100, 0},
	"dark blue":    {0, 0, 139},
	"dark gray":    {169, 169, 169},
	"dark orange":  {255, 140, 0},
	"dark violet":  {148, 0, 211},
	"light gray":   {211, 211, 211},
	"light blue":   {173, 216, 230},
	"light green":  {144, 238, 144},
	"light yellow": {255, 255, 224},
	"light pink":   {255, 182, 193},
	"sky blue":     {135, 206, 235},
	"steel blue":   {70, 130, 180},
	"royal blue":   {65, 105, 225},
	"forest green": {34, 139, 34},
	"sea green":    {46, 139, 87},
	"hot pink":     {255, 105, 180},
	"deep pink":    {255, 20, 147},
	"slate gray":   {112, 128, 144},
}

// LookupName resolves a color name to its RGB value.
//
// Names are case-insensitive; underscores are treated as spaces, so both
// "dark red" and "Dark_Red" resolve.
func LookupName(name string) (Color, bool) {
	key := strings.ToLower(strings.ReplaceAll(name, "_", " "))
	c, ok := colorNames[key]
	return c, ok
}

// NearestName returns the palette name closest to c, measured in CIE Lab
// space. Useful for describing an arbitrary sampled color.
func NearestName(c Color) string {
	target := toColorful(c)
	best := ""
	bestDist := -1.0
	for name, pc := range colorNames {
		d := target.DistanceLab(toColorful(pc))
		if bestDist < 0 || d < bestDist || (d == bestDist && name < best) {
			best = name
			bestDist = d
		}
	}
	return best
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
