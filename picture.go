package novice

import (
	"fmt"
	"image"
	"iter"
	"path/filepath"

	"github.com/pixelclass/novice/internal/codec"
	"github.com/pixelclass/novice/internal/resample"
)

// Picture owns a 2D grid of RGB cells and exposes them through Cartesian
// coordinates with the origin at the bottom-left.
//
// Internally the grid is stored row-major with row 0 at the top, matching
// raster formats; the y-axis flip is applied exactly once, where a logical
// coordinate touches storage.
type Picture struct {
	cells     [][]Color // row-major, row 0 at top; every row has equal length
	path      string    // absolute path, "" while content differs from disk
	format    string    // "png", "jpeg", ...; "" together with path
	modified  bool
	inflation int
}

// Open creates a Picture from an image file.
//
// The file is decoded through the codec collaborator; the picture records
// the absolute path and the detected format, and starts unmodified.
// Unreadable or undecodable files fail with ErrDecode.
func Open(path string) (*Picture, error) {
	img, format, err := codec.Decode(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	p, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	p.path = abs
	p.format = format
	return p, nil
}

// New creates a width x height Picture filled with black.
func New(width, height int) (*Picture, error) {
	return NewFilled(width, height, Color{})
}

// NewFilled creates a width x height Picture filled with the given color,
// which may be any form ParseColor accepts.
func NewFilled(width, height int, fill any) (*Picture, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("picture size must be positive, got %dx%d", width, height)
	}
	c, err := ParseColor(fill)
	if err != nil {
		return nil, err
	}
	cells := make([][]Color, height)
	for row := range cells {
		cells[row] = make([]Color, width)
		for col := range cells[row] {
			cells[row][col] = c
		}
	}
	return &Picture{cells: cells, inflation: 1}, nil
}

// FromImage creates a Picture holding a copy of the pixels of img.
// Alpha is discarded; 16-bit channels are scaled down to 8-bit.
// An image with a zero-area bounds fails: a Picture always has at least
// one cell.
func FromImage(img image.Image) (*Picture, error) {
	bounds := img.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil, fmt.Errorf("image must be non-empty, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	cells := make([][]Color, bounds.Dy())
	for row := range cells {
		cells[row] = make([]Color, bounds.Dx())
		for col := range cells[row] {
			r, g, b, _ := img.At(bounds.Min.X+col, bounds.Min.Y+row).RGBA()
			cells[row][col] = Color{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
		}
	}
	return &Picture{cells: cells, inflation: 1}, nil
}

// FromGrid creates a Picture holding a copy of the given grid. The grid is
// interpreted row-major with row 0 at the top and must be rectangular and
// non-empty.
func FromGrid(cells [][]Color) (*Picture, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("grid must be non-empty")
	}
	width := len(cells[0])
	copied := make([][]Color, len(cells))
	for row := range cells {
		if len(cells[row]) != width {
			return nil, fmt.Errorf("grid must be rectangular: row %d has %d cells, want %d",
				row, len(cells[row]), width)
		}
		copied[row] = make([]Color, width)
		copy(copied[row], cells[row])
	}
	return &Picture{cells: copied, inflation: 1}, nil
}

// Clone returns an independent deep copy of the picture. The copy has no
// path metadata and starts unmodified.
func (p *Picture) Clone() *Picture {
	clone, _ := FromGrid(p.cells)
	return clone
}

// Width returns the number of pixel columns.
func (p *Picture) Width() int { return len(p.cells[0]) }

// Height returns the number of pixel rows.
func (p *Picture) Height() int { return len(p.cells) }

// Size returns (width, height).
func (p *Picture) Size() (int, int) { return p.Width(), p.Height() }

// Path returns the absolute path of the file this picture corresponds to,
// or "" if the in-memory content no longer matches any file.
func (p *Picture) Path() string { return p.path }

// Format returns the file format ("png", "jpeg", ...) recorded at load or
// save time, or "" if the picture does not correspond to a file.
func (p *Picture) Format() string { return p.format }

// Modified reports whether any cell has been mutated since load, creation,
// or the last successful save.
func (p *Picture) Modified() bool { return p.modified }

// Inflation returns the export scale factor. Each pixel is rendered as an
// NxN block for factor N.
func (p *Picture) Inflation() int { return p.inflation }

// SetInflation sets the export scale factor. The factor only affects
// Render and Save output; it never mutates the cells.
func (p *Picture) SetInflation(factor int) error {
	if factor < 1 {
		return fmt.Errorf("inflation factor must be a positive integer, got %d", factor)
	}
	p.inflation = factor
	return nil
}

// SetSize resizes the picture to width x height by resampling. Resizing to
// the current size is a no-op that leaves the modified flag and path
// untouched. Any actual resize marks the picture modified and clears the
// path metadata; existing Pixels become stale.
func (p *Picture) SetSize(width, height int) error {
	if width == p.Width() && height == p.Height() {
		return nil
	}
	if width < 1 || height < 1 {
		return fmt.Errorf("picture size must be positive, got %dx%d", width, height)
	}
	resized, err := FromImage(resample.Resize(p.toImage(), width, height))
	if err != nil {
		return err
	}
	p.cells = resized.cells
	p.setModified()
	return nil
}

// SetWidth resizes to the given width, keeping the current height.
// Width and height are independent; no aspect ratio is preserved.
func (p *Picture) SetWidth(width int) error { return p.SetSize(width, p.Height()) }

// SetHeight resizes to the given height, keeping the current width.
func (p *Picture) SetHeight(height int) error { return p.SetSize(p.Width(), height) }

// Save encodes the picture to path, with the format inferred from the file
// suffix. The inflation factor is applied to the written image. On success
// the picture is unmodified and corresponds to the saved file; on failure
// the picture state is untouched.
func (p *Picture) Save(path string) error {
	// Resolve the path first so nothing can fail after the file is written.
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	format, err := codec.Encode(p.inflated(), path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	p.modified = false
	p.path = abs
	p.format = format
	return nil
}

// Pixel returns a Pixel aliasing the cell at Cartesian (x, y).
// Coordinates outside the picture, including negative ones, fail with
// ErrIndexOutOfBounds.
func (p *Picture) Pixel(x, y int) (*Pixel, error) {
	if x < 0 || y < 0 {
		return nil, fmt.Errorf("%w: negative indices not supported", ErrIndexOutOfBounds)
	}
	if x >= p.Width() || y >= p.Height() {
		return nil, fmt.Errorf("%w: (%d,%d) outside %dx%d picture",
			ErrIndexOutOfBounds, x, y, p.Width(), p.Height())
	}
	return p.makePixel(x, y), nil
}

// Pixels returns a lazy, restartable sequence over every pixel in
// column-major Cartesian order: all y for x=0, then all y for x=1, and so
// on. Each Pixel reflects the cell value at the moment it is yielded.
func (p *Picture) Pixels() iter.Seq[*Pixel] {
	return func(yield func(*Pixel) bool) {
		for x := 0; x < p.Width(); x++ {
			for y := 0; y < p.Height(); y++ {
				if !yield(p.makePixel(x, y)) {
					return
				}
			}
		}
	}
}

// Fill sets every cell to the given color (any form ParseColor accepts)
// and marks the picture modified.
func (p *Picture) Fill(value any) error {
	c, err := ParseColor(value)
	if err != nil {
		return err
	}
	for row := range p.cells {
		for col := range p.cells[row] {
			p.cells[row][col] = c
		}
	}
	p.setModified()
	return nil
}

// Reds returns a copy of the red plane, flattened row-major from the top row.
func (p *Picture) Reds() []uint8 { return p.plane(func(c Color) uint8 { return c.R }) }

// Greens returns a copy of the green plane.
func (p *Picture) Greens() []uint8 { return p.plane(func(c Color) uint8 { return c.G }) }

// Blues returns a copy of the blue plane.
func (p *Picture) Blues() []uint8 { return p.plane(func(c Color) uint8 { return c.B }) }

// SetReds sets the red component of every cell and marks the picture modified.
func (p *Picture) SetReds(v uint8) { p.setPlane(func(c *Color) { c.R = v }) }

// SetGreens sets the green component of every cell.
func (p *Picture) SetGreens(v uint8) { p.setPlane(func(c *Color) { c.G = v }) }

// SetBlues sets the blue component of every cell.
func (p *Picture) SetBlues(v uint8) { p.setPlane(func(c *Color) { c.B = v }) }

func (p *Picture) plane(get func(Color) uint8) []uint8 {
	out := make([]uint8, 0, p.Width()*p.Height())
	for row := range p.cells {
		for col := range p.cells[row] {
			out = append(out, get(p.cells[row][col]))
		}
	}
	return out
}

func (p *Picture) setPlane(set func(*Color)) {
	for row := range p.cells {
		for col := range p.cells[row] {
			set(&p.cells[row][col])
		}
	}
	p.setModified()
}

func (p *Picture) String() string {
	return fmt.Sprintf("Picture (format: %s, path: %s, modified: %t)",
		p.format, p.path, p.modified)
}

// makePixel builds a Pixel aliasing the cell at logical (x, y). Bounds must
// already be checked.
func (p *Picture) makePixel(x, y int) *Pixel {
	c := p.cellAt(x, y)
	return &Pixel{pic: p, x: x, y: y, r: c.R, g: c.G, b: c.B}
}

// cellAt maps a logical Cartesian coordinate to storage and reads it.
// This is the only place besides setCell where the y-axis flip happens.
func (p *Picture) cellAt(x, y int) Color {
	return p.cells[p.Height()-y-1][x]
}

func (p *Picture) setCell(x, y int, c Color) {
	p.cells[p.Height()-y-1][x] = c
}

// setModified marks the picture dirty. Modified pictures lose their path
// and format metadata.
func (p *Picture) setModified() {
	p.modified = true
	p.path = ""
	p.format = ""
}

// toImage renders the cells as an NRGBA image without inflation.
func (p *Picture) toImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.Width(), p.Height()))
	for row := range p.cells {
		for col := range p.cells[row] {
			c := p.cells[row][col]
			i := img.PixOffset(col, row)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 255
		}
	}
	return img
}

// inflated renders the cells with the inflation factor applied.
func (p *Picture) inflated() image.Image {
	return resample.Inflate(p.toImage(), p.inflation)
}
