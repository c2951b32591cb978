package novice

import "fmt"

// Axis selects coordinates along one dimension of a Picture: either a
// single index or a span with optional start, stop, and step.
//
// Spans follow half-open semantics: start is inclusive, stop exclusive.
// A missing start defaults to 0, a missing stop to the axis extent, and a
// stop beyond the extent is clamped. Negative indices and bounds are
// rejected with ErrIndexOutOfBounds rather than wrapped. A step must be at
// least 1; a span that selects nothing fails with ErrInvalidKey.
//
// A step on the x-axis counts columns from the start of the span. A step
// on the y-axis counts rows in raster order, from the top of the span
// downward: the flip to internal storage is applied to the span as a
// whole before stepping, so a stride over an even-height span keeps the
// topmost selected row rather than the bottommost.
type Axis struct {
	index    int
	isIndex  bool
	start    int
	stop     int
	hasStart bool
	hasStop  bool
	step     int // 0 means unset (1)
}

// At selects the single coordinate i.
func At(i int) Axis { return Axis{index: i, isIndex: true} }

// All selects every coordinate on the axis.
func All() Axis { return Axis{} }

// From selects coordinates from start (inclusive) to the axis extent.
func From(start int) Axis { return Axis{start: start, hasStart: true} }

// UpTo selects coordinates from 0 to stop (exclusive).
func UpTo(stop int) Axis { return Axis{stop: stop, hasStop: true} }

// Range selects coordinates from start (inclusive) to stop (exclusive).
func Range(start, stop int) Axis {
	return Axis{start: start, stop: stop, hasStart: true, hasStop: true}
}

// Step returns a copy of the axis that advances by n coordinates at a time.
func (a Axis) Step(n int) Axis {
	a.step = n
	return a
}

// resolve normalizes the axis against an extent into an ascending list of
// logical coordinates, stepping from the start of the span.
func (a Axis) resolve(extent int) ([]int, error) {
	start, stop, step, single, err := a.normalize(extent)
	if err != nil {
		return nil, err
	}
	if single {
		return []int{start}, nil
	}

	indices := make([]int, 0, (stop-start+step-1)/step)
	for i := start; i < stop; i += step {
		indices = append(indices, i)
	}
	return indices, nil
}

// resolveRows normalizes a y-axis against the picture height. The flip to
// internal row order is applied to the span as a whole before stepping, so
// a stride walks rows top-down; the selected rows are returned as an
// ascending list of logical y coordinates.
func (a Axis) resolveRows(extent int) ([]int, error) {
	start, stop, step, single, err := a.normalize(extent)
	if err != nil {
		return nil, err
	}
	if single {
		return []int{start}, nil
	}

	indices := make([]int, 0, (stop-start+step-1)/step)
	for y := stop - 1; y >= start; y -= step {
		indices = append(indices, y)
	}
	// Collected top-down; flip back to ascending logical order.
	for i, j := 0, len(indices)-1; i < j; i, j = i+1, j-1 {
		indices[i], indices[j] = indices[j], indices[i]
	}
	return indices, nil
}

// normalize validates the axis against an extent. For an At axis it
// returns the index with single=true; for a span it returns the clamped
// [start, stop) bounds and step.
func (a Axis) normalize(extent int) (start, stop, step int, single bool, err error) {
	if a.isIndex {
		if a.index < 0 {
			return 0, 0, 0, false, fmt.Errorf("%w: negative indices not supported", ErrIndexOutOfBounds)
		}
		if a.index >= extent {
			return 0, 0, 0, false, fmt.Errorf("%w: index %d outside extent %d", ErrIndexOutOfBounds, a.index, extent)
		}
		return a.index, 0, 0, true, nil
	}

	step = a.step
	if step == 0 {
		step = 1
	}
	if step < 1 {
		return 0, 0, 0, false, fmt.Errorf("%w: step must be at least 1, got %d", ErrInvalidKey, step)
	}

	start, stop = 0, extent
	if a.hasStart {
		if a.start < 0 {
			return 0, 0, 0, false, fmt.Errorf("%w: negative slicing not supported", ErrIndexOutOfBounds)
		}
		start = a.start
	}
	if a.hasStop {
		if a.stop < 0 {
			return 0, 0, 0, false, fmt.Errorf("%w: negative slicing not supported", ErrIndexOutOfBounds)
		}
		stop = a.stop
	}
	if stop > extent {
		stop = extent
	}
	if start >= stop {
		return 0, 0, 0, false, fmt.Errorf("%w: span [%d:%d] selects nothing", ErrInvalidKey, start, stop)
	}
	return start, stop, step, false, nil
}

// Slice returns a new independent Picture holding a copy of the cells
// selected by the two axes. It never returns a view: mutating the result
// does not mutate the source, and vice versa. With one axis an At index the
// result is a single row or column; with both, a 1x1 picture (use Pixel for
// an aliasing handle instead).
func (p *Picture) Slice(xs, ys Axis) (*Picture, error) {
	xIdx, err := xs.resolve(p.Width())
	if err != nil {
		return nil, err
	}
	yIdx, err := ys.resolveRows(p.Height())
	if err != nil {
		return nil, err
	}

	cells := make([][]Color, len(yIdx))
	for i, y := range yIdx {
		row := make([]Color, len(xIdx))
		for j, x := range xIdx {
			row[j] = p.cellAt(x, y)
		}
		// yIdx ascends in Cartesian y, so later entries are higher rows.
		cells[len(yIdx)-1-i] = row
	}
	return &Picture{cells: cells, inflation: 1}, nil
}

// Set writes into the region selected by the two axes and marks the picture
// modified. The value is either a color form accepted by ParseColor (or a
// *Pixel), broadcast to every selected cell, or a *Picture whose cells are
// copied element-wise. A source picture whose extent differs from the
// selected region fails with ErrShapeMismatch and leaves the destination
// untouched.
func (p *Picture) Set(xs, ys Axis, value any) error {
	xIdx, err := xs.resolve(p.Width())
	if err != nil {
		return err
	}
	yIdx, err := ys.resolveRows(p.Height())
	if err != nil {
		return err
	}

	if src, ok := value.(*Picture); ok {
		if src.Width() != len(xIdx) || src.Height() != len(yIdx) {
			return fmt.Errorf("%w: region is %dx%d but source picture is %dx%d",
				ErrShapeMismatch, len(xIdx), len(yIdx), src.Width(), src.Height())
		}
		for i, y := range yIdx {
			for j, x := range xIdx {
				p.setCell(x, y, src.cellAt(j, i))
			}
		}
		p.setModified()
		return nil
	}

	if px, ok := value.(*Pixel); ok {
		value = px.RGB()
	}
	c, err := ParseColor(value)
	if err != nil {
		return err
	}
	for _, y := range yIdx {
		for _, x := range xIdx {
			p.setCell(x, y, c)
		}
	}
	p.setModified()
	return nil
}

// SetPixel sets the single cell at Cartesian (x, y) to the given color.
// It is shorthand for Set(At(x), At(y), value).
func (p *Picture) SetPixel(x, y int, value any) error {
	return p.Set(At(x), At(y), value)
}
