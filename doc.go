// Package novice provides a simple image manipulation interface for beginners.
//
// A Picture wraps a raster image (loaded from a file or created blank) and
// exposes its pixels as individually addressable, mutable values. Pixels are
// addressed with Cartesian coordinates: (0,0) is the bottom-left corner,
// X increases rightward, and Y increases upward. This differs from the
// row-major, top-left convention used by most raster formats; the package
// performs the translation internally so callers never see raster rows.
//
// # Coordinate System
//
// All pixel coordinates are 0-based:
//   - X: horizontal position (0 = leftmost column)
//   - Y: vertical position (0 = bottom row)
//   - Valid X range: 0 to Width()-1
//   - Valid Y range: 0 to Height()-1
//
// Negative indices are rejected, never wrapped from the far edge.
//
// # Pixels Are Aliases
//
// A Pixel returned by Picture.Pixel or yielded by Picture.Pixels carries no
// storage of its own. Writing a component writes straight through to the
// owning Picture and marks it modified. A Pixel remains valid only until the
// next structural change (resize or whole-grid replacement) of its owner;
// after that its cached values may be stale and a fresh Pixel should be
// fetched.
//
// # Regions Are Copies
//
// Slicing a Picture with Axis spans returns a new, independent Picture
// holding a copy of the selected cells. Mutating the slice never mutates the
// source, and vice versa.
//
// # Modified Tracking
//
// A Picture knows whether its in-memory content still corresponds to a file
// on disk. Any mutation or resize sets Modified and clears Path/Format; a
// successful Save clears Modified and records the new path and format.
//
// # Thread Safety
//
// A Picture is not safe for concurrent mutation. Mutating the same Picture
// through two Pixels from separate goroutines is undefined; callers needing
// concurrency must synchronize externally.
//
// # Example
//
//	pic, err := novice.Open("sample.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for px := range pic.Pixels() {
//	    if px.Red() > 128 && px.X() < pic.Width()/2 {
//	        px.SetRed(int(px.Red()) / 2)
//	    }
//	}
//	fmt.Println(pic.Modified()) // true
//	pic.Save("sample-dimmed.jpg")
package novice
