// Package resample resizes pixel grids for the novice library.
//
// Two operations are provided: quality resizing for the user-visible size
// setter, and nearest-neighbor inflation for pixel-block display, where
// each source pixel must stay a crisp NxN square.
package resample

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
)

// Resize resamples img to width x height using a Lanczos filter.
// Deterministic for fixed inputs.
func Resize(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// Inflate scales img by an integer factor using nearest-neighbor sampling,
// so every source pixel becomes a factor x factor block. A factor of 1
// returns img unchanged.
func Inflate(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	bounds := img.Bounds()
	return transform.Resize(img, bounds.Dx()*factor, bounds.Dy()*factor, transform.NearestNeighbor)
}
