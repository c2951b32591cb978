// Package codec reads and writes image files for the novice library.
//
// It is the narrow file-format boundary: decoding a file into an
// image.Image and encoding an image.Image back out, with the format keyed
// by the file suffix. Supported formats are PNG, JPEG, GIF, TIFF, and BMP.
package codec

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Decode opens and decodes the image file at path. It returns the decoded
// image and the format name inferred from the file suffix ("png", "jpeg",
// "gif", "tiff", "bmp", or "unknown" for an unrecognized suffix that still
// decodes).
func Decode(path string) (image.Image, string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	return img, FormatName(path), nil
}

// Encode writes img to path, with the encoding chosen by the file suffix.
// It returns the format name on success. An unsupported suffix or a write
// failure returns an error without committing a partial file the caller
// should treat as saved.
func Encode(img image.Image, path string) (string, error) {
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return FormatName(path), nil
}

// FormatName normalizes a file suffix to a format name.
func FormatName(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".tif", ".tiff":
		return "tiff"
	case ".bmp":
		return "bmp"
	}
	return "unknown"
}
