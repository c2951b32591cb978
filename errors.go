package novice

import "errors"

// Sentinel errors returned by the package. Callers should match them with
// errors.Is; returned errors wrap these with call-site context.
var (
	// ErrInvalidColor indicates a color value that is not an RGB triple,
	// a "#RRGGBB" hex string, or a known color name.
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidKey indicates an index key of an unsupported shape, such as
	// a non-positive step or a span that selects nothing.
	ErrInvalidKey = errors.New("invalid key")

	// ErrIndexOutOfBounds indicates a coordinate outside the picture, or a
	// negative index (negative indices are not supported).
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrInvalidComponentValue indicates a color component outside 0-255
	// or a non-numeric component value.
	ErrInvalidComponentValue = errors.New("invalid component value")

	// ErrShapeMismatch indicates a region assignment whose source extent
	// differs from the destination extent.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrDecode indicates the codec could not read or decode an image file.
	ErrDecode = errors.New("decode error")

	// ErrEncode indicates the codec could not encode or write an image file.
	ErrEncode = errors.New("encode error")
)
