package codec

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestFormatName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.png", "png"},
		{"a.PNG", "png"},
		{"a.jpg", "jpeg"},
		{"a.jpeg", "jpeg"},
		{"a.gif", "gif"},
		{"a.tif", "tiff"},
		{"a.tiff", "tiff"},
		{"a.bmp", "bmp"},
		{"a.webp", "unknown"},
		{"a", "unknown"},
		{"/some/dir/b.Jpg", "jpeg"},
	}

	for _, tt := range tests {
		if got := FormatName(tt.path); got != tt.want {
			t.Errorf("FormatName(%q): got %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(1, 0, color.NRGBA{0, 255, 0, 255})
	img.Set(0, 1, color.NRGBA{0, 0, 255, 255})
	img.Set(1, 1, color.NRGBA{255, 255, 255, 255})

	path := filepath.Join(t.TempDir(), "roundtrip.png")

	format, err := Encode(img, path)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if format != "png" {
		t.Errorf("encode format: got %q, want png", format)
	}

	decoded, format, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if format != "png" {
		t.Errorf("decode format: got %q, want png", format)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 2 || bounds.Dy() != 2 {
		t.Fatalf("decoded size: got %dx%d, want 2x2", bounds.Dx(), bounds.Dy())
	}

	r, g, b, _ := decoded.At(0, 0).RGBA()
	if uint8(r>>8) != 255 || uint8(g>>8) != 0 || uint8(b>>8) != 0 {
		t.Errorf("decoded (0,0): got (%d,%d,%d), want (255,0,0)", r>>8, g>>8, b>>8)
	}
}

func TestEncode_UnsupportedSuffix(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))

	if _, err := Encode(img, filepath.Join(t.TempDir(), "out.xyz")); err == nil {
		t.Error("Encode should fail for an unsupported suffix")
	}
}

func TestDecode_Missing(t *testing.T) {
	if _, _, err := Decode(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Decode should fail for a missing file")
	}
}

func TestDecode_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("writing fixture failed: %v", err)
	}

	if _, _, err := Decode(path); err == nil {
		t.Error("Decode should fail for corrupt data")
	}
}
