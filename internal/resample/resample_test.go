package resample

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestResize_Dimensions(t *testing.T) {
	img := solid(10, 4, color.NRGBA{0, 128, 255, 255})

	tests := []struct {
		w, h int
	}{
		{5, 2},
		{20, 8},
		{7, 3},
		{1, 1},
	}

	for _, tt := range tests {
		out := Resize(img, tt.w, tt.h)
		bounds := out.Bounds()
		if bounds.Dx() != tt.w || bounds.Dy() != tt.h {
			t.Errorf("Resize to %dx%d: got %dx%d", tt.w, tt.h, bounds.Dx(), bounds.Dy())
		}
	}
}

func TestResize_Deterministic(t *testing.T) {
	img := solid(6, 6, color.NRGBA{200, 100, 50, 255})

	a := Resize(img, 3, 3)
	b := Resize(img, 3, 3)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("resize is not deterministic at (%d,%d)", x, y)
			}
		}
	}
}

func TestInflate_FactorOneIsIdentity(t *testing.T) {
	img := solid(3, 3, color.NRGBA{1, 2, 3, 255})

	if out := Inflate(img, 1); out != image.Image(img) {
		t.Error("Inflate with factor 1 should return the input unchanged")
	}
}

func TestInflate_ProducesBlocks(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 0, 255})

	out := Inflate(img, 3)
	bounds := out.Bounds()
	if bounds.Dx() != 6 || bounds.Dy() != 3 {
		t.Fatalf("inflated size: got %dx%d, want 6x3", bounds.Dx(), bounds.Dy())
	}

	// Left 3x3 block white, right 3x3 block black, no blending.
	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			r, _, _, _ := out.At(x, y).RGBA()
			want := uint8(255)
			if x >= 3 {
				want = 0
			}
			if uint8(r>>8) != want {
				t.Errorf("inflated (%d,%d): got %d, want %d", x, y, r>>8, want)
			}
		}
	}
}
