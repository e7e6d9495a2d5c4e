package imaging

import (
	"image"
	"testing"

	"github.com/tsawler/gridscan/model"
)

// fill paints the region r of img with the given value.
func fill(img *image.Gray, r model.Rect, value uint8) {
	for y := r.Top(); y < r.Bottom(); y++ {
		for x := r.Left(); x < r.Right(); x++ {
			img.Pix[y*img.Stride+x] = value
		}
	}
}

// ring paints a hollow rectangle of the given border thickness.
func ring(img *image.Gray, r model.Rect, thickness int, value uint8) {
	fill(img, r, value)
	inner := model.NewRect(r.X+thickness, r.Y+thickness, r.Width-2*thickness, r.Height-2*thickness)
	fill(img, inner, 0)
}

func at(img *image.Gray, x, y int) uint8 {
	return img.Pix[y*img.Stride+x]
}

func TestToGrayZeroOrigin(t *testing.T) {
	src := NewUniform(10, 8, 200)
	dst := ToGray(src)
	if dst.Bounds().Dx() != 10 || dst.Bounds().Dy() != 8 {
		t.Fatalf("Unexpected bounds: %v", dst.Bounds())
	}
	if at(dst, 3, 3) != 200 {
		t.Errorf("Expected 200, got %d", at(dst, 3, 3))
	}
}

func TestSubImageCopies(t *testing.T) {
	src := NewUniform(20, 20, 100)
	fill(src, model.NewRect(5, 5, 3, 3), 42)

	sub := SubImage(src, model.NewRect(5, 5, 3, 3))
	if sub.Bounds().Dx() != 3 || sub.Bounds().Dy() != 3 {
		t.Fatalf("Unexpected sub bounds: %v", sub.Bounds())
	}
	if at(sub, 0, 0) != 42 {
		t.Errorf("Expected 42, got %d", at(sub, 0, 0))
	}

	// Mutating the copy must not touch the source.
	sub.Pix[0] = 7
	if at(src, 5, 5) != 42 {
		t.Error("SubImage aliases the source image")
	}
}

func TestSubImageClipsToBounds(t *testing.T) {
	src := NewUniform(10, 10, 255)

	sub := SubImage(src, model.NewRect(8, 8, 10, 10))
	if sub.Bounds().Dx() != 2 || sub.Bounds().Dy() != 2 {
		t.Errorf("Expected 2x2 clipped sub-image, got %v", sub.Bounds())
	}

	if SubImage(src, model.NewRect(20, 20, 5, 5)) != nil {
		t.Error("Expected nil for fully out-of-bounds region")
	}
}

func TestInvert(t *testing.T) {
	src := NewUniform(4, 4, 200)
	dst := Invert(src)
	if at(dst, 1, 1) != 55 {
		t.Errorf("Expected 55, got %d", at(dst, 1, 1))
	}
}

func TestAddSaturating(t *testing.T) {
	a := NewUniform(4, 4, 200)
	b := NewUniform(4, 4, 100)
	sum := AddSaturating(a, b)
	if at(sum, 0, 0) != 255 {
		t.Errorf("Expected saturation at 255, got %d", at(sum, 0, 0))
	}

	c := NewUniform(4, 4, 30)
	sum = AddSaturating(c, b)
	if at(sum, 0, 0) != 130 {
		t.Errorf("Expected 130, got %d", at(sum, 0, 0))
	}
}

func TestAddBorder(t *testing.T) {
	src := NewUniform(6, 4, 0)
	dst := AddBorder(src, 5, 255)

	if dst.Bounds().Dx() != 16 || dst.Bounds().Dy() != 14 {
		t.Fatalf("Expected 16x14, got %v", dst.Bounds())
	}
	if at(dst, 0, 0) != 255 {
		t.Error("Border should be white")
	}
	if at(dst, 5, 5) != 0 {
		t.Error("Interior should be preserved")
	}
}

func TestGaussianBlurPreservesUniform(t *testing.T) {
	src := NewUniform(30, 30, 180)
	dst := GaussianBlur(src, 17)

	if dst.Bounds() != src.Bounds() {
		t.Fatalf("Blur changed size: %v", dst.Bounds())
	}
	for i, p := range dst.Pix {
		if p != 180 {
			t.Fatalf("Uniform image changed at %d: %d", i, p)
		}
	}
}

func TestGaussianBlurSmoothsSpike(t *testing.T) {
	src := NewUniform(21, 21, 0)
	fill(src, model.NewRect(10, 10, 1, 1), 255)

	dst := GaussianBlur(src, 5)
	center := at(dst, 10, 10)
	neighbor := at(dst, 11, 10)

	if center >= 255 {
		t.Errorf("Spike should be attenuated, got %d", center)
	}
	if neighbor == 0 {
		t.Error("Energy should spread to neighbors")
	}
	if neighbor >= center {
		t.Errorf("Neighbor %d should stay below center %d", neighbor, center)
	}
}

func TestGaussianBlurEvenKernelRoundsUp(t *testing.T) {
	src := NewUniform(21, 21, 0)
	fill(src, model.NewRect(10, 10, 1, 1), 255)

	even := GaussianBlur(src, 4)
	odd := GaussianBlur(src, 5)

	if even.Bounds() != src.Bounds() {
		t.Fatalf("Blur changed size: %v", even.Bounds())
	}
	for i := range even.Pix {
		if even.Pix[i] != odd.Pix[i] {
			t.Fatalf("Even kernel size must round up to the next odd size, pixel %d: %d vs %d",
				i, even.Pix[i], odd.Pix[i])
		}
	}
}

func TestAdaptiveThresholdFlatBackground(t *testing.T) {
	// With a negative offset the threshold sits above the local mean,
	// so perfectly flat regions never become foreground.
	src := NewUniform(40, 40, 128)
	dst := AdaptiveThreshold(src, 15, -2)
	for i, p := range dst.Pix {
		if p != 0 {
			t.Fatalf("Flat image produced foreground at %d", i)
		}
	}
}

func TestAdaptiveThresholdBrightRidge(t *testing.T) {
	src := NewUniform(40, 40, 0)
	fill(src, model.NewRect(20, 0, 2, 40), 90)

	dst := AdaptiveThreshold(src, 15, -2)
	if at(dst, 20, 20) != 255 {
		t.Error("Ridge should be foreground")
	}
	if at(dst, 5, 20) != 0 {
		t.Error("Background should stay background")
	}
}

func TestPreprocessInkForeground(t *testing.T) {
	// White page with a dark vertical rule: the binarized output must
	// have the rule as foreground and the paper as background.
	src := NewUniform(60, 60, 255)
	fill(src, model.NewRect(30, 0, 2, 60), 0)

	bin := Preprocess(src, 5, 15, -2)
	if at(bin, 30, 30) != 255 {
		t.Error("Ink should be foreground after preprocessing")
	}
	if at(bin, 5, 30) != 0 {
		t.Error("Paper should be background after preprocessing")
	}
}

func TestErodeDilateRect(t *testing.T) {
	src := NewUniform(30, 30, 0)
	fill(src, model.NewRect(10, 10, 10, 10), 255)

	eroded := ErodeRect(src, 5, 5)
	if at(eroded, 14, 14) != 255 {
		t.Error("Block center should survive erosion")
	}
	if at(eroded, 10, 10) != 0 {
		t.Error("Block edge should be eroded")
	}

	dilated := DilateRect(src, 5, 5)
	if at(dilated, 8, 8) != 255 {
		t.Error("Dilation should grow the block")
	}
	if at(dilated, 5, 5) != 0 {
		t.Error("Dilation should not grow past the kernel radius")
	}
}

func TestOpenRectRemovesSmallFeatures(t *testing.T) {
	src := NewUniform(40, 40, 0)
	fill(src, model.NewRect(5, 5, 3, 3), 255)    // noise blob
	fill(src, model.NewRect(15, 15, 12, 12), 255) // real feature

	opened := OpenRect(src, 7, 7)
	if at(opened, 6, 6) != 0 {
		t.Error("Small blob should be removed by opening")
	}
	if at(opened, 20, 20) != 255 {
		t.Error("Large feature should survive opening")
	}
}

func TestSeparableMatchesDirect(t *testing.T) {
	src := NewUniform(25, 25, 0)
	fill(src, model.NewRect(6, 4, 9, 13), 255)
	fill(src, model.NewRect(18, 18, 2, 2), 255)

	k := RectKernel(3, 5)
	direct := Erode(src, k)
	separable := ErodeRect(src, 3, 5)
	for i := range direct.Pix {
		if direct.Pix[i] != separable.Pix[i] {
			t.Fatalf("Erode mismatch at %d", i)
		}
	}

	direct = Dilate(src, k)
	separable = DilateRect(src, 3, 5)
	for i := range direct.Pix {
		if direct.Pix[i] != separable.Pix[i] {
			t.Fatalf("Dilate mismatch at %d", i)
		}
	}
}

func TestCrossKernelShape(t *testing.T) {
	k := CrossKernel(3, 3)
	want := []bool{
		false, true, false,
		true, true, true,
		false, true, false,
	}
	for i := range want {
		if k.Mask[i] != want[i] {
			t.Fatalf("Cross mask wrong at %d", i)
		}
	}
}

func TestBuildLineMask(t *testing.T) {
	bin := NewUniform(100, 100, 0)
	fill(bin, model.NewRect(0, 50, 100, 2), 255) // long horizontal rule
	fill(bin, model.NewRect(30, 0, 2, 100), 255) // long vertical rule
	fill(bin, model.NewRect(40, 20, 10, 2), 255) // short run: text-like noise

	mask := BuildLineMask(bin, 5, 3, 3)

	if at(mask, 5, 50) == 0 {
		t.Error("Horizontal rule missing from mask")
	}
	if at(mask, 30, 5) == 0 {
		t.Error("Vertical rule missing from mask")
	}
	if at(mask, 45, 20) != 0 {
		t.Error("Short run should be removed from mask")
	}
	if at(mask, 70, 80) != 0 {
		t.Error("Empty area should stay background")
	}
}

func TestRotate(t *testing.T) {
	src := NewUniform(3, 2, 0)
	// Mark the top-left pixel.
	fill(src, model.NewRect(0, 0, 1, 1), 255)

	r90 := Rotate(src, 90)
	if r90.Bounds().Dx() != 2 || r90.Bounds().Dy() != 3 {
		t.Fatalf("90 degree rotation has wrong size: %v", r90.Bounds())
	}
	if at(r90, 1, 0) != 255 {
		t.Error("Top-left should move to top-right after 90 degrees clockwise")
	}

	r180 := Rotate(src, 180)
	if at(r180, 2, 1) != 255 {
		t.Error("Top-left should move to bottom-right after 180 degrees")
	}

	r270 := Rotate(src, 270)
	if r270.Bounds().Dx() != 2 || r270.Bounds().Dy() != 3 {
		t.Fatalf("270 degree rotation has wrong size: %v", r270.Bounds())
	}
	if at(r270, 0, 2) != 255 {
		t.Error("Top-left should move to bottom-left after 270 degrees")
	}

	if same := Rotate(src, 0); at(same, 0, 0) != 255 || same.Bounds() != src.Bounds() {
		t.Error("0 degrees should return an unmodified copy")
	}
}
