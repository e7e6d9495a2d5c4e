package imaging

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/tsawler/gridscan/model"
)

// ToGray converts any image to a zero-origin grayscale image.
func ToGray(src image.Image) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	if g, ok := src.(*image.Gray); ok {
		for y := 0; y < b.Dy(); y++ {
			srcRow := g.Pix[(b.Min.Y+y-g.Rect.Min.Y)*g.Stride+(b.Min.X-g.Rect.Min.X):]
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+b.Dx()], srcRow[:b.Dx()])
		}
		return dst
	}
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	return dst
}

// Clone returns a zero-origin copy of src.
func Clone(src *image.Gray) *image.Gray {
	return ToGray(src)
}

// NewUniform returns a w×h image with every pixel set to value.
func NewUniform(w, h int, value uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = value
	}
	return img
}

// Bounds returns the image bounds as a model.Rect.
func Bounds(img *image.Gray) model.Rect {
	return model.FromImageRect(img.Bounds())
}

// SubImage returns a copy of the region r of src, clipped to the image
// bounds. Returns nil when the clipped region is empty.
func SubImage(src *image.Gray, r model.Rect) *image.Gray {
	clipped := r.Clip(Bounds(src))
	if clipped.Empty() {
		return nil
	}
	dst := image.NewGray(image.Rect(0, 0, clipped.Width, clipped.Height))
	for y := 0; y < clipped.Height; y++ {
		srcOff := (clipped.Y+y)*src.Stride + clipped.X
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+clipped.Width], src.Pix[srcOff:srcOff+clipped.Width])
	}
	return dst
}

// Invert returns the intensity-inverted image (ink becomes bright).
func Invert(src *image.Gray) *image.Gray {
	dst := image.NewGray(src.Bounds())
	for i, p := range src.Pix {
		dst.Pix[i] = 255 - p
	}
	return dst
}

// AddSaturating returns the pixelwise saturating sum of a and b.
// Both images must have identical dimensions.
func AddSaturating(a, b *image.Gray) *image.Gray {
	dst := image.NewGray(a.Bounds())
	for i := range a.Pix {
		sum := int(a.Pix[i]) + int(b.Pix[i])
		if sum > 255 {
			sum = 255
		}
		dst.Pix[i] = uint8(sum)
	}
	return dst
}

// AddBorder returns src surrounded by a margin-pixel border of the given
// value on all four sides.
func AddBorder(src *image.Gray, margin int, value uint8) *image.Gray {
	if margin <= 0 {
		return Clone(src)
	}
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	dst := NewUniform(w+2*margin, h+2*margin, value)
	for y := 0; y < h; y++ {
		dstOff := (y+margin)*dst.Stride + margin
		copy(dst.Pix[dstOff:dstOff+w], src.Pix[y*src.Stride:y*src.Stride+w])
	}
	return dst
}
