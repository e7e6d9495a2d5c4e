package imaging

import "image"

// Rotate returns src rotated clockwise by the given angle, which must be
// one of 0, 90, 180 or 270 degrees. Any other angle returns an
// unmodified copy; arbitrary-angle deskew is outside this package's
// scope.
func Rotate(src *image.Gray, degrees int) *image.Gray {
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()

	switch ((degrees % 360) + 360) % 360 {
	case 90:
		dst := image.NewGray(image.Rect(0, 0, h, w))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.Pix[x*dst.Stride+(h-1-y)] = src.Pix[y*src.Stride+x]
			}
		}
		return dst
	case 180:
		dst := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.Pix[(h-1-y)*dst.Stride+(w-1-x)] = src.Pix[y*src.Stride+x]
			}
		}
		return dst
	case 270:
		dst := image.NewGray(image.Rect(0, 0, h, w))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.Pix[(w-1-x)*dst.Stride+y] = src.Pix[y*src.Stride+x]
			}
		}
		return dst
	default:
		return Clone(src)
	}
}
