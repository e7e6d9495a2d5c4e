package imaging

import (
	"image"
	"math"
)

// GaussianBlur smooths src with a ksize×ksize Gaussian kernel. The
// standard deviation is derived from the kernel size using the usual
// 0.3*((ksize-1)*0.5 - 1) + 0.8 formula. Edge pixels are handled by
// replicating the nearest in-bounds sample. The kernel needs a center
// tap, so an even ksize is rounded up to the next odd size; a ksize
// below 3 returns an unmodified copy.
func GaussianBlur(src *image.Gray, ksize int) *image.Gray {
	if ksize < 3 {
		return Clone(src)
	}
	if ksize%2 == 0 {
		ksize++
	}
	kernel := gaussianKernel(ksize)

	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	radius := ksize / 2

	// Horizontal pass into a float buffer, then vertical pass.
	tmp := make([]float64, w*h)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w]
		for x := 0; x < w; x++ {
			var acc float64
			for k := -radius; k <= radius; k++ {
				acc += kernel[k+radius] * float64(row[clampIndex(x+k, w)])
			}
			tmp[y*w+x] = acc
		}
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc float64
			for k := -radius; k <= radius; k++ {
				acc += kernel[k+radius] * tmp[clampIndex(y+k, h)*w+x]
			}
			dst.Pix[y*dst.Stride+x] = uint8(math.Round(math.Min(255, math.Max(0, acc))))
		}
	}
	return dst
}

func gaussianKernel(ksize int) []float64 {
	sigma := 0.3*(float64(ksize-1)*0.5-1) + 0.8
	center := float64(ksize-1) / 2

	kernel := make([]float64, ksize)
	sum := 0.0
	for i := range kernel {
		d := float64(i) - center
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// AdaptiveThreshold binarizes src against its local mean: a pixel becomes
// foreground (255) when its value exceeds the mean of the blockSize×blockSize
// neighborhood minus offset. With a negative offset the threshold sits
// slightly above the local mean, which keeps flat background regions out of
// the foreground. The local mean is computed with an integral image, so the
// cost is independent of blockSize.
func AdaptiveThreshold(src *image.Gray, blockSize, offset int) *image.Gray {
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	radius := blockSize / 2

	// integral[y][x] = sum of src over [0,x) × [0,y)
	integral := make([]int64, (w+1)*(h+1))
	for y := 0; y < h; y++ {
		var rowSum int64
		for x := 0; x < w; x++ {
			rowSum += int64(src.Pix[y*src.Stride+x])
			integral[(y+1)*(w+1)+x+1] = integral[y*(w+1)+x+1] + rowSum
		}
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		y1 := max(0, y-radius)
		y2 := min(h, y+radius+1)
		for x := 0; x < w; x++ {
			x1 := max(0, x-radius)
			x2 := min(w, x+radius+1)

			area := int64((x2 - x1) * (y2 - y1))
			sum := integral[y2*(w+1)+x2] - integral[y1*(w+1)+x2] -
				integral[y2*(w+1)+x1] + integral[y1*(w+1)+x1]

			// Threshold is mean - offset; compare without division.
			if int64(src.Pix[y*src.Stride+x])*area > sum-int64(offset)*area {
				dst.Pix[y*dst.Stride+x] = 255
			}
		}
	}
	return dst
}

// Preprocess prepares a grayscale page or table image for structural
// analysis: Gaussian blur to suppress scan noise, intensity inversion so
// ink becomes bright, then adaptive mean thresholding. The result is a
// binary image with ink as foreground (255).
func Preprocess(src *image.Gray, blurKernel, blockSize, offset int) *image.Gray {
	blurred := GaussianBlur(src, blurKernel)
	return AdaptiveThreshold(Invert(blurred), blockSize, offset)
}
