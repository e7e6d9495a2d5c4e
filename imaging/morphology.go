package imaging

import "image"

// Kernel is a structuring element for morphological operations, anchored
// at (W/2, H/2). Mask is row-major; true marks an active element.
type Kernel struct {
	W, H int
	Mask []bool
}

// RectKernel returns a fully-set w×h structuring element.
func RectKernel(w, h int) Kernel {
	mask := make([]bool, w*h)
	for i := range mask {
		mask[i] = true
	}
	return Kernel{W: w, H: h, Mask: mask}
}

// CrossKernel returns a w×h cross-shaped structuring element: the row and
// column passing through the anchor are set.
func CrossKernel(w, h int) Kernel {
	mask := make([]bool, w*h)
	ax, ay := w/2, h/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == ax || y == ay {
				mask[y*w+x] = true
			}
		}
	}
	return Kernel{W: w, H: h, Mask: mask}
}

// Erode performs binary erosion of src by the kernel: a pixel stays
// foreground only if every active kernel element over it covers a
// foreground pixel. Out-of-bounds samples count as foreground.
func Erode(src *image.Gray, k Kernel) *image.Gray {
	return morph(src, k, true)
}

// Dilate performs binary dilation of src by the kernel: a pixel becomes
// foreground if any active kernel element over it covers a foreground
// pixel. Out-of-bounds samples count as background.
func Dilate(src *image.Gray, k Kernel) *image.Gray {
	return morph(src, k, false)
}

// Open performs a morphological opening (erosion then dilation) with the
// kernel, removing foreground features smaller than the kernel while
// preserving larger ones.
func Open(src *image.Gray, k Kernel) *image.Gray {
	return Dilate(Erode(src, k), k)
}

func morph(src *image.Gray, k Kernel, erode bool) *image.Gray {
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	ax, ay := k.W/2, k.H/2

	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			hit := erode
			for ky := 0; ky < k.H && hit == erode; ky++ {
				sy := y + ky - ay
				if sy < 0 || sy >= h {
					continue
				}
				for kx := 0; kx < k.W; kx++ {
					if !k.Mask[ky*k.W+kx] {
						continue
					}
					sx := x + kx - ax
					if sx < 0 || sx >= w {
						continue
					}
					fg := src.Pix[sy*src.Stride+sx] != 0
					if erode && !fg {
						hit = false
						break
					}
					if !erode && fg {
						hit = true
						break
					}
				}
			}
			if hit {
				dst.Pix[y*dst.Stride+x] = 255
			}
		}
	}
	return dst
}

// ErodeRect erodes src with a w×h rectangular structuring element using
// separable sliding-window passes, so the cost is independent of the
// kernel size. Large line-isolation kernels go through here.
func ErodeRect(src *image.Gray, w, h int) *image.Gray {
	return dilateErodeRect(src, w, h, true)
}

// DilateRect dilates src with a w×h rectangular structuring element using
// separable sliding-window passes.
func DilateRect(src *image.Gray, w, h int) *image.Gray {
	return dilateErodeRect(src, w, h, false)
}

// OpenRect performs an opening with a w×h rectangular structuring element.
func OpenRect(src *image.Gray, w, h int) *image.Gray {
	return DilateRect(ErodeRect(src, w, h), w, h)
}

func dilateErodeRect(src *image.Gray, kw, kh int, erode bool) *image.Gray {
	out := src
	if kw > 1 {
		out = morph1D(out, kw, true, erode)
	}
	if kh > 1 {
		out = morph1D(out, kh, false, erode)
	}
	if out == src {
		out = Clone(src)
	}
	return out
}

// morph1D runs a one-dimensional erosion or dilation with window length k
// along rows (horizontal=true) or columns. Prefix counts of foreground
// pixels make each output pixel O(1): a window is uniformly foreground
// when its count equals its clipped length, and touches foreground when
// the count is positive.
func morph1D(src *image.Gray, k int, horizontal, erode bool) *image.Gray {
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	anchor := k / 2

	dst := image.NewGray(image.Rect(0, 0, w, h))

	outer, inner := h, w
	if !horizontal {
		outer, inner = w, h
	}

	counts := make([]int, inner+1)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			var p uint8
			if horizontal {
				p = src.Pix[o*src.Stride+i]
			} else {
				p = src.Pix[i*src.Stride+o]
			}
			counts[i+1] = counts[i]
			if p != 0 {
				counts[i+1]++
			}
		}
		for i := 0; i < inner; i++ {
			lo := max(0, i-anchor)
			hi := min(inner, i-anchor+k)
			n := counts[hi] - counts[lo]

			var fg bool
			if erode {
				fg = n == hi-lo
			} else {
				fg = n > 0
			}
			if fg {
				if horizontal {
					dst.Pix[o*dst.Stride+i] = 255
				} else {
					dst.Pix[i*dst.Stride+o] = 255
				}
			}
		}
	}
	return dst
}
