package imaging

import "image"

// BuildLineMask isolates the long horizontal and vertical ruling lines of
// a binarized page or table image.
//
// A horizontal structuring element of length width/scale opens the image
// to keep only long horizontal runs; a vertical element of length
// height/scale does the same for vertical runs. Each opened result is
// dilated again (hDilate×1 and 1×vDilate) to thicken the lines and
// reconnect segments broken by anti-aliasing, and the two masks are
// summed with saturation.
//
// The scale-relative element lengths assume scanned-page resolutions in
// the usual 150-300 DPI range; inputs far outside that range need the
// constants re-tuned.
func BuildLineMask(binary *image.Gray, scale, hDilate, vDilate int) *image.Gray {
	w := binary.Bounds().Dx()
	h := binary.Bounds().Dy()

	hLen := max(1, w/scale)
	vLen := max(1, h/scale)

	horizontal := OpenRect(binary, hLen, 1)
	horizontal = DilateRect(horizontal, max(1, hDilate), 1)

	vertical := OpenRect(binary, 1, vLen)
	vertical = DilateRect(vertical, 1, max(1, vDilate))

	return AddSaturating(horizontal, vertical)
}
