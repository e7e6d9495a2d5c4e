// Package ocr recognizes the text content of cropped table-cell images.
//
// The package wraps the Tesseract OCR engine via gosseract and requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// OCR support is compiled in with the "ocr" build tag:
//
//	go build -tags ocr
//
// Without the tag a stub client is built whose operations return
// [ErrOCRNotEnabled], so the segmentation pipeline stays usable on
// systems without Tesseract.
package ocr

// PageSegMode controls how the OCR engine analyzes page layout. Table
// cells typically hold a single block or a single line of text, so
// PSMSingleBlock and PSMSingleLine are the useful modes here.
type PageSegMode int

// Page segmentation modes, matching Tesseract's --psm values.
const (
	PSMOSDOnly             PageSegMode = 0  // Orientation and script detection only
	PSMAutoOSD             PageSegMode = 1  // Automatic with OSD
	PSMAutoOnly            PageSegMode = 2  // Automatic, no OSD or OCR
	PSMAuto                PageSegMode = 3  // Fully automatic (default)
	PSMSingleColumn        PageSegMode = 4  // Single column of variable sizes
	PSMSingleBlockVertText PageSegMode = 5  // Single uniform block of vertical text
	PSMSingleBlock         PageSegMode = 6  // Single uniform block of text
	PSMSingleLine          PageSegMode = 7  // Single text line
	PSMSingleWord          PageSegMode = 8  // Single word
	PSMCircleWord          PageSegMode = 9  // Single word in a circle
	PSMSingleChar          PageSegMode = 10 // Single character
	PSMSparseText          PageSegMode = 11 // Find as much text as possible
	PSMSparseTextOSD       PageSegMode = 12 // Sparse text with OSD
	PSMRawLine             PageSegMode = 13 // Treat image as a single text line
)
