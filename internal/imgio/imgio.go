// Package imgio handles image file decoding, artifact encoding and
// artifact path naming for the pipeline. Page scans arrive as PNG,
// JPEG, TIFF or BMP; produced table and cell artifacts are written as
// PNG.
package imgio

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	// Raster formats produced by scanners and rasterizers.
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/tsawler/gridscan/imaging"
)

// DecodeFile reads an image file and returns it as grayscale.
func DecodeFile(path string) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return imaging.ToGray(img), nil
}

// DecodeBytes decodes an in-memory encoded image and returns it as
// grayscale.
func DecodeBytes(data []byte) (*image.Gray, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return imaging.ToGray(img), nil
}

// EncodePNG encodes an image as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// WritePNG writes an image to path as PNG, creating parent directories
// as needed.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	data, err := EncodePNG(img)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Stem returns the base name of path without its extension, used as the
// prefix for artifact names.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// TablePath names the artifact for table n (1-based) of the given
// source file.
func TablePath(dir, source string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("%s-table-%d.png", Stem(source), n))
}

// CellPath names the artifact for the cell at row r, column c (1-based)
// of table n of the given source file.
func CellPath(dir, source string, n, r, c int) string {
	return filepath.Join(dir, fmt.Sprintf("%s-table-%d-cell-%d-%d.png", Stem(source), n, r, c))
}
