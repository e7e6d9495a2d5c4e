package imgio

import (
	"image"
	"path/filepath"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 20, 10))
	for i := range src.Pix {
		src.Pix[i] = uint8(i % 251)
	}

	data, err := EncodePNG(src)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	got, err := DecodeBytes(data)
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}
	if got.Bounds().Dx() != 20 || got.Bounds().Dy() != 10 {
		t.Errorf("Unexpected bounds after round trip: %v", got.Bounds())
	}
	for i := range src.Pix {
		if got.Pix[i] != src.Pix[i] {
			t.Fatalf("Pixel %d changed: got %d, want %d", i, got.Pix[i], src.Pix[i])
		}
	}
}

func TestWriteAndDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "page.png")

	src := image.NewGray(image.Rect(0, 0, 8, 8))
	if err := WritePNG(path, src); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	got, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}
	if got.Bounds().Dx() != 8 || got.Bounds().Dy() != 8 {
		t.Errorf("Unexpected bounds: %v", got.Bounds())
	}
}

func TestDecodeFileMissing(t *testing.T) {
	if _, err := DecodeFile(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestDecodeBytesGarbage(t *testing.T) {
	if _, err := DecodeBytes([]byte("not an image")); err == nil {
		t.Error("Expected error for undecodable data")
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/scans/invoice-01.png", "invoice-01"},
		{"page.tiff", "page"},
		{"dir/noext", "noext"},
	}
	for _, tt := range tests {
		if got := Stem(tt.path); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestArtifactPaths(t *testing.T) {
	table := TablePath("out", "/scans/invoice.png", 1)
	if table != filepath.Join("out", "invoice-table-1.png") {
		t.Errorf("Unexpected table path: %s", table)
	}

	cell := CellPath("out", "/scans/invoice.png", 1, 2, 3)
	if cell != filepath.Join("out", "invoice-table-1-cell-2-3.png") {
		t.Errorf("Unexpected cell path: %s", cell)
	}
}
