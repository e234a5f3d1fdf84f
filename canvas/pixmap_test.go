package canvas

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestNewPixmapTransparent(t *testing.T) {
	pm := NewPixmap(4, 3)
	if pm.Width() != 4 || pm.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", pm.Width(), pm.Height())
	}
	if len(pm.Data()) != 4*3*4 {
		t.Fatalf("len(Data()) = %d, want %d", len(pm.Data()), 4*3*4)
	}
	for i, v := range pm.Data() {
		if v != 0 {
			t.Fatalf("Data()[%d] = %d, want 0", i, v)
		}
	}
}

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	c := RGB8(74, 108, 247)
	pm.SetPixel(3, 7, c)

	if got := pm.NRGBAAt(3, 7); got != c.NRGBA() {
		t.Errorf("NRGBAAt(3, 7) = %v, want %v", got, c.NRGBA())
	}
	if got := pm.GetPixel(3, 7).NRGBA(); got != c.NRGBA() {
		t.Errorf("GetPixel(3, 7) = %v, want %v", got, c.NRGBA())
	}
}

func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Black)
	original := bytes.Clone(pm.Data())

	for _, p := range []image.Point{{-1, 5}, {10, 5}, {5, -1}, {5, 10}, {100, 100}} {
		pm.SetPixel(p.X, p.Y, White)
		if got := pm.GetPixel(p.X, p.Y); got != Transparent {
			t.Errorf("GetPixel(%v) = %v, want Transparent", p, got)
		}
	}
	if !bytes.Equal(original, pm.Data()) {
		t.Error("out-of-bounds SetPixel modified data")
	}
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.Clear(RGB8(1, 2, 3))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := pm.NRGBAAt(x, y); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 255}) {
				t.Fatalf("pixel (%d, %d) = %v after Clear", x, y, got)
			}
		}
	}
}

func TestPixmapToImageIsCopy(t *testing.T) {
	pm := NewPixmap(2, 2)
	img := pm.ToImage()
	img.Pix[0] = 99
	if pm.Data()[0] != 0 {
		t.Error("ToImage shares memory with the pixmap")
	}
}

func TestPixmapEncodePNGKeepsAlpha(t *testing.T) {
	pm := NewPixmap(16, 16)
	pm.Clear(RGB8(74, 108, 247))

	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	// IHDR color type lives at byte 25: 8 (signature) + 8 (chunk header) + 9.
	if got := buf.Bytes()[25]; got != 6 {
		t.Errorf("PNG color type = %d, want 6 (RGBA)", got)
	}

	img, err := png.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("PNG decode failed: %v", err)
	}
	if img.Bounds() != pm.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", img.Bounds(), pm.Bounds())
	}
	if got := color.NRGBAModel.Convert(img.At(15, 15)); got != (color.NRGBA{R: 74, G: 108, B: 247, A: 255}) {
		t.Errorf("decoded pixel = %v", got)
	}
}

func TestPixmapSavePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	pm := NewPixmap(4, 4)
	pm.Clear(White)

	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("saved file is not a PNG: %v", err)
	}
}

func TestPixmapSavePNGMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	err := NewPixmap(4, 4).SavePNG(path)

	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("SavePNG error = %v, want *fs.PathError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("SavePNG error = %v, want fs.ErrNotExist", err)
	}
}
