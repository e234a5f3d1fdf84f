package canvas

import (
	"image"
	"image/color"
	"io"

	"golang.org/x/image/draw"

	"github.com/taskapp/appicon/internal/atomicfile"
	"github.com/taskapp/appicon/internal/pngrgba"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored as premultiplied RGBA, 4 bytes per pixel, row-major
// with no row padding.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Data returns the raw pixel data (premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.img.Pix
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	p.img.SetRGBA(x, y, c.premultiplied())
}

// GetPixel returns the color of a single pixel.
// Out-of-bounds reads return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if !image.Pt(x, y).In(p.img.Rect) {
		return Transparent
	}
	return FromColor(p.NRGBAAt(x, y))
}

// NRGBAAt returns the 8-bit non-premultiplied color of a pixel.
func (p *Pixmap) NRGBAAt(x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(p.img.RGBAAt(x, y)).(color.NRGBA)
}

// Clear fills the entire pixmap with a color, replacing what was there.
func (p *Pixmap) Clear(c RGBA) {
	draw.Draw(p.img, p.img.Rect, image.NewUniform(c.premultiplied()), image.Point{}, draw.Src)
}

// ToImage returns a copy of the pixmap as an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(p.img.Rect)
	copy(img.Pix, p.img.Pix)
	return img
}

// ToNRGBA returns a non-premultiplied copy of the pixmap.
func (p *Pixmap) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(p.img.Rect)
	draw.Draw(img, img.Rect, p.img, p.img.Rect.Min, draw.Src)
	return img
}

// EncodePNG writes the pixmap to w as an 8-bit RGBA PNG. The alpha channel is
// always written, even when every pixel is opaque.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return pngrgba.Encode(w, p.ToNRGBA())
}

// SavePNG saves the pixmap to a PNG file. The file is written to a temporary
// name in the same directory and renamed into place, so a failed save never
// leaves a truncated file at path.
func (p *Pixmap) SavePNG(path string) error {
	return atomicfile.WriteFile(path, p.EncodePNG, 0o644)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

// Set implements the draw.Image interface so the rasterizer can composite
// directly into the pixmap.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.img.Set(x, y, c)
}

// rgba exposes the backing image for fast-path compositing.
func (p *Pixmap) rgba() *image.RGBA {
	return p.img
}

var _ draw.Image = (*Pixmap)(nil)
