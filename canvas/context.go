package canvas

import (
	"errors"
	"image"
	"image/color"
	"io"
)

// ErrClosed is returned by painting operations on a closed Context.
var ErrClosed = errors.New("canvas: context is closed")

// Context is the main drawing context.
// It maintains a pixmap, the current path and the current paint.
type Context struct {
	width    int
	height   int
	pixmap   *Pixmap
	renderer Renderer

	path  *Path
	paint *Paint

	closed bool
}

var _ io.Closer = (*Context)(nil)

// NewContext creates a new drawing context with the given dimensions.
// The pixmap starts fully transparent.
//
//	// Default software rendering
//	dc := canvas.NewContext(800, 600)
//
//	// Custom renderer (dependency injection)
//	dc := canvas.NewContext(800, 600, canvas.WithRenderer(r))
func NewContext(width, height int, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pixmap := options.pixmap
	if pixmap == nil {
		pixmap = NewPixmap(width, height)
	}
	width, height = pixmap.Width(), pixmap.Height()

	renderer := options.renderer
	if renderer == nil {
		renderer = NewSoftwareRenderer(width, height)
	}

	return &Context{
		width:    width,
		height:   height,
		pixmap:   pixmap,
		renderer: renderer,
		path:     NewPath(),
		paint:    NewPaint(),
	}
}

// Close releases the current path. Painting after Close returns ErrClosed;
// the pixmap stays readable. Close is idempotent.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.path.Clear()
	return nil
}

// Width returns the width of the context.
func (c *Context) Width() int {
	return c.width
}

// Height returns the height of the context.
func (c *Context) Height() int {
	return c.height
}

// Pixmap returns the pixmap the context draws into.
func (c *Context) Pixmap() *Pixmap {
	return c.pixmap
}

// Image returns a copy of the context's pixels.
func (c *Context) Image() image.Image {
	return c.pixmap.ToImage()
}

// EncodePNG writes the image as an RGBA PNG to the given writer.
func (c *Context) EncodePNG(w io.Writer) error {
	return c.pixmap.EncodePNG(w)
}

// SavePNG saves the context to a PNG file, replacing it atomically.
func (c *Context) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}

// Clear fills the entire context with transparent black.
func (c *Context) Clear() {
	c.pixmap.Clear(Transparent)
}

// ClearWithColor fills the entire context with a specific color.
func (c *Context) ClearWithColor(col RGBA) {
	c.pixmap.Clear(col)
}

// SetColor sets the current drawing color.
func (c *Context) SetColor(col color.Color) {
	if rgba, ok := col.(RGBA); ok {
		c.paint.Color = rgba
		return
	}
	c.paint.Color = FromColor(col)
}

// SetRGB sets the current color using RGB values (0-1).
func (c *Context) SetRGB(r, g, b float64) {
	c.paint.Color = RGB(r, g, b)
}

// SetRGBA sets the current color using RGBA values (0-1).
func (c *Context) SetRGBA(r, g, b, a float64) {
	c.paint.Color = RGBA{R: r, G: g, B: b, A: a}
}

// SetHexColor sets the current color using a hex string.
func (c *Context) SetHexColor(hex string) {
	c.paint.Color = Hex(hex)
}

// SetLineWidth sets the line width for stroking.
func (c *Context) SetLineWidth(width float64) {
	c.paint.Stroke.Width = width
}

// SetLineCap sets the line cap style.
func (c *Context) SetLineCap(lineCap LineCap) {
	c.paint.Stroke.Cap = lineCap
}

// SetLineJoin sets the line join style.
func (c *Context) SetLineJoin(join LineJoin) {
	c.paint.Stroke.Join = join
}

// SetMiterLimit sets the miter limit for miter joins.
func (c *Context) SetMiterLimit(limit float64) {
	c.paint.Stroke.MiterLimit = limit
}

// SetStroke replaces the whole stroke style.
func (c *Context) SetStroke(stroke Stroke) {
	c.paint.Stroke = stroke
}

// GetStroke returns the current stroke style.
func (c *Context) GetStroke() Stroke {
	return c.paint.Stroke
}

// MoveTo starts a new subpath at the given point.
func (c *Context) MoveTo(x, y float64) {
	c.path.MoveTo(x, y)
}

// LineTo adds a line to the current path.
func (c *Context) LineTo(x, y float64) {
	c.path.LineTo(x, y)
}

// QuadraticTo adds a quadratic Bezier curve to the current path.
func (c *Context) QuadraticTo(cx, cy, x, y float64) {
	c.path.QuadraticTo(cx, cy, x, y)
}

// CubicTo adds a cubic Bezier curve to the current path.
func (c *Context) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	c.path.Close()
}

// ClearPath clears the current path.
func (c *Context) ClearPath() {
	c.path.Clear()
}

// GetCurrentPoint returns the current point of the path.
// Returns (0, 0, false) if there is no current point.
func (c *Context) GetCurrentPoint() (x, y float64, ok bool) {
	if !c.path.HasCurrentPoint() {
		return 0, 0, false
	}
	pt := c.path.CurrentPoint()
	return pt.X, pt.Y, true
}

// DrawLine adds a line between two points as a new subpath.
func (c *Context) DrawLine(x1, y1, x2, y2 float64) {
	c.MoveTo(x1, y1)
	c.LineTo(x2, y2)
}

// DrawRectangle adds a rectangle.
func (c *Context) DrawRectangle(x, y, w, h float64) {
	c.path.Rectangle(x, y, w, h)
}

// DrawCircle adds a circle.
func (c *Context) DrawCircle(x, y, r float64) {
	c.path.Circle(x, y, r)
}

// DrawEllipse adds an ellipse.
func (c *Context) DrawEllipse(x, y, rx, ry float64) {
	c.path.Ellipse(x, y, rx, ry)
}

// Fill fills the current path and clears it.
func (c *Context) Fill() error {
	err := c.FillPreserve()
	c.path.Clear()
	return err
}

// Stroke strokes the current path and clears it.
func (c *Context) Stroke() error {
	err := c.StrokePreserve()
	c.path.Clear()
	return err
}

// FillPreserve fills the current path without clearing it.
func (c *Context) FillPreserve() error {
	if c.closed {
		return ErrClosed
	}
	return c.renderer.Fill(c.pixmap, c.path, c.paint)
}

// StrokePreserve strokes the current path without clearing it.
func (c *Context) StrokePreserve() error {
	if c.closed {
		return ErrClosed
	}
	return c.renderer.Stroke(c.pixmap, c.path, c.paint)
}
