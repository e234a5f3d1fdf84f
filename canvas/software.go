package canvas

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// SoftwareRenderer is a CPU rasterizer computing exact per-pixel coverage
// (analytic anti-aliasing) with the non-zero winding rule.
type SoftwareRenderer struct {
	rasterizer *vector.Rasterizer
}

var _ Renderer = (*SoftwareRenderer)(nil)

// NewSoftwareRenderer creates a new software renderer.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Over
	return &SoftwareRenderer{rasterizer: z}
}

// Fill implements Renderer.Fill. Open subpaths are closed implicitly.
// Curves are flattened to FillTolerance first.
func (r *SoftwareRenderer) Fill(pixmap *Pixmap, p *Path, paint *Paint) error {
	z := r.begin(pixmap)
	for _, sp := range p.FlattenTolerance(FillTolerance) {
		if len(sp.Points) < 3 {
			continue
		}
		z.MoveTo(f32(sp.Points[0]))
		for _, pt := range sp.Points[1:] {
			z.LineTo(f32(pt))
		}
		z.ClosePath()
	}
	r.composite(pixmap, paint.Color)
	return nil
}

// Stroke implements Renderer.Stroke by expanding the flattened path into
// fill polygons according to paint.Stroke.
func (r *SoftwareRenderer) Stroke(pixmap *Pixmap, p *Path, paint *Paint) error {
	polys := paint.Stroke.Expand(p.Flatten())
	if len(polys) == 0 {
		return nil
	}
	z := r.begin(pixmap)
	for _, poly := range polys {
		z.MoveTo(f32(poly[0]))
		for _, pt := range poly[1:] {
			z.LineTo(f32(pt))
		}
		z.ClosePath()
	}
	r.composite(pixmap, paint.Color)
	return nil
}

// begin clears accumulated coverage and sizes the rasterizer to pixmap.
func (r *SoftwareRenderer) begin(pixmap *Pixmap) *vector.Rasterizer {
	r.rasterizer.Reset(pixmap.Width(), pixmap.Height())
	r.rasterizer.DrawOp = draw.Over
	return r.rasterizer
}

// composite draws col through the accumulated coverage mask.
func (r *SoftwareRenderer) composite(pixmap *Pixmap, col RGBA) {
	if col.A <= 0 {
		return
	}
	dst := pixmap.rgba()
	r.rasterizer.Draw(dst, dst.Rect, image.NewUniform(col.premultiplied()), image.Point{})
}

func f32(p Point) (float32, float32) {
	return float32(p.X), float32(p.Y)
}
