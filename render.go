package appicon

import (
	"fmt"
	"io"

	"github.com/taskapp/appicon/canvas"
)

// Render draws the icon onto a new canvas: background, badge, then the two
// checkmark strokes.
func (d Design) Render() (*canvas.Context, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	g := d.Geometry()
	log := Logger()

	dc := canvas.NewContext(d.Size, d.Size)
	dc.ClearWithColor(d.Background)
	log.Debug("appicon: canvas allocated", "size", d.Size)

	dc.SetColor(d.BadgeFill)
	dc.DrawCircle(g.Center.X, g.Center.Y, g.Radius)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("appicon: draw badge: %w", err)
	}
	log.Debug("appicon: badge drawn", "center", g.Center, "radius", g.Radius)

	dc.SetColor(d.CheckColor)
	dc.SetStroke(canvas.DefaultStroke().WithWidth(d.CheckWidth))
	for i := 0; i < len(g.Check)-1; i++ {
		a, b := g.Check[i], g.Check[i+1]
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("appicon: draw checkmark segment %d: %w", i, err)
		}
	}
	log.Debug("appicon: checkmark drawn", "points", g.Check, "width", d.CheckWidth)

	return dc, nil
}

// WritePNG renders the icon and encodes it to w.
func (d Design) WritePNG(w io.Writer) error {
	dc, err := d.Render()
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("appicon: encode: %w", err)
	}
	return nil
}

// Save renders the icon and writes it to path, creating or replacing the
// file. The parent directory must exist; otherwise the returned error wraps
// the underlying *fs.PathError and no file is created.
func (d Design) Save(path string) error {
	dc, err := d.Render()
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("appicon: save %s: %w", path, err)
	}
	Logger().Info("appicon: icon saved", "path", path, "width", dc.Width(), "height", dc.Height())
	return nil
}
