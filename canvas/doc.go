// Package canvas is a small immediate-mode 2D drawing surface.
//
// A Context owns an RGBA pixmap, a current path and a current paint. Shapes
// are added to the path and then painted with Fill or Stroke, which clear the
// path afterwards:
//
//	dc := canvas.NewContext(256, 256)
//	dc.ClearWithColor(canvas.Hex("#4A6CF7"))
//	dc.SetColor(canvas.White)
//	dc.DrawCircle(128, 128, 90)
//	_ = dc.Fill()
//	_ = dc.SavePNG("out.png")
//
// # Coordinate System
//
// Origin (0,0) is the top-left corner of the top-left pixel; X grows right
// and Y grows down. Pixel (x, y) covers the unit square [x, x+1) × [y, y+1).
//
// # Rendering
//
// Rendering is software-only. Paths are rasterized with analytic
// anti-aliasing by golang.org/x/image/vector using the non-zero winding rule
// and composited source-over. Strokes are expanded into fill polygons first.
package canvas
