package appicon

import (
	"errors"
	"fmt"

	"github.com/taskapp/appicon/canvas"
)

// OutputPath is where the icon is written, relative to the working directory.
const OutputPath = "assets/images/app_icon.png"

// Brand returns the app's primary color, #4A6CF7.
func Brand() canvas.RGBA {
	return canvas.RGB8(0x4A, 0x6C, 0xF7)
}

// ErrInvalidDesign is wrapped by Design.Validate failures.
var ErrInvalidDesign = errors.New("appicon: invalid design")

// Ratio is a position expressed as fractions of the canvas size.
type Ratio struct {
	X, Y float64
}

// Design describes the icon. All lengths are fractions of Size except
// CheckWidth, which is in pixels.
type Design struct {
	// Size is the edge length of the square canvas in pixels.
	Size int

	// Background fills the whole canvas.
	Background canvas.RGBA

	// BadgeFill is the color of the circular badge.
	BadgeFill canvas.RGBA

	// BadgeRatio is the badge radius as a fraction of Size.
	BadgeRatio float64

	// CheckColor is the stroke color of the checkmark.
	CheckColor canvas.RGBA

	// CheckWidth is the checkmark stroke width in pixels.
	CheckWidth float64

	// CheckPoints are the start, bend and end of the checkmark.
	CheckPoints [3]Ratio
}

// DefaultDesign returns the app icon: 1024px, brand background, white badge
// of radius 0.35, brand checkmark 80px wide.
func DefaultDesign() Design {
	return Design{
		Size:       1024,
		Background: Brand(),
		BadgeFill:  canvas.White,
		BadgeRatio: 0.35,
		CheckColor: Brand(),
		CheckWidth: 80,
		CheckPoints: [3]Ratio{
			{X: 0.30, Y: 0.50},
			{X: 0.45, Y: 0.65},
			{X: 0.70, Y: 0.35},
		},
	}
}

// Validate reports whether d can be rendered.
func (d Design) Validate() error {
	if d.Size <= 0 {
		return fmt.Errorf("%w: size %d must be positive", ErrInvalidDesign, d.Size)
	}
	if d.BadgeRatio <= 0 || d.BadgeRatio > 0.5 {
		return fmt.Errorf("%w: badge ratio %v outside (0, 0.5]", ErrInvalidDesign, d.BadgeRatio)
	}
	if d.CheckWidth <= 0 {
		return fmt.Errorf("%w: check width %v must be positive", ErrInvalidDesign, d.CheckWidth)
	}
	for i, p := range d.CheckPoints {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			return fmt.Errorf("%w: check point %d (%v, %v) outside the canvas", ErrInvalidDesign, i, p.X, p.Y)
		}
	}
	return nil
}

// Geometry is a Design resolved to pixel coordinates.
type Geometry struct {
	Center canvas.Point
	Radius float64
	Check  [3]canvas.Point
}

// Geometry resolves the design's fractions to whole pixels, truncating
// toward zero, and places every point on the center of its pixel. The badge
// radius grows by half a pixel so pixels Center±r on both axes are covered
// entirely.
func (d Design) Geometry() Geometry {
	half := pixelCenter(d.Size / 2)
	g := Geometry{
		Center: canvas.Pt(half, half),
		Radius: float64(d.scale(d.BadgeRatio)) + 0.5,
	}
	for i, p := range d.CheckPoints {
		g.Check[i] = canvas.Pt(pixelCenter(d.scale(p.X)), pixelCenter(d.scale(p.Y)))
	}
	return g
}

func pixelCenter(i int) float64 {
	return float64(i) + 0.5
}

func (d Design) scale(f float64) int {
	return int(float64(d.Size) * f)
}
