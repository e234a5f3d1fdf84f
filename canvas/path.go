package canvas

import "math"

// Tolerance is the maximum distance, in pixels, between a curve and the
// polyline that replaces it when a path is flattened for stroking.
const Tolerance = 0.1

// FillTolerance is the flattening tolerance used for fills. Pixels along a
// curve's extreme lose coverage to each chord, so it is much tighter than
// Tolerance to keep those pixels at full coverage.
const FillTolerance = 0.005

// circleK is the cubic Bezier control distance for a quarter circle,
// 4/3 * (sqrt(2) - 1).
const circleK = 0.5522847498307936

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
// Without a current point it behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.HasCurrentPoint() {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	if !p.HasCurrentPoint() {
		p.MoveTo(cx, cy)
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !p.HasCurrentPoint() {
		p.MoveTo(c1x, c1y)
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	if !p.HasCurrentPoint() {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Ellipse adds an ellipse to the path.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	ox := rx * circleK
	oy := ry * circleK

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Subpath is a flattened run of points. Closed reports whether the run
// ended with a Close element; the closing point is not repeated.
type Subpath struct {
	Points []Point
	Closed bool
}

// Flatten converts the path into polylines, replacing curves with line
// segments no further than Tolerance from the curve.
func (p *Path) Flatten() []Subpath {
	return p.FlattenTolerance(Tolerance)
}

// FlattenTolerance is like Flatten with a caller-chosen tolerance in pixels.
func (p *Path) FlattenTolerance(tolerance float64) []Subpath {
	var (
		out []Subpath
		cur Subpath
		pos Point
	)
	flush := func() {
		if len(cur.Points) > 0 {
			out = append(out, cur)
		}
		cur = Subpath{}
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			pos = e.Point
			cur.Points = append(cur.Points, pos)
		case LineTo:
			cur.Points = resume(cur.Points, pos)
			pos = e.Point
			cur.Points = append(cur.Points, pos)
		case QuadTo:
			cur.Points = resume(cur.Points, pos)
			cur.Points = flattenQuadratic(cur.Points, pos, e.Control, e.Point, tolerance)
			pos = e.Point
		case CubicTo:
			cur.Points = resume(cur.Points, pos)
			cur.Points = flattenCubic(cur.Points, pos, e.Control1, e.Control2, e.Point, tolerance)
			pos = e.Point
		case Close:
			cur.Closed = true
			if len(cur.Points) > 1 && cur.Points[len(cur.Points)-1] == cur.Points[0] {
				cur.Points = cur.Points[:len(cur.Points)-1]
			}
			start := Point{}
			if len(cur.Points) > 0 {
				start = cur.Points[0]
			}
			flush()
			pos = start
		}
	}
	flush()
	return out
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// resume starts a new run at pos when drawing continues after a Close.
func resume(points []Point, pos Point) []Point {
	if len(points) == 0 {
		return append(points, pos)
	}
	return points
}

func flattenQuadratic(points []Point, p0, p1, p2 Point, tolerance float64) []Point {
	if distanceToLine(p1, p0, p2) < tolerance {
		return append(points, p2)
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)
	points = flattenQuadratic(points, p0, q0, q2, tolerance)
	return flattenQuadratic(points, q2, q1, p2, tolerance)
}

// flattenCubic subdivides with de Casteljau until both control points lie
// within tolerance of the chord.
func flattenCubic(points []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	dist := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if dist < tolerance {
		return append(points, p3)
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)
	points = flattenCubic(points, p0, q0, r0, s, tolerance)
	return flattenCubic(points, s, r1, q2, p3, tolerance)
}

// distanceToLine returns the distance from p to segment ab.
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen2 := ab.Dot(ab)
	if abLen2 < 1e-20 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / abLen2
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
