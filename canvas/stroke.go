package canvas

import "math"

// Stroke defines the style for stroking paths.
type Stroke struct {
	// Width is the line width in pixels. Default: 1.0
	Width float64

	// Cap is the shape of line endpoints. Default: LineCapButt
	Cap LineCap

	// Join is the shape of line joins. Default: LineJoinMiter
	Join LineJoin

	// MiterLimit is the limit for miter joins before they become bevels.
	// Default: 4.0 (matches SVG)
	MiterLimit float64
}

// DefaultStroke returns a solid 1-pixel line with butt caps and miter joins.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the Stroke with the given line cap style.
func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the Stroke with the given line join style.
func (s Stroke) WithJoin(join LineJoin) Stroke {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the Stroke with the given miter limit.
// A value of 1.0 effectively disables miter joins.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

// Expand converts flattened subpaths into the polygons covering the stroke.
//
// Every segment becomes a quad, every join and cap its own small polygon.
// All polygons share the same winding direction, so filling them together
// with the non-zero rule yields the union without cancellation where they
// overlap.
func (s Stroke) Expand(subpaths []Subpath) [][]Point {
	hw := s.Width / 2
	if hw <= 0 {
		return nil
	}

	var polys [][]Point
	add := func(poly []Point) {
		if len(poly) >= 3 {
			polys = append(polys, orient(poly))
		}
	}

	for _, sp := range subpaths {
		pts := dedupe(sp.Points)
		closed := sp.Closed && len(pts) > 2

		if len(pts) == 1 {
			add(s.dot(pts[0], hw))
			continue
		}

		n := len(pts) - 1
		if closed {
			n = len(pts)
		}
		for i := 0; i < n; i++ {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if !closed && s.Cap == LineCapSquare {
				d := b.Sub(a).Normalize().Mul(hw)
				if i == 0 {
					a = a.Sub(d)
				}
				if i == n-1 {
					b = b.Add(d)
				}
			}
			add(segmentQuad(a, b, hw))
		}

		first, last := 1, len(pts)-1
		if closed {
			first, last = 0, len(pts)
		}
		for i := first; i < last; i++ {
			prev := pts[(i-1+len(pts))%len(pts)]
			v := pts[i]
			next := pts[(i+1)%len(pts)]
			add(s.join(prev, v, next, hw))
		}

		if !closed && s.Cap == LineCapRound {
			add(circlePolygon(pts[0], hw))
			add(circlePolygon(pts[len(pts)-1], hw))
		}
	}
	return polys
}

// dot covers a zero-length subpath, which only round and square caps draw.
func (s Stroke) dot(p Point, hw float64) []Point {
	switch s.Cap {
	case LineCapRound:
		return circlePolygon(p, hw)
	case LineCapSquare:
		return []Point{
			{p.X - hw, p.Y - hw}, {p.X + hw, p.Y - hw},
			{p.X + hw, p.Y + hw}, {p.X - hw, p.Y + hw},
		}
	}
	return nil
}

// join returns the polygon filling the outer wedge at v between the
// segments prev→v and v→next.
func (s Stroke) join(prev, v, next Point, hw float64) []Point {
	d0 := v.Sub(prev).Normalize()
	d1 := next.Sub(v).Normalize()
	cross := d0.Cross(d1)
	if math.Abs(cross) < 1e-12 && d0.Dot(d1) > 0 {
		return nil
	}

	if s.Join == LineJoinRound {
		return circlePolygon(v, hw)
	}

	// The outer side is opposite the turn.
	sign := -1.0
	if cross < 0 {
		sign = 1.0
	}
	o0 := d0.Perp().Mul(sign * hw)
	o1 := d1.Perp().Mul(sign * hw)

	if s.Join == LineJoinMiter {
		cosA := o0.Dot(o1) / (hw * hw)
		half := math.Sqrt((1 + cosA) / 2)
		if half > 1e-12 && 1/half <= s.MiterLimit {
			tip := v.Add(o0.Add(o1).Normalize().Mul(hw / half))
			return []Point{v, v.Add(o0), tip, v.Add(o1)}
		}
	}
	return []Point{v, v.Add(o0), v.Add(o1)}
}

func segmentQuad(a, b Point, hw float64) []Point {
	n := b.Sub(a).Normalize().Perp().Mul(hw)
	return []Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
}

// circlePolygon approximates a circle with enough vertices to stay within
// Tolerance of the true outline.
func circlePolygon(c Point, r float64) []Point {
	n := 8
	if r > Tolerance {
		step := 2 * math.Acos(1-Tolerance/r)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}
	poly := make([]Point, n)
	for i := range poly {
		a := 2 * math.Pi * float64(i) / float64(n)
		poly[i] = Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return poly
}

// orient returns poly with non-negative signed area, reversing it in place
// when needed.
func orient(poly []Point) []Point {
	if signedArea(poly) < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	return poly
}

func signedArea(poly []Point) float64 {
	var sum float64
	for i := range poly {
		sum += poly[i].Cross(poly[(i+1)%len(poly)])
	}
	return sum / 2
}

func dedupe(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}
	return out
}
