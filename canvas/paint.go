package canvas

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// String returns the cap name.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	}
	return "unknown"
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the join name.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	}
	return "unknown"
}

// Paint represents the styling information for drawing.
type Paint struct {
	// Color is the solid color used for both fills and strokes.
	Color RGBA

	// Stroke is the style applied by Stroke and StrokePreserve.
	Stroke Stroke
}

// NewPaint creates a new Paint with default values: opaque black and a
// 1-pixel butt-capped, miter-joined stroke.
func NewPaint() *Paint {
	return &Paint{
		Color:  Black,
		Stroke: DefaultStroke(),
	}
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	c := *p
	return &c
}
