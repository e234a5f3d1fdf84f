package canvas

import (
	"math"
	"testing"
)

func TestPathCurrentPoint(t *testing.T) {
	p := NewPath()
	if p.HasCurrentPoint() {
		t.Fatal("new path should have no current point")
	}

	p.MoveTo(10, 20)
	p.LineTo(30, 40)
	if got := p.CurrentPoint(); got != Pt(30, 40) {
		t.Errorf("CurrentPoint() = %v, want (30, 40)", got)
	}

	p.Close()
	if got := p.CurrentPoint(); got != Pt(10, 20) {
		t.Errorf("CurrentPoint() after Close = %v, want (10, 20)", got)
	}

	p.Clear()
	if p.HasCurrentPoint() {
		t.Error("cleared path should have no current point")
	}
}

func TestPathLineToWithoutMoveTo(t *testing.T) {
	p := NewPath()
	p.LineTo(5, 5)
	if _, ok := p.Elements()[0].(MoveTo); !ok {
		t.Errorf("first element = %T, want MoveTo", p.Elements()[0])
	}
}

func TestFlattenLines(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.MoveTo(20, 20)
	p.LineTo(30, 20)

	subs := p.Flatten()
	if len(subs) != 2 {
		t.Fatalf("got %d subpaths, want 2", len(subs))
	}
	if len(subs[0].Points) != 3 || subs[0].Closed {
		t.Errorf("first subpath = %+v, want 3 open points", subs[0])
	}
	if len(subs[1].Points) != 2 {
		t.Errorf("second subpath has %d points, want 2", len(subs[1].Points))
	}
}

func TestFlattenClosedDropsRepeatedStart(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 10)

	subs := p.Flatten()
	if len(subs) != 1 {
		t.Fatalf("got %d subpaths, want 1", len(subs))
	}
	if !subs[0].Closed {
		t.Error("rectangle subpath should be closed")
	}
	if len(subs[0].Points) != 4 {
		t.Errorf("got %d points, want 4", len(subs[0].Points))
	}
}

func TestFlattenResumesAfterClose(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.Close()
	p.LineTo(0, 10)

	subs := p.Flatten()
	if len(subs) != 2 {
		t.Fatalf("got %d subpaths, want 2", len(subs))
	}
	if got := subs[1].Points; len(got) != 2 || got[0] != Pt(0, 0) || got[1] != Pt(0, 10) {
		t.Errorf("resumed subpath = %v, want [(0,0) (0,10)]", got)
	}
}

func TestFlattenCircleWithinTolerance(t *testing.T) {
	const r = 100.0
	p := NewPath()
	p.Circle(0, 0, r)

	subs := p.Flatten()
	if len(subs) != 1 {
		t.Fatalf("got %d subpaths, want 1", len(subs))
	}
	pts := subs[0].Points
	if len(pts) < 16 {
		t.Errorf("circle flattened to only %d points", len(pts))
	}
	for _, pt := range pts {
		// Bezier circles overshoot by at most 0.03% of r.
		if d := math.Abs(pt.Length() - r); d > 0.03 {
			t.Fatalf("point %v is %.4f from the circle", pt, d)
		}
	}
}

func TestFlattenToleranceFiner(t *testing.T) {
	const r = 100.0
	p := NewPath()
	p.Circle(0, 0, r)

	coarse := p.Flatten()[0].Points
	fine := p.FlattenTolerance(FillTolerance)[0].Points
	if len(fine) <= len(coarse) {
		t.Fatalf("fine flattening has %d points, coarse %d", len(fine), len(coarse))
	}
	// Chord midpoints stay within the tolerance of the circle.
	for i := range fine {
		mid := fine[i].Lerp(fine[(i+1)%len(fine)], 0.5)
		if d := r - mid.Length(); d > FillTolerance+0.03 {
			t.Fatalf("chord %d midpoint is %.4f inside the circle", i, d)
		}
	}
}

func TestClone(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	c := p.Clone()
	p.LineTo(3, 4)
	if len(c.Elements()) != 1 {
		t.Errorf("clone shares elements with original: %d elements", len(c.Elements()))
	}
}
