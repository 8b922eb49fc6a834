package csr

import "math"

// Rect is an axis-aligned rectangle over the planar embedding ("block"
// in spec terminology).
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether p lies within r, inclusive of the boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Empty reports whether r has negative extent on either axis. A
// zero-extent rectangle (a single point or a line) is not empty.
func (r Rect) Empty() bool {
	return r.MaxX < r.MinX || r.MaxY < r.MinY
}

// Width returns the rectangle's horizontal extent.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the rectangle's vertical extent.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// BoundPoints returns the minimum axis-aligned rectangle enclosing pts.
// Returns a degenerate empty Rect for an empty input.
func BoundPoints(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{MinX: 1, MaxX: -1}
	}
	r := Rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, p := range pts {
		r.MinX = math.Min(r.MinX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
	return r
}

// QuarterSplit divides r into up to 4 sub-rectangles by bisecting both
// axes, used by the oracle's "simple" split strategy.
func (r Rect) QuarterSplit() [4]Rect {
	midX := (r.MinX + r.MaxX) / 2
	midY := (r.MinY + r.MaxY) / 2
	return [4]Rect{
		{MinX: r.MinX, MinY: r.MinY, MaxX: midX, MaxY: midY},
		{MinX: midX, MinY: r.MinY, MaxX: r.MaxX, MaxY: midY},
		{MinX: r.MinX, MinY: midY, MaxX: midX, MaxY: r.MaxY},
		{MinX: midX, MinY: midY, MaxX: r.MaxX, MaxY: r.MaxY},
	}
}

// BisectLongAxis splits r in half along its longer axis, used by the
// oracle's "minimal" split strategy.
func (r Rect) BisectLongAxis() (Rect, Rect) {
	if r.Width() >= r.Height() {
		midX := (r.MinX + r.MaxX) / 2
		return Rect{MinX: r.MinX, MinY: r.MinY, MaxX: midX, MaxY: r.MaxY},
			Rect{MinX: midX, MinY: r.MinY, MaxX: r.MaxX, MaxY: r.MaxY}
	}
	midY := (r.MinY + r.MaxY) / 2
	return Rect{MinX: r.MinX, MinY: r.MinY, MaxX: r.MaxX, MaxY: midY},
		Rect{MinX: r.MinX, MinY: midY, MaxX: r.MaxX, MaxY: r.MaxY}
}

// DiameterSum returns Width()+Height(), a crude diameter measure. The
// minimal split strategy does not use it; it compares radius sums.
func (r Rect) DiameterSum() float64 {
	return r.Width() + r.Height()
}
