package verlet

import "math"

// ClosestPoint returns the candidate nearest to p by Euclidean distance.
// An earlier candidate wins only when it is strictly nearer, so ties go to
// the later one. It fails with ErrInvalidArgument when candidates is empty.
func ClosestPoint(p Vec2, candidates []Vec2) (Vec2, error) {
	if len(candidates) == 0 {
		return Vec2{}, errorf("closest point: no candidates: %w", ErrInvalidArgument)
	}
	best := candidates[0]
	bestDist := p.Dist(best)
	for _, c := range candidates[1:] {
		if d := p.Dist(c); !(bestDist < d) {
			best, bestDist = c, d
		}
	}
	return best, nil
}

// LineLineIntersection returns the point where the line through p1 with
// direction v1 crosses the line through p2 with direction v2. It fails with
// ErrDegenerateGeometry when the directions are parallel (including when
// either is the zero vector); no attempt is made to pick a point on
// coincident lines.
func LineLineIntersection(p1, v1, p2, v2 Vec2) (Vec2, error) {
	det := v1.Cross(v2)
	if det == 0 {
		return Vec2{}, errorf("line intersection: directions %v and %v are parallel: %w", v1, v2, ErrDegenerateGeometry)
	}
	d := p2.Sub(p1)
	t := d.Cross(v2) / det
	return p1.Add(v1.Scale(t)), nil
}

// LineCircleIntersection returns the points where the line through point
// with direction dir meets the circle of the given center and radius: none
// when the line misses, one when it is tangent, two otherwise. The order of
// two points is unspecified. A zero direction does not describe a line and
// fails with ErrDegenerateGeometry.
func LineCircleIntersection(center Vec2, radius float64, point, dir Vec2) ([]Vec2, error) {
	a := dir.LenSq()
	if a == 0 {
		return nil, errorf("circle intersection: zero direction: %w", ErrDegenerateGeometry)
	}
	rel := point.Sub(center)
	b := 2 * dir.Dot(rel)
	c := rel.LenSq() - radius*radius

	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return nil, nil
	case disc == 0:
		t := -b / (2 * a)
		return []Vec2{point.Add(dir.Scale(t))}, nil
	}
	sq := math.Sqrt(disc)
	t1 := (-b + sq) / (2 * a)
	t2 := (-b - sq) / (2 * a)
	return []Vec2{
		point.Add(dir.Scale(t1)),
		point.Add(dir.Scale(t2)),
	}, nil
}
