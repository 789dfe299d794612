package verlet

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func approxVec(a, b Vec2, tol float64) bool {
	return approx(a.X, b.X, tol) && approx(a.Y, b.Y, tol)
}

// --- ClosestPoint ---

func TestClosestPoint(t *testing.T) {
	p := Vec2{0, 0}
	tests := []struct {
		name       string
		candidates []Vec2
		want       Vec2
	}{
		{"single", []Vec2{{5, 5}}, Vec2{5, 5}},
		{"first nearer", []Vec2{{1, 0}, {3, 0}}, Vec2{1, 0}},
		{"second nearer", []Vec2{{3, 0}, {0, -2}}, Vec2{0, -2}},
		{"tie goes to later", []Vec2{{2, 0}, {-2, 0}}, Vec2{-2, 0}},
		{"three candidates", []Vec2{{4, 0}, {0, 1}, {2, 2}}, Vec2{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClosestPoint(p, tt.candidates)
			if err != nil {
				t.Fatalf("ClosestPoint: %v", err)
			}
			if got != tt.want {
				t.Errorf("ClosestPoint(%v, %v) = %v, want %v", p, tt.candidates, got, tt.want)
			}
		})
	}
}

func TestClosestPointEmpty(t *testing.T) {
	_, err := ClosestPoint(Vec2{}, nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

// --- LineLineIntersection ---

func TestLineLineIntersectionParallel(t *testing.T) {
	tests := []struct {
		name   string
		v1, v2 Vec2
	}{
		{"same direction", Vec2{1, 0}, Vec2{2, 0}},
		{"opposite direction", Vec2{1, 1}, Vec2{-3, -3}},
		{"zero direction", Vec2{0, 0}, Vec2{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LineLineIntersection(Vec2{0, 0}, tt.v1, Vec2{0, 5}, tt.v2)
			if !errors.Is(err, ErrDegenerateGeometry) {
				t.Errorf("err = %v, want ErrDegenerateGeometry", err)
			}
		})
	}
}

func TestLineLineIntersectionLiesOnBothLines(t *testing.T) {
	tests := []struct {
		name           string
		p1, v1, p2, v2 Vec2
	}{
		{"axes", Vec2{-3, 0}, Vec2{1, 0}, Vec2{0, 7}, Vec2{0, 1}},
		{"diagonals", Vec2{0, 0}, Vec2{1, 1}, Vec2{10, 0}, Vec2{-1, 1}},
		{"skewed", Vec2{2, -1}, Vec2{3, 0.5}, Vec2{-4, 6}, Vec2{0.25, -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LineLineIntersection(tt.p1, tt.v1, tt.p2, tt.v2)
			if err != nil {
				t.Fatalf("LineLineIntersection: %v", err)
			}
			// A point q lies on the line (p, v) when (q - p) is parallel to v.
			if c := got.Sub(tt.p1).Cross(tt.v1); !approx(c, 0, 1e-9) {
				t.Errorf("%v is off line 1 (cross = %v)", got, c)
			}
			if c := got.Sub(tt.p2).Cross(tt.v2); !approx(c, 0, 1e-9) {
				t.Errorf("%v is off line 2 (cross = %v)", got, c)
			}
		})
	}
}

func TestLineLineIntersectionKnownPoint(t *testing.T) {
	got, err := LineLineIntersection(Vec2{0, 0}, Vec2{1, 1}, Vec2{10, 0}, Vec2{-1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if !approxVec(got, Vec2{5, 5}, eps) {
		t.Errorf("got %v, want (5, 5)", got)
	}
}

// --- LineCircleIntersection ---

func TestLineCircleIntersectionCount(t *testing.T) {
	center := Vec2{1, 2}
	radius := 3.0
	tests := []struct {
		name  string
		point Vec2
		dir   Vec2
		want  int
	}{
		{"miss", Vec2{10, 10}, Vec2{1, 0}, 0},
		{"tangent", Vec2{-2, 5}, Vec2{1, 0}, 1},
		{"through center", Vec2{-5, 2}, Vec2{1, 0}, 2},
		{"from inside", Vec2{1, 2}, Vec2{0.3, -0.7}, 2},
		{"short direction", Vec2{1, -4}, Vec2{0, 0.01}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LineCircleIntersection(center, radius, tt.point, tt.dir)
			if err != nil {
				t.Fatalf("LineCircleIntersection: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("len = %d, want %d (%v)", len(got), tt.want, got)
			}
			for _, p := range got {
				if d := p.Dist(center); !approx(d, radius, 1e-9) {
					t.Errorf("point %v at distance %v, want %v", p, d, radius)
				}
			}
		})
	}
}

func TestLineCircleIntersectionZeroDirection(t *testing.T) {
	_, err := LineCircleIntersection(Vec2{}, 1, Vec2{2, 0}, Vec2{})
	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("err = %v, want ErrDegenerateGeometry", err)
	}
}

// --- RingLayout ---

func TestRingLayout(t *testing.T) {
	center := Vec2{260, 260}
	pts := RingLayout(center, 200, 30)
	if len(pts) != 30 {
		t.Fatalf("len = %d, want 30", len(pts))
	}
	if !approxVec(pts[0], Vec2{460, 260}, eps) {
		t.Errorf("first point = %v, want (460, 260)", pts[0])
	}
	for i, p := range pts {
		if d := p.Dist(center); !approx(d, 200, 1e-9) {
			t.Errorf("point %d at distance %v, want 200", i, d)
		}
	}
	if RingLayout(center, 1, 0) != nil {
		t.Error("RingLayout with n=0 should be nil")
	}
}
