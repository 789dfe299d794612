package verlet

import (
	"math"
	"testing"
)

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"bottom-left corner", 10, 20, true},
		{"top-right corner", 110, 70, true},
		{"left edge", 10, 40, true},
		{"right edge", 110, 40, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside below", 50, 19, false},
		{"outside above", 50, 71, false},
		{"far outside", 999, 999, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

// --- Rect.Union ---

func TestRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"empty left", Rect{}, Rect{1, 2, 3, 4}, Rect{1, 2, 3, 4}},
		{"empty right", Rect{1, 2, 3, 4}, Rect{}, Rect{1, 2, 3, 4}},
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 2, 1, 1}, Rect{0, 0, 10, 10}},
		{"disjoint", Rect{0, 0, 1, 1}, Rect{5, -5, 1, 1}, Rect{0, -5, 6, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union = %v, want %v", got, tt.want)
			}
		})
	}
}

// --- Vec2 ---

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{-1, 2}
	if got := a.Add(b); got != (Vec2{2, 6}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec2{4, 2}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(0.5); got != (Vec2{1.5, 2}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Neg(); got != (Vec2{-3, -4}) {
		t.Errorf("Neg = %v", got)
	}
	if got := a.Dot(b); got != 5 {
		t.Errorf("Dot = %v, want 5", got)
	}
	if got := a.Cross(b); got != 10 {
		t.Errorf("Cross = %v, want 10", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}
	if got := a.LenSq(); got != 25 {
		t.Errorf("LenSq = %v, want 25", got)
	}
	if got := a.Dist(Vec2{0, 0}); got != 5 {
		t.Errorf("Dist = %v, want 5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	if got := (Vec2{0, -7}).Normalize(); got != (Vec2{0, -1}) {
		t.Errorf("Normalize = %v, want (0, -1)", got)
	}
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
}

func TestVec2Reflect(t *testing.T) {
	tests := []struct {
		name string
		v, n Vec2
		want Vec2
	}{
		{"floor", Vec2{1, -4}, Vec2{0, 1}, Vec2{1, 4}},
		{"wall", Vec2{3, 2}, Vec2{1, 0}, Vec2{-3, 2}},
		{"parallel", Vec2{5, 0}, Vec2{0, 1}, Vec2{5, 0}},
		{"diagonal", Vec2{1, 0}, Vec2{math.Sqrt2 / 2, math.Sqrt2 / 2}, Vec2{0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Reflect(tt.n)
			if !approxVec(got, tt.want, 1e-12) {
				t.Errorf("Reflect = %v, want %v", got, tt.want)
			}
			if !approx(got.Len(), tt.v.Len(), 1e-12) {
				t.Errorf("Reflect changed length %v -> %v", tt.v.Len(), got.Len())
			}
		})
	}
}

func TestVec2Finite(t *testing.T) {
	if !(Vec2{1, -1}).IsFinite() {
		t.Error("(1, -1) should be finite")
	}
	bad := Vec2{math.NaN(), math.Inf(1)}
	if bad.IsFinite() {
		t.Error("(NaN, Inf) should not be finite")
	}
	if got := bad.zeroNonFinite(); got != (Vec2{}) {
		t.Errorf("zeroNonFinite = %v, want zero", got)
	}
	if got := (Vec2{2, math.NaN()}).zeroNonFinite(); got != (Vec2{2, 0}) {
		t.Errorf("zeroNonFinite = %v, want (2, 0)", got)
	}
}

// --- Enums ---

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{ShapeCircle.String(), "Circle"},
		{ShapeCircleBorder.String(), "CircleBorder"},
		{ShapeRectangleBorder.String(), "RectangleBorder"},
		{Shape(0).String(), "Shape(?)"},
		{HandlerCircleCircle.String(), "Circle-Circle"},
		{HandlerCircleCircleBorder.String(), "Circle-CircleBorder"},
		{HandlerCircleRectangleBorder.String(), "Circle-RectangleBorder"},
		{HandlerKind(0).String(), "Handler(?)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
