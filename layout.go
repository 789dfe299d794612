package verlet

import "math"

// RingLayout returns n points evenly spaced on the circle of the given
// center and radius, starting at angle 0 and going counter-clockwise.
func RingLayout(center Vec2, radius float64, n int) []Vec2 {
	if n <= 0 {
		return nil
	}
	points := make([]Vec2, n)
	for i := range points {
		theta := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Vec2{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		}
	}
	return points
}
