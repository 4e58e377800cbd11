// pkg/geom/geom.go
package geom

import "math"

// Point — точка или вектор в мировых координатах.
type Point struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns the vector multiplied by k.
func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

// Len returns the vector length.
func (p Point) Len() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Normalized возвращает единичный вектор того же направления.
// Нулевой вектор остаётся нулевым.
func (p Point) Normalized() Point {
	l := p.Len()
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// Dist returns the distance between two points.
func Dist(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Lerp выполняет линейную интерполяцию между a и b.
func Lerp(a, b Point, t float64) Point {
	return Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}
