package layout

import "math"

// Point is a position in a continuous 2D space, y growing downwards.
type Point struct {
	X, Y float64
}

// RadialPosition places item index of total evenly on a circle. Item 0 sits
// at the top and items proceed clockwise:
//
//	theta = 2*pi*index/total - pi/2
//	x = center.X + radius*cos(theta)
//	y = center.Y + radius*sin(theta)
//
// total must be at least 1; for smaller values the center is returned.
// An index outside [0, total) wraps around the circle.
func RadialPosition(index, total int, center Point, radius float64) Point {
	if total < 1 {
		return center
	}
	theta := 2*math.Pi*float64(index)/float64(total) - math.Pi/2
	return Point{
		X: center.X + radius*math.Cos(theta),
		Y: center.Y + radius*math.Sin(theta),
	}
}

// RadialPositions returns the positions of all total items.
func RadialPositions(total int, center Point, radius float64) []Point {
	if total < 1 {
		return nil
	}
	points := make([]Point, total)
	for i := range points {
		points[i] = RadialPosition(i, total, center, radius)
	}
	return points
}

// Distance returns the euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
