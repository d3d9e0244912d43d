package game

// Point is a screen-space coordinate with the origin at the top-left corner.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// SquaredDistance returns the squared euclidean distance between a and b.
func SquaredDistance(a, b Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
