package game

import "fmt"

// Vector2 is a board coordinate: X is the row and Y the column. It is also
// used for board dimensions, in which case X is the row count.
type Vector2 struct {
	X int
	Y int
}

func NewVector2(x, y int) Vector2 {
	return Vector2{X: x, Y: y}
}

// In reports whether v is a valid position on a board of the given size.
func (v Vector2) In(size Vector2) bool {
	return v.X >= 0 && v.X < size.X && v.Y >= 0 && v.Y < size.Y
}

// Index returns the row-major offset of v on a board with cols columns.
func (v Vector2) Index(cols int) int {
	return v.X*cols + v.Y
}

// Area is the number of cells on a board of size v.
func (v Vector2) Area() int {
	return v.X * v.Y
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Scale(k int) Vector2 {
	return Vector2{X: v.X * k, Y: v.Y * k}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
