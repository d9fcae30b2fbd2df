package core

import "fmt"

// Point is a (row, column) coordinate, row 0 being the top row and column 0 the left column
type Point struct {
	Row, Col int
}

// NewPoint creates a point at the given row and column
func NewPoint(row, col int) Point {
	return Point{Row: row, Col: col}
}

// Shift returns a copy of the point offset by (dRow, dCol); p is left untouched
func (p Point) Shift(dRow, dCol int) Point {
	return Point{Row: p.Row + dRow, Col: p.Col + dCol}
}

// ShiftBy returns a copy of the point offset by displacement d
func (p Point) ShiftBy(d Point) Point {
	return p.Shift(d.Row, d.Col)
}

// ShiftInPlace offsets the point itself and returns the same instance
func (p *Point) ShiftInPlace(dRow, dCol int) *Point {
	p.Row += dRow
	p.Col += dCol
	return p
}

// ShiftByInPlace offsets the point itself by displacement d and returns the same instance
func (p *Point) ShiftByInPlace(d Point) *Point {
	return p.ShiftInPlace(d.Row, d.Col)
}

// IsZero reports whether both components are zero
func (p Point) IsZero() bool {
	return p.Row == 0 && p.Col == 0
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
