// Package geom provides the screen-space geometry used to classify
// clicks: edge detection and the diagonal quadrant test.
package geom

import "image"

// Quadrant is one of the four triangular regions formed by a
// rectangle's diagonals. The numeric values are load-bearing: they
// double as view indices for the four cardinal walls (see
// pkg/game/room), so the order must stay Left, Top, Right, Bottom.
type Quadrant int

const (
	QuadrantLeft Quadrant = iota
	QuadrantTop
	QuadrantRight
	QuadrantBottom
)

// String returns a human-friendly name for the quadrant.
func (q Quadrant) String() string {
	switch q {
	case QuadrantLeft:
		return "Left"
	case QuadrantTop:
		return "Top"
	case QuadrantRight:
		return "Right"
	case QuadrantBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// EdgeMargin is how close to a border a click must land to count as an
// edge click (a "rotate the view" gesture).
const EdgeMargin = 10

// AtEdge reports whether pos lies within EdgeMargin pixels of any of
// the four borders of rect.
func AtEdge(pos image.Point, rect image.Rectangle) bool {
	return pos.X-rect.Min.X <= EdgeMargin ||
		pos.Y-rect.Min.Y <= EdgeMargin ||
		rect.Max.X-pos.X <= EdgeMargin ||
		rect.Max.Y-pos.Y <= EdgeMargin
}

// QuadrantOf classifies pos within rect by comparing its slopes from
// the rectangle's top-left and bottom-left corners against the slope of
// the diagonals. The four resulting regions are mutually exclusive and
// exhaustive for every point in the rectangle.
func QuadrantOf(pos image.Point, rect image.Rectangle) Quadrant {
	x := float64(pos.X - rect.Min.X)
	y := float64(pos.Y - rect.Min.Y)
	w := float64(rect.Dx())
	h := float64(rect.Dy())

	if x == 0 {
		// The leftmost column would divide by zero below; it is always
		// in the left quadrant.
		return QuadrantLeft
	}

	// Slopes of pos as seen from the top-left and bottom-left corners,
	// and the slope of the diagonals themselves.
	downSlope := y / x
	upSlope := (h - y) / x
	wallSlope := h / w

	aboveDownDiagonal := downSlope < wallSlope
	aboveUpDiagonal := upSlope > wallSlope

	switch {
	case !aboveDownDiagonal && aboveUpDiagonal:
		return QuadrantLeft
	case aboveDownDiagonal && aboveUpDiagonal:
		return QuadrantTop
	case aboveDownDiagonal && !aboveUpDiagonal:
		return QuadrantRight
	default:
		return QuadrantBottom
	}
}
