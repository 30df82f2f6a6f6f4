// Package room models the escape room itself: the first-person views
// and the rotation rules between them, and every interactive object in
// the room (chest, door, light switch, keypad and the keypad's
// arithmetic test).
package room

import (
	"image"

	"kittyescape/pkg/engine/geom"
)

// View enumerates the first-person faces of the room. The first four
// values match geom.Quadrant, which is what makes the generic edge
// rotation work: clicking the left edge of the default view turns to
// View(QuadrantLeft).
type View int

const (
	ViewLeftWall View = iota
	ViewCeiling
	ViewRightWall
	ViewFloor
	ViewFrontWall
	ViewBackWall
	ViewDefault
	ViewLeftWindow
	ViewFrontKeypad
)

// String returns a human-friendly name for the view.
func (v View) String() string {
	switch v {
	case ViewLeftWall:
		return "LeftWall"
	case ViewCeiling:
		return "Ceiling"
	case ViewRightWall:
		return "RightWall"
	case ViewFloor:
		return "Floor"
	case ViewFrontWall:
		return "FrontWall"
	case ViewBackWall:
		return "BackWall"
	case ViewDefault:
		return "Default"
	case ViewLeftWindow:
		return "LeftWindow"
	case ViewFrontKeypad:
		return "FrontKeypad"
	default:
		return "Unknown"
	}
}

// Screen geometry. The art is authored against this fixed logical
// size; the renderer scales the whole surface to the window.
var (
	ScreenRect = image.Rect(0, 0, 800, 600)

	// BackWallRect is the back wall outline in the default view.
	BackWallRect = image.Rect(
		ScreenRect.Dx()/4, ScreenRect.Dy()/4,
		3*ScreenRect.Dx()/4, 3*ScreenRect.Dy()/4,
	)

	// DoorRect is the hidden door on the front wall.
	DoorRect = image.Rect(
		2*ScreenRect.Dx()/5, ScreenRect.Dy()/4,
		3*ScreenRect.Dx()/5, ScreenRect.Dy(),
	)
)

// rotations maps (current view, clicked quadrant) to the next view.
// Quadrants absent from a view's row fall back to the quadrant's own
// value as a view index; an empty row means every edge click lands on
// a cardinal wall.
var rotations = map[View]map[geom.Quadrant]View{
	ViewLeftWall: {
		geom.QuadrantLeft:  ViewFrontWall,
		geom.QuadrantRight: ViewBackWall,
	},
	ViewCeiling: {
		geom.QuadrantTop:    ViewFrontWall,
		geom.QuadrantBottom: ViewBackWall,
	},
	ViewRightWall: {
		geom.QuadrantLeft:  ViewBackWall,
		geom.QuadrantRight: ViewFrontWall,
	},
	ViewFloor: {
		geom.QuadrantTop:    ViewBackWall,
		geom.QuadrantBottom: ViewFrontWall,
	},
	ViewFrontWall: {
		geom.QuadrantLeft:   ViewRightWall,
		geom.QuadrantTop:    ViewCeiling,
		geom.QuadrantRight:  ViewLeftWall,
		geom.QuadrantBottom: ViewFloor,
	},
	ViewBackWall: {},
	ViewDefault:  {},
	ViewLeftWindow: {
		geom.QuadrantLeft:   ViewLeftWall,
		geom.QuadrantTop:    ViewLeftWall,
		geom.QuadrantRight:  ViewLeftWall,
		geom.QuadrantBottom: ViewLeftWall,
	},
	ViewFrontKeypad: {
		geom.QuadrantLeft:   ViewFrontWall,
		geom.QuadrantTop:    ViewFrontWall,
		geom.QuadrantRight:  ViewFrontWall,
		geom.QuadrantBottom: ViewFrontWall,
	},
}

// Rotate returns the view reached by an edge click in quadrant q while
// looking at v.
func Rotate(v View, q geom.Quadrant) View {
	if next, ok := rotations[v][q]; ok {
		return next
	}
	return View(q)
}
