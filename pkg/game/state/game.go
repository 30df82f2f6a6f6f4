// Package state holds the scenes of the game: the title card, the main
// escape-room scene and the scripted ending.
package state

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"kittyescape/pkg/engine/event"
	"kittyescape/pkg/engine/geom"
	"kittyescape/pkg/engine/gfx"
	"kittyescape/pkg/engine/scene"
	"kittyescape/pkg/game/room"
)

// Game is the main escape-room scene. It owns the current view, every
// object in the room and the keypad's arithmetic test, and routes
// events through an ordered handler chain. The chain order matters:
// text entry runs before the generic quit handler so typed letters
// reach the puzzles instead of quitting the game.
type Game struct {
	scene.Base

	canvas     gfx.Canvas
	clock      event.Clock
	view       room.View
	images     *room.Images
	keypadTest *room.KeyPadTest
	wallColor  color.Color
}

// NewGame loads the room and presents the default view.
func NewGame(canvas gfx.Canvas, window gfx.Window, assets gfx.Assets,
	clock event.Clock, rng *rand.Rand) (*Game, error) {

	images, err := room.NewImages(canvas, assets)
	if err != nil {
		return nil, err
	}

	game := &Game{
		canvas:    canvas,
		clock:     clock,
		view:      room.ViewDefault,
		images:    images,
		wallColor: room.ColorGrey,
	}
	game.keypadTest = room.NewKeyPadTest(images.KeyPad, images.Door, rng, clock)
	game.Init(window, game.Draw,
		game.handleChestCombo,
		game.handleClick,
		game.HandleFullscreen,
		game.handleKeypadInput,
		game.handleKeypadTest,
		game.HandleQuit,
		game.handleReset,
	)
	return game, nil
}

// View returns the view the player is facing.
func (g *Game) View() room.View {
	return g.view
}

// Draw renders the current view from scratch.
func (g *Game) Draw() {
	g.canvas.Fill(g.wallColor)
	if g.images.KeyPad.Opened() && g.view != room.ViewFrontKeypad && g.keypadTest.Active() {
		// Navigating away from the opened keypad abandons the test.
		g.keypadTest.Stop()
	}
	switch g.view {
	case room.ViewDefault:
		g.drawDefault()
	case room.ViewBackWall:
		g.images.Math.Draw()
	case room.ViewFrontWall:
		g.images.Door.Draw()
	case room.ViewFrontKeypad:
		g.canvas.Fill(room.ColorDarkGrey2)
		g.images.KeyPad.Draw()
	case room.ViewFloor:
		g.images.Chest.Draw()
	case room.ViewCeiling:
		if !g.images.LightSwitch.On {
			g.images.Zodiac.Draw()
		}
	case room.ViewLeftWall:
		g.images.Window.Draw()
	case room.ViewLeftWindow:
		g.images.MaxiWindow.Draw()
	case room.ViewRightWall:
		g.images.LightSwitch.Draw()
	default:
		panic(fmt.Sprintf("no draw routine for view %v", g.view))
	}
}

// drawDefault paints the room in perspective: the back wall outline,
// the four receding corner lines and the miniatures of everything
// visible from the room's center.
func (g *Game) drawDefault() {
	g.canvas.StrokeRect(room.BackWallRect, 5, room.ColorBlack)

	screen, wall := room.ScreenRect, room.BackWallRect
	corners := [][2]image.Point{
		{screen.Min, wall.Min},
		{image.Pt(screen.Min.X, screen.Max.Y), image.Pt(wall.Min.X, wall.Max.Y)},
		{screen.Max, wall.Max},
		{image.Pt(screen.Max.X, screen.Min.Y), image.Pt(wall.Max.X, wall.Min.Y)},
	}
	for _, line := range corners {
		g.canvas.StrokeLine(line[0], line[1], 5, room.ColorBlack)
	}

	if !g.images.LightSwitch.On {
		g.images.MiniZodiac.Draw()
	}
	g.images.MiniWindow.Draw()
	g.images.MiniMath.Draw()
	g.images.MiniChest.Draw()
	g.images.MiniLightSwitch.Draw()
}

// handleClick routes left clicks to the current view's click routine,
// falling back to the generic edge rotation.
func (g *Game) handleClick(ev event.Event) bool {
	if ev.Type != event.TypeMouseDown || ev.Button != event.MouseButtonLeft {
		return false
	}

	var consumed bool
	switch g.view {
	case room.ViewDefault:
		consumed = g.handleDefaultClick(ev.Pos)
	case room.ViewLeftWall:
		consumed = g.handleLeftWallClick(ev.Pos)
	case room.ViewFrontWall:
		consumed = g.handleFrontWallClick(ev.Pos)
	case room.ViewRightWall:
		consumed = g.handleRightWallClick(ev.Pos)
	}
	if !consumed {
		consumed = g.handleGenericClick(ev.Pos)
	}
	if consumed {
		g.Draw()
	}
	return consumed
}

func (g *Game) handleDefaultClick(pos image.Point) bool {
	switch {
	case geom.AtEdge(pos, room.ScreenRect):
		// In the default view the screen edges border the hidden
		// front wall behind the player.
		g.view = room.ViewFrontWall
	case g.images.MiniChest.Contains(pos):
		// The chest overlaps the back wall; clicking the overlap goes
		// to the floor, not the wall.
		g.view = room.ViewFloor
	case pos.In(room.BackWallRect):
		g.view = room.ViewBackWall
	default:
		// Front and back walls are ruled out, so the quadrant names
		// one of the other four faces directly.
		g.view = room.View(geom.QuadrantOf(pos, room.ScreenRect))
	}
	return true
}

func (g *Game) handleGenericClick(pos image.Point) bool {
	if !geom.AtEdge(pos, room.ScreenRect) {
		return false
	}
	g.view = room.Rotate(g.view, geom.QuadrantOf(pos, room.ScreenRect))
	return true
}

func (g *Game) handleLeftWallClick(pos image.Point) bool {
	if !g.images.Window.Contains(pos) {
		return false
	}
	g.view = room.ViewLeftWindow
	return true
}

func (g *Game) handleFrontWallClick(pos image.Point) bool {
	if !g.images.Door.Contains(pos) {
		return false
	}
	if g.images.Door.Revealed {
		g.view = room.ViewFrontKeypad
	} else {
		g.images.Door.Revealed = true
	}
	return true
}

func (g *Game) handleRightWallClick(pos image.Point) bool {
	if !g.images.LightSwitch.Contains(pos) {
		return false
	}
	g.toggleLightSwitch()
	return true
}

func (g *Game) toggleLightSwitch() {
	on := !g.images.LightSwitch.On
	g.images.LightSwitch.On = on
	g.images.MiniLightSwitch.On = on
	if on {
		g.wallColor = room.ColorGrey
	} else {
		g.wallColor = room.ColorDarkGrey2
	}
	g.images.Door.LightOn = on
}

// handleReset snaps back to the default view on escape.
func (g *Game) handleReset(ev event.Event) bool {
	if ev.Type != event.TypeKeyDown || ev.Key != event.KeyEscape {
		return false
	}
	if g.view != room.ViewDefault {
		g.view = room.ViewDefault
		g.Draw()
	}
	return true
}

// handleChestCombo feeds keyboard input to the chest while the player
// is looking at the floor.
func (g *Game) handleChestCombo(ev event.Event) bool {
	if g.view != room.ViewFloor {
		return false
	}
	response := g.images.Chest.Send(ev)
	if response == event.NotConsumed {
		return false
	}
	if response == event.ConsumedRedraw {
		if g.images.Chest.Opened() {
			g.Draw()
		} else {
			// Only the chest area changed; skip the full repaint.
			g.images.Chest.Draw()
		}
		g.images.MiniChest.SetText(g.images.Chest.Text())
	}
	return true
}

// handleKeypadInput feeds keyboard input to the keypad's code entry
// while the player is looking at it, mirroring the entry to the door.
func (g *Game) handleKeypadInput(ev event.Event) bool {
	if g.view != room.ViewFrontKeypad {
		return false
	}
	response := g.images.KeyPad.Send(ev)
	if response == event.NotConsumed {
		return false
	}
	if response == event.ConsumedRedraw {
		g.images.KeyPad.Draw()
		g.images.Door.SetText(g.images.KeyPad.Text())
	}
	return true
}

// handleKeypadTest runs the arithmetic test once the keypad is open.
// Completing it ends the scene in victory.
func (g *Game) handleKeypadTest(ev event.Event) bool {
	if !g.images.KeyPad.Opened() {
		return false
	}
	consumed := g.keypadTest.Send(ev)
	if consumed {
		g.images.KeyPad.Draw()
	}
	if g.keypadTest.Completed() {
		g.Deactivate()
	}
	return consumed
}

// Ending returns the ending scene for a victorious run, or nil when
// the game was quit. Only valid once the scene has deactivated.
func (g *Game) Ending(window gfx.Window) *Ending {
	if g.Active() {
		panic("game still active")
	}
	if !g.keypadTest.Completed() {
		return nil
	}
	return NewEnding(g.canvas, window, g.wallColor, g.images.KeyPad, g.clock)
}

// Cleanup releases the test timer. Puzzle state is kept so a completed
// run can still hand off to the ending.
func (g *Game) Cleanup() {
	g.keypadTest.Cleanup()
}
