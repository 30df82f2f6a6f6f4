package ebiten

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"kittyescape/pkg/engine/event"
	"kittyescape/pkg/engine/scene"
	"kittyescape/pkg/game/room"
	"kittyescape/pkg/game/state"
)

// phase tracks where the app is in the title, game, ending sequence.
type phase int

const (
	phaseTitle phase = iota
	phaseGame
	phaseEnding
	phaseDone
)

// App sequences the game's scenes inside Ebiten's loop: each update it
// polls input and timers into the event queue and drains the queue
// into the active scene; each draw it presents the shared canvas.
type App struct {
	canvas *Canvas
	window Window
	assets *Assets
	queue  *event.Queue
	clock  *clock
	rng    *rand.Rand

	skipTitle bool
	phase     phase
	scene     scene.Scene
	game      *state.Game
	won       bool
	runeBuf   []rune
}

// NewApp prepares the app with art from assetDir and the given
// question RNG.
func NewApp(assetDir string, skipTitle bool, rng *rand.Rand) *App {
	app := &App{
		canvas:    NewCanvas(room.ScreenRect),
		assets:    NewAssets(assetDir),
		queue:     event.NewQueue(),
		rng:       rng,
		skipTitle: skipTitle,
	}
	app.clock = newClock(app.queue)
	return app
}

// Run opens the window and runs the app until the sequence finishes or
// the player quits.
func (a *App) Run() error {
	ebiten.SetWindowSize(room.ScreenRect.Dx(), room.ScreenRect.Dy())
	ebiten.SetWindowTitle(gotext.Get("Kitty Escape"))
	// Window closes route through the event queue so scenes see them.
	ebiten.SetWindowClosingHandled(true)
	return ebiten.RunGame(a)
}

// Won reports whether the player escaped. Meaningful after Run
// returns.
func (a *App) Won() bool {
	return a.won
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if a.scene == nil {
		if err := a.advancePhase(); err != nil {
			return err
		}
		if a.scene == nil {
			return ebiten.Termination
		}
	}

	a.pollInput()
	a.clock.advance(time.Now())

	for {
		ev, ok := a.queue.Pop()
		if !ok {
			break
		}
		a.scene.Send(ev)
		if !a.scene.Active() {
			a.scene.Cleanup()
			a.scene = nil
			// Whatever queued behind the closing event belongs to a
			// scene that no longer exists.
			a.queue.Clear()
			break
		}
	}
	return nil
}

// advancePhase constructs the next scene in the sequence.
func (a *App) advancePhase() error {
	for a.scene == nil && a.phase != phaseDone {
		switch a.phase {
		case phaseTitle:
			a.phase = phaseGame
			if a.skipTitle {
				continue
			}
			title, err := state.NewTitleCard(a.canvas, a.window, a.assets, a.clock)
			if err != nil {
				return err
			}
			a.scene = title

		case phaseGame:
			game, err := state.NewGame(a.canvas, a.window, a.assets, a.clock, a.rng)
			if err != nil {
				return err
			}
			a.game = game
			a.scene = game
			a.phase = phaseEnding

		case phaseEnding:
			a.phase = phaseDone
			if ending := a.game.Ending(a.window); ending != nil {
				a.won = true
				a.scene = ending
			}
		}
	}
	return nil
}

// Draw implements ebiten.Game by presenting the scenes' canvas.
func (a *App) Draw(screen *ebiten.Image) {
	screen.DrawImage(a.canvas.buffer, nil)
}

// Layout implements ebiten.Game with the fixed logical size; Ebiten
// scales it to the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return room.ScreenRect.Dx(), room.ScreenRect.Dy()
}
