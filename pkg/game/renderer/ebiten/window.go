package ebiten

import "github.com/hajimehoshi/ebiten/v2"

// Window adapts Ebiten's global window state to gfx.Window.
type Window struct{}

func (Window) Fullscreen() bool {
	return ebiten.IsFullscreen()
}

func (Window) SetFullscreen(on bool) {
	ebiten.SetFullscreen(on)
}
