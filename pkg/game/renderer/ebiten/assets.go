package ebiten

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"kittyescape/pkg/engine/gfx"
)

// Assets loads the game's PNG art from a directory by logical name.
type Assets struct {
	dir string
}

// NewAssets serves images from dir.
func NewAssets(dir string) *Assets {
	return &Assets{dir: dir}
}

// Load reads <dir>/<name>.png.
func (a *Assets) Load(name string) (gfx.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(filepath.Join(a.dir, name+".png"))
	if err != nil {
		return nil, fmt.Errorf("load image %q: %w", name, err)
	}
	return &Bitmap{img: img}, nil
}

// Bitmap wraps an Ebiten image as a gfx.Image.
type Bitmap struct {
	img *ebiten.Image
}

func (b *Bitmap) Width() int {
	return b.img.Bounds().Dx()
}

func (b *Bitmap) Height() int {
	return b.img.Bounds().Dy()
}
