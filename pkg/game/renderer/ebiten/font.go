package ebiten

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomonobold"
)

// fontCache caches a face per pixel size so repeated draws do not
// rebuild faces. The whole game renders in one bold monospace face;
// only the size varies.
type fontCache struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

func newFontCache() *fontCache {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomonobold.TTF))
	if err != nil {
		log.Fatalf("Cannot load the embedded font: %v", err)
	}
	return &fontCache{
		source: source,
		faces:  map[float64]*text.GoTextFace{},
	}
}

func (f *fontCache) face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}
