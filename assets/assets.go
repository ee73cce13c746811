package assets

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	FontSource *text.GoTextFaceSource
	HUDFont    *text.GoTextFace
)

func init() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	FontSource = fontSource
	HUDFont = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
}

// Face returns a face of the HUD font at the given size, reusing faces already made.
func Face(size float64) *text.GoTextFace {
	if face, ok := faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: FontSource,
		Size:   size,
	}
	faces[size] = face
	return face
}

var faces = map[float64]*text.GoTextFace{}
