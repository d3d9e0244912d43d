package screen

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Image is a GPU image owned by a single game object.
type Image struct {
	img *ebiten.Image
}

func NewImage(src image.Image) *Image {
	return &Image{img: ebiten.NewImageFromImage(src)}
}

func (i *Image) Size() (int, int) {
	if i.img == nil {
		return 0, 0
	}
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

func (i *Image) Release() {
	if i.img != nil {
		i.img.Dispose()
		i.img = nil
	}
}
