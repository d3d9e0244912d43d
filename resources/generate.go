//go:build ignore

package main

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	width  = 160
	height = 60
	margin = 4
	border = 3
	scale  = 4
)

var (
	fill  = color.RGBA{0x20, 0x40, 0xc0, 0xff}
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: generate <output.bmp>")
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	button := image.Rect(margin, margin, width-margin, height-margin)
	draw.Draw(img, button, image.NewUniform(white), image.Point{}, draw.Src)
	draw.Draw(img, button.Inset(border), image.NewUniform(fill), image.Point{}, draw.Src)

	label := renderLabel("START")
	lb := label.Bounds()
	at := image.Pt((width-lb.Dx()*scale)/2, (height-lb.Dy()*scale)/2)
	for y := 0; y < lb.Dy(); y++ {
		for x := 0; x < lb.Dx(); x++ {
			if _, _, _, a := label.At(x, y).RGBA(); a == 0 {
				continue
			}
			cell := image.Rect(at.X+x*scale, at.Y+y*scale, at.X+(x+1)*scale, at.Y+(y+1)*scale)
			draw.Draw(img, cell, image.NewUniform(white), image.Point{}, draw.Src)
		}
	}

	f, err := os.Create(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := bmp.Encode(f, img); err != nil {
		log.Fatal(err)
	}
}

func renderLabel(s string) *image.Alpha {
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Ceil()
	img := image.NewAlpha(image.Rect(0, 0, w, face.Height))

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(s)
	return img
}
