// Package resources holds the game's embedded assets and the helpers that
// turn asset files into images and font faces.
package resources

//go:generate go run generate.go start.bmp

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

//go:embed start.bmp
var StartImage []byte

// Decode decodes a bmp or png image.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// LoadImage decodes the image at path, or the embedded start button if path
// is empty.
func LoadImage(path string) (image.Image, error) {
	if path == "" {
		return Decode(bytes.NewReader(StartImage))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// ColorKey returns a copy of img where every pixel whose colour matches key
// (alpha ignored) is fully transparent.
func ColorKey(img image.Image, key color.Color) *image.NRGBA {
	kr, kg, kb, _ := key.RGBA()
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.At(x, y)
			r, g, bl, _ := c.RGBA()
			if r == kr && g == kg && bl == kb {
				dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, color.NRGBA{})
				continue
			}
			dst.Set(x-b.Min.X, y-b.Min.Y, c)
		}
	}
	return dst
}

// LoadFace parses the TrueType or OpenType font at path.
func LoadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %s: %w", path, err)
	}
	return face, nil
}
