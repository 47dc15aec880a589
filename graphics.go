package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	checkerTileSize = 512
	checkerBoxSize  = 16

	checkerLight = 196
	checkerDark  = 96
)

// NewCheckeredTexture builds the chequered background tile that shows through
// transparent image regions. The tile is drawn repeatedly across the window
// by the renderer.
func NewCheckeredTexture() *ebiten.Image {
	w, h := checkerTileSize, checkerTileSize
	pixels := make([]byte, 4*w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var c byte = checkerLight
			if ((x/checkerBoxSize)%2 == 0) != ((y/checkerBoxSize)%2 == 0) {
				c = checkerDark
			}
			i := 4 * (y*w + x)
			pixels[i] = c
			pixels[i+1] = c
			pixels[i+2] = c
			pixels[i+3] = 0xff
		}
	}

	tex := ebiten.NewImage(w, h)
	tex.WritePixels(pixels)
	return tex
}

// SolidColor converts the configured background channels to a colour value.
func SolidColor(cfg *Config) color.RGBA {
	return color.RGBA{
		R: uint8(cfg.BackgroundRed),
		G: uint8(cfg.BackgroundGreen),
		B: uint8(cfg.BackgroundBlue),
		A: 0xff,
	}
}
