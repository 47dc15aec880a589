package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer composites the background and the current frame using the
// viewport's transform. It owns no state besides the background texture; the
// scale and offset arrive from the viewport each frame.
type Renderer struct {
	background *ebiten.Image
	solid      bool
	solidColor color.RGBA
}

// NewRenderer creates a Renderer with either a solid or chequered background,
// per the configuration.
func NewRenderer(cfg *Config) *Renderer {
	r := &Renderer{
		solid:      cfg.SolidBackground,
		solidColor: SolidColor(cfg),
	}
	if !r.solid {
		r.background = NewCheckeredTexture()
	}
	return r
}

// Draw paints the background and then the frame at the given offset and
// scale. A nil frame paints only the background.
func (r *Renderer) Draw(screen *ebiten.Image, frame *ebiten.Image, x, y, scale float64) {
	screen.Clear()
	r.drawBackground(screen)

	if frame == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	screen.DrawImage(frame, op)
}

func (r *Renderer) drawBackground(screen *ebiten.Image) {
	if r.solid {
		screen.Fill(r.solidColor)
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	tw, th := r.background.Bounds().Dx(), r.background.Bounds().Dy()
	for y := 0; y < h; y += th {
		for x := 0; x < w; x += tw {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x), float64(y))
			screen.DrawImage(r.background, op)
		}
	}
}
