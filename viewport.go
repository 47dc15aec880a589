package main

import "math"

// Scale clamps. The upper bound keeps wheel spam from overflowing into
// useless magnifications.
const (
	minScale = 0.01
	maxScale = 100.0

	// Multiplicative step applied per wheel notch.
	wheelZoomFactor = 1.1
)

// ZoomSource tells Zoom where to anchor: keyboard zoom anchors at the window
// center, mouse zoom at the cursor.
type ZoomSource int

const (
	ZoomKeyboard ZoomSource = iota
	ZoomMouse
)

// WindowController is the window collaborator the viewport instructs when
// fullscreen is toggled. Tests substitute a fake.
type WindowController interface {
	SetFullscreen(enabled bool)
}

// Viewport holds the 2D view transform: window size, pan offset and scale,
// plus the fullscreen/playing/redraw flags. It owns no image data; image
// dimensions are handed in by value when computing fits. The redraw flag is
// edge-triggered and consumed by the painter.
type Viewport struct {
	winW, winH int
	x, y       float64
	scale      float64
	zoomStep   float64

	playing    bool
	fullscreen bool
	redraw     bool

	window WindowController
}

// NewViewport creates a Viewport for the given initial window size. zoomStep
// is the multiplicative factor applied per keyboard zoom press. The image
// starts centered at scale 1 until the first fit request.
func NewViewport(winW, winH int, zoomStep float64, window WindowController) *Viewport {
	if zoomStep <= 1 {
		zoomStep = 1.25
	}
	return &Viewport{
		winW:     winW,
		winH:     winH,
		scale:    1,
		zoomStep: zoomStep,
		playing:  true,
		window:   window,
	}
}

// Zoom adjusts the scale by amount steps (wheel notches for ZoomMouse, key
// presses for ZoomKeyboard) and recomputes the offset so the anchor point —
// the cursor for mouse zoom, the window center for keyboard zoom — stays over
// the same image point.
func (v *Viewport) Zoom(source ZoomSource, amount float64, cursorX, cursorY float64) {
	var ax, ay, next float64
	if source == ZoomMouse {
		ax, ay = cursorX, cursorY
		next = v.scale * math.Pow(wheelZoomFactor, amount)
	} else {
		ax, ay = float64(v.winW)/2, float64(v.winH)/2
		next = v.scale * math.Pow(v.zoomStep, amount)
	}
	next = math.Max(minScale, math.Min(maxScale, next))

	// The image point currently under the anchor.
	imgX := (ax - v.x) / v.scale
	imgY := (ay - v.y) / v.scale

	v.scale = next
	v.x = ax - imgX*v.scale
	v.y = ay - imgY*v.scale
	v.redraw = true
}

// ScaleToWindow picks the scale at which the image exactly fits the window,
// preserving aspect ratio, and recenters. Images smaller than the window are
// scaled up, larger ones down.
func (v *Viewport) ScaleToWindow(imgW, imgH int) {
	if imgW <= 0 || imgH <= 0 {
		return
	}
	v.scale = math.Min(float64(v.winW)/float64(imgW), float64(v.winH)/float64(imgH))
	v.Center(imgW, imgH)
}

// ScaleToActual shows one display pixel per source pixel and recenters.
func (v *Viewport) ScaleToActual(imgW, imgH int) {
	v.scale = 1
	v.Center(imgW, imgH)
}

// Center places the image, at its current scale, in the middle of the window.
func (v *Viewport) Center(imgW, imgH int) {
	v.x = float64(v.winW)/2 - float64(imgW)*v.scale/2
	v.y = float64(v.winH)/2 - float64(imgH)*v.scale/2
	v.redraw = true
}

// Move pans by (dx, dy) display pixels. There is no bound on the offset;
// content panned out of view simply is not drawn.
func (v *Viewport) Move(dx, dy float64) {
	v.x += dx
	v.y += dy
	v.redraw = true
}

// Updated refreshes the window size after a resize and recenters the image at
// its current scale. The user's zoom level survives resizes.
func (v *Viewport) Updated(winW, winH, imgW, imgH int) {
	v.winW = winW
	v.winH = winH
	v.Center(imgW, imgH)
}

// ToggleFullscreen flips the flag and instructs the window collaborator.
// Scale and offset are untouched; the resize that follows arrives through
// Updated.
func (v *Viewport) ToggleFullscreen() {
	v.fullscreen = !v.fullscreen
	if v.window != nil {
		v.window.SetFullscreen(v.fullscreen)
	}
}

// TogglePlaying flips animation playback. Toggling it on for a static image
// has no visible effect.
func (v *Viewport) TogglePlaying() {
	v.playing = !v.playing
}

// SetRedraw requests a repaint even though the view transform itself did not
// change (e.g. the animation advanced a frame).
func (v *Viewport) SetRedraw() {
	v.redraw = true
}

// ConsumeRedraw reports whether a repaint is needed, clearing the flag. The
// painter calls it once per frame and skips drawing when it returns false.
func (v *Viewport) ConsumeRedraw() bool {
	r := v.redraw
	v.redraw = false
	return r
}

func (v *Viewport) Scale() float64         { return v.scale }
func (v *Viewport) Offset() (x, y float64) { return v.x, v.y }
func (v *Viewport) Size() (w, h int)       { return v.winW, v.winH }
func (v *Viewport) Playing() bool          { return v.playing }
func (v *Viewport) Fullscreen() bool       { return v.fullscreen }
