package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// AnimatedImage holds the decoded frames of the image currently on display
// plus the playback position within them. A single-frame image is simply an
// animation of length one that Play never advances. The changed flag is
// edge-triggered: it reports true once per new visible bitmap and is cleared
// by HasChanged.
type AnimatedImage struct {
	path     string
	frames   []Frame
	frameIdx int
	acc      time.Duration
	changed  bool
}

// NewAnimatedImage creates an empty AnimatedImage; nothing is displayed until
// the first successful Load.
func NewAnimatedImage() *AnimatedImage {
	return &AnimatedImage{}
}

// Load decodes path through the loader and replaces the current frames,
// resetting playback to the first frame. On failure the previous state is
// left untouched and the error is returned for the caller's recovery policy
// (drop the path and try the next one).
func (a *AnimatedImage) Load(loader *Loader, path string) error {
	frames, err := loader.Load(path)
	if err != nil {
		return err
	}
	a.path = path
	a.frames = frames
	a.frameIdx = 0
	a.acc = 0
	a.changed = true
	return nil
}

// LoadNextFrame advances playback by exactly one frame, wrapping, without
// touching the playback clock. Used for single-stepping.
func (a *AnimatedImage) LoadNextFrame() {
	if len(a.frames) == 0 {
		return
	}
	a.frameIdx = (a.frameIdx + 1) % len(a.frames)
	a.changed = true
}

// Play advances playback by dt of wall-clock time. The accumulator carries
// the remainder across calls, and the loop catches up when dt spans several
// frame durations (e.g. after a stall), so the frame landed on is always the
// one a continuously running clock would have shown.
func (a *AnimatedImage) Play(dt time.Duration) {
	if len(a.frames) < 2 {
		return
	}
	a.acc += dt
	for {
		d := a.frames[a.frameIdx].Duration
		if d <= 0 {
			d = defaultFrameDuration
		}
		if a.acc < d {
			break
		}
		a.acc -= d
		a.frameIdx = (a.frameIdx + 1) % len(a.frames)
		a.changed = true
	}
}

// HasChanged reports whether the visible bitmap changed since the last call,
// clearing the flag.
func (a *AnimatedImage) HasChanged() bool {
	c := a.changed
	a.changed = false
	return c
}

// CurrentFrame returns the bitmap to display, or nil before the first load.
func (a *AnimatedImage) CurrentFrame() *ebiten.Image {
	if len(a.frames) == 0 {
		return nil
	}
	return a.frames[a.frameIdx].Image
}

// Path returns the source path of the loaded image.
func (a *AnimatedImage) Path() string {
	return a.path
}

// IsAnimated reports whether the image has more than one frame.
func (a *AnimatedImage) IsAnimated() bool {
	return len(a.frames) > 1
}

// Size returns the display dimensions of the current frame. Frames of an
// animation are composited onto a shared canvas at decode time, so the size
// is stable across the whole animation.
func (a *AnimatedImage) Size() (int, int) {
	img := a.CurrentFrame()
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}
