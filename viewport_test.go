package main

import (
	"math"
	"testing"
)

// fakeWindow records fullscreen requests for viewport tests.
type fakeWindow struct {
	fullscreen bool
	calls      int
}

func (w *fakeWindow) SetFullscreen(enabled bool) {
	w.fullscreen = enabled
	w.calls++
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestViewportScaleToWindow(t *testing.T) {
	tests := []struct {
		name          string
		winW, winH    int
		imgW, imgH    int
		expectedScale float64
		expectedX     float64
		expectedY     float64
	}{
		{"Wide image shrinks to width", 1000, 1000, 2000, 1000, 0.5, 0, 250},
		{"Tall image shrinks to height", 1000, 1000, 1000, 2000, 0.5, 250, 0},
		{"Small image grows", 1000, 1000, 100, 50, 10, 0, 250},
		{"Exact fit", 800, 600, 800, 600, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(tt.winW, tt.winH, 1.25, nil)
			v.ScaleToWindow(tt.imgW, tt.imgH)

			if !almostEqual(v.Scale(), tt.expectedScale) {
				t.Errorf("Scale = %v, want %v", v.Scale(), tt.expectedScale)
			}
			x, y := v.Offset()
			if !almostEqual(x, tt.expectedX) || !almostEqual(y, tt.expectedY) {
				t.Errorf("Offset = (%v, %v), want (%v, %v)", x, y, tt.expectedX, tt.expectedY)
			}
		})
	}
}

func TestViewportScaleToWindowInvalidSize(t *testing.T) {
	v := NewViewport(1000, 1000, 1.25, nil)
	v.ScaleToWindow(2000, 1000)
	v.ScaleToWindow(0, 0)

	if !almostEqual(v.Scale(), 0.5) {
		t.Errorf("Zero-sized image should leave the scale alone, got %v", v.Scale())
	}
}

func TestViewportScaleToActual(t *testing.T) {
	v := NewViewport(1000, 800, 1.25, nil)
	v.ScaleToWindow(2000, 1000)
	v.ScaleToActual(2000, 1000)

	if v.Scale() != 1 {
		t.Errorf("Scale = %v, want 1", v.Scale())
	}
	x, y := v.Offset()
	if !almostEqual(x, -500) || !almostEqual(y, -100) {
		t.Errorf("Offset = (%v, %v), want (-500, -100)", x, y)
	}
}

func TestViewportKeyboardZoomAnchorsAtCenter(t *testing.T) {
	v := NewViewport(1000, 1000, 1.25, nil)
	v.ScaleToWindow(500, 500) // scale 2, centered at origin

	// The image point under the window center before zooming.
	imgX := (500.0 - 0) / 2
	imgY := (500.0 - 0) / 2

	v.Zoom(ZoomKeyboard, 1, 0, 0)

	if !almostEqual(v.Scale(), 2.5) {
		t.Errorf("Scale = %v, want 2.5", v.Scale())
	}
	x, y := v.Offset()
	if !almostEqual(x+imgX*v.Scale(), 500) || !almostEqual(y+imgY*v.Scale(), 500) {
		t.Errorf("Window center moved off its image point: offset (%v, %v)", x, y)
	}
}

func TestViewportMouseZoomAnchorsAtCursor(t *testing.T) {
	v := NewViewport(1000, 1000, 1.25, nil)
	v.ScaleToWindow(500, 500)

	cursorX, cursorY := 300.0, 700.0
	x0, y0 := v.Offset()
	imgX := (cursorX - x0) / v.Scale()
	imgY := (cursorY - y0) / v.Scale()

	v.Zoom(ZoomMouse, 3, cursorX, cursorY)

	if !almostEqual(v.Scale(), 2*math.Pow(1.1, 3)) {
		t.Errorf("Scale = %v, want %v", v.Scale(), 2*math.Pow(1.1, 3))
	}
	x, y := v.Offset()
	if !almostEqual(x+imgX*v.Scale(), cursorX) || !almostEqual(y+imgY*v.Scale(), cursorY) {
		t.Errorf("Cursor moved off its image point: offset (%v, %v)", x, y)
	}

	// Zooming back out by the same notches restores the starting transform.
	v.Zoom(ZoomMouse, -3, cursorX, cursorY)
	x, y = v.Offset()
	if !almostEqual(v.Scale(), 2) || !almostEqual(x, x0) || !almostEqual(y, y0) {
		t.Errorf("Round trip gave scale %v offset (%v, %v), want 2 (%v, %v)", v.Scale(), x, y, x0, y0)
	}
}

func TestViewportZoomClamps(t *testing.T) {
	v := NewViewport(1000, 1000, 1.25, nil)

	v.Zoom(ZoomKeyboard, 1000, 0, 0)
	if v.Scale() != maxScale {
		t.Errorf("Scale = %v, want clamp at %v", v.Scale(), maxScale)
	}

	v.Zoom(ZoomKeyboard, -10000, 0, 0)
	if v.Scale() != minScale {
		t.Errorf("Scale = %v, want clamp at %v", v.Scale(), minScale)
	}
}

func TestViewportMove(t *testing.T) {
	v := NewViewport(1000, 1000, 1.25, nil)
	v.ScaleToActual(400, 400)
	x0, y0 := v.Offset()

	v.Move(50, 0)
	v.Move(0, -30)
	v.Move(-10, -10)

	x, y := v.Offset()
	if !almostEqual(x, x0+40) || !almostEqual(y, y0-40) {
		t.Errorf("Offset = (%v, %v), want (%v, %v)", x, y, x0+40, y0-40)
	}
}

func TestViewportUpdatedPreservesScale(t *testing.T) {
	v := NewViewport(1000, 1000, 1.25, nil)
	v.ScaleToWindow(500, 500)
	v.Zoom(ZoomKeyboard, 2, 0, 0)
	scale := v.Scale()

	v.Updated(1600, 900, 500, 500)

	if v.Scale() != scale {
		t.Errorf("Resize changed scale from %v to %v", scale, v.Scale())
	}
	w, h := v.Size()
	if w != 1600 || h != 900 {
		t.Errorf("Size = (%d, %d), want (1600, 900)", w, h)
	}
	x, y := v.Offset()
	if !almostEqual(x, 800-250*scale) || !almostEqual(y, 450-250*scale) {
		t.Errorf("Resize did not recenter: offset (%v, %v)", x, y)
	}
}

func TestViewportConsumeRedraw(t *testing.T) {
	v := NewViewport(1000, 1000, 1.25, nil)

	if v.ConsumeRedraw() {
		t.Error("Fresh viewport should not request a redraw")
	}

	v.Move(10, 0)
	if !v.ConsumeRedraw() {
		t.Error("Move should request a redraw")
	}
	if v.ConsumeRedraw() {
		t.Error("Redraw flag should clear after being consumed")
	}

	v.SetRedraw()
	if !v.ConsumeRedraw() {
		t.Error("SetRedraw should request a redraw")
	}
}

func TestViewportToggleFullscreen(t *testing.T) {
	win := &fakeWindow{}
	v := NewViewport(1000, 1000, 1.25, win)

	v.ToggleFullscreen()
	if !v.Fullscreen() || !win.fullscreen {
		t.Error("Expected fullscreen on after first toggle")
	}
	v.ToggleFullscreen()
	if v.Fullscreen() || win.fullscreen {
		t.Error("Expected fullscreen off after second toggle")
	}
	if win.calls != 2 {
		t.Errorf("Expected 2 window calls, got %d", win.calls)
	}
}

func TestViewportTogglePlaying(t *testing.T) {
	v := NewViewport(1000, 1000, 1.25, nil)
	if !v.Playing() {
		t.Error("Playback should start enabled")
	}
	v.TogglePlaying()
	if v.Playing() {
		t.Error("Playback should be off after toggle")
	}
}

func TestViewportZoomStepDefault(t *testing.T) {
	v := NewViewport(1000, 1000, 0, nil)
	v.Zoom(ZoomKeyboard, 1, 0, 0)
	if !almostEqual(v.Scale(), 1.25) {
		t.Errorf("Scale = %v, want default step 1.25", v.Scale())
	}
}
