package main

// InputActions provides action methods for the input handler. The game
// implements it; bindings and the executor stay decoupled from game state.
type InputActions interface {
	// Application control
	Quit()

	// Navigation
	NextImage()
	PreviousImage()
	CloseImage()
	PrintPath()

	// View transform
	ZoomIn()
	ZoomOut()
	ZoomAtCursor(amount float64, cursorX, cursorY int) // Mouse wheel zoom
	PanUp()
	PanDown()
	PanLeft()
	PanRight()
	PanByDelta(dx, dy float64) // Mouse drag pan
	ResetView()
	ActualSize()
	CenterView()
	ToggleFullscreen()

	// Playback
	TogglePlayback()
	StepFrame()
}
