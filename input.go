package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler turns the frame's raw input state into InputActions calls.
// Keyboard input goes through the keybinding table; the mouse wheel and drag
// are handled directly because they carry analog deltas that a binary
// binding check cannot express.
type InputHandler struct {
	inputActions      InputActions
	keybindingManager *KeybindingManager

	wheelSensitivity float64
	wheelInverted    bool
	enableDragPan    bool
	dragSensitivity  float64

	dragging             bool
	lastDragX, lastDragY int
}

// NewInputHandler creates a new InputHandler
func NewInputHandler(inputActions InputActions, keybindingManager *KeybindingManager, cfg *Config) *InputHandler {
	return &InputHandler{
		inputActions:      inputActions,
		keybindingManager: keybindingManager,
		wheelSensitivity:  cfg.WheelSensitivity,
		wheelInverted:     cfg.WheelInverted,
		enableDragPan:     cfg.EnableDragPan,
		dragSensitivity:   cfg.DragSensitivity,
	}
}

// HandleInput processes all input for the current frame.
// Returns true if any input was processed, false otherwise.
func (h *InputHandler) HandleInput() bool {
	inputProcessed := false

	for _, def := range actionDefinitions {
		if h.keybindingManager.ExecuteAction(def.Name, h.inputActions) {
			inputProcessed = true
		}
	}

	inputProcessed = h.handleWheelZoom() || inputProcessed
	inputProcessed = h.handleDragPan() || inputProcessed

	return inputProcessed
}

// handleWheelZoom zooms anchored at the cursor position by the wheel delta.
func (h *InputHandler) handleWheelZoom() bool {
	_, wheelY := ebiten.Wheel()
	if wheelY == 0 {
		return false
	}
	if h.wheelInverted {
		wheelY = -wheelY
	}
	cx, cy := ebiten.CursorPosition()
	h.inputActions.ZoomAtCursor(wheelY*h.wheelSensitivity, cx, cy)
	return true
}

// handleDragPan pans by the cursor's movement while the left button is held.
func (h *InputHandler) handleDragPan() bool {
	if !h.enableDragPan {
		return false
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.dragging = true
		h.lastDragX, h.lastDragY = ebiten.CursorPosition()
		return false
	}

	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		h.dragging = false
		return false
	}

	if !h.dragging {
		return false
	}

	cx, cy := ebiten.CursorPosition()
	dx, dy := cx-h.lastDragX, cy-h.lastDragY
	h.lastDragX, h.lastDragY = cx, cy
	if dx == 0 && dy == 0 {
		return false
	}

	h.inputActions.PanByDelta(float64(dx)*h.dragSensitivity, float64(dy)*h.dragSensitivity)
	return true
}
