package main

// ActionDefinition defines an action with its default keybindings and
// description. The description shows up in the usage text.
type ActionDefinition struct {
	Name        string
	Keys        []string
	Description string
}

// actionDefinitions contains all action definitions with default keybindings.
// Defaults follow the classic hotkeys: brackets/arrows to navigate, i/o to
// zoom, hjkl to pan, r/a/c for fit/actual/center.
var actionDefinitions = []ActionDefinition{
	{"quit", []string{"KeyQ", "Escape"}, "Quit"},
	{"previous", []string{"BracketLeft", "ArrowLeft"}, "Previous image"},
	{"next", []string{"BracketRight", "ArrowRight"}, "Next image"},
	{"zoom_in", []string{"KeyI", "Equal", "ArrowUp"}, "Zoom in"},
	{"zoom_out", []string{"KeyO", "Minus", "ArrowDown"}, "Zoom out"},
	{"pan_left", []string{"KeyH"}, "Pan left"},
	{"pan_down", []string{"KeyJ"}, "Pan down"},
	{"pan_up", []string{"KeyK"}, "Pan up"},
	{"pan_right", []string{"KeyL"}, "Pan right"},
	{"reset_view", []string{"KeyR"}, "Reset view (fit to window)"},
	{"actual_size", []string{"KeyA"}, "Show image actual size"},
	{"center", []string{"KeyC"}, "Center view"},
	{"close_image", []string{"KeyX"}, "Close current image"},
	{"fullscreen", []string{"KeyF"}, "Toggle fullscreen"},
	{"toggle_playing", []string{"Space"}, "Toggle gif playback"},
	{"step_frame", []string{"Period"}, "Step a frame of gif playback"},
	{"print_path", []string{"KeyP"}, "Print current image path to stdout"},
}

// ActionExecutor maps action names onto InputActions calls. It is the single
// source of truth for what each action does, shared by every binding source.
type ActionExecutor struct{}

// NewActionExecutor creates a new ActionExecutor instance
func NewActionExecutor() *ActionExecutor {
	return &ActionExecutor{}
}

// ExecuteAction executes the given action using the InputActions interface
func (ae *ActionExecutor) ExecuteAction(action string, inputActions InputActions) bool {
	switch action {
	case "quit":
		inputActions.Quit()
	case "previous":
		inputActions.PreviousImage()
	case "next":
		inputActions.NextImage()
	case "zoom_in":
		inputActions.ZoomIn()
	case "zoom_out":
		inputActions.ZoomOut()
	case "pan_left":
		inputActions.PanLeft()
	case "pan_down":
		inputActions.PanDown()
	case "pan_up":
		inputActions.PanUp()
	case "pan_right":
		inputActions.PanRight()
	case "reset_view":
		inputActions.ResetView()
	case "actual_size":
		inputActions.ActualSize()
	case "center":
		inputActions.CenterView()
	case "close_image":
		inputActions.CloseImage()
	case "fullscreen":
		inputActions.ToggleFullscreen()
	case "toggle_playing":
		inputActions.TogglePlayback()
	case "step_frame":
		inputActions.StepFrame()
	case "print_path":
		inputActions.PrintPath()
	default:
		return false
	}

	return true
}

// globalActionExecutor is the shared ActionExecutor instance.
var globalActionExecutor = NewActionExecutor()

// GetActionDescriptions returns a map of action names to their descriptions
func GetActionDescriptions() map[string]string {
	descriptions := make(map[string]string)
	for _, action := range actionDefinitions {
		descriptions[action.Name] = action.Description
	}
	return descriptions
}

// GetDefaultKeybindings returns a map of action names to their default keybindings
func GetDefaultKeybindings() map[string][]string {
	keybindings := make(map[string][]string)
	for _, action := range actionDefinitions {
		keybindings[action.Name] = action.Keys
	}
	return keybindings
}
