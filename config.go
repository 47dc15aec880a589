package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Window size constants
const (
	defaultWidth  = 1280
	defaultHeight = 720
	minWidth      = 400
	minHeight     = 300
)

// Config is the startup configuration, read once from the config file and
// then passed by reference into the control loop. There are no mutable
// process-wide options.
type Config struct {
	WindowWidth     int  `json:"window_width"`
	WindowHeight    int  `json:"window_height"`
	SolidBackground bool `json:"solid_background"`
	BackgroundRed   int  `json:"background_red"`
	BackgroundGreen int  `json:"background_green"`
	BackgroundBlue  int  `json:"background_blue"`

	ZoomStep  float64 `json:"zoom_step"`
	PanStep   float64 `json:"pan_step"`
	CacheSize int     `json:"cache_size"`

	WheelSensitivity float64 `json:"wheel_sensitivity"`
	WheelInverted    bool    `json:"wheel_inverted"`
	EnableDragPan    bool    `json:"enable_drag_pan"`
	DragSensitivity  float64 `json:"drag_sensitivity"`

	Keybindings map[string][]string `json:"keybindings"`
}

// ConfigLoadResult contains the result of loading configuration
type ConfigLoadResult struct {
	Config   Config
	Warnings []string
	Status   string // "OK", "Default", "Warning", "Error"
}

func getConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "iv.json"
	}
	return filepath.Join(homeDir, ".iv.json")
}

func defaultConfig() Config {
	return Config{
		WindowWidth:      defaultWidth,
		WindowHeight:     defaultHeight,
		SolidBackground:  false, // Chequered background by default
		ZoomStep:         1.25,  // Multiplicative step per keyboard zoom press
		PanStep:          50,    // Pixels per keyboard pan press
		CacheSize:        16,    // Decoded images kept in the LRU cache
		WheelSensitivity: 1.0,
		WheelInverted:    false,
		EnableDragPan:    true,
		DragSensitivity:  1.0,
		Keybindings:      GetDefaultKeybindings(),
	}
}

func loadConfig() ConfigLoadResult {
	return loadConfigFromPath(getConfigPath())
}

func loadConfigFromPath(configPath string) ConfigLoadResult {
	config := defaultConfig()
	result := ConfigLoadResult{
		Config:   config,
		Warnings: []string{},
		Status:   "OK",
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config file not found is not an error - use defaults
		result.Status = "Default"
		return result
	}

	if err := json.Unmarshal(data, &config); err != nil {
		log.Printf("Warning: Invalid config file %s, using defaults: %v", configPath, err)
		result.Status = "Error"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Invalid config file: %v", err))
		return result
	}

	// Validate minimum size
	if config.WindowWidth < minWidth {
		config.WindowWidth = defaultWidth
	}
	if config.WindowHeight < minHeight {
		config.WindowHeight = defaultHeight
	}

	// Validate background colour channels
	config.BackgroundRed = clampChannel(config.BackgroundRed)
	config.BackgroundGreen = clampChannel(config.BackgroundGreen)
	config.BackgroundBlue = clampChannel(config.BackgroundBlue)

	// Keyboard zoom must grow; anything at or below 1 would zoom nowhere
	if config.ZoomStep <= 1.0 {
		config.ZoomStep = 1.25
	}

	if config.PanStep <= 0 {
		config.PanStep = 50
	}

	// Validate cache size (minimum 1, maximum 64)
	if config.CacheSize < 1 {
		config.CacheSize = 16
	} else if config.CacheSize > 64 {
		config.CacheSize = 64
	}

	if config.WheelSensitivity <= 0 {
		config.WheelSensitivity = 1.0
	}
	if config.DragSensitivity <= 0 {
		config.DragSensitivity = 1.0
	}

	// Validate keybindings - ensure defaults exist for missing actions
	if config.Keybindings == nil {
		config.Keybindings = GetDefaultKeybindings()
	} else {
		defaults := GetDefaultKeybindings()
		for action, defaultKeys := range defaults {
			if _, exists := config.Keybindings[action]; !exists {
				config.Keybindings[action] = defaultKeys
			}
		}

		if err := validateKeybindings(config.Keybindings); err != nil {
			log.Printf("Warning: Invalid keybindings detected, using defaults: %v", err)
			config.Keybindings = GetDefaultKeybindings()
			result.Status = "Warning"
			result.Warnings = append(result.Warnings, fmt.Sprintf("Keybinding errors: %v", err))
		}
	}

	result.Config = config
	return result
}

func clampChannel(c int) int {
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return c
}

// validateKeybindings checks key formats and detects conflicting bindings.
func validateKeybindings(keybindings map[string][]string) error {
	keyToAction := make(map[string]string)
	validKeys := make(map[string]bool)
	for name := range getKeyMapping() {
		validKeys[name] = true
	}

	for action, keys := range keybindings {
		for _, keyStr := range keys {
			if err := validateKeyString(keyStr, validKeys); err != nil {
				return fmt.Errorf("invalid key '%s' for action '%s': %v", keyStr, action, err)
			}

			if existingAction, exists := keyToAction[keyStr]; exists {
				return fmt.Errorf("key conflict: '%s' is bound to both '%s' and '%s'", keyStr, existingAction, action)
			}
			keyToAction[keyStr] = action
		}
	}

	return nil
}

// validateKeyString validates a single key string format
func validateKeyString(keyStr string, validKeys map[string]bool) error {
	parts := strings.Split(keyStr, "+")
	if len(parts) == 0 {
		return fmt.Errorf("empty key string")
	}

	// Last part should be the actual key
	keyName := parts[len(parts)-1]
	if !validKeys[keyName] {
		return fmt.Errorf("unknown key: %s", keyName)
	}

	// Check modifiers
	for i := 0; i < len(parts)-1; i++ {
		modifier := strings.ToLower(parts[i])
		if modifier != "shift" && modifier != "ctrl" && modifier != "alt" {
			return fmt.Errorf("unknown modifier: %s", parts[i])
		}
	}

	return nil
}
