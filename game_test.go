package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestGame(t *testing.T, nav *Navigator, actualSize bool) *Game {
	t.Helper()
	cfg := defaultConfig()
	view := NewViewport(800, 600, cfg.ZoomStep, nil)
	return NewGame(&cfg, nav, NewLoader(cfg.CacheSize), view, actualSize)
}

func TestDrainNavigatorLoadsCurrentImage(t *testing.T) {
	tempDir := t.TempDir()
	path := writeTestPNG(t, tempDir, "a.png", 400, 300)

	nav := NewNavigator()
	nav.AddPath(path)
	game := newTestGame(t, nav, false)

	if err := game.drainNavigator(); err != nil {
		t.Fatalf("drainNavigator failed: %v", err)
	}
	if w, h := game.img.Size(); w != 400 || h != 300 {
		t.Errorf("Loaded size = (%d, %d), want (400, 300)", w, h)
	}
	// 400x300 into 800x600 doubles.
	if game.view.Scale() != 2 {
		t.Errorf("Scale = %v, want fit scale 2", game.view.Scale())
	}
	if !game.view.ConsumeRedraw() {
		t.Error("Loading an image should request a redraw")
	}
	if game.nav.HasChanged() {
		t.Error("Drain should leave the change flag clear")
	}
}

func TestDrainNavigatorDropsUndecodablePaths(t *testing.T) {
	tempDir := t.TempDir()
	bad := filepath.Join(tempDir, "bad.png")
	if err := os.WriteFile(bad, []byte("garbage"), 0644); err != nil {
		t.Fatalf("Failed to write bad file: %v", err)
	}
	good := writeTestPNG(t, tempDir, "good.png", 12, 8)

	nav := NewNavigator()
	nav.AddPath(bad)
	nav.AddPath(good)
	game := newTestGame(t, nav, false)

	if err := game.drainNavigator(); err != nil {
		t.Fatalf("drainNavigator failed: %v", err)
	}

	if nav.Length() != 1 {
		t.Errorf("Expected the bad path to be dropped, length %d", nav.Length())
	}
	if path, _ := nav.CurrentPath(); path != good {
		t.Errorf("Expected navigator on %s, got %s", good, path)
	}
	if w, h := game.img.Size(); w != 12 || h != 8 {
		t.Errorf("Loaded size = (%d, %d), want (12, 8)", w, h)
	}
}

func TestDrainNavigatorAllPathsFail(t *testing.T) {
	tempDir := t.TempDir()
	bad := filepath.Join(tempDir, "bad.png")
	if err := os.WriteFile(bad, []byte("garbage"), 0644); err != nil {
		t.Fatalf("Failed to write bad file: %v", err)
	}

	nav := NewNavigator()
	nav.AddPath(bad)
	nav.AddPath(filepath.Join(tempDir, "missing.png"))
	game := newTestGame(t, nav, false)

	if err := game.drainNavigator(); !errors.Is(err, ErrNoImagesLeft) {
		t.Errorf("Expected ErrNoImagesLeft, got %v", err)
	}
}

func TestDrainNavigatorActualSizeFlag(t *testing.T) {
	tempDir := t.TempDir()
	path := writeTestPNG(t, tempDir, "a.png", 400, 300)

	nav := NewNavigator()
	nav.AddPath(path)
	game := newTestGame(t, nav, true)

	if err := game.drainNavigator(); err != nil {
		t.Fatalf("drainNavigator failed: %v", err)
	}
	if game.view.Scale() != 1 {
		t.Errorf("Scale = %v, want actual size 1", game.view.Scale())
	}
}

func TestGamePanDirections(t *testing.T) {
	nav := NewNavigator()
	game := newTestGame(t, nav, false)
	x0, y0 := game.view.Offset()

	// Panning moves the content opposite to the named direction.
	game.PanLeft()
	game.PanUp()

	x, y := game.view.Offset()
	if x != x0+game.cfg.PanStep {
		t.Errorf("PanLeft moved x to %v, want %v", x, x0+game.cfg.PanStep)
	}
	if y != y0+game.cfg.PanStep {
		t.Errorf("PanUp moved y to %v, want %v", y, y0+game.cfg.PanStep)
	}

	game.PanRight()
	game.PanDown()
	x, y = game.view.Offset()
	if x != x0 || y != y0 {
		t.Errorf("Opposite pans did not cancel: offset (%v, %v)", x, y)
	}
}

func TestGameQuitAction(t *testing.T) {
	game := newTestGame(t, NewNavigator(), false)
	game.Quit()
	if !game.quit {
		t.Error("Quit should set the termination flag")
	}
}
