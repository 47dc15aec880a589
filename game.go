package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoImagesLeft is returned from the control loop once every remaining path
// has been removed. It is fatal at the process boundary.
var ErrNoImagesLeft = errors.New("no images left to display")

// ebitenWindow is the WindowController backed by the real window.
type ebitenWindow struct{}

func (ebitenWindow) SetFullscreen(enabled bool) {
	ebiten.SetFullscreen(enabled)
}

// Game is the orchestrator: one Update per frame polls input, drains the
// navigator's change flag, advances animation playback by the measured
// wall-clock delta and gates the actual paint on the viewport's redraw flag.
// Navigator, AnimatedImage and Viewport are mutated only from this loop.
type Game struct {
	cfg      *Config
	nav      *Navigator
	img      *AnimatedImage
	view     *Viewport
	loader   *Loader
	renderer *Renderer
	input    *InputHandler

	// Re-apply actual size after every load (the -a flag).
	actualSize bool

	lastTick time.Time
	quit     bool
}

// NewGame wires the core components together.
func NewGame(cfg *Config, nav *Navigator, loader *Loader, view *Viewport, actualSize bool) *Game {
	g := &Game{
		cfg:        cfg,
		nav:        nav,
		img:        NewAnimatedImage(),
		view:       view,
		loader:     loader,
		renderer:   NewRenderer(cfg),
		actualSize: actualSize,
		lastTick:   time.Now(),
	}
	g.input = NewInputHandler(g, NewKeybindingManager(cfg.Keybindings), cfg)
	return g
}

func (g *Game) Update() error {
	g.input.HandleInput()
	if g.quit {
		return ebiten.Termination
	}

	if err := g.drainNavigator(); err != nil {
		return err
	}

	now := time.Now()
	dt := now.Sub(g.lastTick)
	g.lastTick = now
	if g.view.Playing() {
		g.img.Play(dt)
	}

	if g.img.HasChanged() {
		g.view.SetRedraw()
	}

	return nil
}

// drainNavigator loads the current path whenever the navigator reports a
// change, dropping paths that fail to decode and retrying until one succeeds
// or none remain. Dropping a path re-raises the change flag, hence the loop.
func (g *Game) drainNavigator() error {
	for g.nav.HasChanged() {
		path, ok := g.nav.CurrentPath()
		if !ok {
			return ErrNoImagesLeft
		}

		ebiten.SetWindowTitle(fmt.Sprintf("iv - [%d/%d] [LOADING] %s",
			g.nav.CurrentIndex()+1, g.nav.Length(), path))

		if err := g.img.Load(g.loader, path); err != nil {
			log.Printf("Warning: Skipping %s: %v", path, err)
			g.nav.RemoveCurrentPath()
			continue
		}

		w, h := g.img.Size()
		ebiten.SetWindowTitle(fmt.Sprintf("iv - [%d/%d] [%dx%d] %s",
			g.nav.CurrentIndex()+1, g.nav.Length(), w, h, path))

		g.view.ScaleToWindow(w, h)
		if g.actualSize {
			g.view.ScaleToActual(w, h)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.view.ConsumeRedraw() {
		// Screen clearing is disabled, so the previous frame stays up.
		return
	}
	x, y := g.view.Offset()
	g.renderer.Draw(screen, g.img.CurrentFrame(), x, y, g.view.Scale())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h := g.view.Size(); w != outsideWidth || h != outsideHeight {
		iw, ih := g.img.Size()
		g.view.Updated(outsideWidth, outsideHeight, iw, ih)
	}
	return outsideWidth, outsideHeight
}

// InputActions implementation

func (g *Game) Quit() {
	g.quit = true
}

func (g *Game) NextImage() {
	g.nav.NextPath()
}

func (g *Game) PreviousImage() {
	g.nav.PrevPath()
}

func (g *Game) CloseImage() {
	g.nav.RemoveCurrentPath()
}

func (g *Game) PrintPath() {
	if path, ok := g.nav.CurrentPath(); ok {
		fmt.Println(path)
	}
}

func (g *Game) ZoomIn() {
	g.view.Zoom(ZoomKeyboard, 1, 0, 0)
}

func (g *Game) ZoomOut() {
	g.view.Zoom(ZoomKeyboard, -1, 0, 0)
}

func (g *Game) ZoomAtCursor(amount float64, cursorX, cursorY int) {
	g.view.Zoom(ZoomMouse, amount, float64(cursorX), float64(cursorY))
}

// Keyboard pan deltas keep the classic direction semantics: "pan left" moves
// the content right, and vice versa.

func (g *Game) PanUp() {
	g.view.Move(0, g.cfg.PanStep)
}

func (g *Game) PanDown() {
	g.view.Move(0, -g.cfg.PanStep)
}

func (g *Game) PanLeft() {
	g.view.Move(g.cfg.PanStep, 0)
}

func (g *Game) PanRight() {
	g.view.Move(-g.cfg.PanStep, 0)
}

func (g *Game) PanByDelta(dx, dy float64) {
	g.view.Move(dx, dy)
}

func (g *Game) ResetView() {
	w, h := g.img.Size()
	g.view.ScaleToWindow(w, h)
}

func (g *Game) ActualSize() {
	w, h := g.img.Size()
	g.view.ScaleToActual(w, h)
}

func (g *Game) CenterView() {
	w, h := g.img.Size()
	g.view.Center(w, h)
}

func (g *Game) ToggleFullscreen() {
	g.view.ToggleFullscreen()
}

func (g *Game) TogglePlayback() {
	g.view.TogglePlaying()
}

func (g *Game) StepFrame() {
	g.img.LoadNextFrame()
}
