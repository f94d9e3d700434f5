// Package gui is the window the decoded frames end up in. It owns nothing of
// the pipeline: the monitor decides what a frame looks like and sends it over
// a channel, the window blits it integer-scaled and letterboxed and sends
// user input back. Frame pacing comes from ebiten's vsync.
package gui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	input "github.com/quasilyte/ebitengine-input"

	"github.com/SebastianRueClausen/spillestation/io"
	"github.com/SebastianRueClausen/spillestation/logger"
	"github.com/SebastianRueClausen/spillestation/render"
	"github.com/SebastianRueClausen/spillestation/version"
)

// State of the monitor as mirrored by the window
type State int

const (
	StateRunning State = iota
	StatePaused
)

// GUI carries the channels connecting the window to the monitor. The monitor
// sends frames and state changes, the window sends user input back
type GUI struct {
	SetImage  chan *image.RGBA
	State     chan State
	UserInput chan io.Input
}

func NewGUI() *GUI {
	return &GUI{
		SetImage:  make(chan *image.RGBA, 1),
		State:     make(chan State, 1),
		UserInput: make(chan io.Input, 1),
	}
}

type gui struct {
	g *GUI

	started bool
	endGui  chan bool

	state State
	geom  windowGeometry

	image  *ebiten.Image
	width  int
	height int

	inputHandler *input.Handler
	inputSystem  input.System
}

const (
	ActionOriginLeft     = input.Action(io.OriginLeft)
	ActionOriginUp       = input.Action(io.OriginUp)
	ActionOriginRight    = input.Action(io.OriginRight)
	ActionOriginDown     = input.Action(io.OriginDown)
	ActionTogglePause    = input.Action(io.TogglePause)
	ActionToggleVramView = input.Action(io.ToggleVramView)
	ActionScreenshot     = input.Action(io.Screenshot)
)

func (g *gui) initialise() {
	keymap := input.Keymap{
		ActionOriginLeft:     {input.KeyGamepadLeft, input.KeyLeft},
		ActionOriginUp:       {input.KeyGamepadUp, input.KeyUp},
		ActionOriginRight:    {input.KeyGamepadRight, input.KeyRight},
		ActionOriginDown:     {input.KeyGamepadDown, input.KeyDown},
		ActionTogglePause:    {input.KeyGamepadStart, input.KeySpace},
		ActionToggleVramView: {input.KeyGamepadY, input.KeyV},
		ActionScreenshot:     {input.KeyF12},
	}
	g.inputHandler = g.inputSystem.NewHandler(uint8(0), keymap)
	g.started = true
}

func (g *gui) input() {
	g.inputSystem.Update()

	var inp io.Input

	if g.inputHandler.ActionIsJustPressed(ActionOriginLeft) {
		inp = io.Input{Action: io.OriginLeft}
	}
	if g.inputHandler.ActionIsJustPressed(ActionOriginUp) {
		inp = io.Input{Action: io.OriginUp}
	}
	if g.inputHandler.ActionIsJustPressed(ActionOriginRight) {
		inp = io.Input{Action: io.OriginRight}
	}
	if g.inputHandler.ActionIsJustPressed(ActionOriginDown) {
		inp = io.Input{Action: io.OriginDown}
	}
	if g.inputHandler.ActionIsJustPressed(ActionTogglePause) {
		inp = io.Input{Action: io.TogglePause}
	}
	if g.inputHandler.ActionIsJustPressed(ActionToggleVramView) {
		inp = io.Input{Action: io.ToggleVramView}
	}
	if g.inputHandler.ActionIsJustPressed(ActionScreenshot) {
		inp = io.Input{Action: io.Screenshot}
	}

	if g.inputHandler.ActionIsJustReleased(ActionOriginLeft) {
		inp = io.Input{Action: io.OriginLeft, Release: true}
	}
	if g.inputHandler.ActionIsJustReleased(ActionOriginUp) {
		inp = io.Input{Action: io.OriginUp, Release: true}
	}
	if g.inputHandler.ActionIsJustReleased(ActionOriginRight) {
		inp = io.Input{Action: io.OriginRight, Release: true}
	}
	if g.inputHandler.ActionIsJustReleased(ActionOriginDown) {
		inp = io.Input{Action: io.OriginDown, Release: true}
	}

	if inp.Action != io.Nothing {
		select {
		case g.g.UserInput <- inp:
		default:
		}
	}
}

func (g *gui) Update() error {
	if !g.started {
		g.initialise()
	}

	g.input()

	select {
	case <-g.endGui:
		return ebiten.Termination
	case g.state = <-g.g.State:
	case img := <-g.g.SetImage:
		dim := img.Bounds()
		if g.image == nil || g.image.Bounds() != dim {
			g.width = dim.Dx()
			g.height = dim.Dy()
			g.image = ebiten.NewImage(g.width, g.height)
		}
		g.image.WritePixels(img.Pix)
	default:
	}

	return nil
}

func (g *gui) Draw(screen *ebiten.Image) {
	if g.image != nil {
		// the same fit the presentation pass uses: integer scale, never
		// below 1, centered. ebiten's default nearest filter keeps the
		// pixels sharp
		texture := render.Vec2{X: float32(g.width), Y: float32(g.height)}
		window := render.Vec2{
			X: float32(screen.Bounds().Dx()),
			Y: float32(screen.Bounds().Dy()),
		}
		scale := render.FitScale(texture, window)
		_, scissor := render.FitTransform(texture, window)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(scale), float64(scale))
		op.GeoM.Translate(float64(scissor.X), float64(scissor.Y))

		// dim the frame while the monitor is paused
		if g.state == StatePaused {
			op.ColorScale.SetR(0.6)
			op.ColorScale.SetG(0.6)
			op.ColorScale.SetB(0.6)
		}

		screen.DrawImage(g.image, op)
	}

	g.geom.x, g.geom.y = ebiten.WindowPosition()
	g.geom.w, g.geom.h = ebiten.WindowSize()
}

func (g *gui) Layout(width, height int) (int, int) {
	return width, height
}

// Launch the window. It does not return until the window is closed by the
// user or a message arrives on the endGui channel
func Launch(endGui chan bool, g *GUI) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	ui := &gui{
		endGui: endGui,
		g:      g,
		state:  StateRunning,
	}

	ui.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})

	var err error

	ui.geom, err = onWindowOpen()
	if err != nil {
		logger.Log(logger.Allow, "gui", err)
	}

	defer func() {
		err := onWindowClose(ui.geom)
		if err != nil {
			logger.Log(logger.Allow, "gui", err)
		}
	}()

	return ebiten.RunGame(ui)
}
