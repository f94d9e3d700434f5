// Package monitor is the interactive host of the display pipeline. It owns
// the GPU state, mutates VRAM on the user's behalf and sequences decode
// passes, sending the finished frames to the gui over a channel.
//
// All VRAM mutation happens on the monitor goroutine. A decode pass is only
// ever issued from that same goroutine, so the pass always works from a
// stable snapshot of video memory.
package monitor

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"

	"github.com/SebastianRueClausen/spillestation/gui"
	"github.com/SebastianRueClausen/spillestation/hardware/gpu"
	"github.com/SebastianRueClausen/spillestation/io"
	"github.com/SebastianRueClausen/spillestation/logger"
	"github.com/SebastianRueClausen/spillestation/render"
)

type input struct {
	s   string
	err error
}

type monitor struct {
	guiQuit chan bool
	sig     chan os.Signal
	input   chan input

	// channels to the window. frames go out, user input comes back
	g *gui.GUI

	gpu *gpu.Gpu

	// canvas for the display area. recreated whenever the resolution
	// changes
	canvas *render.Canvas

	// canvas for the whole-of-VRAM view. created on first use, the
	// dimensions never change
	vramCanvas *render.Canvas

	// when true the gui shows the whole of VRAM rather than the display
	// area
	viewVram bool

	// the VRAM dump to load on reset. empty means no dump
	loader string

	// fill VRAM with the test card on reset
	testcard bool

	// printing styles
	styles styles
}

func (m *monitor) reset() {
	m.gpu.Vram.Clear()
	m.gpu.SetDisplayStart(0, 0)

	if m.loader != "" {
		err := m.loadDump(m.loader)
		if err != nil {
			fmt.Println(m.styles.err.Render(err.Error()))

			// forget about loader because we now know it doesn't work
			m.loader = ""
		}
	} else if m.testcard {
		drawTestcard(m.gpu.Vram)
	}

	fmt.Println(m.styles.monitor.Render("monitor reset"))
	fmt.Println(m.styles.video.Render(m.gpu.DrawInfo().String()))

	m.render()
}

func (m *monitor) loadDump(filename string) error {
	d, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	err = m.gpu.Vram.SetData(d)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	logger.Logf(logger.Allow, "monitor", "%d bytes of VRAM loaded from %s", len(d), filename)

	return nil
}

func (m *monitor) saveDump(filename string) error {
	err := os.WriteFile(filename, m.gpu.Vram.Data(), 0644)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// decode runs one pass over the current view, making sure the target canvas
// matches the pass dimensions first. a resolution change is caught here,
// before any work is issued, because the decode itself has no way of
// noticing a mismatch
func (m *monitor) decode() *render.Canvas {
	if m.viewVram {
		info := render.VramViewInfo()
		if m.vramCanvas == nil {
			m.vramCanvas = render.NewCanvas(info.Width, info.Height)
		}
		render.Decode(m.gpu.Vram.Units(), info, m.vramCanvas)
		return m.vramCanvas
	}

	info := m.gpu.DrawInfo()
	if m.canvas == nil || m.canvas.Width() != info.Width || m.canvas.Height() != info.Height {
		m.canvas = render.NewCanvas(info.Width, info.Height)
	}
	render.Decode(m.gpu.Vram.Units(), info, m.canvas)
	return m.canvas
}

// render one frame and offer it to the gui. the frame is dropped if the gui
// is not ready for it
func (m *monitor) render() {
	canvas := m.decode()
	select {
	case m.g.SetImage <- canvas.Image():
	default:
	}
}

func (m *monitor) setState(state gui.State) {
	select {
	case m.g.State <- state:
	default:
	}
}

// handle a single input event from the gui window. the boolean return value
// indicates that the pause state should toggle
func (m *monitor) userInput(inp io.Input) bool {
	// key releases carry no meaning for the monitor
	if inp.Release {
		return false
	}

	start := m.gpu.DisplayStart()

	switch inp.Action {
	case io.OriginLeft:
		m.gpu.SetDisplayStart(start.X-1, start.Y)
	case io.OriginUp:
		m.gpu.SetDisplayStart(start.X, start.Y-1)
	case io.OriginRight:
		m.gpu.SetDisplayStart(start.X+1, start.Y)
	case io.OriginDown:
		m.gpu.SetDisplayStart(start.X, start.Y+1)
	case io.ToggleVramView:
		m.viewVram = !m.viewVram
	case io.Screenshot:
		err := m.screenshot(uniqueFilename("spillestation"))
		if err != nil {
			fmt.Println(m.styles.err.Render(err.Error()))
		}
	case io.TogglePause:
		return true
	}

	m.render()

	return false
}

// run decodes and presents frames continuously until interrupted. the send
// to the gui blocks, so the pass rate is set by how quickly the window
// consumes frames.
//
// returns true if quit signal has been received
func (m *monitor) run() bool {
	fmt.Println(m.styles.monitor.Render("rendering continuously"))

	m.setState(gui.StateRunning)
	defer m.setState(gui.StatePaused)

	for {
		canvas := m.decode()

		select {
		case <-m.sig:
			return false
		case <-m.guiQuit:
			return true
		case inp := <-m.g.UserInput:
			if m.userInput(inp) {
				return false
			}
		case m.g.SetImage <- canvas.Image():
		}
	}
}

// step runs a single decode pass and presents the result
func (m *monitor) step() {
	m.render()
	fmt.Println(m.styles.video.Render(m.gpu.DrawInfo().String()))
}

func (m *monitor) prompt() string {
	info := m.gpu.DrawInfo()
	if m.viewVram {
		return fmt.Sprintf("[vram %dx%d]", gpu.WidthWords, gpu.HeightWords)
	}
	return fmt.Sprintf("[%d,%d %dx%d]", info.X, info.Y, info.Width, info.Height)
}

func (m *monitor) loop() {
	for {
		fmt.Printf("%s> ", m.prompt())

		var cmd []string

		select {
		case input := <-m.input:
			if input.err != nil {
				fmt.Println(m.styles.err.Render(input.err.Error()))
				return
			}
			cmd = strings.Fields(input.s)
			if len(cmd) == 0 {
				cmd = []string{"STEP"}
			}
		case <-m.sig:
			fmt.Print("\r")
			return
		case <-m.guiQuit:
			fmt.Print("\n")
			return
		case inp := <-m.g.UserInput:
			fmt.Print("\n")
			if m.userInput(inp) {
				if m.run() {
					return
				}
			}
			continue // for loop
		}

		if m.commands(cmd) {
			return
		}
	}
}

const programName = "spillestation"

func Launch(guiQuit chan bool, g *gui.GUI, args []string) error {
	var res string
	var testcard bool
	var oneshot string
	var echo bool
	var profile bool

	flgs := flag.NewFlagSet(programName, flag.ExitOnError)
	flgs.StringVar(&res, "res", "320x240", "resolution of the display area")
	flgs.BoolVar(&testcard, "testcard", false, "fill VRAM with the test card on reset")
	flgs.StringVar(&oneshot, "screenshot", "", "render a single pass to the named PNG file and exit")
	flgs.BoolVar(&echo, "log", false, "echo log entries to stderr as they arrive")
	flgs.BoolVar(&profile, "profile", false, "create CPU profile for the decode stage")
	err := flgs.Parse(args)
	if err != nil {
		return err
	}
	args = flgs.Args()

	if echo {
		logger.SetEcho(os.Stderr, true)
	}

	m := &monitor{
		guiQuit:  guiQuit,
		g:        g,
		sig:      make(chan os.Signal, 1),
		input:    make(chan input, 1),
		gpu:      gpu.Create(),
		testcard: testcard,
		styles:   newStyles(),
	}

	hres, vres, err := parseResolution(res)
	if err != nil {
		return err
	}
	err = m.gpu.SetResolution(hres, vres)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		m.loader = args[0]
	} else if len(args) > 1 {
		return fmt.Errorf("too many arguments to monitor")
	}

	signal.Notify(m.sig, syscall.SIGINT)

	go func() {
		r := bufio.NewReader(os.Stdin)
		b := make([]byte, 256)
		for {
			n, err := r.Read(b)
			select {
			case m.input <- input{
				s:   strings.TrimSpace(string(b[:n])),
				err: err,
			}:
			default:
			}
		}
	}()

	m.reset()
	m.setState(gui.StatePaused)

	if profile {
		f, err := os.Create("cpu.profile")
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer func() {
			err := f.Close()
			if err != nil {
				logger.Log(logger.Allow, "performance", err)
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	// a oneshot screenshot does one pass and saves it without ever entering
	// the interactive loop
	if oneshot != "" {
		return m.screenshot(oneshot)
	}

	m.loop()

	return nil
}
