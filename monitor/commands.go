package monitor

import (
	"fmt"
	"os"
	"strings"

	"github.com/SebastianRueClausen/spillestation/hardware/gpu"
	"github.com/SebastianRueClausen/spillestation/logger"
	"github.com/SebastianRueClausen/spillestation/render"
)

// returns true if monitor is to quit
func (m *monitor) commands(cmd []string) bool {
	if len(cmd) == 0 {
		return false
	}

	switch strings.ToUpper(cmd[0]) {
	case "R", "RUN":
		return m.run()

	case "ST", "STEP":
		m.step()

	case "RESET":
		m.reset()

	case "ORIGIN":
		switch len(cmd) {
		case 1:
			start := m.gpu.DisplayStart()
			fmt.Println(m.styles.video.Render(
				fmt.Sprintf("display origin (%d, %d)", start.X, start.Y),
			))
		case 3:
			x, err := parseValue(cmd[1], 32)
			if err != nil {
				fmt.Println(m.styles.err.Render(fmt.Sprintf("origin: %s", err.Error())))
				break // switch
			}
			y, err := parseValue(cmd[2], 32)
			if err != nil {
				fmt.Println(m.styles.err.Render(fmt.Sprintf("origin: %s", err.Error())))
				break // switch
			}
			m.gpu.SetDisplayStart(uint32(x), uint32(y))
			m.render()
		default:
			fmt.Println(m.styles.err.Render(
				"ORIGIN requires an x and a y coordinate, or no arguments",
			))
		}

	case "RES":
		if len(cmd) != 2 {
			fmt.Println(m.styles.err.Render(
				"RES requires a resolution of the form WxH, eg. 320x240",
			))
			break // switch
		}

		hres, vres, err := parseResolution(cmd[1])
		if err != nil {
			fmt.Println(m.styles.err.Render(err.Error()))
			break // switch
		}

		err = m.gpu.SetResolution(hres, vres)
		if err != nil {
			fmt.Println(m.styles.err.Render(err.Error()))
			break // switch
		}

		m.render()
		fmt.Println(m.styles.video.Render(m.gpu.DrawInfo().String()))

	case "INFO":
		fmt.Println(m.styles.video.Render(m.gpu.DrawInfo().String()))

	case "POKE":
		if len(cmd) != 4 {
			fmt.Println(m.styles.err.Render(
				"POKE requires an x and a y coordinate and a 16bit value",
			))
			break // switch
		}

		x, y, err := parseCoords(cmd[1], cmd[2])
		if err != nil {
			fmt.Println(m.styles.err.Render(fmt.Sprintf("poke: %s", err.Error())))
			break // switch
		}

		v, err := parseValue(cmd[3], 16)
		if err != nil {
			fmt.Println(m.styles.err.Render(fmt.Sprintf("poke: %s", err.Error())))
			break // switch
		}

		m.gpu.Vram.Store16(x, y, uint16(v))
		m.render()

	case "PEEK":
		var addr uint32

		switch len(cmd) {
		case 2:
			a, err := parseValue(cmd[1], 32)
			if err != nil {
				fmt.Println(m.styles.err.Render(fmt.Sprintf("peek: %s", err.Error())))
				return false
			}
			addr = uint32(a) & gpu.AddrMask
		case 3:
			x, y, err := parseCoords(cmd[1], cmd[2])
			if err != nil {
				fmt.Println(m.styles.err.Render(fmt.Sprintf("peek: %s", err.Error())))
				return false
			}
			addr = gpu.WordAddress(x, y)
		default:
			fmt.Println(m.styles.err.Render(
				"PEEK requires a word address or an x and a y coordinate",
			))
			return false
		}

		fmt.Println(m.styles.mem.Render(
			fmt.Sprintf("$%05x = %04x", addr, m.gpu.Vram.Word(addr)),
		))

	case "DUMP":
		if len(cmd) != 3 {
			fmt.Println(m.styles.err.Render(
				"DUMP requires a 'from' and a 'to' word address",
			))
			break // switch
		}

		from, err := parseValue(cmd[1], 32)
		if err != nil {
			fmt.Println(m.styles.err.Render(fmt.Sprintf("dump: %s", err.Error())))
			break // switch
		}

		to, err := parseValue(cmd[2], 32)
		if err != nil {
			fmt.Println(m.styles.err.Render(fmt.Sprintf("dump: %s", err.Error())))
			break // switch
		}

		if to < from {
			fmt.Println(m.styles.err.Render(
				"dump: the 'to' address is less than the 'from' address",
			))
			break // switch
		}

		var column int
		for a := from; a <= to; a++ {
			if column == 0 {
				fmt.Printf("%05x", uint32(a)&gpu.AddrMask)
			}
			fmt.Printf(" %04x", m.gpu.Vram.Word(uint32(a)))
			column++
			if column > 7 {
				fmt.Printf("\n")
				column = 0
			}
		}
		if column != 0 {
			fmt.Printf("\n")
		}

	case "LOAD":
		if len(cmd) != 2 {
			fmt.Println(m.styles.err.Render(
				"LOAD requires a filename",
			))
			break // switch
		}

		err := m.loadDump(cmd[1])
		if err != nil {
			fmt.Println(m.styles.err.Render(err.Error()))
			break // switch
		}

		m.loader = cmd[1]
		m.render()
		fmt.Println(m.styles.file.Render(
			fmt.Sprintf("VRAM loaded from %s", cmd[1]),
		))

	case "SAVE":
		if len(cmd) != 2 {
			fmt.Println(m.styles.err.Render(
				"SAVE requires a filename",
			))
			break // switch
		}

		err := m.saveDump(cmd[1])
		if err != nil {
			fmt.Println(m.styles.err.Render(err.Error()))
			break // switch
		}

		fmt.Println(m.styles.file.Render(
			fmt.Sprintf("VRAM saved to %s", cmd[1]),
		))

	case "TESTCARD":
		drawTestcard(m.gpu.Vram)
		m.render()

	case "CLEAR":
		m.gpu.Vram.Clear()
		m.render()

	case "SCREENSHOT":
		var filename string
		var scaled bool

		args := cmd[1:]
		if len(args) > 0 && strings.ToUpper(args[0]) == "SCALED" {
			scaled = true
			args = args[1:]
		}

		switch len(args) {
		case 0:
			filename = uniqueFilename("spillestation")
		case 1:
			filename = args[0]
		default:
			fmt.Println(m.styles.err.Render(
				"too many arguments to SCREENSHOT command",
			))
			return false
		}

		var err error
		if scaled {
			err = m.screenshotScaled(filename)
		} else {
			err = m.screenshot(filename)
		}
		if err != nil {
			fmt.Println(m.styles.err.Render(err.Error()))
			break // switch
		}

		fmt.Println(m.styles.file.Render(
			fmt.Sprintf("screenshot saved to %s", filename),
		))

	case "VRAM":
		if len(cmd) == 1 {
			m.viewVram = !m.viewVram
			m.render()
			break // switch
		}

		if strings.ToUpper(cmd[1]) == "EXPORT" {
			filename := uniqueFilename("spillestation_vram")
			if len(cmd) > 2 {
				filename = cmd[2]
			}

			err := m.exportVramView(filename)
			if err != nil {
				fmt.Println(m.styles.err.Render(err.Error()))
				break // switch
			}

			fmt.Println(m.styles.file.Render(
				fmt.Sprintf("VRAM view saved to %s", filename),
			))
		} else {
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("unrecognised argument for VRAM command: %s", cmd[1]),
			))
		}

	case "PIXEL":
		if len(cmd) != 3 {
			fmt.Println(m.styles.err.Render(
				"PIXEL requires an x and a y coordinate",
			))
			break // switch
		}

		px, py, err := parseCoords(cmd[1], cmd[2])
		if err != nil {
			fmt.Println(m.styles.err.Render(fmt.Sprintf("pixel: %s", err.Error())))
			break // switch
		}

		info := m.gpu.DrawInfo()
		col := render.DecodePixel(m.gpu.Vram.Units(), info, px, py)
		addr := gpu.WordAddress(info.X+px, info.Y+py)

		fmt.Println(m.styles.video.Render(
			fmt.Sprintf("pixel (%d, %d): $%05x = %04x -> rgba(%.4f, %.4f, %.4f, %.4f)",
				px, py, addr, m.gpu.Vram.Word(addr), col.R, col.G, col.B, col.A),
		))

	case "LOG":
		logger.Tail(os.Stdout, -1)

	case "QUIT":
		return true

	default:
		fmt.Println(m.styles.err.Render(
			fmt.Sprintf("unrecognised command: %s", strings.Join(cmd, " ")),
		))
	}

	return false
}
