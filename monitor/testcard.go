package monitor

import (
	"github.com/SebastianRueClausen/spillestation/hardware/gpu"
)

// packColor packs 8bit channels into a 16bit color word. the inverse of the
// decode stage's unpacking, meaning the low three bits of each channel are
// lost
func packColor(r uint8, g uint8, b uint8) uint16 {
	return uint16(r>>3) | uint16(g&0xf8)<<2 | uint16(b&0xf8)<<7
}

// the classic color bars, full intensity
var testcardBars = [8][3]uint8{
	{0xff, 0xff, 0xff},
	{0xff, 0xff, 0x00},
	{0x00, 0xff, 0xff},
	{0x00, 0xff, 0x00},
	{0xff, 0x00, 0xff},
	{0xff, 0x00, 0x00},
	{0x00, 0x00, 0xff},
	{0x00, 0x00, 0x00},
}

// drawTestcard fills the whole of VRAM with a test pattern: color bars over
// the top of the memory grid, a horizontal gradient ramp over the bottom
// quarter and a grid line every 64 words. the outermost words are drawn in
// white so that display origins beyond the edge of VRAM show up clearly as
// the border wrapping onto the other side of the screen
func drawTestcard(vram *gpu.Vram) {
	const gridStep = 64
	const rampStart = gpu.HeightWords * 3 / 4

	for y := range uint32(gpu.HeightWords) {
		for x := range uint32(gpu.WidthWords) {
			var r, g, b uint8

			switch {
			case x == 0 || x == gpu.WidthWords-1 || y == 0 || y == gpu.HeightWords-1:
				r, g, b = 0xff, 0xff, 0xff
			case x%gridStep == 0 || y%gridStep == 0:
				r, g, b = 0x40, 0x40, 0x40
			case y >= rampStart:
				v := uint8(x * 0xff / gpu.WidthWords)
				r, g, b = v, v, v
			default:
				bar := testcardBars[x*uint32(len(testcardBars))/gpu.WidthWords]
				r, g, b = bar[0], bar[1], bar[2]
			}

			vram.Store16(x, y, packColor(r, g, b))
		}
	}
}
