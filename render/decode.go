package render

import (
	"runtime"
	"sync"

	"github.com/SebastianRueClausen/spillestation/hardware/gpu"
)

// DecodePixel is the decode kernel: the color of a single destination pixel
// given the storage unit view of VRAM and a display snapshot. The function
// is total. Addresses wrap rather than going out of range and every 16bit
// word decodes to a color.
//
// The color words are not the usual 5:5:5 arrangement. Each channel takes
// its five bits from the word with a shift and a mask and places them in the
// top five bits of an 8bit channel, so the low three bits of each channel
// are always zero and full intensity is 248/255 rather than 1.0. This is
// what the display hardware does and it must not be corrected here
func DecodePixel(units []uint32, info gpu.DrawInfo, px uint32, py uint32) Color {
	addr := (info.X + px + (info.Y+py)*gpu.WidthWords) & gpu.AddrMask
	unit := units[(addr>>1)&(gpu.NumUnits-1)]
	c := (unit >> (16 * (addr & 1))) & 0xffff

	return Color{
		R: float32((c<<3)&0xf8) / 255.0,
		G: float32((c>>2)&0xf8) / 255.0,
		B: float32((c>>7)&0xf8) / 255.0,
		A: 1.0,
	}
}

// Decode runs one complete pass: one kernel evaluation for every pixel of
// the canvas, reading VRAM at the display origin carried by the snapshot.
//
// The kernel is pure and every pixel is independent, so the pass is divided
// into row ranges across a fixed pool of workers. Each worker writes only
// its own rows and reads nothing another worker writes. The resulting
// canvas does not depend on how the rows were scheduled.
//
// The units slice must be the full storage unit view of VRAM and must not
// be mutated until Decode returns
func Decode(units []uint32, info gpu.DrawInfo, canvas *Canvas) {
	height := canvas.Height()

	workers := min(runtime.NumCPU(), height)
	if workers <= 1 {
		decodeRows(units, info, canvas, 0, height)
		return
	}

	var wg sync.WaitGroup
	rowsPerWorker := (height + workers - 1) / workers
	for w := range workers {
		start := w * rowsPerWorker
		end := min(start+rowsPerWorker, height)
		if start >= end {
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			decodeRows(units, info, canvas, start, end)
		}()
	}
	wg.Wait()
}

func decodeRows(units []uint32, info gpu.DrawInfo, canvas *Canvas, start int, end int) {
	for py := start; py < end; py++ {
		for px := range canvas.Width() {
			canvas.Set(px, py, DecodePixel(units, info, uint32(px), uint32(py)))
		}
	}
}

// VramViewInfo is the display snapshot for a pass that decodes the whole of
// VRAM rather than the display area. Used with a canvas the size of the
// VRAM grid it gives the raw view the monitor's vram commands export
func VramViewInfo() gpu.DrawInfo {
	return gpu.DrawInfo{
		X:      0,
		Y:      0,
		Width:  gpu.WidthWords,
		Height: gpu.HeightWords,
	}
}
