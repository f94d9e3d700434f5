// Package gpu implements the display side of the console's GPU: the video
// memory and the registers that select which part of it the display decodes.
// There is no command stream and no rasterizer. The host mutates VRAM and
// the registers directly and the render package reads them.
package gpu

import (
	"fmt"
)

// HorizontalRes is the width of the display area in pixels. The values are
// the horizontal resolutions the console can be programmed to output
type HorizontalRes int

const (
	HRes256 HorizontalRes = 256
	HRes320 HorizontalRes = 320
	HRes368 HorizontalRes = 368
	HRes512 HorizontalRes = 512
	HRes640 HorizontalRes = 640
)

func (h HorizontalRes) Width() int {
	return int(h)
}

func (h HorizontalRes) Valid() bool {
	switch h {
	case HRes256, HRes320, HRes368, HRes512, HRes640:
		return true
	}
	return false
}

// VerticalRes is the height of the display area in pixels
type VerticalRes int

const (
	VRes240 VerticalRes = 240
	VRes480 VerticalRes = 480
)

func (v VerticalRes) Height() int {
	return int(v)
}

func (v VerticalRes) Valid() bool {
	return v == VRes240 || v == VRes480
}

// DisplayStart is the VRAM word coordinate of the top left corner of the
// display area
type DisplayStart struct {
	X uint32
	Y uint32
}

// DrawInfo is the snapshot of display state a decode pass works from. It is
// read once at the start of a pass so a pass never sees a half-updated
// display configuration
type DrawInfo struct {
	X      uint32
	Y      uint32
	Width  int
	Height int
}

func (d DrawInfo) String() string {
	return fmt.Sprintf("origin (%d, %d), resolution %dx%d", d.X, d.Y, d.Width, d.Height)
}

// Gpu gathers VRAM and the display registers
type Gpu struct {
	Vram *Vram

	start DisplayStart
	hres  HorizontalRes
	vres  VerticalRes
}

func Create() *Gpu {
	return &Gpu{
		Vram: NewVram(),
		hres: HRes320,
		vres: VRes240,
	}
}

// SetDisplayStart sets the top left corner of the display area. The
// coordinates are masked to the register widths, x to 10 bits and y to 9
// bits, the same as the display area command on the real console
func (g *Gpu) SetDisplayStart(x uint32, y uint32) {
	g.start = DisplayStart{
		X: x & 0x3ff,
		Y: y & 0x1ff,
	}
}

func (g *Gpu) DisplayStart() DisplayStart {
	return g.start
}

func (g *Gpu) SetResolution(h HorizontalRes, v VerticalRes) error {
	if !h.Valid() {
		return fmt.Errorf("gpu: %d is not a valid horizontal resolution", int(h))
	}
	if !v.Valid() {
		return fmt.Errorf("gpu: %d is not a valid vertical resolution", int(v))
	}
	g.hres = h
	g.vres = v
	return nil
}

func (g *Gpu) Resolution() (HorizontalRes, VerticalRes) {
	return g.hres, g.vres
}

// DrawInfo snapshots the current display state for a decode pass
func (g *Gpu) DrawInfo() DrawInfo {
	return DrawInfo{
		X:      g.start.X,
		Y:      g.start.Y,
		Width:  g.hres.Width(),
		Height: g.vres.Height(),
	}
}
