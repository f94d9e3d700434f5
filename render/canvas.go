// Package render implements the two fixed stages that bring the console's
// video memory to the screen. The decode stage converts the visible part of
// VRAM into an RGBA canvas, one kernel evaluation per destination pixel. The
// presentation boundary consumes the canvas as a sampled texture: a fit
// transform, a nearest sampler and a textured quad drawn as a single large
// triangle. The software rendition of that boundary lives here too so the
// whole pipeline can run and be tested without a GPU.
package render

import (
	"image"
)

// Color is an RGBA color with float32 channels in the range [0, 1]
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

// Canvas is the output surface of a decode pass: a fixed size grid of Color
// pixels. A pass writes every pixel exactly once. Channels stay as float32
// for the whole pipeline, quantization to 8bit happens only at the
// presentation or export edge
type Canvas struct {
	width  int
	height int
	pix    []Color
}

func NewCanvas(width int, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

func (c *Canvas) Width() int {
	return c.width
}

func (c *Canvas) Height() int {
	return c.height
}

func (c *Canvas) Set(x int, y int, col Color) {
	c.pix[y*c.width+x] = col
}

func (c *Canvas) At(x int, y int) Color {
	return c.pix[y*c.width+x]
}

// Pix is the raw pixel slice in row major order. Used by digests and tests
func (c *Canvas) Pix() []Color {
	return c.pix
}

// quantize an individual channel to 8 bits
func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Image converts the canvas to an 8bit RGBA image for presentation or
// export
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for i, p := range c.pix {
		img.Pix[i*4+0] = quantize(p.R)
		img.Pix[i*4+1] = quantize(p.G)
		img.Pix[i*4+2] = quantize(p.B)
		img.Pix[i*4+3] = quantize(p.A)
	}
	return img
}
