package render_test

import (
	"testing"

	"github.com/SebastianRueClausen/spillestation/render"
	"github.com/SebastianRueClausen/spillestation/test"
)

func TestCanvasGeometry(t *testing.T) {
	c := render.NewCanvas(320, 240)
	test.ExpectEquality(t, c.Width(), 320)
	test.ExpectEquality(t, c.Height(), 240)
	test.ExpectEquality(t, len(c.Pix()), 320*240)
}

func TestCanvasSetAt(t *testing.T) {
	c := render.NewCanvas(4, 4)

	col := render.Color{R: 0.5, G: 0.25, B: 0.125, A: 1}
	c.Set(3, 2, col)
	test.ExpectEquality(t, c.At(3, 2), col)

	// neighbours untouched
	test.ExpectEquality(t, c.At(2, 2), render.Color{})
	test.ExpectEquality(t, c.At(3, 1), render.Color{})
}

// quantization to 8bit happens only at the image edge and rounds to
// nearest. values produced by the decode kernel map back to the exact bytes
// the kernel started from
func TestCanvasImageQuantization(t *testing.T) {
	c := render.NewCanvas(4, 1)
	c.Set(0, 0, render.Color{R: 0, G: 1, B: 248.0 / 255.0, A: 1})
	c.Set(1, 0, render.Color{R: 136.0 / 255.0, G: 32.0 / 255.0, B: 160.0 / 255.0, A: 1})
	c.Set(2, 0, render.Color{R: -0.5, G: 1.5, B: 0.5, A: 1})
	c.Set(3, 0, render.Color{R: 1.0 / 255.0, G: 254.0 / 255.0, B: 0.25, A: 1})

	img := c.Image()

	p := img.RGBAAt(0, 0)
	test.ExpectEquality(t, p.R, 0)
	test.ExpectEquality(t, p.G, 255)
	test.ExpectEquality(t, p.B, 248)
	test.ExpectEquality(t, p.A, 255)

	p = img.RGBAAt(1, 0)
	test.ExpectEquality(t, p.R, 136)
	test.ExpectEquality(t, p.G, 32)
	test.ExpectEquality(t, p.B, 160)

	// out of range channels clamp instead of wrapping
	p = img.RGBAAt(2, 0)
	test.ExpectEquality(t, p.R, 0)
	test.ExpectEquality(t, p.G, 255)
	test.ExpectEquality(t, p.B, 128)

	p = img.RGBAAt(3, 0)
	test.ExpectEquality(t, p.R, 1)
	test.ExpectEquality(t, p.G, 254)
	test.ExpectEquality(t, p.B, 64)
}
