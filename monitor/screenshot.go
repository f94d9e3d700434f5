package monitor

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"golang.org/x/image/draw"

	"github.com/SebastianRueClausen/spillestation/render"
)

// the screen the scaled screenshot is letterboxed into
const (
	scaledScreenWidth  = 1920
	scaledScreenHeight = 1080
)

func uniqueFilename(prefix string) string {
	return fmt.Sprintf("%s_%s.png", prefix, time.Now().Format("20060102_150405"))
}

func savePNG(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	defer f.Close()

	err = png.Encode(f, img)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	return nil
}

// screenshot saves the current view at a 1:1 pixel scale
func (m *monitor) screenshot(filename string) error {
	return savePNG(filename, m.decode().Image())
}

// screenshotScaled saves the current view the way the presentation pass
// would place it on a screen: integer scaled with the fit transform,
// centered, letterboxed with black. scaling is nearest neighbour, the only
// filtering the pipeline uses
func (m *monitor) screenshotScaled(filename string) error {
	canvas := m.decode()
	src := canvas.Image()

	texture := render.Vec2{X: float32(canvas.Width()), Y: float32(canvas.Height())}
	screen := render.Vec2{X: scaledScreenWidth, Y: scaledScreenHeight}
	_, scissor := render.FitTransform(texture, screen)

	target := image.NewRGBA(image.Rect(0, 0, scaledScreenWidth, scaledScreenHeight))
	for i := 3; i < len(target.Pix); i += 4 {
		target.Pix[i] = 0xff
	}

	r := image.Rect(scissor.X, scissor.Y, scissor.X+scissor.Width, scissor.Y+scissor.Height)
	draw.NearestNeighbor.Scale(target, r, src, src.Bounds(), draw.Src, nil)

	return savePNG(filename, target)
}

// exportVramView saves a decode of the whole of VRAM, regardless of the
// current view and display registers
func (m *monitor) exportVramView(filename string) error {
	info := render.VramViewInfo()
	if m.vramCanvas == nil {
		m.vramCanvas = render.NewCanvas(info.Width, info.Height)
	}
	render.Decode(m.gpu.Vram.Units(), info, m.vramCanvas)

	return savePNG(filename, m.vramCanvas.Image())
}
