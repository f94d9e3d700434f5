package render

import (
	"image"
	"math"
)

// AddressMode selects what a sampler does with texture coordinates outside
// the [0, 1] range
type AddressMode int

const (
	ClampToEdge AddressMode = iota
	Repeat
)

func (m AddressMode) String() string {
	switch m {
	case ClampToEdge:
		return "clamp"
	case Repeat:
		return "repeat"
	}
	return "unknown"
}

// Sampler picks texels from a canvas. Filtering is always nearest, the only
// filtering the display pipeline uses
type Sampler struct {
	Mode AddressMode
}

func wrapTexel(i int, size int, mode AddressMode) int {
	if mode == Repeat {
		i %= size
		if i < 0 {
			i += size
		}
		return i
	}
	return min(max(i, 0), size-1)
}

// Sample returns the texel nearest to the texture coordinate (u, v), with
// coordinates outside [0, 1] handled by the sampler's address mode
func (s Sampler) Sample(c *Canvas, u float32, v float32) Color {
	x := wrapTexel(int(math.Floor(float64(u)*float64(c.Width()))), c.Width(), s.Mode)
	y := wrapTexel(int(math.Floor(float64(v)*float64(c.Height()))), c.Height(), s.Mode)
	return c.At(x, y)
}

// vertex of the presentation quad: a clip space position and a texture
// coordinate
type vertex struct {
	pos Vec2
	tex Vec2
}

// one large triangle instead of two small ones. clipped to the unit quad it
// covers the whole screen, and the texture coordinates are arranged so the
// visible part spans [0, 1]
var quadVertices = [3]vertex{
	{pos: Vec2{X: -1, Y: -1}, tex: Vec2{X: 0, Y: 0}},
	{pos: Vec2{X: 3, Y: -1}, tex: Vec2{X: 2, Y: 0}},
	{pos: Vec2{X: -1, Y: 3}, tex: Vec2{X: 0, Y: 2}},
}

// Draw rasterizes the presentation triangle into the target image: vertex
// positions transformed by the matrix, fragments sampled from the canvas,
// fragments outside the scissor rectangle discarded. The target is cleared
// to opaque black first, so letterbox bars come out black.
//
// This is the software rendition of the fixed presentation pass. The
// windowed path achieves the same result with the GPU, this one exists for
// headless use and for tests
func Draw(target *image.RGBA, canvas *Canvas, transform Mat4, scissor Scissor, sampler Sampler) {
	bounds := target.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// clear to opaque black
	for i := 0; i < len(target.Pix); i += 4 {
		target.Pix[i+0] = 0
		target.Pix[i+1] = 0
		target.Pix[i+2] = 0
		target.Pix[i+3] = 0xff
	}

	// transform the triangle once
	var pos [3]Vec2
	for i, vtx := range quadVertices {
		pos[i] = transform.Apply(vtx.pos)
	}

	// twice the signed area of the transformed triangle. zero means the
	// transform collapsed the triangle and there is nothing to draw
	den := (pos[1].X-pos[0].X)*(pos[2].Y-pos[0].Y) - (pos[2].X-pos[0].X)*(pos[1].Y-pos[0].Y)
	if den == 0 {
		return
	}

	for sy := range height {
		for sx := range width {
			if !scissor.Contains(sx, sy) {
				continue
			}

			// clip space position of the pixel center. screen y counts
			// down, clip space y counts up
			p := Vec2{
				X: (float32(sx)+0.5)/float32(width)*2 - 1,
				Y: 1 - (float32(sy)+0.5)/float32(height)*2,
			}

			// barycentric weights of the pixel center
			w1 := ((p.X-pos[0].X)*(pos[2].Y-pos[0].Y) - (pos[2].X-pos[0].X)*(p.Y-pos[0].Y)) / den
			w2 := ((pos[1].X-pos[0].X)*(p.Y-pos[0].Y) - (p.X-pos[0].X)*(pos[1].Y-pos[0].Y)) / den
			w0 := 1 - w1 - w2
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			u := w0*quadVertices[0].tex.X + w1*quadVertices[1].tex.X + w2*quadVertices[2].tex.X
			v := w0*quadVertices[0].tex.Y + w1*quadVertices[1].tex.Y + w2*quadVertices[2].tex.Y

			col := sampler.Sample(canvas, u, v)
			i := target.PixOffset(bounds.Min.X+sx, bounds.Min.Y+sy)
			target.Pix[i+0] = quantize(col.R)
			target.Pix[i+1] = quantize(col.G)
			target.Pix[i+2] = quantize(col.B)
			target.Pix[i+3] = quantize(col.A)
		}
	}
}
