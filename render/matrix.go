package render

import (
	"math"
)

type Vec2 struct {
	X float32
	Y float32
}

// Mat4 is a 4x4 column major matrix. Mat4[c][r] is row r of column c
type Mat4 [4][4]float32

// Identity matrix
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Apply transforms the point (v.X, v.Y, 0, 1)
func (m Mat4) Apply(v Vec2) Vec2 {
	return Vec2{
		X: m[0][0]*v.X + m[1][0]*v.Y + m[3][0],
		Y: m[0][1]*v.X + m[1][1]*v.Y + m[3][1],
	}
}

// Scissor is the rectangle of screen pixels a draw is allowed to touch.
// Fragments outside it are discarded after sampling
type Scissor struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (s Scissor) Contains(x int, y int) bool {
	return x >= s.X && x < s.X+s.Width && y >= s.Y && y < s.Y+s.Height
}

// FitScale is the integer scale factor the presentation uses to fit the
// texture to the screen. It never drops below 1, even when the screen is
// smaller than the texture
func FitScale(texture Vec2, screen Vec2) float32 {
	return float32(math.Floor(float64(max(min(screen.X/texture.X, screen.Y/texture.Y), 1))))
}

// FitTransform generates the vertex transform and scissor rectangle that
// place the texture on the screen: integer scale to fit, centered, with a
// vertical flip because the canvas counts rows downward while clip space
// counts upward. It depends on both the texture and screen dimensions so it
// must be regenerated when either changes.
//
// When the texture is larger than the screen the scale clamps to 1, the
// translation anchors the top left corner on screen and the scissor
// rectangle clips the rest
func FitTransform(texture Vec2, screen Vec2) (Mat4, Scissor) {
	scale := FitScale(texture, screen)

	// scaled texture dimensions
	scaled := Vec2{X: texture.X * scale, Y: texture.Y * scale}

	// scaling of the vertices
	s := Vec2{X: scaled.X / screen.X, Y: scaled.Y / screen.Y}

	// translation of the vertices. the min/max keep the texture from going
	// off screen
	t := Vec2{
		X: max(texture.X/screen.X-1, 0),
		Y: min(1-texture.Y/screen.Y, 0),
	}

	transform := Mat4{
		{s.X, 0, 0, 0},
		{0, -s.Y, 0, 0},
		{0, 0, 1, 0},
		{t.X, t.Y, 0, 1},
	}

	// the clipping rectangle is the scaled texture centered on screen,
	// limited to the screen itself
	clipW := min(scaled.X, screen.X)
	clipH := min(scaled.Y, screen.Y)
	scissor := Scissor{
		X:      int((screen.X - clipW) * 0.5),
		Y:      int((screen.Y - clipH) * 0.5),
		Width:  int(clipW),
		Height: int(clipH),
	}

	return transform, scissor
}
