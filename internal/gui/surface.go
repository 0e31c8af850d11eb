package gui

import (
	"math"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/geom"
)

const (
	textSpacing = 1
	lineSpacing = 1.2
)

// surface draws render calls with raylib.
type surface struct {
	font rl.Font
}

func toColor(c config.Color) rl.Color { return rl.NewColor(c.R, c.G, c.B, c.A) }
func toVec(v geom.Vec) rl.Vector2     { return rl.NewVector2(float32(v.X), float32(v.Y)) }

func (s *surface) Clear(c config.Color) { rl.ClearBackground(toColor(c)) }

func (s *surface) Rect(r geom.Rect, c config.Color) {
	rl.DrawRectangleRec(rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H)), toColor(c))
}

func (s *surface) Circle(center geom.Vec, radius float64, c config.Color) {
	rl.DrawCircleV(toVec(center), float32(radius), toColor(c))
}

// Text centres every line on pos and rotates the block about it.
func (s *surface) Text(str string, pos geom.Vec, size, rotation float64, c config.Color) {
	lines := strings.Split(str, "\n")
	lineH := size * lineSpacing
	total := lineH * float64(len(lines))
	sin, cos := math.Sincos(rotation)
	deg := float32(rotation * 180 / math.Pi)

	for i, line := range lines {
		if line == "" {
			continue
		}
		dy := (float64(i)+0.5)*lineH - total/2
		at := geom.V(pos.X-dy*sin, pos.Y+dy*cos)
		m := rl.MeasureTextEx(s.font, line, float32(size), textSpacing)
		origin := rl.NewVector2(m.X/2, m.Y/2)
		rl.DrawTextPro(s.font, line, toVec(at), origin, deg, float32(size), textSpacing, toColor(c))
	}
}

func (s *surface) MeasureText(str string, size float64) geom.Vec {
	m := rl.MeasureTextEx(s.font, str, float32(size), textSpacing)
	return geom.V(float64(m.X), float64(m.Y))
}

func (s *surface) Clip(r geom.Rect) {
	rl.BeginScissorMode(int32(r.X), int32(r.Y), int32(math.Ceil(r.W)), int32(math.Ceil(r.H)))
}

func (s *surface) Unclip() { rl.EndScissorMode() }
