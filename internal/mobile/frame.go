package mobile

import "github.com/san-kum/folio/internal/geom"

// Frame is a drawable snapshot of the mobile arena.
type Frame struct {
	W, H     float64
	Stage    Stage
	Balls    []BallView
	Center   geom.Vec
	Radius   float64
	Rotation float64
	Text     string
	TextSize float64
	Glyph    float64
}

type BallView struct {
	Glyph  string
	Pos    geom.Vec
	Radius float64
	Angle  float64
}

func (a *Arena) Frame() Frame {
	f := Frame{
		W:        a.w,
		H:        a.h,
		Stage:    a.stage,
		Center:   a.Center(),
		Radius:   a.cfg.CenterRadius,
		Rotation: a.rotation,
		Text:     a.cfg.PromptText,
		TextSize: a.cfg.TextSize,
		Glyph:    a.cfg.LetterSize,
	}
	if a.stage == ShowTextBall {
		f.Text = a.cfg.CenterText
	}
	for _, b := range a.balls {
		f.Balls = append(f.Balls, BallView{
			Glyph:  b.Glyph,
			Pos:    a.world.Position(b.Handle),
			Radius: b.Radius,
			Angle:  a.world.Angle(b.Handle),
		})
	}
	return f
}
