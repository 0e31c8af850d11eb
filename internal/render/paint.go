package render

import (
	"github.com/san-kum/folio/internal/arena"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/geom"
	"github.com/san-kum/folio/internal/mobile"
	"github.com/san-kum/folio/internal/panel"
	"github.com/san-kum/folio/internal/session"
)

const (
	ghostGlyphScale = 0.8 * 25.0 / 30.0
	minGhostScale   = 0.01
	rowTextSize     = 18.0
)

// Paint draws one desktop frame.
func Paint(s Surface, f session.Frame, sc config.Scheme) {
	l := f.Layout
	s.Clear(sc.Background)
	s.Rect(l.Left, sc.LeftPanel)
	s.Rect(l.Right, sc.RightPanel)

	s.Clip(l.Left)
	if f.Layers.Cover < 1 {
		paintArena(s, f, sc)
	}
	if f.Layers.Cover > 0 {
		s.Rect(l.Left, sc.Cover.Alpha(f.Layers.Cover))
		paintGallery(s, f, sc)
	}
	s.Unclip()

	paintPhrase(s, f, sc)
	paintProjects(s, f, sc)
}

func paintArena(s Surface, f session.Frame, sc config.Scheme) {
	for _, b := range f.Letters {
		ball, text := sc.DefaultBall, sc.DefaultText
		if b.Highlighted {
			ball, text = sc.HighlightBall, sc.HighlightText
		}
		s.Circle(b.Pos, b.Radius, ball.Alpha(f.LetterAlpha))
		if b.Glyph != "" {
			s.Text(b.Glyph, b.Pos, b.Radius, b.Angle, text.Alpha(f.LetterAlpha))
		}
	}

	ind := f.Indicator
	s.Circle(ind.Pivot, ind.Radius, sc.ArrowCircle)
	s.Text(ind.Glyph, ind.Pivot, ind.Radius, ind.Angle, sc.ArrowGlyph)

	g := f.Ghost
	if g.Scale < minGhostScale {
		return
	}
	r := g.Radius * g.Scale
	s.Circle(g.Pos, r, sc.GhostBall)
	if g.Glyph != "" {
		s.Text(g.Glyph, g.Pos, r*ghostGlyphScale, 0, sc.GhostText)
	}
}

func paintGallery(s Surface, f session.Frame, sc config.Scheme) {
	ly := f.Layers
	paintTiles(s, f.Outgoing, ly.OutgoingAlpha, f.Layout.Scale, sc)
	paintTiles(s, f.Tiles, ly.ActiveAlpha, f.Layout.Scale, sc)

	if f.Panel == panel.Gallery || f.Panel == panel.TransitioningBetweenProjects {
		c := f.Close
		s.Circle(c.Center(), c.W/2, sc.MediaFill)
		s.Text("×", c.Center(), c.H*0.8, 0, sc.MediaCaption)
	}
}

func paintTiles(s Surface, tiles []panel.Tile, alpha, scale float64, sc config.Scheme) {
	if alpha <= 0 {
		return
	}
	size := 14 * scale
	for _, t := range tiles {
		s.Rect(t.Rect, sc.MediaFill.Alpha(alpha))
		label := t.Media.Caption
		if t.Media.Kind == "video" {
			label = "▶ " + label
		}
		s.Text(label, t.Rect.Center(), size, 0, sc.MediaCaption.Alpha(alpha))
	}
}

// paintPhrase lays the phrase out character by character so each one can
// carry its own fade-in alpha.
func paintPhrase(s Surface, f session.Frame, sc config.Scheme) {
	l := f.Layout
	size := arena.PhraseSize * l.Scale
	line := arena.LineHeight * l.Scale
	origin := l.PhraseOrigin
	x, y := origin.X, origin.Y

	for _, c := range f.Phrase {
		if c.Rune == '\n' {
			x = origin.X
			y += line
			continue
		}
		str := string(c.Rune)
		m := s.MeasureText(str, size)
		col := sc.PhraseText
		if c.Highlighted {
			col = sc.HighlightBall
		}
		s.Text(str, geom.V(x+m.X/2, y+size/2), size, 0, col.Alpha(c.Alpha))
		x += m.X
	}
}

func paintProjects(s Surface, f session.Frame, sc config.Scheme) {
	size := rowTextSize * f.Layout.Scale
	for _, p := range f.Projects {
		col := sc.ProjectText
		if p.Active {
			col = sc.ProjectActive
		}
		r := p.Rect
		s.Rect(geom.Rect{X: r.X, Y: r.Y, W: r.W, H: 1}, sc.Outline)

		tw := s.MeasureText(p.Title, size)
		s.Text(p.Title, geom.V(r.X+tw.X/2, r.Y+r.H/2), size, 0, col)
		yw := s.MeasureText(p.Year, size)
		s.Text(p.Year, geom.V(r.X+r.W-yw.X/2, r.Y+r.H/2), size, 0, col)
	}
}

// PaintMobile draws one frame of the mobile variant.
func PaintMobile(s Surface, f mobile.Frame, sc config.Scheme) {
	if f.Stage == mobile.EnableMotion {
		s.Clear(sc.PromptBackground)
		s.Circle(f.Center, f.Radius, sc.PromptBall)
		s.Text(f.Text, f.Center, f.TextSize, 0, sc.PromptText)
		return
	}

	s.Clear(sc.MobileBackground)
	s.Circle(f.Center, f.Radius, sc.CenterBall)
	s.Text(f.Text, f.Center, f.TextSize, f.Rotation, sc.CenterText)
	for _, b := range f.Balls {
		s.Circle(b.Pos, b.Radius, sc.MobileBall)
		s.Text(b.Glyph, b.Pos, f.Glyph, b.Angle, sc.MobileText)
	}
}
