package session

import (
	"github.com/san-kum/folio/internal/arena"
	"github.com/san-kum/folio/internal/geom"
	"github.com/san-kum/folio/internal/indicator"
	"github.com/san-kum/folio/internal/panel"
)

// Frame is everything a renderer needs to draw one desktop frame.
type Frame struct {
	Now    float64
	Layout arena.Layout

	Letters     []Letter
	LetterAlpha float64
	Phrase      []PhraseChar

	Indicator IndicatorView
	Ghost     GhostView

	Panel    panel.Mode
	Layers   panel.Layers
	Tiles    []panel.Tile
	Outgoing []panel.Tile
	Close    geom.Rect
	Title    string

	Projects []ProjectRow
}

type Letter struct {
	Seq         int
	Glyph       string
	Pos         geom.Vec
	Radius      float64
	Angle       float64
	Highlighted bool
}

type PhraseChar struct {
	Rune        rune
	Alpha       float64
	Highlighted bool
}

type IndicatorView struct {
	Pivot  geom.Vec
	Radius float64
	Angle  float64
	Mode   indicator.Mode
	Glyph  string
}

type GhostView struct {
	Pos    geom.Vec
	Radius float64
	Scale  float64
	Glyph  string
}

type ProjectRow struct {
	ID     string
	Title  string
	Year   string
	Rect   geom.Rect
	Active bool
}

// Frame snapshots the session for drawing at now.
func (s *Session) Frame(now float64) Frame {
	sc := s.layout.Scale
	f := Frame{
		Now:         now,
		Layout:      s.layout,
		LetterAlpha: s.letters.Alpha(now),
		Panel:       s.panel.Mode(),
		Layers:      s.panel.Layers(now),
		Close:       s.layout.CloseButton(),
		Indicator: IndicatorView{
			Pivot:  s.indicator.Pivot,
			Radius: s.indicator.Radius,
			Angle:  s.indicator.Angle(),
			Mode:   s.indicator.Mode(),
			Glyph:  s.cfg.Indicator.Glyph,
		},
		Ghost: GhostView{
			Pos:    s.ghost.position(),
			Radius: s.cfg.Ghost.DrawRadius * sc,
			Scale:  s.ghost.scale,
		},
	}
	f.Ghost.Glyph, _ = s.seq.Next()

	for _, b := range s.letters.Bodies() {
		f.Letters = append(f.Letters, Letter{
			Seq:         b.Seq,
			Glyph:       b.Glyph,
			Pos:         s.world.Position(b.Handle),
			Radius:      b.Radius,
			Angle:       s.world.Angle(b.Handle),
			Highlighted: b.Highlighted,
		})
	}

	phrase := s.seq.Phrase()
	f.Phrase = make([]PhraseChar, len(phrase))
	for i, r := range phrase {
		f.Phrase[i] = PhraseChar{Rune: r, Alpha: s.seq.Alpha(i, now), Highlighted: s.highlight[i]}
	}

	area := s.galleryArea()
	gap := s.cfg.Gallery.ItemGap * sc
	l := f.Layers
	f.Tiles = panel.Stack(l.Active, area, gap, l.ActiveOffset*sc-l.Scroll)
	f.Outgoing = panel.Stack(l.Outgoing, area, gap, l.OutgoingOffset*sc-l.Scroll)

	active, hasActive := s.panel.Active()
	if incoming, ok := s.panel.Incoming(); ok {
		active, hasActive = incoming, true
	}
	if hasActive {
		f.Title = active.Title
	}

	rows := s.layout.ProjectRows(s.catalog.Len())
	f.Projects = make([]ProjectRow, len(rows))
	for i, r := range rows {
		p, _ := s.catalog.At(i)
		f.Projects[i] = ProjectRow{
			ID:     p.ID,
			Title:  p.Title,
			Year:   p.Year,
			Rect:   r,
			Active: hasActive && p.ID == active.ID,
		}
	}
	return f
}
