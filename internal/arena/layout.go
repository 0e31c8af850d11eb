// Package arena derives the page layout from the window size: a reference
// canvas is scaled uniformly to fit, and the two panels are placed on it.
package arena

import (
	"math"

	"github.com/san-kum/folio/internal/geom"
)

// Reference canvas, in design pixels.
const (
	RefW          = 1728.0
	RefH          = 1117.0
	LeftPanelW    = 500.0
	LeftPanelH    = 770.0
	RightPanelW   = 770.0
	RightPanelH   = 770.0
	Gap           = 32.0
	MarginX       = 213.0
	MarginY       = 174.0
	PhrasePadding = 20.0
	LineHeight    = 30.0
	PhraseSize    = 20.0
)

// Layout is the page geometry for one window size.
type Layout struct {
	WindowW, WindowH float64
	Scale            float64
	Container        geom.Rect
	Left             geom.Rect
	Right            geom.Rect
	PhraseOrigin     geom.Vec
}

// Compute fits the reference canvas into a w×h window.
func Compute(w, h float64) Layout {
	s := math.Min(w/RefW, h/RefH)
	cw, ch := RefW*s, RefH*s
	container := geom.Rect{X: (w - cw) / 2, Y: (h - ch) / 2, W: cw, H: ch}

	left := geom.Rect{
		X: container.X + MarginX*s,
		Y: container.Y + MarginY*s,
		W: LeftPanelW * s,
		H: LeftPanelH * s,
	}
	right := geom.Rect{
		X: left.X + left.W + Gap*s,
		Y: container.Y + MarginY*s,
		W: RightPanelW * s,
		H: RightPanelH * s,
	}

	return Layout{
		WindowW:      w,
		WindowH:      h,
		Scale:        s,
		Container:    container,
		Left:         left,
		Right:        right,
		PhraseOrigin: geom.V(right.X+PhrasePadding*s, right.Y+PhrasePadding*s),
	}
}

// Arena is the interactive rectangle letters live in.
func (l Layout) Arena() geom.Rect { return l.Left }

// Center of the arena; the indicator's pivot.
func (l Layout) Center() geom.Vec { return l.Left.Center() }

// Contains reports whether p is inside the arena.
func (l Layout) Contains(p geom.Vec) bool { return l.Left.Contains(p) }

// Remap carries p from its position in l to the same relative position in
// next's arena.
func (l Layout) Remap(p geom.Vec, next Layout) geom.Vec {
	if l.Left.W == 0 || l.Left.H == 0 {
		return next.Center()
	}
	u := (p.X - l.Left.X) / l.Left.W
	v := (p.Y - l.Left.Y) / l.Left.H
	return geom.V(next.Left.X+u*next.Left.W, next.Left.Y+v*next.Left.H)
}

const (
	RowHeight   = 40.0
	CloseSize   = 32.0
	CloseInset  = 12.0
	ListPadding = 20.0
)

// ProjectRows lays n list rows along the bottom of the right panel, first
// row on top.
func (l Layout) ProjectRows(n int) []geom.Rect {
	s := l.Scale
	rows := make([]geom.Rect, n)
	bottom := l.Right.Y + l.Right.H - ListPadding*s
	for i := range rows {
		rows[i] = geom.Rect{
			X: l.Right.X + ListPadding*s,
			Y: bottom - float64(n-i)*RowHeight*s,
			W: l.Right.W - 2*ListPadding*s,
			H: RowHeight * s,
		}
	}
	return rows
}

// CloseButton is the gallery's close control in the arena's top-right corner.
func (l Layout) CloseButton() geom.Rect {
	s := l.Scale
	return geom.Rect{
		X: l.Left.X + l.Left.W - (CloseSize+CloseInset)*s,
		Y: l.Left.Y + CloseInset*s,
		W: CloseSize * s,
		H: CloseSize * s,
	}
}
