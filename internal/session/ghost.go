package session

import (
	"github.com/san-kum/folio/internal/ease"
	"github.com/san-kum/folio/internal/geom"
	"github.com/san-kum/folio/internal/physics"
)

// ghost is the preview ball that trails the pointer by offset. Its body is
// kinematic so it can knock letters around without being pushed itself.
type ghost struct {
	handle physics.Handle
	radius float64
	offset geom.Vec
	rate   float64
	scale  float64
	last   geom.Vec
}

func newGhost(w physics.World, at geom.Vec, radius, restitution float64, offset geom.Vec, rate float64) *ghost {
	h := w.CreateCircle(at.Sub(offset), radius, physics.Options{
		Restitution: restitution,
		Kinematic:   true,
	})
	w.Add(h)
	return &ghost{
		handle: h,
		radius: radius,
		offset: offset,
		rate:   rate,
		last:   at.Sub(offset),
	}
}

// update moves the body after the pointer, carrying the pointer's motion as
// velocity, and eases the visual scale toward 1 while the ball is inside
// area and shown.
func (g *ghost) update(w physics.World, pointer geom.Vec, area geom.Rect, shown bool) {
	p := pointer.Sub(g.offset)
	w.SetPosition(g.handle, p)
	w.SetVelocity(g.handle, p.Sub(g.last))
	g.last = p

	target := 0.0
	if shown && area.Contains(p) {
		target = 1
	}
	g.scale = ease.Lerp(g.scale, target, g.rate)
}

func (g *ghost) position() geom.Vec { return g.last }

func (g *ghost) remove(w physics.World) { w.Remove(g.handle) }
