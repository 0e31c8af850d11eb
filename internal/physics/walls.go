package physics

import "github.com/san-kum/folio/internal/geom"

// BuildWalls encloses r with four static slabs of the given thickness and
// adds them to w. The slabs overlap at the corners so nothing escapes
// diagonally.
func BuildWalls(w World, r geom.Rect, thick float64) []Handle {
	c := r.Center()
	halfW, halfH := r.W/2, r.H/2
	walls := []Handle{
		w.CreateStaticRect(geom.V(c.X, c.Y-halfH-thick/2), r.W+2*thick, thick),
		w.CreateStaticRect(geom.V(c.X, c.Y+halfH+thick/2), r.W+2*thick, thick),
		w.CreateStaticRect(geom.V(c.X-halfW-thick/2, c.Y), thick, r.H+2*thick),
		w.CreateStaticRect(geom.V(c.X+halfW+thick/2, c.Y), thick, r.H+2*thick),
	}
	for _, h := range walls {
		w.Add(h)
	}
	return walls
}

// RemoveAll takes every handle out of w.
func RemoveAll(w World, hs []Handle) {
	for _, h := range hs {
		w.Remove(h)
	}
}
