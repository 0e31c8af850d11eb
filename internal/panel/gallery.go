package panel

import (
	"github.com/san-kum/folio/internal/geom"
	"github.com/san-kum/folio/internal/projects"
)

// Tile is one media item placed in the gallery area.
type Tile struct {
	Media projects.Media
	Rect  geom.Rect
}

// ContentHeight is the height of media stacked at width with gap between
// items.
func ContentHeight(media []projects.Media, width, gap float64) float64 {
	h := 0.0
	for i, m := range media {
		if i > 0 {
			h += gap
		}
		h += width * m.Aspect
	}
	return h
}

// MaxScroll is how far the content can scroll inside area.
func MaxScroll(media []projects.Media, area geom.Rect, gap float64) float64 {
	return max(0, ContentHeight(media, area.W, gap)-area.H)
}

// Stack lays media out top to bottom in area, shifted vertically by dy.
// Tiles entirely outside area are dropped.
func Stack(media []projects.Media, area geom.Rect, gap, dy float64) []Tile {
	tiles := make([]Tile, 0, len(media))
	y := area.Y + dy
	for _, m := range media {
		h := area.W * m.Aspect
		r := geom.Rect{X: area.X, Y: y, W: area.W, H: h}
		y += h + gap
		if r.Y+r.H < area.Y || r.Y > area.Y+area.H {
			continue
		}
		tiles = append(tiles, Tile{Media: m, Rect: r})
	}
	return tiles
}
