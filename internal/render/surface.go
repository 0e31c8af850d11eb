// Package render paints session and mobile frames onto any Surface, so the
// raylib window and the terminal viewer share one scene description.
package render

import (
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/geom"
)

// Surface is the drawing contract of a host. Text is centred on pos and
// rotated about it by rotation radians.
type Surface interface {
	Clear(c config.Color)
	Rect(r geom.Rect, c config.Color)
	Circle(center geom.Vec, radius float64, c config.Color)
	Text(s string, pos geom.Vec, size, rotation float64, c config.Color)
	MeasureText(s string, size float64) geom.Vec
	Clip(r geom.Rect)
	Unclip()
}
