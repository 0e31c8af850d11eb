// Package export writes frames as SVG documents and scripted runs as JSON
// or CSV.
package export

import (
	"fmt"
	"html"
	"math"
	"os"
	"strings"

	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/geom"
)

// Glyph advance and line height as fractions of the font size.
const (
	advance    = 0.55
	lineHeight = 1.2
)

// SVG is a Surface that records drawing calls as SVG elements.
type SVG struct {
	W, H float64

	body   strings.Builder
	clips  int
	inClip bool
}

func NewSVG(w, h float64) *SVG {
	return &SVG{W: w, H: h}
}

func fill(c config.Color) string {
	s := fmt.Sprintf(`fill="#%02x%02x%02x"`, c.R, c.G, c.B)
	if c.A < 255 {
		s += fmt.Sprintf(` fill-opacity="%.3f"`, float64(c.A)/255)
	}
	return s
}

func (s *SVG) Clear(c config.Color) {
	s.body.Reset()
	s.clips = 0
	s.inClip = false
	fmt.Fprintf(&s.body, "<rect width=\"100%%\" height=\"100%%\" %s/>\n", fill(c))
}

func (s *SVG) Rect(r geom.Rect, c config.Color) {
	if c.A == 0 {
		return
	}
	fmt.Fprintf(&s.body, "<rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" %s/>\n", r.X, r.Y, r.W, r.H, fill(c))
}

func (s *SVG) Circle(center geom.Vec, radius float64, c config.Color) {
	if c.A == 0 || radius <= 0 {
		return
	}
	fmt.Fprintf(&s.body, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" %s/>\n", center.X, center.Y, radius, fill(c))
}

// Text centres each line on pos and rotates the block about it.
func (s *SVG) Text(str string, pos geom.Vec, size, rotation float64, c config.Color) {
	if c.A == 0 || str == "" {
		return
	}
	lines := strings.Split(str, "\n")
	top := pos.Y - float64(len(lines)-1)*size*lineHeight/2
	fmt.Fprintf(&s.body, "<text font-family=\"sans-serif\" font-size=\"%.1f\" text-anchor=\"middle\" dominant-baseline=\"central\" %s", size, fill(c))
	if rotation != 0 {
		fmt.Fprintf(&s.body, " transform=\"rotate(%.2f %.1f %.1f)\"", rotation*180/math.Pi, pos.X, pos.Y)
	}
	s.body.WriteString(">")
	for i, l := range lines {
		fmt.Fprintf(&s.body, "<tspan x=\"%.1f\" y=\"%.1f\">%s</tspan>", pos.X, top+float64(i)*size*lineHeight, html.EscapeString(l))
	}
	s.body.WriteString("</text>\n")
}

// MeasureText estimates the extent of str; SVG has no font metrics until
// it is rendered.
func (s *SVG) MeasureText(str string, size float64) geom.Vec {
	lines := strings.Split(str, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	return geom.V(float64(w)*size*advance, float64(len(lines))*size*lineHeight)
}

func (s *SVG) Clip(r geom.Rect) {
	s.Unclip()
	s.clips++
	fmt.Fprintf(&s.body, "<clipPath id=\"clip%d\"><rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\"/></clipPath>\n<g clip-path=\"url(#clip%d)\">\n",
		s.clips, r.X, r.Y, r.W, r.H, s.clips)
	s.inClip = true
}

func (s *SVG) Unclip() {
	if s.inClip {
		s.body.WriteString("</g>\n")
		s.inClip = false
	}
}

// String returns the complete document.
func (s *SVG) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, s.W, s.H, s.W, s.H)
	sb.WriteString(s.body.String())
	if s.inClip {
		sb.WriteString("</g>\n")
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteFile saves the document to path.
func (s *SVG) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(s.String()), 0o644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
