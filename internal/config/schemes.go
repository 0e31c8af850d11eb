package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA colour.
type Color struct {
	R, G, B, A uint8
}

func Gray(v uint8) Color      { return Color{v, v, v, 255} }
func RGB(r, g, b uint8) Color { return Color{r, g, b, 255} }
func (c Color) Alpha(a float64) Color {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}

// Scheme is one named colour table for the whole page.
type Scheme struct {
	Name string

	Background    Color
	LeftPanel     Color
	RightPanel    Color
	PhraseText    Color
	ProjectText   Color
	ProjectActive Color

	HighlightBall Color
	HighlightText Color
	DefaultBall   Color
	DefaultText   Color
	ArrowCircle   Color
	ArrowGlyph    Color
	GhostBall     Color
	GhostText     Color
	Outline       Color

	Cover        Color
	MediaFill    Color
	MediaCaption Color

	PromptBackground Color
	PromptBall       Color
	PromptText       Color
	MobileBackground Color
	MobileBall       Color
	MobileText       Color
	CenterBall       Color
	CenterText       Color
}

var (
	SchemeClassic = Scheme{
		Name:          "classic",
		Background:    Gray(230),
		LeftPanel:     RGB(255, 255, 0),
		RightPanel:    Gray(255),
		PhraseText:    Gray(0),
		ProjectText:   Gray(90),
		ProjectActive: Gray(0),

		HighlightBall: RGB(70, 200, 70),
		HighlightText: Gray(255),
		DefaultBall:   Gray(170),
		DefaultText:   Gray(0),
		ArrowCircle:   Gray(80),
		ArrowGlyph:    Gray(255),
		GhostBall:     Color{127, 127, 127, 50},
		GhostText:     Color{0, 0, 0, 50},
		Outline:       Gray(170),

		Cover:        Gray(255),
		MediaFill:    Gray(215),
		MediaCaption: Gray(40),

		PromptBackground: Gray(80),
		PromptBall:       Gray(255),
		PromptText:       Gray(0),
		MobileBackground: RGB(255, 235, 59),
		MobileBall:       Gray(170),
		MobileText:       Gray(0),
		CenterBall:       Gray(255),
		CenterText:       Gray(0),
	}

	SchemeNight = Scheme{
		Name:          "night",
		Background:    Gray(12),
		LeftPanel:     RGB(28, 30, 48),
		RightPanel:    Gray(20),
		PhraseText:    Gray(235),
		ProjectText:   Gray(140),
		ProjectActive: Gray(255),

		HighlightBall: RGB(255, 120, 80),
		HighlightText: Gray(10),
		DefaultBall:   Gray(70),
		DefaultText:   Gray(235),
		ArrowCircle:   Gray(200),
		ArrowGlyph:    Gray(10),
		GhostBall:     Color{200, 200, 200, 40},
		GhostText:     Color{255, 255, 255, 60},
		Outline:       Gray(60),

		Cover:        Gray(20),
		MediaFill:    Gray(45),
		MediaCaption: Gray(200),

		PromptBackground: Gray(10),
		PromptBall:       Gray(235),
		PromptText:       Gray(10),
		MobileBackground: RGB(28, 30, 48),
		MobileBall:       Gray(70),
		MobileText:       Gray(235),
		CenterBall:       Gray(235),
		CenterText:       Gray(10),
	}

	SchemePaper = Scheme{
		Name:          "paper",
		Background:    RGB(244, 240, 230),
		LeftPanel:     RGB(232, 225, 210),
		RightPanel:    RGB(250, 248, 242),
		PhraseText:    RGB(40, 36, 30),
		ProjectText:   RGB(120, 110, 95),
		ProjectActive: RGB(40, 36, 30),

		HighlightBall: RGB(190, 60, 45),
		HighlightText: RGB(250, 248, 242),
		DefaultBall:   RGB(205, 196, 178),
		DefaultText:   RGB(40, 36, 30),
		ArrowCircle:   RGB(40, 36, 30),
		ArrowGlyph:    RGB(250, 248, 242),
		GhostBall:     Color{120, 110, 95, 50},
		GhostText:     Color{40, 36, 30, 60},
		Outline:       RGB(205, 196, 178),

		Cover:        RGB(250, 248, 242),
		MediaFill:    RGB(225, 218, 200),
		MediaCaption: RGB(40, 36, 30),

		PromptBackground: RGB(40, 36, 30),
		PromptBall:       RGB(250, 248, 242),
		PromptText:       RGB(40, 36, 30),
		MobileBackground: RGB(232, 225, 210),
		MobileBall:       RGB(205, 196, 178),
		MobileText:       RGB(40, 36, 30),
		CenterBall:       RGB(250, 248, 242),
		CenterText:       RGB(40, 36, 30),
	}
)

// Schemes is the closed set of colour schemes, in index order.
var Schemes = []Scheme{SchemeClassic, SchemeNight, SchemePaper}

// LookupScheme resolves a scheme by name or by index into Schemes. The empty
// string selects the first scheme.
func LookupScheme(key string) (Scheme, error) {
	if key == "" {
		return Schemes[0], nil
	}
	if i, err := strconv.Atoi(key); err == nil {
		if i < 0 || i >= len(Schemes) {
			return Scheme{}, fmt.Errorf("index %d: %w", i, ErrUnknownScheme)
		}
		return Schemes[i], nil
	}
	for _, s := range Schemes {
		if strings.EqualFold(s.Name, key) {
			return s, nil
		}
	}
	return Scheme{}, fmt.Errorf("%q: %w", key, ErrUnknownScheme)
}

// SchemeNames lists scheme names in index order.
func SchemeNames() []string {
	names := make([]string, len(Schemes))
	for i, s := range Schemes {
		names[i] = s.Name
	}
	return names
}
