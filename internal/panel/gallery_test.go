package panel

import (
	"testing"

	"github.com/san-kum/folio/internal/geom"
	"github.com/san-kum/folio/internal/projects"
)

func media(aspects ...float64) []projects.Media {
	out := make([]projects.Media, len(aspects))
	for i, a := range aspects {
		out[i] = projects.Media{Aspect: a}
	}
	return out
}

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name  string
		media []projects.Media
		want  float64
	}{
		{"empty", nil, 0},
		{"single", media(0.5), 50},
		{"gaps between", media(1, 1, 0.5), 100 + 10 + 100 + 10 + 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentHeight(tt.media, 100, 10); got != tt.want {
				t.Errorf("ContentHeight = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestMaxScroll(t *testing.T) {
	area := geom.Rect{W: 100, H: 150}
	if got := MaxScroll(media(1), area, 10); got != 0 {
		t.Errorf("short content should not scroll, got %f", got)
	}
	if got := MaxScroll(media(1, 1), area, 10); got != 60 {
		t.Errorf("MaxScroll = %f, want 60", got)
	}
}

func TestStackCullsAndShifts(t *testing.T) {
	area := geom.Rect{X: 10, Y: 20, W: 100, H: 150}
	tiles := Stack(media(1, 1, 1), area, 10, 0)
	if len(tiles) != 2 {
		t.Fatalf("expected 2 visible tiles, got %d", len(tiles))
	}
	if tiles[1].Rect.Y != 130 {
		t.Errorf("second tile y = %f, want 130", tiles[1].Rect.Y)
	}

	tiles = Stack(media(1, 1, 1), area, 10, -150)
	if len(tiles) != 2 || tiles[0].Rect.Y != -20 {
		t.Errorf("scrolled stack = %+v", tiles)
	}
}
