package render

import (
	"context"
	"io"
	"log"
	"math/rand"
	"strings"
	"testing"

	"github.com/san-kum/folio/internal/arena"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/geom"
	"github.com/san-kum/folio/internal/mobile"
	"github.com/san-kum/folio/internal/projects"
	"github.com/san-kum/folio/internal/session"
)

func init() { log.SetOutput(io.Discard) }

type op struct {
	kind string
	text string
	c    config.Color
}

type recorder struct {
	ops   []op
	clips int
}

func (r *recorder) Clear(c config.Color)             { r.ops = append(r.ops, op{kind: "clear", c: c}) }
func (r *recorder) Rect(_ geom.Rect, c config.Color) { r.ops = append(r.ops, op{kind: "rect", c: c}) }
func (r *recorder) Circle(_ geom.Vec, _ float64, c config.Color) {
	r.ops = append(r.ops, op{kind: "circle", c: c})
}
func (r *recorder) Text(s string, _ geom.Vec, _, _ float64, c config.Color) {
	r.ops = append(r.ops, op{kind: "text", text: s, c: c})
}
func (r *recorder) MeasureText(s string, size float64) geom.Vec {
	return geom.V(float64(len([]rune(s)))*size*0.6, size)
}
func (r *recorder) Clip(geom.Rect) { r.clips++ }
func (r *recorder) Unclip()        { r.clips-- }

func (r *recorder) count(kind string, c config.Color) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind && o.c == c {
			n++
		}
	}
	return n
}

func (r *recorder) texts() string {
	var b strings.Builder
	for _, o := range r.ops {
		if o.kind == "text" {
			b.WriteString(o.text)
		}
	}
	return b.String()
}

func newSession() *session.Session {
	cfg := config.DefaultConfig()
	cfg.Phrase = "Hi\nAda"
	cfg.Highlight = "Ada"
	return session.New(cfg, projects.Default(), nil, arena.RefW, arena.RefH)
}

func TestPaintArena(t *testing.T) {
	s := newSession()
	sc := config.SchemeClassic
	spot := s.Layout().Center().Add(geom.V(0, 200))
	s.OnPointerMove(spot)
	s.OnTick(0)
	s.OnPointerDown(spot)
	s.OnTick(0.5)

	r := &recorder{}
	Paint(r, s.Frame(0.5), sc)

	if r.ops[0].kind != "clear" || r.ops[0].c != sc.Background {
		t.Fatalf("frame must start with a clear, got %+v", r.ops[0])
	}
	if r.clips != 0 {
		t.Errorf("unbalanced clip calls: %d", r.clips)
	}
	if n := r.count("circle", sc.DefaultBall); n != 1 {
		t.Errorf("expected one letter ball, got %d", n)
	}
	if n := r.count("circle", sc.ArrowCircle); n != 1 {
		t.Errorf("expected the indicator, got %d", n)
	}
	if !strings.Contains(r.texts(), "Tidewater") {
		t.Error("project list not drawn")
	}
	if n := r.count("rect", sc.Cover.Alpha(1)); n != 0 {
		t.Error("cover drawn without a gallery")
	}
}

func TestPaintGallery(t *testing.T) {
	s := newSession()
	sc := config.SchemeNight
	sc.Cover = config.RGB(1, 2, 3)
	s.OnProjectSelected("tidewater")
	s.OnTick(1)
	s.OnTick(2)

	r := &recorder{}
	Paint(r, s.Frame(2), sc)

	if n := r.count("circle", sc.ArrowCircle); n != 0 {
		t.Error("arena drawn under an opaque cover")
	}
	if n := r.count("rect", sc.Cover); n != 1 {
		t.Errorf("expected an opaque cover, got %d", n)
	}
	if !strings.Contains(r.texts(), "Logotype on signage") {
		t.Error("media captions missing")
	}
	if !strings.Contains(r.texts(), "×") {
		t.Error("close control missing")
	}
}

func TestPaintPhraseDimsUnspawned(t *testing.T) {
	s := newSession()
	sc := config.SchemeClassic
	s.OnTick(0)

	r := &recorder{}
	Paint(r, s.Frame(0), sc)

	dim := sc.PhraseText.Alpha(0.2)
	if n := r.count("text", dim); n != 2 {
		t.Errorf("expected 2 dim plain characters, got %d", n)
	}
	if n := r.count("text", sc.HighlightBall.Alpha(0.2)); n != 3 {
		t.Errorf("expected 3 dim highlighted characters, got %d", n)
	}
}

func TestPaintMobileStages(t *testing.T) {
	sc := config.SchemePaper
	cfg := config.DefaultConfig().Mobile
	a := mobile.New(cfg, 390, 844, rand.New(rand.NewSource(3)))

	r := &recorder{}
	PaintMobile(r, a.Frame(), sc)
	if r.ops[0].c != sc.PromptBackground || !strings.Contains(r.texts(), cfg.PromptText) {
		t.Errorf("gate not drawn: %+v", r.ops)
	}

	a.RequestPermission(context.Background(), mobile.PermitterFunc(func(context.Context) (bool, error) {
		return true, nil
	}))
	a.Tick(0)

	r = &recorder{}
	PaintMobile(r, a.Frame(), sc)
	if r.ops[0].c != sc.MobileBackground {
		t.Errorf("expected mobile background, got %+v", r.ops[0])
	}
	if n := r.count("circle", sc.MobileBall); n != 1 {
		t.Errorf("expected the first released letter, got %d", n)
	}
}
