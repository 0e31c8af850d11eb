package sequencer

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/san-kum/folio/internal/geom"
	"github.com/san-kum/folio/internal/letters"
	"github.com/san-kum/folio/internal/physics"
)

func newSequencer(phrase string) (*Sequencer, *letters.Manager) {
	w := physics.NewEngine()
	m := letters.New(w, nil, rand.New(rand.NewSource(1)), letters.Settings{
		RadiusMin:    24,
		RadiusMax:    24,
		Speed:        7,
		AngleMin:     -120,
		AngleMax:     -70,
		FadeDuration: 0.1,
		Material:     physics.DefaultOptions(),
	}, len([]rune(phrase)), HighlightIndices(phrase, "ab"))
	m.SetBounds(geom.Rect{W: 500, H: 770}, 1)
	return New(phrase, m, 0.15), m
}

func TestCursorMonotonic(t *testing.T) {
	s, m := newSequencer("abc")
	in := geom.V(100, 100)

	for i := 0; i < 3; i++ {
		if !s.HandleActivation(in, float64(i)) {
			t.Fatalf("activation %d rejected", i)
		}
		if m.Cursor() != i+1 {
			t.Errorf("cursor %d after %d activations", m.Cursor(), i+1)
		}
	}
	if s.HandleActivation(in, 3) {
		t.Error("activation after exhaustion accepted")
	}
	if m.Cursor() != 3 {
		t.Errorf("cursor moved on rejection: %d", m.Cursor())
	}
}

func TestScenarioRoundLifecycle(t *testing.T) {
	s, m := newSequencer("abc")

	for i := 0; i < 3; i++ {
		s.HandleActivation(geom.V(100, 100+float64(i)*60), 1)
	}
	bodies := m.Bodies()
	for i, b := range bodies {
		if b.Seq != i {
			t.Errorf("body %d has seq %d", i, b.Seq)
		}
	}
	if bodies[0].Glyph != "A" || bodies[2].Glyph != "C" {
		t.Errorf("glyphs not uppercased in order: %q %q", bodies[0].Glyph, bodies[2].Glyph)
	}
	if !m.Fading() {
		t.Fatal("third activation should start the fade")
	}

	if m.Tick(1.1) {
		s.Reset()
	}
	if len(m.Bodies()) != 0 || m.Cursor() != 0 {
		t.Errorf("after fade: bodies=%d cursor=%d", len(m.Bodies()), m.Cursor())
	}
	if s.Alpha(0, 2) != DimAlpha {
		t.Error("phrase not dimmed after reset")
	}
}

func TestRejectsOutsideArena(t *testing.T) {
	s, m := newSequencer("abc")
	if s.HandleActivation(geom.V(600, 100), 0) {
		t.Error("activation outside arena accepted")
	}
	if m.Cursor() != 0 || s.Alpha(0, 1) != DimAlpha {
		t.Error("rejected activation left state behind")
	}
}

func TestRejectsDuringFade(t *testing.T) {
	s, m := newSequencer("a")
	s.HandleActivation(geom.V(10, 10), 0)
	if !m.Fading() {
		t.Fatal("expected fade")
	}
	if s.HandleActivation(geom.V(10, 10), 0.05) {
		t.Error("activation during fade accepted")
	}
	if _, ok := s.Next(); ok {
		t.Error("Next should report nothing while fading")
	}
}

func TestPhraseAlphaFadesIn(t *testing.T) {
	s, _ := newSequencer("ab")
	s.HandleActivation(geom.V(10, 10), 1)

	if got := s.Alpha(0, 1); got != DimAlpha {
		t.Errorf("alpha at spawn = %f", got)
	}
	if got := s.Alpha(0, 1.075); got <= DimAlpha || got >= LitAlpha {
		t.Errorf("alpha mid fade-in = %f", got)
	}
	if got := s.Alpha(0, 2); got != LitAlpha {
		t.Errorf("alpha after fade-in = %f", got)
	}
	if got := s.Alpha(1, 2); got != DimAlpha {
		t.Errorf("unspawned character alpha = %f", got)
	}
}

func TestGlyphs(t *testing.T) {
	s, _ := newSequencer("a b\nc")
	if g, _ := s.Next(); g != "A" {
		t.Errorf("Next = %q", g)
	}
	if s.Glyph(1) != "" || s.Glyph(3) != "" {
		t.Error("whitespace should have an empty glyph")
	}
	if s.Glyph(4) != "C" {
		t.Errorf("Glyph(4) = %q", s.Glyph(4))
	}
}

func TestHighlightIndices(t *testing.T) {
	tests := []struct {
		text, sub string
		want      []int
	}{
		{"Hey, I’m Ada Park, a", "AdaPark", []int{9, 10, 11, 13, 14, 15, 16}},
		{"abc", "AC", []int{0, 2}},
		{"abc", "xyz", nil},
		{"abc", "", nil},
		{"aXbX", "ab", []int{0, 2}},
	}

	for _, tt := range tests {
		got := HighlightIndices(tt.text, tt.sub)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("HighlightIndices(%q, %q) = %v, want %v", tt.text, tt.sub, got, tt.want)
		}
	}
}
