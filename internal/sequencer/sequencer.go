// Package sequencer turns clicks in the arena into the next letter of the
// phrase and starts the round fade once the phrase is spelled out.
package sequencer

import (
	"strings"
	"unicode"

	"github.com/san-kum/folio/internal/ease"
	"github.com/san-kum/folio/internal/geom"
	"github.com/san-kum/folio/internal/letters"
)

// Dim and lit opacities of a phrase character before and after its letter
// has been spawned.
const (
	DimAlpha = 0.2
	LitAlpha = 1.0
)

type Sequencer struct {
	phrase  []rune
	letters *letters.Manager
	fadeIn  float64
	spawned []float64
	lit     []bool
}

// New binds a phrase to the manager that will hold its letters. fadeIn is
// the phrase character fade-in length in seconds.
func New(phrase string, m *letters.Manager, fadeIn float64) *Sequencer {
	runes := []rune(phrase)
	return &Sequencer{
		phrase:  runes,
		letters: m,
		fadeIn:  fadeIn,
		spawned: make([]float64, len(runes)),
		lit:     make([]bool, len(runes)),
	}
}

func (s *Sequencer) Phrase() []rune { return s.phrase }
func (s *Sequencer) Len() int       { return len(s.phrase) }

// Glyph is the display form of the phrase element at i.
func (s *Sequencer) Glyph(i int) string {
	r := s.phrase[i]
	if unicode.IsSpace(r) {
		return ""
	}
	return strings.ToUpper(string(r))
}

// Next returns the glyph the next accepted activation would spawn.
func (s *Sequencer) Next() (string, bool) {
	c := s.letters.Cursor()
	if c >= len(s.phrase) || s.letters.Fading() {
		return "", false
	}
	return s.Glyph(c), true
}

// HandleActivation spawns the next letter at pos. It reports whether the
// activation was accepted; rejected activations leave no trace.
func (s *Sequencer) HandleActivation(pos geom.Vec, now float64) bool {
	if !s.letters.CanSpawn(pos) {
		return false
	}
	i := s.letters.Cursor()
	if _, ok := s.letters.Spawn(pos, s.Glyph(i), now); !ok {
		return false
	}
	s.spawned[i] = now
	s.lit[i] = true

	if s.letters.Cursor() == len(s.phrase) {
		s.letters.BeginRoundFade(now)
	}
	return true
}

// Reset dims the whole phrase for a new round.
func (s *Sequencer) Reset() {
	for i := range s.lit {
		s.lit[i] = false
		s.spawned[i] = 0
	}
}

// Alpha is the opacity of phrase character i at now.
func (s *Sequencer) Alpha(i int, now float64) float64 {
	if i < 0 || i >= len(s.lit) || !s.lit[i] {
		return DimAlpha
	}
	t := ease.Progress(now, s.spawned[i], s.fadeIn)
	if t >= 1 {
		return LitAlpha
	}
	return ease.Lerp(DimAlpha, LitAlpha, t)
}

// HighlightIndices finds sub in text as a case-insensitive subsequence,
// matching greedily from the left, and returns the matched positions. A
// partial match returns the positions found so far.
func HighlightIndices(text, sub string) []int {
	want := []rune(strings.ToLower(sub))
	var out []int
	if len(want) == 0 {
		return out
	}
	k := 0
	for i, r := range []rune(text) {
		if k >= len(want) {
			break
		}
		if unicode.ToLower(r) == want[k] {
			out = append(out, i)
			k++
		}
	}
	return out
}
