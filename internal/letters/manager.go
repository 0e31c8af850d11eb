// Package letters owns the letter bodies of the current round: it creates
// them in the physics world, fades the whole round out once the phrase is
// spelled, and retires them together.
package letters

import (
	"log"
	"math"
	"math/rand"

	"github.com/san-kum/folio/internal/ease"
	"github.com/san-kum/folio/internal/geom"
	"github.com/san-kum/folio/internal/indicator"
	"github.com/san-kum/folio/internal/physics"
)

// Body is one letter in the arena.
type Body struct {
	Seq         int
	Glyph       string
	Radius      float64
	Handle      physics.Handle
	Highlighted bool
}

// Tracker is told whenever the newest letter changes or the round is
// retired.
type Tracker interface {
	Retarget(t indicator.Target, now float64)
}

// Settings shape and launch new letters. Lengths are in reference pixels
// and speeds in px/step; both are multiplied by the arena scale. Angles are
// in degrees.
type Settings struct {
	RadiusMin float64
	RadiusMax float64
	Speed     float64
	AngleMin  float64
	AngleMax  float64
	// FadeDuration is the round fade-out length in seconds.
	FadeDuration float64
	Material     physics.Options
}

// Round is the state of one pass through the phrase.
type Round struct {
	Cursor    int
	Bodies    []*Body
	Fading    bool
	FadeStart float64
}

type Manager struct {
	world     physics.World
	tracker   Tracker
	rng       *rand.Rand
	settings  Settings
	length    int
	highlight map[int]bool
	held      bool
	heldAt    float64

	bounds geom.Rect
	scale  float64
	round  Round
	rounds int
}

// New creates a manager for a sequence of length n. highlight lists the
// sequence positions drawn in the highlight colours.
func New(world physics.World, tracker Tracker, rng *rand.Rand, s Settings, n int, highlight []int) *Manager {
	hl := make(map[int]bool, len(highlight))
	for _, i := range highlight {
		hl[i] = true
	}
	return &Manager{
		world:     world,
		tracker:   tracker,
		rng:       rng,
		settings:  s,
		length:    n,
		highlight: hl,
		scale:     1,
	}
}

// SetBounds updates the arena rectangle and scale used for new spawns.
func (m *Manager) SetBounds(r geom.Rect, scale float64) {
	m.bounds = r
	m.scale = scale
}

func (m *Manager) Cursor() int     { return m.round.Cursor }
func (m *Manager) Len() int        { return m.length }
func (m *Manager) Fading() bool    { return m.round.Fading }
func (m *Manager) Bodies() []*Body { return m.round.Bodies }
func (m *Manager) Rounds() int     { return m.rounds }
func (m *Manager) Exhausted() bool { return m.round.Cursor >= m.length }

// CanSpawn reports whether a spawn at pos would be accepted.
func (m *Manager) CanSpawn(pos geom.Vec) bool {
	return !m.round.Fading && m.round.Cursor < m.length && m.bounds.Contains(pos)
}

// Spawn creates the next letter at pos and hands it to the tracker. It
// returns false without side effects when the arena is fading, pos is out
// of bounds, or the sequence is exhausted.
func (m *Manager) Spawn(pos geom.Vec, glyph string, now float64) (*Body, bool) {
	if !m.CanSpawn(pos) {
		return nil, false
	}

	s := m.settings
	radius := (s.RadiusMin + m.rng.Float64()*(s.RadiusMax-s.RadiusMin)) * m.scale
	h := m.world.CreateCircle(pos, radius, s.Material)
	m.world.Add(h)

	deg := s.AngleMin + m.rng.Float64()*(s.AngleMax-s.AngleMin)
	m.world.SetVelocity(h, geom.Polar(s.Speed*m.scale, deg*math.Pi/180))

	b := &Body{
		Seq:         m.round.Cursor,
		Glyph:       glyph,
		Radius:      radius,
		Handle:      h,
		Highlighted: m.highlight[m.round.Cursor],
	}
	m.round.Bodies = append(m.round.Bodies, b)
	m.round.Cursor++

	if m.tracker != nil {
		m.tracker.Retarget(indicator.BodyTarget(b.Seq), now)
	}
	return b, true
}

// BeginRoundFade starts the retirement of the current round. It requires an
// exhausted sequence and does nothing if a fade is already running.
func (m *Manager) BeginRoundFade(now float64) {
	if m.round.Fading || m.round.Cursor < m.length {
		return
	}
	m.round.Fading = true
	m.round.FadeStart = now
}

// Hold freezes the round fade at now. The next Tick resumes it from the
// same point, so time spent held does not count toward retirement.
func (m *Manager) Hold(now float64) {
	if m.held {
		return
	}
	m.held = true
	m.heldAt = now
}

// Alpha is the opacity letters draw with at now.
func (m *Manager) Alpha(now float64) float64 {
	if !m.round.Fading {
		return 1
	}
	if m.held {
		now = m.heldAt
	}
	return 1 - ease.Progress(now, m.round.FadeStart, m.settings.FadeDuration)
}

// Tick advances the round fade. It reports true on the tick the round is
// retired: every body leaves the world, the cursor returns to zero and the
// tracker goes back to the pointer.
func (m *Manager) Tick(now float64) bool {
	if m.held {
		m.held = false
		m.round.FadeStart += now - m.heldAt
	}
	if !m.round.Fading {
		return false
	}
	if ease.Progress(now, m.round.FadeStart, m.settings.FadeDuration) < 1 {
		return false
	}

	for _, b := range m.round.Bodies {
		m.world.Remove(b.Handle)
	}
	retired := len(m.round.Bodies)
	m.round = Round{}
	m.rounds++
	log.Printf("letters: round %d retired %d bodies", m.rounds, retired)

	if m.tracker != nil {
		m.tracker.Retarget(indicator.Pointer, now)
	}
	return true
}

// Lookup resolves a sequence position to the live body's position. It is
// the indicator's weak reference into the round.
func (m *Manager) Lookup(seq int) (geom.Vec, bool) {
	if seq < 0 || seq >= len(m.round.Bodies) {
		return geom.Vec{}, false
	}
	b := m.round.Bodies[seq]
	if !m.world.Contains(b.Handle) {
		return geom.Vec{}, false
	}
	return m.world.Position(b.Handle), true
}

// Remap moves every live body through f, used when the arena is resized.
func (m *Manager) Remap(f func(geom.Vec) geom.Vec) {
	for _, b := range m.round.Bodies {
		m.world.SetPosition(b.Handle, f(m.world.Position(b.Handle)))
	}
}
