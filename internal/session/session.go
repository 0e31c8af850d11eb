// Package session ties the arena together: one Session owns the physics
// world, the current round of letters, the phrase sequencer, the indicator,
// the panel machine and the pointer preview, and exposes the entry points a
// host window calls.
package session

import (
	"log"
	"math/rand"
	"sync"

	"github.com/san-kum/folio/internal/arena"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/geom"
	"github.com/san-kum/folio/internal/indicator"
	"github.com/san-kum/folio/internal/letters"
	"github.com/san-kum/folio/internal/panel"
	"github.com/san-kum/folio/internal/physics"
	"github.com/san-kum/folio/internal/projects"
	"github.com/san-kum/folio/internal/sequencer"
)

type Session struct {
	cfg     *config.Config
	catalog *projects.Catalog
	world   physics.World

	layout    arena.Layout
	walls     []physics.Handle
	pivot     physics.Handle
	highlight map[int]bool

	letters   *letters.Manager
	seq       *sequencer.Sequencer
	indicator *indicator.Indicator
	panel     *panel.Machine
	ghost     *ghost

	pointer geom.Vec
	now     float64

	mu      sync.Mutex
	pending []func(now float64)
}

// New builds a session for a w×h window. A nil mounter completes mounts
// immediately.
func New(cfg *config.Config, catalog *projects.Catalog, mounter GalleryMounter, w, h float64) *Session {
	if mounter == nil {
		mounter = InstantMounter{}
	}

	world := physics.NewEngine()
	world.SetGravity(geom.V(0, cfg.Physics.Gravity))

	s := &Session{
		cfg:     cfg,
		catalog: catalog,
		world:   world,
		layout:  arena.Compute(w, h),
	}

	hl := sequencer.HighlightIndices(cfg.Phrase, cfg.Highlight)
	s.highlight = make(map[int]bool, len(hl))
	for _, i := range hl {
		s.highlight[i] = true
	}

	s.indicator = indicator.New(s.layout.Center(), cfg.Indicator.Radius*s.layout.Scale, cfg.Timing.Ease)
	s.letters = letters.New(world, s.indicator, rand.New(rand.NewSource(cfg.Seed)), letterSettings(cfg), len([]rune(cfg.Phrase)), hl)
	s.letters.SetBounds(s.layout.Arena(), s.layout.Scale)
	s.seq = sequencer.New(cfg.Phrase, s.letters, cfg.Timing.LetterFadeIn)
	s.panel = panel.New(bridge{s: s, m: mounter}, panel.Timing{
		CoverFade:      cfg.Timing.CoverFade,
		Mount:          cfg.Timing.Mount,
		Switch:         cfg.Timing.Switch,
		Close:          cfg.Timing.Close,
		IncomingOffset: cfg.Gallery.IncomingOffset,
		OutgoingOffset: cfg.Gallery.OutgoingOffset,
	})

	s.pointer = s.layout.Center()
	s.buildFixtures()
	return s
}

func letterSettings(cfg *config.Config) letters.Settings {
	return letters.Settings{
		RadiusMin:    cfg.Letters.RadiusMin,
		RadiusMax:    cfg.Letters.RadiusMax,
		Speed:        cfg.Letters.Speed,
		AngleMin:     cfg.Letters.AngleMin,
		AngleMax:     cfg.Letters.AngleMax,
		FadeDuration: cfg.Timing.RoundFade,
		Material: physics.Options{
			Restitution: cfg.Physics.Restitution,
			Friction:    cfg.Physics.Friction,
			FrictionAir: cfg.Physics.AirDrag,
			Density:     cfg.Physics.Density,
		},
	}
}

// buildFixtures creates the walls, the indicator bumper and the ghost for
// the current layout.
func (s *Session) buildFixtures() {
	sc := s.layout.Scale
	g := s.cfg.Ghost

	s.walls = physics.BuildWalls(s.world, s.layout.Arena(), s.cfg.Physics.WallThick*sc)
	s.pivot = s.world.CreateCircle(s.layout.Center(), s.cfg.Indicator.Radius*sc, physics.Options{
		Restitution: s.cfg.Indicator.Restitution,
		Static:      true,
	})
	s.world.Add(s.pivot)
	s.ghost = newGhost(s.world, s.pointer, g.Radius*sc, g.Restitution, geom.V(g.Offset.X*sc, g.Offset.Y*sc), g.ScaleRate)
}

func (s *Session) removeFixtures() {
	physics.RemoveAll(s.world, s.walls)
	s.world.Remove(s.pivot)
	s.ghost.remove(s.world)
}

func (s *Session) enqueue(f func(now float64)) {
	s.mu.Lock()
	s.pending = append(s.pending, f)
	s.mu.Unlock()
}

func (s *Session) drain(now float64) {
	s.mu.Lock()
	queued := s.pending
	s.pending = nil
	s.mu.Unlock()
	for _, f := range queued {
		f(now)
	}
}

func (s *Session) Config() *config.Config          { return s.cfg }
func (s *Session) Layout() arena.Layout            { return s.layout }
func (s *Session) Now() float64                    { return s.now }
func (s *Session) Letters() *letters.Manager       { return s.letters }
func (s *Session) Indicator() *indicator.Indicator { return s.indicator }
func (s *Session) Panel() *panel.Machine           { return s.panel }
func (s *Session) World() physics.World            { return s.world }

// OnPointerMove records the pointer position used by the indicator and the
// ghost preview.
func (s *Session) OnPointerMove(pos geom.Vec) {
	s.pointer = pos
}

// OnPointerDown routes a press: project rows select, the close control
// closes the gallery, and anything else tries to spawn the next letter. It
// reports whether the press had an effect.
func (s *Session) OnPointerDown(pos geom.Vec) bool {
	s.pointer = pos

	rows := s.layout.ProjectRows(s.catalog.Len())
	for i, r := range rows {
		if r.Contains(pos) {
			p, _ := s.catalog.At(i)
			return s.OnProjectSelected(p.ID)
		}
	}
	if s.panel.Mode() == panel.Gallery && s.layout.CloseButton().Contains(pos) {
		return s.OnGalleryClosed()
	}
	return s.spawn(pos)
}

func (s *Session) spawn(pos geom.Vec) bool {
	if !s.panel.PhysicsActive() {
		return false
	}
	off := s.cfg.Letters.SpawnOffset
	at := pos.Sub(geom.V(off.X*s.layout.Scale, off.Y*s.layout.Scale))
	return s.seq.HandleActivation(at, s.now)
}

// OnProjectSelected opens or switches the gallery to the project with id.
func (s *Session) OnProjectSelected(id string) bool {
	p, err := s.catalog.Get(id)
	if err != nil {
		log.Printf("session: select: %v", err)
		return false
	}
	if !s.panel.Select(p, s.now) {
		return false
	}
	s.letters.Hold(s.now)
	return true
}

func (s *Session) OnGalleryClosed() bool {
	return s.panel.Close(s.now)
}

// OnScroll scrolls the open gallery by dy pixels.
func (s *Session) OnScroll(dy float64) {
	area := s.galleryArea()
	s.panel.Scroll(dy, panel.MaxScroll(s.panel.Media(), area, s.cfg.Gallery.ItemGap*s.layout.Scale))
}

func (s *Session) galleryArea() geom.Rect {
	return s.layout.Arena().Inset(arena.ListPadding * s.layout.Scale)
}

// OnTick advances the session to now.
func (s *Session) OnTick(now float64) {
	s.now = now
	s.drain(now)

	active := s.panel.PhysicsActive()
	if active {
		s.world.Step()
	}
	s.ghost.update(s.world, s.pointer, s.layout.Arena(), active)

	if !active {
		s.letters.Hold(now)
	} else if s.letters.Tick(now) {
		s.seq.Reset()
	}

	switch s.panel.Tick(now) {
	case panel.EventClosed:
		s.indicator.Retarget(indicator.Pointer, now)
	case panel.EventOpened, panel.EventSwitched:
		if p, ok := s.panel.Active(); ok {
			log.Printf("session: showing %s", p.ID)
		}
	}
	s.indicator.Update(now, s.pointer, s.letters.Lookup)
}

// OnResize recomputes the layout for a w×h window, rebuilds the fixtures and
// carries live letters to the same relative place in the new arena.
func (s *Session) OnResize(w, h float64) {
	prev := s.layout
	next := arena.Compute(w, h)
	if next == prev {
		return
	}

	s.removeFixtures()
	s.layout = next
	s.letters.SetBounds(next.Arena(), next.Scale)
	s.letters.Remap(func(p geom.Vec) geom.Vec { return prev.Remap(p, next) })
	s.pointer = prev.Remap(s.pointer, next)
	s.indicator.SetPivot(next.Center(), s.cfg.Indicator.Radius*next.Scale)
	s.buildFixtures()
}
