// Package panel drives the primary panel between the live arena and a
// project gallery. Every transition is a mode plus a start time polled from
// Tick, so the machine can be driven entirely by test clocks.
package panel

import (
	"log"

	"github.com/san-kum/folio/internal/ease"
	"github.com/san-kum/folio/internal/projects"
)

type Mode int

const (
	Simulation Mode = iota
	TransitioningToGallery
	Gallery
	TransitioningBetweenProjects
	Closing
)

func (m Mode) String() string {
	switch m {
	case Simulation:
		return "simulation"
	case TransitioningToGallery:
		return "transitioning-to-gallery"
	case Gallery:
		return "gallery"
	case TransitioningBetweenProjects:
		return "transitioning-between-projects"
	case Closing:
		return "closing"
	}
	return "unknown"
}

// Event reports what a Tick completed.
type Event int

const (
	EventNone Event = iota
	EventOpened
	EventSwitched
	EventClosed
)

// Mounter starts loading the gallery content for a project. Completion is
// reported back through Machine.MountComplete.
type Mounter interface {
	Mount(p projects.Project)
}

// Timing holds transition lengths in seconds and slide offsets in pixels.
type Timing struct {
	CoverFade      float64
	Mount          float64
	Switch         float64
	Close          float64
	IncomingOffset float64
	OutgoingOffset float64
}

// Layers is what the renderer needs to draw the panel at one instant.
// Offsets are vertical and in pixels.
type Layers struct {
	Cover          float64
	Active         []projects.Media
	ActiveAlpha    float64
	ActiveOffset   float64
	Outgoing       []projects.Media
	OutgoingAlpha  float64
	OutgoingOffset float64
	Scroll         float64
}

type Machine struct {
	mounter Mounter
	timing  Timing

	mode     Mode
	active   *projects.Project
	incoming *projects.Project
	media    []projects.Media
	outgoing []projects.Media

	start   float64
	mounted bool
	mountAt float64
	scroll  float64
}

func New(mounter Mounter, t Timing) *Machine {
	return &Machine{mounter: mounter, timing: t}
}

func (m *Machine) Mode() Mode                 { return m.mode }
func (m *Machine) Media() []projects.Media    { return m.media }
func (m *Machine) Outgoing() []projects.Media { return m.outgoing }
func (m *Machine) ScrollOffset() float64      { return m.scroll }

// PhysicsActive reports whether the arena should be stepped.
func (m *Machine) PhysicsActive() bool { return m.mode == Simulation }

// Active returns the project whose media is on screen.
func (m *Machine) Active() (projects.Project, bool) {
	if m.active == nil {
		return projects.Project{}, false
	}
	return *m.active, true
}

// Incoming returns the project a transition in flight is heading to.
func (m *Machine) Incoming() (projects.Project, bool) {
	if m.incoming == nil {
		return projects.Project{}, false
	}
	return *m.incoming, true
}

func (m *Machine) setMode(next Mode) {
	log.Printf("panel: %s -> %s", m.mode, next)
	m.mode = next
}

// Select reacts to a project being picked from the list. It reports whether
// the selection changed anything.
func (m *Machine) Select(p projects.Project, now float64) bool {
	switch m.mode {
	case Simulation:
		m.incoming = &p
		m.start = now
		m.mounted = false
		m.setMode(TransitioningToGallery)
		m.mount(p)
		return true

	case TransitioningToGallery:
		if m.incoming.ID == p.ID {
			return false
		}
		// The cover keeps fading; only the mount starts over.
		m.incoming = &p
		m.mounted = false
		m.mount(p)
		return true

	case Gallery:
		if m.active.ID == p.ID {
			return false
		}
		m.outgoing = m.media
		m.incoming = &p
		m.start = now
		m.scroll = 0
		m.setMode(TransitioningBetweenProjects)
		return true

	case TransitioningBetweenProjects:
		if m.incoming.ID == p.ID {
			return false
		}
		m.incoming = &p
		m.start = now
		return true
	}
	return false
}

func (m *Machine) mount(p projects.Project) {
	if m.mounter != nil {
		m.mounter.Mount(p)
	}
}

// MountComplete records that the gallery content for id finished loading.
// Completions for a project that is no longer incoming are dropped.
func (m *Machine) MountComplete(id string, now float64) {
	if m.mode != TransitioningToGallery || m.incoming.ID != id || m.mounted {
		return
	}
	m.mounted = true
	m.mountAt = now
}

// Close starts fading the gallery out. Only an open gallery can be closed.
func (m *Machine) Close(now float64) bool {
	if m.mode != Gallery {
		return false
	}
	m.start = now
	m.setMode(Closing)
	return true
}

// Scroll moves the gallery by dy, clamped to [0, limit].
func (m *Machine) Scroll(dy, limit float64) {
	if m.mode != Gallery {
		return
	}
	m.scroll = max(0, min(limit, m.scroll+dy))
}

// Tick finishes any transition whose timers have run out.
func (m *Machine) Tick(now float64) Event {
	switch m.mode {
	case TransitioningToGallery:
		if !m.mounted {
			return EventNone
		}
		if ease.Progress(now, m.start, m.timing.CoverFade) < 1 ||
			ease.Progress(now, m.mountAt, m.timing.Mount) < 1 {
			return EventNone
		}
		m.active = m.incoming
		m.media = m.active.Media
		m.incoming = nil
		m.scroll = 0
		m.setMode(Gallery)
		return EventOpened

	case TransitioningBetweenProjects:
		if ease.Progress(now, m.start, m.timing.Switch) < 1 {
			return EventNone
		}
		m.active = m.incoming
		m.media = m.active.Media
		m.incoming = nil
		m.outgoing = nil
		m.setMode(Gallery)
		return EventSwitched

	case Closing:
		if ease.Progress(now, m.start, m.timing.Close) < 1 {
			return EventNone
		}
		m.active = nil
		m.media = nil
		m.scroll = 0
		m.setMode(Simulation)
		return EventClosed
	}
	return EventNone
}

// Layers computes opacities and offsets for drawing at now.
func (m *Machine) Layers(now float64) Layers {
	t := m.timing
	switch m.mode {
	case TransitioningToGallery:
		l := Layers{
			Cover:        ease.InOutQuad(ease.Progress(now, m.start, t.CoverFade)),
			Active:       m.incoming.Media,
			ActiveOffset: t.IncomingOffset,
		}
		if m.mounted {
			e := ease.OutQuint(ease.Progress(now, m.mountAt, t.Mount))
			l.ActiveAlpha = e
			l.ActiveOffset = t.IncomingOffset * (1 - e)
		}
		return l

	case Gallery:
		return Layers{Cover: 1, Active: m.media, ActiveAlpha: 1, Scroll: m.scroll}

	case TransitioningBetweenProjects:
		e := ease.OutQuint(ease.Progress(now, m.start, t.Switch))
		return Layers{
			Cover:          1,
			Active:         m.incoming.Media,
			ActiveAlpha:    e,
			ActiveOffset:   t.IncomingOffset * (1 - e),
			Outgoing:       m.outgoing,
			OutgoingAlpha:  1 - e,
			OutgoingOffset: t.OutgoingOffset * e,
		}

	case Closing:
		fade := 1 - ease.Progress(now, m.start, t.Close)
		return Layers{Cover: fade, Active: m.media, ActiveAlpha: fade, Scroll: m.scroll}
	}
	return Layers{}
}
