package session

import "github.com/san-kum/folio/internal/projects"

// GalleryMounter loads a project's gallery content and calls done once it is
// ready to animate in. done may be called from any goroutine.
type GalleryMounter interface {
	Mount(p projects.Project, done func())
}

// InstantMounter has nothing to load and reports completion straight away.
type InstantMounter struct{}

func (InstantMounter) Mount(_ projects.Project, done func()) { done() }

// bridge adapts a GalleryMounter to the panel machine, routing completions
// through the session queue so they land on a tick.
type bridge struct {
	s *Session
	m GalleryMounter
}

func (b bridge) Mount(p projects.Project) {
	id := p.ID
	b.m.Mount(p, func() {
		b.s.enqueue(func(now float64) { b.s.panel.MountComplete(id, now) })
	})
}
