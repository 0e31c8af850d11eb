package panel_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/folio/internal/panel"
	"github.com/san-kum/folio/internal/projects"
)

type recordingMounter struct {
	ids []string
}

func (r *recordingMounter) Mount(p projects.Project) { r.ids = append(r.ids, p.ID) }

var timing = panel.Timing{
	CoverFade:      0.4,
	Mount:          0.5,
	Switch:         0.8,
	Close:          0.4,
	IncomingOffset: 40,
	OutgoingOffset: -40,
}

func project(id string, captions ...string) projects.Project {
	p := projects.Project{ID: id, Title: id}
	for _, c := range captions {
		p.Media = append(p.Media, projects.Media{Caption: c, Kind: "image", Aspect: 1})
	}
	return p
}

var _ = Describe("Machine", func() {
	var (
		mounter *recordingMounter
		m       *panel.Machine
		p1, p2  projects.Project
		p3      projects.Project
	)

	BeforeEach(func() {
		mounter = &recordingMounter{}
		m = panel.New(mounter, timing)
		p1 = project("p1", "a", "b")
		p2 = project("p2", "c")
		p3 = project("p3", "d", "e", "f")
	})

	open := func(p projects.Project, at float64) {
		Expect(m.Select(p, at)).To(BeTrue())
		m.MountComplete(p.ID, at)
		Expect(m.Tick(at + timing.Mount)).To(Equal(panel.EventOpened))
		Expect(m.Mode()).To(Equal(panel.Gallery))
	}

	It("starts in simulation with physics running", func() {
		Expect(m.Mode()).To(Equal(panel.Simulation))
		Expect(m.PhysicsActive()).To(BeTrue())
		_, ok := m.Active()
		Expect(ok).To(BeFalse())
		Expect(m.Layers(0)).To(Equal(panel.Layers{}))
	})

	Describe("opening a gallery", func() {
		It("suspends physics immediately and starts mounting", func() {
			Expect(m.Select(p1, 1)).To(BeTrue())
			Expect(m.Mode()).To(Equal(panel.TransitioningToGallery))
			Expect(m.PhysicsActive()).To(BeFalse())
			Expect(mounter.ids).To(Equal([]string{"p1"}))
		})

		It("waits for both the cover fade and the mount animation", func() {
			m.Select(p1, 0)
			Expect(m.Tick(1)).To(Equal(panel.EventNone), "mount never reported")

			m.MountComplete("p1", 0.1)
			Expect(m.Tick(0.45)).To(Equal(panel.EventNone), "mount animation still running")
			Expect(m.Tick(0.7)).To(Equal(panel.EventOpened))

			active, ok := m.Active()
			Expect(ok).To(BeTrue())
			Expect(active.ID).To(Equal("p1"))
			Expect(m.Media()).To(HaveLen(2))
		})

		It("does not open before the cover fade finishes", func() {
			m = panel.New(mounter, panel.Timing{CoverFade: 0.4, Mount: 0.1})
			m.Select(p1, 0)
			m.MountComplete("p1", 0)
			Expect(m.Tick(0.2)).To(Equal(panel.EventNone))
			Expect(m.Tick(0.5)).To(Equal(panel.EventOpened))
		})

		It("ignores mount completions for other projects", func() {
			m.Select(p1, 0)
			m.MountComplete("p2", 0)
			Expect(m.Tick(5)).To(Equal(panel.EventNone))
			Expect(m.Mode()).To(Equal(panel.TransitioningToGallery))
		})

		It("replaces the incoming project when reselected mid-transition", func() {
			m.Select(p1, 0)
			m.MountComplete("p1", 0.1)
			Expect(m.Select(p2, 0.2)).To(BeTrue())

			incoming, _ := m.Incoming()
			Expect(incoming.ID).To(Equal("p2"))
			Expect(mounter.ids).To(Equal([]string{"p1", "p2"}))

			m.MountComplete("p1", 0.3)
			Expect(m.Tick(1)).To(Equal(panel.EventNone), "stale mount must not open the gallery")

			m.MountComplete("p2", 1)
			Expect(m.Tick(1.5)).To(Equal(panel.EventOpened))
			active, _ := m.Active()
			Expect(active.ID).To(Equal("p2"))
		})

		It("keeps fading the cover when the incoming project changes", func() {
			m.Select(p1, 0)
			before := m.Layers(0.3).Cover
			Expect(m.Select(p2, 0.3)).To(BeTrue())
			Expect(m.Layers(0.3).Cover).To(Equal(before))
			Expect(m.Layers(0.4).Cover).To(Equal(1.0))

			m.MountComplete("p2", 0.3)
			Expect(m.Tick(0.9)).To(Equal(panel.EventOpened))
		})

		It("fades the cover in and slides media up once mounted", func() {
			m.Select(p1, 0)
			l := m.Layers(0.2)
			Expect(l.Cover).To(BeNumerically("~", 0.5, 1e-9))
			Expect(l.ActiveAlpha).To(BeZero())
			Expect(l.ActiveOffset).To(Equal(timing.IncomingOffset))

			m.MountComplete("p1", 0.2)
			l = m.Layers(1)
			Expect(l.Cover).To(Equal(1.0))
			Expect(l.ActiveAlpha).To(Equal(1.0))
			Expect(l.ActiveOffset).To(BeZero())
		})
	})

	Describe("switching between projects", func() {
		BeforeEach(func() { open(p1, 0) })

		It("cross-fades to the new project and discards the old media", func() {
			Expect(m.Select(p2, 2)).To(BeTrue())
			Expect(m.Mode()).To(Equal(panel.TransitioningBetweenProjects))
			Expect(m.Outgoing()).To(Equal(p1.Media))

			Expect(m.Tick(2.4)).To(Equal(panel.EventNone))
			Expect(m.Tick(2.9)).To(Equal(panel.EventSwitched))

			Expect(m.Mode()).To(Equal(panel.Gallery))
			active, _ := m.Active()
			Expect(active.ID).To(Equal("p2"))
			Expect(m.Media()).To(Equal(p2.Media))
			Expect(m.Outgoing()).To(BeNil())
		})

		It("ignores the project that is already shown", func() {
			Expect(m.Select(p1, 2)).To(BeFalse())
			Expect(m.Mode()).To(Equal(panel.Gallery))
		})

		It("keeps a single transition when another project is picked mid-flight", func() {
			m.Select(p2, 2)
			Expect(m.Select(p3, 2.5)).To(BeTrue())

			Expect(m.Tick(2.8)).To(Equal(panel.EventNone), "timer restarted for the new target")
			Expect(m.Tick(3.4)).To(Equal(panel.EventSwitched))

			active, _ := m.Active()
			Expect(active.ID).To(Equal("p3"))
			Expect(m.Mode()).To(Equal(panel.Gallery))
			Expect(m.Tick(10)).To(Equal(panel.EventNone))
		})

		It("moves both lists from one shared progress value", func() {
			m.Select(p2, 2)

			start := m.Layers(2)
			Expect(start.OutgoingAlpha).To(Equal(1.0))
			Expect(start.ActiveAlpha).To(BeZero())
			Expect(start.ActiveOffset).To(Equal(timing.IncomingOffset))
			Expect(start.OutgoingOffset).To(BeZero())

			mid := m.Layers(2.2)
			Expect(mid.ActiveAlpha + mid.OutgoingAlpha).To(BeNumerically("~", 1, 1e-9))
			Expect(mid.OutgoingOffset).To(BeNumerically("<", 0))

			end := m.Layers(2.9)
			Expect(end.ActiveAlpha).To(Equal(1.0))
			Expect(end.OutgoingOffset).To(Equal(timing.OutgoingOffset))
		})
	})

	Describe("closing", func() {
		BeforeEach(func() { open(p1, 0) })

		It("returns to simulation with the project cleared", func() {
			Expect(m.Close(2)).To(BeTrue())
			Expect(m.Mode()).To(Equal(panel.Closing))
			Expect(m.PhysicsActive()).To(BeFalse())

			Expect(m.Tick(2.2)).To(Equal(panel.EventNone))
			Expect(m.Tick(2.5)).To(Equal(panel.EventClosed))

			Expect(m.Mode()).To(Equal(panel.Simulation))
			Expect(m.PhysicsActive()).To(BeTrue())
			_, ok := m.Active()
			Expect(ok).To(BeFalse())
			Expect(m.Media()).To(BeNil())
		})

		It("ignores selections and repeated closes while closing", func() {
			m.Close(2)
			Expect(m.Select(p2, 2.1)).To(BeFalse())
			Expect(m.Close(2.1)).To(BeFalse())
			Expect(m.Tick(2.5)).To(Equal(panel.EventClosed))
		})

		It("fades cover and content together", func() {
			m.Close(2)
			l := m.Layers(2.2)
			Expect(l.Cover).To(BeNumerically("~", 0.5, 1e-9))
			Expect(l.ActiveAlpha).To(Equal(l.Cover))
		})

		It("cannot close a transition in flight", func() {
			m.Select(p2, 2)
			Expect(m.Close(2.1)).To(BeFalse())
			Expect(m.Mode()).To(Equal(panel.TransitioningBetweenProjects))
		})
	})

	Describe("scrolling", func() {
		It("is clamped to the content and reset on switch", func() {
			m.Scroll(50, 100)
			Expect(m.ScrollOffset()).To(BeZero(), "no gallery yet")

			open(p1, 0)
			m.Scroll(80, 100)
			m.Scroll(80, 100)
			Expect(m.ScrollOffset()).To(Equal(100.0))
			m.Scroll(-500, 100)
			Expect(m.ScrollOffset()).To(BeZero())

			m.Scroll(30, 100)
			m.Select(p2, 2)
			Expect(m.ScrollOffset()).To(BeZero())
		})
	})

	DescribeTable("mode names",
		func(mode panel.Mode, want string) {
			Expect(mode.String()).To(Equal(want))
		},
		Entry("simulation", panel.Simulation, "simulation"),
		Entry("to gallery", panel.TransitioningToGallery, "transitioning-to-gallery"),
		Entry("gallery", panel.Gallery, "gallery"),
		Entry("between", panel.TransitioningBetweenProjects, "transitioning-between-projects"),
		Entry("closing", panel.Closing, "closing"),
		Entry("unknown", panel.Mode(42), "unknown"),
	)
})
