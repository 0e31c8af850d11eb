package session_test

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/folio/internal/arena"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/geom"
	"github.com/san-kum/folio/internal/indicator"
	"github.com/san-kum/folio/internal/panel"
	"github.com/san-kum/folio/internal/projects"
	"github.com/san-kum/folio/internal/session"
)

// heldMounter keeps mount callbacks until the test releases them.
type heldMounter struct {
	mu   sync.Mutex
	done map[string]func()
}

func (h *heldMounter) Mount(p projects.Project, done func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.done[p.ID] = done
}

func (h *heldMounter) release(id string) {
	h.mu.Lock()
	f := h.done[id]
	h.mu.Unlock()
	f()
}

var _ = Describe("Session", func() {
	var (
		cfg     *config.Config
		catalog *projects.Catalog
		s       *session.Session
		spot    geom.Vec
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		cfg.Phrase = "ABC"
		cfg.Highlight = "b"
		cfg.Seed = 7
		catalog = projects.Default()
		s = session.New(cfg, catalog, nil, arena.RefW, arena.RefH)
		spot = s.Layout().Center().Add(geom.V(0, 200))

		// Park the pointer so the preview ball is at rest before any click.
		s.OnPointerMove(spot)
		s.OnTick(0)
		s.OnTick(0)
	})

	click := func(at float64) bool {
		s.OnTick(at)
		return s.OnPointerDown(spot)
	}

	Describe("a round of letters", func() {
		It("spawns, fades and retires the whole phrase", func() {
			Expect(click(0)).To(BeTrue())
			Expect(click(0.5)).To(BeTrue())
			Expect(s.Letters().Fading()).To(BeFalse())
			Expect(click(1)).To(BeTrue())

			Expect(s.Letters().Fading()).To(BeTrue())
			Expect(s.Letters().Cursor()).To(Equal(3))
			seqs := []int{}
			for _, b := range s.Letters().Bodies() {
				seqs = append(seqs, b.Seq)
			}
			Expect(seqs).To(Equal([]int{0, 1, 2}))

			Expect(click(1.05)).To(BeFalse(), "arena is busy while fading")

			s.OnTick(1.2)
			Expect(s.Letters().Bodies()).To(BeEmpty())
			Expect(s.Letters().Cursor()).To(BeZero())
			Expect(s.Indicator().Target()).To(Equal(indicator.Pointer))

			f := s.Frame(1.2)
			for _, c := range f.Phrase {
				Expect(c.Alpha).To(Equal(0.2))
			}
		})

		It("keeps the live body count equal to the cursor", func() {
			for i, at := range []float64{0, 0.25, 0.5} {
				click(at)
				Expect(s.Letters().Bodies()).To(HaveLen(i + 1))
				Expect(s.Letters().Cursor()).To(Equal(i + 1))
			}
		})

		It("flags highlighted letters and lights the phrase", func() {
			click(0)
			click(0.5)
			s.OnTick(1)

			f := s.Frame(1)
			Expect(f.Letters).To(HaveLen(2))
			Expect(f.Letters[0].Glyph).To(Equal("A"))
			Expect(f.Letters[0].Highlighted).To(BeFalse())
			Expect(f.Letters[1].Highlighted).To(BeTrue())
			Expect(f.Phrase[0].Alpha).To(Equal(1.0))
			Expect(f.Phrase[2].Alpha).To(Equal(0.2))
			Expect(f.Ghost.Glyph).To(Equal("C"))
		})

		It("ignores presses outside the arena", func() {
			s.OnTick(0)
			Expect(s.OnPointerDown(geom.V(1, 1))).To(BeFalse())
			Expect(s.Letters().Cursor()).To(BeZero())
		})
	})

	Describe("the indicator", func() {
		It("eases onto a new letter and then follows it", func() {
			click(1)
			Expect(s.Indicator().Mode()).To(Equal(indicator.Easing))
			Expect(s.Indicator().Target()).To(Equal(indicator.BodyTarget(0)))

			s.OnTick(1.25)
			Expect(s.Indicator().Mode()).To(Equal(indicator.Easing))

			s.OnTick(1.5)
			Expect(s.Indicator().Mode()).To(Equal(indicator.TrackTarget))
			body := s.Letters().Bodies()[0]
			want := s.Indicator().Pivot.Bearing(s.World().Position(body.Handle))
			Expect(s.Indicator().Angle()).To(BeNumerically("~", want, 1e-9))

			s.OnTick(2)
			want = s.Indicator().Pivot.Bearing(s.World().Position(body.Handle))
			Expect(s.Indicator().Angle()).To(BeNumerically("~", want, 1e-9))
		})

		It("goes back to the pointer once the round retires", func() {
			click(0)
			click(0.1)
			click(0.2)
			s.OnTick(0.4)
			Expect(s.Indicator().Mode()).To(Equal(indicator.Easing))
			s.OnTick(1)
			Expect(s.Indicator().Mode()).To(Equal(indicator.TrackPointer))
		})
	})

	Describe("the gallery", func() {
		var p1, p2 projects.Project

		BeforeEach(func() {
			p1, _ = catalog.At(0)
			p2, _ = catalog.At(1)
		})

		It("freezes the arena while a project is shown and switches projects", func() {
			click(0)
			s.OnTick(0.5)
			body := s.Letters().Bodies()[0]
			frozen := s.World().Position(body.Handle)

			Expect(s.OnProjectSelected(p1.ID)).To(BeTrue())
			Expect(s.Panel().Mode()).To(Equal(panel.TransitioningToGallery))
			Expect(s.OnPointerDown(spot)).To(BeFalse(), "no spawns behind the gallery")

			s.OnTick(1)
			s.OnTick(2)
			Expect(s.Panel().Mode()).To(Equal(panel.Gallery))
			Expect(s.World().Position(body.Handle)).To(Equal(frozen))

			Expect(s.OnProjectSelected(p1.ID)).To(BeFalse())
			Expect(s.OnProjectSelected(p2.ID)).To(BeTrue())
			Expect(s.Panel().Mode()).To(Equal(panel.TransitioningBetweenProjects))

			s.OnTick(3)
			Expect(s.Panel().Mode()).To(Equal(panel.Gallery))
			active, _ := s.Panel().Active()
			Expect(active.ID).To(Equal(p2.ID))
			Expect(s.Panel().Media()).To(Equal(p2.Media))
			Expect(s.Panel().Outgoing()).To(BeNil())
			Expect(s.Letters().Bodies()).To(HaveLen(1), "letters survive the gallery")
		})

		It("resumes the arena and re-homes the indicator on close", func() {
			s.OnProjectSelected(p1.ID)
			s.OnTick(1)
			s.OnTick(2)

			Expect(s.OnGalleryClosed()).To(BeTrue())
			s.OnTick(2.25)
			Expect(s.Panel().Mode()).To(Equal(panel.Closing))
			s.OnTick(3)
			Expect(s.Panel().Mode()).To(Equal(panel.Simulation))
			Expect(s.Indicator().Mode()).To(Equal(indicator.Easing))
			Expect(s.Indicator().Target()).To(Equal(indicator.Pointer))
			_, ok := s.Panel().Active()
			Expect(ok).To(BeFalse())

			Expect(click(3.5)).To(BeTrue())
		})

		It("keeps a fading round alive until the gallery closes", func() {
			click(0)
			click(0.02)
			click(0.04)
			Expect(s.Letters().Fading()).To(BeTrue())
			s.OnTick(0.09)

			Expect(s.OnProjectSelected(p1.ID)).To(BeTrue())
			s.OnTick(1)
			s.OnTick(2)
			Expect(s.Panel().Mode()).To(Equal(panel.Gallery))
			Expect(s.Letters().Bodies()).To(HaveLen(3))
			Expect(s.Frame(2).LetterAlpha).To(BeNumerically("~", 0.5, 1e-6))

			Expect(s.OnGalleryClosed()).To(BeTrue())
			s.OnTick(2.25)
			s.OnTick(3)
			Expect(s.Panel().Mode()).To(Equal(panel.Simulation))
			Expect(s.Letters().Bodies()).To(HaveLen(3), "bodies survive the whole gallery visit")

			s.OnTick(3.02)
			Expect(s.Letters().Bodies()).To(HaveLen(3), "fade resumes where it stopped")
			Expect(s.Frame(3.02).LetterAlpha).To(BeNumerically("~", 0.5, 1e-6))

			s.OnTick(3.2)
			Expect(s.Letters().Bodies()).To(BeEmpty())
			Expect(s.Letters().Rounds()).To(Equal(1))
		})

		It("aims at the pointer on the tick the gallery finishes closing", func() {
			cfg.Timing.Ease = 0
			s = session.New(cfg, catalog, nil, arena.RefW, arena.RefH)
			s.OnPointerMove(spot)
			s.OnTick(0)
			click(0)

			s.OnProjectSelected(p1.ID)
			s.OnTick(1)
			s.OnTick(2)
			s.OnGalleryClosed()
			s.OnTick(3)

			Expect(s.Panel().Mode()).To(Equal(panel.Simulation))
			Expect(s.Indicator().Mode()).To(Equal(indicator.TrackPointer))
			Expect(s.Indicator().Angle()).To(Equal(s.Layout().Center().Bearing(spot)))
		})

		It("waits on a slow mounter", func() {
			m := &heldMounter{done: map[string]func(){}}
			s = session.New(cfg, catalog, m, arena.RefW, arena.RefH)

			s.OnProjectSelected(p1.ID)
			s.OnTick(5)
			Expect(s.Panel().Mode()).To(Equal(panel.TransitioningToGallery))

			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				m.release(p1.ID)
			}()
			wg.Wait()

			s.OnTick(6)
			Expect(s.Panel().Mode()).To(Equal(panel.TransitioningToGallery), "mount animation starts on this tick")
			s.OnTick(7)
			Expect(s.Panel().Mode()).To(Equal(panel.Gallery))
		})

		It("selects projects and closes from pointer presses", func() {
			f := s.Frame(0)
			Expect(f.Projects).To(HaveLen(catalog.Len()))

			Expect(s.OnPointerDown(f.Projects[0].Rect.Center())).To(BeTrue())
			s.OnTick(1)
			s.OnTick(2)
			Expect(s.Frame(2).Projects[0].Active).To(BeTrue())
			Expect(s.Frame(2).Title).To(Equal(p1.Title))

			Expect(s.OnPointerDown(f.Close.Center())).To(BeTrue())
			Expect(s.Panel().Mode()).To(Equal(panel.Closing))
		})

		It("scrolls within the content", func() {
			s.OnProjectSelected(p1.ID)
			s.OnTick(1)
			s.OnTick(2)

			s.OnScroll(1e6)
			limit := s.Panel().ScrollOffset()
			s.OnScroll(1e6)
			Expect(s.Panel().ScrollOffset()).To(Equal(limit))
			s.OnScroll(-1e6)
			Expect(s.Panel().ScrollOffset()).To(BeZero())
		})

		It("ignores unknown projects", func() {
			Expect(s.OnProjectSelected("nope")).To(BeFalse())
			Expect(s.Panel().Mode()).To(Equal(panel.Simulation))
		})
	})

	Describe("resizing", func() {
		It("carries letters and the indicator into the new arena", func() {
			click(0)
			s.OnTick(0.1)

			s.OnResize(arena.RefW/2, arena.RefH/2)
			l := s.Layout()
			Expect(l.Scale).To(BeNumerically("~", 0.5, 1e-9))
			Expect(s.Indicator().Pivot).To(Equal(l.Center()))
			Expect(s.Indicator().Radius).To(BeNumerically("~", cfg.Indicator.Radius/2, 1e-9))

			body := s.Letters().Bodies()[0]
			Expect(l.Contains(s.World().Position(body.Handle))).To(BeTrue())

			for i := 0; i < 120; i++ {
				s.OnTick(0.2 + float64(i)/60)
			}
			p := s.World().Position(body.Handle)
			Expect(l.Arena().Inset(-5).Contains(p)).To(BeTrue(), "walls follow the arena")
		})
	})
})
