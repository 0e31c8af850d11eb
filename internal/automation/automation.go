// Package automation drives a session headlessly from YAML scenarios and
// records what the arena did.
package automation

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/indicator"
	"github.com/san-kum/folio/internal/metrics"
	"github.com/san-kum/folio/internal/panel"
	"github.com/san-kum/folio/internal/projects"
	"github.com/san-kum/folio/internal/session"
)

const DefaultFPS = 60

// Sample is the session state after one tick.
type Sample struct {
	Time      float64
	Angle     float64
	Indicator indicator.Mode
	Letters   int
	Bodies    int
	Rounds    int
	Energy    float64
	Panel     panel.Mode
}

// Event records one scripted action and whether the session accepted it.
type Event struct {
	Time   float64
	Action string
	OK     bool
}

type Trace struct {
	Name    string
	Samples []Sample
	Events  []Event
	Metrics map[string]float64
}

// Last returns the final sample.
func (t *Trace) Last() Sample {
	if len(t.Samples) == 0 {
		return Sample{}
	}
	return t.Samples[len(t.Samples)-1]
}

// Series extracts one value per sample.
func (t *Trace) Series(f func(Sample) float64) []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = f(s)
	}
	return out
}

// Summary describes the run in a few lines.
func (t *Trace) Summary() string {
	var b strings.Builder
	last := t.Last()
	accepted := 0
	for _, e := range t.Events {
		if e.OK {
			accepted++
		}
	}
	maxLetters := 0
	for _, s := range t.Samples {
		maxLetters = max(maxLetters, s.Letters)
	}
	fmt.Fprintf(&b, "scenario  %s\n", t.Name)
	fmt.Fprintf(&b, "duration  %.2fs (%d ticks)\n", last.Time, len(t.Samples))
	fmt.Fprintf(&b, "events    %d/%d accepted\n", accepted, len(t.Events))
	fmt.Fprintf(&b, "letters   %d live, %d peak\n", last.Letters, maxLetters)
	fmt.Fprintf(&b, "rounds    %d\n", last.Rounds)
	fmt.Fprintf(&b, "panel     %s\n", last.Panel)
	fmt.Fprintf(&b, "indicator %s %.1f°\n", last.Indicator, last.Angle*180/math.Pi)
	names := make([]string, 0, len(t.Metrics))
	for name := range t.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "%-9s %.4g\n", name, t.Metrics[name])
	}
	return b.String()
}

// apply performs one step against s.
func apply(s *session.Session, st Step) bool {
	arena := s.Layout().Arena()
	switch {
	case st.Pointer != nil:
		s.OnPointerMove(st.Pointer.resolve(arena))
		return true
	case st.Click != nil:
		p := st.Click.resolve(arena)
		s.OnPointerMove(p)
		return s.OnPointerDown(p)
	case st.Select != "":
		return s.OnProjectSelected(st.Select)
	case st.Close:
		return s.OnGalleryClosed()
	case st.Scroll != 0:
		before := s.Panel().ScrollOffset()
		s.OnScroll(st.Scroll)
		return s.Panel().ScrollOffset() != before
	case st.Resize != nil:
		s.OnResize(st.Resize.W, st.Resize.H)
		return true
	}
	return false
}

func snapshot(s *session.Session, now float64) metrics.Snapshot {
	snap := metrics.Snapshot{Time: now, Arena: s.Layout().Arena()}
	w := s.World()
	for _, b := range s.Letters().Bodies() {
		snap.Bodies = append(snap.Bodies, metrics.Body{Pos: w.Position(b.Handle), Vel: w.Velocity(b.Handle), Radius: b.Radius})
	}
	return snap
}

func sample(s *session.Session, snap metrics.Snapshot) Sample {
	return Sample{
		Time:      snap.Time,
		Energy:    metrics.KineticEnergy(snap.Bodies, s.Config().Physics.Density),
		Angle:     s.Indicator().Angle(),
		Indicator: s.Indicator().Mode(),
		Letters:   len(s.Letters().Bodies()),
		Bodies:    s.World().Len(),
		Rounds:    s.Letters().Rounds(),
		Panel:     s.Panel().Mode(),
	}
}

// Run plays sc against s at a fixed tick rate. Steps due at or before a
// tick are applied before it.
func Run(ctx context.Context, sc *Scenario, s *session.Session, fps int) (*Trace, error) {
	if fps <= 0 {
		fps = DefaultFPS
	}
	end := sc.End()
	ticks := int(math.Ceil(end * float64(fps)))
	trace := &Trace{Name: sc.Name, Samples: make([]Sample, 0, ticks+1)}
	next := 0
	observed := metrics.Standard(s.Config().Physics.Density)

	for i := 0; i <= ticks; i++ {
		if err := ctx.Err(); err != nil {
			return trace, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		now := float64(i) / float64(fps)
		for next < len(sc.Steps) && sc.Steps[next].At <= now+1e-9 {
			st := sc.Steps[next]
			ok := apply(s, st)
			trace.Events = append(trace.Events, Event{Time: now, Action: st.Action(), OK: ok})
			log.Printf("automation: %.3fs %s ok=%v", now, st.Action(), ok)
			next++
		}
		s.OnTick(now)
		snap := snapshot(s, now)
		for _, m := range observed {
			m.Observe(snap)
		}
		trace.Samples = append(trace.Samples, sample(s, snap))
	}

	trace.Metrics = make(map[string]float64, len(observed))
	for _, m := range observed {
		trace.Metrics[m.Name()] = m.Value()
	}
	return trace, nil
}

// Play builds a session sized to the scenario window and runs it.
func Play(ctx context.Context, sc *Scenario, cfg *config.Config, catalog *projects.Catalog, fps int) (*Trace, error) {
	s := session.New(cfg, catalog, nil, sc.Window.W, sc.Window.H)
	return Run(ctx, sc, s, fps)
}

// TrialResult summarises one seeded run.
type TrialResult struct {
	Seed        int64
	Rounds      int
	PeakLetters int
	PeakSpeed   float64
	Escaped     bool
	Final       panel.Mode
}

// RunTrials plays sc once per seed, each trial in its own goroutine on a
// private session. Seeds are drawn from base, or from the clock when base is
// zero. A trial is marked Escaped if any letter ever left the arena.
func RunTrials(ctx context.Context, sc *Scenario, cfg *config.Config, catalog *projects.Catalog, n int, base int64, fps int) ([]TrialResult, error) {
	if base == 0 {
		base = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(base))
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	results := make([]TrialResult, n)
	errs := make([]error, n)
	var done atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = trial(ctx, sc, cfg, catalog, seeds[idx], fps)
			if d := done.Add(1); d%10 == 0 {
				log.Printf("automation: %d/%d trials complete", d, n)
			}
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i+1, err)
		}
	}
	return results, nil
}

func trial(ctx context.Context, sc *Scenario, cfg *config.Config, catalog *projects.Catalog, seed int64, fps int) (TrialResult, error) {
	c := *cfg
	c.Seed = seed
	s := session.New(&c, catalog, nil, sc.Window.W, sc.Window.H)

	trace, err := Run(ctx, sc, s, fps)
	if err != nil {
		return TrialResult{}, err
	}
	last := trace.Last()
	r := TrialResult{
		Seed:      seed,
		Rounds:    last.Rounds,
		Escaped:   trace.Metrics["containment"] < 1,
		PeakSpeed: trace.Metrics["peak_speed"],
		Final:     last.Panel,
	}
	for _, smp := range trace.Samples {
		r.PeakLetters = max(r.PeakLetters, smp.Letters)
	}
	return r, nil
}

// TrialStats counts trials whose letters stayed in the arena and those that escaped.
func TrialStats(results []TrialResult) (kept, escaped int) {
	for _, r := range results {
		if r.Escaped {
			escaped++
		} else {
			kept++
		}
	}
	return
}
