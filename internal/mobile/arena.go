// Package mobile is the small-screen variant of the arena: a motion
// permission gate, then a zero-gravity box of letters steered by device tilt
// around a fixed contact ball.
package mobile

import (
	"context"
	"log"
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/geom"
	"github.com/san-kum/folio/internal/physics"
)

type Stage int

const (
	EnableMotion Stage = iota
	ShowTextBall
)

func (s Stage) String() string {
	switch s {
	case EnableMotion:
		return "enable-motion"
	case ShowTextBall:
		return "show-text-ball"
	}
	return "unknown"
}

// Permitter asks the platform for access to motion sensors. It may block.
type Permitter interface {
	RequestPermission(ctx context.Context) (bool, error)
}

// PermitterFunc adapts a function to Permitter.
type PermitterFunc func(ctx context.Context) (bool, error)

func (f PermitterFunc) RequestPermission(ctx context.Context) (bool, error) { return f(ctx) }

// Ball is one letter bouncing around the screen.
type Ball struct {
	Glyph  string
	Radius float64
	Handle physics.Handle
}

type Arena struct {
	cfg   config.MobileConfig
	world physics.World
	rng   *rand.Rand

	w, h     float64
	walls    []physics.Handle
	center   physics.Handle
	rotation float64

	stage  Stage
	balls  []Ball
	queue  []string
	nextAt float64

	mu      sync.Mutex
	granted bool
}

func New(cfg config.MobileConfig, w, h float64, rng *rand.Rand) *Arena {
	world := physics.NewEngine()
	world.SetGravity(geom.Vec{})
	a := &Arena{cfg: cfg, world: world, rng: rng, w: w, h: h}
	a.buildFixtures()
	return a
}

func (a *Arena) buildFixtures() {
	a.walls = physics.BuildWalls(a.world, geom.Rect{W: a.w, H: a.h}, a.cfg.WallThick)
	a.center = a.world.CreateCircle(a.Center(), a.cfg.CenterRadius, physics.Options{Static: true})
	a.world.Add(a.center)
}

func (a *Arena) Stage() Stage         { return a.stage }
func (a *Arena) Balls() []Ball        { return a.balls }
func (a *Arena) Rotation() float64    { return a.rotation }
func (a *Arena) World() physics.World { return a.world }
func (a *Arena) Center() geom.Vec     { return geom.V(a.w/2, a.h/2) }

// RequestPermission runs the platform prompt. A grant takes effect on the
// next Tick; a denial or error leaves the gate where it is so the user can
// try again.
func (a *Arena) RequestPermission(ctx context.Context, p Permitter) bool {
	ok, err := p.RequestPermission(ctx)
	if err != nil {
		log.Printf("mobile: motion permission: %v", err)
		ok = false
	}
	log.Printf("mobile: motion permission granted=%t", ok)
	if ok {
		a.mu.Lock()
		a.granted = true
		a.mu.Unlock()
	}
	return ok
}

// PromptHit reports whether pos touches the "enable motion" ball while the
// gate is showing.
func (a *Arena) PromptHit(pos geom.Vec) bool {
	return a.stage == EnableMotion && pos.Dist(a.Center()) <= a.cfg.CenterRadius
}

// Tap returns the contact URL when the centre ball is touched after the gate
// has been passed.
func (a *Arena) Tap(pos geom.Vec) (string, bool) {
	if a.stage != ShowTextBall || pos.Dist(a.Center()) > a.cfg.CenterRadius {
		return "", false
	}
	return a.cfg.ContactURL, true
}

// Tick advances to now: applies a pending grant, releases queued letters
// and steps the world.
func (a *Arena) Tick(now float64) {
	a.mu.Lock()
	granted := a.granted
	a.mu.Unlock()

	if granted && a.stage == EnableMotion {
		a.stage = ShowTextBall
		a.queue = a.spawnQueue()
		a.nextAt = now
		log.Printf("mobile: %s, %d letters queued", a.stage, len(a.queue))
	}

	for len(a.queue) > 0 && now >= a.nextAt {
		a.spawn(a.queue[0])
		a.queue = a.queue[1:]
		a.nextAt += a.cfg.Interval
	}

	a.world.Step()
}

func (a *Arena) spawnQueue() []string {
	var q []string
	for n := 0; n < a.cfg.Repeats; n++ {
		for _, r := range a.cfg.Letters {
			q = append(q, strings.ToUpper(string(r)))
		}
	}
	return q
}

func (a *Arena) spawn(glyph string) {
	r := a.cfg.LetterRadius
	pos := geom.V(
		r+a.rng.Float64()*math.Max(0, a.w-2*r),
		r+a.rng.Float64()*math.Max(0, a.h-2*r),
	)
	opts := physics.DefaultOptions()
	opts.Restitution = a.cfg.Restitution
	opts.FrictionAir = a.cfg.AirDrag
	h := a.world.CreateCircle(pos, r, opts)
	a.world.Add(h)
	a.balls = append(a.balls, Ball{Glyph: glyph, Radius: r, Handle: h})
}

// Pending is the number of letters still waiting to be released.
func (a *Arena) Pending() int { return len(a.queue) }

// OnOrientation maps a tilt sample in degrees onto gravity and turns the
// centre ball to the compass heading. Samples with a zero beta or gamma are
// treated as missing readings.
func (a *Arena) OnOrientation(beta, gamma, alpha float64) {
	if a.stage != ShowTextBall || beta == 0 || gamma == 0 {
		return
	}
	a.world.SetGravity(geom.V(a.tilt(gamma), a.tilt(beta)))
	a.rotation = alpha * math.Pi / 180
}

func (a *Arena) tilt(deg float64) float64 {
	return deg / a.cfg.TiltRange * a.cfg.GravityRange
}

// OnMotion kicks every ball along the device acceleration when it exceeds
// the shake threshold.
func (a *Arena) OnMotion(ax, ay, az float64) {
	if a.stage != ShowTextBall {
		return
	}
	if math.Sqrt(ax*ax+ay*ay+az*az) <= a.cfg.ShakeThreshold {
		return
	}
	f := geom.V(ax, ay).Scale(a.cfg.ShakeForce)
	for _, b := range a.balls {
		a.world.ApplyForce(b.Handle, f)
	}
}

// OnResize rebuilds the box for a w×h screen and carries balls to the same
// relative position.
func (a *Arena) OnResize(w, h float64) {
	if w == a.w && h == a.h {
		return
	}
	physics.RemoveAll(a.world, a.walls)
	a.world.Remove(a.center)
	sx, sy := w/a.w, h/a.h
	for _, b := range a.balls {
		p := a.world.Position(b.Handle)
		a.world.SetPosition(b.Handle, geom.V(p.X*sx, p.Y*sy))
	}
	a.w, a.h = w, h
	a.buildFixtures()
}
