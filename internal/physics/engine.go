package physics

import (
	"math"

	"github.com/san-kum/folio/internal/geom"
)

const (
	// DefaultDelta is the fixed step length in milliseconds.
	DefaultDelta = 1000.0 / 60.0
	// GravityScale converts a gravity of 1 into px/ms².
	GravityScale = 0.001

	defaultIterations = 6
	correctionPercent = 0.8
	correctionSlop    = 0.05
)

type body struct {
	shape  Shape
	pos    geom.Vec
	vel    geom.Vec
	force  geom.Vec
	angle  float64
	angVel float64
	radius float64
	w, h   float64

	invMass    float64
	invInertia float64
	opts       Options
	inWorld    bool
}

func (b *body) movable() bool { return b.invMass > 0 }

// Engine is a small impulse-based engine for circles and static rectangles.
type Engine struct {
	Delta      float64
	Iterations int

	gravity geom.Vec
	bodies  map[Handle]*body
	order   []Handle
	next    Handle
}

func NewEngine() *Engine {
	return &Engine{
		Delta:      DefaultDelta,
		Iterations: defaultIterations,
		gravity:    geom.V(0, 1),
		bodies:     make(map[Handle]*body),
	}
}

func (e *Engine) alloc(b *body) Handle {
	e.next++
	e.bodies[e.next] = b
	return e.next
}

func (e *Engine) CreateCircle(pos geom.Vec, radius float64, opts Options) Handle {
	b := &body{shape: Circle, pos: pos, radius: radius, opts: opts}
	if !opts.Static && !opts.Kinematic {
		density := opts.Density
		if density <= 0 {
			density = DefaultOptions().Density
		}
		mass := density * math.Pi * radius * radius
		b.invMass = 1 / mass
		if !opts.FixedRotation {
			b.invInertia = 1 / (0.5 * mass * radius * radius)
		}
	}
	return e.alloc(b)
}

func (e *Engine) CreateStaticRect(center geom.Vec, w, h float64) Handle {
	return e.alloc(&body{
		shape: Rectangle,
		pos:   center,
		w:     w,
		h:     h,
		opts:  Options{Static: true, Friction: 0.1},
	})
}

func (e *Engine) Add(h Handle) {
	b, ok := e.bodies[h]
	if !ok || b.inWorld {
		return
	}
	b.inWorld = true
	e.order = append(e.order, h)
}

// Remove takes h out of the world and releases it. Removing an unknown or
// already removed handle is a no-op.
func (e *Engine) Remove(h Handle) {
	b, ok := e.bodies[h]
	if !ok {
		return
	}
	delete(e.bodies, h)
	if !b.inWorld {
		return
	}
	for i, o := range e.order {
		if o == h {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

func (e *Engine) Contains(h Handle) bool {
	b, ok := e.bodies[h]
	return ok && b.inWorld
}

func (e *Engine) SetVelocity(h Handle, v geom.Vec) {
	if b, ok := e.bodies[h]; ok {
		b.vel = v
	}
}

func (e *Engine) SetPosition(h Handle, p geom.Vec) {
	if b, ok := e.bodies[h]; ok {
		b.pos = p
	}
}

func (e *Engine) ApplyForce(h Handle, f geom.Vec) {
	if b, ok := e.bodies[h]; ok && b.movable() {
		b.force = b.force.Add(f)
	}
}

func (e *Engine) SetGravity(g geom.Vec) { e.gravity = g }
func (e *Engine) Gravity() geom.Vec     { return e.gravity }

func (e *Engine) Position(h Handle) geom.Vec {
	if b, ok := e.bodies[h]; ok {
		return b.pos
	}
	return geom.Vec{}
}

func (e *Engine) Velocity(h Handle) geom.Vec {
	if b, ok := e.bodies[h]; ok {
		return b.vel
	}
	return geom.Vec{}
}

func (e *Engine) Angle(h Handle) float64 {
	if b, ok := e.bodies[h]; ok {
		return b.angle
	}
	return 0
}

// Len returns the number of bodies currently in the world.
func (e *Engine) Len() int { return len(e.order) }

// Step advances the world by one fixed Delta.
func (e *Engine) Step() {
	dt2 := e.Delta * e.Delta
	g := e.gravity.Scale(GravityScale)

	for _, h := range e.order {
		b := e.bodies[h]
		if !b.movable() {
			continue
		}
		acc := g.Add(b.force.Scale(b.invMass))
		b.vel = b.vel.Scale(1 - b.opts.FrictionAir).Add(acc.Scale(dt2))
		b.pos = b.pos.Add(b.vel)
		b.angVel *= 1 - b.opts.FrictionAir
		b.angle += b.angVel
		b.force = geom.Vec{}
	}

	for it := 0; it < e.Iterations; it++ {
		e.solve(it == 0)
	}
}

func (e *Engine) solve(withImpulse bool) {
	n := len(e.order)
	for i := 0; i < n; i++ {
		a := e.bodies[e.order[i]]
		for j := i + 1; j < n; j++ {
			b := e.bodies[e.order[j]]
			if !a.movable() && !b.movable() {
				continue
			}
			switch {
			case a.shape == Circle && b.shape == Circle:
				e.collideCircles(a, b, withImpulse)
			case a.shape == Circle && b.shape == Rectangle:
				e.collideCircleRect(a, b, withImpulse)
			case a.shape == Rectangle && b.shape == Circle:
				e.collideCircleRect(b, a, withImpulse)
			}
		}
	}
}

func (e *Engine) collideCircles(a, b *body, withImpulse bool) {
	d := b.pos.Sub(a.pos)
	dist := d.Len()
	overlap := a.radius + b.radius - dist
	if overlap <= 0 {
		return
	}
	normal := geom.V(0, -1)
	if dist > 0 {
		normal = d.Scale(1 / dist)
	}
	resolve(a, b, normal, overlap, normal.Scale(a.radius), normal.Scale(-b.radius), withImpulse)
}

// collideCircleRect resolves circle c against static rectangle r.
func (e *Engine) collideCircleRect(c, r *body, withImpulse bool) {
	rect := geom.Rect{X: r.pos.X - r.w/2, Y: r.pos.Y - r.h/2, W: r.w, H: r.h}
	closest := rect.Clamp(c.pos)
	d := c.pos.Sub(closest)
	dist := d.Len()

	var normal geom.Vec
	var overlap float64
	if dist > 0 {
		if dist >= c.radius {
			return
		}
		normal = d.Scale(-1 / dist)
		overlap = c.radius - dist
	} else {
		// Centre inside the slab: push out along the shallowest axis.
		left := c.pos.X - rect.X
		right := rect.X + rect.W - c.pos.X
		top := c.pos.Y - rect.Y
		bottom := rect.Y + rect.H - c.pos.Y
		m := math.Min(math.Min(left, right), math.Min(top, bottom))
		switch m {
		case left:
			normal = geom.V(1, 0)
		case right:
			normal = geom.V(-1, 0)
		case top:
			normal = geom.V(0, 1)
		default:
			normal = geom.V(0, -1)
		}
		overlap = m + c.radius
	}
	// normal points from c into r.
	resolve(c, r, normal, overlap, normal.Scale(c.radius), geom.Vec{}, withImpulse)
}

// resolve separates a and b along normal (pointing from a to b) and applies
// restitution and friction impulses. ra and rb are the contact offsets from
// each centre.
func resolve(a, b *body, normal geom.Vec, overlap float64, ra, rb geom.Vec, withImpulse bool) {
	invSum := a.invMass + b.invMass
	if invSum == 0 {
		return
	}

	if depth := overlap - correctionSlop; depth > 0 {
		corr := depth * correctionPercent / invSum
		a.pos = a.pos.Sub(normal.Scale(corr * a.invMass))
		b.pos = b.pos.Add(normal.Scale(corr * b.invMass))
	}
	if !withImpulse {
		return
	}

	va := a.vel.Add(ra.Perp().Scale(a.angVel))
	vb := b.vel.Add(rb.Perp().Scale(b.angVel))
	rel := vb.Sub(va)
	vn := rel.Dot(normal)
	if vn >= 0 {
		return
	}

	restitution := math.Max(a.opts.Restitution, b.opts.Restitution)
	jn := -(1 + restitution) * vn / invSum
	impulse := normal.Scale(jn)
	a.vel = a.vel.Sub(impulse.Scale(a.invMass))
	b.vel = b.vel.Add(impulse.Scale(b.invMass))

	tangent := normal.Perp()
	vt := rel.Dot(tangent)
	friction := math.Sqrt(a.opts.Friction * b.opts.Friction)
	raT := ra.Cross(tangent)
	rbT := rb.Cross(tangent)
	tSum := invSum + raT*raT*a.invInertia + rbT*rbT*b.invInertia
	jt := -vt / tSum
	limit := friction * jn
	jt = math.Max(-limit, math.Min(jt, limit))
	ft := tangent.Scale(jt)
	a.vel = a.vel.Sub(ft.Scale(a.invMass))
	b.vel = b.vel.Add(ft.Scale(b.invMass))
	a.angVel -= ra.Cross(ft) * a.invInertia
	b.angVel += rb.Cross(ft) * b.invInertia
}
