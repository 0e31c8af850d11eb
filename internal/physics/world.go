package physics

import "github.com/san-kum/folio/internal/geom"

// Handle identifies a body owned by a World. The zero Handle is never issued.
type Handle int

type Shape int

const (
	Circle Shape = iota
	Rectangle
)

// Options are the per-body material properties.
type Options struct {
	Restitution float64
	Friction    float64
	FrictionAir float64
	Density     float64
	Static      bool
	// Kinematic bodies are moved only by SetPosition; they push dynamic
	// bodies but are never pushed back.
	Kinematic bool
	// FixedRotation disables spin from contact friction.
	FixedRotation bool
}

func DefaultOptions() Options {
	return Options{
		Restitution: 0,
		Friction:    0.1,
		FrictionAir: 0.01,
		Density:     0.001,
	}
}

// World is the contract the arena consumes from a physics engine.
type World interface {
	CreateCircle(pos geom.Vec, radius float64, opts Options) Handle
	CreateStaticRect(center geom.Vec, w, h float64) Handle
	Add(h Handle)
	Remove(h Handle)
	SetVelocity(h Handle, v geom.Vec)
	SetPosition(h Handle, p geom.Vec)
	ApplyForce(h Handle, f geom.Vec)
	SetGravity(g geom.Vec)
	Gravity() geom.Vec
	Step()
	Position(h Handle) geom.Vec
	Velocity(h Handle) geom.Vec
	Angle(h Handle) float64
	Contains(h Handle) bool
	Len() int
}
