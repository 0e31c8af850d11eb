// Package indicator keeps the heading of the arena's centre arrow. The arrow
// points at the pointer when idle and at the newest letter after a spawn,
// blending between the two over a fixed ease whenever its target changes.
package indicator

import (
	"github.com/san-kum/folio/internal/ease"
	"github.com/san-kum/folio/internal/geom"
)

type Mode int

const (
	TrackPointer Mode = iota
	Easing
	TrackTarget
)

func (m Mode) String() string {
	switch m {
	case TrackPointer:
		return "track-pointer"
	case Easing:
		return "easing"
	case TrackTarget:
		return "track-target"
	}
	return "unknown"
}

// Target is what the indicator points at: the pointer, or a letter body
// referenced by its sequence position. The reference is weak; it is
// resolved every update and falls back to the pointer when the body is gone.
type Target struct {
	Body bool
	Seq  int
}

// Pointer is the sentinel target for the pointer.
var Pointer = Target{}

// BodyTarget references the letter at sequence position seq.
func BodyTarget(seq int) Target { return Target{Body: true, Seq: seq} }

// Resolver looks up the current position of a letter by sequence position.
type Resolver func(seq int) (geom.Vec, bool)

type Indicator struct {
	Pivot  geom.Vec
	Radius float64
	// EaseDuration is the blend length in seconds.
	EaseDuration float64

	angle     float64
	mode      Mode
	target    Target
	easeStart float64
	easeFrom  float64
}

func New(pivot geom.Vec, radius, easeDuration float64) *Indicator {
	return &Indicator{
		Pivot:        pivot,
		Radius:       radius,
		EaseDuration: easeDuration,
		mode:         TrackPointer,
		target:       Pointer,
	}
}

func (ind *Indicator) Angle() float64 { return ind.angle }
func (ind *Indicator) Mode() Mode     { return ind.mode }
func (ind *Indicator) Target() Target { return ind.target }

// SetPivot moves the indicator, used when the arena is resized.
func (ind *Indicator) SetPivot(p geom.Vec, radius float64) {
	ind.Pivot = p
	ind.Radius = radius
}

// Retarget starts a new ease toward t from the currently displayed angle.
// It may be called at any time, including mid-ease.
func (ind *Indicator) Retarget(t Target, now float64) {
	ind.target = t
	ind.easeFrom = ind.angle
	ind.easeStart = now
	ind.mode = Easing
}

// Update recomputes the heading for this frame. pointer is the live pointer
// position; resolve maps a body target to its live position.
func (ind *Indicator) Update(now float64, pointer geom.Vec, resolve Resolver) {
	aim := pointer
	onBody := false
	if ind.target.Body && resolve != nil {
		if p, ok := resolve(ind.target.Seq); ok {
			aim = p
			onBody = true
		}
	}
	if ind.target.Body && !onBody {
		// The body was retired before anyone re-homed us.
		ind.target = Pointer
		if ind.mode == TrackTarget {
			ind.mode = TrackPointer
		}
	}
	bearing := ind.Pivot.Bearing(aim)

	if ind.mode != Easing {
		ind.angle = bearing
		return
	}

	t := ease.Progress(now, ind.easeStart, ind.EaseDuration)
	ind.angle = ease.AngleLerp(ind.easeFrom, bearing, ease.InOutQuad(t))
	if t >= 1 {
		ind.angle = bearing
		if onBody {
			ind.mode = TrackTarget
		} else {
			ind.mode = TrackPointer
		}
	}
}
