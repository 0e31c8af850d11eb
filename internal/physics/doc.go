// Package physics provides the rigid-body world the arena runs on.
//
// The arena only needs a narrow slice of a physics engine, captured by the
// [World] interface:
//
//   - create circle bodies and static rectangles
//   - add and remove them from the world
//   - set velocity and position, apply forces
//   - step the world and read back position and angle
//
// [Engine] is the built-in implementation: circles and static rectangles
// only, fixed step, impulse contacts. Units follow the convention of the
// browser engines the arena was designed against: positions in pixels,
// velocities in pixels per step, gravity in "g" scaled by 0.001 per ms².
//
// # Example
//
//	w := physics.NewEngine()
//	physics.BuildWalls(w, arena, 100)
//	h := w.CreateCircle(geom.V(200, 200), 24, physics.DefaultOptions())
//	w.Add(h)
//	w.SetVelocity(h, geom.V(0, -7))
//	w.Step()
//
// # Thread Safety
//
// Engine is NOT thread-safe. It is driven from a single frame loop.
package physics
