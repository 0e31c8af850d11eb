// Package geom holds the small 2D vector and rectangle types shared by the
// arena, the physics engine and the renderers.
package geom

import "math"

type Vec struct {
	X, Y float64
}

func V(x, y float64) Vec { return Vec{X: x, Y: y} }

func (v Vec) Add(o Vec) Vec         { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec         { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(f float64) Vec   { return Vec{v.X * f, v.Y * f} }
func (v Vec) Dot(o Vec) float64     { return v.X*o.X + v.Y*o.Y }
func (v Vec) Cross(o Vec) float64   { return v.X*o.Y - v.Y*o.X }
func (v Vec) Len() float64          { return math.Hypot(v.X, v.Y) }
func (v Vec) Perp() Vec             { return Vec{-v.Y, v.X} }
func (v Vec) Dist(o Vec) float64    { return v.Sub(o).Len() }
func (v Vec) Bearing(o Vec) float64 { return math.Atan2(o.Y-v.Y, o.X-v.X) }

// Unit returns v scaled to length 1, or the zero vector if v is zero.
func (v Vec) Unit() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Polar returns the vector of length r at angle a (radians).
func Polar(r, a float64) Vec {
	return Vec{r * math.Cos(a), r * math.Sin(a)}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Center() Vec { return Vec{r.X + r.W/2, r.Y + r.H/2} }
func (r Rect) Max() Vec    { return Vec{r.X + r.W, r.Y + r.H} }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Clamp returns the point of r closest to p.
func (r Rect) Clamp(p Vec) Vec {
	return Vec{
		X: math.Max(r.X, math.Min(p.X, r.X+r.W)),
		Y: math.Max(r.Y, math.Min(p.Y, r.Y+r.H)),
	}
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{r.X + d, r.Y + d, r.W - 2*d, r.H - 2*d}
}
