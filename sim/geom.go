package sim

import "math"

// Vec is a point or displacement in world units
type Vec struct {
	X, Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * k
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the euclidean length of v
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the direction of v in radians, 0 along +X and pi/2 along +Y
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Heading returns the unit vector for angle a in radians
func Heading(a float64) Vec {
	return Vec{X: math.Cos(a), Y: math.Sin(a)}
}

// Rect is an axis-aligned box anchored at its top-left corner
type Rect struct {
	X, Y, W, H float64
}

// ContainsStrict reports whether p lies strictly inside r.
// Points on an edge do not count, matching the game's hit test.
func (r Rect) ContainsStrict(p Vec) bool {
	return p.X > r.X && p.X < r.X+r.W && p.Y > r.Y && p.Y < r.Y+r.H
}

// Center returns the middle of r
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Arena is the playable area, from the origin to (Width, Height)
type Arena struct {
	Width, Height float64
}

// Contains reports whether p lies in [0, Width) x [0, Height)
func (a Arena) Contains(p Vec) bool {
	return p.X >= 0 && p.X < a.Width && p.Y >= 0 && p.Y < a.Height
}

// Center returns the middle of the arena
func (a Arena) Center() Vec {
	return Vec{X: a.Width / 2, Y: a.Height / 2}
}

// ClampCenter keeps a square of the given half size inside the arena.
// An axis too small to hold the square pins it to the axis midpoint.
func (a Arena) ClampCenter(p Vec, half float64) Vec {
	return Vec{
		X: clampAxis(p.X, half, a.Width-half),
		Y: clampAxis(p.Y, half, a.Height-half),
	}
}

func clampAxis(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
