package geom

import "gonum.org/v1/gonum/spatial/r2"

// Vec is a continuous 2-D position or displacement in world units.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec) r2() r2.Vec { return r2.Vec{X: v.X, Y: v.Y} }

func fromR2(v r2.Vec) Vec { return Vec{X: v.X, Y: v.Y} }

// Add returns v+o.
func (v Vec) Add(o Vec) Vec { return fromR2(r2.Add(v.r2(), o.r2())) }

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec { return fromR2(r2.Sub(v.r2(), o.r2())) }

// Scale returns v multiplied by f.
func (v Vec) Scale(f float64) Vec { return fromR2(r2.Scale(f, v.r2())) }

// Len returns the Euclidean magnitude of v.
func (v Vec) Len() float64 { return r2.Norm(v.r2()) }

// Unit returns v scaled to length 1. The zero vector stays zero.
func (v Vec) Unit() Vec {
	if v.IsZero() {
		return v
	}
	return fromR2(r2.Unit(v.r2()))
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }

// ClampLen returns v unchanged when its length is at most limit, otherwise v
// rescaled to exactly limit.
func (v Vec) ClampLen(limit float64) Vec {
	if v.Len() > limit {
		return v.Unit().Scale(limit)
	}
	return v
}
