// Package geom provides the small amount of vector and coordinate-frame
// math used for face selection and legend placement. All vectors are in
// world space unless a Frame says otherwise.
package geom

import (
	"errors"
	"math"
)

// ErrDegenerateDirection is returned when a zero-length vector is used
// where a direction is required.
var ErrDegenerateDirection = errors.New("geom: zero-length direction vector")

// Vec3 is a 3-component vector.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns v normalized to unit length. A zero-length input fails
// with ErrDegenerateDirection.
func Unit(v Vec3) (Vec3, error) {
	l := v.Length()
	if l == 0 {
		return Vec3{}, ErrDegenerateDirection
	}
	return v.Scale(1 / l), nil
}
