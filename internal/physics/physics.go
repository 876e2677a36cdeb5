// Package physics provides distance, direction and rotation helpers shared by
// the sprite and explosion systems.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// epsilon is the length below which a vector has no usable direction.
const epsilon = 1e-9

// Up is the reference facing of an unrotated entity (screen y grows downwards).
var Up = mgl64.Vec3{0, -1, 0}

// zAxis is the rotation axis for all 2D headings.
var zAxis = mgl64.Vec3{0, 0, 1}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b mgl64.Vec3) float64 {
	return b.Sub(a).Len()
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b mgl64.Vec3) float64 {
	d := b.Sub(a)
	return d.Dot(d)
}

// Within reports whether p lies strictly closer than radius to center.
func Within(p, center mgl64.Vec3, radius float64) bool {
	if radius <= 0 {
		return false
	}
	return DistanceSquared(p, center) < radius*radius
}

// SafeNormalize returns v scaled to unit length, or false when v is too short
// to have a direction.
func SafeNormalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l < epsilon || math.IsNaN(l) {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// OrientedAngle returns the signed angle in radians that rotates unit vector
// from onto unit vector to, positive when the rotation is counter-clockwise
// about +Z.
func OrientedAngle(from, to mgl64.Vec3) float64 {
	d := mgl64.Clamp(from.Dot(to), -1, 1)
	angle := math.Acos(d)
	if zAxis.Dot(from.Cross(to)) < 0 {
		return -angle
	}
	return angle
}

// RotateZ rotates v about the Z axis by deg degrees.
func RotateZ(v mgl64.Vec3, deg float64) mgl64.Vec3 {
	return mgl64.Rotate3DZ(mgl64.DegToRad(deg)).Mul3x1(v)
}

// RandomPlanarDirection returns a unit vector in the XY plane built from two
// samples in [-1, 1), resampling the degenerate zero case.
func RandomPlanarDirection(sample func(lo, hi float64) float64) mgl64.Vec3 {
	for range 8 {
		dir, ok := SafeNormalize(mgl64.Vec3{sample(-1, 1), sample(-1, 1), 0})
		if ok {
			return dir
		}
	}
	return Up
}
