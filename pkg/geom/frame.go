package geom

import "math"

// Frame is an orthonormal coordinate system anchored at a point in world
// space. X, Y and Z are the frame's axes as world-space unit vectors; Z is
// the surface normal when the frame sits on a face. Frames are values,
// recomputed per build and never persisted.
type Frame struct {
	Origin  Vec3
	X, Y, Z Vec3
}

// Apply maps a point from frame-local coordinates to world coordinates.
func (f Frame) Apply(p Vec3) Vec3 {
	return f.Origin.
		Add(f.X.Scale(p.X)).
		Add(f.Y.Scale(p.Y)).
		Add(f.Z.Scale(p.Z))
}

// Offset returns a frame with the same axes whose origin is shifted by the
// given frame-local translation.
func (f Frame) Offset(local Vec3) Frame {
	f.Origin = f.Apply(local)
	return f
}

// EulerZYX decomposes the frame's rotation into Euler angles (radians)
// such that composing RotZ(rz)·RotY(ry)·RotX(rx) reproduces the rotation
// whose columns are X, Y, Z. Geometry kernels that only expose axis
// rotations rebuild the frame's orientation from these.
func (f Frame) EulerZYX() (rx, ry, rz float64) {
	// Rotation matrix with the frame axes as columns, row-major.
	r00, r10, r20 := f.X.X, f.X.Y, f.X.Z
	r21, r22 := f.Y.Z, f.Z.Z
	r11, r12 := f.Y.Y, f.Z.Y

	sy := math.Sqrt(r00*r00 + r10*r10)
	if sy > 1e-9 {
		rx = math.Atan2(r21, r22)
		ry = math.Atan2(-r20, sy)
		rz = math.Atan2(r10, r00)
		return rx, ry, rz
	}
	// Gimbal lock: Y rotation is ±90°, X and Z are coupled. Fold
	// everything into the X angle.
	rx = math.Atan2(-r12, r11)
	ry = math.Atan2(-r20, sy)
	rz = 0
	return rx, ry, rz
}
