package sdfx

import (
	"math"

	"github.com/ninicksicard/keylegend/pkg/geom"
	"github.com/ninicksicard/keylegend/pkg/kernel"
)

// planeFace is a flat boundary patch with a constant normal. The
// parameter domain covers the face's extents; uMin and vMin are zero.
type planeFace struct {
	center     geom.Vec3
	normal     geom.Vec3
	uMax, vMax float64
}

var _ kernel.Face = (*planeFace)(nil)

func (f *planeFace) ParameterDomain() (uMin, uMax, vMin, vMax float64) {
	return 0, f.uMax, 0, f.vMax
}

func (f *planeFace) NormalAt(u, v float64) (geom.Vec3, error) {
	return f.normal, nil
}

func (f *planeFace) Centroid() geom.Vec3 {
	return f.center
}

// cylinderFace is the lateral wall of a cylinder centered at the origin
// along Z. u is the angle around the axis, v the height along it; the
// normal is radial and genuinely varies with u.
type cylinderFace struct {
	center geom.Vec3
	radius float64
	height float64
}

var _ kernel.Face = (*cylinderFace)(nil)

func (f *cylinderFace) ParameterDomain() (uMin, uMax, vMin, vMax float64) {
	return 0, 2 * math.Pi, -f.height / 2, f.height / 2
}

func (f *cylinderFace) NormalAt(u, v float64) (geom.Vec3, error) {
	return geom.Vec3{X: math.Cos(u), Y: math.Sin(u)}, nil
}

func (f *cylinderFace) Centroid() geom.Vec3 {
	return f.center
}

// offsetFace shifts another face's centroid; the normal field is
// translation invariant.
type offsetFace struct {
	inner  kernel.Face
	offset geom.Vec3
}

var _ kernel.Face = (*offsetFace)(nil)

func (f *offsetFace) ParameterDomain() (uMin, uMax, vMin, vMax float64) {
	return f.inner.ParameterDomain()
}

func (f *offsetFace) NormalAt(u, v float64) (geom.Vec3, error) {
	return f.inner.NormalAt(u, v)
}

func (f *offsetFace) Centroid() geom.Vec3 {
	return f.inner.Centroid().Add(f.offset)
}

// flippedFace inverts another face's normals. Used for the faces of a
// subtracted solid, which bound the resulting cavity from inside.
type flippedFace struct {
	inner kernel.Face
}

var _ kernel.Face = (*flippedFace)(nil)

func (f *flippedFace) ParameterDomain() (uMin, uMax, vMin, vMax float64) {
	return f.inner.ParameterDomain()
}

func (f *flippedFace) NormalAt(u, v float64) (geom.Vec3, error) {
	n, err := f.inner.NormalAt(u, v)
	if err != nil {
		return geom.Vec3{}, err
	}
	return n.Neg(), nil
}

func (f *flippedFace) Centroid() geom.Vec3 {
	return f.inner.Centroid()
}
