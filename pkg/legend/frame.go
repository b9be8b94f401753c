package legend

import (
	"fmt"
	"math"

	"github.com/ninicksicard/keylegend/pkg/geom"
	"github.com/ninicksicard/keylegend/pkg/kernel"
)

// upFallbackThreshold is how close to world +Z the face normal may get
// before the cross product against +Z becomes ill-conditioned and the
// up reference falls back to world +Y.
const upFallbackThreshold = 0.95

// PlaceFrame builds an orthonormal local frame anchored on the face:
// origin at the centroid, Z along the face normal at the parametric
// midpoint, X and Y a stable in-plane basis. The normal is recomputed
// here rather than reusing a cached value, so the function stands on its
// own. It does not fail for any face SelectFace accepted.
func PlaceFrame(face kernel.Face) (geom.Frame, error) {
	uMin, uMax, vMin, vMax := face.ParameterDomain()
	n, err := face.NormalAt(0.5*(uMin+uMax), 0.5*(vMin+vMax))
	if err != nil {
		return geom.Frame{}, fmt.Errorf("legend: face normal: %w", err)
	}
	normal, err := geom.Unit(n)
	if err != nil {
		return geom.Frame{}, fmt.Errorf("legend: face normal: %w", err)
	}

	up := geom.Vec3{Z: 1}
	if math.Abs(normal.Dot(up)) > upFallbackThreshold {
		up = geom.Vec3{Y: 1}
	}

	x, err := geom.Unit(up.Cross(normal))
	if err != nil {
		return geom.Frame{}, fmt.Errorf("legend: in-plane basis: %w", err)
	}
	y, err := geom.Unit(normal.Cross(x))
	if err != nil {
		return geom.Frame{}, fmt.Errorf("legend: in-plane basis: %w", err)
	}

	return geom.Frame{Origin: face.Centroid(), X: x, Y: y, Z: normal}, nil
}
