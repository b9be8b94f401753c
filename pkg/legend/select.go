package legend

import (
	"math"

	"github.com/ninicksicard/keylegend/pkg/geom"
	"github.com/ninicksicard/keylegend/pkg/kernel"
)

// scoreEpsilon bounds the alignment band within which two faces count as
// equally aligned and the support tie-break decides.
const scoreEpsilon = 1e-6

// SelectFace scans the solid's faces and returns the one best aligned
// with the requested outward direction. Alignment is the dot product of
// the face normal, evaluated at the midpoint of the face's own parameter
// domain, with the normalized direction. Among equally aligned faces the
// one farthest out along the direction wins, so on a solid with several
// parallel faces (a pocket floor under an outer cap) the outer face is
// chosen deterministically.
//
// Faces whose normal evaluation fails or degenerates are skipped, not
// fatal. A zero-length direction fails with geom.ErrDegenerateDirection;
// a solid yielding no usable candidate fails with ErrNoSuitableFace.
func SelectFace(k kernel.Kernel, s kernel.Solid, direction geom.Vec3) (kernel.Face, error) {
	dir, err := geom.Unit(direction)
	if err != nil {
		return nil, err
	}

	var best kernel.Face
	bestScore := -1.0
	bestSupport := -1e100

	for _, face := range k.Faces(s) {
		uMin, uMax, vMin, vMax := face.ParameterDomain()
		n, err := face.NormalAt(0.5*(uMin+uMax), 0.5*(vMin+vMax))
		if err != nil {
			continue
		}
		normal, err := geom.Unit(n)
		if err != nil {
			continue
		}

		score := normal.Dot(dir)
		if score < bestScore {
			continue
		}

		support := face.Centroid().Dot(dir)

		if score > bestScore+scoreEpsilon ||
			(math.Abs(score-bestScore) <= scoreEpsilon && support > bestSupport) {
			best = face
			bestScore = score
			bestSupport = support
		}
	}

	if best == nil {
		return nil, ErrNoSuitableFace
	}
	return best, nil
}
