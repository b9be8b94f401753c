// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
//
// Signed distance fields have no intrinsic boundary representation, so
// this backend carries an explicit face list on every solid: primitives
// and extrusions record their boundary patches at construction time and
// boolean operations merge the operand lists (flipping the normals of a
// subtracted operand, whose surfaces become inner walls). That is enough
// for face selection, which only ever needs parameter domains, normals
// and centroids.
package sdfx

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ninicksicard/keylegend/pkg/geom"
	"github.com/ninicksicard/keylegend/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// Tessellation resolution bounds for marching cubes. The cell count is
// derived from the requested chordal tolerance and clamped to this range.
const (
	minMeshCells = 32
	maxMeshCells = 400
)

// sdfxSolid wraps an sdf.SDF3 plus its tracked boundary faces.
type sdfxSolid struct {
	s     sdf.SDF3
	faces []kernel.Face
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max geom.Vec3) {
	bb := s.s.BoundingBox()
	min = geom.Vec3{X: bb.Min.X, Y: bb.Min.Y, Z: bb.Min.Z}
	max = geom.Vec3{X: bb.Max.X, Y: bb.Max.Y, Z: bb.Max.Z}
	return min, max
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct{}

// New returns a new SdfxKernel.
func New() *SdfxKernel {
	return &SdfxKernel{}
}

// unwrap extracts the underlying solid from a kernel.Solid.
func unwrap(s kernel.Solid) *sdfxSolid {
	return s.(*sdfxSolid)
}

// Box creates a box with the given dimensions and its minimum corner at
// the origin (0,0,0). sdf.Box3D centers the box at the origin, so we
// translate by half-dimensions. The six planar faces are recorded with
// their world-space extents as parameter domains.
func (k *SdfxKernel) Box(x, y, z float64) kernel.Solid {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Box3D: %v", err))
	}
	// Shift from center-origin to min-corner-origin.
	m := sdf.Translate3d(v3.Vec{X: x / 2, Y: y / 2, Z: z / 2})

	cx, cy, cz := x/2, y/2, z/2
	faces := []kernel.Face{
		&planeFace{center: geom.Vec3{X: cx, Y: cy, Z: z}, normal: geom.Vec3{Z: 1}, uMax: x, vMax: y},
		&planeFace{center: geom.Vec3{X: cx, Y: cy, Z: 0}, normal: geom.Vec3{Z: -1}, uMax: x, vMax: y},
		&planeFace{center: geom.Vec3{X: cx, Y: y, Z: cz}, normal: geom.Vec3{Y: 1}, uMax: x, vMax: z},
		&planeFace{center: geom.Vec3{X: cx, Y: 0, Z: cz}, normal: geom.Vec3{Y: -1}, uMax: x, vMax: z},
		&planeFace{center: geom.Vec3{X: x, Y: cy, Z: cz}, normal: geom.Vec3{X: 1}, uMax: y, vMax: z},
		&planeFace{center: geom.Vec3{X: 0, Y: cy, Z: cz}, normal: geom.Vec3{X: -1}, uMax: y, vMax: z},
	}

	return &sdfxSolid{s: sdf.Transform3D(s, m), faces: faces}
}

// Cylinder creates a cylinder along Z, centered at the origin. Its face
// list holds the two planar caps and the parametric lateral wall.
func (k *SdfxKernel) Cylinder(height, radius float64) kernel.Solid {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		panic(fmt.Sprintf("sdfx.Cylinder3D: %v", err))
	}
	faces := []kernel.Face{
		&planeFace{center: geom.Vec3{Z: height / 2}, normal: geom.Vec3{Z: 1}, uMax: 2 * radius, vMax: 2 * radius},
		&planeFace{center: geom.Vec3{Z: -height / 2}, normal: geom.Vec3{Z: -1}, uMax: 2 * radius, vMax: 2 * radius},
		&cylinderFace{radius: radius, height: height},
	}
	return &sdfxSolid{s: s, faces: faces}
}

// Faces returns the solid's tracked boundary faces.
func (k *SdfxKernel) Faces(s kernel.Solid) []kernel.Face {
	return unwrap(s).faces
}

// Copy returns an independent handle to the same geometry. SDFs are
// immutable so the underlying field is shared; only the face list is
// duplicated. Kept in the interface for engines with consuming booleans.
func (k *SdfxKernel) Copy(s kernel.Solid) kernel.Solid {
	src := unwrap(s)
	faces := make([]kernel.Face, len(src.faces))
	copy(faces, src.faces)
	return &sdfxSolid{s: src.s, faces: faces}
}

// Translate moves a solid by (x, y, z), faces included.
func (k *SdfxKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	src := unwrap(s)
	m := sdf.Translate3d(v3.Vec{X: x, Y: y, Z: z})
	d := geom.Vec3{X: x, Y: y, Z: z}
	faces := make([]kernel.Face, len(src.faces))
	for i, f := range src.faces {
		faces[i] = &offsetFace{inner: f, offset: d}
	}
	return &sdfxSolid{s: sdf.Transform3D(src.s, m), faces: faces}
}

// Union returns the boolean union of two solids. The result's face list
// is the concatenation of both operands' faces.
func (k *SdfxKernel) Union(a, b kernel.Solid) (kernel.Solid, error) {
	sa, sb := unwrap(a), unwrap(b)
	faces := make([]kernel.Face, 0, len(sa.faces)+len(sb.faces))
	faces = append(faces, sa.faces...)
	faces = append(faces, sb.faces...)
	return &sdfxSolid{s: sdf.Union3D(sa.s, sb.s), faces: faces}, nil
}

// Difference returns the boolean difference a - b. The subtracted
// operand's faces survive with flipped normals: they bound the cavity
// from inside the remaining material.
func (k *SdfxKernel) Difference(a, b kernel.Solid) (kernel.Solid, error) {
	sa, sb := unwrap(a), unwrap(b)
	faces := make([]kernel.Face, 0, len(sa.faces)+len(sb.faces))
	faces = append(faces, sa.faces...)
	for _, f := range sb.faces {
		faces = append(faces, &flippedFace{inner: f})
	}
	return &sdfxSolid{s: sdf.Difference3D(sa.s, sb.s), faces: faces}, nil
}

// Extrude places the planar outline at the given frame and sweeps it
// along v. The sweep direction must lie along the frame normal (positive
// or negative); that is the only case legend placement produces.
func (k *SdfxKernel) Extrude(o kernel.Outline, at geom.Frame, v geom.Vec3) (kernel.Solid, error) {
	ol, ok := o.(*Outline2)
	if !ok {
		return nil, fmt.Errorf("sdfx: outline %T was not produced by this kernel", o)
	}
	h := v.Length()
	if h == 0 {
		return nil, fmt.Errorf("sdfx: zero-length extrusion vector")
	}

	// sdf.Extrude3D spans z ∈ [-h/2, h/2]; shift the slab so it grows
	// from the outline plane toward the sweep direction.
	slab := sdf.Extrude3D(ol.s, h)
	shift := h / 2
	if v.Dot(at.Z) < 0 {
		shift = -h / 2
	}

	rx, ry, rz := at.EulerZYX()
	m := sdf.Translate3d(v3.Vec{X: at.Origin.X, Y: at.Origin.Y, Z: at.Origin.Z}).
		Mul(sdf.RotateZ(rz)).
		Mul(sdf.RotateY(ry)).
		Mul(sdf.RotateX(rx)).
		Mul(sdf.Translate3d(v3.Vec{Z: shift}))

	// Track the two caps so the volume still enumerates faces after a
	// union with other role volumes. The far cap faces along the sweep,
	// the cap on the outline plane faces against it.
	outward := at.Z
	if v.Dot(at.Z) < 0 {
		outward = at.Z.Neg()
	}
	min2, max2 := ol.BoundingBox()
	cx, cy := (min2[0]+max2[0])/2, (min2[1]+max2[1])/2
	w, d := max2[0]-min2[0], max2[1]-min2[1]
	far := at.Apply(geom.Vec3{X: cx, Y: cy, Z: 2 * shift})
	base := at.Apply(geom.Vec3{X: cx, Y: cy})
	faces := []kernel.Face{
		&planeFace{center: far, normal: outward, uMax: w, vMax: d},
		&planeFace{center: base, normal: outward.Neg(), uMax: w, vMax: d},
	}

	return &sdfxSolid{s: sdf.Transform3D(slab, m), faces: faces}, nil
}

// Tessellate converts a solid to a triangle mesh using marching cubes.
// The cell count is chosen so a cell is no larger than the requested
// chordal tolerance, clamped to keep memory bounded.
func (k *SdfxKernel) Tessellate(s kernel.Solid, tolerance float64) (*kernel.Mesh, error) {
	if tolerance <= 0 {
		return nil, fmt.Errorf("sdfx: tessellation tolerance must be > 0, got %v", tolerance)
	}
	src := unwrap(s)

	min, max := src.BoundingBox()
	extent := math.Max(max.X-min.X, math.Max(max.Y-min.Y, max.Z-min.Z))
	cells := int(math.Ceil(extent / tolerance))
	if cells < minMeshCells {
		cells = minMeshCells
	}
	if cells > maxMeshCells {
		cells = maxMeshCells
	}

	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(src.s, renderer)

	numTri := len(triangles)
	numVerts := numTri * 3

	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}

// Evaluate reports the signed distance from p to the solid's surface.
// Negative values are inside the material. Exposed for containment
// checks in tests and previews.
func (k *SdfxKernel) Evaluate(s kernel.Solid, p geom.Vec3) float64 {
	return unwrap(s).s.Evaluate(v3.Vec{X: p.X, Y: p.Y, Z: p.Z})
}
