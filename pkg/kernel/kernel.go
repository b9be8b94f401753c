// Package kernel defines the abstract geometry engine interface.
// Implementations (sdfx) provide solid modeling, boolean operations and
// tessellation behind this interface. The kernel abstraction allows
// swapping backends without changing the rest of the system.
package kernel

import "github.com/ninicksicard/keylegend/pkg/geom"

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max geom.Vec3)
}

// Face is a bounded parametric patch of a solid's boundary. Faces are
// views into their solid's lifetime; they are never owned separately.
type Face interface {
	// ParameterDomain returns the face's parameter range
	// [uMin,uMax]×[vMin,vMax].
	ParameterDomain() (uMin, uMax, vMin, vMax float64)

	// NormalAt evaluates the outward surface normal at (u, v).
	// The result is not guaranteed to be unit length.
	NormalAt(u, v float64) (geom.Vec3, error)

	// Centroid returns the face's center of mass in world space.
	Centroid() geom.Vec3
}

// Outline is a planar 2D shape in its own local XY frame, as produced by
// a text outline provider. The origin of the local frame is unspecified;
// callers recenter using the bounding box.
type Outline interface {
	// BoundingBox returns the outline's axis-aligned bounds as
	// (minX, minY) and (maxX, maxY).
	BoundingBox() (min, max [2]float64)
}

// Kernel is the abstract geometry engine interface.
type Kernel interface {
	// Blank primitives. Box has its minimum corner at the origin;
	// Cylinder is centered at the origin along Z.
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64) Solid

	// Faces enumerates the solid's boundary faces in a stable order.
	Faces(s Solid) []Face

	// Copy returns an independently owned duplicate of s, for engines
	// whose boolean operations consume their operands.
	Copy(s Solid) Solid

	// Translate moves a solid by (x, y, z).
	Translate(s Solid, x, y, z float64) Solid

	// Boolean operations. Failures are engine-specific and opaque.
	Union(a, b Solid) (Solid, error)
	Difference(a, b Solid) (Solid, error)

	// Extrude places the planar outline at the given frame (the caller
	// folds any in-plane translation into the frame origin) and sweeps
	// it along the world-space vector v into a solid volume.
	Extrude(o Outline, at geom.Frame, v geom.Vec3) (Solid, error)

	// Tessellate triangulates a solid to the given chordal tolerance.
	Tessellate(s Solid, tolerance float64) (*Mesh, error)
}
