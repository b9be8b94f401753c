package legend

import (
	"fmt"

	"github.com/ninicksicard/keylegend/pkg/geom"
	"github.com/ninicksicard/keylegend/pkg/kernel"
)

// RoleName identifies one text role on a key.
type RoleName string

const (
	RolePrimary  RoleName = "primary"
	RoleShift    RoleName = "shift"
	RoleAltGr    RoleName = "altgr"
	RoleFunction RoleName = "fn"
)

// Role is one text role with its own font size and in-plane offset.
// Roles with empty text are skipped by Compose.
type Role struct {
	Name    RoleName
	Text    string
	Size    float64
	OffsetX float64
	OffsetY float64
}

// OutlineProvider produces a planar outline for a text label at a given
// height. The outline arrives in its own local frame.
type OutlineProvider interface {
	Outline(text string, size float64) (kernel.Outline, error)
}

// engraveOverlap is how far the flat outline is pushed into the solid
// along the negative frame normal before an engraving extrusion. Without
// it the extrusion starts exactly on the surface and the boolean cut can
// fail on coincident, non-overlapping geometry.
const engraveOverlap = 0.05

// Compose lays the enabled roles out in the face frame, extrudes each
// into a volume along the mode's direction for the named side, and
// unions them into one legend volume.
//
// Parameters are validated before any outline work: depth must be
// positive, the downstream tessellation tolerance must be positive, the
// mode must be defined and at least one role must carry text.
func Compose(
	k kernel.Kernel,
	frame geom.Frame,
	side DirectionName,
	mode Mode,
	depth float64,
	tolerance float64,
	roles []Role,
	provider OutlineProvider,
) (kernel.Solid, error) {
	if depth <= 0 {
		return nil, ErrInvalidDepth
	}
	if tolerance <= 0 {
		return nil, ErrInvalidTolerance
	}
	if !mode.Valid() {
		return nil, ErrInvalidMode
	}

	extDir, err := extrusionDirection(side, mode)
	if err != nil {
		return nil, err
	}
	sweep := extDir.Scale(depth)

	var combined kernel.Solid
	for _, role := range orderRoles(roles) {
		if role.Text == "" {
			continue
		}

		outline, err := provider.Outline(role.Text, role.Size)
		if err != nil {
			return nil, fmt.Errorf("legend: outline for %s %q: %w", role.Name, role.Text, err)
		}

		// Recenter on the bounding box midpoint so the glyph block
		// sits at the role's offset regardless of side bearings.
		min, max := outline.BoundingBox()
		local := geom.Vec3{
			X: role.OffsetX - (min[0]+max[0])/2,
			Y: role.OffsetY - (min[1]+max[1])/2,
		}
		if mode == ModeEngrave {
			local.Z = -engraveOverlap
		}

		volume, err := k.Extrude(outline, frame.Offset(local), sweep)
		if err != nil {
			return nil, fmt.Errorf("legend: extrude %s %q: %w", role.Name, role.Text, err)
		}

		if combined == nil {
			combined = volume
			continue
		}
		combined, err = k.Union(combined, volume)
		if err != nil {
			return nil, fmt.Errorf("legend: union %s %q: %w", role.Name, role.Text, err)
		}
	}

	if combined == nil {
		return nil, ErrEmptyLegend
	}
	return combined, nil
}

// extrusionDirection resolves the sweep direction for a side and mode.
// Raising grows along the face's outward direction, engraving along the
// antiparallel engraving-table direction.
func extrusionDirection(side DirectionName, mode Mode) (geom.Vec3, error) {
	table := FaceDirections
	if mode == ModeEngrave {
		table = EngravingDirections
	}
	d, ok := table[side]
	if !ok {
		return geom.Vec3{}, fmt.Errorf("legend: unknown face direction %q", side)
	}
	return d, nil
}

// orderRoles returns the roles in the fixed composition order
// primary, shift, altgr, fn. Unknown names sort last, keeping their
// relative order.
func orderRoles(roles []Role) []Role {
	rank := map[RoleName]int{
		RolePrimary:  0,
		RoleShift:    1,
		RoleAltGr:    2,
		RoleFunction: 3,
	}
	ordered := make([]Role, 0, len(roles))
	for want := 0; want < len(rank); want++ {
		for _, r := range roles {
			if got, known := rank[r.Name]; known && got == want {
				ordered = append(ordered, r)
			}
		}
	}
	for _, r := range roles {
		if _, known := rank[r.Name]; !known {
			ordered = append(ordered, r)
		}
	}
	return ordered
}
