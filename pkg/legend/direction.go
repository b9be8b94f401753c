package legend

import "github.com/ninicksicard/keylegend/pkg/geom"

// DirectionName identifies one of the six axis-aligned sides of an
// object. The vocabulary is fixed and shared by the two direction tables.
type DirectionName string

const (
	Top    DirectionName = "Top"
	Bottom DirectionName = "Bottom"
	Front  DirectionName = "Front"
	Back   DirectionName = "Back"
	Right  DirectionName = "Right"
	Left   DirectionName = "Left"
)

// FaceDirections maps each side to its outward world direction. Face
// selection uses it, and so does the raise extrusion, which grows out of
// the surface.
var FaceDirections = map[DirectionName]geom.Vec3{
	Top:    {Z: 1},
	Bottom: {Z: -1},
	Front:  {Y: 1},
	Back:   {Y: -1},
	Right:  {X: 1},
	Left:   {X: -1},
}

// EngravingDirections maps each side to the extrusion direction used
// when cutting: the exact opposite of the face's outward direction,
// since engraving removes material going inward.
var EngravingDirections = map[DirectionName]geom.Vec3{
	Top:    {Z: -1},
	Bottom: {Z: 1},
	Front:  {Y: -1},
	Back:   {Y: 1},
	Right:  {X: -1},
	Left:   {X: 1},
}

// DirectionNames returns the vocabulary in a stable order.
func DirectionNames() []DirectionName {
	return []DirectionName{Top, Bottom, Front, Back, Right, Left}
}
